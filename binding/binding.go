// Package binding fills ${...} placeholders in the text to plot from JSON
// data, so one command line can engrave serial numbers or dates.
package binding

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// step is one hop in a lookup path: a map key or an array index.
type step struct {
	key   string
	index int
	isIdx bool
}

// Decode parses JSON data for Interpolate. Numbers stay json.Number so
// integers such as serials are printed without an exponent.
func Decode(raw string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var data any
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode binding data: %w", err)
	}
	return data, nil
}

// Interpolate replaces ${path.to[0].value} in text with values from data.
// Placeholders that do not resolve are left as written.
func Interpolate(text string, data any) string {
	if data == nil {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		expr := strings.TrimSpace(match[2 : len(match)-1])
		steps, ok := compile(expr)
		if !ok {
			return match
		}
		val, ok := lookup(data, steps)
		if !ok {
			return match
		}
		return fmt.Sprint(val)
	})
}

// Unresolved lists the placeholders Interpolate would leave untouched.
func Unresolved(text string, data any) []string {
	var out []string
	for _, m := range exprPattern.FindAllString(text, -1) {
		if Interpolate(m, data) == m {
			out = append(out, m)
		}
	}
	return out
}

func compile(expr string) ([]step, bool) {
	if expr == "" {
		return nil, false
	}
	var steps []step
	for _, seg := range strings.Split(expr, ".") {
		name, rest, _ := strings.Cut(seg, "[")
		if name != "" {
			steps = append(steps, step{key: name})
		}
		if rest == "" {
			continue
		}
		for _, idx := range strings.Split(strings.TrimSuffix(rest, "]"), "][") {
			n, err := strconv.Atoi(idx)
			if err != nil {
				return nil, false
			}
			steps = append(steps, step{index: n, isIdx: true})
		}
	}
	return steps, len(steps) > 0
}

func lookup(current any, steps []step) (any, bool) {
	for _, s := range steps {
		if s.isIdx {
			arr, ok := current.([]any)
			if !ok || s.index < 0 || s.index >= len(arr) {
				return nil, false
			}
			current = arr[s.index]
			continue
		}
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		if current, ok = obj[s.key]; !ok {
			return nil, false
		}
	}
	return current, true
}
