package toolpath

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Command lines understood by the plotter firmware.
const (
	PenUpLine   = "G0 Z1 ; pen up"
	PenDownLine = "G0 Z-1 ; pen down"
)

// DefaultPrecision is the number of decimals written for coordinates.
const DefaultPrecision = 4

// WriteOptions controls the text rendition of a program.
type WriteOptions struct {
	// Precision is the number of decimals. Zero writes whole numbers,
	// negative the shortest exact form.
	Precision int
	// Annotate adds comment lines naming the version, letters and paths.
	Annotate bool
	// Version is written in the header when Annotate is set.
	Version string
}

// DefaultWriteOptions writes plain G-code with DefaultPrecision decimals.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Precision: DefaultPrecision}
}

// FormatCommand renders one command as a single line.
func FormatCommand(c Command, precision int) string {
	switch c.Kind {
	case PenUp:
		return PenUpLine
	case PenDown:
		return PenDownLine
	default:
		return "G0 X" + formatCoord(c.X, precision) + " Y" + formatCoord(c.Y, precision)
	}
}

func formatCoord(v float64, precision int) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if precision > 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// Lines renders the program one command per line, in emission order.
func Lines(prog *Program, opts WriteOptions) []string {
	var lines []string
	if opts.Annotate {
		lines = append(lines, "; version "+opts.Version)
	}
	lastGlyph, lastPath := -1, -1
	for _, c := range prog.Commands {
		if opts.Annotate && c.Glyph >= 0 {
			if c.Glyph != lastGlyph {
				lines = append(lines, fmt.Sprintf("; letter %c", c.Rune))
				lastPath = -1
			}
			if c.Path != lastPath {
				lines = append(lines, fmt.Sprintf("; path %d for letter %c", c.Path, c.Rune))
			}
			lastGlyph, lastPath = c.Glyph, c.Path
		}
		lines = append(lines, FormatCommand(c, opts.Precision))
	}
	return lines
}

// Write writes the program to w, one command per line.
func Write(w io.Writer, prog *Program, opts WriteOptions) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(prog, opts) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("write toolpath: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write toolpath: %w", err)
	}
	return nil
}
