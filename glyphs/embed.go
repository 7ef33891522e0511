package glyphs

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
)

//go:embed data/*.glyphs
var dataFS embed.FS

// DefaultName names the built-in digit table.
const DefaultName = "embed:digits.glyphs"

// Builtin returns the raw bytes of a built-in library. name may be written
// as "embed:digits.glyphs", "digits.glyphs" or just "digits".
func Builtin(name string) ([]byte, error) {
	clean := strings.TrimPrefix(name, "embed:")
	clean = strings.TrimPrefix(clean, "data/")
	if !strings.HasSuffix(clean, ".glyphs") {
		clean += ".glyphs"
	}
	target := "data/" + clean
	data, err := dataFS.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read built-in glyphs %s: %w", target, err)
	}
	return data, nil
}

// IsBuiltin reports whether name refers to embedded data rather than a file.
func IsBuiltin(name string) bool { return strings.HasPrefix(name, "embed:") }

var defaultLibrary = sync.OnceValues(func() (*Library, error) {
	data, err := Builtin(DefaultName)
	if err != nil {
		return nil, err
	}
	return Load(DefaultName, bytes.NewReader(data))
})

// Default returns the built-in digits 0-9. The library is parsed once and
// shared; it is never mutated.
func Default() (*Library, error) { return defaultLibrary() }
