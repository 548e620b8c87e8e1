// Package loader reads a Lispy source file and parses it into forms,
// for use by the in-language load primitive. The file is opened, read
// fully and closed before the parsed forms (or the I/O error) are
// handed back.
package loader

import (
	"os"

	"github.com/cwbudde/go-lispy/internal/parser"
	"github.com/cwbudde/go-lispy/internal/value"
)

// Load reads path and parses its contents as file-mode input.
func Load(path string) ([]value.Value, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parser.ParseProgram(string(content)), nil
}
