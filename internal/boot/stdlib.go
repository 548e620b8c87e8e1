package boot

import (
	_ "embed"
	"os"

	"github.com/cwbudde/go-lispy/internal/parser"
	"github.com/cwbudde/go-lispy/internal/value"
)

//go:embed stdlib.lispy
var embeddedStdlib string

// stdlibForms parses ./stdlib.lispy if present in the working directory,
// falling back to the copy embedded in the binary.
func stdlibForms() ([]value.Value, error) {
	if content, err := os.ReadFile("stdlib.lispy"); err == nil {
		return parser.ParseProgram(string(content)), nil
	}
	return parser.ParseProgram(embeddedStdlib), nil
}
