package eval

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-lispy/internal/boot"
	"github.com/cwbudde/go-lispy/internal/builtin"
	"github.com/cwbudde/go-lispy/internal/parser"
	"github.com/cwbudde/go-lispy/internal/value"
)

// TestFixtures runs every testdata/fixtures/*.lispy program against a
// fresh global environment and snapshots everything it printed,
// including any in-language Error output from the error fixtures.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("../../testdata/fixtures/*.lispy")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, file := range files {
		name := filepath.Base(file)
		t.Run(name, func(t *testing.T) {
			source, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("reading %s: %v", file, err)
			}

			env, err := boot.NewGlobalEnvironment()
			if err != nil {
				t.Fatalf("boot.NewGlobalEnvironment: %v", err)
			}

			var buf bytes.Buffer
			old := builtin.Stdout
			builtin.Stdout = &buf
			defer func() { builtin.Stdout = old }()

			for _, form := range parser.ParseProgram(string(source)) {
				result := Eval(form, env)
				if e, ok := result.(*value.Error); ok {
					fmt.Fprintf(&buf, "Error: %s\n", e.Message)
				}
			}

			snaps.MatchSnapshot(t, buf.String())
		})
	}
}
