package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/go-lispy/internal/value"
)

func TestLoadParsesEveryTopLevelForm(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.lispy")
	if err := os.WriteFile(path, []byte("(def {x} 1)\n(def {y} 2)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	forms, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
	for _, f := range forms {
		if _, ok := f.(*value.SExpr); !ok {
			t.Fatalf("form = %#v, want SExpr", f)
		}
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	if _, err := Load("/nonexistent/path.lispy"); err == nil {
		t.Fatal("expected an error loading a missing file")
	}
}
