// Package repl implements Lispy's interactive read-eval-print loop:
// line editing and history via chzyer/readline, colorized prompts and
// error output via fatih/color, and line-mode parsing so a single line
// can hold multiple top-level forms.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/cwbudde/go-lispy/internal/eval"
	"github.com/cwbudde/go-lispy/internal/parser"
	"github.com/cwbudde/go-lispy/internal/value"
)

const prompt = "lispy> "

var (
	errorColor  = color.New(color.FgRed)
	resultColor = color.New(color.FgGreen)
)

// Run starts the loop against env, reading from stdin until EOF or an
// interrupt. A line ending in ";" continues onto the next line instead
// of being parsed: accumulated lines are joined with "\n" in place of
// the ";" and parsing is deferred until a line without the trailing
// marker arrives. A completed input is parsed and evaluated; a parse
// error is reported without touching env, and a result is printed in
// its debug form (the REPL's inspection format, distinct from print's
// display form).
func Run(env *value.Environment) error {
	historyFile := historyPath()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("starting line editor: %w", err)
	}
	defer rl.Close()

	var pending []string

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			return nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if rest, ok := strings.CutSuffix(line, ";"); ok {
			pending = append(pending, rest)
			continue
		}

		pending = append(pending, line)
		source := strings.Join(pending, "\n")
		pending = nil

		if strings.TrimSpace(source) == "" {
			continue
		}

		form := parser.ParseLine(source)
		if e, ok := form.(*value.Error); ok {
			errorColor.Fprintf(os.Stderr, "Parse error: %s\n", e.Message)
			continue
		}

		result := eval.Eval(form, env)
		if e, ok := result.(*value.Error); ok {
			errorColor.Fprintf(os.Stderr, "Error: %s\n", e.Message)
			continue
		}
		resultColor.Fprintln(os.Stdout, value.Debug(result))
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lispy_history")
}
