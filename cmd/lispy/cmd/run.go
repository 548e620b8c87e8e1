package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-lispy/internal/boot"
	"github.com/cwbudde/go-lispy/internal/clierrors"
	"github.com/cwbudde/go-lispy/internal/eval"
	"github.com/cwbudde/go-lispy/internal/lexer"
	"github.com/cwbudde/go-lispy/internal/parser"
	"github.com/cwbudde/go-lispy/internal/repl"
	"github.com/cwbudde/go-lispy/internal/value"
)

var (
	showTokens bool
	showAST    bool
)

func runRoot(_ *cobra.Command, args []string) error {
	env, err := boot.NewGlobalEnvironment()
	if err != nil {
		return fmt.Errorf("loading standard library: %w", err)
	}

	if len(args) == 0 {
		return repl.Run(env)
	}

	for _, file := range args {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}
		source := string(content)

		if showTokens {
			dumpTokens(file, source)
			continue
		}
		if showAST {
			dumpAST(file, source)
			continue
		}

		runFile(env, file, source)
	}
	return nil
}

// runFile evaluates every top-level form in source against env. Parse
// or eval errors for one form print to standard output and do not stop
// the remaining forms, nor the files still to come.
func runFile(env *value.Environment, file, source string) {
	forms := parser.ParseProgram(source)
	for _, form := range forms {
		result := eval.Eval(form, env)
		if e, ok := result.(*value.Error); ok {
			fmt.Printf("%s: %s\n", file, e.Message)
		}
	}
}

func dumpTokens(file, source string) {
	l := lexer.New(source)
	for {
		tok := l.NextToken()
		fmt.Printf("%-8s %q\n", tok.Type, tok.Literal)
		if tok.Type == lexer.EOF {
			break
		}
	}
	if errs := l.Errors(); len(errs) > 0 {
		fmt.Fprint(os.Stderr, clierrors.FormatAll(clierrors.FromLexerErrors(errs, source, file)))
	}
}

func dumpAST(_, source string) {
	for _, form := range parser.ParseProgram(source) {
		fmt.Println(value.Debug(form))
	}
}
