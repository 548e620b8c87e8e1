package builtin

import (
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-lispy/internal/value"
)

// Stdout is where print writes. Tests may redirect it to a buffer.
var Stdout io.Writer = os.Stdout

func init() {
	DefaultRegistry.Register("print", printFn)
	DefaultRegistry.Register("error", errorFn)
}

// print writes the Display form of each argument, space separated,
// followed by a newline, and returns an empty S-Expression.
func printFn(_ *value.Environment, args []value.Value) value.Value {
	for i, a := range args {
		if i > 0 {
			fmt.Fprint(Stdout, " ")
		}
		fmt.Fprint(Stdout, value.Display(a))
	}
	fmt.Fprintln(Stdout)
	return &value.SExpr{}
}

// error turns a Text argument into an Error Value the evaluator will
// propagate like any other error.
func errorFn(_ *value.Environment, args []value.Value) value.Value {
	if len(args) != 1 {
		return arityError("error", 1, len(args))
	}
	txt, ok := args[0].(*value.Text)
	if !ok {
		return typeError("error", 1, args[0])
	}
	return value.NewError("%s", txt.Value)
}
