// Package boot assembles a ready-to-use global environment: every
// registered primitive bound as a BuiltinFunction, followed by the
// standard library written in Lispy itself.
package boot

import (
	"fmt"

	"github.com/cwbudde/go-lispy/internal/builtin"
	"github.com/cwbudde/go-lispy/internal/eval" // import alone registers control primitives via init
	"github.com/cwbudde/go-lispy/internal/value"
)

// NewGlobalEnvironment returns a parentless Environment with every
// builtin.DefaultRegistry entry bound, then stdlib.lispy loaded over it.
// A stdlib.lispy in the current working directory takes precedence over
// the copy embedded in the binary, so deployments can customize it
// without a rebuild. A load error in the standard library prints a
// diagnostic but does not prevent the environment from being returned,
// so the REPL or file run can still start.
func NewGlobalEnvironment() (*value.Environment, error) {
	env := value.NewEnvironment()
	for _, name := range builtin.DefaultRegistry.Names() {
		env.Put(name, &value.BuiltinFunction{Name: name})
	}

	forms, err := stdlibForms()
	if err != nil {
		fmt.Fprintf(builtin.Stdout, "Error loading standard library: %s\n", err)
		return env, nil
	}
	for _, form := range forms {
		if result := eval.Eval(form, env); result != nil {
			if e, ok := result.(*value.Error); ok {
				fmt.Fprintf(builtin.Stdout, "Error loading standard library: %s\n", e.Message)
			}
		}
	}
	return env, nil
}
