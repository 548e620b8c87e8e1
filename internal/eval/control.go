package eval

import (
	"fmt"
	"sort"

	"github.com/cwbudde/go-lispy/internal/builtin"
	"github.com/cwbudde/go-lispy/internal/loader"
	"github.com/cwbudde/go-lispy/internal/value"
)

// init registers every primitive that needs to call back into Eval.
// Relying on Go's import-order guarantee: this package imports
// internal/builtin, so builtin's own init (arithmetic, list, ...) has
// already populated DefaultRegistry by the time this one runs.
func init() {
	builtin.DefaultRegistry.Register("eval", evalPrim)
	builtin.DefaultRegistry.Register("if", ifPrim)
	builtin.DefaultRegistry.Register("def", defPrim)
	builtin.DefaultRegistry.Register("=", putPrim)
	builtin.DefaultRegistry.Register("\\", lambdaPrim)
	builtin.DefaultRegistry.Register("load", loadPrim)
	builtin.DefaultRegistry.Register("doc", docPrim)
	builtin.DefaultRegistry.Register("help", helpPrim)
}

// evalPrim treats a Q-Expression as code: it is converted to an
// S-Expression and evaluated in place.
func evalPrim(env *value.Environment, args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError("'eval' expected 1 argument(s), got %d", len(args))
	}
	q, ok := args[0].(*value.QExpr)
	if !ok {
		return value.NewError("'eval' passed incorrect type for argument 1, got %s", args[0].Tag())
	}
	return Eval(&value.SExpr{Children: q.Children}, env)
}

// ifPrim evaluates the then-branch Q-Expression when cond is truthy,
// otherwise the else-branch. Both branches arrive already evaluated as
// Values, but since they are Q-Expressions that step is a no-op; only
// the selected branch is actually run, as an implicit S-Expression.
func ifPrim(env *value.Environment, args []value.Value) value.Value {
	if len(args) != 3 {
		return value.NewError("'if' expected 3 argument(s), got %d", len(args))
	}
	cond, ok := args[0].(*value.Integer)
	if !ok {
		return value.NewError("'if' passed incorrect type for argument 1, got %s", args[0].Tag())
	}
	thenQ, ok := args[1].(*value.QExpr)
	if !ok {
		return value.NewError("'if' passed incorrect type for argument 2, got %s", args[1].Tag())
	}
	elseQ, ok := args[2].(*value.QExpr)
	if !ok {
		return value.NewError("'if' passed incorrect type for argument 3, got %s", args[2].Tag())
	}

	branch := elseQ
	if cond.IsTruthy() {
		branch = thenQ
	}
	return Eval(&value.SExpr{Children: branch.Children}, env)
}

// defPrim binds name(s) in the global environment; putPrim binds them
// in the calling environment only. Both take a Q-Expression of Symbols
// followed by one value per symbol.
func defPrim(env *value.Environment, args []value.Value) value.Value {
	return bindNames(env.Root(), args, "def")
}

func putPrim(env *value.Environment, args []value.Value) value.Value {
	return bindNames(env, args, "=")
}

func bindNames(target *value.Environment, args []value.Value, name string) value.Value {
	if len(args) < 1 {
		return value.NewError("'%s' expected at least 1 argument(s), got %d", name, len(args))
	}
	names, ok := args[0].(*value.QExpr)
	if !ok {
		return value.NewError("'%s' passed incorrect type for argument 1, got %s", name, args[0].Tag())
	}
	values := args[1:]
	if len(names.Children) != len(values) {
		return value.NewError("'%s' cannot define mismatched number of values to symbols: %d vs %d",
			name, len(names.Children), len(values))
	}
	for i, n := range names.Children {
		sym, ok := n.(*value.Symbol)
		if !ok {
			return value.NewError("'%s' cannot define non-symbol, got %s", name, n.Tag())
		}
		target.Put(sym.Name, values[i])
	}
	return &value.SExpr{}
}

// lambdaPrim builds a Lambda from a Q-Expression of formal parameter
// symbols and a Q-Expression body. The closure environment starts
// empty and parentless; applyLambda gives it a parent once the Lambda
// is fully applied.
func lambdaPrim(_ *value.Environment, args []value.Value) value.Value {
	if len(args) != 2 {
		return value.NewError("'\\' expected 2 argument(s), got %d", len(args))
	}
	formalsQ, ok := args[0].(*value.QExpr)
	if !ok {
		return value.NewError("'\\' passed incorrect type for argument 1, got %s", args[0].Tag())
	}
	bodyQ, ok := args[1].(*value.QExpr)
	if !ok {
		return value.NewError("'\\' passed incorrect type for argument 2, got %s", args[1].Tag())
	}

	formals := make([]string, len(formalsQ.Children))
	for i, f := range formalsQ.Children {
		sym, ok := f.(*value.Symbol)
		if !ok {
			return value.NewError("Cannot define non-symbol as formal parameter, got %s", f.Tag())
		}
		formals[i] = sym.Name
	}

	return &value.Lambda{
		Env:     value.NewEnvironment(),
		Formals: formals,
		Body:    append([]value.Value{}, bodyQ.Children...),
	}
}

// loadPrim reads a file, parses every top-level form, and evaluates each
// in the global environment in order. Per-form errors are reported to
// standard output and do not abort the load; only an I/O failure reading
// the file itself is returned as an Error.
func loadPrim(env *value.Environment, args []value.Value) value.Value {
	if len(args) != 1 {
		return value.NewError("'load' expected 1 argument(s), got %d", len(args))
	}
	path, ok := args[0].(*value.Text)
	if !ok {
		return value.NewError("'load' passed incorrect type for argument 1, got %s", args[0].Tag())
	}

	forms, err := loader.Load(path.Value)
	if err != nil {
		return value.NewError("Could not load library %s: %s", path.Value, err)
	}

	root := env.Root()
	for _, form := range forms {
		if result := Eval(form, root); result != nil {
			if e, ok := result.(*value.Error); ok {
				fmt.Fprintf(builtin.Stdout, "Error: %s\n", e.Message)
			}
		}
	}
	return &value.SExpr{}
}

// docPrim reads a documentation string with one argument, or sets it
// with two. The name is passed the same way def takes its names: as a
// single-Symbol Q-Expression, so it reaches docPrim unevaluated.
func docPrim(env *value.Environment, args []value.Value) value.Value {
	switch len(args) {
	case 1:
		sym, errv := nameArg(args[0], "doc", 1)
		if errv != nil {
			return errv
		}
		d, ok := env.Doc(sym.Name)
		if !ok {
			return value.NewError("No documentation for '%s'", sym.Name)
		}
		return &value.Text{Value: d}
	case 2:
		sym, errv := nameArg(args[0], "doc", 1)
		if errv != nil {
			return errv
		}
		txt, ok := args[1].(*value.Text)
		if !ok {
			return value.NewError("'doc' passed incorrect type for argument 2, got %s", args[1].Tag())
		}
		env.Root().PutDoc(sym.Name, txt.Value)
		return &value.SExpr{}
	default:
		return value.NewError("'doc' expected 1 or 2 argument(s), got %d", len(args))
	}
}

// nameArg unwraps a single-Symbol Q-Expression, the form def, doc and
// help all expect a bare name argument in, since an unwrapped symbol
// would otherwise be resolved by evalSExpr before the primitive runs.
func nameArg(v value.Value, prim string, pos int) (*value.Symbol, *value.Error) {
	q, ok := v.(*value.QExpr)
	if !ok || len(q.Children) != 1 {
		return nil, value.NewError("'%s' passed incorrect type for argument %d, got %s", prim, pos, v.Tag())
	}
	sym, ok := q.Children[0].(*value.Symbol)
	if !ok {
		return nil, value.NewError("'%s' passed incorrect type for argument %d, got %s", prim, pos, q.Children[0].Tag())
	}
	return sym, nil
}

// helpPrim prints the documented name list, a single name's doc, or,
// for the distinguished name "env", a full snapshot of the calling
// environment's current bindings.
func helpPrim(env *value.Environment, args []value.Value) value.Value {
	root := env.Root()
	switch len(args) {
	case 0:
		names := root.Names()
		sort.Strings(names)
		for _, n := range names {
			if d, ok := root.Doc(n); ok {
				fmt.Fprintf(builtin.Stdout, "%s: %s\n", n, d)
			}
		}
		return &value.SExpr{}
	case 1:
		sym, errv := nameArg(args[0], "help", 1)
		if errv != nil {
			return errv
		}
		if sym.Name == "env" {
			printEnvSnapshot(env)
			return &value.SExpr{}
		}
		if d, ok := root.Doc(sym.Name); ok {
			fmt.Fprintf(builtin.Stdout, "%s: %s\n", sym.Name, d)
		} else {
			fmt.Fprintf(builtin.Stdout, "No documentation for '%s'\n", sym.Name)
		}
		return &value.SExpr{}
	default:
		return value.NewError("'help' expected 0 or 1 argument(s), got %d", len(args))
	}
}

// printEnvSnapshot lists every binding in env's own scope: name, the
// debug form of its value, and its documentation string if one was
// set with doc. Bindings of parent scopes are not listed.
func printEnvSnapshot(env *value.Environment) {
	names := env.Names()
	sort.Strings(names)
	for _, n := range names {
		v, _ := env.Get(n)
		line := fmt.Sprintf("%s: %s", n, value.Debug(v))
		if d, ok := env.Doc(n); ok {
			line += " -- " + d
		}
		fmt.Fprintln(builtin.Stdout, line)
	}
}
