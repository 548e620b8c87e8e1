// Package eval implements the evaluator: how a parsed Value becomes a
// result. It owns the control primitives that need to call back into
// Eval (eval, if, def, =, \, load, doc, help) and registers them into
// builtin.DefaultRegistry so the rest of the primitive set, arithmetic,
// list operations, comparisons, stays free of the evaluator dependency.
package eval

import (
	"github.com/cwbudde/go-lispy/internal/builtin"
	"github.com/cwbudde/go-lispy/internal/value"
)

// Eval reduces v to a result Value in the context of env. Integers,
// Texts, QExprs, BuiltinFunctions, Lambdas and Errors are self-evaluating.
// Symbols resolve against env. SExprs evaluate every child in order,
// propagate the first Error encountered, collapse to their sole child
// when they have exactly one, and otherwise apply their first child
// (which must be callable) to the rest.
func Eval(v value.Value, env *value.Environment) value.Value {
	switch n := v.(type) {
	case *value.Symbol:
		if bound, ok := env.Get(n.Name); ok {
			return bound
		}
		return value.NewError("Unbound symbol: '%s'", n.Name)

	case *value.SExpr:
		return evalSExpr(n, env)

	default:
		return v
	}
}

func evalSExpr(s *value.SExpr, env *value.Environment) value.Value {
	evaluated := make([]value.Value, len(s.Children))
	for i, child := range s.Children {
		result := Eval(child, env)
		if e, ok := result.(*value.Error); ok {
			return e
		}
		evaluated[i] = result
	}

	switch len(evaluated) {
	case 0:
		return &value.SExpr{}
	case 1:
		return evaluated[0]
	}

	head := evaluated[0]
	switch head.(type) {
	case *value.BuiltinFunction, *value.Lambda:
		return Apply(head, evaluated[1:], env)
	default:
		return value.NewError("S-Expression starts with incorrect type, expected Function, got %s", head.Tag())
	}
}

// Apply calls fn with args in the context of callerEnv, which supplies
// the environment control primitives (def, =, load, ...) act on.
func Apply(fn value.Value, args []value.Value, callerEnv *value.Environment) value.Value {
	switch f := fn.(type) {
	case *value.BuiltinFunction:
		impl, ok := builtin.DefaultRegistry.Get(f.Name)
		if !ok {
			return value.NewError("Unbound symbol: '%s'", f.Name)
		}
		return impl(callerEnv, args)

	case *value.Lambda:
		return applyLambda(f, args, callerEnv)

	default:
		return value.NewError("S-Expression starts with incorrect type, expected Function, got %s", fn.Tag())
	}
}

// applyLambda binds args to f's formals one at a time. A formal named
// "&" marks the remainder of the argument list: the single formal after
// it collects all remaining args as a Q-Expression, including zero of
// them. Once every formal is bound the body evaluates as an implicit
// S-Expression; if formals remain, the partially-applied Lambda is
// returned instead of being called.
func applyLambda(f *value.Lambda, args []value.Value, callerEnv *value.Environment) value.Value {
	env := f.Env.Clone()
	formals := append([]string{}, f.Formals...)

	for len(args) > 0 {
		if len(formals) == 0 {
			return value.NewError("Function passed too many arguments, got %d extra", len(args))
		}
		formal := formals[0]
		formals = formals[1:]

		if formal == "&" {
			if len(formals) != 1 {
				return value.NewError("Function format invalid: '&' not followed by a single symbol")
			}
			env.Put(formals[0], &value.QExpr{Children: append([]value.Value{}, args...)})
			formals = nil
			args = nil
			break
		}

		env.Put(formal, args[0])
		args = args[1:]
	}

	if len(formals) == 1 && formals[0] == "&" {
		return value.NewError("Function format invalid: '&' not followed by a single symbol")
	}
	if len(formals) == 2 && formals[0] == "&" {
		env.Put(formals[1], &value.QExpr{})
		formals = nil
	}

	if len(formals) > 0 {
		return &value.Lambda{Env: env, Formals: formals, Body: f.Body}
	}

	env.SetParent(callerEnv)
	body := &value.SExpr{Children: f.Body}
	return Eval(body, env)
}
