package builtin

import "github.com/cwbudde/go-lispy/internal/value"

func init() {
	DefaultRegistry.Register("list", list)
	DefaultRegistry.Register("head", head)
	DefaultRegistry.Register("tail", tail)
	DefaultRegistry.Register("join", join)
	DefaultRegistry.Register("cons", cons)
	DefaultRegistry.Register("init", initList)
}

// list wraps its arguments as a Q-Expression, taking them as data rather
// than as a form to evaluate.
func list(_ *value.Environment, args []value.Value) value.Value {
	return &value.QExpr{Children: append([]value.Value{}, args...)}
}

// head returns a Q-Expression containing only the first element of its
// single Q-Expression argument.
func head(_ *value.Environment, args []value.Value) value.Value {
	q, err := requireQExpr("head", args, 0)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return arityError("head", 1, len(args))
	}
	if len(q.Children) == 0 {
		return value.NewError("'head' passed {}")
	}
	return &value.QExpr{Children: []value.Value{q.Children[0]}}
}

// tail returns a Q-Expression with the first element of its single
// Q-Expression argument removed.
func tail(_ *value.Environment, args []value.Value) value.Value {
	q, err := requireQExpr("tail", args, 0)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return arityError("tail", 1, len(args))
	}
	if len(q.Children) == 0 {
		return value.NewError("'tail' passed {}")
	}
	rest := append([]value.Value{}, q.Children[1:]...)
	return &value.QExpr{Children: rest}
}

// join concatenates any number of Q-Expressions into one.
func join(_ *value.Environment, args []value.Value) value.Value {
	var out []value.Value
	for i, a := range args {
		q, ok := a.(*value.QExpr)
		if !ok {
			return typeError("join", i+1, a)
		}
		out = append(out, q.Children...)
	}
	return &value.QExpr{Children: out}
}

// cons prepends a value to a Q-Expression.
func cons(_ *value.Environment, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("cons", 2, len(args))
	}
	q, ok := args[1].(*value.QExpr)
	if !ok {
		return typeError("cons", 2, args[1])
	}
	children := append([]value.Value{args[0]}, q.Children...)
	return &value.QExpr{Children: children}
}

// initList returns a Q-Expression with the last element removed.
func initList(_ *value.Environment, args []value.Value) value.Value {
	q, err := requireQExpr("init", args, 0)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return arityError("init", 1, len(args))
	}
	if len(q.Children) == 0 {
		return value.NewError("'init' passed {}")
	}
	rest := append([]value.Value{}, q.Children[:len(q.Children)-1]...)
	return &value.QExpr{Children: rest}
}
