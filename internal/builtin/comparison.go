package builtin

import "github.com/cwbudde/go-lispy/internal/value"

func init() {
	DefaultRegistry.Register("<", lt)
	DefaultRegistry.Register("<=", le)
	DefaultRegistry.Register(">", gt)
	DefaultRegistry.Register(">=", ge)
	DefaultRegistry.Register("==", eq)
	DefaultRegistry.Register("!=", ne)
}

func ordered(name string, args []value.Value, cmp func(a, b int64) bool) value.Value {
	if len(args) != 2 {
		return arityError(name, 2, len(args))
	}
	a, err := requireInteger(name, args, 0)
	if err != nil {
		return err
	}
	b, err := requireInteger(name, args, 1)
	if err != nil {
		return err
	}
	return value.Bool(cmp(a.Value, b.Value))
}

func lt(_ *value.Environment, args []value.Value) value.Value {
	return ordered("<", args, func(a, b int64) bool { return a < b })
}

func le(_ *value.Environment, args []value.Value) value.Value {
	return ordered("<=", args, func(a, b int64) bool { return a <= b })
}

func gt(_ *value.Environment, args []value.Value) value.Value {
	return ordered(">", args, func(a, b int64) bool { return a > b })
}

func ge(_ *value.Environment, args []value.Value) value.Value {
	return ordered(">=", args, func(a, b int64) bool { return a >= b })
}

// eq and ne use structural Equal, so they work on any pair of values,
// not just integers.
func eq(_ *value.Environment, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("==", 2, len(args))
	}
	return value.Bool(value.Equal(args[0], args[1]))
}

func ne(_ *value.Environment, args []value.Value) value.Value {
	if len(args) != 2 {
		return arityError("!=", 2, len(args))
	}
	return value.Bool(!value.Equal(args[0], args[1]))
}
