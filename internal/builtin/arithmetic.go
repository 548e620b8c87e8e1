package builtin

import "github.com/cwbudde/go-lispy/internal/value"

func init() {
	DefaultRegistry.Register("+", add)
	DefaultRegistry.Register("-", sub)
	DefaultRegistry.Register("*", mul)
	DefaultRegistry.Register("/", div)
	DefaultRegistry.Register("%", mod)
}

// numericArgs validates that every argument is an Integer and returns
// their values, or the first type error encountered.
func numericArgs(name string, args []value.Value) ([]int64, *value.Error) {
	if len(args) == 0 {
		return nil, arityError(name, 1, 0)
	}
	vals := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(*value.Integer)
		if !ok {
			return nil, typeError(name, i+1, a)
		}
		vals[i] = n.Value
	}
	return vals, nil
}

func add(_ *value.Environment, args []value.Value) value.Value {
	vals, err := numericArgs("+", args)
	if err != nil {
		return err
	}
	if len(vals) == 1 {
		return &value.Integer{Value: vals[0]}
	}
	total := vals[0]
	for _, v := range vals[1:] {
		total += v
	}
	return &value.Integer{Value: total}
}

func sub(_ *value.Environment, args []value.Value) value.Value {
	vals, err := numericArgs("-", args)
	if err != nil {
		return err
	}
	if len(vals) == 1 {
		return &value.Integer{Value: -vals[0]}
	}
	total := vals[0]
	for _, v := range vals[1:] {
		total -= v
	}
	return &value.Integer{Value: total}
}

func mul(_ *value.Environment, args []value.Value) value.Value {
	vals, err := numericArgs("*", args)
	if err != nil {
		return err
	}
	total := vals[0]
	for _, v := range vals[1:] {
		total *= v
	}
	return &value.Integer{Value: total}
}

func div(_ *value.Environment, args []value.Value) value.Value {
	vals, err := numericArgs("/", args)
	if err != nil {
		return err
	}
	if len(vals) == 1 {
		return &value.Integer{Value: vals[0]}
	}
	total := vals[0]
	for _, v := range vals[1:] {
		if v == 0 {
			return value.NewError("Division by zero")
		}
		total /= v
	}
	return &value.Integer{Value: total}
}

func mod(_ *value.Environment, args []value.Value) value.Value {
	vals, err := numericArgs("%", args)
	if err != nil {
		return err
	}
	if len(vals) != 2 {
		return arityError("%", 2, len(vals))
	}
	if vals[1] == 0 {
		return value.NewError("Division by zero")
	}
	return &value.Integer{Value: vals[0] % vals[1]}
}
