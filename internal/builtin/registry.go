// Package builtin holds the primitive functions that need no access to
// the evaluator: list manipulation, arithmetic, comparison, and I/O.
// Primitives that must recurse back into evaluation (eval, if, def, =,
// \, load, doc, help) are registered into DefaultRegistry by
// internal/eval instead, since this package cannot import it without
// creating an import cycle.
package builtin

import "github.com/cwbudde/go-lispy/internal/value"

// Func is the shape every builtin and control primitive implements.
type Func func(env *value.Environment, args []value.Value) value.Value

// Registry maps symbol names to their builtin implementation.
type Registry struct {
	fns map[string]Func
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]Func)}
}

// Register adds or replaces the implementation for name.
func (r *Registry) Register(name string, fn Func) {
	r.fns[name] = fn
}

// Get looks up the implementation for name.
func (r *Registry) Get(name string) (Func, bool) {
	fn, ok := r.fns[name]
	return fn, ok
}

// Names returns every registered symbol name.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fns))
	for name := range r.fns {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is populated by this package's init (arithmetic, list,
// comparison, equality, I/O) and by internal/eval's init (control
// primitives), and is what internal/boot installs into the global
// environment as BuiltinFunction values.
var DefaultRegistry = NewRegistry()

func arityError(name string, want, got int) *value.Error {
	return value.NewError("'%s' expected %d argument(s), got %d", name, want, got)
}

func typeError(name string, argIndex int, got value.Value) *value.Error {
	return value.NewError("'%s' passed incorrect type for argument %d, got %s", name, argIndex, got.Tag())
}

func requireQExpr(name string, args []value.Value, index int) (*value.QExpr, *value.Error) {
	if index >= len(args) {
		return nil, arityError(name, index+1, len(args))
	}
	q, ok := args[index].(*value.QExpr)
	if !ok {
		return nil, typeError(name, index+1, args[index])
	}
	return q, nil
}

func requireInteger(name string, args []value.Value, index int) (*value.Integer, *value.Error) {
	if index >= len(args) {
		return nil, arityError(name, index+1, len(args))
	}
	n, ok := args[index].(*value.Integer)
	if !ok {
		return nil, typeError(name, index+1, args[index])
	}
	return n, nil
}
