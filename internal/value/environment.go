package value

import "sort"

// Environment is a lexical scope: a name→Value binding map, a parallel
// name→documentation map, and an optional parent link. A lookup walks
// to the parent on miss; a Put writes only to the receiver (spec §3).
type Environment struct {
	vars   map[string]Value
	docs   map[string]string
	parent *Environment
}

// NewEnvironment creates an empty environment with no parent. It backs
// the distinguished global environment built at startup and the fresh
// closure environment of every Lambda that \ constructs.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value), docs: make(map[string]string)}
}

// Get looks up name in the receiver, then walks the parent chain.
func (e *Environment) Get(name string) (Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, false
}

// GetLocal looks up name only in the receiver, ignoring any parent.
func (e *Environment) GetLocal(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Put binds name to v in the receiver's own scope.
func (e *Environment) Put(name string, v Value) {
	e.vars[name] = v
}

// PutDoc records documentation text for name in the receiver's own scope.
func (e *Environment) PutDoc(name, doc string) {
	e.docs[name] = doc
}

// Doc looks up documentation for name, walking the parent chain.
func (e *Environment) Doc(name string) (string, bool) {
	if d, ok := e.docs[name]; ok {
		return d, true
	}
	if e.parent != nil {
		return e.parent.Doc(name)
	}
	return "", false
}

// Root walks the parent chain and returns the topmost (global)
// environment. def and load write into Root(), per spec §4.3.
func (e *Environment) Root() *Environment {
	cur := e
	for cur.parent != nil {
		cur = cur.parent
	}
	return cur
}

// Parent returns the receiver's parent, or nil for the global scope.
func (e *Environment) Parent() *Environment {
	return e.parent
}

// SetParent re-parents the receiver. Lambda application uses this to
// attach the caller's environment to a cloned closure scope for the
// duration of one call (spec §4.2.1).
func (e *Environment) SetParent(parent *Environment) {
	e.parent = parent
}

// Clone returns a new Environment with a shallow copy of the receiver's
// own bindings and docs and no parent. Values are immutable, so copying
// the map entries is sufficient to prevent one invocation's bindings
// from leaking into another's (spec §3, "Local environment").
func (e *Environment) Clone() *Environment {
	vars := make(map[string]Value, len(e.vars))
	for k, v := range e.vars {
		vars[k] = v
	}
	docs := make(map[string]string, len(e.docs))
	for k, v := range e.docs {
		docs[k] = v
	}
	return &Environment{vars: vars, docs: docs}
}

// Names returns the receiver's own binding names in sorted order, for
// deterministic partial-application display and `help env` snapshots.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
