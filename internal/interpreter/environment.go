package interpreter

import "golox/internal/loxerr"

// Environment is a mapping from identifier names to values with an
// optional parent, forming the chain used for lexical scoping.
// Environments form a tree (never a cycle), so plain parent pointers
// are enough; Go's GC reclaims a scope once nothing keeps it alive.
type Environment struct {
	parent *Environment
	values map[string]Value
}

// NewEnvironment creates a child of parent (nil for a root/globals
// scope).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, values: make(map[string]Value)}
}

// Define unconditionally inserts or overwrites name in this scope.
// Redeclaration is allowed (handy in a REPL, where re-running a `var`
// line shouldn't require tracking every prior declaration).
func (e *Environment) Define(name string, v Value) {
	e.values[name] = v
}

// Get searches from this scope upward.
func (e *Environment) Get(name string, line int) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, loxerr.NewError(loxerr.NameError, line, "Undefined variable '%s'.", name)
}

// Assign searches from this scope upward and mutates the first
// occurrence of name.
func (e *Environment) Assign(name string, v Value, line int) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return nil
		}
	}
	return loxerr.NewError(loxerr.NameError, line, "Undefined variable '%s'.", name)
}
