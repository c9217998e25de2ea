// Package runtime provides the interpreter's variable-scoping chain and
// object-allocation bookkeeping — the pieces of the runtime core that sit
// beneath the evaluator but above the raw value model.
package runtime

import (
	"fmt"

	"github.com/maximvlas/flsgo/internal/value"
)

// Environment is a chained scope mapping interned names to values. The
// map is keyed on interned *value.StringObj pointers rather than the
// string's bytes — the intern table's identity guarantee makes a name
// lookup a pointer comparison.
type Environment struct {
	store map[*value.StringObj]value.Value
	outer *Environment
}

// NewEnvironment creates a root-level environment with no outer scope,
// typically the program's global scope.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[*value.StringObj]value.Value)}
}

// NewEnclosedEnvironment creates a scope enclosed by outer — used for
// blocks, function bodies, and loop bodies.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[*value.StringObj]value.Value), outer: outer}
}

// Outer returns the enclosing environment, or nil at the root.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Define writes name unconditionally into this environment's own scope;
// redefinition silently overwrites.
func (e *Environment) Define(name *value.StringObj, val value.Value) {
	e.store[name] = val
}

// Get walks the chain from this environment outward, returning the first
// binding found for name.
func (e *Environment) Get(name *value.StringObj) (value.Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Assign walks the chain outward and writes val into the first scope
// that already has a binding for name. It never creates a new binding —
// that is Define's job — and reports failure so the caller can raise the
// "Undefined variable" runtime error.
func (e *Environment) Assign(name *value.StringObj, val value.Value) error {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name]; ok {
			env.store[name] = val
			return nil
		}
	}
	return fmt.Errorf("undefined variable '%s'", name.String())
}
