package resolver

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUndefined is returned when looking up a variable that no scope defines.
var ErrUndefined = errors.New("undefined variable")

// Environment is a scoped set of variables. Lookups start in the innermost
// scope and walk outwards so inner definitions shadow outer ones.
type Environment struct {
	values map[string]string
	parent *Environment
}

// NewEnvironment creates a new, empty [Environment] with no parent.
func NewEnvironment() *Environment {
	return &Environment{
		values: make(map[string]string),
		parent: nil,
	}
}

// FromMap creates a new [Environment] with no parent holding a copy of vars.
func FromMap(vars map[string]string) *Environment {
	env := NewEnvironment()
	maps.Copy(env.values, vars)

	return env
}

// Define defines a new variable in the innermost scope.
func (e *Environment) Define(key, value string) error {
	if _, exists := e.values[key]; exists {
		return fmt.Errorf("variable %s already defined", key)
	}

	e.values[key] = value

	return nil
}

// Get walks up the scope to find a variable by name, if it reaches the outermost
// scope without finding it, it returns an error wrapping [ErrUndefined].
func (e *Environment) Get(key string) (string, error) {
	value, ok := e.Lookup(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUndefined, key)
	}

	return value, nil
}

// Lookup is like [Environment.Get] but reports existence with a boolean.
func (e *Environment) Lookup(key string) (string, bool) {
	for env := e; env != nil; env = env.parent {
		if value, ok := env.values[key]; ok {
			return value, true
		}
	}

	return "", false
}

// Child creates a new empty [Environment] using the calling one as a parent.
func (e *Environment) Child() *Environment {
	return &Environment{
		values: make(map[string]string),
		parent: e,
	}
}

// Names returns the sorted names of every variable visible from this scope.
func (e *Environment) Names() []string {
	seen := make(map[string]struct{})

	for env := e; env != nil; env = env.parent {
		for name := range env.values {
			seen[name] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}
