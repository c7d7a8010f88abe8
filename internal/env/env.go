// Package env loads workspace environments, the variables that sit outside any
// single .http file and are layered underneath a file's own variables when resolving.
//
// Three sources are understood, tried in order by [Load]:
//
//   - http-client.env.json, optionally alongside http-client.private.env.json
//   - http-client.private.env.json on its own
//   - a .env file, exposed as the single environment "default"
package env

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// File names looked for in a workspace.
const (
	PublicFile  = "http-client.env.json"
	PrivateFile = "http-client.private.env.json"
	DotEnvFile  = ".env"
)

// SharedKey is the name of the environment in an env json file whose variables
// are shared by every environment.
const SharedKey = "$shared"

// DefaultName is the name of the environment built from a .env file.
const DefaultName = "default"

// ErrNoEnvironment is returned when asking for an environment that does not exist.
var ErrNoEnvironment = errors.New("no such environment")

// Environment is a single named environment.
type Environment struct {
	// Variables from the public env file
	Variables map[string]string `json:"variables,omitempty"`

	// Variables from the private env file, kept apart so they are never written
	// back into the public one
	Private map[string]string `json:"privateVariables,omitempty"`

	// Name of the environment
	Name string `json:"name"`

	// The file the environment was first defined in
	Source string `json:"source"`
}

// Config is every environment available in a workspace.
type Config struct {
	// Variables shared by every environment
	Shared map[string]string `json:"shared,omitempty"`

	// Shared variables from the private env file
	PrivateShared map[string]string `json:"privateShared,omitempty"`

	// The environments, sorted by name
	Environments []Environment `json:"environments,omitempty"`
}

// Names returns the names of the environments in order.
func (c Config) Names() []string {
	names := make([]string, 0, len(c.Environments))
	for _, environment := range c.Environments {
		names = append(names, environment.Name)
	}

	return names
}

// Lookup returns the environment with the given name.
func (c Config) Lookup(name string) (Environment, bool) {
	index := slices.IndexFunc(c.Environments, func(environment Environment) bool {
		return environment.Name == name
	})
	if index == -1 {
		return Environment{}, false
	}

	return c.Environments[index], true
}

// Variables returns the variables of the named environment merged into a single table,
// later layers win:
//
//	shared < private shared < environment < environment private
//
// The empty name selects no environment and returns just the shared layers, any other
// name that does not exist returns an error wrapping [ErrNoEnvironment].
func (c Config) Variables(name string) (map[string]string, error) {
	vars := make(map[string]string)
	maps.Copy(vars, c.Shared)
	maps.Copy(vars, c.PrivateShared)

	if name == "" {
		return vars, nil
	}

	environment, ok := c.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q, available: %v", ErrNoEnvironment, name, c.Names())
	}

	maps.Copy(vars, environment.Variables)
	maps.Copy(vars, environment.Private)

	return vars, nil
}

// sortEnvironments sorts environments by name.
func sortEnvironments(environments []Environment) {
	slices.SortStableFunc(environments, func(a, b Environment) int {
		return cmp.Compare(a.Name, b.Name)
	})
}
