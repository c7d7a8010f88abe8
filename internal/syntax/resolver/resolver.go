// Package resolver implements {{name}} placeholder substitution for parsed requests.
//
// Substitution is a single left to right pass: every placeholder naming a known
// variable is replaced with its raw value, unknown placeholders are left exactly as
// written for the caller to report, and replaced text is never rescanned so a
// value that itself contains a placeholder is not expanded again.
package resolver

import (
	"maps"
	"regexp"
	"slices"

	"go.followtheprocess.codes/restdoc/internal/spec"
)

// placeholderPattern matches a single {{name}} placeholder.
//
//nolint:gochecknoglobals // Compiled once, read only
var placeholderPattern = regexp.MustCompile(`\{\{([\w.-]+)\}\}`)

// Substitute replaces each {{name}} in input that names a variable in vars
// with its value, leaving every other placeholder untouched.
func Substitute(input string, vars map[string]string) string {
	return substitute(input, func(name string) (string, bool) {
		value, ok := vars[name]
		return value, ok
	})
}

// Placeholders returns the names of the placeholders in input in the order
// they first appear, each name only once.
func Placeholders(input string) []string {
	var names []string

	for _, groups := range placeholderPattern.FindAllStringSubmatch(input, -1) {
		if name := groups[1]; !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	return names
}

// Resolver substitutes placeholders in requests against an [Environment].
type Resolver struct {
	env *Environment // Outermost scope, e.g. a workspace environment
}

// New returns a new [Resolver] over env, a nil env is an empty one.
func New(env *Environment) *Resolver {
	if env == nil {
		env = NewEnvironment()
	}

	return &Resolver{env: env}
}

// Resolve returns a copy of request with placeholders substituted in its method, URL,
// header values and body. Header names and scripts are left as written.
//
// The request's own variables are a child scope of the resolver's environment, file
// variables therefore shadow environment variables of the same name.
func (r *Resolver) Resolve(request spec.Request) spec.Request {
	scope := r.env.Child()
	for name, value := range request.Vars {
		// Keys of a map are unique so Define cannot fail
		_ = scope.Define(name, value) //nolint:errcheck // See above
	}

	resolved := request.Clone()

	resolved.Method = substitute(request.Method, scope.Lookup)
	resolved.URL = substitute(request.URL, scope.Lookup)
	resolved.Body = substitute(request.Body, scope.Lookup)

	for key, value := range request.Headers {
		resolved.Headers[key] = substitute(value, scope.Lookup)
	}

	return resolved
}

// ResolveFile resolves every request in file, see [Resolver.Resolve].
func (r *Resolver) ResolveFile(file spec.File) spec.File {
	resolved := file
	resolved.Requests = make([]spec.Request, 0, len(file.Requests))

	for _, request := range file.Requests {
		resolved.Requests = append(resolved.Requests, r.Resolve(request))
	}

	return resolved
}

// Unresolved returns the names of the placeholders still present in the parts of
// request that [Resolver.Resolve] substitutes, in order and without duplicates.
func Unresolved(request spec.Request) []string {
	var names []string

	add := func(text string) {
		for _, name := range Placeholders(text) {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}

	add(request.Method)
	add(request.URL)

	for _, key := range slices.Sorted(maps.Keys(request.Headers)) {
		add(request.Headers[key])
	}

	add(request.Body)

	return names
}

// substitute is the single pass replacement shared by everything in the package.
func substitute(input string, lookup func(name string) (string, bool)) string {
	return placeholderPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := lookup(name); ok {
			return value
		}

		return match
	})
}
