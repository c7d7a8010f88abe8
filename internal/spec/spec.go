// Package spec provides the Request and File types, the canonical data
// structures describing a .http file and the HTTP requests contained inside it.
//
// The parser produces these directly, placeholders such as {{host}} are left as
// written and may be substituted later by the resolver.
//
// Both types render back into .http text with String, which is what the
// http exporter and the import command emit.
package spec

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.followtheprocess.codes/restdoc/internal/syntax"
)

// File represents a single .http file as parsed.
type File struct {
	// File level variables, every '@name = value' definition in the document
	Vars map[string]string `json:"variables,omitempty" toml:"variables,omitempty" yaml:"variables,omitempty"`

	// Name of the file
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// The HTTP requests described in the file, in document order
	Requests []Request `json:"requests,omitempty" toml:"requests,omitempty" yaml:"requests,omitempty"`

	// The dialect the file was parsed with
	Dialect syntax.Dialect `json:"dialect" toml:"dialect" yaml:"dialect"`
}

// String implements [fmt.Stringer] for a [File] and renders
// the file as a canonical .http file. Variables come out as '@name = value'
// lines which alone make the text detect as VS Code.
func (f File) String() string {
	builder := &strings.Builder{}

	for _, key := range slices.Sorted(maps.Keys(f.Vars)) {
		fmt.Fprintf(builder, "@%s = %s\n", key, f.Vars[key])
	}

	for index, request := range f.Requests {
		// Separate the request from the globals or the previous request by a newline
		if index > 0 || len(f.Vars) != 0 {
			builder.WriteByte('\n')
		}

		builder.WriteString(request.String())
	}

	return builder.String()
}

// ContainsRequest reports whether a request with the given name is present
// in the file.
func (f File) ContainsRequest(name string) bool {
	return slices.ContainsFunc(f.Requests, func(request Request) bool {
		return request.Is(name)
	})
}

// Filter returns a copy of the file keeping only the requests answering to one
// of the given names, an empty list of names keeps everything.
func (f File) Filter(names ...string) File {
	if len(names) == 0 {
		return f
	}

	filtered := f
	filtered.Requests = nil

	for _, request := range f.Requests {
		if slices.ContainsFunc(names, request.Is) {
			filtered.Requests = append(filtered.Requests, request)
		}
	}

	return filtered
}
