package spec

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// DefaultMethod is the method of a request that never states one, e.g. a bare URL line.
const DefaultMethod = "GET"

// Request is a single HTTP request extracted from a .http file.
//
// Optional text fields use the empty string for absent. The maps are always
// non-nil for requests produced by the parser.
type Request struct {
	// Request headers, keys exactly as written, may have variable interpolation in the values
	Headers map[string]string `json:"headers,omitempty" toml:"headers,omitempty" yaml:"headers,omitempty"`

	// Every file-level variable in the document the request came from
	Vars map[string]string `json:"variables,omitempty" toml:"variables,omitempty" yaml:"variables,omitempty"`

	// '# @key value' annotations
	Metadata map[string]string `json:"metadata,omitempty" toml:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Optional name, from the trailing text of the '###' separator that started the request
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	// The HTTP method
	Method string `json:"method" toml:"method" yaml:"method"`

	// The URL, may have variable interpolation and/or not be a valid URL
	URL string `json:"url" toml:"url" yaml:"url"`

	// Explicit HTTP version from the request line e.g. "HTTP/1.1"
	HTTPVersion string `json:"httpVersion,omitempty" toml:"httpVersion,omitempty" yaml:"httpVersion,omitempty"`

	// Request body with surrounding whitespace removed, may have variable interpolation.
	// A body of only whitespace is indistinguishable from no body, both are empty
	Body string `json:"body,omitempty" toml:"body,omitempty" yaml:"body,omitempty"`

	// Source of the '< {% ... %}' pre-request script, verbatim
	PreScript string `json:"preScript,omitempty" toml:"preScript,omitempty" yaml:"preScript,omitempty"`

	// Source of the '> {% ... %}' post-request script, verbatim
	PostScript string `json:"postScript,omitempty" toml:"postScript,omitempty" yaml:"postScript,omitempty"`

	// Line number (1 indexed) on which the request began
	Line int `json:"line" toml:"line" yaml:"line"`
}

// NewRequest returns an empty [Request] starting on the given line.
func NewRequest(line int) Request {
	return Request{
		Headers:  make(map[string]string),
		Vars:     make(map[string]string),
		Metadata: make(map[string]string),
		Method:   DefaultMethod,
		Line:     line,
	}
}

// Label returns a human readable identifier for the request: its name if
// it has one, then any '# @name' annotation, and finally the request line.
func (r Request) Label() string {
	if r.Name != "" {
		return r.Name
	}

	if name := r.Metadata["name"]; name != "" {
		return name
	}

	return r.Method + " " + r.URL
}

// Is reports whether the request answers to name, either through its
// separator name or a '# @name' annotation.
func (r Request) Is(name string) bool {
	if name == "" {
		return false
	}

	return r.Name == name || r.Metadata["name"] == name
}

// String implements [fmt.Stringer] for a [Request] and formats
// the request to be a syntactically valid request within
// a JetBrains dialect .http file.
//
// Variables are a property of the file and are not rendered, see [File.String].
// A post-request script directly after the body ends body capture, so a request
// with both renders text whose body is dropped when parsed again.
func (r Request) String() string {
	builder := &strings.Builder{}

	if r.Name != "" {
		fmt.Fprintf(builder, "### %s\n", r.Name)
	} else {
		builder.WriteString("###\n")
	}

	for _, key := range slices.Sorted(maps.Keys(r.Metadata)) {
		fmt.Fprintf(builder, "# @%s %s\n", key, r.Metadata[key])
	}

	if r.PreScript != "" {
		fmt.Fprintf(builder, "< {%%\n%s\n%%}\n", r.PreScript)
	}

	method := r.Method
	if method == "" {
		method = DefaultMethod
	}

	if r.HTTPVersion != "" {
		fmt.Fprintf(builder, "%s %s %s\n", method, r.URL, r.HTTPVersion)
	} else {
		fmt.Fprintf(builder, "%s %s\n", method, r.URL)
	}

	for _, key := range slices.Sorted(maps.Keys(r.Headers)) {
		fmt.Fprintf(builder, "%s: %s\n", key, r.Headers[key])
	}

	if r.Body != "" {
		fmt.Fprintf(builder, "\n%s\n", r.Body)
	}

	if r.PostScript != "" {
		fmt.Fprintf(builder, "\n> {%%\n%s\n%%}\n", r.PostScript)
	}

	return builder.String()
}

// Clone returns a deep copy of the request.
func (r Request) Clone() Request {
	r.Headers = maps.Clone(r.Headers)
	r.Vars = maps.Clone(r.Vars)
	r.Metadata = maps.Clone(r.Metadata)

	return r
}
