// Package token provides the set of line classifications for a .http file.
//
// The request file grammars are line oriented, so unlike a conventional token
// stream each [Token] describes one whole line of source: what kind of line it is
// and the fields captured from it.
package token

import (
	"fmt"
	"slices"
)

// Kind is the kind of a line.
type Kind int

const (
	Unclassified Kind = iota // Unclassified
	Blank                    // Blank
	Separator                // Separator
	PreScript                // PreScript
	PostScript               // PostScript
	Metadata                 // Metadata
	Comment                  // Comment
	Variable                 // Variable
	Method                   // Method
	Header                   // Header
	URL                      // URL
)

// String implements [fmt.Stringer] for [Kind].
func (k Kind) String() string {
	switch k {
	case Unclassified:
		return "Unclassified"
	case Blank:
		return "Blank"
	case Separator:
		return "Separator"
	case PreScript:
		return "PreScript"
	case PostScript:
		return "PostScript"
	case Metadata:
		return "Metadata"
	case Comment:
		return "Comment"
	case Variable:
		return "Variable"
	case Method:
		return "Method"
	case Header:
		return "Header"
	case URL:
		return "URL"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements [encoding.TextMarshaler] for [Kind].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Token is a single classified line.
//
// Which of the captured fields are populated depends on the Kind:
//
//	Separator:  Value is the (possibly empty) request name
//	Metadata:   Key and Value of the '# @key value' annotation
//	Variable:   Key and Value of the '@name = value' definition
//	Method:     Key is the HTTP method, Value the URL, Version the optional HTTP version
//	Header:     Key and Value of the header
//	URL:        Value is the bare URL
type Token struct {
	Key     string // Captured key, method or name
	Value   string // Captured value, URL or separator text
	Version string // Explicit HTTP version on a method line e.g. "HTTP/1.1"
	Kind    Kind   // The kind of line this is
}

// String implements [fmt.Stringer] for a [Token].
func (t Token) String() string {
	switch t.Kind {
	case Method:
		if t.Version != "" {
			return fmt.Sprintf("<Token::%s %s %s %s>", t.Kind, t.Key, t.Value, t.Version)
		}

		return fmt.Sprintf("<Token::%s %s %s>", t.Kind, t.Key, t.Value)
	case Metadata, Variable, Header:
		return fmt.Sprintf("<Token::%s key=%q, value=%q>", t.Kind, t.Key, t.Value)
	case Separator, URL:
		return fmt.Sprintf("<Token::%s %q>", t.Kind, t.Value)
	default:
		return fmt.Sprintf("<Token::%s>", t.Kind)
	}
}

// Is reports whether the token is any of the provided [Kind]s.
func (t Token) Is(kinds ...Kind) bool {
	return slices.Contains(kinds, t.Kind)
}

// IsScript reports whether the token opens a script block.
func (t Token) IsScript() bool {
	return t.Is(PreScript, PostScript)
}

// Methods is the set of HTTP methods recognised on a request line.
var Methods = []string{ //nolint:gochecknoglobals // Read only lookup table
	"GET",
	"POST",
	"PUT",
	"DELETE",
	"PATCH",
	"HEAD",
	"OPTIONS",
	"TRACE",
	"CONNECT",
}

// IsMethod reports whether text is one of the recognised HTTP [Methods],
// the comparison is case sensitive.
func IsMethod(text string) bool {
	return slices.Contains(Methods, text)
}
