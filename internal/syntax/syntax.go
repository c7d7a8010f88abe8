// Package syntax holds the types shared by every stage of turning raw .http text
// into requests: source positions, diagnostics and the dialect of a document.
package syntax

import (
	"cmp"
	"fmt"
	"strings"
)

// Dialect is one of the request file grammars understood by the parser.
type Dialect int

const (
	// JetBrains is the JetBrains HTTP Client grammar, the superset dialect with
	// pre and post request scripts and '# @key value' metadata.
	JetBrains Dialect = iota

	// VSCode is the VS Code REST Client grammar.
	VSCode
)

// String implements [fmt.Stringer] for [Dialect].
func (d Dialect) String() string {
	switch d {
	case JetBrains:
		return "jetbrains"
	case VSCode:
		return "vscode"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// MarshalText implements [encoding.TextMarshaler] for [Dialect].
func (d Dialect) MarshalText() ([]byte, error) {
	switch d {
	case JetBrains, VSCode:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("invalid dialect: %d", int(d))
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [Dialect].
func (d *Dialect) UnmarshalText(text []byte) error {
	dialect, err := ParseDialect(string(text))
	if err != nil {
		return err
	}

	*d = dialect

	return nil
}

// ParseDialect returns the [Dialect] named by text, case insensitive.
func ParseDialect(text string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "jetbrains":
		return JetBrains, nil
	case "vscode":
		return VSCode, nil
	default:
		return JetBrains, fmt.Errorf("unknown dialect %q, expected one of 'jetbrains', 'vscode'", text)
	}
}

// Position is an arbitrary source file position including file, line
// and column information. It can also express a range of source via StartCol
// and EndCol, this is useful for diagnostics.
//
// Positions without filenames are considered invalid, in the case of stdin
// the string "stdin" may be used.
type Position struct {
	Name     string `json:"name"`     // Filename
	Offset   int    `json:"offset"`   // Byte offset of the position from the start of the file
	Line     int    `json:"line"`     // Line number (1 indexed)
	StartCol int    `json:"startCol"` // Start column (1 indexed)
	EndCol   int    `json:"endCol"`   // End column (1 indexed), EndCol == StartCol when pointing to a single character
}

// IsValid reports whether the [Position] describes a valid source position.
//
// The rules are:
//
//   - At least Name, Line and StartCol must be set (and non zero)
//   - EndCol cannot be 0, it's only allowed values are StartCol or any number greater than StartCol
func (p Position) IsValid() bool {
	if p.Name == "" || p.Line < 1 || p.StartCol < 1 || p.EndCol < 1 || p.EndCol < p.StartCol {
		return false
	}

	return true
}

// String returns a string representation of a [Position].
//
// It is formatted such that most text editors/terminals will be able to support clicking on it
// and navigating to the position.
//
//   - "file:line:start-end": valid position pointing to a range of text on the line
//   - "file:line:start": valid position pointing to a single character on the line (EndCol == StartCol)
func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf(
			"BadPosition: {Name: %q, Line: %d, StartCol: %d, EndCol: %d}",
			p.Name,
			p.Line,
			p.StartCol,
			p.EndCol,
		)
	}

	if p.StartCol == p.EndCol {
		return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.StartCol)
	}

	return fmt.Sprintf("%s:%d:%d-%d", p.Name, p.Line, p.StartCol, p.EndCol)
}

// ComparePosition is like [cmp.Compare] for a [syntax.Position].
//
// If x and y refer to the same file, it returns [cmp.Compare] of
// the two offsets, otherwise the names are compared alphabetically.
func ComparePosition(x, y Position) int {
	if x == y {
		return 0
	}

	if x.Name == y.Name {
		return cmp.Compare(x.Offset, y.Offset)
	}

	return cmp.Compare(x.Name, y.Name)
}

// Diagnostic is a non-fatal note about a line the parser could not make use of.
//
// Diagnostics never change the parse result, they exist so that silently
// ignored input can be surfaced by tooling.
type Diagnostic struct {
	Msg      string   `json:"msg"`      // A descriptive message explaining the problem
	Position Position `json:"position"` // The source position the diagnostic points to
}

// String prints a [Diagnostic].
func (d Diagnostic) String() string {
	return d.Position.String() + ": " + d.Msg + "\n"
}
