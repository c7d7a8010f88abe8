// Package scanner implements the lexical layer for .http files: splitting raw source into
// logical lines, classifying each line against an ordered [Grammar] and extracting
// multi-line script blocks.
//
// Unlike a character level scanner, the request file grammars are decided one line at
// a time, so the scanner hands the parser whole [Line]s and the parser asks a [Grammar]
// what kind of line it is looking at. The order of the rules in a grammar is the
// priority order, the first rule to match wins.
//
// The scanner is synchronous and holds no state beyond the source lines and a cursor,
// every parse owns its own [Scanner].
package scanner

import (
	"strings"
	"unicode"

	"go.followtheprocess.codes/restdoc/internal/syntax"
)

const (
	scriptClose  = "%}"  // Closes a script block
	separatorTag = "###" // Starts a request separator
)

// Line is a single logical line of source.
type Line struct {
	Raw    string // The line exactly as written, without the line terminator
	Text   string // Raw with leading and trailing whitespace removed
	Number int    // Line number (1 indexed)
	Offset int    // Byte offset of the start of the line from the start of the file
}

// Lines splits src into logical lines.
//
// Lines are terminated by '\n', a trailing '\r' is removed from every line so
// "\r\n" files behave exactly like "\n" ones. A final line terminator does not
// introduce an extra empty line and empty source has no lines at all.
func Lines(src []byte) []Line {
	text := string(src)
	if text == "" {
		return nil
	}

	raw := strings.Split(text, "\n")
	if strings.HasSuffix(text, "\n") {
		raw = raw[:len(raw)-1]
	}

	lines := make([]Line, 0, len(raw))
	offset := 0

	for index, content := range raw {
		length := len(content) + 1 // +1 for the '\n'
		content = strings.TrimSuffix(content, "\r")

		lines = append(lines, Line{
			Raw:    content,
			Text:   strings.TrimSpace(content),
			Number: index + 1,
			Offset: offset,
		})

		offset += length
	}

	return lines
}

// Scanner walks the lines of a single .http file in strict top to bottom order.
type Scanner struct {
	name  string // Name of the file
	lines []Line // The source, split into lines
	pos   int    // Index of the next line to be returned by Next
}

// New returns a new [Scanner] over src.
func New(name string, src []byte) *Scanner {
	return &Scanner{
		name:  name,
		lines: Lines(src),
	}
}

// Next returns the next line and advances the scanner past it. The boolean
// is false once every line has been returned.
func (s *Scanner) Next() (Line, bool) {
	if s.pos >= len(s.lines) {
		return Line{}, false
	}

	line := s.lines[s.pos]
	s.pos++

	return line, true
}

// Script extracts the body of a script block whose opening line ('< {%' or '> {%')
// was the last line returned by [Scanner.Next].
//
// The block runs up to and including the first line that ends in '%}', any
// text before the '%}' on that line becomes the final line of the script. On success
// the scanner is advanced past the closing line and the script lines (raw, joined by
// '\n') are returned along with true.
//
// If a request separator or the end of the input is reached first the block is
// unclosed: Script returns "", false and the scanner is left exactly where it was, so
// the lines after the opener are scanned as usual.
func (s *Scanner) Script() (string, bool) {
	var script []string

	for index := s.pos; index < len(s.lines); index++ {
		line := s.lines[index]

		if strings.HasSuffix(line.Text, scriptClose) {
			last := line.Text
			for strings.HasSuffix(last, scriptClose) {
				last = strings.TrimSuffix(last, scriptClose)
			}

			if last = strings.TrimSpace(last); last != "" {
				script = append(script, last)
			}

			s.pos = index + 1

			return strings.Join(script, "\n"), true
		}

		if strings.HasPrefix(line.Text, separatorTag) {
			return "", false
		}

		script = append(script, line.Raw)
	}

	return "", false
}

// Position returns the [syntax.Position] spanning the non-whitespace text of line.
func (s *Scanner) Position(line Line) syntax.Position {
	indent := len(line.Raw) - len(strings.TrimLeftFunc(line.Raw, unicode.IsSpace))
	start := 1 + indent

	return syntax.Position{
		Name:     s.name,
		Offset:   line.Offset + indent,
		Line:     line.Number,
		StartCol: start,
		EndCol:   max(start, indent+len(line.Text)),
	}
}
