// Package parser implements the .http file parser for both the JetBrains HTTP Client
// and the VS Code REST Client dialects.
//
// The parser is line oriented: the scanner hands it whole lines, a dialect specific
// [scanner.Grammar] classifies each one and a small state machine builds up the
// requests in document order. Unless told otherwise with [WithDialect], the dialect is
// chosen by [Detect].
//
// Parsing is total, there is no such thing as a syntax error in either dialect. Lines
// that contribute nothing (anything the grammar cannot classify, an unclosed script
// block) are ignored exactly as the editors that define the dialects ignore them, but
// each one is recorded as a [syntax.Diagnostic] so tooling can point them out.
package parser

import (
	"errors"
	"fmt"
	"slices"

	"go.followtheprocess.codes/restdoc/internal/spec"
	"go.followtheprocess.codes/restdoc/internal/syntax"
	"go.followtheprocess.codes/restdoc/internal/syntax/scanner"
)

// ErrParse is returned when the parser cannot be used at all, the grammar itself
// never produces it.
var ErrParse = errors.New("parse error")

// Option is a functional option for configuring a [Parser].
type Option func(p *Parser)

// WithDialect forces the parser to use the given dialect rather than
// detecting one from the source.
func WithDialect(dialect syntax.Dialect) Option {
	return func(p *Parser) {
		p.dialect = dialect
		p.detect = false
	}
}

// Parser is the http file parser.
type Parser struct {
	diagnostics []syntax.Diagnostic // Diagnostics gathered during parsing
	name        string              // Name of the file being parsed
	src         []byte              // Raw source text
	dialect     syntax.Dialect      // The dialect to parse src as
	detect      bool                // Whether the dialect should be detected from src
}

// New initialises and returns a new [Parser] that parses src.
func New(name string, src []byte, options ...Option) *Parser {
	p := &Parser{
		name:   name,
		src:    src,
		detect: true,
	}

	for _, option := range options {
		option(p)
	}

	if p.detect {
		p.dialect = Detect(src)
	}

	return p
}

// Parse is a convenience wrapper that parses src with a detected dialect.
func Parse(name string, src []byte) (spec.File, error) {
	return New(name, src).Parse()
}

// Dialect returns the dialect the parser will parse its source as.
func (p *Parser) Dialect() syntax.Dialect {
	return p.dialect
}

// Parse parses the source to completion and returns the [spec.File] it describes.
//
// Only requests with a URL are kept, in the order they appear. Every request carries
// every file level variable in the document regardless of where it was defined.
//
// Parse may be called more than once, each call starts from the top of the source.
func (p *Parser) Parse() (spec.File, error) {
	if p == nil {
		return spec.File{}, fmt.Errorf("%w: Parse called on nil parser", ErrParse)
	}

	p.diagnostics = nil
	s := scanner.New(p.name, p.src)

	var st *state

	switch p.dialect {
	case syntax.JetBrains:
		st = p.parseJetBrains(s)
	case syntax.VSCode:
		st = p.parseVSCode(s)
	default:
		return spec.File{}, fmt.Errorf("%w: unknown dialect %s", ErrParse, p.dialect)
	}

	return spec.File{
		Name:     p.name,
		Dialect:  p.dialect,
		Vars:     st.variables(),
		Requests: st.finish(),
	}, nil
}

// Diagnostics returns any [syntax.Diagnostic] gathered during the last call to
// [Parser.Parse], in source order.
func (p *Parser) Diagnostics() []syntax.Diagnostic {
	diagnostics := slices.Clone(p.diagnostics)

	slices.SortStableFunc(diagnostics, func(a, b syntax.Diagnostic) int {
		return syntax.ComparePosition(a.Position, b.Position)
	})

	return diagnostics
}

// diagnose records a diagnostic pointing at line.
func (p *Parser) diagnose(s *scanner.Scanner, line scanner.Line, msg string) {
	p.diagnostics = append(p.diagnostics, syntax.Diagnostic{
		Msg:      msg,
		Position: s.Position(line),
	})
}

// diagnosef calls diagnose with a formatted message.
func (p *Parser) diagnosef(s *scanner.Scanner, line scanner.Line, format string, a ...any) {
	p.diagnose(s, line, fmt.Sprintf(format, a...))
}
