package parser

import (
	"go.followtheprocess.codes/restdoc/internal/syntax/scanner"
	"go.followtheprocess.codes/restdoc/internal/syntax/token"
)

// parseVSCode runs the VS Code REST Client grammar over every line in s.
//
// Variable definitions are recognised on any line, even one that would otherwise
// be body content. Comments are only discarded before the body begins.
func (p *Parser) parseVSCode(s *scanner.Scanner) *state {
	st := newState()

	for {
		line, ok := s.Next()
		if !ok {
			break
		}

		tok := scanner.VSCode.Classify(line.Text)

		if tok.Is(token.Variable) {
			st.vars[tok.Key] = tok.Value
			continue
		}

		if tok.Is(token.Separator) {
			st.finalize()
			st.start(line.Number)
			st.current.Name = tok.Value

			continue
		}

		if st.current == nil && tok.Is(token.Blank, token.Comment) {
			continue
		}

		st.ensure(line.Number)

		if st.inBody {
			st.body = append(st.body, line.Raw)
			continue
		}

		request := st.current

		switch tok.Kind {
		case token.Comment:
			// Discarded
		case token.Method:
			request.Method = tok.Key
			request.URL = tok.Value

			if tok.Version != "" {
				request.HTTPVersion = tok.Version
			}
		case token.Header:
			request.Headers[tok.Key] = tok.Value
		case token.Blank:
			if request.URL != "" {
				st.inBody = true
			}
		case token.URL:
			if request.URL != "" {
				p.diagnosef(s, line, "URL %q ignored, the request already has one", tok.Value)
				continue
			}

			request.URL = tok.Value
		default:
			p.diagnosef(s, line, "unrecognised line %q ignored", line.Text)
		}
	}

	return st
}
