package parser

import (
	"go.followtheprocess.codes/restdoc/internal/syntax/scanner"
	"go.followtheprocess.codes/restdoc/internal/syntax/token"
)

// parseJetBrains runs the JetBrains HTTP Client grammar over every line in s.
func (p *Parser) parseJetBrains(s *scanner.Scanner) *state {
	st := newState()

	for {
		line, ok := s.Next()
		if !ok {
			break
		}

		tok := scanner.JetBrains.Classify(line.Text)
		unclosed := false

		if tok.IsScript() {
			if script, closed := s.Script(); closed {
				st.attach(tok.Kind, script, line.Number)
				continue
			}

			// Nothing was consumed, the opener goes through the remaining rules
			// as an ordinary line
			p.diagnose(s, line, "unclosed script block, no '%}' before the next request or end of file")
			tok = token.Token{Kind: token.Unclassified}
			unclosed = true
		}

		if tok.Is(token.Separator) {
			st.finalize()
			st.start(line.Number)
			st.current.Name = tok.Value

			continue
		}

		if st.current == nil && tok.Is(token.Blank) {
			continue
		}

		st.ensure(line.Number)

		if st.inBody {
			st.body = append(st.body, line.Raw)
			continue
		}

		request := st.current

		switch tok.Kind {
		case token.Metadata:
			request.Metadata[tok.Key] = tok.Value
		case token.Comment:
			// Discarded
		case token.Variable:
			st.vars[tok.Key] = tok.Value
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
			if !unclosed {
				p.diagnosef(s, line, "unrecognised line %q ignored", line.Text)
			}
		}
	}

	return st
}

// attach attaches a captured script block to the right request.
//
// A pre-request script belongs to the request about to start, so one is created if
// nothing is in progress. A post-request script stops body capture but leaves the
// captured lines buffered: they only become the body if a later blank line resumes
// capture before the request is finalized.
func (s *state) attach(kind token.Kind, script string, line int) {
	switch kind {
	case token.PreScript:
		s.ensure(line)
		s.current.PreScript = script
	case token.PostScript:
		if s.current != nil {
			s.current.PostScript = script
		}

		s.inBody = false
	}
}
