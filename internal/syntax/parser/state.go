package parser

import (
	"maps"
	"strings"

	"go.followtheprocess.codes/restdoc/internal/spec"
)

// state is everything the parser accumulates over a single parse.
type state struct {
	current  *spec.Request     // The request in progress, nil if there isn't one
	vars     map[string]string // File level variables
	requests []spec.Request    // Finalized requests, in document order
	body     []string          // Raw body lines of the current request
	inBody   bool              // Whether lines are being captured as the body
}

func newState() *state {
	return &state{
		vars: make(map[string]string),
	}
}

// start begins a new request on the given line, the caller must finalize
// any request already in progress.
func (s *state) start(line int) {
	request := spec.NewRequest(line)
	s.current = &request
	s.inBody = false
	s.body = nil
}

// ensure starts a request on the given line if none is in progress.
func (s *state) ensure(line int) {
	if s.current == nil {
		s.start(line)
	}
}

// endBody stops body capture. If capture was still running the buffered lines
// (trimmed as a whole) become the body of the current request, whitespace alone
// never replaces a body already set.
func (s *state) endBody() {
	if s.current != nil && s.inBody {
		if body := strings.TrimSpace(strings.Join(s.body, "\n")); body != "" {
			s.current.Body = body
		}
	}

	s.inBody = false
	s.body = nil
}

// finalize completes the current request, keeping it only if it has a URL.
func (s *state) finalize() {
	if s.current == nil {
		return
	}

	s.endBody()

	if s.current.URL != "" {
		s.requests = append(s.requests, *s.current)
	}

	s.current = nil
}

// finish finalizes the last request and gives every request its own copy of
// the file level variables. Definitions apply to the whole document, so this
// only happens once every line has been seen.
func (s *state) finish() []spec.Request {
	s.finalize()

	for index := range s.requests {
		s.requests[index].Vars = maps.Clone(s.vars)
	}

	return s.requests
}

// variables returns a copy of the file level variables.
func (s *state) variables() map[string]string {
	return maps.Clone(s.vars)
}
