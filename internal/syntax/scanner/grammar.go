package scanner

import (
	"regexp"
	"strings"

	"go.followtheprocess.codes/restdoc/internal/syntax/token"
)

// Line patterns, all are matched against the trimmed line.
//
//nolint:gochecknoglobals // Compiled once, read only
var (
	separatorPattern  = regexp.MustCompile(`^###\s*(.*)$`)
	metadataPattern   = regexp.MustCompile(`^#\s*@([\w-]+)\s+(.*)$`)
	variablePattern   = regexp.MustCompile(`^@([\w-]+)\s*=\s*(.*)$`)
	headerPattern     = regexp.MustCompile(`^([\w-]+):\s*(.*)$`)
	preScriptPattern  = regexp.MustCompile(`^<\s*\{%`)
	postScriptPattern = regexp.MustCompile(`^>\s*\{%`)
	methodPattern     = regexp.MustCompile(
		`^(GET|POST|PUT|DELETE|PATCH|HEAD|OPTIONS|TRACE|CONNECT)\s+(.+?)(?:\s+(HTTP/[\d.]+))?$`,
	)
)

// Rule is a single line classification rule.
type Rule struct {
	match func(text string) (token.Token, bool)
	Kind  token.Kind // The kind of line this rule recognises
}

// Grammar is an ordered set of rules, earlier rules take priority.
type Grammar []Rule

// Classify returns the [token.Token] produced by the first rule in the grammar
// that matches text, which should already be trimmed.
//
// A line matching no rule is returned as [token.Unclassified].
func (g Grammar) Classify(text string) token.Token {
	for _, rule := range g {
		if tok, ok := rule.match(text); ok {
			return tok
		}
	}

	return token.Token{Kind: token.Unclassified}
}

// Kinds returns the kinds recognised by the grammar in priority order.
func (g Grammar) Kinds() []token.Kind {
	kinds := make([]token.Kind, 0, len(g))
	for _, rule := range g {
		kinds = append(kinds, rule.Kind)
	}

	return kinds
}

// JetBrains is the line grammar of the JetBrains HTTP Client dialect.
//
//nolint:gochecknoglobals // Read only rule table
var JetBrains = Grammar{
	preScriptRule,
	postScriptRule,
	separatorRule,
	blankRule,
	metadataRule,
	commentRule,
	variableRule,
	methodRule,
	headerRule,
	urlRule,
}

// VSCode is the line grammar of the VS Code REST Client dialect. Variable
// definitions outrank everything else and there are no scripts or metadata.
//
//nolint:gochecknoglobals // Read only rule table
var VSCode = Grammar{
	variableRule,
	separatorRule,
	blankRule,
	commentRule,
	methodRule,
	headerRule,
	urlRule,
}

//nolint:gochecknoglobals // Read only rules
var (
	preScriptRule = Rule{
		Kind: token.PreScript,
		match: func(text string) (token.Token, bool) {
			return token.Token{Kind: token.PreScript}, preScriptPattern.MatchString(text)
		},
	}

	postScriptRule = Rule{
		Kind: token.PostScript,
		match: func(text string) (token.Token, bool) {
			return token.Token{Kind: token.PostScript}, postScriptPattern.MatchString(text)
		},
	}

	separatorRule = Rule{
		Kind: token.Separator,
		match: func(text string) (token.Token, bool) {
			groups := separatorPattern.FindStringSubmatch(text)
			if groups == nil {
				return token.Token{}, false
			}

			return token.Token{Kind: token.Separator, Value: strings.TrimSpace(groups[1])}, true
		},
	}

	blankRule = Rule{
		Kind: token.Blank,
		match: func(text string) (token.Token, bool) {
			return token.Token{Kind: token.Blank}, text == ""
		},
	}

	metadataRule = Rule{
		Kind: token.Metadata,
		match: func(text string) (token.Token, bool) {
			return keyValue(token.Metadata, metadataPattern, text)
		},
	}

	commentRule = Rule{
		Kind: token.Comment,
		match: func(text string) (token.Token, bool) {
			isComment := strings.HasPrefix(text, "#") || strings.HasPrefix(text, "//")
			return token.Token{Kind: token.Comment}, isComment
		},
	}

	variableRule = Rule{
		Kind: token.Variable,
		match: func(text string) (token.Token, bool) {
			return keyValue(token.Variable, variablePattern, text)
		},
	}

	methodRule = Rule{
		Kind: token.Method,
		match: func(text string) (token.Token, bool) {
			groups := methodPattern.FindStringSubmatch(text)
			if groups == nil {
				return token.Token{}, false
			}

			return token.Token{
				Kind:    token.Method,
				Key:     groups[1],
				Value:   groups[2],
				Version: groups[3],
			}, true
		},
	}

	headerRule = Rule{
		Kind: token.Header,
		match: func(text string) (token.Token, bool) {
			return keyValue(token.Header, headerPattern, text)
		},
	}

	urlRule = Rule{
		Kind: token.URL,
		match: func(text string) (token.Token, bool) {
			isURL := strings.HasPrefix(text, "http://") ||
				strings.HasPrefix(text, "https://") ||
				strings.HasPrefix(text, "/")

			return token.Token{Kind: token.URL, Value: text}, isURL
		},
	}
)

// keyValue matches a two group pattern, capturing the groups as the
// key and value of a token of the given kind.
func keyValue(kind token.Kind, pattern *regexp.Regexp, text string) (token.Token, bool) {
	groups := pattern.FindStringSubmatch(text)
	if groups == nil {
		return token.Token{}, false
	}

	return token.Token{Kind: kind, Key: groups[1], Value: groups[2]}, true
}

// IsScriptOpener reports whether the trimmed text begins with exactly '< {%' or '> {%',
// the form used to decide a document's dialect.
func IsScriptOpener(text string) bool {
	return strings.HasPrefix(text, "< {%") || strings.HasPrefix(text, "> {%")
}

// IsVariable reports whether the trimmed text is a '@name = value' variable definition.
func IsVariable(text string) bool {
	return variablePattern.MatchString(text)
}
