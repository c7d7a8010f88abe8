package parser

import (
	"go.followtheprocess.codes/restdoc/internal/syntax"
	"go.followtheprocess.codes/restdoc/internal/syntax/scanner"
)

// Detect decides which dialect src is written in.
//
// Script blocks only exist in the JetBrains dialect so a single '< {%' or '> {%'
// settles it. Failing that, any '@name = value' variable definition means VS Code.
// Everything else, including empty source, is JetBrains as the more permissive of
// the two.
func Detect(src []byte) syntax.Dialect {
	lines := scanner.Lines(src)

	for _, line := range lines {
		if scanner.IsScriptOpener(line.Text) {
			return syntax.JetBrains
		}
	}

	for _, line := range lines {
		if scanner.IsVariable(line.Text) {
			return syntax.VSCode
		}
	}

	return syntax.JetBrains
}
