package parser_test

import (
	"testing"

	"go.followtheprocess.codes/restdoc/internal/syntax"
	"go.followtheprocess.codes/restdoc/internal/syntax/parser"
	"go.followtheprocess.codes/test"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string         // Name of the test case
		src  string         // Source text
		want syntax.Dialect // Expected dialect
	}{
		{
			name: "empty",
			src:  "",
			want: syntax.JetBrains,
		},
		{
			name: "plain request",
			src:  "### Get users\nGET https://api.example.com/users\nContent-Type: application/json\n",
			want: syntax.JetBrains,
		},
		{
			name: "variables",
			src:  "@hostname = localhost\n@port = 3000\n\nGET http://{{hostname}}:{{port}}/api\n",
			want: syntax.VSCode,
		},
		{
			name: "indented variable",
			src:  "GET /\n\n   @late=1   \n",
			want: syntax.VSCode,
		},
		{
			name: "scripts dominate variables",
			src:  "@host = localhost\n< {%\n  setup();\n%}\nGET http://{{host}}/\n",
			want: syntax.JetBrains,
		},
		{
			name: "post script dominates variables",
			src:  "@host = localhost\nGET http://{{host}}/\n\n> {% client.log(1) %}\n",
			want: syntax.JetBrains,
		},
		{
			name: "unclosed script still counts",
			src:  "@host = localhost\n  > {%\n",
			want: syntax.JetBrains,
		},
		{
			name: "opener needs the space",
			src:  "@host = localhost\n<{%\n%}\n",
			want: syntax.VSCode,
		},
		{
			name: "metadata is not a variable",
			src:  "# @name login\nPOST /auth\n",
			want: syntax.JetBrains,
		},
		{
			name: "prompt is not a variable",
			src:  "@prompt id\nGET /{{id}}\n",
			want: syntax.JetBrains,
		},
		{
			name: "crlf",
			src:  "@a = 1\r\nGET /\r\n",
			want: syntax.VSCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, parser.Detect([]byte(tt.src)), tt.want)
			test.Equal(t, parser.New("test.http", []byte(tt.src)).Dialect(), tt.want)
		})
	}
}

func TestWithDialectOverridesDetection(t *testing.T) {
	p := parser.New("test.http", []byte("@a = 1\nGET /\n"), parser.WithDialect(syntax.JetBrains))
	test.Equal(t, p.Dialect(), syntax.JetBrains)

	file, err := p.Parse()
	test.Ok(t, err)
	test.Equal(t, file.Dialect, syntax.JetBrains)
}

func FuzzDetect(f *testing.F) {
	for _, seed := range []string{"", "@a = 1", "< {%", "> {%\n%}", "GET /"} {
		f.Add([]byte(seed))
	}

	// Property: detection is total and a script opener always wins
	f.Fuzz(func(t *testing.T, src []byte) {
		got := parser.Detect(src)
		test.True(t, got == syntax.JetBrains || got == syntax.VSCode)

		withScript := append([]byte("< {%\n"), src...)
		test.Equal(t, parser.Detect(withScript), syntax.JetBrains)
	})
}
