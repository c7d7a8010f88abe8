package resolver_test

import (
	"slices"
	"testing"

	"go.followtheprocess.codes/restdoc/internal/spec"
	"go.followtheprocess.codes/restdoc/internal/syntax/resolver"
	"go.followtheprocess.codes/test"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		vars  map[string]string // Variables to substitute
		name  string            // Name of the test case
		input string            // Input text
		want  string            // Expected output
	}{
		{
			name:  "empty",
			input: "",
			vars:  map[string]string{"a": "1"},
			want:  "",
		},
		{
			name:  "no placeholders",
			input: "https://example.com",
			vars:  map[string]string{"a": "1"},
			want:  "https://example.com",
		},
		{
			name:  "url",
			input: "http://{{host}}:{{port}}/api",
			vars:  map[string]string{"host": "localhost", "port": "8080"},
			want:  "http://localhost:8080/api",
		},
		{
			name:  "missing passes through",
			input: "{{missing}}",
			vars:  map[string]string{},
			want:  "{{missing}}",
		},
		{
			name:  "nil vars",
			input: "http://{{host}}/api",
			vars:  nil,
			want:  "http://{{host}}/api",
		},
		{
			name:  "partially resolved",
			input: "{{a}}-{{b}}-{{a}}",
			vars:  map[string]string{"a": "x"},
			want:  "x-{{b}}-x",
		},
		{
			name:  "dots and hyphens",
			input: "{{api.base-url}}/{{v_2}}",
			vars:  map[string]string{"api.base-url": "https://x", "v_2": "v2"},
			want:  "https://x/v2",
		},
		{
			name:  "no recursion",
			input: "{{a}}",
			vars:  map[string]string{"a": "{{b}}", "b": "nope"},
			want:  "{{b}}",
		},
		{
			name:  "self reference",
			input: "{{a}}",
			vars:  map[string]string{"a": "{{a}}"},
			want:  "{{a}}",
		},
		{
			name:  "not a placeholder",
			input: "{{ spaced }} {{}} {{$uuid}} {single}",
			vars:  map[string]string{"spaced": "x", "": "x", "$uuid": "x", "single": "x"},
			want:  "{{ spaced }} {{}} {{$uuid}} {single}",
		},
		{
			name:  "extra braces",
			input: "{{{a}}}",
			vars:  map[string]string{"a": "1"},
			want:  "{1}",
		},
		{
			name:  "empty value",
			input: "/users/{{id}}/",
			vars:  map[string]string{"id": ""},
			want:  "/users//",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, resolver.Substitute(tt.input, tt.vars), tt.want)
		})
	}
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name  string   // Name of the test case
		input string   // Input text
		want  []string // Expected names
	}{
		{name: "none", input: "plain", want: nil},
		{name: "one", input: "{{host}}", want: []string{"host"}},
		{name: "ordered and unique", input: "{{b}}{{a}}{{b}}{{c.d}}", want: []string{"b", "a", "c.d"}},
		{name: "invalid ignored", input: "{{ x }}{{y}}", want: []string{"y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.EqualFunc(t, resolver.Placeholders(tt.input), tt.want, slices.Equal)
		})
	}
}

func TestResolve(t *testing.T) {
	env := resolver.FromMap(map[string]string{
		"host":  "env.example.com",
		"token": "env-token",
		"user":  "alice",
	})

	request := spec.Request{
		Name:   "Create",
		Method: "{{verb}}",
		URL:    "https://{{host}}/users/{{id}}",
		Headers: map[string]string{
			"Authorization":   "Bearer {{token}}",
			"X-{{header}}":    "{{missing}}",
			"X-Request-Owner": "{{user}}",
		},
		Body: `{"name": "{{user}}"}`,
		Vars: map[string]string{
			"host": "file.example.com",
			"verb": "POST",
		},
		PreScript:  `request.variables.set("id", "{{user}}");`,
		PostScript: "client.log({{token}})",
		Line:       3,
	}

	got := resolver.New(env).Resolve(request)

	test.Equal(t, got.Method, "POST")
	test.Equal(t, got.URL, "https://file.example.com/users/{{id}}") // File shadows environment
	test.Equal(t, got.Headers["Authorization"], "Bearer env-token")
	test.Equal(t, got.Headers["X-{{header}}"], "{{missing}}") // Names untouched
	test.Equal(t, got.Headers["X-Request-Owner"], "alice")
	test.Equal(t, got.Body, `{"name": "alice"}`)
	test.Equal(t, got.PreScript, request.PreScript)
	test.Equal(t, got.PostScript, request.PostScript)
	test.Equal(t, got.Name, "Create")
	test.Equal(t, got.Line, 3)

	// The input is not modified
	test.Equal(t, request.Headers["Authorization"], "Bearer {{token}}")

	test.EqualFunc(t, resolver.Unresolved(got), []string{"id", "missing"}, slices.Equal)
	test.EqualFunc(t, resolver.Unresolved(request), []string{"verb", "host", "id", "token", "user", "missing"}, slices.Equal)
}

func TestResolveNilEnvironment(t *testing.T) {
	request := spec.Request{
		Method: "GET",
		URL:    "{{base}}/a",
		Vars:   map[string]string{"base": "http://localhost"},
	}

	got := resolver.New(nil).Resolve(request)
	test.Equal(t, got.URL, "http://localhost/a")
	test.Equal(t, len(resolver.Unresolved(got)), 0)
}

func TestResolveFile(t *testing.T) {
	file := spec.File{
		Name: "test.http",
		Vars: map[string]string{"base": "http://localhost"},
		Requests: []spec.Request{
			{Method: "GET", URL: "{{base}}/a", Vars: map[string]string{"base": "http://localhost"}},
			{Method: "GET", URL: "{{base}}/b", Vars: map[string]string{"base": "http://localhost"}},
		},
	}

	got := resolver.New(nil).ResolveFile(file)

	test.Equal(t, got.Name, "test.http")
	test.Equal(t, len(got.Requests), 2)
	test.Equal(t, got.Requests[0].URL, "http://localhost/a")
	test.Equal(t, got.Requests[1].URL, "http://localhost/b")

	// Original untouched
	test.Equal(t, file.Requests[0].URL, "{{base}}/a")
}

func FuzzSubstitute(f *testing.F) {
	for _, seed := range []string{"", "{{a}}", "x{{a}}y{{b}}", "{{{a}}}", "{{a.b-c}}", "{{ a }}"} {
		f.Add(seed, "value")
	}

	f.Fuzz(func(t *testing.T, input, value string) {
		vars := map[string]string{"a": value, "b": value, "a.b-c": value}

		once := resolver.Substitute(input, vars)

		// Property: nothing resolves against an empty table
		test.Equal(t, resolver.Substitute(input, nil), input)

		// Property: once every placeholder is resolved another pass is a no-op
		if len(resolver.Placeholders(once)) == 0 {
			test.Equal(t, resolver.Substitute(once, vars), once)
		}
	})
}
