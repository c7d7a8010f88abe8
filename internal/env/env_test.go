package env_test

import (
	"errors"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.followtheprocess.codes/restdoc/internal/env"
	"go.followtheprocess.codes/test"
)

func TestParseHTTPClientEnv(t *testing.T) {
	src := `{
  "$shared": {"version": "v1"},
  "prod": {"host": "api.example.com", "port": 443, "debug": false, "ratio": 1.50},
  "dev": {"host": "localhost", "port": 8080, "debug": true, "tags": ["a", "b"], "extra": {"k": 1}, "nothing": null}
}`

	config, err := env.ParseHTTPClientEnv(strings.NewReader(src), "http-client.env.json")
	test.Ok(t, err)

	test.EqualFunc(t, config.Names(), []string{"dev", "prod"}, slices.Equal)
	test.EqualFunc(t, config.Shared, map[string]string{"version": "v1"}, maps.Equal)

	dev, ok := config.Lookup("dev")
	test.True(t, ok)
	test.Equal(t, dev.Source, "http-client.env.json")

	want := map[string]string{
		"host":    "localhost",
		"port":    "8080",
		"debug":   "true",
		"tags":    `["a","b"]`,
		"extra":   `{"k":1}`,
		"nothing": "null",
	}
	test.EqualFunc(t, dev.Variables, want, maps.Equal)

	prod, ok := config.Lookup("prod")
	test.True(t, ok)
	test.Equal(t, prod.Variables["ratio"], "1.50")
	test.Equal(t, prod.Variables["debug"], "false")
}

func TestParseHTTPClientEnvNoShared(t *testing.T) {
	config, err := env.ParseHTTPClientEnv(strings.NewReader(`{"dev": {}}`), "env.json")
	test.Ok(t, err)
	test.Equal(t, len(config.Shared), 0)
	test.EqualFunc(t, config.Names(), []string{"dev"}, slices.Equal)
}

func TestParseHTTPClientEnvErrors(t *testing.T) {
	tests := []struct {
		name string // Name of the test case
		src  string // Env file content
	}{
		{name: "invalid json", src: `{"dev": `},
		{name: "not an object", src: `["dev"]`},
		{name: "environment not an object", src: `{"dev": "localhost"}`},
		{name: "empty", src: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.ParseHTTPClientEnv(strings.NewReader(tt.src), "env.json")
			test.Err(t, err)
		})
	}
}

func TestParseDotEnv(t *testing.T) {
	src := strings.Join([]string{
		"# a comment",
		"",
		"HOST=localhost",
		"  PORT = 8080  ",
		`TOKEN="abc=def"`,
		"NAME='single'",
		"EMPTY=",
		"novalue",
		"=orphan",
	}, "\n")

	want := map[string]string{
		"HOST":  "localhost",
		"PORT":  "8080",
		"TOKEN": "abc=def",
		"NAME":  "single",
		"EMPTY": "",
	}

	test.EqualFunc(t, env.ParseDotEnv(src), want, maps.Equal)
}

func TestVariables(t *testing.T) {
	config := env.Config{
		Shared:        map[string]string{"a": "shared", "b": "shared", "c": "shared", "d": "shared"},
		PrivateShared: map[string]string{"b": "private shared", "c": "private shared", "d": "private shared"},
		Environments: []env.Environment{
			{
				Name:      "dev",
				Variables: map[string]string{"c": "dev", "d": "dev"},
				Private:   map[string]string{"d": "dev private"},
			},
		},
	}

	got, err := config.Variables("dev")
	test.Ok(t, err)

	want := map[string]string{
		"a": "shared",
		"b": "private shared",
		"c": "dev",
		"d": "dev private",
	}
	test.EqualFunc(t, got, want, maps.Equal)

	shared, err := config.Variables("")
	test.Ok(t, err)
	test.Equal(t, shared["d"], "private shared")

	_, err = config.Variables("missing")
	test.Err(t, err)
	test.True(t, errors.Is(err, env.ErrNoEnvironment))
}

func TestLoad(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		config, err := env.Load(t.TempDir())
		test.Ok(t, err)
		test.Equal(t, len(config.Environments), 0)
	})

	t.Run("public and private", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, env.PublicFile, `{"$shared": {"v": "1"}, "dev": {"host": "localhost"}}`)
		write(t, dir, env.PrivateFile, `{"$shared": {"key": "s3cret"}, "dev": {"token": "t"}, "local": {"token": "l"}}`)
		write(t, dir, env.DotEnvFile, "IGNORED=1\n")

		config, err := env.Load(dir)
		test.Ok(t, err)
		test.EqualFunc(t, config.Names(), []string{"dev", "local"}, slices.Equal)

		vars, err := config.Variables("dev")
		test.Ok(t, err)
		test.EqualFunc(t, vars, map[string]string{"v": "1", "key": "s3cret", "host": "localhost", "token": "t"}, maps.Equal)

		local, ok := config.Lookup("local")
		test.True(t, ok)
		test.Equal(t, len(local.Variables), 0)
		test.Equal(t, local.Private["token"], "l")
	})

	t.Run("broken private is skipped", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, env.PublicFile, `{"dev": {"host": "localhost"}}`)
		write(t, dir, env.PrivateFile, `{nope`)

		config, err := env.Load(dir)
		test.Ok(t, err)
		test.EqualFunc(t, config.Names(), []string{"dev"}, slices.Equal)
	})

	t.Run("broken public", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, env.PublicFile, `{nope`)

		_, err := env.Load(dir)
		test.Err(t, err)
	})

	t.Run("private only", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, env.PrivateFile, `{"$shared": {"key": "s3cret"}, "dev": {"token": "t"}}`)

		config, err := env.Load(dir)
		test.Ok(t, err)
		test.EqualFunc(t, config.Names(), []string{"dev"}, slices.Equal)
		test.Equal(t, config.PrivateShared["key"], "s3cret")

		dev, _ := config.Lookup("dev")
		test.Equal(t, len(dev.Variables), 0)
		test.Equal(t, dev.Private["token"], "t")
	})

	t.Run("dotenv", func(t *testing.T) {
		dir := t.TempDir()
		write(t, dir, env.DotEnvFile, "HOST=localhost\n")

		config, err := env.Load(dir)
		test.Ok(t, err)
		test.EqualFunc(t, config.Names(), []string{env.DefaultName}, slices.Equal)

		vars, err := config.Variables(env.DefaultName)
		test.Ok(t, err)
		test.Equal(t, vars["HOST"], "localhost")
	})
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	test.Ok(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
