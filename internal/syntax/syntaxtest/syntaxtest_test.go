// That's right... how meta is this.
package syntaxtest_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go.followtheprocess.codes/restdoc/internal/syntax/syntaxtest"
	"go.followtheprocess.codes/test"
)

func TestSource(t *testing.T) {
	test.Equal(t, string(syntaxtest.Source("GET /", "Accept: */*")), "GET /\nAccept: */*\n")
	test.Equal(t, string(syntaxtest.Source("")), "\n")
	test.Equal(t, len(syntaxtest.Source()), 0)
}

func TestCRLF(t *testing.T) {
	got := syntaxtest.CRLF(syntaxtest.Source("GET /", "", "body"))
	test.Equal(t, string(got), "GET /\r\n\r\nbody\r\n")
}

func TestFiles(t *testing.T) {
	cwd, err := os.Getwd()
	test.Ok(t, err)

	var results []string

	for file, err := range syntaxtest.Files(cwd, ".go") {
		test.Ok(t, err)

		results = append(results, file)
	}

	want := []string{
		// Just the two files
		filepath.Join(cwd, "syntaxtest.go"),
		filepath.Join(cwd, "syntaxtest_test.go"),
	}

	test.EqualFunc(t, results, want, slices.Equal)
}

func TestFilesMultipleExtensions(t *testing.T) {
	root := t.TempDir()

	for _, name := range []string{"a.http", "b.rest", "c.txt", filepath.Join("nested", "d.http")} {
		path := filepath.Join(root, name)
		test.Ok(t, os.MkdirAll(filepath.Dir(path), 0o755))
		test.Ok(t, os.WriteFile(path, []byte("GET /\n"), 0o644))
	}

	var results []string

	for file, err := range syntaxtest.Files(root, ".http", ".rest") {
		test.Ok(t, err)

		rel, err := filepath.Rel(root, file)
		test.Ok(t, err)

		results = append(results, rel)
	}

	want := []string{"a.http", "b.rest", filepath.Join("nested", "d.http")}
	test.EqualFunc(t, results, want, slices.Equal)
}

func TestFilesStopEarly(t *testing.T) {
	cwd, err := os.Getwd()
	test.Ok(t, err)

	count := 0

	for _, err := range syntaxtest.Files(cwd, ".go") {
		test.Ok(t, err)

		count++

		break
	}

	test.Equal(t, count, 1)
}
