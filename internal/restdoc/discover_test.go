package restdoc_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"go.followtheprocess.codes/restdoc/internal/restdoc"
	"go.followtheprocess.codes/test"
)

func TestDiscover(t *testing.T) {
	root := t.TempDir()

	for _, name := range []string{
		"a.http",
		"b.rest",
		"c.txt",
		".hidden/d.http",
		"node_modules/e.http",
		"target/f.http",
		"sub/g.HTTP",
		"sub/deeper/h.http",
	} {
		path := filepath.Join(root, filepath.FromSlash(name))
		test.Ok(t, os.MkdirAll(filepath.Dir(path), 0o755))
		test.Ok(t, os.WriteFile(path, []byte("GET /\n"), 0o644))
	}

	got, err := restdoc.Discover(root)
	test.Ok(t, err)

	want := []string{
		filepath.Join(root, "a.http"),
		filepath.Join(root, "b.rest"),
		filepath.Join(root, "sub", "deeper", "h.http"),
		filepath.Join(root, "sub", "g.HTTP"),
	}

	test.EqualFunc(t, got, want, slices.Equal)
}

func TestDiscoverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.txt")
	test.Ok(t, os.WriteFile(path, []byte("GET /\n"), 0o644))

	got, err := restdoc.Discover(path)
	test.Ok(t, err)
	test.EqualFunc(t, got, []string{path}, slices.Equal)
}

func TestDiscoverMissing(t *testing.T) {
	_, err := restdoc.Discover(filepath.Join(t.TempDir(), "missing"))
	test.Err(t, err)
}

func TestIsRequestFile(t *testing.T) {
	test.True(t, restdoc.IsRequestFile("a.http"))
	test.True(t, restdoc.IsRequestFile("dir/a.REST"))
	test.False(t, restdoc.IsRequestFile("a.json"))
	test.False(t, restdoc.IsRequestFile("http"))
}
