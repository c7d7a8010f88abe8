// Package syntaxtest provides syntax level test utilities.
package syntaxtest

import (
	"bytes"
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"
)

// Source joins lines into .http source, every line terminated by '\n'.
func Source(lines ...string) []byte {
	if len(lines) == 0 {
		return nil
	}

	return []byte(strings.Join(lines, "\n") + "\n")
}

// CRLF returns a copy of src with every '\n' line terminator replaced by "\r\n".
func CRLF(src []byte) []byte {
	return bytes.ReplaceAll(src, []byte("\n"), []byte("\r\n"))
}

// Files returns an iterator over all filepaths under root with one of
// the given extensions, recursively and in lexical order.
//
// A call to Files like this:
//
//	for file, err := range Files("testdata", ".txtar", ".http") {
//	    // Loop body
//	}
//
// Is roughly equivalent to the following in bash:
//
//	for file in testdata/**/*.{txtar,http}; do { # stuff }; done
func Files(root string, exts ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				yield("", walkErr)
				return walkErr
			}

			if d.Type().IsRegular() && slices.Contains(exts, filepath.Ext(d.Name())) {
				if !yield(path, nil) {
					return fs.SkipAll
				}
			}

			return nil
		})
		// handle the error returned by WalkDir itself
		if err != nil {
			yield("", err)
		}
	}
}
