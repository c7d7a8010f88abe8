package restdoc

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Extensions are the file extensions recognised as request files.
//
//nolint:gochecknoglobals // Read only
var Extensions = []string{".http", ".rest"}

// skipDirs are directories never searched for request files.
//
//nolint:gochecknoglobals // Read only
var skipDirs = []string{"node_modules", "target"}

// Discover returns every request file under root in lexical order.
//
// Hidden directories, node_modules and target are skipped. If root is itself
// a file it is returned as is, whatever its extension.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("could not get path info: %w", err)
	}

	if !info.IsDir() {
		return []string{root}, nil
	}

	var paths []string

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		if IsRequestFile(path) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", root, err)
	}

	return paths, nil
}

// IsRequestFile reports whether path has one of the request file [Extensions].
func IsRequestFile(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name)
}
