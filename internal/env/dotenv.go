package env

import (
	"strings"
)

// ParseDotEnv parses the content of a .env file.
//
// Each line is 'KEY=value' split on the first '=' with the key and value trimmed.
// Blank lines, '#' comments, lines without an '=' and lines with an empty key are
// skipped. Any run of double quotes and then single quotes around the value is removed.
func ParseDotEnv(content string) map[string]string {
	vars := make(map[string]string)

	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		value = strings.TrimSpace(value)
		value = strings.TrimRight(strings.TrimLeft(value, `"`), `"`)
		value = strings.TrimRight(strings.TrimLeft(value, `'`), `'`)

		vars[key] = value
	}

	return vars
}
