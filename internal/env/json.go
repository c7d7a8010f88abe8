package env

import (
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"
)

// ParseHTTPClientEnv parses a JetBrains http-client env json document from r.
//
// The document is an object of environments, each an object of variables. The
// environment named [SharedKey] holds the shared variables. Values of any JSON type are
// accepted: strings as they are, numbers exactly as written, booleans and null as
// their literals and anything else as compact JSON. source is recorded as the Source
// of every environment.
func ParseHTTPClientEnv(r io.Reader, source string) (Config, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("could not read env file %s: %w", source, err)
	}

	if !gjson.ValidBytes(content) {
		return Config{}, fmt.Errorf("could not parse env file %s: invalid JSON", source)
	}

	document := gjson.ParseBytes(content)
	if !document.IsObject() {
		return Config{}, fmt.Errorf("could not parse env file %s: expected an object of environments", source)
	}

	config := Config{}

	var errs []error

	document.ForEach(func(name, value gjson.Result) bool {
		if !value.IsObject() {
			errs = append(errs, fmt.Errorf("environment %q is not an object", name.String()))
			return true
		}

		vars := variables(value)

		if name.String() == SharedKey {
			config.Shared = vars
			return true
		}

		config.Environments = append(config.Environments, Environment{
			Name:      name.String(),
			Variables: vars,
			Source:    source,
		})

		return true
	})

	if len(errs) != 0 {
		return Config{}, fmt.Errorf("could not parse env file %s: %w", source, errors.Join(errs...))
	}

	if config.Shared == nil {
		config.Shared = make(map[string]string)
	}

	sortEnvironments(config.Environments)

	return config, nil
}

// variables flattens a JSON object into a string table.
func variables(object gjson.Result) map[string]string {
	vars := make(map[string]string)

	object.ForEach(func(key, value gjson.Result) bool {
		vars[key.String()] = stringify(value)
		return true
	})

	return vars
}

// stringify renders a single JSON value as a variable value.
func stringify(value gjson.Result) string {
	switch value.Type {
	case gjson.String:
		return value.Str
	case gjson.Number:
		return value.Raw
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	case gjson.Null:
		return "null"
	default:
		return gjson.Get(value.Raw, "@ugly").Raw
	}
}
