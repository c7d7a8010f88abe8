package restdoc

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"go.followtheprocess.codes/msg"
	"go.followtheprocess.codes/restdoc/internal/env"
	"go.followtheprocess.codes/restdoc/internal/format"
	"go.followtheprocess.codes/restdoc/internal/spec"
	"go.followtheprocess.codes/restdoc/internal/syntax/resolver"
)

// ResolveOptions are the flags passed to the resolve subcommand.
type ResolveOptions struct {
	// Env is the name of the environment to resolve against, empty means
	// only the shared variables.
	Env string

	// Workspace is the directory holding the environment files, defaults to
	// the directory of the file being resolved.
	Workspace string

	// Dialect forces a dialect, "auto" or empty detects it.
	Dialect string

	// Requests is the list of request names to resolve, empty or nil means
	// all requests from the file.
	Requests []string

	// Interactive prompts for an environment (if none was given) and for
	// the value of every unresolved placeholder.
	Interactive bool

	// Debug controls debug logging.
	Debug bool
}

// Validate reports whether the ResolveOptions is valid, returning a non-nil
// error if it's not.
func (r ResolveOptions) Validate() error {
	return validateDialect(r.Dialect)
}

// Resolve handles the resolve subcommand.
//
// The file's own variables are layered over the selected environment and
// substituted into every request, which is then written out as .http text.
// Placeholders that remain are reported as warnings.
func (a App) Resolve(ctx context.Context, path string, options ResolveOptions) error {
	if err := options.Validate(); err != nil {
		return err
	}

	logger := a.logger.Prefixed("resolve").With(slog.String("file", path))

	result, err := a.parseFile(logger, path, options.Dialect)
	if err != nil {
		return err
	}

	file, err := filter(path, result.file, options.Requests)
	if err != nil {
		return err
	}

	workspace := options.Workspace
	if workspace == "" {
		workspace = filepath.Dir(path)
	}

	config, err := env.Load(workspace)
	if err != nil {
		return err
	}

	logger.Debug(
		"Loaded environments",
		slog.String("workspace", workspace),
		slog.Any("environments", config.Names()),
	)

	name := options.Env
	if name == "" && options.Interactive && len(config.Environments) != 0 {
		name, err = a.prompter.Select("Environment", config.Names())
		if err != nil {
			return err
		}
	}

	vars, err := config.Variables(name)
	if err != nil {
		return err
	}

	logger.Debug("Resolving against environment", slog.String("env", name), slog.Int("variables", len(vars)))

	environment := resolver.FromMap(vars)
	resolved := resolver.New(environment).ResolveFile(file)

	if options.Interactive {
		for _, placeholder := range unresolved(resolved) {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Placeholders can survive in the value of a defined variable, substitution
			// is not transitive
			if _, defined := environment.Lookup(placeholder); defined {
				continue
			}

			value, err := a.prompter.Input(placeholder, fmt.Sprintf("Value for {{%s}}", placeholder))
			if err != nil {
				return err
			}

			if err := environment.Define(placeholder, value); err != nil {
				return err
			}
		}

		resolved = resolver.New(environment).ResolveFile(file)
	}

	if err := (format.HTTPExporter{}).Export(a.stdout, resolved); err != nil {
		return fmt.Errorf("could not write resolved requests: %w", err)
	}

	for _, request := range resolved.Requests {
		for _, placeholder := range resolver.Unresolved(request) {
			msg.Fwarn(a.stderr, "%s: %q has unresolved placeholder {{%s}}", path, request.Label(), placeholder)
		}
	}

	return nil
}

// unresolved returns every placeholder left in file, in order of first
// appearance with duplicates removed.
func unresolved(file spec.File) []string {
	var names []string

	for _, request := range file.Requests {
		for _, name := range resolver.Unresolved(request) {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}

	return names
}
