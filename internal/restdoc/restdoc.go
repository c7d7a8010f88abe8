// Package restdoc implements the functionality of the program, the CLI in package cmd is simply the
// entrypoint to exported functions and methods in this package.
package restdoc

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.followtheprocess.codes/log"
	"go.followtheprocess.codes/restdoc/internal/spec"
	"go.followtheprocess.codes/restdoc/internal/syntax"
	"go.followtheprocess.codes/restdoc/internal/syntax/parser"
)

// DialectAuto is the dialect flag value that asks for the dialect to be detected.
const DialectAuto = "auto"

// App represents the restdoc program.
type App struct {
	stdout   io.Writer   // Normal program output is written here
	stderr   io.Writer   // Logs and errors are written here
	logger   *log.Logger // The logger for the application
	prompter Prompter    // Asks the user for input in interactive mode
}

// New returns a new [App].
func New(debug bool, stdout, stderr io.Writer) App {
	level := log.LevelInfo
	if debug {
		level = log.LevelDebug
	}

	logger := log.New(stderr, log.WithLevel(level))

	return App{
		stdout:   stdout,
		stderr:   stderr,
		logger:   logger,
		prompter: FormPrompter{},
	}
}

// WithPrompter returns a copy of the app that asks for input with p.
func (a App) WithPrompter(p Prompter) App {
	a.prompter = p
	return a
}

// parsed is a parsed file along with any diagnostics found along the way.
type parsed struct {
	diagnostics []syntax.Diagnostic
	file        spec.File
}

// parseFile reads and parses the .http file at path. The dialect is either
// a dialect name or [DialectAuto].
func (a App) parseFile(logger *log.Logger, path, dialect string) (parsed, error) {
	start := time.Now()

	src, err := os.ReadFile(path)
	if err != nil {
		return parsed{}, fmt.Errorf("could not read file: %w", err)
	}

	var options []parser.Option

	if dialect != "" && dialect != DialectAuto {
		d, err := syntax.ParseDialect(dialect)
		if err != nil {
			return parsed{}, err
		}

		options = append(options, parser.WithDialect(d))
	}

	p := parser.New(path, src, options...)

	file, err := p.Parse()
	if err != nil {
		return parsed{}, fmt.Errorf("could not parse %s: %w", path, err)
	}

	diagnostics := p.Diagnostics()

	logger.Debug(
		"Parsed file",
		slog.String("file", path),
		slog.String("dialect", file.Dialect.String()),
		slog.Int("requests", len(file.Requests)),
		slog.Int("diagnostics", len(diagnostics)),
		slog.Duration("took", time.Since(start)),
	)

	for _, diagnostic := range diagnostics {
		logger.Debug(diagnostic.Msg, slog.String("position", diagnostic.Position.String()))
	}

	return parsed{file: file, diagnostics: diagnostics}, nil
}

// filter narrows file down to the named requests, returning an error if
// names were given and none of them matched.
func filter(path string, file spec.File, names []string) (spec.File, error) {
	filtered := file.Filter(names...)
	if len(names) != 0 && len(filtered.Requests) == 0 {
		return spec.File{}, fmt.Errorf("no matching requests for names %v in %s", names, path)
	}

	return filtered, nil
}

// validateDialect checks a --dialect flag value.
func validateDialect(dialect string) error {
	if dialect == "" || dialect == DialectAuto {
		return nil
	}

	if _, err := syntax.ParseDialect(dialect); err != nil {
		return fmt.Errorf("invalid option for --dialect: %w", err)
	}

	return nil
}
