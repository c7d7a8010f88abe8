package restdoc

import (
	"context"
	"fmt"
	"log/slog"

	"go.followtheprocess.codes/restdoc/internal/format"
)

// ParseOptions are the flags passed to the parse subcommand.
type ParseOptions struct {
	// Format is the output format e.g. json, yaml, curl.
	Format string

	// Dialect forces a dialect, "auto" or empty detects it.
	Dialect string

	// Requests is the list of request names to output, empty or nil means
	// all requests from the file.
	Requests []string

	// Debug controls debug logging.
	Debug bool
}

// Validate reports whether the ParseOptions is valid, returning a non-nil
// error if it's not.
func (p ParseOptions) Validate() error {
	if _, err := format.ExporterFor(p.Format); err != nil {
		return fmt.Errorf("invalid option for --format: %w", err)
	}

	return validateDialect(p.Dialect)
}

// Parse handles the parse subcommand, parsing a single file and writing it
// to stdout in the requested format.
func (a App) Parse(ctx context.Context, path string, options ParseOptions) error {
	if err := options.Validate(); err != nil {
		return err
	}

	logger := a.logger.Prefixed("parse").With(slog.String("file", path))
	logger.Debug("Parse configuration", slog.String("options", fmt.Sprintf("%+v", options)))

	result, err := a.parseFile(logger, path, options.Dialect)
	if err != nil {
		return err
	}

	file, err := filter(path, result.file, options.Requests)
	if err != nil {
		return err
	}

	logger.Debug("Filtered requests to output", slog.Int("count", len(file.Requests)))

	exporter, err := format.ExporterFor(options.Format)
	if err != nil {
		return err
	}

	if err := exporter.Export(a.stdout, file); err != nil {
		return fmt.Errorf("could not export %s as %s: %w", path, options.Format, err)
	}

	return ctx.Err()
}
