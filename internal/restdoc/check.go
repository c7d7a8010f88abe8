package restdoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"go.followtheprocess.codes/msg"
	"golang.org/x/sync/errgroup"
)

// ErrDiagnostics is returned from a strict check of files with diagnostics.
var ErrDiagnostics = errors.New("diagnostics reported")

// CheckOptions are the options passed to the check subcommand.
type CheckOptions struct {
	// Path is the path (file or directory) to check.
	Path string

	// Dialect forces a dialect, "auto" or empty detects it per file.
	Dialect string

	// Strict makes any diagnostic a failure.
	Strict bool

	// Debug enables debug logging.
	Debug bool
}

// Validate reports whether the CheckOptions is valid, returning a non-nil
// error if it's not.
func (c CheckOptions) Validate() error {
	return validateDialect(c.Dialect)
}

// Check implements the check subcommand.
//
// Every request file under the path is parsed concurrently. Files are
// reported in lexical order, a success line for each with warnings for any
// diagnostics.
func (a App) Check(ctx context.Context, options CheckOptions) error {
	if err := options.Validate(); err != nil {
		return err
	}

	logger := a.logger.Prefixed("check").With(slog.String("path", options.Path))
	logger.Debug("Checking path")

	paths, err := Discover(options.Path)
	if err != nil {
		return err
	}

	logger.Debug("Checking request files given by path", slog.Int("number", len(paths)))

	results := make([]parsed, len(paths))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for index, path := range paths {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := a.parseFile(logger, path, options.Dialect)
			if err != nil {
				return err
			}

			results[index] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	total := 0

	for index, path := range paths {
		result := results[index]

		msg.Fsuccess(
			a.stdout,
			"%s is valid (%s, %s)",
			path,
			result.file.Dialect,
			plural(len(result.file.Requests), "request"),
		)

		for _, diagnostic := range result.diagnostics {
			msg.Fwarn(a.stderr, "%s: %s", diagnostic.Position, diagnostic.Msg)
		}

		total += len(result.diagnostics)
	}

	if options.Strict && total != 0 {
		return fmt.Errorf("%w: %s across %d file(s)", ErrDiagnostics, plural(total, "diagnostic"), len(paths))
	}

	return nil
}

// plural formats a count of things, e.g. "1 request", "2 requests".
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
