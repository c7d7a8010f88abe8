package restdoc

import (
	"fmt"
	"log/slog"
	"os"

	"go.followtheprocess.codes/restdoc/internal/syntax/parser"
)

// Detect prints the dialect of the file at path.
func (a App) Detect(path string) error {
	logger := a.logger.Prefixed("detect").With(slog.String("file", path))

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file: %w", err)
	}

	dialect := parser.Detect(src)
	logger.Debug("Detected dialect", slog.String("dialect", dialect.String()))

	fmt.Fprintln(a.stdout, dialect)

	return nil
}
