package restdoc

import (
	"fmt"
	"log/slog"
	"os"

	"go.followtheprocess.codes/restdoc/internal/format"
)

// Import reads a JSON export of a .http file and writes it back out as
// canonical .http text.
func (a App) Import(path string) error {
	logger := a.logger.Prefixed("import").With(slog.String("file", path))

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	file, err := format.JSONImporter{}.Import(f)
	if err != nil {
		return fmt.Errorf("could not import %s: %w", path, err)
	}

	logger.Debug("Imported file", slog.Int("requests", len(file.Requests)))

	return format.HTTPExporter{}.Export(a.stdout, file)
}
