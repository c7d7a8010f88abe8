package format

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"go.followtheprocess.codes/restdoc/internal/spec"
)

// TOMLExporter is an [Exporter] that transforms .http files into TOML documents.
//
// Requests become an array of tables under 'requests', each with its own
// headers, variables and metadata sub tables.
type TOMLExporter struct{}

// Export implements [Exporter] for [TOMLExporter].
func (t TOMLExporter) Export(w io.Writer, file spec.File) error {
	encoder := toml.NewEncoder(w)
	encoder.Indent = ""

	if err := encoder.Encode(file); err != nil {
		return fmt.Errorf("could not encode %s as TOML: %w", file.Name, err)
	}

	return nil
}
