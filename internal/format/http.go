package format

import (
	"io"

	"go.followtheprocess.codes/restdoc/internal/spec"
)

// HTTPExporter is an [Exporter] that writes files back out as canonical
// JetBrains dialect .http text, whatever dialect they were parsed from.
//
// File variables are written as '@name = value' lines, so output with variables
// but no scripts detects as VS Code when parsed again and any '# @key value'
// metadata is then read as comments. Parse with the JetBrains dialect forced to
// get the same requests back.
type HTTPExporter struct{}

// Export implements [Exporter] for [HTTPExporter].
func (h HTTPExporter) Export(w io.Writer, file spec.File) error {
	_, err := io.WriteString(w, file.String())
	return err
}
