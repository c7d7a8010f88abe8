package format

import (
	"fmt"
	"io"

	"go.followtheprocess.codes/restdoc/internal/spec"
	"go.yaml.in/yaml/v4"
)

const yamlIndent = 2

// YAMLExporter is an [Exporter] that transforms .http files into YAML documents.
type YAMLExporter struct{}

// Export implements [Exporter] for [YAMLExporter], multi line bodies and
// scripts come out as literal block scalars.
func (y YAMLExporter) Export(w io.Writer, file spec.File) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(file); err != nil {
		return fmt.Errorf("could not encode %s as YAML: %w", file.Name, err)
	}

	return encoder.Close()
}
