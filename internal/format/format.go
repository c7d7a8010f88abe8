// Package format converts parsed .http files to and from other formats.
//
// Notably, the package provides the [Importer] and [Exporter] interfaces for doing this
// in a format-agnostic way, along with the built in JSON, YAML, TOML, curl and http
// exporters.
package format

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"go.followtheprocess.codes/restdoc/internal/spec"
)

// Exporter is the interface defining a mechanism for exporting a .http file
// into an external format.
type Exporter interface {
	// Export exports the [spec.File] into an external format, written to w.
	Export(w io.Writer, file spec.File) error
}

// Importer is the interface defining a mechanism for importing external formats
// into .http files.
type Importer interface {
	// Import imports the data from the external format into a [spec.File].
	Import(r io.Reader) (spec.File, error)
}

// Names of the built in exporters.
const (
	JSON = "json"
	YAML = "yaml"
	TOML = "toml"
	Curl = "curl"
	HTTP = "http"
)

// Names returns the names of every built in exporter, sorted.
func Names() []string {
	names := []string{JSON, YAML, TOML, Curl, HTTP}
	slices.Sort(names)

	return names
}

// ExporterFor returns the built in [Exporter] with the given name, names
// are case insensitive.
func ExporterFor(name string) (Exporter, error) {
	switch strings.ToLower(name) {
	case JSON:
		return JSONExporter{}, nil
	case YAML:
		return YAMLExporter{}, nil
	case TOML:
		return TOMLExporter{}, nil
	case Curl:
		return CurlExporter{}, nil
	case HTTP:
		return HTTPExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q, expected one of %v", name, Names())
	}
}
