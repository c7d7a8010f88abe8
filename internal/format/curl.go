package format

import (
	_ "embed"
	"io"
	"strings"
	"text/template"

	"go.followtheprocess.codes/restdoc/internal/spec"
)

//go:embed templates/curl.txt.tmpl
var curlTempl string

// curlVersions maps HTTP versions as written on a request line to curl flags.
//
//nolint:gochecknoglobals // Lookup table
var curlVersions = map[string]string{
	"HTTP/1.0": "--http1.0",
	"HTTP/1.1": "--http1.1",
	"HTTP/2":   "--http2",
	"HTTP/2.0": "--http2",
	"HTTP/3":   "--http3",
	"HTTP/3.0": "--http3",
}

// curlFunctions are custom template functions available in the curlTemplate.
//
//nolint:gochecknoglobals // This has to be here
var curlFunctions = template.FuncMap{
	"quote":   shellQuote,
	"version": func(version string) string { return curlVersions[strings.ToUpper(version)] },
}

// curlTemplate is the parsed curl command line text/template.
//
//nolint:gochecknoglobals // Having the template as a global means it's parsed only once
var curlTemplate = template.Must(template.New("curl").Funcs(curlFunctions).Parse(curlTempl))

// CurlExporter is an [Exporter] that transforms .http files into curl shell scripts.
//
// Placeholders are exported as written, resolve the file first for runnable commands.
// Scripts cannot be expressed in curl and are left out.
type CurlExporter struct{}

// Export implements [Exporter] for [CurlExporter] and exports the given
// file as one curl command per request.
func (c CurlExporter) Export(w io.Writer, file spec.File) error {
	return curlTemplate.Execute(w, file)
}

// shellQuote single quotes s for a POSIX shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
