package restdoc

import (
	"fmt"
	"log/slog"
	"strconv"
	"text/tabwriter"

	"go.followtheprocess.codes/hue"
)

// Styles.
const (
	// lineStyle is the style used for the line number a request starts on.
	lineStyle = hue.BrightBlack

	// methodStyle is the style used for request methods.
	methodStyle = hue.Cyan | hue.Bold

	// nameStyle is the style used for request names.
	nameStyle = hue.BrightBlack | hue.Italic
)

// ListOptions are the flags passed to the list subcommand.
type ListOptions struct {
	// Dialect forces a dialect, "auto" or empty detects it.
	Dialect string

	// Debug controls debug logging.
	Debug bool
}

// List prints a table of the requests in the file at path: the line each starts
// on, its method and URL and its name if it has one.
func (a App) List(path string, options ListOptions) error {
	if err := validateDialect(options.Dialect); err != nil {
		return err
	}

	logger := a.logger.Prefixed("list").With(slog.String("file", path))

	result, err := a.parseFile(logger, path, options.Dialect)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "%s (%s)\n", hue.Bold.Text(path), result.file.Dialect)

	if len(result.file.Requests) == 0 {
		fmt.Fprintln(a.stdout, nameStyle.Text("no requests"))
		return nil
	}

	const padding = 2

	writer := tabwriter.NewWriter(a.stdout, 0, 0, padding, ' ', 0)

	for _, request := range result.file.Requests {
		name := ""
		if label := request.Label(); label != request.Method+" "+request.URL {
			name = nameStyle.Text(label)
		}

		fmt.Fprintf(
			writer,
			"%s\t%s\t%s\t%s\n",
			lineStyle.Text(strconv.Itoa(request.Line)),
			methodStyle.Text(request.Method),
			request.URL,
			name,
		)
	}

	return writer.Flush()
}
