package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/restdoc/internal/restdoc"
)

// importCmd returns the import subcommand.
func importCmd() (*cli.Command, error) {
	var (
		file  string
		debug bool
	)

	return cli.New(
		"import",
		cli.Short("Convert a JSON export back into a .http file"),
		cli.Arg(&file, "file", "Path to a JSON file written by 'restdoc parse --format json'"),
		cli.Flag(&debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := restdoc.New(debug, cmd.Stdout(), cmd.Stderr())
			return app.Import(file)
		}),
	)
}
