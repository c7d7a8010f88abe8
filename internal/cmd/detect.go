package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/restdoc/internal/restdoc"
)

// detect returns the detect subcommand.
func detect() (*cli.Command, error) {
	var (
		file  string
		debug bool
	)

	return cli.New(
		"detect",
		cli.Short("Print the dialect of a .http file"),
		cli.Arg(&file, "file", "Path to the .http file"),
		cli.Flag(&debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := restdoc.New(debug, cmd.Stdout(), cmd.Stderr())
			return app.Detect(file)
		}),
	)
}
