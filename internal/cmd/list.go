package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/restdoc/internal/restdoc"
)

// list returns the list subcommand.
func list() (*cli.Command, error) {
	var (
		options restdoc.ListOptions
		file    string
	)

	return cli.New(
		"list",
		cli.Short("List the requests in a .http file"),
		cli.Arg(&file, "file", "Path to the .http file"),
		cli.Flag(
			&options.Dialect,
			"dialect",
			flag.NoShortHand,
			"Dialect to parse with, one of (auto|jetbrains|vscode)",
			cli.FlagDefault(restdoc.DialectAuto),
		),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := restdoc.New(options.Debug, cmd.Stdout(), cmd.Stderr())
			return app.List(file, options)
		}),
	)
}
