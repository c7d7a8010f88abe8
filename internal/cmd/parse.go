package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/restdoc/internal/restdoc"
)

const parseLong = `
The file is parsed with the dialect named by '--dialect', by default the
dialect is detected: any pre or post request script means JetBrains, otherwise
any '@name = value' variable means VS Code, otherwise JetBrains.

Placeholders like {{host}} are left exactly as written, see 'restdoc resolve'
to substitute them.
`

// parse returns the parse subcommand.
func parse() (*cli.Command, error) {
	var (
		options restdoc.ParseOptions
		file    string
	)

	return cli.New(
		"parse",
		cli.Short("Parse a .http file and export it to another format"),
		cli.Long(parseLong),
		cli.Arg(&file, "file", "Path to the .http file"),
		cli.Flag(
			&options.Format,
			"format",
			'f',
			"Output format, one of (json|yaml|toml|curl|http)",
			cli.FlagDefault("json"),
		),
		cli.Flag(
			&options.Dialect,
			"dialect",
			flag.NoShortHand,
			"Dialect to parse with, one of (auto|jetbrains|vscode)",
			cli.FlagDefault(restdoc.DialectAuto),
		),
		cli.Flag(&options.Requests, "request", 'r', "Name(s) of requests to export"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := restdoc.New(options.Debug, cmd.Stdout(), cmd.Stderr())
			return app.Parse(ctx, file, options)
		}),
	)
}
