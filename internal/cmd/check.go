package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/restdoc/internal/restdoc"
)

const checkLong = `
The path argument may be a directory or a file.

If it is the name of a file, then this file alone is checked.

If it is a directory, this directory is scanned recursively for all
files with the '.http' or '.rest' extension, skipping hidden directories,
node_modules and target, and every matching file is checked.

Lines the parser cannot make sense of are reported as warnings, pass
'--strict' to fail if there are any.
`

// check returns the check subcommand.
func check() (*cli.Command, error) {
	var options restdoc.CheckOptions

	return cli.New(
		"check",
		cli.Short("Check request files for problems"),
		cli.Long(checkLong),
		cli.Arg(&options.Path, "path", "Path to check, may be directory or file", cli.ArgDefault(".")),
		cli.Flag(
			&options.Dialect,
			"dialect",
			flag.NoShortHand,
			"Dialect to parse with, one of (auto|jetbrains|vscode)",
			cli.FlagDefault(restdoc.DialectAuto),
		),
		cli.Flag(&options.Strict, "strict", 's', "Fail if any file has diagnostics"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := restdoc.New(options.Debug, cmd.Stdout(), cmd.Stderr())
			return app.Check(ctx, options)
		}),
	)
}
