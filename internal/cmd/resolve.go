package cmd

import (
	"context"

	"go.followtheprocess.codes/cli"
	"go.followtheprocess.codes/cli/flag"
	"go.followtheprocess.codes/restdoc/internal/restdoc"
)

const resolveLong = `
Variables are looked up in the workspace, by default the directory holding
the file, in order of preference:

  - http-client.env.json, with http-client.private.env.json alongside it
  - http-client.private.env.json on its own
  - .env, available as the environment named 'default'

Variables defined in the file itself shadow those from the environment. Any
placeholder that cannot be resolved is left as written and reported.

With '--interactive' an environment is picked from a list (unless '--env' is
given) and the value of every unresolved placeholder is asked for.
`

// resolve returns the resolve subcommand.
func resolve() (*cli.Command, error) {
	var (
		options restdoc.ResolveOptions
		file    string
	)

	return cli.New(
		"resolve",
		cli.Short("Substitute variables into the requests in a .http file"),
		cli.Long(resolveLong),
		cli.Arg(&file, "file", "Path to the .http file"),
		cli.Flag(&options.Env, "env", 'e', "Name of the environment to resolve against"),
		cli.Flag(&options.Workspace, "workspace", 'w', "Directory holding the environment files"),
		cli.Flag(
			&options.Dialect,
			"dialect",
			flag.NoShortHand,
			"Dialect to parse with, one of (auto|jetbrains|vscode)",
			cli.FlagDefault(restdoc.DialectAuto),
		),
		cli.Flag(&options.Requests, "request", 'r', "Name(s) of requests to resolve"),
		cli.Flag(&options.Interactive, "interactive", 'i', "Prompt for the environment and missing values"),
		cli.Flag(&options.Debug, "debug", 'd', "Enable debug logging"),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			app := restdoc.New(options.Debug, cmd.Stdout(), cmd.Stderr())
			return app.Resolve(ctx, file, options)
		}),
	)
}
