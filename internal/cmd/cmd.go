// Package cmd implements restdoc's CLI.
package cmd

import (
	"context"
	"fmt"

	"go.followtheprocess.codes/cli"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Build builds and returns the restdoc CLI.
func Build() (*cli.Command, error) {
	return cli.New(
		"restdoc",
		cli.Short("Parse, check and resolve JetBrains and VS Code .http request files"),
		cli.Version(version),
		cli.Commit(commit),
		cli.BuildDate(date),
		cli.Example("Check every request file in a directory (recursively)", "restdoc check ./api"),
		cli.Example("Export a file as JSON", "restdoc parse ./demo.http --format json"),
		cli.Example("Export a single request as curl", "restdoc parse ./demo.http --format curl --request Login"),
		cli.Example("Resolve variables against an environment", "restdoc resolve ./demo.http --env dev"),
		cli.SubCommands(parse, check, detect, list, resolve, importCmd),
		cli.Run(func(ctx context.Context, cmd *cli.Command) error {
			fmt.Fprintln(cmd.Stdout(), "restdoc needs a subcommand, run 'restdoc --help' to see them")
			return nil
		}),
	)
}
