package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docspell/cmd/docspell/commands"
	"git.home.luguber.info/inful/docspell/internal/foundation/errors"
	"git.home.luguber.info/inful/docspell/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("docspell"),
		kong.Description("Spell-check the documentation comments of Go packages."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default()}
	err := ctx.Run(global, &cli)
	errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
