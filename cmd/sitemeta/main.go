package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/ndegrande/sitemeta/cmd/sitemeta/commands"
)

var version = "dev"

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("sitemeta"),
		kong.Description("SEO and metadata hygiene tooling for static HTML sites"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	global := &commands.Global{Logger: slog.Default()}
	err := ctx.Run(global, cli)
	ctx.FatalIfErrorf(err)
}
