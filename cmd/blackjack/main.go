package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/BakirHaljevac/Blackjack/internal/assets"
)

// version is set by ldflags during build
var version = "dev"

// Asset failures get their own exit code so wrappers can tell a bad
// card directory from everything else. The launcher owns exit codes;
// the engine itself never terminates the process.
const exitAssets = 3

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play one round of blackjack"`
	Preview PreviewCmd       `cmd:"" help:"Render every card face from an asset directory"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Terminal blackjack with text-art cards"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	if isAssetError(err) {
		fmt.Fprintf(os.Stderr, "blackjack: error: %s\n", err)
		os.Exit(exitAssets)
	}
	ctx.FatalIfErrorf(err)
}

func isAssetError(err error) bool {
	return errors.Is(err, assets.ErrMissingAsset) ||
		errors.Is(err, assets.ErrEmptyAsset) ||
		errors.Is(err, assets.ErrRaggedAsset) ||
		errors.Is(err, assets.ErrDimensionMismatch)
}
