package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BakirHaljevac/Blackjack/cmd/blackjack/shared"
	"github.com/BakirHaljevac/Blackjack/internal/assets"
	"github.com/BakirHaljevac/Blackjack/internal/deck"
	"github.com/BakirHaljevac/Blackjack/internal/display"
)

// PreviewCmd renders one card of each rank so an asset set can be
// checked without playing a round.
type PreviewCmd struct {
	Dir   string `kong:"arg,help='Directory containing the 13 card face files'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *PreviewCmd) Run() error {
	logger := shared.SetupLogger(c.Debug, "info")

	lib, err := assets.Load(c.Dir)
	if err != nil {
		return err
	}
	logger.Info().
		Int("width", lib.Width()).
		Int("height", lib.Height()).
		Msg("card faces loaded")

	cards := make([]deck.Card, 0, len(deck.Ranks))
	labels := make([]string, 0, len(deck.Ranks))
	for _, rank := range deck.Ranks {
		face, ok := lib.Face(rank.String())
		if !ok {
			return fmt.Errorf("library has no face for %s", rank)
		}
		cards = append(cards, deck.Card{Rank: rank, Face: face})
		labels = append(labels, fmt.Sprintf("%s=%d", rank, rank.Points()))
	}

	for _, row := range display.Compose(cards, len(cards)) {
		fmt.Fprintln(os.Stdout, row)
	}
	fmt.Fprintln(os.Stdout, strings.Join(labels, " "))
	return nil
}
