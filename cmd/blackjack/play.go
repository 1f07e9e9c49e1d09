package main

import (
	"errors"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/BakirHaljevac/Blackjack/cmd/blackjack/shared"
	"github.com/BakirHaljevac/Blackjack/internal/assets"
	"github.com/BakirHaljevac/Blackjack/internal/config"
	"github.com/BakirHaljevac/Blackjack/internal/deck"
	"github.com/BakirHaljevac/Blackjack/internal/display"
	"github.com/BakirHaljevac/Blackjack/internal/game"
	"github.com/BakirHaljevac/Blackjack/internal/randutil"
	"github.com/BakirHaljevac/Blackjack/internal/tui"
)

// PlayCmd runs one interactive round.
type PlayCmd struct {
	Dir     string `kong:"arg,optional,help='Directory containing the 13 card face files'"`
	Seed    *int64 `kong:"help='Deterministic shuffle seed (defaults to the current time)'"`
	DelayMs *int   `kong:"name='delay-ms',help='Pause between dealer draws in milliseconds'"`
	TUI     bool   `kong:"help='Play in the full-screen interface'"`
	Config  string `kong:"type='path',help='Optional HCL config file'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger := shared.SetupLogger(c.Debug, cfg.UI.LogLevel)

	dir := c.Dir
	if dir == "" {
		dir = cfg.Game.AssetsDir
	}
	if dir == "" {
		return errors.New("no asset directory: pass one as an argument or set assets_dir in the config file")
	}

	clock := quartz.NewReal()
	var seed int64
	switch {
	case c.Seed != nil:
		seed = *c.Seed
		logger.Info().Int64("seed", seed).Msg("Using deterministic seed")
	case cfg.Game.Seed != nil:
		seed = *cfg.Game.Seed
		logger.Info().Int64("seed", seed).Msg("Using seed from config file")
	default:
		seed = clock.Now().UnixNano()
		logger.Info().Int64("seed", seed).Msg("Using random seed")
	}

	delay := time.Duration(cfg.Game.DealerDelayMs) * time.Millisecond
	if c.DelayMs != nil {
		delay = time.Duration(*c.DelayMs) * time.Millisecond
	}

	lib, err := assets.Load(dir)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("width", lib.Width()).
		Int("height", lib.Height()).
		Msg("card faces loaded")

	d, err := deck.New(lib)
	if err != nil {
		return err
	}
	d.Shuffle(randutil.New(seed))

	if c.TUI || cfg.UI.TUI {
		return c.runTUI(d, logger, clock, delay)
	}
	return c.runConsole(d, logger, clock, delay)
}

func (c *PlayCmd) runConsole(d *deck.Deck, logger zerolog.Logger, clock quartz.Clock, delay time.Duration) error {
	prompter, err := game.NewConsolePrompter()
	if err != nil {
		return err
	}
	defer prompter.Close()

	round := game.NewRound(d, display.NewConsole(os.Stdout), prompter,
		game.WithLogger(logger),
		game.WithClock(clock),
		game.WithDelay(delay),
	)
	_, err = round.Play()
	return err
}

func (c *PlayCmd) runTUI(d *deck.Deck, logger zerolog.Logger, clock quartz.Clock, delay time.Duration) error {
	bridge := tui.NewBridge()
	round := game.NewRound(d, bridge, bridge,
		game.WithLogger(logger),
		game.WithClock(clock),
		game.WithDelay(delay),
	)

	engineErr := make(chan error, 1)
	go func() {
		_, err := round.Play()
		engineErr <- err
	}()

	if err := bridge.Run(); err != nil {
		return err
	}
	if err := <-engineErr; err != nil && !errors.Is(err, tui.ErrClosed) {
		return err
	}
	return nil
}
