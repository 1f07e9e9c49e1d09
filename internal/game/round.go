// Package game runs a single round of blackjack: one human player
// against a dealer that keeps drawing while it is behind the player's
// score. The round owns the deck and both hands; the display and the
// prompter are supplied by the caller so console, TUI, and tests all
// drive the same state machine.
package game

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BakirHaljevac/Blackjack/internal/deck"
	"github.com/BakirHaljevac/Blackjack/internal/display"
)

// Round is one game of blackjack from initial deal to a terminal
// outcome. A Round plays exactly once.
type Round struct {
	deck     *deck.Deck
	player   Hand
	dealer   Hand
	display  display.Display
	prompter Prompter
	logger   zerolog.Logger
	clock    quartz.Clock
	delay    time.Duration
	id       string
}

// Option configures a Round.
type Option func(*Round)

// WithLogger attaches a structured logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Round) { r.logger = logger }
}

// WithClock replaces the pacing clock, mockable in tests.
func WithClock(clock quartz.Clock) Option {
	return func(r *Round) { r.clock = clock }
}

// WithDelay pauses between dealer draws so the human can follow along.
func WithDelay(delay time.Duration) Option {
	return func(r *Round) { r.delay = delay }
}

// NewRound creates a round over a shuffled deck.
func NewRound(d *deck.Deck, disp display.Display, prompter Prompter, opts ...Option) *Round {
	r := &Round{
		deck:     d,
		display:  disp,
		prompter: prompter,
		logger:   zerolog.Nop(),
		clock:    quartz.NewReal(),
		id:       uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With().Str("round_id", r.id).Logger()
	return r
}

// Play runs the round to its terminal outcome. The only error paths
// are a failed command read and the (unreachable in a legal round)
// exhaustion of the deck.
func (r *Round) Play() (Outcome, error) {
	if err := r.deal(&r.player, "player", 2); err != nil {
		return 0, err
	}
	if err := r.deal(&r.dealer, "dealer", 2); err != nil {
		return 0, err
	}

	// Only the dealer's up-card is revealed before the dealer's turn,
	// scored by itself.
	r.display.ShowHand(display.Dealer, r.dealer.Cards, 1, r.dealer.Cards[0].Points())
	r.display.ShowHand(display.Player, r.player.Cards, r.player.Size(), r.player.Score)

	if r.player.Score == 21 {
		return r.resolveNaturals()
	}
	return r.playerTurn()
}

// resolveNaturals settles a round where the player was dealt 21. The
// dealer's hand is revealed immediately; a matching dealer 21 pushes.
func (r *Round) resolveNaturals() (Outcome, error) {
	r.showDealer()
	if r.dealer.Score == 21 {
		r.display.ShowMessage("DOUBLE BLACKJACK!")
		return r.finish(Push), nil
	}
	return r.finish(PlayerBlackjack), nil
}

// playerTurn loops on the prompt until the player stands, reaches 21,
// or busts. Unrecognized commands are ignored and the prompt repeats,
// with no scolding; that is long-standing observable behavior.
func (r *Round) playerTurn() (Outcome, error) {
	for {
		cmd, err := r.prompter.Prompt()
		if err != nil {
			return 0, fmt.Errorf("read command: %w", err)
		}
		switch cmd {
		case "h":
			if err := r.deal(&r.player, "player", 1); err != nil {
				return 0, err
			}
			r.display.ShowHand(display.Player, r.player.Cards, r.player.Size(), r.player.Score)
			if r.player.Bust() {
				return r.finish(PlayerBust), nil
			}
			if r.player.Score == 21 {
				return r.dealerTurn()
			}
		case "s":
			return r.dealerTurn()
		default:
			r.logger.Debug().Str("command", cmd).Msg("ignoring unrecognized command")
		}
	}
}

// dealerTurn reveals the dealer's hand and draws while the dealer is
// behind the player's score. The dealer deliberately plays to the
// player's total rather than the casino draw-to-17 rule.
func (r *Round) dealerTurn() (Outcome, error) {
	r.display.ShowMessage("DEALER'S TURN")
	r.showDealer()

	if r.dealer.Blackjack() {
		return r.finish(DealerBlackjack), nil
	}

	for r.dealer.Score < r.player.Score {
		r.display.ShowMessage("DEALER DRAWS ANOTHER CARD..")
		r.pause()
		if err := r.deal(&r.dealer, "dealer", 1); err != nil {
			return 0, err
		}
		r.showDealer()
	}

	return r.finish(r.resolve()), nil
}

// resolve settles the round once the dealer has stopped drawing. The
// draw loop guarantees the dealer is at or above the player here.
func (r *Round) resolve() Outcome {
	switch {
	case r.dealer.Bust():
		return DealerBust
	case r.dealer.Score == 21 && r.player.Score == 21:
		return Push
	case r.dealer.Score == 21:
		return DealerWin
	case r.dealer.Score > r.player.Score:
		return DealerWin
	case r.dealer.Score == r.player.Score:
		return Push
	default:
		return PlayerWin
	}
}

func (r *Round) deal(h *Hand, who string, amount int) error {
	for i := 0; i < amount; i++ {
		c, err := r.deck.Draw()
		if err != nil {
			return fmt.Errorf("deal to %s: %w", who, err)
		}
		h.Add(c)
		r.logger.Debug().
			Str("to", who).
			Str("rank", c.Rank.String()).
			Int("score", h.Score).
			Msg("card dealt")
	}
	return nil
}

func (r *Round) showDealer() {
	r.display.ShowHand(display.Dealer, r.dealer.Cards, r.dealer.Size(), r.dealer.Score)
}

func (r *Round) finish(o Outcome) Outcome {
	r.display.ShowOutcome(o.Banner())
	r.logger.Info().
		Str("outcome", o.String()).
		Int("player_score", r.player.Score).
		Int("dealer_score", r.dealer.Score).
		Int("player_cards", r.player.Size()).
		Int("dealer_cards", r.dealer.Size()).
		Msg("round resolved")
	return o
}

// pause waits the configured delay between dealer draws on the round's
// clock, so tests can drive it with a mock.
func (r *Round) pause() {
	if r.delay <= 0 {
		return
	}
	done := make(chan struct{})
	timer := r.clock.AfterFunc(r.delay, func() { close(done) })
	defer timer.Stop()
	<-done
}
