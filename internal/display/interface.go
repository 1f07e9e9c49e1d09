// Package display renders hands of text-art cards. The compositing
// logic is shared between the plain console output and the full-screen
// TUI; both sit behind the Display interface the game engine talks to.
package display

import "github.com/BakirHaljevac/Blackjack/internal/deck"

// Owner identifies whose hand is being shown.
type Owner int

const (
	Player Owner = iota
	Dealer
)

// Header returns the hand heading for the owner.
func (o Owner) Header() string {
	if o == Player {
		return "YOUR CARDS"
	}
	return "DEALER'S CARDS"
}

// Display is the engine's view of the terminal. ShowHand renders the
// first count cards of a hand with the given score footer; count lets
// the dealer's hole card stay hidden before the dealer's turn.
type Display interface {
	ShowHand(owner Owner, cards []deck.Card, count, score int)
	ShowMessage(text string)
	ShowOutcome(text string)
}
