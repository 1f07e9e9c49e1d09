// Package deck holds the 52-card deck: construction from a face
// library, seeded Fisher-Yates shuffling, and cursor-based dealing with
// a guarded exhaustion error.
package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"

	"github.com/BakirHaljevac/Blackjack/internal/assets"
)

// Size is the number of cards in a deck: 4 of each of the 13 ranks.
const Size = 52

// ErrExhausted is returned by Draw once every card has been dealt.
var ErrExhausted = errors.New("deck exhausted")

// Deck is an ordered sequence of 52 cards. Composition is fixed at
// construction; shuffling only permutes order, and a monotonically
// advancing cursor tracks which prefix has been dealt.
type Deck struct {
	cards  []Card
	cursor int
}

// New builds an unshuffled deck from a face library, 4 cards per rank
// in canonical rank order.
func New(lib *assets.Library) (*Deck, error) {
	cards := make([]Card, 0, Size)
	for _, rank := range Ranks {
		face, ok := lib.Face(rank.String())
		if !ok {
			return nil, fmt.Errorf("library has no face for %s", rank)
		}
		for i := 0; i < 4; i++ {
			cards = append(cards, Card{Rank: rank, Face: face})
		}
	}
	return &Deck{cards: cards}, nil
}

// NewStacked builds a deck dealing the given cards in order. Used to
// replay fixed scenarios.
func NewStacked(cards []Card) *Deck {
	return &Deck{cards: cards}
}

// Shuffle permutes the undealt deck in place with a descending
// Fisher-Yates pass. The same generator state always yields the same
// order, so a seeded rng reproduces a full game.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw returns the card under the cursor and advances it. Drawing past
// the end returns ErrExhausted rather than reading out of range; a
// legal round never deals anywhere near 52 cards, but the bound is
// enforced regardless.
func (d *Deck) Draw() (Card, error) {
	if d.cursor >= len(d.cards) {
		return Card{}, ErrExhausted
	}
	c := d.cards[d.cursor]
	d.cursor++
	return c, nil
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.cursor
}

// Cards returns the full ordered card sequence, dealt and undealt.
// Exposed for shuffle verification.
func (d *Deck) Cards() []Card {
	return d.cards
}
