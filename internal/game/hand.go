package game

import "github.com/BakirHaljevac/Blackjack/internal/deck"

// Hand is a player's or dealer's cards in deal order plus the running
// score. The score is accumulated card by card, never recomputed from
// the whole hand: an ace is valued at the moment it is dealt, so its
// worth depends on deal order. That is the game's historical behavior
// and is kept deliberately.
type Hand struct {
	Cards []deck.Card
	Score int
}

// Add appends a card and updates the score. An ace counts 11 while the
// score so far is 10 or less, otherwise 1; every other card adds its
// face points unconditionally.
func (h *Hand) Add(c deck.Card) {
	if c.Points() == 11 {
		if h.Score > 10 {
			h.Score++
		} else {
			h.Score += 11
		}
	} else {
		h.Score += c.Points()
	}
	h.Cards = append(h.Cards, c)
}

// Size returns the number of cards held.
func (h *Hand) Size() int {
	return len(h.Cards)
}

// Blackjack reports a natural: 21 from the first two cards.
func (h *Hand) Blackjack() bool {
	return h.Score == 21 && len(h.Cards) == 2
}

// Bust reports a score over 21.
func (h *Hand) Bust() bool {
	return h.Score > 21
}
