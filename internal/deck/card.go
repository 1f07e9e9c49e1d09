package deck

import "github.com/BakirHaljevac/Blackjack/internal/assets"

// Rank represents one of the 13 card ranks. Suits are not modelled:
// blackjack only cares about point values, and the card art is per rank.
type Rank int

const (
	Ace Rank = iota
	King
	Queen
	Jack
	Ten
	Nine
	Eight
	Seven
	Six
	Five
	Four
	Three
	Two
)

// Ranks lists every rank in canonical order, aces first. Deck
// construction walks this list, so the pre-shuffle layout is fixed.
var Ranks = []Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six, Five, Four, Three, Two}

// Points returns the rank's blackjack value. Aces report 11; the
// soft/hard correction is applied where cards join a hand, not here.
func (r Rank) Points() int {
	return assets.Points[int(r)]
}

// String returns the rank name, which doubles as its asset file base
// name ("ace", "king", ... "2").
func (r Rank) String() string {
	return assets.Names[int(r)]
}

// Card is an immutable pairing of a rank and its shared, read-only face.
type Card struct {
	Rank Rank
	Face *assets.Face
}

// Points returns the card's rank value.
func (c Card) Points() int {
	return c.Rank.Points()
}

// IsAce reports whether the card is an ace.
func (c Card) IsAce() bool {
	return c.Rank == Ace
}
