package display

import (
	"strings"

	"github.com/BakirHaljevac/Blackjack/internal/deck"
)

// cardGap separates adjacent cards on the same visual row.
const cardGap = "  "

// Compose lays the first count card faces side by side and returns the
// visual rows. Faces are pre-split into lines of uniform width at load
// time, so row r of the block is simply row r of each face joined by
// the gap.
func Compose(cards []deck.Card, count int) []string {
	if count > len(cards) {
		count = len(cards)
	}
	if count <= 0 {
		return nil
	}

	height := cards[0].Face.Height()
	rows := make([]string, height)
	parts := make([]string, count)
	for row := 0; row < height; row++ {
		for i := 0; i < count; i++ {
			parts[i] = cards[i].Face.Line(row)
		}
		rows[row] = strings.Join(parts, cardGap)
	}
	return rows
}
