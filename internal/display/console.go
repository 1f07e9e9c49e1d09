package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/BakirHaljevac/Blackjack/internal/deck"
)

const ruleWidth = 60

// Console writes hands and messages sequentially to a terminal stream.
type Console struct {
	out io.Writer
}

// NewConsole creates a console display writing to out.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// ShowHand prints the owner's heading, the first count cards composited
// side by side, and a score footer between rule lines.
func (c *Console) ShowHand(owner Owner, cards []deck.Card, count, score int) {
	fmt.Fprintf(c.out, "%s:\n\n", HeaderStyle.Render(owner.Header()))
	c.rule()
	for _, row := range Compose(cards, count) {
		fmt.Fprintln(c.out, row)
	}
	fmt.Fprintf(c.out, "%s\n\n", ScoreStyle.Render(fmt.Sprintf("score:%d", score)))
	c.rule()
}

// ShowMessage prints a game progress line.
func (c *Console) ShowMessage(text string) {
	fmt.Fprintln(c.out, MessageStyle.Render(text))
}

// ShowOutcome prints the terminal result banner.
func (c *Console) ShowOutcome(text string) {
	fmt.Fprintln(c.out, OutcomeStyle.Render(text))
}

func (c *Console) rule() {
	fmt.Fprintln(c.out, RuleStyle.Render(strings.Repeat("_", ruleWidth)))
}
