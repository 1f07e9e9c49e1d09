package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BakirHaljevac/Blackjack/internal/deck"
	"github.com/BakirHaljevac/Blackjack/internal/display"
)

// ErrClosed is returned from Prompt when the player quits the TUI
// while the engine is waiting for a command.
var ErrClosed = errors.New("tui closed")

// Bridge connects the engine to the bubbletea program. It implements
// display.Display and game.Prompter: display calls become program
// messages, and Prompt blocks on the decision channel fed by key
// presses. The engine runs on its own goroutine; Run drives the TUI on
// the caller's.
type Bridge struct {
	program   *tea.Program
	decisions chan string
}

// NewBridge builds the program in alt-screen mode.
func NewBridge() *Bridge {
	b := &Bridge{decisions: make(chan string, 1)}
	b.program = tea.NewProgram(newModel(b.decisions), tea.WithAltScreen())
	return b
}

// Run runs the TUI until the player exits. Engine sends issued before
// Run starts simply block until the program's loop picks them up.
func (b *Bridge) Run() error {
	_, err := b.program.Run()
	return err
}

// ShowHand implements display.Display.
func (b *Bridge) ShowHand(owner display.Owner, cards []deck.Card, count, score int) {
	b.program.Send(handMsg{
		header: owner.Header(),
		block:  strings.Join(display.Compose(cards, count), "\n"),
		score:  score,
	})
}

// ShowMessage implements display.Display.
func (b *Bridge) ShowMessage(text string) {
	b.program.Send(messageMsg(text))
}

// ShowOutcome implements display.Display.
func (b *Bridge) ShowOutcome(text string) {
	b.program.Send(outcomeMsg(text))
}

// Prompt implements game.Prompter. It asks the model to enable the
// hit/stand keys and waits for the player's choice.
func (b *Bridge) Prompt() (string, error) {
	b.program.Send(awaitMsg{})
	cmd, ok := <-b.decisions
	if !ok {
		return "", ErrClosed
	}
	return cmd, nil
}
