package game

import (
	"strings"

	"github.com/chzyer/readline"
)

// Prompter supplies the player's hit/stand commands. The engine asks
// for one command at a time and interprets only "h" and "s"; anything
// else is ignored and the prompt repeats.
type Prompter interface {
	Prompt() (string, error)
}

// ConsolePrompter reads commands interactively with readline.
type ConsolePrompter struct {
	rl *readline.Instance
}

// NewConsolePrompter sets up the interactive prompt.
func NewConsolePrompter() (*ConsolePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "HIT (h) or STAND (s) > ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}
	return &ConsolePrompter{rl: rl}, nil
}

// Prompt blocks until the player enters a line and returns its first
// whitespace-delimited token, or "" for a blank line.
func (p *ConsolePrompter) Prompt() (string, error) {
	line, err := p.rl.Readline()
	if err != nil {
		return "", err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], nil
}

// Close releases the readline instance and restores the terminal.
func (p *ConsolePrompter) Close() error {
	return p.rl.Close()
}
