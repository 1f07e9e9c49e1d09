// Package tui is the optional full-screen interface. It adapts the
// bubbletea event loop to the engine's Display and Prompter interfaces
// so the round logic stays identical to console play.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap declares the bindings shown in the help line.
type keyMap struct {
	Hit   key.Binding
	Stand key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Hit: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "hit"),
		),
		Stand: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stand"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hit, k.Stand, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Hit, k.Stand, k.Quit}}
}

// Messages sent into the model by the bridge.
type (
	handMsg struct {
		header string
		block  string
		score  int
	}
	messageMsg string
	outcomeMsg string
	awaitMsg   struct{}
)

// Model is the bubbletea model for one round.
type Model struct {
	keys      keyMap
	help      help.Model
	sections  []string
	awaiting  bool
	finished  bool
	closed    bool
	decisions chan<- string
	width     int
	height    int
}

func newModel(decisions chan<- string) *Model {
	return &Model{
		keys:      defaultKeyMap(),
		help:      help.New(),
		decisions: decisions,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case handMsg:
		section := HandHeaderStyle.Render(msg.header+":") + "\n" +
			CardBlockStyle.Render(msg.block) + "\n" +
			ScoreStyle.Render("score:"+strconv.Itoa(msg.score))
		m.sections = append(m.sections, section)

	case messageMsg:
		m.sections = append(m.sections, MessageStyle.Render(string(msg)))

	case outcomeMsg:
		m.sections = append(m.sections, OutcomeStyle.Render(string(msg)))
		m.finished = true
		m.awaiting = false

	case awaitMsg:
		m.awaiting = true

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.closeDecisions()
			return m, tea.Quit
		case m.awaiting && !m.closed && key.Matches(msg, m.keys.Hit):
			m.awaiting = false
			m.decisions <- "h"
		case m.awaiting && !m.closed && key.Matches(msg, m.keys.Stand):
			m.awaiting = false
			m.decisions <- "s"
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("BLACKJACK"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(m.sections, "\n\n"))
	b.WriteString("\n\n")
	switch {
	case m.finished:
		b.WriteString(HelpStyle.Render("round over • press q to exit"))
	case m.awaiting:
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// closeDecisions unblocks an engine waiting in Prompt. Quitting
// mid-round aborts the engine through the prompt error path.
func (m *Model) closeDecisions() {
	if !m.closed {
		m.closed = true
		close(m.decisions)
	}
}
