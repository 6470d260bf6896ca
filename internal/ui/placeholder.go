package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/playground/internal/config"
	"github.com/leighmacdonald/playground/internal/registry"
	"github.com/leighmacdonald/playground/internal/ui/input"
	"github.com/leighmacdonald/playground/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

// placeholderScreen stands in for registry entries that have no terminal rendition.
type placeholderScreen struct {
	entry  registry.NavEntry
	header screenHeader
	width  int
	height int
}

func newPlaceholderScreen(entry registry.NavEntry, _ config.Config) (screen, error) {
	return &placeholderScreen{entry: entry, header: newScreenHeader(entry.Title)}, nil
}

func (m *placeholderScreen) Init() tea.Cmd {
	return nil
}

func (m *placeholderScreen) Title() string {
	return m.entry.Title
}

func (m *placeholderScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case viewportMsg:
		m.width = msg.width
		m.height = msg.height
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Back) {
			return m, goBack
		}
	case tea.MouseMsg:
		if m.header.backClicked(msg) {
			return m, goBack
		}
	}

	return m, nil
}

func (m *placeholderScreen) View() string {
	width := max(20, min(m.width-4, 60))
	body := wordwrap.String(fmt.Sprintf(
		"%s %s\n\n%s has no terminal version yet. Press esc to return to the gallery.",
		registry.Glyph(m.entry.Icon), m.entry.Description, m.entry.Title), width)

	content := lipgloss.Place(m.width, max(1, m.height-1), lipgloss.Center, lipgloss.Center,
		styles.InfoMessage.Render(body))

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), content)
}
