package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/playground/internal/registry"
	"github.com/leighmacdonald/playground/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// screenHeader is the single row above a detail screen holding the back button.
type screenHeader struct {
	title  string
	zoneID string
}

func newScreenHeader(title string) screenHeader {
	return screenHeader{title: title, zoneID: zone.NewPrefix() + "back"}
}

func (h screenHeader) View() string {
	back := zone.Mark(h.zoneID, styles.BackButton.Render(registry.Glyph("arrow-left")))

	return lipgloss.JoinHorizontal(lipgloss.Top, back, styles.ScreenName.Render(h.title))
}

func (h screenHeader) backClicked(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return false
	}

	return zone.Get(h.zoneID).InBounds(msg)
}
