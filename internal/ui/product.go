package ui

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/playground/internal/config"
	"github.com/leighmacdonald/playground/internal/overlay"
	"github.com/leighmacdonald/playground/internal/registry"
	"github.com/leighmacdonald/playground/internal/ui/input"
)

// mounts hands every product screen instance its own id so frames scheduled by an earlier
// instance can be told apart.
var mounts atomic.Int64 //nolint:gochecknoglobals

type placedPanel struct {
	index int
	view  overlay.PanelView
	box   rect
}

// productScreen shows the product image with its expandable info panels.
type productScreen struct {
	entry     registry.NavEntry
	header    screenHeader
	overlay   *overlay.Overlay
	metrics   overlay.Metrics
	art       artwork
	mount     int64
	animating bool
	cursor    int
	width     int
	height    int
}

func newProductScreen(entry registry.NavEntry, conf config.Config) (screen, error) {
	panels, errPanels := overlay.New(overlay.Products(), overlay.DefaultMetrics, conf.Tuning())
	if errPanels != nil {
		return nil, errPanels
	}

	return &productScreen{
		entry:   entry,
		header:  newScreenHeader(entry.Title),
		overlay: panels,
		metrics: overlay.DefaultMetrics,
		art:     newArtwork(productArt),
		mount:   mounts.Add(1),
	}, nil
}

func (m *productScreen) Init() tea.Cmd {
	return nil
}

func (m *productScreen) Title() string {
	return m.entry.Title
}

// State is shown in the status bar.
func (m *productScreen) State() string {
	return m.overlay.State()
}

func (m *productScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case viewportMsg:
		m.width = msg.width
		m.height = msg.height
	case frameMsg:
		if msg.mount != m.mount || !m.animating {
			return m, nil
		}

		if !m.overlay.Step() {
			m.animating = false

			return m, nil
		}

		return m, nextFrame(m.mount, m.overlay.Tuning().FPS)
	case config.Config:
		if err := m.overlay.Retune(msg.Tuning()); err != nil {
			slog.Error("Failed to apply animation settings", slog.String("error", err.Error()))

			return m, setStatusMessage(err.Error(), true)
		}
	case tea.KeyMsg:
		return m, m.onKey(msg)
	case tea.MouseMsg:
		if m.header.backClicked(msg) {
			return m, goBack
		}

		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		if placed, found := m.hit(msg.X, msg.Y-lipgloss.Height(m.header.View())); found {
			m.cursor = placed.index

			return m, m.toggle(placed.view.Panel.ID)
		}
	}

	return m, nil
}

func (m *productScreen) onKey(msg tea.KeyMsg) tea.Cmd {
	panels := m.overlay.Panels()

	switch {
	case key.Matches(msg, input.Default.Back):
		return goBack
	case key.Matches(msg, input.Default.Next):
		m.cursor = input.Forward.Step(m.cursor, len(panels))
	case key.Matches(msg, input.Default.Prev):
		m.cursor = input.Backward.Step(m.cursor, len(panels))
	case key.Matches(msg, input.Default.Toggle):
		if m.cursor < len(panels) {
			return m.toggle(panels[m.cursor].ID)
		}
	case key.Matches(msg, input.Default.Reset):
		if focused, ok := m.overlay.Focused(); ok {
			return m.toggle(focused)
		}
	case key.Matches(msg, input.Default.Panel):
		index := int(msg.String()[0] - '1')
		if index >= len(panels) {
			return setStatusMessage(fmt.Sprintf("No panel %s", msg.String()), true)
		}

		m.cursor = index

		return m.toggle(panels[index].ID)
	}

	return nil
}

func (m *productScreen) toggle(id overlay.PanelID) tea.Cmd {
	if err := m.overlay.Toggle(id); err != nil {
		slog.Error("Failed to toggle panel", slog.Int("panel", int(id)), slog.String("error", err.Error()))

		return setStatusMessage(err.Error(), true)
	}

	slog.Debug("Panel toggled", slog.Int("panel", int(id)), slog.String("state", m.overlay.State()))

	if m.animating {
		return nil
	}

	m.animating = true

	return nextFrame(m.mount, m.overlay.Tuning().FPS)
}

func (m *productScreen) surface() surface {
	return surface{width: max(0, m.width), height: max(0, m.height-lipgloss.Height(m.header.View()))}
}

// layout returns the visible panels in paint order, the most expanded panel last so it sits on top.
func (m *productScreen) layout() []placedPanel {
	canvas := m.surface()

	var placed []placedPanel
	for index, view := range m.overlay.Views() {
		if view.Style.Opacity <= hiddenOpacity {
			continue
		}

		placed = append(placed, placedPanel{
			index: index,
			view:  view,
			box:   canvas.panelRect(view.Panel.Anchor, view.Style),
		})
	}

	slices.SortStableFunc(placed, func(a, b placedPanel) int {
		return cmp.Compare(a.view.SizeProgress, b.view.SizeProgress)
	})

	return placed
}

// hit finds the panel under a canvas cell. A collapsed panel answers anywhere in its box, an
// expanded one only on its icon row.
func (m *productScreen) hit(x int, y int) (placedPanel, bool) {
	placed := m.layout()
	for i := len(placed) - 1; i >= 0; i-- {
		candidate := placed[i]
		if !candidate.box.contains(x, y) {
			continue
		}

		if candidate.view.IsFocused && y != candidate.box.y {
			return placedPanel{}, false
		}

		return candidate, true
	}

	return placedPanel{}, false
}

func (m *productScreen) View() string {
	canvas := m.surface()
	content := renderImage(m.art, canvas, m.overlay.Image())

	for _, placed := range m.layout() {
		card := renderPanel(placed.view, m.metrics, placed.box, canvas, placed.index == m.cursor)
		content = overlayAt(content, card, placed.box.x, placed.box.y, canvas.width, canvas.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), content)
}
