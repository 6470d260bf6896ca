package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/playground/internal/registry"
	"github.com/leighmacdonald/playground/internal/ui/input"
	"github.com/leighmacdonald/playground/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type linkItem struct {
	entry registry.NavEntry
}

func (i linkItem) FilterValue() string { return i.entry.Title }

type linkDelegate struct {
	zoneID string
}

func (d linkDelegate) Height() int                             { return 2 }
func (d linkDelegate) Spacing() int                            { return 1 }
func (d linkDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d linkDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(linkItem)
	if !ok {
		return
	}

	titleStyle := styles.LinkTitle
	if index == m.Index() {
		titleStyle = styles.LinkTitleActive
	}

	title := titleStyle.Render(item.entry.Title)
	if item.entry.ComingSoon {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, styles.LinkSoonBadge.Render("Soon"))
	}

	text := lipgloss.JoinVertical(lipgloss.Left, title, styles.LinkDescription.Render(item.entry.Description))
	row := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.LinkGlyph.Height(2).AlignVertical(lipgloss.Center).Render(registry.Glyph(item.entry.Icon)), "  ", text)

	chevron := styles.LinkChevron.Render(registry.Glyph("chevron-right"))
	gap := max(1, m.Width()-lipgloss.Width(row)-lipgloss.Width(chevron)-1)
	row = lipgloss.JoinHorizontal(lipgloss.Center, row, lipgloss.NewStyle().Width(gap).Render(""), chevron)

	if _, err := fmt.Fprint(w, zone.Mark(d.zoneID+string(item.entry.Route), row)); err != nil {
		slog.Error("Failed to render item delegate", slog.String("error", err.Error()))
	}
}

// homeScreen lists every registry entry. Activating one emits a navigation intent for its route.
type homeScreen struct {
	list   list.Model
	zoneID string
	width  int
	height int
}

func newHomeScreen() *homeScreen {
	zoneID := zone.NewPrefix()
	var items []list.Item
	for _, entry := range registry.Entries() {
		items = append(items, linkItem{entry: entry})
	}

	links := list.New(items, linkDelegate{zoneID: zoneID}, 2, 2)
	links.DisableQuitKeybindings()
	links.SetShowTitle(false)
	links.SetShowStatusBar(false)
	links.SetShowHelp(false)
	links.SetFilteringEnabled(false)

	return &homeScreen{list: links, zoneID: zoneID}
}

func (m *homeScreen) Init() tea.Cmd {
	return nil
}

func (m *homeScreen) Title() string {
	return "Home"
}

func (m *homeScreen) header() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.HeaderTitle.Render("Hello there!"),
		styles.HeaderSubtitle.Render("Welcome to my playground"))
}

func (m *homeScreen) Update(msg tea.Msg) (screen, tea.Cmd) {
	switch msg := msg.(type) {
	case viewportMsg:
		m.width = msg.width
		m.height = msg.height
		m.list.SetSize(m.width, max(1, m.height-lipgloss.Height(m.header())))

		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, input.Default.Accept) {
			return m, m.activate(m.list.Index())
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for index, item := range m.list.Items() {
			link, ok := item.(linkItem)
			if !ok {
				continue
			}

			if zone.Get(m.zoneID + string(link.entry.Route)).InBounds(msg) {
				return m, m.activate(index)
			}
		}

		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *homeScreen) activate(index int) tea.Cmd {
	items := m.list.Items()
	if index < 0 || index >= len(items) {
		return nil
	}

	link, ok := items[index].(linkItem)
	if !ok {
		return nil
	}

	m.list.Select(index)

	return navigate(link.entry.Route)
}

func (m *homeScreen) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), m.list.View())
}
