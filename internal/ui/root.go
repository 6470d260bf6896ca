package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/playground/internal/config"
	"github.com/leighmacdonald/playground/internal/registry"
	"github.com/leighmacdonald/playground/internal/ui/input"
	zone "github.com/lrstanley/bubblezone"
)

// rootModel is the top level model. It owns the screen stack, the home screen always sits at the
// bottom of it.
type rootModel struct {
	conf         config.Config
	router       *router
	stack        screenStack
	statusModel  statusBarModel
	helpModel    helpModel
	showHelp     bool
	width        int
	height       int
	footerHeight int
}

func newRootModel(conf config.Config, build BuildInfo, configPath string, logPath string) *rootModel {
	app := &rootModel{
		conf:         conf,
		router:       newRouter().register(registry.RouteProduct, newProductScreen),
		statusModel:  newStatusBarModel(build.Version),
		helpModel:    newHelpModel(build, configPath, logPath),
		footerHeight: 1,
	}
	app.stack.push(newHomeScreen())
	app.statusModel = app.statusModel.track(app.stack.top())

	return app
}

func (m *rootModel) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("playground"), m.stack.top().Init())
}

func (m *rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpModel.width = msg.Width
		m.helpModel.height = m.contentHeight()
		m.statusModel, _ = m.statusModel.Update(msg)

		return m, setViewport(m.width, m.contentHeight())
	case viewportMsg:
		// Every mounted screen tracks the size so a popped screen is laid out correctly.
		cmds := make([]tea.Cmd, 0, m.stack.len())
		for i, item := range m.stack.items {
			var cmd tea.Cmd
			m.stack.items[i], cmd = item.Update(msg)
			cmds = append(cmds, cmd)
		}

		return m, tea.Batch(cmds...)
	case config.Config:
		m.conf = msg
		cmds := []tea.Cmd{setStatusMessage("Config reloaded", false)}
		for i, item := range m.stack.items {
			var cmd tea.Cmd
			m.stack.items[i], cmd = item.Update(msg)
			cmds = append(cmds, cmd)
		}

		return m, tea.Batch(cmds...)
	case navigateMsg:
		return m, m.open(msg.route)
	case backMsg:
		if m.stack.len() > 1 {
			popped := m.stack.pop()
			slog.Debug("Closed screen", slog.String("title", popped.Title()))
		}
	case statusMsg, clearStatusMessageMsg:
		var cmd tea.Cmd
		m.statusModel, cmd = m.statusModel.Update(msg)

		return m, cmd
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			m.showHelp = !m.showHelp

			return m, nil
		case m.showHelp && key.Matches(msg, input.Default.Back):
			m.showHelp = false

			return m, nil
		case key.Matches(msg, input.Default.Quit) && m.stack.len() == 1:
			return m, tea.Quit
		}

		if m.showHelp {
			return m, nil
		}

		return m, m.propagate(msg)
	default:
		return m, m.propagate(inMsg)
	}

	m.statusModel = m.statusModel.track(m.stack.top())

	return m, nil
}

// open mounts a fresh screen for the route. Reopening a route never reuses an earlier instance.
func (m *rootModel) open(route registry.Route) tea.Cmd {
	opened, errOpen := m.router.open(route, m.conf)
	if errOpen != nil {
		slog.Error("Failed to open screen", slog.String("route", string(route)), slog.String("error", errOpen.Error()))

		return setStatusMessage(errOpen.Error(), true)
	}

	opened, sizeCmd := opened.Update(viewportMsg{width: m.width, height: m.contentHeight()})
	m.stack.push(opened)
	m.statusModel = m.statusModel.track(opened)

	return tea.Batch(opened.Init(), sizeCmd)
}

// propagate hands a message to the screen on top of the stack only.
func (m *rootModel) propagate(msg tea.Msg) tea.Cmd {
	current := m.stack.top()
	if current == nil {
		return nil
	}

	updated, cmd := current.Update(msg)
	m.stack.replaceTop(updated)
	m.statusModel = m.statusModel.track(updated)

	return cmd
}

func (m *rootModel) contentHeight() int {
	return max(0, m.height-m.footerHeight)
}

func (m *rootModel) View() string {
	var content string
	if m.showHelp {
		content = m.helpModel.View()
	} else if current := m.stack.top(); current != nil {
		content = current.View()
	}

	content = lipgloss.NewStyle().Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, content, m.statusModel.View()))
}

// logMsg is useful for debugging events. Tail the log file ~/.config/playground/playground.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case frameMsg, tea.MouseMsg:
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
