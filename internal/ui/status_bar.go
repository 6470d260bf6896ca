package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/playground/internal/ui/input"
	"github.com/leighmacdonald/playground/internal/ui/styles"
)

// stateReporter is implemented by screens that have a state worth showing in the status bar.
type stateReporter interface {
	State() string
}

type statusBarModel struct {
	width       int
	title       string
	state       string
	statusMsg   string
	statusError bool
	version     string
}

func newStatusBarModel(version string) statusBarModel {
	return statusBarModel{version: version}
}

func (m statusBarModel) Init() tea.Cmd {
	return nil
}

func (m statusBarModel) Update(msg tea.Msg) (statusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, clearStatusAfter(clearMessageTimeout)
	case clearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// track copies what the status bar shows about the current screen.
func (m statusBarModel) track(current screen) statusBarModel {
	m.title = ""
	m.state = ""
	if current == nil {
		return m
	}

	m.title = current.Title()
	if reporter, ok := current.(stateReporter); ok {
		m.state = reporter.State()
	}

	return m
}

func (m statusBarModel) View() string {
	args := []string{styles.StatusTitle.Render(m.title)}
	if m.state != "" {
		args = append(args, styles.StatusState.Render(m.state))
	}

	args = append(args,
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
		m.status())

	return lipgloss.NewStyle().Width(m.width).MaxWidth(m.width).Background(styles.Black).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m statusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
