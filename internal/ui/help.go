package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/playground/internal/ui/input"
	"github.com/leighmacdonald/playground/internal/ui/styles"
)

// BuildInfo is stamped in at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

type helpModel struct {
	helpView   help.Model
	build      BuildInfo
	configPath string
	logPath    string
	started    time.Time
	width      int
	height     int
}

func newHelpModel(build BuildInfo, configPath string, logPath string) helpModel {
	return helpModel{
		helpView:   help.New(),
		build:      build,
		configPath: configPath,
		logPath:    logPath,
		started:    time.Now(),
	}
}

func (m helpModel) View() string {
	keys := input.Default
	left := m.helpView.FullHelpView([][]key.Binding{
		{keys.Up, keys.Down, keys.Accept, keys.Back, keys.Help, keys.Quit},
	})
	right := m.helpView.FullHelpView([][]key.Binding{
		{keys.Next, keys.Prev, keys.Toggle, keys.Panel, keys.Reset},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top, styles.HelpBox.Render(left), styles.HelpBox.Render(right))

	commit := m.build.Commit
	if len(commit) > 8 {
		commit = commit[0:8]
	}

	configPath := m.configPath
	if configPath == "" {
		configPath = "(defaults)"
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("Config Path", configPath),
		styles.DetailRow("Log Path", m.logPath),
		styles.DetailRow("Started", humanize.Time(m.started)),
	)

	return lipgloss.Place(max(m.width, lipgloss.Width(content)), max(m.height, lipgloss.Height(content)),
		lipgloss.Center, lipgloss.Center, content)
}
