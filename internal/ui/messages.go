package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/playground/internal/registry"
)

const (
	clearMessageTimeout = time.Second * 5
)

// navigateMsg asks the router to open the screen registered for a route.
type navigateMsg struct {
	route registry.Route
}

func navigate(route registry.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: route} }
}

// backMsg pops the current screen.
type backMsg struct{}

func goBack() tea.Msg {
	return backMsg{}
}

// viewportMsg carries the size of the area a screen may draw into.
type viewportMsg struct {
	width  int
	height int
}

func setViewport(width int, height int) tea.Cmd {
	return func() tea.Msg { return viewportMsg{width: width, height: height} }
}

// frameMsg drives animations. mount ties a frame to the screen instance that requested it so
// ticks scheduled before a remount are dropped.
type frameMsg struct {
	mount int64
}

func nextFrame(mount int64, fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(1, fps)), func(_ time.Time) tea.Msg {
		return frameMsg{mount: mount}
	})
}

type clearStatusMessageMsg struct{}

func clearStatusAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{Message: msg, Err: err}
	}
}
