package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	Accent = lipgloss.Color("#f4722b")

	Black       = lipgloss.Color("#111111")
	Canvas      = lipgloss.Color("#1b1a19")
	Gray        = lipgloss.Color("#3e3e3e")
	GrayDarkAlt = lipgloss.Color("#0f0f0f")
	White       = lipgloss.Color("#cccccc")
	Whiter      = lipgloss.Color("#eeeeee")
	Sky         = lipgloss.Color("#0ea5e9")

	ColourStrange = lipgloss.Color("#cf6a32")
	ColourGenuine = lipgloss.Color("#4d7455")
	ColourVintage = lipgloss.Color("#476291")

	// The product photo and the frosted cards laid over it.
	ImageInk   = lipgloss.Color("#b49a7c")
	CardGlass  = lipgloss.Color("#d9d4cc")
	CardText   = lipgloss.Color("#111111")
	CardButton = lipgloss.Color("#000000")

	HeaderTitle    = lipgloss.NewStyle().Bold(true).Foreground(Whiter).PaddingLeft(2)
	HeaderSubtitle = lipgloss.NewStyle().Foreground(Gray).PaddingLeft(2).PaddingBottom(1)

	LinkGlyph       = lipgloss.NewStyle().Background(GrayDarkAlt).Foreground(White).Width(5).Align(lipgloss.Center)
	LinkTitle       = lipgloss.NewStyle().Bold(true).Foreground(White)
	LinkTitleActive = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	LinkDescription = lipgloss.NewStyle().Foreground(Gray)
	LinkChevron     = lipgloss.NewStyle().Foreground(Gray)
	LinkSoonBadge   = lipgloss.NewStyle().Background(Sky).Foreground(Whiter).Padding(0, 1).MarginLeft(1)

	BackButton = lipgloss.NewStyle().Background(Whiter).Foreground(Black).Padding(0, 1)
	ScreenName = lipgloss.NewStyle().Foreground(White).Bold(true).PaddingLeft(2)

	StatusTitle   = lipgloss.NewStyle().Foreground(ColourStrange).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusState   = lipgloss.NewStyle().Foreground(ColourVintage).PaddingRight(2).Bold(true)
	StatusError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8383B")).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusMessage = lipgloss.NewStyle().Foreground(ColourGenuine).Align(lipgloss.Right).Bold(true).PaddingRight(2)
	StatusHelp    = lipgloss.NewStyle().Foreground(Gray).Bold(true).Align(lipgloss.Center).PaddingRight(2)
	StatusVersion = lipgloss.NewStyle().Foreground(ColourGenuine).Bold(true).Align(lipgloss.Center).PaddingRight(2)

	PanelLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Align(lipgloss.Right).Width(16)
	PanelValue = lipgloss.NewStyle().Width(60)

	InfoMessage = lipgloss.NewStyle().Align(lipgloss.Center).Padding(1)

	HelpBox = lipgloss.NewStyle().Padding(2)
)

func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// Blend mixes from toward to, amount 0 returns from and 1 returns to. Terminals have no alpha
// channel so opacity is expressed as a blend against whatever sits underneath.
func Blend(from lipgloss.Color, to lipgloss.Color, amount float64) lipgloss.Color {
	fromColour, errFrom := colorful.Hex(string(from))
	toColour, errTo := colorful.Hex(string(to))
	if errFrom != nil || errTo != nil {
		if amount < 0.5 {
			return from
		}

		return to
	}

	amount = max(0, min(1, amount))

	return lipgloss.Color(fromColour.BlendLab(toColour, amount).Clamped().Hex())
}
