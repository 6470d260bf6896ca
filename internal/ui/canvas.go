package ui

import (
	_ "embed"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/playground/internal/overlay"
	"github.com/leighmacdonald/playground/internal/ui/styles"
	"github.com/muesli/reflow/truncate"
)

// Layout is computed against a phone sized reference screen and scaled onto the terminal.
const (
	referenceWidth  = 390.0
	referenceHeight = 844.0

	minPanelWidth  = 5
	hiddenOpacity  = 0.02
	closedGlyph    = "+"
	openGlyph      = "×"
	cartButtonText = " Add to Cart "
)

//go:embed assets/product.txt
var productArt string

type artwork struct {
	rows  [][]rune
	width int
}

func newArtwork(raw string) artwork {
	var art artwork
	for _, line := range strings.Split(strings.TrimRight(raw, "\n"), "\n") {
		row := []rune(line)
		art.rows = append(art.rows, row)
		art.width = max(art.width, len(row))
	}

	return art
}

// at samples the art at a point given in reference points.
func (a artwork) at(x float64, y float64) rune {
	if x < 0 || y < 0 || x >= referenceWidth || y >= referenceHeight || len(a.rows) == 0 {
		return ' '
	}

	row := a.rows[int(y/referenceHeight*float64(len(a.rows)))]
	col := int(x / referenceWidth * float64(a.width))
	if col >= len(row) {
		return ' '
	}

	return row[col]
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x int, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// surface maps reference points onto a block of terminal cells.
type surface struct {
	width  int
	height int
}

func (s surface) scaleX() float64 {
	return float64(s.width) / referenceWidth
}

func (s surface) scaleY() float64 {
	return float64(s.height) / referenceHeight
}

// panelRect places a panel by its anchor using the unscaled footprint, then shrinks it about its
// centre. The result is kept inside the surface.
func (s surface) panelRect(anchor overlay.Anchor, style overlay.Style) rect {
	fullW := style.Width * s.scaleX()
	fullH := style.Height * s.scaleY()

	var left, top float64
	switch {
	case anchor.Left != nil:
		left = *anchor.Left * s.scaleX()
	case anchor.Right != nil:
		left = float64(s.width) - *anchor.Right*s.scaleX() - fullW
	}

	switch {
	case anchor.Top != nil:
		top = *anchor.Top * s.scaleY()
	case anchor.Bottom != nil:
		top = float64(s.height) - *anchor.Bottom*s.scaleY() - fullH
	}

	width := max(minPanelWidth, int(math.Round(fullW*style.Scale)))
	height := max(1, int(math.Round(fullH*style.Scale)))
	left += (fullW - float64(width)) / 2
	top += (fullH - float64(height)) / 2

	width = min(width, max(1, s.width))
	height = min(height, max(1, s.height))

	return rect{
		x: max(0, min(int(math.Round(left)), s.width-width)),
		y: max(0, min(int(math.Round(top)), s.height-height)),
		w: width,
		h: height,
	}
}

// renderImage draws the background art under the image transform. Every cell samples the point
// that the transform maps onto it, the transform scales about the surface centre and then shifts.
func renderImage(art artwork, s surface, transform overlay.Transform) string {
	scale := transform.Scale
	if scale <= 0 {
		scale = 1
	}

	centreX, centreY := referenceWidth/2, referenceHeight/2
	style := lipgloss.NewStyle().Foreground(styles.ImageInk).Background(styles.Canvas)
	lines := make([]string, s.height)

	for row := range s.height {
		var line strings.Builder
		pointY := (float64(row) + 0.5) / s.scaleY()
		sampleY := (pointY-centreY)/scale + centreY - transform.OffsetY

		for col := range s.width {
			pointX := (float64(col) + 0.5) / s.scaleX()
			sampleX := (pointX-centreX)/scale + centreX - transform.OffsetX
			line.WriteRune(art.at(sampleX, sampleY))
		}

		lines[row] = style.Render(line.String())
	}

	return strings.Join(lines, "\n")
}

// iconGlyph flips the plus to a cross once the icon has turned halfway.
func iconGlyph(style overlay.Style, metrics overlay.Metrics) string {
	if style.IconRotation < metrics.IconRotation/2 {
		return closedGlyph
	}

	return openGlyph
}

// renderPanel draws a single card. Opacity is expressed by blending toward the canvas colour.
func renderPanel(view overlay.PanelView, metrics overlay.Metrics, box rect, s surface, selected bool) string {
	card := styles.Blend(styles.Canvas, styles.CardGlass, view.Style.Opacity)
	iconColour := styles.Blend(card, styles.CardText, view.Style.Opacity)
	if selected {
		iconColour = styles.Accent
	}

	line := lipgloss.NewStyle().Background(card).Width(box.w).MaxWidth(box.w)
	lines := make([]string, box.h)
	for i := range lines {
		lines[i] = line.Render("")
	}

	hint := truncate.String(view.Panel.Title, uint(max(0, box.w-4))) //nolint:gosec
	if view.Style.ContentOpacity > 0 || box.w < 8 {
		hint = ""
	}

	icon := lipgloss.NewStyle().Background(card).Foreground(iconColour).Bold(true).Render(iconGlyph(view.Style, metrics))
	gap := max(0, box.w-lipgloss.Width(hint)-3)
	lines[0] = line.Foreground(iconColour).Render(" " + hint + strings.Repeat(" ", gap) + icon)

	if view.Style.ContentOpacity <= 0 {
		return strings.Join(lines, "\n")
	}

	ink := styles.Blend(card, styles.CardText, view.Style.Opacity*view.Style.ContentOpacity)
	text := line.Foreground(ink)
	button := lipgloss.NewStyle().
		Background(styles.Blend(card, styles.CardButton, view.Style.Opacity*view.Style.ContentOpacity)).
		Foreground(styles.Blend(card, styles.Whiter, view.Style.Opacity*view.Style.ContentOpacity))

	contentWidth := uint(max(0, box.w-2)) //nolint:gosec
	content := []string{
		text.Bold(true).Render(" " + truncate.StringWithTail(view.Panel.Title, contentWidth, "…")),
		text.Render(" " + truncate.StringWithTail(view.Panel.Price, contentWidth, "…")),
		"",
		line.Render(" " + button.Render(truncate.String(cartButtonText, contentWidth))),
	}

	offset := int(math.Round(view.Style.ContentOffsetY * s.scaleY()))
	for i, row := range content {
		target := 1 + offset + i
		if row == "" || target < 1 || target >= box.h {
			continue
		}

		lines[target] = row
	}

	return strings.Join(lines, "\n")
}

// overlayAt pastes overlay onto base with its top left corner at x, y. Both are treated as blocks
// of width by height cells.
func overlayAt(base string, over string, x int, y int, width int, height int) string {
	baseLines := splitToLines(base, height)
	overLines := splitToLines(over, 0)
	overWidth := maxLineWidth(overLines)

	for i, line := range overLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}

		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if leftWidth := ansi.StringWidth(left); leftWidth < x {
			left += strings.Repeat(" ", x-leftWidth)
		}

		pasted := padRightANSI(line, min(overWidth, max(0, width-x)))
		right := ansi.TruncateLeft(target, x+ansi.StringWidth(pasted), "")
		baseLines[row] = left + pasted + right
	}

	return strings.Join(baseLines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}

	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}

	return lines
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		widest = max(widest, ansi.StringWidth(line))
	}

	return widest
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if current := ansi.StringWidth(s); current < width {
		return s + strings.Repeat(" ", width-current)
	}

	return s
}
