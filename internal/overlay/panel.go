// Package overlay implements the expandable info panels shown over the product image.
//
// At most one panel is focused at a time. Focusing a panel grows it, de-emphasises every other
// panel and zooms the shared background image toward the panel's focus transform.
package overlay

// PanelID identifies a panel, unique within a panel set.
type PanelID int

// Anchor positions a panel relative to the edges of the screen, in reference points. Unset edges
// are nil.
type Anchor struct {
	Top    *float64
	Bottom *float64
	Left   *float64
	Right  *float64
}

func edge(v float64) *float64 {
	return &v
}

// Transform is a scale and offset applied to the background image.
type Transform struct {
	Scale   float64 `yaml:"scale"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// Identity is the resting image transform.
var Identity = Transform{Scale: 1} //nolint:gochecknoglobals

// Panel is a single info card.
type Panel struct {
	ID     PanelID
	Anchor Anchor
	// Focus is applied to the background image while this panel is focused.
	Focus Transform
	Title string
	Price string
	// Description is carried for completeness, the card does not render it.
	Description string
}

// Products returns the panels of the product screen.
func Products() []Panel {
	return []Panel{
		{
			ID:          1,
			Title:       "Woolen Sweater",
			Price:       "$299",
			Description: "Premium comfort with lumbar support and adjustable armrests",
			Anchor:      Anchor{Top: edge(260), Right: edge(100)},
			Focus:       Transform{Scale: 1.5, OffsetX: -10, OffsetY: -20},
		},
		{
			ID:          2,
			Title:       "Cream Shoes",
			Price:       "$29.99",
			Description: "Electric height adjustment with memory presets",
			Anchor:      Anchor{Bottom: edge(150), Left: edge(80)},
			Focus:       Transform{Scale: 1.5, OffsetX: 50, OffsetY: -100},
		},
		{
			ID:          3,
			Title:       "Trousers that fit",
			Price:       "$89",
			Description: "Full motion mount for screens up to 32 inches",
			Anchor:      Anchor{Top: edge(400), Left: edge(140)},
			Focus:       Transform{Scale: 1.5, OffsetX: 20, OffsetY: -50},
		},
	}
}
