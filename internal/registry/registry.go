// Package registry holds the ordered, read-only list of screens reachable from the home screen.
package registry

// Route identifies a navigable screen.
type Route string

// Icon is a feather style icon tag. Rendering the icon is left to the ui.
type Icon string

const (
	RouteHome           Route = "/"
	RouteProduct        Route = "/screens/product"
	RouteDropdown       Route = "/screens/dropdown"
	RouteCardFlip       Route = "/screens/card-flip"
	RouteExpandableTabs Route = "/screens/expandable-tabs-image"
	RouteProductGrid    Route = "/screens/product-grid"
	RouteGradient       Route = "/screens/gradient"
	RouteOnboarding     Route = "/screens/onboarding"
	RouteSwitch         Route = "/screens/switch"
	RouteParallax       Route = "/screens/parallax"
	RouteWeather        Route = "/screens/weather"
	RouteMasonry        Route = "/screens/masonry"
	RouteCard           Route = "/screens/card"
	RouteChart          Route = "/screens/chart"
	RouteVideoCard      Route = "/screens/video-card"
	RouteBottomBar      Route = "/screens/bottom-bar"
	RouteJournalCards   Route = "/screens/journal-cards"
)

// NavEntry is a single home screen item.
type NavEntry struct {
	Route       Route
	Icon        Icon
	Title       string
	Description string
	// ComingSoon marks entries whose screen is not ready yet, they are still navigable.
	ComingSoon bool
}

var entries = []NavEntry{ //nolint:gochecknoglobals
	{Route: RouteProduct, Icon: "shopping-cart", Title: "Product", Description: "Product details"},
	{Route: RouteDropdown, Icon: "chevron-down", Title: "Dropdown", Description: "Expandable dropdown"},
	{Route: RouteCardFlip, Icon: "box", Title: "Card Flip", Description: "3d card flip"},
	{Route: RouteExpandableTabs, Icon: "book-open", Title: "Expandable Tabs", Description: "Expandable tabs"},
	{Route: RouteProductGrid, Icon: "shopping-bag", Title: "Product Grid", Description: "Animated filter"},
	{Route: RouteGradient, Icon: "droplet", Title: "Theme carousel", Description: "Theme picker"},
	{Route: RouteOnboarding, Icon: "copy", Title: "Onboarding", Description: "Introduction slider"},
	{Route: RouteSwitch, Icon: "toggle-left", Title: "Switch", Description: "Toggle switch"},
	{Route: RouteParallax, Icon: "layers", Title: "Parallax", Description: "Parallax scroller"},
	{Route: RouteWeather, Icon: "cloud", Title: "Weather", Description: "Weather app"},
	{Route: RouteMasonry, Icon: "grid", Title: "Masonry grid", Description: "Simple image or card layout"},
	{Route: RouteCard, Icon: "square", Title: "Card", Description: "Card counter"},
	{Route: RouteChart, Icon: "bar-chart", Title: "Chart counter", Description: "Earnings chart"},
	{Route: RouteVideoCard, Icon: "play", Title: "Video card", Description: "Expandable card"},
	{Route: RouteBottomBar, Icon: "git-commit", Title: "Bottom bar", Description: "Switcher"},
	{Route: RouteJournalCards, Icon: "square", Title: "Journal cards", Description: "Journal cards"},
}

// Entries returns the home screen entries in display order. The returned slice is a copy.
func Entries() []NavEntry {
	out := make([]NavEntry, len(entries))
	copy(out, entries)

	return out
}

// Lookup finds the entry registered for route.
func Lookup(route Route) (NavEntry, bool) {
	for _, entry := range entries {
		if entry.Route == route {
			return entry, true
		}
	}

	return NavEntry{}, false
}

var glyphs = map[Icon]string{ //nolint:gochecknoglobals
	"shopping-cart": "🛒",
	"chevron-down":  "⌄",
	"box":           "▣",
	"book-open":     "📖",
	"shopping-bag":  "👜",
	"droplet":       "💧",
	"copy":          "❐",
	"toggle-left":   "◐",
	"layers":        "☰",
	"cloud":         "☁",
	"grid":          "▦",
	"square":        "□",
	"bar-chart":     "📊",
	"play":          "▶",
	"git-commit":    "⊶",
	"chevron-right": "›",
	"arrow-left":    "←",
	"plus":          "+",
}

// Glyph maps an icon tag onto a terminal friendly glyph.
func Glyph(icon Icon) string {
	if glyph, found := glyphs[icon]; found {
		return glyph
	}

	return "•"
}
