package registry_test

import (
	"testing"

	"github.com/leighmacdonald/playground/internal/registry"
	"github.com/stretchr/testify/require"
)

func TestEntriesOrder(t *testing.T) {
	entries := registry.Entries()
	require.Len(t, entries, 16)
	require.Equal(t, registry.RouteProduct, entries[0].Route)
	require.Equal(t, registry.RouteJournalCards, entries[len(entries)-1].Route)

	seen := map[registry.Route]bool{}
	for _, entry := range entries {
		require.False(t, seen[entry.Route], "duplicate route %s", entry.Route)
		seen[entry.Route] = true
		require.NotEmpty(t, entry.Title)
		require.NotEmpty(t, entry.Description)
	}
}

func TestEntriesIsCopy(t *testing.T) {
	entries := registry.Entries()
	entries[0].Title = "changed"

	require.Equal(t, "Product", registry.Entries()[0].Title)
}

func TestLookup(t *testing.T) {
	entry, found := registry.Lookup(registry.RouteWeather)
	require.True(t, found)
	require.Equal(t, "Weather", entry.Title)

	_, found = registry.Lookup("/screens/missing")
	require.False(t, found)
}

func TestGlyph(t *testing.T) {
	require.Equal(t, "+", registry.Glyph("plus"))
	require.Equal(t, "•", registry.Glyph("unknown"))
}
