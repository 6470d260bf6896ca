package styles_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/playground/internal/ui/styles"
	"github.com/stretchr/testify/require"
)

func TestBlend(t *testing.T) {
	from := lipgloss.Color("#000000")
	to := lipgloss.Color("#ffffff")

	require.Equal(t, from, styles.Blend(from, to, 0))
	require.Equal(t, to, styles.Blend(from, to, 1))
	require.Equal(t, to, styles.Blend(from, to, 4))
	require.NotEqual(t, from, styles.Blend(from, to, 0.5))
	require.NotEqual(t, to, styles.Blend(from, to, 0.5))

	// Named terminal colours cannot be blended and snap to the nearest end.
	named := lipgloss.Color("240")
	require.Equal(t, named, styles.Blend(named, to, 0.4))
	require.Equal(t, to, styles.Blend(named, to, 0.6))
}
