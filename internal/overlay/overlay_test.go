package overlay_test

import (
	"testing"

	"github.com/leighmacdonald/playground/internal/anim"
	"github.com/leighmacdonald/playground/internal/overlay"
	"github.com/stretchr/testify/require"
)

const (
	panelA overlay.PanelID = 1
	panelB overlay.PanelID = 2
	panelC overlay.PanelID = 3
)

func newProducts(t *testing.T) *overlay.Overlay {
	t.Helper()

	products, err := overlay.New(overlay.Products(), overlay.DefaultMetrics, overlay.DefaultTuning)
	require.NoError(t, err)

	return products
}

func settle(t *testing.T, o *overlay.Overlay) {
	t.Helper()

	for frames := 0; o.Step(); frames++ {
		require.Less(t, frames, 20*overlay.DefaultTuning.FPS, "overlay never settled")
	}
}

func viewOf(t *testing.T, o *overlay.Overlay, id overlay.PanelID) overlay.PanelView {
	t.Helper()

	view, err := o.View(id)
	require.NoError(t, err)

	return view
}

func TestNewOverlay(t *testing.T) {
	_, errEmpty := overlay.New(nil, overlay.DefaultMetrics, overlay.DefaultTuning)
	require.ErrorIs(t, errEmpty, overlay.ErrNoPanels)

	panels := overlay.Products()
	panels[1].ID = panels[0].ID
	_, errDupe := overlay.New(panels, overlay.DefaultMetrics, overlay.DefaultTuning)
	require.ErrorIs(t, errDupe, overlay.ErrDuplicatePanel)

	tuning := overlay.DefaultTuning
	tuning.RevealThreshold = 1
	_, errTuning := overlay.New(overlay.Products(), overlay.DefaultMetrics, tuning)
	require.ErrorIs(t, errTuning, overlay.ErrInvalidTuning)

	products := newProducts(t)
	require.False(t, products.Animating())
	require.Equal(t, overlay.Identity, products.Image())
	require.Len(t, products.Panels(), 3)

	_, errView := products.View(99)
	require.ErrorIs(t, errView, overlay.ErrUnknownPanel)
}

func TestScenario(t *testing.T) {
	products := newProducts(t)
	require.Equal(t, "Idle", products.State())

	require.NoError(t, products.Toggle(panelA))
	require.Equal(t, "Focused(1)", products.State())
	require.True(t, viewOf(t, products, panelA).IsFocused)
	require.True(t, viewOf(t, products, panelB).IsOtherFocused)
	require.True(t, viewOf(t, products, panelC).IsOtherFocused)
	require.False(t, viewOf(t, products, panelA).IsOtherFocused)

	settle(t, products)
	require.InDelta(t, 1.0, viewOf(t, products, panelA).SizeProgress, 1e-9)

	require.NoError(t, products.Toggle(panelB))
	require.Equal(t, "Focused(2)", products.State())
	require.True(t, viewOf(t, products, panelB).IsFocused)
	require.True(t, viewOf(t, products, panelA).IsOtherFocused)
	require.True(t, viewOf(t, products, panelC).IsOtherFocused)

	// A shrinks back toward zero.
	products.Step()
	sizeA := viewOf(t, products, panelA).SizeProgress
	require.Less(t, sizeA, 1.0)
	products.Step()
	require.Less(t, viewOf(t, products, panelA).SizeProgress, sizeA)

	require.NoError(t, products.Toggle(panelB))
	require.Equal(t, "Idle", products.State())
	for _, view := range products.Views() {
		require.False(t, view.IsOtherFocused)
		require.False(t, view.IsFocused)
	}

	settle(t, products)
	for _, view := range products.Views() {
		require.InDelta(t, 0.0, view.SizeProgress, 1e-9)
		require.InDelta(t, 0.0, view.DimProgress, 1e-9)
	}
	require.Equal(t, overlay.Identity, products.Image())
}

func TestToggleUnknownPanelKeepsState(t *testing.T) {
	products := newProducts(t)
	require.NoError(t, products.Toggle(panelC))
	require.ErrorIs(t, products.Toggle(42), overlay.ErrUnknownPanel)

	id, active := products.Focused()
	require.True(t, active)
	require.Equal(t, panelC, id)
}

func TestProgressFollowsFocus(t *testing.T) {
	products := newProducts(t)
	require.NoError(t, products.Toggle(panelB))
	settle(t, products)

	for _, view := range products.Views() {
		if view.Panel.ID == panelB {
			require.InDelta(t, 1.0, view.SizeProgress, 1e-9)
			require.InDelta(t, 0.0, view.DimProgress, 1e-9)
			require.InDelta(t, overlay.DefaultMetrics.Expanded.Width, view.Style.Width, 1e-9)
			require.InDelta(t, 45.0, view.Style.IconRotation, 1e-9)
			require.InDelta(t, 1.0, view.Style.ContentOpacity, 1e-9)

			continue
		}

		require.InDelta(t, 0.0, view.SizeProgress, 1e-9)
		require.InDelta(t, 1.0, view.DimProgress, 1e-9)
		require.InDelta(t, 0.0, view.Style.Opacity, 1e-9)
		require.InDelta(t, 0.6, view.Style.Scale, 1e-9)
	}
}

func TestImageFollowsFocusedPanel(t *testing.T) {
	products := newProducts(t)
	panels := products.Panels()

	require.NoError(t, products.Toggle(panelA))
	settle(t, products)
	require.InDelta(t, panels[0].Focus.Scale, products.Image().Scale, 1e-9)
	require.InDelta(t, panels[0].Focus.OffsetX, products.Image().OffsetX, 1e-9)
	require.InDelta(t, panels[0].Focus.OffsetY, products.Image().OffsetY, 1e-9)

	// Mid flight retarget: the newer panel always wins.
	require.NoError(t, products.Toggle(panelB))
	products.Step()
	require.NoError(t, products.Toggle(panelC))
	settle(t, products)
	require.InDelta(t, panels[2].Focus.OffsetX, products.Image().OffsetX, 1e-9)
	require.InDelta(t, panels[2].Focus.OffsetY, products.Image().OffsetY, 1e-9)

	require.NoError(t, products.Toggle(panelC))
	settle(t, products)
	require.Equal(t, overlay.Identity, products.Image())
}

func TestReset(t *testing.T) {
	products := newProducts(t)
	require.NoError(t, products.Toggle(panelA))
	products.Step()
	products.Step()
	require.True(t, products.Animating())

	products.Reset()
	require.False(t, products.Animating())
	require.Equal(t, "Idle", products.State())
	require.Equal(t, overlay.Identity, products.Image())
	for _, view := range products.Views() {
		require.InDelta(t, 0.0, view.SizeProgress, 1e-9)
	}
}

func TestRetune(t *testing.T) {
	products := newProducts(t)

	bad := overlay.DefaultTuning
	bad.PanelSpring = anim.Spring{Frequency: 10, Damping: 0.2}
	require.ErrorIs(t, products.Retune(bad), overlay.ErrInvalidTuning)
	require.Equal(t, overlay.DefaultTuning, products.Tuning())

	faster := overlay.DefaultTuning
	faster.FPS = 30
	faster.RevealThreshold = 0.4
	require.NoError(t, products.Retune(faster))
	require.Equal(t, faster, products.Tuning())

	require.NoError(t, products.Toggle(panelA))
	settle(t, products)
	require.InDelta(t, 1.0, viewOf(t, products, panelA).SizeProgress, 1e-9)
}
