package overlay

import (
	"errors"
	"fmt"

	"github.com/leighmacdonald/playground/internal/anim"
)

var ErrInvalidTuning = errors.New("invalid tuning")

// Footprint is the size of a panel in reference points.
type Footprint struct {
	Width  float64
	Height float64
	Radius float64
}

// Metrics are the fixed visual endpoints a panel interpolates between.
type Metrics struct {
	Collapsed      Footprint
	Expanded       Footprint
	DimmedOpacity  float64
	DimmedScale    float64
	IconRotation   float64
	ContentSlideBy float64
}

var DefaultMetrics = Metrics{ //nolint:gochecknoglobals
	Collapsed:      Footprint{Width: 34, Height: 34, Radius: 24},
	Expanded:       Footprint{Width: 220, Height: 130, Radius: 20},
	DimmedOpacity:  0,
	DimmedScale:    0.6,
	IconRotation:   45,
	ContentSlideBy: 40,
}

// Tuning holds the animation constants. They are loaded from the user config.
type Tuning struct {
	PanelSpring anim.Spring
	ImageSpring anim.Spring
	// RevealThreshold is the share of size progress that passes before any content shows.
	RevealThreshold float64
	// ContentFadeStart is the share of reveal progress that passes before content opacity rises.
	ContentFadeStart float64
	FPS              int
}

var DefaultTuning = Tuning{ //nolint:gochecknoglobals
	PanelSpring:      anim.SpringFromPhysics(700, 90, 1),
	ImageSpring:      anim.SpringFromPhysics(400, 80, 1),
	RevealThreshold:  0.2,
	ContentFadeStart: 0.5,
	FPS:              60,
}

func (t Tuning) Validate() error {
	if err := t.PanelSpring.Validate(); err != nil {
		return errors.Join(ErrInvalidTuning, fmt.Errorf("panel spring: %w", err))
	}

	if err := t.ImageSpring.Validate(); err != nil {
		return errors.Join(ErrInvalidTuning, fmt.Errorf("image spring: %w", err))
	}

	if t.RevealThreshold < 0 || t.RevealThreshold >= 1 {
		return errors.Join(ErrInvalidTuning, fmt.Errorf("reveal threshold must be in [0, 1), got %v", t.RevealThreshold))
	}

	if t.ContentFadeStart < 0 || t.ContentFadeStart >= 1 {
		return errors.Join(ErrInvalidTuning, fmt.Errorf("content fade start must be in [0, 1), got %v", t.ContentFadeStart))
	}

	if t.FPS <= 0 {
		return errors.Join(ErrInvalidTuning, fmt.Errorf("fps must be positive, got %d", t.FPS))
	}

	return nil
}

// Style is everything a renderer needs to paint a panel for one frame. Lengths are reference points.
type Style struct {
	Width          float64
	Height         float64
	Radius         float64
	Opacity        float64
	Scale          float64
	IconRotation   float64
	ContentOpacity float64
	ContentOffsetY float64
}

// Reveal maps size progress onto content reveal progress. Nothing is revealed until size passes
// threshold, after which reveal climbs linearly to 1.
func Reveal(size float64, threshold float64) float64 {
	return anim.Clamp((size-threshold)/(1-threshold), 0, 1)
}

// Style derives the panel style from its size and de-emphasis progress.
func (m Metrics) Style(size float64, dim float64, tuning Tuning) Style {
	unit := []float64{0, 1}
	reveal := Reveal(size, tuning.RevealThreshold)

	return Style{
		Width:          anim.Interpolate(size, unit, []float64{m.Collapsed.Width, m.Expanded.Width}),
		Height:         anim.Interpolate(size, unit, []float64{m.Collapsed.Height, m.Expanded.Height}),
		Radius:         anim.Interpolate(size, unit, []float64{m.Collapsed.Radius, m.Expanded.Radius}),
		Opacity:        anim.Interpolate(dim, unit, []float64{1, m.DimmedOpacity}),
		Scale:          anim.Interpolate(dim, unit, []float64{1, m.DimmedScale}),
		IconRotation:   anim.Interpolate(size, unit, []float64{0, m.IconRotation}),
		ContentOpacity: anim.Interpolate(reveal, []float64{0, tuning.ContentFadeStart, 1}, []float64{0, 0, 1}),
		ContentOffsetY: anim.Interpolate(reveal, unit, []float64{m.ContentSlideBy, 0}),
	}
}
