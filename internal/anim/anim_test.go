package anim_test

import (
	"math"
	"testing"

	"github.com/leighmacdonald/playground/internal/anim"
	"github.com/stretchr/testify/require"
)

const testFPS = 60

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		in       []float64
		out      []float64
		expected float64
	}{
		{"start", 0, []float64{0, 1}, []float64{34, 220}, 34},
		{"end", 1, []float64{0, 1}, []float64{34, 220}, 220},
		{"mid", 0.5, []float64{0, 1}, []float64{34, 220}, 127},
		{"descending output", 0.5, []float64{0, 1}, []float64{1, 0.6}, 0.8},
		{"clamp below", -1, []float64{0, 1}, []float64{0, 45}, 0},
		{"clamp above", 2, []float64{0, 1}, []float64{0, 45}, 45},
		{"flat segment", 0.25, []float64{0, 0.5, 1}, []float64{0, 0, 1}, 0},
		{"second segment", 0.75, []float64{0, 0.5, 1}, []float64{0, 0, 1}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expected, anim.Interpolate(tt.x, tt.in, tt.out), 1e-9)
		})
	}
}

func TestInterpolateMismatchPanics(t *testing.T) {
	require.Panics(t, func() { anim.Interpolate(0, []float64{0, 1}, []float64{0}) })
	require.Panics(t, func() { anim.Interpolate(0, []float64{0}, []float64{0}) })
}

func TestClampLerp(t *testing.T) {
	require.InDelta(t, 0.0, anim.Clamp(-2, 0, 1), 1e-9)
	require.InDelta(t, 1.0, anim.Clamp(3, 0, 1), 1e-9)
	require.InDelta(t, 0.3, anim.Clamp(0.3, 0, 1), 1e-9)
	require.InDelta(t, 15.0, anim.Lerp(10, 20, 0.5), 1e-9)
}

func TestSpringFromPhysics(t *testing.T) {
	spring := anim.SpringFromPhysics(400, 80, 1)
	require.InDelta(t, 20, spring.Frequency, 1e-9)
	require.InDelta(t, 2, spring.Damping, 1e-9)
	require.NoError(t, spring.Validate())
}

func TestSpringValidate(t *testing.T) {
	require.ErrorIs(t, anim.Spring{Frequency: 0, Damping: 1}.Validate(), anim.ErrInvalidSpring)
	require.ErrorIs(t, anim.Spring{Frequency: 10, Damping: 0.5}.Validate(), anim.ErrInvalidSpring)
	require.ErrorIs(t, anim.Spring{Frequency: math.NaN(), Damping: 1}.Validate(), anim.ErrInvalidSpring)
	require.NoError(t, anim.Spring{Frequency: 10, Damping: 1}.Validate())
}

func TestValueApproachesMonotonically(t *testing.T) {
	for _, spring := range []anim.Spring{
		{Frequency: 20, Damping: 1},
		anim.SpringFromPhysics(700, 90, 1),
		anim.SpringFromPhysics(400, 80, 1),
	} {
		value := anim.NewValue(0, spring, testFPS)
		value.SetTarget(1)

		previous := value.Position()
		frames := 0
		for value.Step() {
			frames++
			require.GreaterOrEqual(t, value.Position(), previous)
			require.LessOrEqual(t, value.Position(), 1.0+1e-9)
			previous = value.Position()
			require.Less(t, frames, 10*testFPS, "value never settled")
		}

		require.True(t, value.Settled())
		require.InDelta(t, 1.0, value.Position(), 1e-9)
	}
}

func TestValueSettledDoesNotMove(t *testing.T) {
	value := anim.NewValue(0.5, anim.Spring{Frequency: 20, Damping: 1}, testFPS)
	require.True(t, value.Settled())
	require.False(t, value.Step())
	require.InDelta(t, 0.5, value.Position(), 1e-9)
}

func TestValueRetarget(t *testing.T) {
	value := anim.NewValue(0, anim.Spring{Frequency: 20, Damping: 1}, testFPS)
	value.SetTarget(1)
	for range 5 {
		value.Step()
	}
	mid := value.Position()
	require.Greater(t, mid, 0.0)

	// The latest target wins, the value ends up back at rest on 0.
	value.SetTarget(0)
	require.InDelta(t, 0.0, value.Target(), 1e-9)
	for value.Step() {
	}
	require.InDelta(t, 0.0, value.Position(), 1e-9)
}

func TestValueJump(t *testing.T) {
	value := anim.NewValue(0, anim.Spring{Frequency: 20, Damping: 1}, testFPS)
	value.SetTarget(1)
	value.Step()
	value.Jump(0)
	require.True(t, value.Settled())
	require.InDelta(t, 0.0, value.Position(), 1e-9)
}

func TestValueRetune(t *testing.T) {
	value := anim.NewValue(0, anim.Spring{Frequency: 20, Damping: 1}, testFPS)
	value.SetTarget(1)
	value.Step()
	position := value.Position()
	value.Retune(anim.Spring{Frequency: 40, Damping: 1.5}, 30)
	require.InDelta(t, position, value.Position(), 1e-9)
	for value.Step() {
	}
	require.InDelta(t, 1.0, value.Position(), 1e-9)
}
