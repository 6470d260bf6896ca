// Package anim steps scalar values toward targets using damped springs.
//
// Callers only ever set targets. A driver, usually a frame ticker in the ui, calls Step once
// per frame until the value settles.
package anim

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is the distance and speed below which a value snaps onto its target.
const settleEpsilon = 1e-3

var ErrInvalidSpring = errors.New("invalid spring")

// Spring describes the motion of a Value. Damping is the damping ratio, 1 being critically
// damped. Anything below 1 oscillates around the target and is rejected.
type Spring struct {
	Frequency float64 `mapstructure:"frequency" yaml:"frequency"`
	Damping   float64 `mapstructure:"damping" yaml:"damping"`
}

// SpringFromPhysics converts the stiffness/damping/mass form into angular frequency and damping ratio.
func SpringFromPhysics(stiffness float64, damping float64, mass float64) Spring {
	return Spring{
		Frequency: math.Sqrt(stiffness / mass),
		Damping:   damping / (2 * math.Sqrt(stiffness*mass)),
	}
}

func (s Spring) Validate() error {
	if s.Frequency <= 0 || math.IsNaN(s.Frequency) || math.IsInf(s.Frequency, 0) {
		return errors.Join(ErrInvalidSpring, fmt.Errorf("frequency must be positive, got %v", s.Frequency))
	}

	if s.Damping < 1 || math.IsNaN(s.Damping) || math.IsInf(s.Damping, 0) {
		return errors.Join(ErrInvalidSpring, fmt.Errorf("damping ratio must be >= 1, got %v", s.Damping))
	}

	return nil
}

func (s Spring) harmonica(fps int) harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(fps), s.Frequency, s.Damping)
}

// Value is a single animated scalar. The zero value is not usable, use NewValue.
type Value struct {
	position float64
	velocity float64
	target   float64
	spring   harmonica.Spring
}

// NewValue creates a value resting at initial.
func NewValue(initial float64, spring Spring, fps int) *Value {
	return &Value{
		position: initial,
		target:   initial,
		spring:   spring.harmonica(fps),
	}
}

// SetTarget moves the goal. Any motion toward the previous target is superseded, the current
// velocity is kept so the change of direction stays smooth.
func (v *Value) SetTarget(target float64) {
	v.target = target
}

// Jump places the value at position with no motion left.
func (v *Value) Jump(position float64) {
	v.position = position
	v.target = position
	v.velocity = 0
}

// Retune swaps the spring parameters without disturbing the current motion.
func (v *Value) Retune(spring Spring, fps int) {
	v.spring = spring.harmonica(fps)
}

// Step advances the value by a single frame. It returns true while the value is still moving.
func (v *Value) Step() bool {
	if v.Settled() {
		return false
	}

	v.position, v.velocity = v.spring.Update(v.position, v.velocity, v.target)
	if math.Abs(v.target-v.position) < settleEpsilon && math.Abs(v.velocity) < settleEpsilon {
		v.position = v.target
		v.velocity = 0

		return false
	}

	return true
}

func (v *Value) Settled() bool {
	return v.position == v.target && v.velocity == 0
}

func (v *Value) Position() float64 {
	return v.position
}

func (v *Value) Target() float64 {
	return v.target
}
