package overlay

import (
	"fmt"

	"github.com/leighmacdonald/playground/internal/anim"
)

type panelState struct {
	panel Panel
	size  *anim.Value
	dim   *anim.Value
}

type imageState struct {
	scale   *anim.Value
	offsetX *anim.Value
	offsetY *anim.Value
}

func (s imageState) values() []*anim.Value {
	return []*anim.Value{s.scale, s.offsetX, s.offsetY}
}

// PanelView is the per frame state of a single panel handed to the renderer.
type PanelView struct {
	Panel          Panel
	IsFocused      bool
	IsOtherFocused bool
	SizeProgress   float64
	DimProgress    float64
	Style          Style
}

// Overlay owns the focus state of one product screen instance along with the animated values
// derived from it.
type Overlay struct {
	machine *Machine
	panels  []panelState
	image   imageState
	metrics Metrics
	tuning  Tuning
}

// New builds an idle overlay over a fixed panel set.
func New(panels []Panel, metrics Metrics, tuning Tuning) (*Overlay, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	ids := make([]PanelID, len(panels))
	for i, panel := range panels {
		ids[i] = panel.ID
	}

	machine, errMachine := NewMachine(ids...)
	if errMachine != nil {
		return nil, errMachine
	}

	overlay := &Overlay{
		machine: machine,
		metrics: metrics,
		tuning:  tuning,
		image: imageState{
			scale:   anim.NewValue(Identity.Scale, tuning.ImageSpring, tuning.FPS),
			offsetX: anim.NewValue(Identity.OffsetX, tuning.ImageSpring, tuning.FPS),
			offsetY: anim.NewValue(Identity.OffsetY, tuning.ImageSpring, tuning.FPS),
		},
	}

	for _, panel := range panels {
		overlay.panels = append(overlay.panels, panelState{
			panel: panel,
			size:  anim.NewValue(0, tuning.PanelSpring, tuning.FPS),
			dim:   anim.NewValue(0, tuning.PanelSpring, tuning.FPS),
		})
	}

	return overlay, nil
}

// Toggle applies a toggle on the panel and retargets every animated value to match the new state.
func (o *Overlay) Toggle(id PanelID) error {
	if err := o.machine.Toggle(id); err != nil {
		return err
	}

	o.retarget()

	return nil
}

func (o *Overlay) retarget() {
	focus := Identity
	for _, state := range o.panels {
		id := state.panel.ID
		state.size.SetTarget(progressTarget(o.machine.IsFocused(id)))
		state.dim.SetTarget(progressTarget(o.machine.IsOtherFocused(id)))

		if o.machine.IsFocused(id) {
			focus = state.panel.Focus
		}
	}

	o.image.scale.SetTarget(focus.Scale)
	o.image.offsetX.SetTarget(focus.OffsetX)
	o.image.offsetY.SetTarget(focus.OffsetY)
}

func progressTarget(on bool) float64 {
	if on {
		return 1
	}

	return 0
}

// Step advances every animated value by one frame. It returns true while anything is still moving.
func (o *Overlay) Step() bool {
	moving := false
	for _, value := range o.values() {
		if value.Step() {
			moving = true
		}
	}

	return moving
}

func (o *Overlay) Animating() bool {
	for _, value := range o.values() {
		if !value.Settled() {
			return true
		}
	}

	return false
}

func (o *Overlay) values() []*anim.Value {
	values := o.image.values()
	for _, state := range o.panels {
		values = append(values, state.size, state.dim)
	}

	return values
}

// Focused returns the focused panel id, ok is false while idle.
func (o *Overlay) Focused() (PanelID, bool) {
	return o.machine.Focused()
}

func (o *Overlay) State() string {
	return o.machine.String()
}

// Panels returns the panel definitions in display order.
func (o *Overlay) Panels() []Panel {
	panels := make([]Panel, len(o.panels))
	for i, state := range o.panels {
		panels[i] = state.panel
	}

	return panels
}

// Views returns the current frame for every panel, in display order.
func (o *Overlay) Views() []PanelView {
	views := make([]PanelView, len(o.panels))
	for i, state := range o.panels {
		size := state.size.Position()
		dim := state.dim.Position()
		views[i] = PanelView{
			Panel:          state.panel,
			IsFocused:      o.machine.IsFocused(state.panel.ID),
			IsOtherFocused: o.machine.IsOtherFocused(state.panel.ID),
			SizeProgress:   size,
			DimProgress:    dim,
			Style:          o.metrics.Style(size, dim, o.tuning),
		}
	}

	return views
}

// View returns the current frame of a single panel.
func (o *Overlay) View(id PanelID) (PanelView, error) {
	for _, view := range o.Views() {
		if view.Panel.ID == id {
			return view, nil
		}
	}

	return PanelView{}, fmt.Errorf("%w: %d", ErrUnknownPanel, id)
}

// Image is the current background image transform.
func (o *Overlay) Image() Transform {
	return Transform{
		Scale:   o.image.scale.Position(),
		OffsetX: o.image.offsetX.Position(),
		OffsetY: o.image.offsetY.Position(),
	}
}

func (o *Overlay) Tuning() Tuning {
	return o.tuning
}

// Retune applies new animation constants. Values in flight carry on under the new springs.
func (o *Overlay) Retune(tuning Tuning) error {
	if err := tuning.Validate(); err != nil {
		return err
	}

	o.tuning = tuning
	for _, value := range o.image.values() {
		value.Retune(tuning.ImageSpring, tuning.FPS)
	}

	for _, state := range o.panels {
		state.size.Retune(tuning.PanelSpring, tuning.FPS)
		state.dim.Retune(tuning.PanelSpring, tuning.FPS)
	}

	return nil
}

// Reset returns to idle with every value at rest, as if freshly mounted.
func (o *Overlay) Reset() {
	o.machine.Reset()
	o.image.scale.Jump(Identity.Scale)
	o.image.offsetX.Jump(Identity.OffsetX)
	o.image.offsetY.Jump(Identity.OffsetY)

	for _, state := range o.panels {
		state.size.Jump(0)
		state.dim.Jump(0)
	}
}
