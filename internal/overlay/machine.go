package overlay

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrUnknownPanel   = errors.New("unknown panel")
	ErrDuplicatePanel = errors.New("duplicate panel")
	ErrNoPanels       = errors.New("no panels")
)

// Machine tracks which panel, if any, is focused.
//
//	Idle        --toggle(P)--> Focused(P)
//	Focused(P)  --toggle(P)--> Idle
//	Focused(P)  --toggle(Q)--> Focused(Q)
type Machine struct {
	ids     []PanelID
	focused PanelID
	active  bool
}

// NewMachine creates an idle machine over a closed set of panel ids.
func NewMachine(ids ...PanelID) (*Machine, error) {
	if len(ids) == 0 {
		return nil, ErrNoPanels
	}

	for i, id := range ids {
		if slices.Contains(ids[:i], id) {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePanel, id)
		}
	}

	return &Machine{ids: slices.Clone(ids)}, nil
}

// Toggle applies the user's toggle action on a panel. Unknown ids leave the state untouched.
func (m *Machine) Toggle(id PanelID) error {
	if !slices.Contains(m.ids, id) {
		return fmt.Errorf("%w: %d", ErrUnknownPanel, id)
	}

	if m.active && m.focused == id {
		m.active = false
		m.focused = 0

		return nil
	}

	m.focused = id
	m.active = true

	return nil
}

// Focused returns the focused panel, ok is false while idle.
func (m *Machine) Focused() (PanelID, bool) {
	return m.focused, m.active
}

func (m *Machine) IsFocused(id PanelID) bool {
	return m.active && m.focused == id
}

func (m *Machine) IsOtherFocused(id PanelID) bool {
	return m.active && m.focused != id
}

// Reset returns the machine to idle.
func (m *Machine) Reset() {
	m.active = false
	m.focused = 0
}

func (m *Machine) IDs() []PanelID {
	return slices.Clone(m.ids)
}

func (m *Machine) String() string {
	if !m.active {
		return "Idle"
	}

	return fmt.Sprintf("Focused(%d)", m.focused)
}
