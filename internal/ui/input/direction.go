package input

// Direction is the way a keyboard cursor moves through a row of items.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// Step moves index one place in dir, wrapping around a set of count items.
func (d Direction) Step(index int, count int) int {
	if count <= 0 {
		return 0
	}

	switch d {
	case Backward:
		return (index - 1 + count) % count
	default:
		return (index + 1) % count
	}
}
