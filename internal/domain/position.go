package domain

// Grid bounds. Coordinates outside the closed range are rejected at the
// transport layer, so everything past binding assumes in-range values.
const (
	GridMin = 0
	GridMax = 99
)

// Position is a point on the simulation grid.
type Position struct {
	X int
	Y int
}

// ManhattanTo returns the Manhattan distance to target.
func (p Position) ManhattanTo(target Position) int {
	return abs(p.X-target.X) + abs(p.Y-target.Y)
}

// StepToward returns the position one grid unit closer to target, moving
// along the x axis before the y axis. An equal position steps nowhere.
func (p Position) StepToward(target Position) Position {
	switch {
	case p.X < target.X:
		p.X++
	case p.X > target.X:
		p.X--
	case p.Y < target.Y:
		p.Y++
	case p.Y > target.Y:
		p.Y--
	}
	return p
}

// InBounds reports whether both coordinates lie on the grid.
func (p Position) InBounds() bool {
	return p.X >= GridMin && p.X <= GridMax && p.Y >= GridMin && p.Y <= GridMax
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
