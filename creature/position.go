package creature

import "math"

// Position is a point in the 2D world plane.
type Position struct {
	X, Y float64
}

// NewPosition creates a position at (x, y).
func NewPosition(x, y float64) Position {
	return Position{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance to another position.
func (p Position) DistanceTo(to Position) float64 {
	dx := p.X - to.X
	dy := p.Y - to.Y
	return math.Sqrt(dx*dx + dy*dy)
}
