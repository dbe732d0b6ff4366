package creature

import "github.com/google/uuid"

// Node is a point mass of the creature graph, defined by its current position
// and size. The size doubles as collider diameter and rest-length bookkeeping.
type Node struct {
	ID       uuid.UUID
	Position Position
	Size     float64
}

// NewNode creates a node at a position with a certain size and a fresh id.
func NewNode(position Position, size float64) Node {
	return Node{
		ID:       uuid.New(),
		Position: position,
		Size:     size,
	}
}
