package creature

import "github.com/google/uuid"

// Muscle is an actuated linkage between two nodes, referenced by their ids.
// Its natural length is not stored here; it is derived from the endpoint
// positions at build time and cached in the movement parameters.
type Muscle struct {
	ID     uuid.UUID
	FromID uuid.UUID
	ToID   uuid.UUID
}

// NewMuscle creates a muscle between two nodes with a fresh id.
func NewMuscle(fromID, toID uuid.UUID) Muscle {
	return Muscle{
		ID:     uuid.New(),
		FromID: fromID,
		ToID:   toID,
	}
}
