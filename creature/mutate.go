package creature

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/pthm-cable/evolution/config"
)

// Mutate creates a builder for a descendant of the parent. The offspring gets
// fresh ids for itself and every node and muscle, identical topology and node
// positions/sizes, perturbed movement schedules, and a perturbed hue. Only
// timing and cosmetic parameters vary; connectivity never does.
func Mutate(parent *Creature, rng *rand.Rand, cfg *config.Config) *Builder {
	b := NewBuilder()

	idMap := make(map[uuid.UUID]uuid.UUID, len(parent.nodeOrder))
	for _, oldID := range parent.nodeOrder {
		old := parent.nodes[oldID]
		node := NewNode(old.Position, old.Size)
		idMap[oldID] = node.ID
		b.AddNode(node)
	}

	movement := make(map[uuid.UUID]MovementParameters, len(parent.muscleOrder))
	for _, oldID := range parent.muscleOrder {
		old := parent.muscles[oldID]
		muscle := NewMuscle(idMap[old.FromID], idMap[old.ToID])
		b.AddMuscle(muscle)
		movement[muscle.ID] = MutateParameters(parent.movement[oldID], rng, cfg)
	}

	colors := MutateColors(parent.colors, rng, cfg.Mutation.HueDelta)
	b.presetMovement = movement
	b.presetColors = &colors

	return b
}
