// Package creature holds the declarative, physics-independent model of an
// organism: nodes, muscles, per-muscle movement schedules and a color palette.
package creature

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/pthm-cable/evolution/config"
)

// Creature is an immutable organism descriptor built through a Builder.
// Id-keyed maps are paired with insertion-ordered id slices so iteration is
// deterministic under a seeded RNG.
type Creature struct {
	id          uuid.UUID
	nodes       map[uuid.UUID]Node
	muscles     map[uuid.UUID]Muscle
	nodeOrder   []uuid.UUID
	muscleOrder []uuid.UUID
	movement    map[uuid.UUID]MovementParameters
	colors      Colors
}

// ID returns the creature's unique id.
func (c *Creature) ID() uuid.UUID {
	return c.id
}

// Nodes returns the creature's nodes keyed by id.
func (c *Creature) Nodes() map[uuid.UUID]Node {
	return c.nodes
}

// NodeIDs returns node ids in insertion order.
func (c *Creature) NodeIDs() []uuid.UUID {
	return c.nodeOrder
}

// Muscles returns the creature's muscles keyed by id.
func (c *Creature) Muscles() map[uuid.UUID]Muscle {
	return c.muscles
}

// MuscleIDs returns muscle ids in insertion order.
func (c *Creature) MuscleIDs() []uuid.UUID {
	return c.muscleOrder
}

// MovementParameters returns the movement schedules keyed by muscle id.
// Every muscle has exactly one schedule.
func (c *Creature) MovementParameters() map[uuid.UUID]MovementParameters {
	return c.movement
}

// Colors returns the creature's palette.
func (c *Creature) Colors() Colors {
	return c.colors
}

// Builder accumulates nodes and muscles and finalizes schedules and palette
// in Build, the single checkpoint where construction invariants are enforced.
type Builder struct {
	id      uuid.UUID
	nodes   map[uuid.UUID]Node
	muscles map[uuid.UUID]Muscle

	nodeOrder   []uuid.UUID
	muscleOrder []uuid.UUID

	// Preset by Mutate; Build samples fresh values when unset.
	presetMovement map[uuid.UUID]MovementParameters
	presetColors   *Colors
}

// NewBuilder creates an empty builder with a fresh creature id.
func NewBuilder() *Builder {
	return &Builder{
		id:      uuid.New(),
		nodes:   make(map[uuid.UUID]Node),
		muscles: make(map[uuid.UUID]Muscle),
	}
}

// AddNode adds a node.
func (b *Builder) AddNode(node Node) *Builder {
	if _, exists := b.nodes[node.ID]; !exists {
		b.nodeOrder = append(b.nodeOrder, node.ID)
	}
	b.nodes[node.ID] = node
	return b
}

// AddMuscle adds a muscle.
func (b *Builder) AddMuscle(muscle Muscle) *Builder {
	if _, exists := b.muscles[muscle.ID]; !exists {
		b.muscleOrder = append(b.muscleOrder, muscle.ID)
	}
	b.muscles[muscle.ID] = muscle
	return b
}

// Translate shifts every node dx to the right and dy down.
func (b *Builder) Translate(dx, dy float64) *Builder {
	for id, node := range b.nodes {
		node.Position.X += dx
		node.Position.Y += dy
		b.nodes[id] = node
	}
	return b
}

// TranslateBottomCenterTo translates the creature so that its horizontal
// center and lowest extent (node size included) land on the given position.
// This anchors every spawned creature's feet at the same world point
// regardless of its random shape.
func (b *Builder) TranslateBottomCenterTo(target Position) *Builder {
	if len(b.nodes) == 0 {
		return b
	}

	var xSum float64
	yMax := math.Inf(-1)

	for _, node := range b.nodes {
		xSum += node.Position.X
		if bottom := node.Position.Y + node.Size/2; bottom > yMax {
			yMax = bottom
		}
	}

	return b.Translate(target.X-xSum/float64(len(b.nodes)), target.Y-yMax)
}

// Build finalizes the creature: movement schedules for every muscle, palette
// derivation, and the total-coverage invariant check.
func (b *Builder) Build(rng *rand.Rand, cfg *config.Config) *Creature {
	movement := b.presetMovement
	if movement == nil {
		movement = GenerateForMusclesAndNodes(rng, b.muscleOrder, b.muscles, b.nodes, cfg)
	}
	for _, id := range b.muscleOrder {
		if _, ok := movement[id]; !ok {
			panic(fmt.Sprintf("creature: muscle %s has no movement parameters", id))
		}
	}

	colors := NewColors(rng, cfg.Creature.HueMax)
	if b.presetColors != nil {
		colors = *b.presetColors
	}

	return &Creature{
		id:          b.id,
		nodes:       b.nodes,
		muscles:     b.muscles,
		nodeOrder:   b.nodeOrder,
		muscleOrder: b.muscleOrder,
		movement:    movement,
		colors:      colors,
	}
}
