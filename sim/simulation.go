// Package sim wraps one creature in a live physics scene and actuates its
// muscles every tick. One Simulation owns one physics world; worlds never
// share state, so a generation's simulations can be stepped in any order.
package sim

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/pthm-cable/evolution/config"
	"github.com/pthm-cable/evolution/creature"
	"github.com/pthm-cable/evolution/physics"
)

// ghostRadius is the collider radius of the auxiliary rotation bodies.
const ghostRadius = 1.0

// trackedJoint associates a telescoping joint with the schedule that drives
// its motor.
type trackedJoint struct {
	joint  physics.JointID
	params creature.MovementParameters
}

// Simulation is the live physics realization of one creature. Constructed
// once, then repeatedly stepped; all queries are read-only.
type Simulation struct {
	cfg   *config.Config
	world physics.World
	c     *creature.Creature

	nodeBodies map[uuid.UUID]physics.BodyID
	joints     []trackedJoint
	steps      int
}

// New builds a physics scene from a creature descriptor: the ground, one
// dynamic ball per node, and one telescoping actuator per muscle. A plain
// fixed joint could not both permit rotation at the endpoints and drive
// length oscillation, so each muscle becomes a limited sliding joint between
// the node bodies plus a free-rotating ghost body pivoted at each endpoint.
func New(c *creature.Creature, cfg *config.Config) *Simulation {
	world := physics.NewWorld(cfg.Physics.Gravity, cfg.Physics.Iterations, cfg.Physics.Restitution)
	world.AddStaticSurface(cfg.Derived.FloorTopY)

	s := &Simulation{
		cfg:        cfg,
		world:      world,
		c:          c,
		nodeBodies: make(map[uuid.UUID]physics.BodyID, len(c.NodeIDs())),
	}

	// Insertion order keeps body numbering, and therefore the solve,
	// deterministic for identical descriptors.
	for _, id := range c.NodeIDs() {
		node := c.Nodes()[id]
		s.nodeBodies[id] = world.AddBall(node.Position.X, node.Position.Y, node.Size/2, physics.TagNode)
	}

	for _, id := range c.MuscleIDs() {
		muscle := c.Muscles()[id]
		params, ok := c.MovementParameters()[id]
		if !ok {
			panic(fmt.Sprintf("sim: muscle %s has no movement parameters", id))
		}

		from := s.bodyOf(muscle.FromID)
		to := s.bodyOf(muscle.ToID)
		fromPos := c.Nodes()[muscle.FromID].Position
		toPos := c.Nodes()[muscle.ToID].Position

		// Ghost bodies let the nodes pivot without dragging joint
		// orientation along.
		ghostFrom := world.AddBall(fromPos.X, fromPos.Y, ghostRadius, physics.TagGhost)
		world.AddPivot(from, ghostFrom)
		ghostTo := world.AddBall(toPos.X, toPos.Y, ghostRadius, physics.TagGhost)
		world.AddPivot(to, ghostTo)

		length := params.MuscleLength
		flux := cfg.Physics.LimitFlux
		minLen := length * (1 + flux*cfg.Physics.MaxContraction)
		maxLen := length * (1 + flux*cfg.Physics.MaxExtension)

		joint := world.AddTelescope(from, to, minLen, maxLen, length,
			cfg.Physics.MuscleStiffness, cfg.Physics.MuscleDamping)
		s.joints = append(s.joints, trackedJoint{joint: joint, params: params})
	}

	return s
}

// Creature returns the descriptor being simulated.
func (s *Simulation) Creature() *creature.Creature {
	return s.c
}

// Steps returns how many ticks have been simulated.
func (s *Simulation) Steps() int {
	return s.steps
}

// Step advances the simulation one tick: motor targets are recomputed from
// each muscle's schedule first, then the physics solve runs.
func (s *Simulation) Step() {
	maxC := s.cfg.Physics.MaxContraction
	maxE := s.cfg.Physics.MaxExtension

	for _, tj := range s.joints {
		delta := tj.params.ExtensionAt(s.steps)
		extension := maxC + (maxE-maxC)*delta
		s.world.SetTelescopeLength(tj.joint, tj.params.MuscleLength*(1+extension))
	}

	s.world.Step(s.cfg.Derived.Dt)
	s.steps++
}

// PositionOfNode returns the current world position of a node's body.
// Panics on an unknown id: that means a corrupted descriptor, which the
// construction contract rules out.
func (s *Simulation) PositionOfNode(id uuid.UUID) creature.Position {
	x, y := s.world.Position(s.bodyOf(id))
	return creature.NewPosition(x, y)
}

// ExtensionDeltaOfMuscle evaluates a muscle's schedule at the current step.
func (s *Simulation) ExtensionDeltaOfMuscle(id uuid.UUID) float64 {
	return s.paramsOf(id).ExtensionAt(s.steps)
}

// IsMuscleExtending reports which half of its cycle a muscle is in.
func (s *Simulation) IsMuscleExtending(id uuid.UUID) bool {
	return s.paramsOf(id).IsExtending(s.steps)
}

// Bounds returns the axis-aligned bounding box over all node body positions
// as (min, max). Panics on a creature with zero nodes.
func (s *Simulation) Bounds() (creature.Position, creature.Position) {
	ids := s.c.NodeIDs()
	if len(ids) == 0 {
		panic("sim: bounds of a creature with no nodes")
	}

	minP := creature.NewPosition(math.Inf(1), math.Inf(1))
	maxP := creature.NewPosition(math.Inf(-1), math.Inf(-1))

	for _, id := range ids {
		p := s.PositionOfNode(id)
		minP.X = math.Min(minP.X, p.X)
		minP.Y = math.Min(minP.Y, p.Y)
		maxP.X = math.Max(maxP.X, p.X)
		maxP.Y = math.Max(maxP.Y, p.Y)
	}

	return minP, maxP
}

// TextPosition returns the top center of the bounding box, where the
// rendering layer can safely place a label.
func (s *Simulation) TextPosition() creature.Position {
	minP, maxP := s.Bounds()
	return creature.NewPosition((minP.X+maxP.X)/2, minP.Y)
}

// Score returns the fitness: the rightmost x extent measured from the common
// spawn line, scaled to score units.
func (s *Simulation) Score() float64 {
	_, maxP := s.Bounds()
	return (maxP.X - s.cfg.World.Width/2) * s.cfg.Derived.ScoreScale
}

func (s *Simulation) bodyOf(id uuid.UUID) physics.BodyID {
	body, ok := s.nodeBodies[id]
	if !ok {
		panic(fmt.Sprintf("sim: unknown node id %s", id))
	}
	return body
}

func (s *Simulation) paramsOf(id uuid.UUID) creature.MovementParameters {
	params, ok := s.c.MovementParameters()[id]
	if !ok {
		panic(fmt.Sprintf("sim: unknown muscle id %s", id))
	}
	return params
}
