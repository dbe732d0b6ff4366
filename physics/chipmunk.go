package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp/v2"
)

// Collision categories. Node colliders carry catNode and mask only catGround,
// so nodes hit the floor but never each other.
const (
	catGround uint = 1 << iota
	catNode
)

// groundSpan is the half-width of the ground segment, effectively infinite
// relative to the world.
const groundSpan = 1e9

// chipmunkWorld implements World on top of a Chipmunk space.
type chipmunkWorld struct {
	space       *cp.Space
	restitution float64

	bodies []*cp.Body
	masses []float64
	motors []*cp.DampedSpring
}

// NewWorld creates an empty Chipmunk-backed scene with fixed gravity and
// solver settings.
func NewWorld(gravity float64, iterations int, restitution float64) World {
	space := cp.NewSpace()
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	return &chipmunkWorld{
		space:       space,
		restitution: restitution,
	}
}

func (w *chipmunkWorld) AddStaticSurface(y float64) {
	seg := cp.NewSegment(w.space.StaticBody,
		cp.Vector{X: -groundSpan, Y: y},
		cp.Vector{X: groundSpan, Y: y},
		0,
	)
	// Chipmunk multiplies surface coefficients, so the floor contributes a
	// neutral factor and the node collider's values apply unchanged.
	seg.SetElasticity(1.0)
	seg.SetFriction(1.0)
	seg.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catGround, cp.ALL_CATEGORIES))
	w.space.AddShape(seg)
}

func (w *chipmunkWorld) AddBall(x, y, radius float64, tag CollisionTag) BodyID {
	mass := math.Pi * radius * radius // unit density
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: y})
	w.space.AddBody(body)

	shape := cp.NewCircle(body, radius, cp.Vector{})
	switch tag {
	case TagNode:
		shape.SetElasticity(w.restitution)
		shape.SetFriction(0.5)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, catNode, catGround))
	case TagGhost:
		shape.SetSensor(true)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, 0, 0))
	}
	w.space.AddShape(shape)

	w.bodies = append(w.bodies, body)
	w.masses = append(w.masses, mass)
	return BodyID(len(w.bodies) - 1)
}

func (w *chipmunkWorld) AddPivot(a, b BodyID) {
	ba, bb := w.body(a), w.body(b)
	w.space.AddConstraint(cp.NewPivotJoint(ba, bb, ba.Position()))
}

func (w *chipmunkWorld) AddTelescope(a, b BodyID, minLen, maxLen, restLen, stiffness, damping float64) JointID {
	ba, bb := w.body(a), w.body(b)

	w.space.AddConstraint(cp.NewSlideJoint(ba, bb, cp.Vector{}, cp.Vector{}, minLen, maxLen))

	// The configured gains are frequency-style (rad/s and damping ratio);
	// convert to spring constants against the pair's reduced mass.
	mRed := w.masses[a] * w.masses[b] / (w.masses[a] + w.masses[b])
	k := stiffness * stiffness * mRed
	c := 2 * damping * math.Sqrt(k*mRed)

	spring := cp.NewDampedSpring(ba, bb, cp.Vector{}, cp.Vector{}, restLen, k, c)
	w.space.AddConstraint(spring)

	motor := spring.Class.(*cp.DampedSpring)
	w.motors = append(w.motors, motor)
	return JointID(len(w.motors) - 1)
}

func (w *chipmunkWorld) SetTelescopeLength(j JointID, length float64) {
	if int(j) < 0 || int(j) >= len(w.motors) {
		panic(fmt.Sprintf("physics: unknown joint %d", j))
	}
	w.motors[j].RestLength = length
}

func (w *chipmunkWorld) Step(dt float64) {
	w.space.Step(dt)
}

func (w *chipmunkWorld) Position(b BodyID) (float64, float64) {
	pos := w.body(b).Position()
	return pos.X, pos.Y
}

func (w *chipmunkWorld) body(id BodyID) *cp.Body {
	if int(id) < 0 || int(id) >= len(w.bodies) {
		panic(fmt.Sprintf("physics: unknown body %d", id))
	}
	return w.bodies[id]
}
