// Package physics abstracts the rigid-body backend behind a small capability
// interface: tagged bodies, free-rotation pivots, and motorized telescoping
// joints. Any engine with rigid bodies, revolute joints, and limited sliding
// joints with motors can satisfy it.
package physics

// BodyID is a handle to a body owned by a World.
type BodyID int

// JointID is a handle to a telescoping joint owned by a World.
type JointID int

// CollisionTag selects which collision group a body's collider joins.
type CollisionTag int

const (
	// TagNode colliders collide with the ground only, never with each
	// other or with auxiliary bodies.
	TagNode CollisionTag = iota
	// TagGhost colliders collide with nothing.
	TagGhost
)

// World is one isolated physics scene. Worlds never share state, so separate
// simulations may be stepped in any order or in parallel.
type World interface {
	// AddStaticSurface installs the immovable ground spanning the world
	// width, solid at and below the given y (y grows downward).
	AddStaticSurface(y float64)

	// AddBall creates a dynamic body with a ball collider.
	AddBall(x, y, radius float64, tag CollisionTag) BodyID

	// AddPivot connects two bodies at body a's current position with a
	// free-rotating joint.
	AddPivot(a, b BodyID)

	// AddTelescope creates a length-actuated joint between two bodies:
	// travel limited to [minLen, maxLen] between the body centers, driven
	// toward restLen at the given stiffness and damping.
	AddTelescope(a, b BodyID, minLen, maxLen, restLen, stiffness, damping float64) JointID

	// SetTelescopeLength retargets a telescoping joint's motor.
	SetTelescopeLength(j JointID, length float64)

	// Step advances the scene by dt seconds.
	Step(dt float64)

	// Position returns a body's current world position.
	Position(b BodyID) (x, y float64)
}
