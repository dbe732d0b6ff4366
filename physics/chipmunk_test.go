package physics

import (
	"math"
	"testing"
)

const dt = 1.0 / 60.0

func TestBallFallsOntoSurface(t *testing.T) {
	w := NewWorld(200, 10, 0.7)
	w.AddStaticSurface(504)

	ball := w.AddBall(500, 400, 5, TagNode)

	for i := 0; i < 600; i++ {
		w.Step(dt)
	}

	x, y := w.Position(ball)
	if math.Abs(x-500) > 1.0 {
		t.Errorf("ball drifted horizontally to x=%v", x)
	}
	if y < 450 {
		t.Errorf("ball did not fall, y=%v", y)
	}
	// Resting on the surface, not through it
	if y > 504-5+1.5 {
		t.Errorf("ball penetrated the floor, y=%v", y)
	}
}

func TestNodesDoNotCollideWithEachOther(t *testing.T) {
	w := NewWorld(0, 10, 0.7)

	// Two node balls dead center on each other; without a collision
	// response they stay put.
	a := w.AddBall(100, 100, 10, TagNode)
	b := w.AddBall(100, 100, 10, TagNode)

	for i := 0; i < 120; i++ {
		w.Step(dt)
	}

	ax, ay := w.Position(a)
	bx, by := w.Position(b)
	if math.Hypot(ax-bx, ay-by) > 1e-9 {
		t.Errorf("overlapping node balls were pushed apart: (%v,%v) vs (%v,%v)", ax, ay, bx, by)
	}
}

func TestTelescopeDrivesTowardTarget(t *testing.T) {
	w := NewWorld(0, 10, 0.7)

	a := w.AddBall(100, 100, 5, TagNode)
	b := w.AddBall(200, 100, 5, TagNode)

	// Natural length 100, limits well clear of the target
	j := w.AddTelescope(a, b, 50, 150, 100, 5.0, 0.5)
	w.SetTelescopeLength(j, 70)

	for i := 0; i < 600; i++ {
		w.Step(dt)
	}

	ax, ay := w.Position(a)
	bx, by := w.Position(b)
	dist := math.Hypot(ax-bx, ay-by)
	if math.Abs(dist-70) > 5 {
		t.Errorf("telescope settled at %v, want ~70", dist)
	}
}

func TestTelescopeRespectsLimits(t *testing.T) {
	w := NewWorld(0, 10, 0.7)

	a := w.AddBall(100, 100, 5, TagNode)
	b := w.AddBall(200, 100, 5, TagNode)

	// Target far below the lower travel limit
	j := w.AddTelescope(a, b, 80, 120, 100, 5.0, 0.5)
	w.SetTelescopeLength(j, 10)

	for i := 0; i < 600; i++ {
		w.Step(dt)
	}

	ax, ay := w.Position(a)
	bx, by := w.Position(b)
	dist := math.Hypot(ax-bx, ay-by)
	if dist < 80-2 {
		t.Errorf("telescope compressed to %v, below limit 80", dist)
	}
}

func TestPivotKeepsBodiesColocated(t *testing.T) {
	w := NewWorld(200, 10, 0.7)
	w.AddStaticSurface(504)

	node := w.AddBall(500, 300, 8, TagNode)
	ghost := w.AddBall(500, 300, 1, TagGhost)
	w.AddPivot(node, ghost)

	for i := 0; i < 300; i++ {
		w.Step(dt)
	}

	nx, ny := w.Position(node)
	gx, gy := w.Position(ghost)
	if math.Hypot(nx-gx, ny-gy) > 1.0 {
		t.Errorf("pivoted bodies separated: node (%v,%v), ghost (%v,%v)", nx, ny, gx, gy)
	}
}
