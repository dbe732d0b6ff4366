// Package renderer draws the world and its creatures with raylib.
package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evolution/config"
	"github.com/pthm-cable/evolution/creature"
	"github.com/pthm-cable/evolution/sim"
)

const (
	muscleThickness = 3.0
	scoreFontSize   = 14
	scoreTextGap    = 8
)

var (
	backgroundColor = rl.Color{R: 24, G: 26, B: 32, A: 255}
	floorColor      = rl.Color{R: 58, G: 62, B: 70, A: 255}
	spawnLineColor  = rl.Color{R: 58, G: 62, B: 70, A: 120}
)

// Renderer scales world coordinates to screen pixels and draws the floor and
// every creature of the current generation. World and screen both run y-down,
// so the transform is a plain scale.
type Renderer struct {
	cfg    *config.Config
	scaleX float64
	scaleY float64
}

// New creates a renderer for the configured world and screen dimensions.
func New(cfg *config.Config) *Renderer {
	return &Renderer{
		cfg:    cfg,
		scaleX: float64(cfg.Screen.Width) / cfg.World.Width,
		scaleY: float64(cfg.Screen.Height) / cfg.World.Height,
	}
}

// Draw renders the floor, the spawn line, and all simulations. The caller is
// responsible for BeginDrawing/EndDrawing.
func (r *Renderer) Draw(sims []*sim.Simulation) {
	rl.ClearBackground(backgroundColor)
	r.drawFloor()

	for _, s := range sims {
		r.drawSimulation(s)
	}
}

func (r *Renderer) drawFloor() {
	top := r.cfg.Derived.FloorTopY * r.scaleY
	rl.DrawRectangle(
		0, int32(top),
		int32(r.cfg.Screen.Width), int32(float64(r.cfg.Screen.Height)-top),
		floorColor,
	)

	// Spawn line marks the scoring origin.
	x := int32(r.cfg.Derived.SpawnX * r.scaleX)
	rl.DrawLine(x, 0, x, int32(top), spawnLineColor)
}

func (r *Renderer) drawSimulation(s *sim.Simulation) {
	c := s.Creature()
	colors := c.Colors()
	muscles := c.Muscles()
	nodes := c.Nodes()

	// Muscles under nodes.
	for _, id := range c.MuscleIDs() {
		m := muscles[id]
		from := r.toScreen(s.PositionOfNode(m.FromID))
		to := r.toScreen(s.PositionOfNode(m.ToID))

		color := colors.MuscleContracted
		if s.IsMuscleExtending(id) {
			color = colors.MuscleExtended
		}
		rl.DrawLineEx(from, to, float32(muscleThickness*r.scaleX), rlColor(color))
	}

	for _, id := range c.NodeIDs() {
		pos := r.toScreen(s.PositionOfNode(id))
		radius := nodes[id].Size / 2 * r.scaleX
		rl.DrawCircleV(pos, float32(radius), rlColor(colors.Node))
	}

	r.drawScore(s, colors)
}

func (r *Renderer) drawScore(s *sim.Simulation, colors creature.Colors) {
	text := fmt.Sprintf("%.2f", s.Score())
	pos := r.toScreen(s.TextPosition())

	width := rl.MeasureText(text, scoreFontSize)
	x := int32(pos.X) - width/2
	y := int32(pos.Y) - scoreFontSize - scoreTextGap
	rl.DrawText(text, x, y, scoreFontSize, rlColor(colors.ScoreText))
}

func (r *Renderer) toScreen(p creature.Position) rl.Vector2 {
	return rl.Vector2{X: float32(p.X * r.scaleX), Y: float32(p.Y * r.scaleY)}
}

func rlColor(c creature.RGB) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
