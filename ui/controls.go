package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// MaxSpeed is the highest time-scale the slider allows.
	MaxSpeed = 10.0

	panelWidth  = 240
	panelHeight = 66
)

// ControlsPanel renders the speed slider and pause button in the top-right
// corner and reports the resulting time scale.
type ControlsPanel struct {
	x, y float32

	speed  float32
	paused bool
}

// NewControlsPanel creates a controls panel anchored to the top-right corner.
func NewControlsPanel(screenWidth int32) *ControlsPanel {
	return &ControlsPanel{
		x:     float32(screenWidth) - panelWidth - 10,
		y:     10,
		speed: 1.0,
	}
}

// Speed returns the current time scale. Zero when paused.
func (c *ControlsPanel) Speed() float64 {
	if c.paused {
		return 0
	}
	return float64(c.speed)
}

// TogglePause flips the paused state.
func (c *ControlsPanel) TogglePause() {
	c.paused = !c.paused
}

// Draw renders the panel and absorbs slider and button input.
func (c *ControlsPanel) Draw() {
	x, y := c.x, c.y

	rl.DrawText("Speed", int32(x), int32(y), 14, rl.Gray)
	y += 18

	c.speed = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: panelWidth - 80, Height: 20},
		"0.1", fmt.Sprintf("%.0f", float64(MaxSpeed)),
		c.speed, 0.1, MaxSpeed,
	)
	rl.DrawText(fmt.Sprintf("%.1fx", c.speed), int32(x+panelWidth-70), int32(y+2), 16, rl.LightGray)
	y += 28

	label := "Pause"
	if c.paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 24}, label) {
		c.paused = !c.paused
	}
}
