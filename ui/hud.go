// Package ui renders the heads-up display and the speed controls.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evolution/evolver"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Generation   int
	Phase        evolver.Phase
	SecondsLeft  float64
	BestScore    float64
	BestEver     float64
	FPS          int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(fmt.Sprintf("Generation %d", data.Generation), 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Phase: %s | %.1fs left | FPS: %d", data.Phase, data.SecondsLeft, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Best: %.2f | Best ever: %.2f", data.BestScore, data.BestEver),
		10, 55, 16, rl.LightGray,
	)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
