package main

import (
	"flag"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evolution/config"
	"github.com/pthm-cable/evolution/evolver"
	"github.com/pthm-cable/evolution/renderer"
	"github.com/pthm-cable/evolution/telemetry"
	"github.com/pthm-cable/evolution/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output generation stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxGens := flag.Int("max-gens", 0, "Stop after N generations (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *logStats {
		cfg.Telemetry.LogStats = true
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(rngSeed))

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
		os.Exit(1)
	}

	collector := telemetry.NewCollector(cfg, out)

	bestEver := math.Inf(-1)
	ev := evolver.New(cfg, rng)
	ev.SetGenerationHook(func(res evolver.GenerationResult) {
		collector.Record(res.Index, res.Scores)
		if len(res.Scores) > 0 && res.Scores[0] > bestEver {
			bestEver = res.Scores[0]
		}
	})

	slog.Info("starting simulation",
		"seed", rngSeed,
		"population", cfg.Population.Size,
		"max_gens", *maxGens,
		"headless", *headless,
	)

	if *headless {
		runHeadless(cfg, ev, *maxGens)
		return
	}
	runGraphical(cfg, ev, *maxGens, &bestEver)
}

// runHeadless drives the evolver as fast as the CPU allows, feeding it
// simulated time in cap-sized chunks.
func runHeadless(cfg *config.Config, ev *evolver.Evolver, maxGens int) {
	stepDuration := time.Second / time.Duration(cfg.Physics.StepsPerSecond)
	chunk := time.Duration(cfg.Population.MaxCatchupSteps) * stepDuration

	for {
		ev.Run(chunk)

		if maxGens > 0 && ev.GenerationIndex() >= maxGens {
			slog.Info("max generations reached", "generation", ev.GenerationIndex())
			return
		}
	}
}

func runGraphical(cfg *config.Config, ev *evolver.Evolver, maxGens int, bestEver *float64) {
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Evolution")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	rend := renderer.New(cfg)
	hud := ui.NewHUD()
	controls := ui.NewControlsPanel(int32(cfg.Screen.Width))

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			controls.TogglePause()
		}

		frame := time.Duration(float64(rl.GetFrameTime()) * controls.Speed() * float64(time.Second))
		ev.Run(frame)

		rl.BeginDrawing()
		rend.Draw(ev.Generation())
		hud.Draw(hudData(cfg, ev, *bestEver))
		controls.Draw()
		hud.DrawControls(int32(cfg.Screen.Height), "SPACE pause | drag slider to change speed")
		rl.EndDrawing()

		if maxGens > 0 && ev.GenerationIndex() >= maxGens {
			break
		}
	}
}

func hudData(cfg *config.Config, ev *evolver.Evolver, bestEver float64) ui.HUDData {
	state := ev.State()

	best := math.Inf(-1)
	for _, s := range ev.Generation() {
		if score := s.Score(); score > best {
			best = score
		}
	}
	if best > bestEver {
		bestEver = best
	}

	return ui.HUDData{
		Generation:   ev.GenerationIndex(),
		Phase:        state.Phase,
		SecondsLeft:  float64(state.StepsLeft) / float64(cfg.Physics.StepsPerSecond),
		BestScore:    best,
		BestEver:     bestEver,
		FPS:          rl.GetFPS(),
		ScreenHeight: int32(cfg.Screen.Height),
	}
}
