// Package evolver owns generations of simulations and advances them on a
// fixed virtual clock: simulate for a fixed span, score, select, mutate,
// repeat indefinitely.
package evolver

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/pthm-cable/evolution/config"
	"github.com/pthm-cable/evolution/creature"
	"github.com/pthm-cable/evolution/sim"
)

// Phase identifies which half of the generational cycle is running.
type Phase int

const (
	// PhaseSimulating steps every simulation of the current generation.
	PhaseSimulating Phase = iota
	// PhaseEvolving holds the scored generation briefly before the next
	// one replaces it.
	PhaseEvolving
)

func (p Phase) String() string {
	switch p {
	case PhaseSimulating:
		return "simulating"
	case PhaseEvolving:
		return "evolving"
	default:
		return "unknown"
	}
}

// State is the controller's current phase and its remaining step countdown.
type State struct {
	Phase     Phase
	StepsLeft int
}

// GenerationResult reports a finished generation's scores, ranked descending.
type GenerationResult struct {
	Index  int
	Scores []float64
}

// Evolver runs the generational loop. It is driven by Run from the outer
// frame loop and exposes read-only queries for the rendering layer.
type Evolver struct {
	cfg *config.Config
	rng *rand.Rand

	generation []*sim.Simulation
	genIndex   int
	state      State

	stepDuration time.Duration
	leftover     time.Duration

	hook func(GenerationResult)
}

// New creates an evolver with a fully random first generation anchored at the
// common spawn point.
func New(cfg *config.Config, rng *rand.Rand) *Evolver {
	e := &Evolver{
		cfg:          cfg,
		rng:          rng,
		stepDuration: time.Second / time.Duration(cfg.Physics.StepsPerSecond),
		state:        State{Phase: PhaseSimulating, StepsLeft: cfg.Derived.GenerationSteps},
	}

	e.generation = make([]*sim.Simulation, 0, cfg.Population.Size)
	for i := 0; i < cfg.Population.Size; i++ {
		c := creature.Random(rng, cfg).
			TranslateBottomCenterTo(e.spawnPoint()).
			Build(rng, cfg)
		e.generation = append(e.generation, sim.New(c, cfg))
	}

	return e
}

// SetGenerationHook registers a callback invoked once per finished
// generation, with scores ranked descending.
func (e *Evolver) SetGenerationHook(hook func(GenerationResult)) {
	e.hook = hook
}

// State returns the current phase and countdown.
func (e *Evolver) State() State {
	return e.state
}

// Generation returns the current generation's simulations in order.
func (e *Evolver) Generation() []*sim.Simulation {
	return e.generation
}

// GenerationIndex returns how many generations have been spawned before the
// current one.
func (e *Evolver) GenerationIndex() int {
	return e.genIndex
}

// Run consumes elapsed wall-clock time, plus any remainder carried from the
// previous call, in whole fixed-duration ticks. Chunking is irrelevant: any
// split of the same total elapsed time yields the same tick count. At most
// max_catchup_steps ticks run per call; backlog beyond the cap is dropped so
// a stalled caller never triggers an unbounded burst.
func (e *Evolver) Run(elapsed time.Duration) {
	elapsed += e.leftover

	steps := int(elapsed / e.stepDuration)
	remainder := elapsed - time.Duration(steps)*e.stepDuration

	if limit := e.cfg.Population.MaxCatchupSteps; steps > limit {
		steps = limit
		remainder = 0
	}

	for i := 0; i < steps; i++ {
		e.tick()
	}
	e.leftover = remainder
}

// tick advances the state machine by exactly one fixed step.
func (e *Evolver) tick() {
	switch e.state.Phase {
	case PhaseSimulating:
		for _, s := range e.generation {
			s.Step()
		}
		e.state.StepsLeft--
		if e.state.StepsLeft <= 0 {
			e.finishGeneration()
		}

	case PhaseEvolving:
		e.state.StepsLeft--
		if e.state.StepsLeft <= 0 {
			e.generation = e.nextGeneration()
			e.genIndex++
			e.state = State{Phase: PhaseSimulating, StepsLeft: e.cfg.Derived.GenerationSteps}
		}
	}
}

// finishGeneration ranks the generation by score and enters the evolving
// phase.
func (e *Evolver) finishGeneration() {
	ranked := make([]*sim.Simulation, len(e.generation))
	scores := make([]float64, len(e.generation))
	for i, s := range e.generation {
		scores[i] = s.Score()
	}
	for i, idx := range rankDescending(scores) {
		ranked[i] = e.generation[idx]
	}
	e.generation = ranked

	if e.hook != nil {
		rankedScores := make([]float64, len(ranked))
		for i, s := range ranked {
			rankedScores[i] = s.Score()
		}
		e.hook(GenerationResult{Index: e.genIndex, Scores: rankedScores})
	}

	e.state = State{Phase: PhaseEvolving, StepsLeft: e.cfg.Derived.EvolveSteps}
}

// nextGeneration applies truncation selection to the ranked generation: the
// top size/offspringPerParent performers each produce offspringPerParent
// mutated descendants, re-anchored to the spawn point. The rest contribute
// nothing.
func (e *Evolver) nextGeneration() []*sim.Simulation {
	numParents := e.cfg.Population.Size / e.cfg.Population.OffspringPerParent
	parents := e.generation[:numParents]

	next := make([]*sim.Simulation, 0, e.cfg.Population.Size)
	for _, parent := range parents {
		for i := 0; i < e.cfg.Population.OffspringPerParent; i++ {
			c := creature.Mutate(parent.Creature(), e.rng, e.cfg).
				TranslateBottomCenterTo(e.spawnPoint()).
				Build(e.rng, e.cfg)
			next = append(next, sim.New(c, e.cfg))
		}
	}
	return next
}

func (e *Evolver) spawnPoint() creature.Position {
	return creature.NewPosition(e.cfg.Derived.SpawnX, e.cfg.Derived.SpawnY)
}

// rankDescending returns index order sorted by score, highest first, under a
// total order: NaN ranks below every real score instead of poisoning the
// sort. Scores are finite by construction, so this is a documented contract
// rather than an expected path.
func rankDescending(scores []float64) []int {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		a, b := scores[idx[i]], scores[idx[j]]
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})
	return idx
}
