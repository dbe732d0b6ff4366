package creature

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/pthm-cable/evolution/config"
)

// MovementParameters define when and how a muscle moves, in whole simulation
// steps. They describe a periodic triangular waveform: the extension fraction
// rises from 0 to 1 over ExtensionSteps, then falls back to 0 over
// ContractionSteps. Until Offset steps have elapsed the muscle holds its rest
// value 0.5, and the first full period rises from 0.5 instead of 0 because a
// freshly built muscle starts at natural length.
type MovementParameters struct {
	MuscleLength     float64 // Natural length, fixed at creation from endpoint distance
	Offset           int
	ExtensionSteps   int
	ContractionSteps int
}

// Period returns the full cycle length in steps.
func (p MovementParameters) Period() int {
	return p.ExtensionSteps + p.ContractionSteps
}

// ExtensionAt returns the extension fraction at a step count.
// 0.0 = fully contracted, 1.0 = fully extended, 0.5 = rest.
// Pure function of the step count and the parameters themselves.
func (p MovementParameters) ExtensionAt(step int) float64 {
	total := p.Period()

	if step < p.Offset {
		return 0.5
	}

	d := (step - p.Offset) % total

	if d < p.ExtensionSteps {
		// First period rises from rest (0.5), later ones from 0
		if step < p.Offset+total {
			return float64(d)/float64(p.ExtensionSteps)*0.5 + 0.5
		}
		return float64(d) / float64(p.ExtensionSteps)
	}

	d -= p.ExtensionSteps
	return 1.0 - float64(d)/float64(p.ContractionSteps)
}

// IsExtending reports which half of the cycle the step falls in, without the
// first-period smoothing detail. Before the offset the first active phase is
// extension, so it reports true.
func (p MovementParameters) IsExtending(step int) bool {
	if step < p.Offset {
		return true
	}
	return (step-p.Offset)%p.Period() < p.ExtensionSteps
}

// GenerateForMusclesAndNodes samples movement parameters for every muscle.
// The natural length is derived from the current endpoint distance; offsets
// and periods are sampled uniformly from the configured step ranges.
func GenerateForMusclesAndNodes(rng *rand.Rand, order []uuid.UUID, muscles map[uuid.UUID]Muscle,
	nodes map[uuid.UUID]Node, cfg *config.Config) map[uuid.UUID]MovementParameters {

	params := make(map[uuid.UUID]MovementParameters, len(order))

	for _, id := range order {
		muscle := muscles[id]
		from, ok := nodes[muscle.FromID]
		if !ok {
			panic(fmt.Sprintf("creature: muscle %s references missing node %s", id, muscle.FromID))
		}
		to, ok := nodes[muscle.ToID]
		if !ok {
			panic(fmt.Sprintf("creature: muscle %s references missing node %s", id, muscle.ToID))
		}

		params[id] = MovementParameters{
			MuscleLength:     from.Position.DistanceTo(to.Position),
			Offset:           rng.Intn(cfg.Derived.OffsetMaxSteps + 1),
			ExtensionSteps:   sampleSteps(rng, cfg),
			ContractionSteps: sampleSteps(rng, cfg),
		}
	}

	return params
}

// MutateParameters perturbs the timing of a schedule by small independent
// deltas, clamped to the same legal ranges used by random generation. The
// natural length is preserved.
func MutateParameters(p MovementParameters, rng *rand.Rand, cfg *config.Config) MovementParameters {
	return MovementParameters{
		MuscleLength:     p.MuscleLength,
		Offset:           clampSteps(p.Offset+periodDelta(rng, cfg), 0, cfg.Derived.OffsetMaxSteps),
		ExtensionSteps:   clampSteps(p.ExtensionSteps+periodDelta(rng, cfg), cfg.Derived.MinPeriodSteps, cfg.Derived.MaxPeriodSteps),
		ContractionSteps: clampSteps(p.ContractionSteps+periodDelta(rng, cfg), cfg.Derived.MinPeriodSteps, cfg.Derived.MaxPeriodSteps),
	}
}

func sampleSteps(rng *rand.Rand, cfg *config.Config) int {
	lo, hi := cfg.Derived.MinPeriodSteps, cfg.Derived.MaxPeriodSteps
	return lo + rng.Intn(hi-lo+1)
}

func periodDelta(rng *rand.Rand, cfg *config.Config) int {
	d := cfg.Mutation.PeriodDeltaSteps
	return rng.Intn(2*d+1) - d
}

func clampSteps(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
