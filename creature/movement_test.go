package creature

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/evolution/config"
)

func TestExtensionAtWaveform(t *testing.T) {
	p := MovementParameters{MuscleLength: 10, Offset: 0, ExtensionSteps: 10, ContractionSteps: 10}

	tests := []struct {
		step int
		want float64
	}{
		{0, 0.5},  // rest state at build
		{5, 0.75}, // first period rises from 0.5
		{10, 1.0},
		{15, 0.5},
		{20, 0.0}, // wraps to the non-first-period rule
		{25, 0.5},
		{30, 1.0},
		{35, 0.5},
		{40, 0.0},
	}

	for _, tt := range tests {
		if got := p.ExtensionAt(tt.step); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ExtensionAt(%d) = %v, want %v", tt.step, got, tt.want)
		}
	}
}

func TestExtensionAtOffset(t *testing.T) {
	p := MovementParameters{MuscleLength: 10, Offset: 30, ExtensionSteps: 10, ContractionSteps: 10}

	// Holds rest value until the offset elapses
	for step := 0; step < 30; step++ {
		if got := p.ExtensionAt(step); got != 0.5 {
			t.Fatalf("ExtensionAt(%d) = %v before offset, want 0.5", step, got)
		}
	}
	if got := p.ExtensionAt(35); math.Abs(got-0.75) > 1e-12 {
		t.Errorf("ExtensionAt(35) = %v, want 0.75", got)
	}
	if got := p.ExtensionAt(50); math.Abs(got-0.0) > 1e-12 {
		t.Errorf("ExtensionAt(50) = %v, want 0.0", got)
	}
}

func TestExtensionAtBounds(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 100; trial++ {
		p := MovementParameters{
			MuscleLength:     1 + rng.Float64()*100,
			Offset:           rng.Intn(cfg.Derived.OffsetMaxSteps + 1),
			ExtensionSteps:   sampleSteps(rng, cfg),
			ContractionSteps: sampleSteps(rng, cfg),
		}
		for step := 0; step < 3*p.Period(); step++ {
			v := p.ExtensionAt(step)
			if v < 0 || v > 1 {
				t.Fatalf("ExtensionAt(%d) = %v out of [0, 1] for %+v", step, v, p)
			}
		}
		if v := p.ExtensionAt(0); v != 0.5 {
			t.Fatalf("ExtensionAt(0) = %v, want rest value 0.5", v)
		}
	}
}

func TestIsExtendingAgreesWithTrend(t *testing.T) {
	p := MovementParameters{MuscleLength: 10, Offset: 12, ExtensionSteps: 23, ContractionSteps: 41}

	// While extending, consecutive fractions are non-decreasing within a
	// period (the across-period wraparound step is excluded).
	for step := p.Offset; step < p.Offset+5*p.Period(); step++ {
		d := (step - p.Offset) % p.Period()
		if d == 0 {
			continue
		}
		prev, cur := p.ExtensionAt(step-1), p.ExtensionAt(step)
		if p.IsExtending(step) && cur < prev {
			t.Fatalf("step %d: extending but fraction fell %v -> %v", step, prev, cur)
		}
		// d == ExtensionSteps is the peak, where the fraction tops out at 1
		if d > p.ExtensionSteps && cur > prev {
			t.Fatalf("step %d: contracting but fraction rose %v -> %v", step, prev, cur)
		}
	}
}

func TestMutateParametersBounds(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(11))

	p := MovementParameters{
		MuscleLength:     42.0,
		Offset:           30,
		ExtensionSteps:   60,
		ContractionSteps: 60,
	}

	for i := 0; i < 1000; i++ {
		p = MutateParameters(p, rng, cfg)

		if p.MuscleLength != 42.0 {
			t.Fatalf("mutation %d changed muscle length to %v", i, p.MuscleLength)
		}
		if p.Offset < 0 || p.Offset > cfg.Derived.OffsetMaxSteps {
			t.Fatalf("mutation %d: offset %d out of range", i, p.Offset)
		}
		if p.ExtensionSteps < cfg.Derived.MinPeriodSteps || p.ExtensionSteps > cfg.Derived.MaxPeriodSteps {
			t.Fatalf("mutation %d: extension %d out of range", i, p.ExtensionSteps)
		}
		if p.ContractionSteps < cfg.Derived.MinPeriodSteps || p.ContractionSteps > cfg.Derived.MaxPeriodSteps {
			t.Fatalf("mutation %d: contraction %d out of range", i, p.ContractionSteps)
		}
	}
}

func TestGenerateForMusclesAndNodes(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(3))

	n1 := NewNode(NewPosition(1, 2), 3)
	n2 := NewNode(NewPosition(2, 1), 3)
	n3 := NewNode(NewPosition(5, 5), 3)
	m1 := NewMuscle(n1.ID, n2.ID)
	m2 := NewMuscle(n2.ID, n3.ID)

	b := NewBuilder().AddNode(n1).AddNode(n2).AddNode(n3).AddMuscle(m1).AddMuscle(m2)
	params := GenerateForMusclesAndNodes(rng, b.muscleOrder, b.muscles, b.nodes, cfg)

	if len(params) != 2 {
		t.Fatalf("got %d schedules, want 2", len(params))
	}
	if got, want := params[m1.ID].MuscleLength, math.Sqrt(2); math.Abs(got-want) > 1e-12 {
		t.Errorf("m1 natural length = %v, want sqrt(2)", got)
	}
	if got := params[m2.ID].MuscleLength; math.Abs(got-5.0) > 1e-12 {
		t.Errorf("m2 natural length = %v, want 5.0", got)
	}
	for id, p := range params {
		if p.ExtensionSteps < cfg.Derived.MinPeriodSteps || p.ContractionSteps < cfg.Derived.MinPeriodSteps {
			t.Errorf("muscle %s sampled degenerate periods: %+v", id, p)
		}
	}
}
