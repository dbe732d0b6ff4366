package creature

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/evolution/config"
)

func TestRandomRespectsRanges(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(13))

	for trial := 0; trial < 200; trial++ {
		c := Random(rng, cfg).Build(rng, cfg)

		if len(c.Nodes()) < cfg.Creature.BaseNodes {
			t.Fatalf("creature has %d nodes, below base %d", len(c.Nodes()), cfg.Creature.BaseNodes)
		}
		for _, n := range c.Nodes() {
			r := cfg.Creature.PositionRange
			if n.Position.X < -r || n.Position.X > r || n.Position.Y < -r || n.Position.Y > r {
				t.Fatalf("node placed outside square: %+v", n.Position)
			}
			if n.Size < cfg.Creature.SizeMin || n.Size > cfg.Creature.SizeMax {
				t.Fatalf("node size %v outside [%v, %v]", n.Size, cfg.Creature.SizeMin, cfg.Creature.SizeMax)
			}
		}
		if c.Colors().Hue < 0 || c.Colors().Hue > cfg.Creature.HueMax {
			t.Fatalf("hue %d outside [0, %d]", c.Colors().Hue, cfg.Creature.HueMax)
		}

		// No self-loops, no duplicate unordered pairs
		seen := make(map[[2]string]bool)
		for _, m := range c.Muscles() {
			if m.FromID == m.ToID {
				t.Fatal("muscle connects a node to itself")
			}
			a, b := m.FromID.String(), m.ToID.String()
			if a > b {
				a, b = b, a
			}
			key := [2]string{a, b}
			if seen[key] {
				t.Fatal("duplicate muscle between the same node pair")
			}
			seen[key] = true
		}
	}
}

func TestRandomPairConnectionRate(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(17))

	var pairs, connected int
	for trial := 0; trial < 2000; trial++ {
		c := Random(rng, cfg).Build(rng, cfg)
		n := len(c.Nodes())
		pairs += n * (n - 1) / 2
		connected += len(c.Muscles())
	}

	rate := float64(connected) / float64(pairs)
	if math.Abs(rate-cfg.Creature.ConnectChance) > 0.03 {
		t.Errorf("empirical connection rate %v, want ~%v", rate, cfg.Creature.ConnectChance)
	}
}

func TestRandomNodeCountDistribution(t *testing.T) {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(19))

	// Extra nodes follow a geometric law; the mean is p/(1-p) above base.
	var total int
	const trials = 5000
	for i := 0; i < trials; i++ {
		b := Random(rng, cfg)
		total += len(b.nodeOrder)
	}

	p := cfg.Creature.ExtraNodeChance
	want := float64(cfg.Creature.BaseNodes) + p/(1-p)
	got := float64(total) / trials
	if math.Abs(got-want) > 0.05 {
		t.Errorf("mean node count %v, want ~%v", got, want)
	}
}
