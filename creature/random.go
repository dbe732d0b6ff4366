package creature

import (
	"math/rand"

	"github.com/pthm-cable/evolution/config"
)

// Random creates a builder populated with random nodes and muscles.
//
// The node count is the configured base plus independent geometric coin
// flips: each extra node is added while a uniform draw stays below the
// configured chance. Every unordered pair of distinct nodes is then visited
// exactly once and connected with the configured probability.
func Random(rng *rand.Rand, cfg *config.Config) *Builder {
	b := NewBuilder()

	numNodes := cfg.Creature.BaseNodes
	for rng.Float64() < cfg.Creature.ExtraNodeChance {
		numNodes++
	}

	r := cfg.Creature.PositionRange
	for i := 0; i < numNodes; i++ {
		pos := NewPosition(
			rng.Float64()*2*r-r,
			rng.Float64()*2*r-r,
		)
		size := cfg.Creature.SizeMin + rng.Float64()*(cfg.Creature.SizeMax-cfg.Creature.SizeMin)
		b.AddNode(NewNode(pos, size))
	}

	for i := 0; i < len(b.nodeOrder); i++ {
		for j := i + 1; j < len(b.nodeOrder); j++ {
			if rng.Float64() >= cfg.Creature.ConnectChance {
				continue
			}
			b.AddMuscle(NewMuscle(b.nodeOrder[i], b.nodeOrder[j]))
		}
	}

	return b
}
