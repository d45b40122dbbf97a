package maze

import (
	"math/rand"

	"github.com/katalvlaran/lvmaze/core"
)

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// shuffleEdges performs an in-place Fisher–Yates shuffle of recs.
// Complexity: O(len(recs)).
func shuffleEdges(rng *rand.Rand, recs []core.Edge) {
	for i := len(recs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		recs[i], recs[j] = recs[j], recs[i]
	}
}
