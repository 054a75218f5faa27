// Fragment generation

package model

import (
	"math/rand/v2"
	"strings"
)

// Generate builds count fragments with ids 0..count-1. Category and every
// base of the sequence are drawn uniformly and independently from rng.
func Generate(count int, rng *rand.Rand) []Fragment {
	if count <= 0 {
		return []Fragment{}
	}

	fragments := make([]Fragment, 0, count)
	for i := 0; i < count; i++ {
		fragments = append(fragments, Fragment{
			ID:       i,
			Category: Category(rng.IntN(NumCategories)),
			Sequence: randomSequence(SequenceLength, rng),
		})
	}
	return fragments
}

func randomSequence(length int, rng *rand.Rand) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(Bases[rng.IntN(len(Bases))])
	}
	return sb.String()
}

// NewRand returns a PCG-backed source. The same seed gives the same batches.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
