package hop_noise

import (
	"math/rand"

	"hopsim/hop_core"
)

// FlipCorruptor negates floor(level*n) distinct randomly chosen units, so
// the Hamming distance to the original is exactly the flip count. Levels
// outside [0,1] clamp to no flips or a full negation.
type FlipCorruptor struct{}

func (FlipCorruptor) Corrupt(pattern []int, level float64, localRand *rand.Rand) []int {
	noisy := hop_core.CopyState(pattern)
	flips := int(float64(len(pattern)) * level)
	if flips < 0 {
		flips = 0
	}
	if flips > len(pattern) {
		flips = len(pattern)
	}
	for _, index := range localRand.Perm(len(pattern))[:flips] {
		noisy[index] = -noisy[index]
	}
	return noisy
}

func (FlipCorruptor) Name() string {
	return "FLIP"
}
