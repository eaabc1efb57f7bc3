package hop_noise

import (
	"math/rand"

	"hopsim/hop_core"
)

// RerollCorruptor is the original demo's noise model: floor(level*n) times
// pick a random unit and assign it a fresh random sign. The same unit may
// be hit more than once, so the effective corruption is a bit below the
// nominal level.
type RerollCorruptor struct{}

func (RerollCorruptor) Corrupt(pattern []int, level float64, localRand *rand.Rand) []int {
	noisy := hop_core.CopyState(pattern)
	rolls := int(float64(len(pattern)) * level)
	for i := 0; i < rolls; i++ {
		index := localRand.Intn(len(pattern))
		noisy[index] = localRand.Intn(2)*2 - 1
	}
	return noisy
}

func (RerollCorruptor) Name() string {
	return "REROLL"
}
