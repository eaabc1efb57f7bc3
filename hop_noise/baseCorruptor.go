package hop_noise

import "math/rand"

// Corruptor produces a noisy copy of a stored pattern. The level is the
// fraction of units touched, in [0,1]. Implementations never modify the
// input pattern.
type Corruptor interface {
	Corrupt(pattern []int, level float64, localRand *rand.Rand) []int
	Name() string
}
