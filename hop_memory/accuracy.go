package hop_memory

import (
	"fmt"
	"math/rand"

	"hopsim/hop_core"
	"hopsim/hop_noise"
	"hopsim/hop_schedules"
)

// Nearest finds the stored pattern closest to a state and how well it
// matches, the way the original demo predicts which letter was retrieved.
func (m *Memory) Nearest(state []int) (int, float64) {
	bestIndex := -1
	bestAccuracy := -1.0
	for i, p := range m.patterns {
		accuracy := hop_core.BitAccuracy(p, state)
		if accuracy > bestAccuracy {
			bestAccuracy = accuracy
			bestIndex = i
		}
	}
	return bestIndex, bestAccuracy
}

// MeasureRecallAccuracy corrupts a randomly chosen stored pattern, recalls
// it and scores an exact match, over the given number of trials. It runs
// sequentially on the caller's rand handle; the result is the empirical
// success fraction in [0,1].
func (m *Memory) MeasureRecallAccuracy(noiseLevel float64, trials int, maxIterations int, corruptor hop_noise.Corruptor, schedule hop_schedules.UpdateScheduler, localRand *rand.Rand) (float64, error) {
	if trials < 1 {
		return 0, fmt.Errorf("trials must be at least 1, got %d", trials)
	}
	if noiseLevel < 0 || noiseLevel > 1 {
		return 0, fmt.Errorf("noise level must be in [0,1], got %f", noiseLevel)
	}

	successes := 0
	for trial := 0; trial < trials; trial++ {
		target := m.patterns[localRand.Intn(len(m.patterns))]
		probe := corruptor.Corrupt(target, noiseLevel, localRand)
		result, err := m.Recall(probe, maxIterations, schedule)
		if err != nil {
			return 0, err
		}
		if hop_core.HammingDistance(result.State, target) == 0 {
			successes++
		}
	}
	return float64(successes) / float64(trials), nil
}
