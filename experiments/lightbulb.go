package experiments

import (
	"fmt"
	"math"
	"math/rand"
)

// LightbulbSurvives simulates one bulb under a daily Bernoulli failure
// probability over its tested lifespan.
func LightbulbSurvives(lifespanInDays int, failureProbability float64, localRand *rand.Rand) bool {
	for day := 0; day < lifespanInDays; day++ {
		if localRand.Float64() < failureProbability {
			return false
		}
	}
	return true
}

// LightbulbSeries averages the survival rate over a number of bulbs.
func LightbulbSeries(quantityOfRuns int, lifespanInDays int, failureProbability float64, localRand *rand.Rand) float64 {
	survived := 0
	for i := 0; i < quantityOfRuns; i++ {
		if LightbulbSurvives(lifespanInDays, failureProbability, localRand) {
			survived++
		}
	}
	return float64(survived) / float64(quantityOfRuns)
}

// TheoreticalSurvivability is the exponential decay model exp(-lambda*t).
func TheoreticalSurvivability(lifespanInDays int, failureProbability float64) float64 {
	return math.Exp(-failureProbability * float64(lifespanInDays))
}

// FitFailureProbability recovers the decay constant from an observed
// survival rate, inverting the exponential model.
func FitFailureProbability(lifespanInDays int, observedSurvivability float64) (float64, error) {
	if observedSurvivability <= 0 || observedSurvivability > 1 {
		return 0, fmt.Errorf("observed survivability must be in the range (0, 1], got %f", observedSurvivability)
	}
	return -math.Log(observedSurvivability) / float64(lifespanInDays), nil
}
