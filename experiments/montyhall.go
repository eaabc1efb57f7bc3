package experiments

import "math/rand"

// MontyHallShow plays one round of the game: the contestant picks a door,
// the host reveals a goat behind another one, and the contestant either
// switches or stays. Returns whether the car was won.
func MontyHallShow(switchPolicy bool, localRand *rand.Rand) bool {
	choices := []string{"goat1", "goat2", "car"}
	localRand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	pick := localRand.Intn(len(choices))
	contestantsChoice := choices[pick]
	choices = append(choices[:pick], choices[pick+1:]...)

	if contestantsChoice == "car" {
		// The host reveals either goat, the other one is the switch offer.
		reveal := localRand.Intn(len(choices))
		choices = append(choices[:reveal], choices[reveal+1:]...)
	} else {
		// The host must reveal the remaining goat, leaving only the car.
		choices = []string{"car"}
	}

	if switchPolicy {
		contestantsChoice = choices[0]
	}
	return contestantsChoice == "car"
}

// MontyHallSeries averages the win rate over a number of shows.
func MontyHallSeries(quantityOfRuns int, switchPolicy bool, localRand *rand.Rand) float64 {
	wins := 0
	for i := 0; i < quantityOfRuns; i++ {
		if MontyHallShow(switchPolicy, localRand) {
			wins++
		}
	}
	return float64(wins) / float64(quantityOfRuns)
}
