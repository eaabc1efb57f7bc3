package hop_controllers

import (
	"fmt"
	"math/rand"
	"strings"

	"hopsim/hop_core"
	"hopsim/hop_memory"
	"hopsim/hop_noise"
	"hopsim/hop_patterns"
	"hopsim/hop_schedules"
)

type RecallController struct {
}

func (RecallController) SettingsFactory(letters []string, noiseLevel float64, maxPasses int, schedule string, noiseMode string) (ExperimentSettings, error) {

	var scheduleHandler hop_schedules.UpdateScheduler
	var noiseHandler hop_noise.Corruptor

	switch parsed_schedule := strings.ToUpper(schedule); parsed_schedule {
	case "SYNCHRONOUS":
		scheduleHandler = hop_schedules.SynchronousSchedule{}
	case "ASYNCHRONOUS":
		scheduleHandler = hop_schedules.AsynchronousSchedule{}
	}
	if scheduleHandler == nil {
		return ExperimentSettings{}, fmt.Errorf("update schedule is invalid: %s", schedule)
	}

	switch parsed_noiseMode := strings.ToUpper(noiseMode); parsed_noiseMode {
	case "FLIP":
		noiseHandler = hop_noise.FlipCorruptor{}
	case "REROLL":
		noiseHandler = hop_noise.RerollCorruptor{}
	}
	if noiseHandler == nil {
		return ExperimentSettings{}, fmt.Errorf("noise mode is invalid: %s", noiseMode)
	}

	if noiseLevel < 0 || noiseLevel > 1 {
		return ExperimentSettings{}, fmt.Errorf("noise level is out of range: %f", noiseLevel)
	}

	patterns := make([][]int, 0, len(letters))
	for _, letter := range letters {
		p, err := hop_patterns.ByName(letter)
		if err != nil {
			return ExperimentSettings{}, err
		}
		patterns = append(patterns, p)
	}
	memory, err := hop_memory.NewMemory(patterns)
	if err != nil {
		return ExperimentSettings{}, err
	}

	return ExperimentSettings{
		Letters:         append([]string(nil), letters...),
		N:               memory.N(),
		K:               memory.PatternCount(),
		NoiseLevel:      noiseLevel,
		MaxPasses:       maxPasses,
		Schedule:        scheduleHandler.Name(),
		NoiseMode:       noiseHandler.Name(),
		memory:          memory,
		scheduleHandler: scheduleHandler,
		noiseHandler:    noiseHandler,
	}, nil
}

// StartRecallSession picks a stored letter at random, corrupts it at the
// configured noise level and lets the network settle. The session channel,
// when non-nil, receives the finished session for live tracking; sends
// never block the simulation.
func (c RecallController) StartRecallSession(settings ExperimentSettings, sessionChannel chan SessionStateMessage, seed int64, localRand *rand.Rand) SessionData {

	targetIndex := localRand.Intn(settings.K)
	target := settings.memory.Pattern(targetIndex)
	probe := settings.noiseHandler.Corrupt(target, settings.NoiseLevel, localRand)

	result, err := settings.memory.Recall(probe, settings.MaxPasses, settings.scheduleHandler)
	if err != nil {
		// Settings built by the factory cannot mismatch their own memory.
		return SessionData{Seed: seed, Status: "FAILED"}
	}

	status := "FINISHED"
	if !result.Converged {
		status = "LIMIT_REACHED"
	}

	predictedIndex, _ := settings.memory.Nearest(result.State)
	session := SessionData{
		Seed:            seed,
		TargetLetter:    settings.Letters[targetIndex],
		Probe:           probe,
		FinalState:      result.State,
		EnergyTrace:     result.EnergyTrace,
		Passes:          result.Passes,
		BitAccuracy:     hop_core.BitAccuracy(target, result.State),
		ExactMatch:      hop_core.HammingDistance(target, result.State) == 0,
		PredictedLetter: settings.Letters[predictedIndex],
		Status:          status,
	}

	if sessionChannel != nil {
		select {
		case sessionChannel <- SessionStateMessage{CommandType: "recall", SessionState: session}:
		default:
		}
	}

	return session
}
