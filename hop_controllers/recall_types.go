package hop_controllers

import (
	"hopsim/hop_memory"
	"hopsim/hop_noise"
	"hopsim/hop_schedules"
)

type ExperimentSettings struct {
	Letters    []string
	N          int
	K          int
	NoiseLevel float64
	MaxPasses  int
	Schedule   string
	NoiseMode  string

	memory          *hop_memory.Memory
	scheduleHandler hop_schedules.UpdateScheduler
	noiseHandler    hop_noise.Corruptor
}

// SessionData is the record of one corrupt-and-recall session.
type SessionData struct {
	Seed            int64
	TargetLetter    string
	Probe           []int
	FinalState      []int
	EnergyTrace     []float64
	Passes          int
	BitAccuracy     float64
	ExactMatch      bool
	PredictedLetter string
	Status          string
}
