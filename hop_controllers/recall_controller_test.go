package hop_controllers

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"hopsim/hop_memory"
	"hopsim/hop_noise"
	"hopsim/hop_schedules"
)

func TestSettingsFactoryValidConfig(t *testing.T) {
	controller := RecallController{}
	settings, err := controller.SettingsFactory([]string{"A", "T"}, 0.2, 50, "asynchronous", "flip")
	if err != nil {
		t.Fatal(err)
	}
	if settings.N != 400 {
		t.Errorf("got N=%d, want 400", settings.N)
	}
	if settings.K != 2 {
		t.Errorf("got K=%d, want 2", settings.K)
	}
	if settings.Schedule != "ASYNCHRONOUS" {
		t.Errorf("got schedule %s, want ASYNCHRONOUS", settings.Schedule)
	}
	if settings.NoiseMode != "FLIP" {
		t.Errorf("got noise mode %s, want FLIP", settings.NoiseMode)
	}
}

func TestSettingsFactoryRejectsBadConfigs(t *testing.T) {
	controller := RecallController{}
	cases := []struct {
		name       string
		letters    []string
		noiseLevel float64
		schedule   string
		noiseMode  string
	}{
		{"bad schedule", []string{"A"}, 0.1, "RANDOM", "FLIP"},
		{"bad noise mode", []string{"A"}, 0.1, "SYNCHRONOUS", "GAUSSIAN"},
		{"noise level above 1", []string{"A"}, 1.5, "SYNCHRONOUS", "FLIP"},
		{"negative noise level", []string{"A"}, -0.1, "SYNCHRONOUS", "FLIP"},
		{"unknown letter", []string{"Z"}, 0.1, "SYNCHRONOUS", "FLIP"},
		{"empty letter set", nil, 0.1, "SYNCHRONOUS", "FLIP"},
	}
	for _, tc := range cases {
		if _, err := controller.SettingsFactory(tc.letters, tc.noiseLevel, 50, tc.schedule, tc.noiseMode); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestStartRecallSessionZeroNoise(t *testing.T) {
	controller := RecallController{}
	settings, err := controller.SettingsFactory([]string{"A", "T", "O", "U"}, 0, 50, "ASYNCHRONOUS", "FLIP")
	if err != nil {
		t.Fatal(err)
	}

	seed := int64(99)
	session := controller.StartRecallSession(settings, nil, seed, rand.New(rand.NewSource(seed)))

	if session.Status != "FINISHED" {
		t.Errorf("got status %s, want FINISHED", session.Status)
	}
	if !session.ExactMatch {
		t.Error("zero noise recall should match exactly")
	}
	if session.Passes != 0 {
		t.Errorf("got %d passes from an uncorrupted probe, want 0", session.Passes)
	}
	if session.PredictedLetter != session.TargetLetter {
		t.Errorf("predicted %s, target was %s", session.PredictedLetter, session.TargetLetter)
	}
	if session.BitAccuracy != 1 {
		t.Errorf("got bit accuracy %f, want 1", session.BitAccuracy)
	}
	if len(session.EnergyTrace) == 0 {
		t.Error("energy trace is empty")
	}
}

func TestStartRecallSessionLimitReached(t *testing.T) {
	// A two unit memory storing {1,-1}: flipping either unit yields {1,1}
	// or {-1,-1}, both of which oscillate under synchronous passes, so the
	// session must exhaust its pass budget.
	memory, err := hop_memory.NewMemory([][]int{{1, -1}})
	if err != nil {
		t.Fatal(err)
	}
	settings := ExperimentSettings{
		Letters:         []string{"X"},
		N:               2,
		K:               1,
		NoiseLevel:      0.5,
		MaxPasses:       6,
		Schedule:        "SYNCHRONOUS",
		NoiseMode:       "FLIP",
		memory:          memory,
		scheduleHandler: hop_schedules.SynchronousSchedule{},
		noiseHandler:    hop_noise.FlipCorruptor{},
	}

	session := RecallController{}.StartRecallSession(settings, nil, 7, rand.New(rand.NewSource(7)))
	if session.Status != "LIMIT_REACHED" {
		t.Errorf("got status %s, want LIMIT_REACHED", session.Status)
	}
	if session.Passes != 6 {
		t.Errorf("got %d passes, want the full budget of 6", session.Passes)
	}
	if session.ExactMatch {
		t.Error("an oscillating session reported an exact match")
	}
}

func TestStartRecallSessionReportsToChannel(t *testing.T) {
	controller := RecallController{}
	settings, err := controller.SettingsFactory([]string{"A", "T"}, 0.1, 50, "ASYNCHRONOUS", "FLIP")
	if err != nil {
		t.Fatal(err)
	}

	sessionChannel := make(chan SessionStateMessage, 1)
	controller.StartRecallSession(settings, sessionChannel, 1, rand.New(rand.NewSource(1)))

	select {
	case message := <-sessionChannel:
		if message.CommandType != "recall" {
			t.Errorf("got command type %s, want recall", message.CommandType)
		}
	default:
		t.Error("no message arrived on the session channel")
	}
}

func TestLoadSimulationSettings(t *testing.T) {
	content := `{
		"max_session_count": 5,
		"max_passes": 30,
		"max_worker_count": 2,
		"pattern_sets": [["A", "T"]],
		"noise_levels": [0.1, 0.2],
		"schedules": ["ASYNCHRONOUS"],
		"noise_modes": ["FLIP"]
	}`
	filename := filepath.Join(t.TempDir(), "simulation_settings.json")
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	controller := SimulationController{}
	settings, err := controller.LoadSimulationSettings(filename)
	if err != nil {
		t.Fatal(err)
	}
	if settings.MaxSessionCount != 5 || settings.MaxPasses != 30 || settings.MaxWorkerCount != 2 {
		t.Errorf("unexpected counts: %+v", settings)
	}
	if len(settings.PatternSets) != 1 || len(settings.PatternSets[0]) != 2 {
		t.Errorf("unexpected pattern sets: %v", settings.PatternSets)
	}
	if len(settings.NoiseLevels) != 2 {
		t.Errorf("unexpected noise levels: %v", settings.NoiseLevels)
	}

	if _, err := controller.LoadSimulationSettings(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected an error for a missing settings file")
	}
}

func TestQueryValidators(t *testing.T) {
	dc := DatabaseController{}

	for _, axis := range []string{"N", "K", "NOISE_LEVEL", "PASSES"} {
		if !dc.ValidateGraphAxis(axis) {
			t.Errorf("axis %s should be valid", axis)
		}
	}
	if dc.ValidateGraphAxis("SEED") {
		t.Error("SEED should not be a valid axis")
	}

	if !dc.ValidateSchedule("SYNCHRONOUS") || !dc.ValidateSchedule("ASYNCHRONOUS") {
		t.Error("known schedules should validate")
	}
	if dc.ValidateSchedule("RANDOM") {
		t.Error("RANDOM should not validate")
	}

	if !dc.ValidateNoiseMode("FLIP") || !dc.ValidateNoiseMode("REROLL") {
		t.Error("known noise modes should validate")
	}
	if dc.ValidateNoiseMode("GAUSSIAN") {
		t.Error("GAUSSIAN should not validate")
	}
}
