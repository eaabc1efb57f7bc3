package hop_controllers

import (
	"sync"
	"time"
)

type OpenSession struct {
	Uid                 string
	Config              ExperimentSettings
	StartTime           time.Time
	MaxSessionCount     int
	CurrentSessionCount int
	Tracking            bool                     `json:"-"`
	CurrentStateChannel chan SessionStateMessage `json:"-"`
}

type SessionMap struct {
	Sessions map[string]*OpenSession
	Mutex    sync.RWMutex
}

type SessionStateMessage struct {
	CommandType  string // recall or finished
	SessionState interface{}
}

type SimulationSettings struct {
	MaxSessionCount int        `json:"max_session_count"`
	MaxPasses       int        `json:"max_passes"`
	MaxWorkerCount  int        `json:"max_worker_count"`
	PatternSets     [][]string `json:"pattern_sets"`
	NoiseLevels     []float64  `json:"noise_levels"`
	Schedules       []string   `json:"schedules"`
	NoiseModes      []string   `json:"noise_modes"`
}

func NewSessionMap() *SessionMap {
	return &SessionMap{
		Sessions: make(map[string]*OpenSession),
	}
}
