package hop_memory

import (
	"fmt"

	"hopsim/hop_core"
	"hopsim/hop_schedules"
)

// Memory is a Hopfield associative memory: a set of stored bipolar
// patterns and the Hebbian weight matrix built from them. The matrix is
// symmetric with a zero diagonal and is rebuilt from scratch whenever a
// pattern is stored.
type Memory struct {
	patterns [][]int
	weights  [][]float64
	n        int
}

func NewMemory(patterns [][]int) (*Memory, error) {
	if len(patterns) == 0 {
		return nil, &InvalidPatternError{Reason: "pattern set is empty"}
	}
	n := len(patterns[0])
	if n == 0 {
		return nil, &InvalidPatternError{Reason: "patterns have zero length"}
	}
	m := &Memory{n: n}
	for i, p := range patterns {
		if err := m.validatePattern(i, p); err != nil {
			return nil, err
		}
		m.patterns = append(m.patterns, hop_core.CopyState(p))
	}
	m.rebuildWeights()
	return m, nil
}

func (m *Memory) validatePattern(index int, p []int) error {
	if len(p) != m.n {
		return &InvalidPatternError{Reason: fmt.Sprintf("pattern %d has length %d, want %d", index, len(p), m.n)}
	}
	for j, v := range p {
		if !hop_core.IsBipolar(v) {
			return &InvalidPatternError{Reason: fmt.Sprintf("pattern %d unit %d has non-bipolar value %d", index, j, v)}
		}
	}
	return nil
}

// StorePattern adds one more pattern and recomputes the full weight matrix.
func (m *Memory) StorePattern(p []int) error {
	if err := m.validatePattern(len(m.patterns), p); err != nil {
		return err
	}
	m.patterns = append(m.patterns, hop_core.CopyState(p))
	m.rebuildWeights()
	return nil
}

// rebuildWeights applies the Hebbian rule W[i][j] = (1/n) * sum_p p_i*p_j
// with a forced zero diagonal.
func (m *Memory) rebuildWeights() {
	w := make([][]float64, m.n)
	for i := range w {
		w[i] = make([]float64, m.n)
	}
	for _, p := range m.patterns {
		for i := 0; i < m.n; i++ {
			for j := 0; j < m.n; j++ {
				if i == j {
					continue
				}
				w[i][j] += float64(p[i]*p[j]) / float64(m.n)
			}
		}
	}
	m.weights = w
}

func (m *Memory) N() int {
	return m.n
}

func (m *Memory) PatternCount() int {
	return len(m.patterns)
}

// Pattern returns a copy of the stored pattern at index.
func (m *Memory) Pattern(index int) []int {
	return hop_core.CopyState(m.patterns[index])
}

// Weights exposes the weight matrix for energy checks and inspection.
// Callers must not mutate it.
func (m *Memory) Weights() [][]float64 {
	return m.weights
}

// RecallResult is the settled outcome of one retrieval.
type RecallResult struct {
	State []int
	// Passes counts full update passes that changed at least one unit, so
	// a probe that is already a fixed point reports zero.
	Passes      int
	Converged   bool
	EnergyTrace []float64
}

// Recall runs full update passes over a copy of the probe until a pass
// changes nothing or the pass budget runs out. The energy trace holds the
// energy of the initial state and of the state after every changing pass.
func (m *Memory) Recall(probe []int, maxIterations int, schedule hop_schedules.UpdateScheduler) (RecallResult, error) {
	if len(probe) != m.n {
		return RecallResult{}, &DimensionMismatchError{Want: m.n, Got: len(probe)}
	}
	if maxIterations < 1 {
		return RecallResult{}, fmt.Errorf("maxIterations must be at least 1, got %d", maxIterations)
	}

	state := hop_core.CopyState(probe)
	trace := []float64{hop_core.Energy(m.weights, state)}
	passes := 0
	converged := false
	for iteration := 0; iteration < maxIterations; iteration++ {
		changed := schedule.UpdatePass(m.weights, state)
		if changed == 0 {
			converged = true
			break
		}
		passes++
		trace = append(trace, hop_core.Energy(m.weights, state))
	}

	return RecallResult{
		State:       state,
		Passes:      passes,
		Converged:   converged,
		EnergyTrace: trace,
	}, nil
}
