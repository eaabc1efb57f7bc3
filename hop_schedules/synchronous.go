package hop_schedules

import "hopsim/hop_core"

// SynchronousSchedule refreshes every unit from the same snapshot of the
// state, the way the original demo script does. A zero local field keeps
// the previous value.
type SynchronousSchedule struct{}

func (SynchronousSchedule) UpdatePass(weights [][]float64, state []int) int {
	n := len(state)
	next := make([]int, n)
	for i := 0; i < n; i++ {
		field := hop_core.LocalField(n, weights[i], state)
		next[i] = hop_core.SignWithPrevious(field, state[i])
	}

	changed := 0
	for i := 0; i < n; i++ {
		if next[i] != state[i] {
			changed++
		}
		state[i] = next[i]
	}
	return changed
}

func (SynchronousSchedule) Name() string {
	return "SYNCHRONOUS"
}
