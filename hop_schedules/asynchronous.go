package hop_schedules

import "hopsim/hop_core"

// AsynchronousSchedule refreshes units one at a time, each seeing the
// updates already applied earlier in the pass. With a zero diagonal and the
// keep-previous tie break, every single-unit update can only lower the
// network energy, so a pass never raises it.
type AsynchronousSchedule struct{}

func (AsynchronousSchedule) UpdatePass(weights [][]float64, state []int) int {
	n := len(state)
	changed := 0
	for i := 0; i < n; i++ {
		field := hop_core.LocalField(n, weights[i], state)
		v := hop_core.SignWithPrevious(field, state[i])
		if v != state[i] {
			state[i] = v
			changed++
		}
	}
	return changed
}

func (AsynchronousSchedule) Name() string {
	return "ASYNCHRONOUS"
}
