package hop_schedules

// UpdateScheduler decides the order in which units are refreshed during one
// full pass over the network. UpdatePass mutates state in place and returns
// how many units changed value.
type UpdateScheduler interface {
	UpdatePass(weights [][]float64, state []int) int
	Name() string
}
