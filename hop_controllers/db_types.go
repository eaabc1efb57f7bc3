package hop_controllers

// FinishedCountData holds the count of converged and total sessions per
// schedule/noise-mode group.
type FinishedCountData struct {
	Schedule      string `json:"schedule"`
	NoiseMode     string `json:"noise_mode"`
	NoiseGroup    string `json:"noise_group"`
	FinishedCount int    `json:"finished_count"`
	TotalCount    int    `json:"total_count"`
}

// AccuracyAvgsAndCounts holds the aggregate outcome of all sessions under a
// specific pattern set.
type AccuracyAvgsAndCounts struct {
	AvgBitAccuracy float64 `json:"avg_bit_accuracy"`
	AvgPasses      float64 `json:"avg_passes"`
	TotalCount     int     `json:"total_count"`
	FinishedCount  int     `json:"finished_count"`
}
