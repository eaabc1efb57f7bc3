package hop_core

import "math/rand"

// LocalField computes the weighted input of unit i given the current state.
func LocalField(n int, w_i []float64, state []int) float64 {
	field := 0.0
	for j := 0; j < n; j++ {
		field += w_i[j] * float64(state[j])
	}
	return field
}

// SignWithPrevious maps a local field to a bipolar value. A field of exactly
// zero keeps the previous value, so a settled unit is never perturbed.
func SignWithPrevious(field float64, previous int) int {
	if field > 0 {
		return 1
	}
	if field < 0 {
		return -1
	}
	return previous
}

// Energy of a state under a weight matrix: E = -1/2 * sum_ij W[i][j]*s_i*s_j.
func Energy(weights [][]float64, state []int) float64 {
	n := len(state)
	e := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e += weights[i][j] * float64(state[i]) * float64(state[j])
		}
	}
	return -0.5 * e
}

func HammingDistance(a []int, b []int) int {
	distance := 0
	for i := range a {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance
}

// BitAccuracy is the fraction of matching units between two states of equal length.
func BitAccuracy(a []int, b []int) float64 {
	if len(a) == 0 {
		return 0
	}
	return float64(len(a)-HammingDistance(a, b)) / float64(len(a))
}

func CopyState(state []int) []int {
	copied := make([]int, len(state))
	copy(copied, state)
	return copied
}

func IsBipolar(v int) bool {
	return v == 1 || v == -1
}

// FlattenBitmap turns a 2D bitmap into the flat unit vector the network operates on.
func FlattenBitmap(bitmap [][]int) []int {
	flat := make([]int, 0, len(bitmap)*len(bitmap[0]))
	for _, row := range bitmap {
		flat = append(flat, row...)
	}
	return flat
}

// CreateRandomBipolarVector draws a uniform random state of length n.
func CreateRandomBipolarVector(n int, localRand *rand.Rand) []int {
	v := make([]int, n)
	for i := 0; i < n; i++ {
		v[i] = localRand.Intn(2)*2 - 1
	}
	return v
}
