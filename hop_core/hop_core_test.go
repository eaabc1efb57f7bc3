package hop_core

import (
	"math"
	"math/rand"
	"testing"
)

func TestLocalField(t *testing.T) {
	weights := []float64{0, 0.5, -0.25}
	state := []int{1, 1, -1}
	field := LocalField(3, weights, state)
	if math.Abs(field-0.75) > 1e-9 {
		t.Errorf("got field %f, want 0.75", field)
	}
}

func TestSignWithPrevious(t *testing.T) {
	if got := SignWithPrevious(0.3, -1); got != 1 {
		t.Errorf("positive field: got %d, want 1", got)
	}
	if got := SignWithPrevious(-0.3, 1); got != -1 {
		t.Errorf("negative field: got %d, want -1", got)
	}
	if got := SignWithPrevious(0, -1); got != -1 {
		t.Errorf("zero field must keep previous value: got %d, want -1", got)
	}
	if got := SignWithPrevious(0, 1); got != 1 {
		t.Errorf("zero field must keep previous value: got %d, want 1", got)
	}
}

func TestEnergyHandComputed(t *testing.T) {
	// Two units coupled with weight 1: E = -1/2 * (w01 + w10) * s0*s1.
	weights := [][]float64{
		{0, 1},
		{1, 0},
	}
	aligned := []int{1, 1}
	opposed := []int{1, -1}
	if e := Energy(weights, aligned); math.Abs(e-(-1)) > 1e-9 {
		t.Errorf("aligned energy: got %f, want -1", e)
	}
	if e := Energy(weights, opposed); math.Abs(e-1) > 1e-9 {
		t.Errorf("opposed energy: got %f, want 1", e)
	}
}

func TestHammingDistanceAndBitAccuracy(t *testing.T) {
	a := []int{1, 1, -1, -1}
	b := []int{1, -1, -1, 1}
	if d := HammingDistance(a, b); d != 2 {
		t.Errorf("got distance %d, want 2", d)
	}
	if acc := BitAccuracy(a, b); math.Abs(acc-0.5) > 1e-9 {
		t.Errorf("got accuracy %f, want 0.5", acc)
	}
	if acc := BitAccuracy(a, a); acc != 1 {
		t.Errorf("self accuracy: got %f, want 1", acc)
	}
}

func TestCopyStateIsIndependent(t *testing.T) {
	original := []int{1, -1, 1}
	copied := CopyState(original)
	copied[0] = -1
	if original[0] != 1 {
		t.Error("mutating the copy changed the original")
	}
}

func TestFlattenBitmap(t *testing.T) {
	bitmap := [][]int{
		{1, -1},
		{-1, 1},
	}
	flat := FlattenBitmap(bitmap)
	want := []int{1, -1, -1, 1}
	if len(flat) != len(want) {
		t.Fatalf("got length %d, want %d", len(flat), len(want))
	}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("unit %d: got %d, want %d", i, flat[i], want[i])
		}
	}
}

func TestCreateRandomBipolarVector(t *testing.T) {
	localRand := rand.New(rand.NewSource(7))
	v := CreateRandomBipolarVector(100, localRand)
	if len(v) != 100 {
		t.Fatalf("got length %d, want 100", len(v))
	}
	for i, unit := range v {
		if !IsBipolar(unit) {
			t.Errorf("unit %d has non-bipolar value %d", i, unit)
		}
	}
}
