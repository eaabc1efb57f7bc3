package ocat

import (
	"math/rand"
	"testing"
	"time"
)

// Single feature, positives at and above 5. One threshold separates the
// classes perfectly.
func separableData() ([][]float64, []int) {
	data := [][]float64{
		{1}, {2}, {3}, {4},
		{5}, {6}, {7}, {8},
	}
	return data, []int{4, 5, 6, 7}
}

func TestObservedValuesSortedDistinct(t *testing.T) {
	data := [][]float64{
		{3, 1},
		{1, 1},
		{3, 2},
	}
	cutpoints := ObservedValues(data)
	if len(cutpoints) != 2 {
		t.Fatalf("got %d columns, want 2", len(cutpoints))
	}
	wantFirst := []float64{1, 3}
	if len(cutpoints[0]) != 2 || cutpoints[0][0] != wantFirst[0] || cutpoints[0][1] != wantFirst[1] {
		t.Errorf("column 0: got %v, want %v", cutpoints[0], wantFirst)
	}
	wantSecond := []float64{1, 2}
	if len(cutpoints[1]) != 2 || cutpoints[1][0] != wantSecond[0] || cutpoints[1][1] != wantSecond[1] {
		t.Errorf("column 1: got %v, want %v", cutpoints[1], wantSecond)
	}
}

func TestBinarizeHandExample(t *testing.T) {
	data := [][]float64{{1}, {2}, {3}}
	cutpoints := ObservedValues(data)
	bin := Binarize(data, cutpoints)

	// Terms are (x>=1), (x>=2), (x>=3), each over the three rows.
	want := [][]int{
		{1, 1, 1},
		{0, 1, 1},
		{0, 0, 1},
	}
	if len(bin) != len(want) {
		t.Fatalf("got %d terms, want %d", len(bin), len(want))
	}
	for ti := range want {
		for row := range want[ti] {
			if bin[ti][row] != want[ti][row] {
				t.Errorf("term %d row %d: got %d, want %d", ti, row, bin[ti][row], want[ti][row])
			}
		}
	}
}

func TestMineSeparatesPerfectly(t *testing.T) {
	data, positiveIndices := separableData()
	// A tiny top fraction makes the greedy pick deterministic.
	model, err := Mine(data, positiveIndices, 0.05, 5*time.Second, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if model.Status != "FINISHED" {
		t.Fatalf("got status %s, want FINISHED", model.Status)
	}
	if len(model.Clauses) == 0 {
		t.Fatal("model has no clauses")
	}

	positive := make(map[int]bool)
	for _, rowIndex := range positiveIndices {
		positive[rowIndex] = true
	}
	for rowIndex, row := range data {
		if got := model.Evaluate(row); got != positive[rowIndex] {
			t.Errorf("row %d: got %v, want %v", rowIndex, got, positive[rowIndex])
		}
	}
}

func TestMineCoversEveryPositive(t *testing.T) {
	// Noisier two feature table, still consistent labels.
	data := [][]float64{
		{1, 9}, {2, 8}, {3, 9}, {2, 7},
		{7, 2}, {8, 1}, {6, 3}, {9, 2},
	}
	positiveIndices := []int{4, 5, 6, 7}

	model, err := Mine(data, positiveIndices, 0.3, 5*time.Second, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}
	for _, rowIndex := range positiveIndices {
		if !model.Evaluate(data[rowIndex]) {
			t.Errorf("positive row %d is not covered by the model", rowIndex)
		}
	}
}

func TestScoreOnSeparableData(t *testing.T) {
	data, positiveIndices := separableData()
	model, err := Mine(data, positiveIndices, 0.05, 5*time.Second, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatal(err)
	}

	score := model.Score(data, positiveIndices)
	if score.Accuracy != 1 {
		t.Errorf("got accuracy %f, want 1", score.Accuracy)
	}
	if score.TruePositives != 4 || score.TrueNegatives != 4 {
		t.Errorf("got TP=%d TN=%d, want 4 and 4", score.TruePositives, score.TrueNegatives)
	}
	if score.FalsePositives != 0 || score.FalseNegatives != 0 {
		t.Errorf("got FP=%d FN=%d, want 0 and 0", score.FalsePositives, score.FalseNegatives)
	}
}

func TestMineValidation(t *testing.T) {
	localRand := rand.New(rand.NewSource(3))
	data, positiveIndices := separableData()

	if _, err := Mine(nil, nil, 0.2, time.Second, localRand); err == nil {
		t.Error("expected an error for an empty table")
	}
	if _, err := Mine(data, positiveIndices, 0, time.Second, localRand); err == nil {
		t.Error("expected an error for a zero top fraction")
	}
	if _, err := Mine(data, positiveIndices, 1.5, time.Second, localRand); err == nil {
		t.Error("expected an error for a top fraction above 1")
	}
	if _, err := Mine(data, nil, 0.2, time.Second, localRand); err == nil {
		t.Error("expected an error with no positive examples")
	}
}

func TestRulesRendering(t *testing.T) {
	data, positiveIndices := separableData()
	model, err := Mine(data, positiveIndices, 0.05, 5*time.Second, rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatal(err)
	}

	rules := model.Rules([]string{"dose"})
	if len(rules) != len(model.Clauses) {
		t.Fatalf("got %d rules, want %d", len(rules), len(model.Clauses))
	}
	for _, rule := range rules {
		if len(rule) == 0 {
			t.Error("empty rule rendered")
		}
		for _, test := range rule {
			if len(test) < len("dose>=") {
				t.Errorf("rule test %q looks malformed", test)
			}
		}
	}
}
