package ocat

import (
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// Term is one binarized attribute test. Index points into the flat list of
// (column, cutpoint) pairs; non-negated means value >= cutpoint, negated
// means value < cutpoint.
type Term struct {
	Index   int
	Negated bool
}

// Clause is a disjunction of terms; the mined model is a conjunction of
// clauses, each of which holds for every positive training example.
type Clause []Term

type Model struct {
	Clauses   []Clause
	Cutpoints [][]float64
	Status    string // FINISHED or LIMIT_REACHED
}

// ObservedValues collects the sorted distinct values of each column; these
// become the binarization cutpoints.
func ObservedValues(data [][]float64) [][]float64 {
	columns := len(data[0])
	cutpoints := make([][]float64, columns)
	for col := 0; col < columns; col++ {
		seen := make(map[float64]bool)
		for _, row := range data {
			seen[row[col]] = true
		}
		values := make([]float64, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Float64s(values)
		cutpoints[col] = values
	}
	return cutpoints
}

// Binarize expands the numeric table into a term-major 0/1 matrix:
// bin[t][row] is 1 when the row's value in term t's column reaches the
// term's cutpoint.
func Binarize(data [][]float64, cutpoints [][]float64) [][]int {
	var bin [][]int
	for col := range cutpoints {
		for _, cutpoint := range cutpoints[col] {
			termRow := make([]int, len(data))
			for rowIndex, row := range data {
				if row[col] >= cutpoint {
					termRow[rowIndex] = 1
				}
			}
			bin = append(bin, termRow)
		}
	}
	return bin
}

// termColumns maps every flat term index back to its source column and
// cutpoint.
func termColumns(cutpoints [][]float64) ([]int, []float64) {
	var columns []int
	var values []float64
	for col := range cutpoints {
		for _, cutpoint := range cutpoints[col] {
			columns = append(columns, col)
			values = append(values, cutpoint)
		}
	}
	return columns, values
}

func termHolds(bin [][]int, term Term, row int) bool {
	if term.Negated {
		return bin[term.Index][row] == 0
	}
	return bin[term.Index][row] == 1
}

type scoredTerm struct {
	term    Term
	covered int
	fitness int
}

// Mine runs the one-clause-at-a-time search: it greedily assembles clauses
// that cover every remaining positive example, keeping a clause whenever it
// rules out at least one more negative example, until all negatives are
// ruled out or the time budget expires. Candidate terms are ranked by the
// product of positives covered and negatives excluded, and one of the top
// topFraction candidates is chosen at random.
func Mine(data [][]float64, positiveIndices []int, topFraction float64, maxDuration time.Duration, localRand *rand.Rand) (*Model, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("data table is empty")
	}
	if topFraction <= 0 || topFraction > 1 {
		return nil, fmt.Errorf("top fraction must be in (0,1], got %f", topFraction)
	}

	cutpoints := ObservedValues(data)
	bin := Binarize(data, cutpoints)

	positive := make(map[int]bool, len(positiveIndices))
	for _, rowIndex := range positiveIndices {
		positive[rowIndex] = true
	}
	var positiveRows, activeNeg []int
	for rowIndex := range data {
		if positive[rowIndex] {
			positiveRows = append(positiveRows, rowIndex)
		} else {
			activeNeg = append(activeNeg, rowIndex)
		}
	}
	if len(positiveRows) == 0 {
		return nil, fmt.Errorf("no positive examples")
	}

	model := &Model{Cutpoints: cutpoints, Status: "FINISHED"}
	startTime := time.Now()

	for len(activeNeg) > 0 {
		activePos := append([]int(nil), positiveRows...)
		var clause Clause

		for len(activePos) > 0 {
			candidates := rankTerms(bin, activePos, activeNeg)
			m := int(float64(len(candidates)) * topFraction)
			if m < 1 {
				m = 1
			}
			selected := candidates[localRand.Intn(m)].term
			clause = append(clause, selected)

			var uncovered []int
			for _, rowIndex := range activePos {
				if !termHolds(bin, selected, rowIndex) {
					uncovered = append(uncovered, rowIndex)
				}
			}
			activePos = uncovered
		}

		// A negative example is ruled out when every term of the clause is
		// false for it.
		var remaining []int
		excluded := 0
		for _, rowIndex := range activeNeg {
			ruledOut := true
			for _, term := range clause {
				if termHolds(bin, term, rowIndex) {
					ruledOut = false
					break
				}
			}
			if ruledOut {
				excluded++
			} else {
				remaining = append(remaining, rowIndex)
			}
		}
		if excluded > 0 {
			model.Clauses = append(model.Clauses, clause)
			activeNeg = remaining
			fmt.Printf("Added clause %d, %d negative examples remain\n", len(model.Clauses), len(activeNeg))
		}

		if time.Since(startTime) > maxDuration {
			model.Status = "LIMIT_REACHED"
			break
		}
	}

	return model, nil
}

// rankTerms scores every term against the still-uncovered positives and the
// still-active negatives, best first. Terms covering no positives are
// dropped so a clause always makes progress.
func rankTerms(bin [][]int, activePos []int, activeNeg []int) []scoredTerm {
	var candidates []scoredTerm
	for index := range bin {
		for _, negated := range [2]bool{false, true} {
			term := Term{Index: index, Negated: negated}
			covered := 0
			for _, rowIndex := range activePos {
				if termHolds(bin, term, rowIndex) {
					covered++
				}
			}
			if covered == 0 {
				continue
			}
			negHolds := 0
			for _, rowIndex := range activeNeg {
				if termHolds(bin, term, rowIndex) {
					negHolds++
				}
			}
			candidates = append(candidates, scoredTerm{
				term:    term,
				covered: covered,
				fitness: covered * (len(activeNeg) - negHolds),
			})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].fitness > candidates[j].fitness
	})
	return candidates
}

// Evaluate applies the model to a raw feature vector: every clause must
// have at least one satisfied term.
func (m *Model) Evaluate(instance []float64) bool {
	columns, values := termColumns(m.Cutpoints)
	for _, clause := range m.Clauses {
		satisfied := false
		for _, term := range clause {
			value := instance[columns[term.Index]]
			cutpoint := values[term.Index]
			if term.Negated {
				if value < cutpoint {
					satisfied = true
				}
			} else {
				if value >= cutpoint {
					satisfied = true
				}
			}
			if satisfied {
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// ScoreResult summarizes the model's performance over a labeled table.
type ScoreResult struct {
	Accuracy       float64
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
}

// Score evaluates every row of a labeled table against the model.
func (m *Model) Score(data [][]float64, positiveIndices []int) ScoreResult {
	positive := make(map[int]bool, len(positiveIndices))
	for _, rowIndex := range positiveIndices {
		positive[rowIndex] = true
	}

	var result ScoreResult
	for rowIndex, row := range data {
		predicted := m.Evaluate(row)
		switch {
		case predicted && positive[rowIndex]:
			result.TruePositives++
		case predicted && !positive[rowIndex]:
			result.FalsePositives++
		case !predicted && positive[rowIndex]:
			result.FalseNegatives++
		default:
			result.TrueNegatives++
		}
	}
	if len(data) > 0 {
		result.Accuracy = float64(result.TruePositives+result.TrueNegatives) / float64(len(data))
	}
	return result
}

// Rules renders the model as human readable threshold tests, one string
// list per clause.
func (m *Model) Rules(attributeNames []string) [][]string {
	columns, values := termColumns(m.Cutpoints)
	rules := make([][]string, 0, len(m.Clauses))
	for _, clause := range m.Clauses {
		rule := make([]string, 0, len(clause))
		for _, term := range clause {
			label := fmt.Sprintf("x%d", columns[term.Index])
			if columns[term.Index] < len(attributeNames) {
				label = attributeNames[columns[term.Index]]
			}
			if term.Negated {
				rule = append(rule, fmt.Sprintf("%s<%g", label, values[term.Index]))
			} else {
				rule = append(rule, fmt.Sprintf("%s>=%g", label, values[term.Index]))
			}
		}
		sort.Strings(rule)
		rules = append(rules, rule)
	}
	return rules
}
