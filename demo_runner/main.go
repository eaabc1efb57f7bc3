package main

import (
	"flag"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"hopsim/experiments"
	"hopsim/hop_memory"
	"hopsim/hop_noise"
	"hopsim/hop_patterns"
	"hopsim/hop_schedules"
	"hopsim/ocat"
)

func banner(title string) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))
}

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	localRand := rand.New(rand.NewSource(*seed))
	fmt.Println("Demo runner, seed:", *seed)

	runMontyHall(localRand)
	runLightbulbs(localRand)
	runFern(localRand)
	runHopfieldLadder(localRand)
	runRuleMining(localRand)
}

func runMontyHall(localRand *rand.Rand) {
	banner("MONTY HALL")
	runs := 100000
	stayRate := experiments.MontyHallSeries(runs, false, localRand)
	switchRate := experiments.MontyHallSeries(runs, true, localRand)
	fmt.Printf("%d shows each\n", runs)
	fmt.Printf("win rate staying:   %.4f\n", stayRate)
	fmt.Printf("win rate switching: %.4f\n", switchRate)
}

func runLightbulbs(localRand *rand.Rand) {
	banner("LIGHTBULBS")
	lifespan := 365
	failureProbability := 0.003
	runs := 20000

	observed := experiments.LightbulbSeries(runs, lifespan, failureProbability, localRand)
	theoretical := experiments.TheoreticalSurvivability(lifespan, failureProbability)
	fmt.Printf("%d bulbs, %d days, daily failure probability %.4f\n", runs, lifespan, failureProbability)
	fmt.Printf("observed survival:    %.4f\n", observed)
	fmt.Printf("theoretical survival: %.4f\n", theoretical)

	fitted, err := experiments.FitFailureProbability(lifespan, observed)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("fitted daily failure probability: %.5f\n", fitted)
}

func runFern(localRand *rand.Rand) {
	banner("BARNSLEY FERN")
	points := experiments.SimulateFernGrowth(50000, 0, 0, 0.002, localRand)

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	fmt.Printf("%d points generated\n", len(points))
	fmt.Printf("bounding box x: [%.3f, %.3f]  y: [%.3f, %.3f]\n", minX, maxX, minY, maxY)
	fmt.Print(renderPointCloud(points, 24, 48))
}

// renderPointCloud draws a coarse terminal raster of the cloud, y growing
// upward. A cloud with no spread on either axis renders as nothing.
func renderPointCloud(points []experiments.FernPoint, rows int, cols int) string {
	if len(points) == 0 {
		return ""
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	if maxX == minX || maxY == minY {
		return ""
	}

	grid := make([][]bool, rows)
	for i := range grid {
		grid[i] = make([]bool, cols)
	}
	for _, p := range points {
		col := int((p.X - minX) / (maxX - minX) * float64(cols-1))
		row := rows - 1 - int((p.Y-minY)/(maxY-minY)*float64(rows-1))
		grid[row][col] = true
	}

	var b strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if grid[i][j] {
				b.WriteString("*")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func runHopfieldLadder(localRand *rand.Rand) {
	banner("HOPFIELD LETTER RECALL")

	letters := []string{"A", "T", "O", "U"}
	patterns := make([][]int, 0, len(letters))
	for _, letter := range letters {
		p, err := hop_patterns.ByName(letter)
		if err != nil {
			fmt.Println(err)
			return
		}
		patterns = append(patterns, p)
	}

	memory, err := hop_memory.NewMemory(patterns)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("stored %d letters of %d units each\n", memory.PatternCount(), memory.N())

	schedule := hop_schedules.AsynchronousSchedule{}
	corruptor := hop_noise.FlipCorruptor{}
	trials := 200
	maxPasses := 50

	fmt.Println("noise level -> exact recall rate over", trials, "trials")
	for _, noiseLevel := range []float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5} {
		accuracy, err := memory.MeasureRecallAccuracy(noiseLevel, trials, maxPasses, corruptor, schedule, localRand)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("  %.1f -> %.3f\n", noiseLevel, accuracy)
	}

	// One traced recall to show the energy descent.
	target, _ := hop_patterns.ByName("A")
	probe := corruptor.Corrupt(target, 0.25, localRand)
	result, err := memory.Recall(probe, maxPasses, schedule)
	if err != nil {
		fmt.Println(err)
		return
	}
	predicted, bitAccuracy := memory.Nearest(result.State)
	fmt.Printf("traced recall of A at noise 0.25: %d passes, converged=%v\n", result.Passes, result.Converged)
	fmt.Printf("predicted letter: %s (bit accuracy %.3f)\n", letters[predicted], bitAccuracy)
	fmt.Printf("energy trace: %.2f -> %.2f\n", result.EnergyTrace[0], result.EnergyTrace[len(result.EnergyTrace)-1])
}

func runRuleMining(localRand *rand.Rand) {
	banner("RULE MINING")

	// Toy screening table: age, systolic pressure, label in the last column.
	table := [][]string{
		{"34", "118", "0"},
		{"41", "121", "0"},
		{"52", "139", "1"},
		{"47", "142", "1"},
		{"61", "151", "1"},
		{"29", "110", "0"},
		{"58", "147", "1"},
		{"38", "125", "0"},
	}
	attributeNames := []string{"age", "systolic"}

	data, positiveIndices, err := ocat.Preprocess(table, 0, false)
	if err != nil {
		fmt.Println(err)
		return
	}

	model, err := ocat.Mine(data, positiveIndices, 0.2, 5*time.Second, localRand)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("mining status:", model.Status)
	for i, rule := range model.Rules(attributeNames) {
		fmt.Printf("clause %d: %s\n", i+1, strings.Join(rule, " OR "))
	}

	score := model.Score(data, positiveIndices)
	fmt.Printf("training accuracy: %.3f (TP=%d FP=%d TN=%d FN=%d)\n",
		score.Accuracy, score.TruePositives, score.FalsePositives, score.TrueNegatives, score.FalseNegatives)
}
