package experiments

import (
	"math"
	"math/rand"
	"testing"
)

func TestMontyHallSwitchBeatsStaying(t *testing.T) {
	localRand := rand.New(rand.NewSource(42))
	runs := 20000

	stayRate := MontyHallSeries(runs, false, localRand)
	switchRate := MontyHallSeries(runs, true, localRand)

	if math.Abs(stayRate-1.0/3.0) > 0.02 {
		t.Errorf("stay rate %f is far from 1/3", stayRate)
	}
	if math.Abs(switchRate-2.0/3.0) > 0.02 {
		t.Errorf("switch rate %f is far from 2/3", switchRate)
	}
}

func TestLightbulbDegenerateProbabilities(t *testing.T) {
	localRand := rand.New(rand.NewSource(1))

	if !LightbulbSurvives(100, 0, localRand) {
		t.Error("a bulb that cannot fail must survive")
	}
	if LightbulbSurvives(100, 1, localRand) {
		t.Error("a bulb that always fails must not survive")
	}
	if rate := LightbulbSeries(50, 10, 0, localRand); rate != 1 {
		t.Errorf("got survival rate %f with zero failure probability, want 1", rate)
	}
}

func TestLightbulbSeriesTracksTheory(t *testing.T) {
	localRand := rand.New(rand.NewSource(8))
	lifespan := 200
	failureProbability := 0.005

	observed := LightbulbSeries(20000, lifespan, failureProbability, localRand)
	theoretical := TheoreticalSurvivability(lifespan, failureProbability)
	if math.Abs(observed-theoretical) > 0.03 {
		t.Errorf("observed %f is far from theoretical %f", observed, theoretical)
	}
}

func TestFitFailureProbabilityInvertsTheModel(t *testing.T) {
	lifespan := 365
	failureProbability := 0.004
	survivability := TheoreticalSurvivability(lifespan, failureProbability)

	fitted, err := FitFailureProbability(lifespan, survivability)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(fitted-failureProbability) > 1e-9 {
		t.Errorf("got fitted probability %f, want %f", fitted, failureProbability)
	}

	if _, err := FitFailureProbability(lifespan, 0); err == nil {
		t.Error("expected an error for zero survivability")
	}
	if _, err := FitFailureProbability(lifespan, 1.5); err == nil {
		t.Error("expected an error for survivability above 1")
	}
}

func TestSimulateFernGrowth(t *testing.T) {
	localRand := rand.New(rand.NewSource(3))
	iterations := 5000
	points := SimulateFernGrowth(iterations, 0, 0, 0, localRand)

	if len(points) != iterations {
		t.Fatalf("got %d points, want %d", len(points), iterations)
	}
	for i, p := range points {
		if p.X < -5 || p.X > 5 || p.Y < -1 || p.Y > 12 {
			t.Fatalf("point %d (%f, %f) escaped the attractor region", i, p.X, p.Y)
		}
	}
}
