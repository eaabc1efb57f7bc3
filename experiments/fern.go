package experiments

import "math/rand"

type FernPoint struct {
	X float64
	Y float64
}

// fernSettlingSteps is how many leading points are discarded so the orbit
// settles into the attractor before collection starts.
const fernSettlingSteps = 20

// NextFernPoint applies one of the Barnsley fern affine maps, chosen with
// the classic probability weights: 1% stem, 85% successive leaflets, 7%
// largest left leaflet, 7% largest right leaflet. The mutation factor jitters
// the leaflet coefficients to mimic organic imperfection.
func NextFernPoint(x float64, y float64, mutationFactor float64, localRand *rand.Rand) (float64, float64) {
	r := localRand.Float64()

	noise := 0.0
	if mutationFactor > 0 {
		noise = (localRand.Float64()*2 - 1) * mutationFactor
	}

	switch {
	case r < 0.01:
		return 0, 0.16 * y
	case r < 0.86:
		nextX := (0.85+noise)*x + (0.04+noise)*y
		nextY := (-0.04+noise)*x + (0.85+noise)*y + 1.6
		return nextX, nextY
	case r < 0.93:
		nextX := 0.2*x - 0.26*y
		nextY := 0.23*x + (0.22+noise)*y + 1.6
		return nextX, nextY
	default:
		nextX := -0.15*x + 0.28*y
		nextY := 0.26*x + 0.24*y + 0.44
		return nextX, nextY
	}
}

// SimulateFernGrowth iterates the function system from a starting point and
// returns the generated point cloud.
func SimulateFernGrowth(iterations int, startX float64, startY float64, mutationFactor float64, localRand *rand.Rand) []FernPoint {
	points := make([]FernPoint, 0, iterations)
	currentX, currentY := startX, startY
	for i := 0; i < iterations+fernSettlingSteps; i++ {
		currentX, currentY = NextFernPoint(currentX, currentY, mutationFactor, localRand)
		if i >= fernSettlingSteps {
			points = append(points, FernPoint{X: currentX, Y: currentY})
		}
	}
	return points
}
