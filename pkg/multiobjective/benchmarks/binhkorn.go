package benchmarks

import (
	"math"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// NewBinhKorn builds the Binh and Korn problem, a constrained benchmark
// with two quadratic objectives over x1 in [0,5], x2 in [0,3]. The
// feasible region is the disk (x1-5)^2 + x2^2 <= 25 minus the disk of
// radius sqrt(7.7) around (8,-3), so constraint handling is required to
// reach the true front.
func NewBinhKorn() Benchmark {
	f1 := func(a framework.Assignment) float64 {
		x := vector(a, 2)
		return 4*x[0]*x[0] + 4*x[1]*x[1]
	}
	f2 := func(a framework.Assignment) float64 {
		x := vector(a, 2)
		return math.Pow(x[0]-5, 2) + math.Pow(x[1]-5, 2)
	}

	// Violations follow the g(x) <= 0 convention: positive means infeasible.
	g1 := func(a framework.Assignment) float64 {
		x := vector(a, 2)
		return math.Pow(x[0]-5, 2) + x[1]*x[1] - 25
	}
	g2 := func(a framework.Assignment) float64 {
		x := vector(a, 2)
		return 7.7 - math.Pow(x[0]-8, 2) - math.Pow(x[1]+3, 2)
	}

	return Benchmark{
		Problem: &framework.Problem{
			Name: "BinhKorn",
			Variables: []framework.Variable{
				framework.NewContinuous(varID(0), 0, 5),
				framework.NewContinuous(varID(1), 0, 3),
			},
			ObjectiveNames:  []string{"f1", "f2"},
			Objectives:      []framework.ObjectiveFunc{f1, f2},
			ConstraintNames: []string{"g1", "g2"},
			Constraints:     []framework.ConstraintFunc{g1, g2},
		},
		TrueFront: func(numPoints int) []framework.ObjectiveSpacePoint {
			// Pareto-optimal solutions satisfy x1 = x2 up to x1 = 3,
			// after which x2 stays pinned at its upper bound.
			points := make([]framework.ObjectiveSpacePoint, numPoints)
			for i := 0; i < numPoints; i++ {
				x1 := 5 * float64(i) / float64(numPoints-1)
				x2 := math.Min(x1, 3)
				points[i] = framework.ObjectiveSpacePoint{
					4*x1*x1 + 4*x2*x2,
					math.Pow(x1-5, 2) + math.Pow(x2-5, 2),
				}
			}
			return points
		},
	}
}
