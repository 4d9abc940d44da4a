package benchmarks

import (
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// NewSchaffer builds Schaffer's bi-sphere problem: minimize f1 = x^2 and
// f2 = (x-2)^2 over a single variable x in [-5, 5]. The true Pareto set is
// x in [0, 2], making it the canonical smoke test for front coverage.
func NewSchaffer() Benchmark {
	f1 := func(a framework.Assignment) float64 {
		x := a[varID(0)].Number
		return x * x
	}
	f2 := func(a framework.Assignment) float64 {
		x := a[varID(0)].Number
		return (x - 2) * (x - 2)
	}

	return Benchmark{
		Problem: &framework.Problem{
			Name:           "Schaffer",
			Variables:      continuousVars(1, -5, 5),
			ObjectiveNames: []string{"f1", "f2"},
			Objectives:     []framework.ObjectiveFunc{f1, f2},
		},
		TrueFront: func(numPoints int) []framework.ObjectiveSpacePoint {
			points := make([]framework.ObjectiveSpacePoint, numPoints)
			for i := 0; i < numPoints; i++ {
				x := 2 * float64(i) / float64(numPoints-1)
				points[i] = framework.ObjectiveSpacePoint{x * x, (x - 2) * (x - 2)}
			}
			return points
		},
	}
}
