package benchmarks

import (
	"math"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// NewZDT1 builds the ZDT1 problem over numVars variables in [0,1]. Its Pareto
// front is convex: f2 = 1 - sqrt(f1).
func NewZDT1(numVars int) Benchmark {
	f1 := func(a framework.Assignment) float64 {
		return a[varID(0)].Number
	}
	f2 := func(a framework.Assignment) float64 {
		x := vector(a, numVars)
		g := 1.0
		for i := 1; i < len(x); i++ {
			g += 9.0 * x[i] / float64(len(x)-1)
		}
		h := 1.0 - math.Sqrt(x[0]/g)
		return g * h
	}

	return Benchmark{
		Problem: &framework.Problem{
			Name:           "ZDT1",
			Variables:      continuousVars(numVars, 0, 1),
			ObjectiveNames: []string{"f1", "f2"},
			Objectives:     []framework.ObjectiveFunc{f1, f2},
		},
		TrueFront: func(numPoints int) []framework.ObjectiveSpacePoint {
			points := make([]framework.ObjectiveSpacePoint, numPoints)
			for i := 0; i < numPoints; i++ {
				x := float64(i) / float64(numPoints-1)
				points[i] = framework.ObjectiveSpacePoint{x, 1.0 - math.Sqrt(x)}
			}
			return points
		},
	}
}
