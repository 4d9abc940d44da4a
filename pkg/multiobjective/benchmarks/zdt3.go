package benchmarks

import (
	"math"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// NewZDT3 builds the ZDT3 problem over numVars variables in [0,1]. The sin
// term disconnects its Pareto front, exercising diversity preservation across
// gaps.
func NewZDT3(numVars int) Benchmark {
	f1 := func(a framework.Assignment) float64 {
		return a[varID(0)].Number
	}
	f2 := func(a framework.Assignment) float64 {
		x := vector(a, numVars)
		g := 1.0
		for i := 1; i < len(x); i++ {
			g += 9.0 * x[i] / float64(len(x)-1)
		}
		h := 1.0 - math.Sqrt(x[0]/g) - (x[0]/g)*math.Sin(10*math.Pi*x[0])
		return g * h
	}

	return Benchmark{
		Problem: &framework.Problem{
			Name:           "ZDT3",
			Variables:      continuousVars(numVars, 0, 1),
			ObjectiveNames: []string{"f1", "f2"},
			Objectives:     []framework.ObjectiveFunc{f1, f2},
		},
		TrueFront: func(numPoints int) []framework.ObjectiveSpacePoint {
			// Sampling the whole [0,1] range keeps the disconnected shape
			// visible; dominated stretches are part of the curve, not the
			// front, but plotting them is how the gaps read clearly.
			points := make([]framework.ObjectiveSpacePoint, numPoints)
			for i := 0; i < numPoints; i++ {
				x := float64(i) / float64(numPoints-1)
				f2 := 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
				points[i] = framework.ObjectiveSpacePoint{x, f2}
			}
			return points
		},
	}
}
