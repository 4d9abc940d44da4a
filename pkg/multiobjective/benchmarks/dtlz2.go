package benchmarks

import (
	"fmt"
	"math"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// NewDTLZ2 builds the DTLZ2 problem with a spherical Pareto front,
// generalizing to numObjectives >= 2. Recommended numVars is
// numObjectives + 9 so the distance function has its standard k = 10
// auxiliary variables.
func NewDTLZ2(numVars, numObjectives int) Benchmark {
	g := func(x []float64) float64 {
		sum := 0.0
		for i := numObjectives - 1; i < numVars; i++ {
			sum += math.Pow(x[i]-0.5, 2)
		}
		return sum
	}

	objective := func(x []float64, objIdx int) float64 {
		f := 1 + g(x)
		for i := 0; i < numObjectives-objIdx-1; i++ {
			f *= math.Cos(x[i] * math.Pi / 2)
		}
		if objIdx > 0 {
			f *= math.Sin(x[numObjectives-objIdx-1] * math.Pi / 2)
		}
		return f
	}

	funcs := make([]framework.ObjectiveFunc, numObjectives)
	names := make([]string, numObjectives)
	for i := 0; i < numObjectives; i++ {
		idx := i // Capture loop variable
		funcs[i] = func(a framework.Assignment) float64 {
			return objective(vector(a, numVars), idx)
		}
		names[i] = fmt.Sprintf("f%d", i+1)
	}

	return Benchmark{
		Problem: &framework.Problem{
			Name:           "DTLZ2",
			Variables:      continuousVars(numVars, 0, 1),
			ObjectiveNames: names,
			Objectives:     funcs,
		},
		TrueFront: func(numPoints int) []framework.ObjectiveSpacePoint {
			// The true front lies on the unit sphere: sum(f_i^2) = 1.
			if numObjectives == 2 {
				points := make([]framework.ObjectiveSpacePoint, numPoints)
				for i := 0; i < numPoints; i++ {
					theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
					points[i] = framework.ObjectiveSpacePoint{
						math.Cos(theta),
						math.Sin(theta),
					}
				}
				return points
			}
			if numObjectives == 3 {
				sqrtN := int(math.Sqrt(float64(numPoints)))
				points := make([]framework.ObjectiveSpacePoint, 0, sqrtN*sqrtN)
				for i := 0; i < sqrtN; i++ {
					theta := (math.Pi / 2) * float64(i) / float64(sqrtN-1)
					for j := 0; j < sqrtN; j++ {
						phi := (math.Pi / 2) * float64(j) / float64(sqrtN-1)
						points = append(points, framework.ObjectiveSpacePoint{
							math.Cos(theta) * math.Cos(phi),
							math.Sin(theta) * math.Cos(phi),
							math.Sin(phi),
						})
					}
				}
				return points
			}
			return nil
		},
	}
}
