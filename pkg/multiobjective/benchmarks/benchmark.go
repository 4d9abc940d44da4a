// Package benchmarks carries the standard test problems used to validate the
// engine against fronts with known shape: convex, disconnected, spherical and
// constrained.
package benchmarks

import (
	"fmt"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// Benchmark pairs a problem definition with its analytically known Pareto
// front. TrueFront may return nil for problems whose front has no closed
// form.
type Benchmark struct {
	Problem   *framework.Problem
	TrueFront func(numPoints int) []framework.ObjectiveSpacePoint
}

// Name returns the underlying problem name.
func (b Benchmark) Name() string {
	return b.Problem.Name
}

// varID names benchmark variables x1..xn.
func varID(i int) string {
	return fmt.Sprintf("x%d", i+1)
}

// continuousVars declares n continuous variables sharing one bound.
func continuousVars(n int, min, max float64) []framework.Variable {
	vars := make([]framework.Variable, n)
	for i := range vars {
		vars[i] = framework.NewContinuous(varID(i), min, max)
	}
	return vars
}

// vector extracts the first n benchmark variables as an ordered slice.
func vector(a framework.Assignment, n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = a[varID(i)].Number
	}
	return x
}
