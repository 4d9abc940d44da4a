// Package constraints provides constructor helpers for inequality
// constraints. Every constructed function follows the engine's signed
// violation convention: g(x) <= 0 satisfied, g(x) > 0 violated by that
// magnitude.
package constraints

import (
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// UpperBound creates a constraint keeping expr(x) at or below limit.
// The violation is expr(x) - limit.
func UpperBound(limit float64, expr func(framework.Assignment) float64) framework.ConstraintFunc {
	return func(a framework.Assignment) float64 {
		return expr(a) - limit
	}
}

// LowerBound creates a constraint keeping expr(x) at or above limit.
// The violation is limit - expr(x).
func LowerBound(limit float64, expr func(framework.Assignment) float64) framework.ConstraintFunc {
	return func(a framework.Assignment) float64 {
		return limit - expr(a)
	}
}

// Range creates a constraint keeping expr(x) inside [low, high]. The
// violation is the distance to the nearer bound when outside, otherwise
// the (negative) distance to the nearer bound when inside.
func Range(low, high float64, expr func(framework.Assignment) float64) framework.ConstraintFunc {
	return func(a framework.Assignment) float64 {
		v := expr(a)
		below := low - v
		above := v - high
		if below > above {
			return below
		}
		return above
	}
}

// FromPredicate adapts a boolean feasibility check into the signed
// convention: a passing predicate reports -magnitude, a failing one
// +magnitude. All failures look equally bad, so gradient-aware constructors
// are preferable when a magnitude can be computed.
func FromPredicate(pred func(framework.Assignment) bool, magnitude float64) framework.ConstraintFunc {
	return func(a framework.Assignment) float64 {
		if pred(a) {
			return -magnitude
		}
		return magnitude
	}
}

// Combine folds multiple constraints into one by reporting the worst
// violation. The combined constraint is satisfied only when every member is.
func Combine(constraints ...framework.ConstraintFunc) framework.ConstraintFunc {
	return func(a framework.Assignment) float64 {
		worst := 0.0
		first := true
		for _, c := range constraints {
			v := c(a)
			if first || v > worst {
				worst = v
				first = false
			}
		}
		return worst
	}
}
