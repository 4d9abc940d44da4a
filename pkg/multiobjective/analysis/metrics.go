// Package analysis provides post-hoc Pareto-front quality metrics:
// hypervolume, spacing, knee-point detection, inverted generational distance
// and convergence tracking.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// DefaultReferenceMargin places the hypervolume reference point 10% worse
// than the worst observed value on each objective.
const DefaultReferenceMargin = 0.1

// FrontPoints materializes a front's objective vectors.
func FrontPoints(front []*framework.Individual) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, len(front))
	for i, ind := range front {
		points[i] = ind.Point()
	}
	return points
}

// ReferencePoint computes a hypervolume reference point margin-worse than the
// worst observed value on each objective. Overflow clamps to the largest
// finite value so sentinel-unfit fronts still produce finite arithmetic.
func ReferencePoint(points []framework.ObjectiveSpacePoint, margin float64) []float64 {
	if len(points) == 0 {
		return nil
	}
	ref := make([]float64, len(points[0]))
	for i := range ref {
		worst := math.Inf(-1)
		for _, p := range points {
			if p[i] > worst {
				worst = p[i]
			}
		}
		r := worst + margin*math.Abs(worst)
		if math.IsInf(r, 0) {
			r = math.MaxFloat64
		}
		ref[i] = r
	}
	return ref
}

// Hypervolume sums, over all front members, the product across objectives of
// max(0, ref_i - obj_i). This is a simplified O(front * objectives)
// approximation: overlapping dominated regions are counted once per member,
// so it is suitable for monitoring a convergence trend, not for
// publication-grade front comparison. Degenerate fronts yield 0, never NaN.
func Hypervolume(points []framework.ObjectiveSpacePoint, ref []float64) float64 {
	if len(points) == 0 || len(ref) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range points {
		vol := 1.0
		for i, r := range ref {
			side := r - p[i]
			if side <= 0 {
				vol = 0
				break
			}
			vol *= side
		}
		total += vol
	}
	return total
}

// Spacing measures front uniformity as the standard deviation of each
// member's nearest-neighbor Euclidean distance in objective space. Lower is
// more uniform. Fronts with fewer than 2 members report 0.
func Spacing(points []framework.ObjectiveSpacePoint) float64 {
	if len(points) < 2 {
		return 0
	}
	nearest := make([]float64, len(points))
	for i, p := range points {
		minDist := math.Inf(1)
		for j, q := range points {
			if i == j {
				continue
			}
			if d := floats.Distance(p, q, 2); d < minDist {
				minDist = d
			}
		}
		nearest[i] = minDist
	}
	sd := stat.StdDev(nearest, nil)
	if math.IsNaN(sd) {
		return 0
	}
	return sd
}

// IGD is the inverted generational distance: the mean Euclidean distance from
// each true-front point to its nearest obtained point. Lower is better.
func IGD(obtained, trueFront []framework.ObjectiveSpacePoint) float64 {
	if len(obtained) == 0 || len(trueFront) == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for _, truePoint := range trueFront {
		minDist := math.Inf(1)
		for _, p := range obtained {
			if d := floats.Distance(truePoint, p, 2); d < minDist {
				minDist = d
			}
		}
		sum += minDist
	}
	return sum / float64(len(trueFront))
}
