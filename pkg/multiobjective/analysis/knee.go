package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// KneeAngleThreshold marks a front point as a knee candidate when the angle
// formed with its neighbors drops below 60 degrees.
const KneeAngleThreshold = math.Pi / 3

// MaxKneePoints caps how many knees a report carries.
const MaxKneePoints = 5

// KneePoint is a front solution offering a disproportionately good trade-off.
// Index refers to the analyzed point slice; Angle is the turn angle at the
// point in radians, smaller meaning a sharper knee.
type KneePoint struct {
	Index int
	Angle float64
	Point framework.ObjectiveSpacePoint
}

// KneePoints walks consecutive triples of an ordered front and computes the
// angle at each middle point between the vectors to its neighbors. Points
// turning sharper than KneeAngleThreshold are candidates, ranked by pi-angle
// so the sharpest knees come first, and at most MaxKneePoints are returned.
// Fronts with fewer than 3 points have no interior angles and return nil.
// The input order matters: callers pass fronts sorted along the first
// objective so neighboring indices are neighbors in objective space.
func KneePoints(points []framework.ObjectiveSpacePoint) []KneePoint {
	if len(points) < 3 {
		return nil
	}

	var candidates []KneePoint
	for i := 1; i < len(points)-1; i++ {
		angle, ok := angleAt(points[i-1], points[i], points[i+1])
		if !ok {
			continue
		}
		if angle < KneeAngleThreshold {
			candidates = append(candidates, KneePoint{
				Index: i,
				Angle: angle,
				Point: points[i],
			})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return math.Pi-candidates[i].Angle > math.Pi-candidates[j].Angle
	})
	if len(candidates) > MaxKneePoints {
		candidates = candidates[:MaxKneePoints]
	}
	return candidates
}

// angleAt returns the angle at mid between the vectors to prev and next.
// Degenerate triples with coincident points report no angle.
func angleAt(prev, mid, next framework.ObjectiveSpacePoint) (float64, bool) {
	u := make([]float64, len(mid))
	w := make([]float64, len(mid))
	floats.SubTo(u, prev, mid)
	floats.SubTo(w, next, mid)

	nu := floats.Norm(u, 2)
	nw := floats.Norm(w, 2)
	if nu == 0 || nw == 0 {
		return 0, false
	}

	cos := floats.Dot(u, w) / (nu * nw)
	// Clamp against floating-point drift before acos.
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos), true
}
