package analysis_test

import (
	"math"
	"testing"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/analysis"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

func points(vals ...[]float64) []framework.ObjectiveSpacePoint {
	out := make([]framework.ObjectiveSpacePoint, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

func TestReferencePoint(t *testing.T) {
	testCases := []struct {
		name     string
		points   []framework.ObjectiveSpacePoint
		margin   float64
		expected []float64
	}{
		{
			name:     "MarginAboveWorst",
			points:   points([]float64{1, 4}, []float64{3, 2}),
			margin:   0.1,
			expected: []float64{3.3, 4.4},
		},
		{
			name:     "NegativeWorstMovesUp",
			points:   points([]float64{-2, -4}),
			margin:   0.5,
			expected: []float64{-1, -2},
		},
		{
			name:     "ZeroWorstStaysZero",
			points:   points([]float64{0, 1}),
			margin:   0.1,
			expected: []float64{0, 1.1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := analysis.ReferencePoint(tc.points, tc.margin)
			if len(got) != len(tc.expected) {
				t.Fatalf("Expected %d dimensions, got %d", len(tc.expected), len(got))
			}
			for i := range got {
				if math.Abs(got[i]-tc.expected[i]) > 1e-9 {
					t.Errorf("Dimension %d: expected %v, got %v", i, tc.expected[i], got[i])
				}
			}
		})
	}
}

func TestReferencePointEmptyFront(t *testing.T) {
	if got := analysis.ReferencePoint(nil, 0.1); got != nil {
		t.Errorf("Expected nil for empty front, got %v", got)
	}
}

func TestReferencePointClampsOverflow(t *testing.T) {
	// Sentinel-unfit fronts sit at MaxFloat64; the margin must not push the
	// reference into +Inf.
	got := analysis.ReferencePoint(points([]float64{math.MaxFloat64, 1}), 0.1)
	if math.IsInf(got[0], 0) {
		t.Errorf("Expected finite reference, got %v", got[0])
	}
	if got[0] != math.MaxFloat64 {
		t.Errorf("Expected clamp to MaxFloat64, got %v", got[0])
	}
}

func TestHypervolume(t *testing.T) {
	testCases := []struct {
		name     string
		points   []framework.ObjectiveSpacePoint
		ref      []float64
		expected float64
	}{
		{
			name:     "SinglePointRectangle",
			points:   points([]float64{1, 1}),
			ref:      []float64{2, 3},
			expected: 2,
		},
		{
			name:     "TwoPointsSummed",
			points:   points([]float64{0, 2}, []float64{2, 0}),
			ref:      []float64{3, 3},
			expected: 6,
		},
		{
			name:     "PointBeyondReferenceContributesNothing",
			points:   points([]float64{4, 1}),
			ref:      []float64{3, 3},
			expected: 0,
		},
		{
			name:     "PointOnReferenceContributesNothing",
			points:   points([]float64{3, 1}),
			ref:      []float64{3, 3},
			expected: 0,
		},
		{
			name:     "EmptyFront",
			points:   nil,
			ref:      []float64{1, 1},
			expected: 0,
		},
		{
			name:     "ThreeObjectives",
			points:   points([]float64{0, 0, 0}),
			ref:      []float64{1, 2, 3},
			expected: 6,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := analysis.Hypervolume(tc.points, tc.ref)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestSpacing(t *testing.T) {
	// Evenly spread points share one nearest-neighbor distance, so the
	// deviation vanishes.
	uniform := points([]float64{0, 0}, []float64{1, 1}, []float64{2, 2})
	if got := analysis.Spacing(uniform); math.Abs(got) > 1e-9 {
		t.Errorf("Expected 0 for uniform spacing, got %v", got)
	}

	// Nearest distances 1, 1 and 4 have sample deviation sqrt(3).
	clustered := points([]float64{0, 0}, []float64{1, 0}, []float64{5, 0})
	expected := math.Sqrt(3)
	if got := analysis.Spacing(clustered); math.Abs(got-expected) > 1e-9 {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestSpacingDegenerateFronts(t *testing.T) {
	if got := analysis.Spacing(nil); got != 0 {
		t.Errorf("Expected 0 for empty front, got %v", got)
	}
	if got := analysis.Spacing(points([]float64{1, 1})); got != 0 {
		t.Errorf("Expected 0 for single point, got %v", got)
	}

	// Coincident points give zero distances everywhere, not NaN.
	same := points([]float64{1, 1}, []float64{1, 1}, []float64{1, 1})
	if got := analysis.Spacing(same); got != 0 {
		t.Errorf("Expected 0 for coincident points, got %v", got)
	}
}

func TestIGD(t *testing.T) {
	front := points([]float64{0, 1}, []float64{1, 0})

	// A front measured against itself is perfectly converged.
	if got := analysis.IGD(front, front); got != 0 {
		t.Errorf("Expected 0 for identical fronts, got %v", got)
	}

	// One obtained point at distance 5 from the single true point.
	got := analysis.IGD(points([]float64{3, 4}), points([]float64{0, 0}))
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("Expected 5, got %v", got)
	}

	// The metric averages over true-front points, not obtained points.
	obtained := points([]float64{0, 0})
	trueFront := points([]float64{0, 1}, []float64{0, 3})
	if got := analysis.IGD(obtained, trueFront); math.Abs(got-2) > 1e-9 {
		t.Errorf("Expected 2, got %v", got)
	}
}

func TestIGDEmptyObtained(t *testing.T) {
	if got := analysis.IGD(nil, points([]float64{0, 0})); !math.IsInf(got, 1) {
		t.Errorf("Expected +Inf for empty obtained front, got %v", got)
	}
}
