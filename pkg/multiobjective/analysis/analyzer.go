package analysis

import (
	"sort"

	"github.com/patrickmn/go-cache"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// FrontMetrics bundles one front's quality indicators.
type FrontMetrics struct {
	Hypervolume    float64
	Spacing        float64
	KneePoints     []KneePoint
	ReferencePoint []float64
}

// Analyzer computes front metrics, optionally memoizing them in an injected
// cache. The cache is an explicit dependency handed in by the caller, never
// package state, so repeated analysis of the same run (reports, plots,
// cross-run tooling) can share results without hidden globals.
type Analyzer struct {
	cache  *cache.Cache
	margin float64
}

// NewAnalyzer builds an analyzer. c may be nil to disable memoization;
// margin <= 0 selects the default reference-point margin.
func NewAnalyzer(c *cache.Cache, margin float64) *Analyzer {
	if margin <= 0 {
		margin = DefaultReferenceMargin
	}
	return &Analyzer{cache: c, margin: margin}
}

// Analyze computes hypervolume, spacing and knee points for a front. A nil
// ref derives the reference point from the front itself. The points are
// sorted by the first objective before knee detection so consecutive indices
// are objective-space neighbors. key identifies the front for memoization;
// an empty key skips the cache.
func (a *Analyzer) Analyze(key string, points []framework.ObjectiveSpacePoint, ref []float64) FrontMetrics {
	if a.cache != nil && key != "" {
		if v, ok := a.cache.Get(key); ok {
			return v.(FrontMetrics)
		}
	}

	ordered := make([]framework.ObjectiveSpacePoint, len(points))
	copy(ordered, points)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i][0] < ordered[j][0]
	})

	if ref == nil {
		ref = ReferencePoint(ordered, a.margin)
	}

	m := FrontMetrics{
		Hypervolume:    Hypervolume(ordered, ref),
		Spacing:        Spacing(ordered),
		KneePoints:     KneePoints(ordered),
		ReferencePoint: ref,
	}

	if a.cache != nil && key != "" {
		a.cache.Set(key, m, cache.DefaultExpiration)
	}
	return m
}
