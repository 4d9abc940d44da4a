package analysis

import (
	"gonum.org/v1/gonum/floats"
)

// DefaultConvergenceWindow is how many trailing generations the convergence
// check inspects.
const DefaultConvergenceWindow = 10

// ConvergenceTracker watches the best-scalar-fitness history and reports
// convergence when the absolute change across the trailing window falls below
// the threshold. There is no minimum-generation floor: trivially easy
// problems may converge within a handful of generations, and callers needing
// a larger exploration budget must tighten the threshold instead.
type ConvergenceTracker struct {
	window    int
	threshold float64
	history   []float64
}

// NewConvergenceTracker builds a tracker; window <= 0 selects the default.
func NewConvergenceTracker(window int, threshold float64) *ConvergenceTracker {
	if window <= 0 {
		window = DefaultConvergenceWindow
	}
	return &ConvergenceTracker{window: window, threshold: threshold}
}

// Observe appends one generation's best scalar fitness.
func (t *ConvergenceTracker) Observe(best float64) {
	t.history = append(t.history, best)
}

// Converged reports whether the trailing window's spread is below the
// threshold. A non-positive threshold disables convergence-based stopping.
func (t *ConvergenceTracker) Converged() bool {
	if t.threshold <= 0 || len(t.history) < t.window {
		return false
	}
	tail := t.history[len(t.history)-t.window:]
	return floats.Max(tail)-floats.Min(tail) < t.threshold
}

// History returns the observed best-fitness series.
func (t *ConvergenceTracker) History() []float64 {
	out := make([]float64, len(t.history))
	copy(out, t.history)
	return out
}
