package algorithms

import (
	"time"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// RunStatus describes how a run ended.
type RunStatus string

const (
	// StatusConverged means the best-fitness window flattened below the
	// convergence threshold.
	StatusConverged RunStatus = "converged"
	// StatusMaxGenerations means the generation budget ran out first.
	StatusMaxGenerations RunStatus = "max-generations"
	// StatusCancelled means the context was cancelled; the outcome carries
	// the best-so-far archive as a partial result.
	StatusCancelled RunStatus = "cancelled"
)

// GenerationStats is one generation's snapshot in the run history.
type GenerationStats struct {
	Generation   int     `json:"generation"`
	BestFitness  float64 `json:"bestFitness"`
	MeanFitness  float64 `json:"meanFitness"`
	WorstFitness float64 `json:"worstFitness"`
	FrontSize    int     `json:"frontSize"`
	Hypervolume  float64 `json:"hypervolume"`
	Spacing      float64 `json:"spacing"`
}

// RunOutcome is the raw product of an algorithm run, frozen from the run
// state at termination. The orchestrator turns it into the caller-facing
// result.
type RunOutcome struct {
	Algorithm   string
	Problem     string
	Status      RunStatus
	Generations int
	Evaluations int64

	// Population is the final working population, exactly populationSize
	// strong for completed runs.
	Population []*framework.Individual
	// Fronts partitions the final population by rank.
	Fronts [][]*framework.Individual
	// Archive holds the historically non-dominated set.
	Archive []*framework.Individual

	History  []GenerationStats
	Warnings []string
	Elapsed  time.Duration

	// ReferencePoint is the hypervolume reference the history was computed
	// against.
	ReferencePoint []float64
}

// FirstFront returns the final rank-0 front, or nil for an empty outcome.
func (o *RunOutcome) FirstFront() []*framework.Individual {
	if len(o.Fronts) == 0 {
		return nil
	}
	return o.Fronts[0]
}
