// Package metrics exposes the engine's process-wide prometheus collectors.
// Registration happens at import time; whether and where the registry is
// scraped is the embedding process's business.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// EvaluationsTotal counts objective/constraint evaluations across all
	// runs in the process.
	EvaluationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sizewise_optimize_evaluations_total",
		Help: "Total number of individual evaluations performed.",
	})

	// EvaluationFailuresTotal counts evaluations recovered as failures
	// (panics or non-finite results).
	EvaluationFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sizewise_optimize_evaluation_failures_total",
		Help: "Total number of evaluations that panicked or returned non-finite values.",
	})

	// GenerationsTotal counts completed generations across all runs.
	GenerationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sizewise_optimize_generations_total",
		Help: "Total number of completed NSGA-II generations.",
	})

	// BestFitness tracks the best scalar fitness seen per problem.
	BestFitness = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sizewise_optimize_best_fitness",
		Help: "Best scalar fitness in the current population.",
	}, []string{"problem"})

	// FrontHypervolume tracks the rank-0 hypervolume indicator per problem.
	FrontHypervolume = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sizewise_optimize_front_hypervolume",
		Help: "Approximate hypervolume of the current first front.",
	}, []string{"problem"})

	// FrontSize tracks the rank-0 front size per problem.
	FrontSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sizewise_optimize_front_size",
		Help: "Number of solutions in the current first front.",
	}, []string{"problem"})
)

func init() {
	prometheus.MustRegister(
		EvaluationsTotal,
		EvaluationFailuresTotal,
		GenerationsTotal,
		BestFitness,
		FrontHypervolume,
		FrontSize,
	)
}
