/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package multiobjective orchestrates multi-objective optimization runs: it
// validates and defaults the configuration, dispatches to an algorithm,
// analyzes the resulting Pareto front and assembles the caller-facing report.
package multiobjective

import (
	"context"
	"crypto/sha256"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
	"k8s.io/klog/v2"

	"github.com/engryamato/sizewise-optimize/pkg/api/v1alpha1"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/algorithms"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/analysis"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

const EngineName = "MultiObjective"

// Optimizer wires a problem and a configuration to an algorithm run and turns
// the raw outcome into an OptimizationResult.
type Optimizer struct {
	logger   klog.Logger
	config   v1alpha1.OptimizationConfig
	problem  *framework.Problem
	analyzer *analysis.Analyzer
}

// NewOptimizer defaults and validates the configuration and problem. Both are
// checked up front so a misconfigured run fails before any evaluation.
func NewOptimizer(ctx context.Context, config v1alpha1.OptimizationConfig, problem *framework.Problem) (*Optimizer, error) {
	logger := klog.FromContext(ctx).WithValues("engine", EngineName)

	SetDefaults_OptimizationConfig(&config)
	if err := ValidateOptimizationConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid optimization config: %w", err)
	}
	if err := problem.Validate(); err != nil {
		return nil, fmt.Errorf("invalid problem %q: %w", problem.Name, err)
	}

	return &Optimizer{
		logger:  logger,
		config:  config,
		problem: problem,
		// The memo cache belongs to this optimizer, not the package, so
		// concurrent optimizers never share analysis state.
		analyzer: analysis.NewAnalyzer(cache.New(30*time.Minute, 10*time.Minute), analysis.DefaultReferenceMargin),
	}, nil
}

// Run executes the configured algorithm and assembles the result. Cancelling
// ctx ends the run at the next generation boundary and yields a partial
// result with status cancelled, not an error.
func (o *Optimizer) Run(ctx context.Context) (*OptimizationResult, error) {
	ctx = klog.NewContext(ctx, o.logger)

	o.logger.Info("Algorithm configuration",
		"algorithm", o.config.Algorithm,
		"problem", o.problem.Name,
		"populationSize", o.config.PopulationSize,
		"generations", o.config.MaxGenerations,
		"crossoverRate", o.config.CrossoverRate,
		"mutationRate", o.config.MutationRate,
		"constraintHandling", o.config.ConstraintHandling)

	outcome, err := o.runAlgorithm(ctx)
	if err != nil {
		return nil, err
	}

	result := o.buildResult(outcome)
	o.displayTopResults(result)
	return result, nil
}

func (o *Optimizer) runAlgorithm(ctx context.Context) (*algorithms.RunOutcome, error) {
	switch o.config.Algorithm {
	case v1alpha1.AlgorithmWeightedSum:
		ws, err := algorithms.NewWeightedSum(weightedSumConfig(o.config), o.problem)
		if err != nil {
			return nil, err
		}
		return ws.Run(ctx)
	default:
		nsga2, err := algorithms.NewNSGAII(nsga2Config(o.config), o.problem)
		if err != nil {
			return nil, err
		}
		return nsga2.Run(ctx)
	}
}

func nsga2Config(c v1alpha1.OptimizationConfig) algorithms.NSGA2Config {
	return algorithms.NSGA2Config{
		PopulationSize:       c.PopulationSize,
		MaxGenerations:       c.MaxGenerations,
		CrossoverProbability: c.CrossoverRate,
		MutationProbability:  c.MutationRate,
		DistributionIndex:    c.DistributionIndex,
		TournamentSize:       c.TournamentSize,
		PenaltyCoefficient:   c.PenaltyCoefficient,
		ConstraintHandling:   constraintHandling(c.ConstraintHandling),
		ArchiveSize:          c.ArchiveSize,
		ConvergenceThreshold: c.ConvergenceThreshold,
		ConvergenceWindow:    c.ConvergenceWindow,
		RecomputeReference:   c.HypervolumeReference == v1alpha1.ReferencePerGeneration,
		ParallelExecution:    c.Parallel,
		Seed:                 c.Seed,
	}
}

func weightedSumConfig(c v1alpha1.OptimizationConfig) algorithms.WeightedSumConfig {
	return algorithms.WeightedSumConfig{
		PopulationSize:       c.PopulationSize,
		MaxGenerations:       c.MaxGenerations,
		CrossoverProbability: c.CrossoverRate,
		MutationProbability:  c.MutationRate,
		DistributionIndex:    c.DistributionIndex,
		Weights:              c.Weights,
		PenaltyCoefficient:   c.PenaltyCoefficient,
		ConstraintHandling:   constraintHandling(c.ConstraintHandling),
		ConvergenceThreshold: c.ConvergenceThreshold,
		ConvergenceWindow:    c.ConvergenceWindow,
		Seed:                 c.Seed,
	}
}

func constraintHandling(mode string) framework.ConstraintHandling {
	if mode == v1alpha1.ConstraintHandlingDeathPenalty {
		return framework.DeathPenaltyHandling
	}
	return framework.PenaltyHandling
}

// buildResult freezes the run outcome into the immutable report. The front is
// deduplicated and ordered by the first objective before analysis so knee
// point indices line up with the reported solutions.
func (o *Optimizer) buildResult(outcome *algorithms.RunOutcome) *OptimizationResult {
	result := &OptimizationResult{
		Problem:   outcome.Problem,
		Algorithm: outcome.Algorithm,
		Status:    outcome.Status,
		Statistics: Statistics{
			Generations: outcome.Generations,
			Evaluations: outcome.Evaluations,
			Runtime:     outcome.Elapsed,
			History:     outcome.History,
		},
		Warnings: outcome.Warnings,
	}

	front := o.dedupeFront(outcome.FirstFront())
	if len(front) == 0 {
		result.Errors = append(result.Errors, "run produced no Pareto front")
		result.Recommendation = "No solutions available."
		return result
	}

	sort.Slice(front, func(i, j int) bool {
		return front[i].Objectives[0] < front[j].Objectives[0]
	})

	points := analysis.FrontPoints(front)
	metrics := o.analyzer.Analyze(frontFingerprint(outcome.Algorithm, points), points, outcome.ReferencePoint)
	result.FrontMetrics = FrontMetrics{
		Hypervolume:    metrics.Hypervolume,
		Spacing:        metrics.Spacing,
		KneePoints:     metrics.KneePoints,
		ReferencePoint: metrics.ReferencePoint,
	}

	result.ParetoFront = make([]Solution, len(front))
	for i, ind := range front {
		result.ParetoFront[i] = o.solutionFrom(ind)
	}
	result.BestSolution = result.ParetoFront[bestIndex(result.ParetoFront)]
	result.Recommendation = recommendationText(result)

	return result
}

func (o *Optimizer) solutionFrom(ind *framework.Individual) Solution {
	variables := make(map[string]interface{}, len(ind.Assignment))
	for id, v := range ind.Assignment {
		if v.Symbolic {
			variables[id] = v.Label
		} else {
			variables[id] = v.Number
		}
	}

	objectives := make(map[string]float64, len(ind.Objectives))
	for i, v := range ind.Objectives {
		objectives[o.problem.ObjectiveName(i)] = v
	}

	s := Solution{
		Variables:  variables,
		Objectives: objectives,
		Fitness:    ind.Fitness,
		Feasible:   ind.Feasible,
	}

	if !ind.Feasible {
		s.Violations = make(map[string]float64)
		for i, v := range ind.Violations {
			if v > 0 {
				s.Violations[o.problem.ConstraintName(i)] = v
			}
		}
	}
	return s
}

// dedupeFront drops repeated genomes so the report never lists the same
// trade-off twice. NSGA-II legitimately carries duplicates in its population.
func (o *Optimizer) dedupeFront(front []*framework.Individual) []*framework.Individual {
	seen := make(map[string]bool, len(front))
	unique := make([]*framework.Individual, 0, len(front))
	for _, ind := range front {
		key := fmt.Sprintf("%v", ind.Assignment)
		if seen[key] {
			o.logger.V(3).Info("Skipping duplicate solution", "fitness", ind.Fitness)
			continue
		}
		seen[key] = true
		unique = append(unique, ind)
	}
	return unique
}

// frontFingerprint hashes a front's objective vectors into a compact memo key.
func frontFingerprint(algorithm string, points []framework.ObjectiveSpacePoint) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|", algorithm, len(points))
	for _, p := range points {
		fmt.Fprintf(h, "%v;", p)
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// bestIndex picks the feasible solution with the lowest scalar fitness,
// falling back to the least-bad infeasible one when the whole front is
// infeasible.
func bestIndex(solutions []Solution) int {
	best := -1
	for i, s := range solutions {
		if !s.Feasible {
			continue
		}
		if best < 0 || s.Fitness < solutions[best].Fitness {
			best = i
		}
	}
	if best >= 0 {
		return best
	}
	best = 0
	for i := 1; i < len(solutions); i++ {
		if solutions[i].Fitness < solutions[best].Fitness {
			best = i
		}
	}
	return best
}

func recommendationText(result *OptimizationResult) string {
	if len(result.ParetoFront) == 0 {
		return "No solutions available."
	}
	if len(result.FrontMetrics.KneePoints) > 0 {
		k := result.FrontMetrics.KneePoints[0]
		return fmt.Sprintf("Solution %d is the sharpest trade-off on the front (turn angle %.0f deg): small sacrifices near it buy large gains. %d other knee point(s) identified.",
			k.Index+1, k.Angle*180/math.Pi, len(result.FrontMetrics.KneePoints)-1)
	}
	if !result.BestSolution.Feasible {
		return "No feasible solution found; the reported front is the least-infeasible set. Relax constraints or increase the generation budget."
	}
	return fmt.Sprintf("The front holds %d balanced trade-offs with no dominant knee; the best-fitness solution is a reasonable default.", len(result.ParetoFront))
}

// displayTopResults logs the head of the Pareto front the way operators read
// it: ranked, with objective vectors and feasibility.
func (o *Optimizer) displayTopResults(result *OptimizationResult) {
	// Show top 10 or all if fewer
	count := 10
	if len(result.ParetoFront) < count {
		count = len(result.ParetoFront)
	}

	o.logger.Info("Top optimization solutions", "displaying", count, "totalParetoOptimal", len(result.ParetoFront))

	for i := 0; i < count; i++ {
		s := result.ParetoFront[i]
		kvs := []interface{}{
			"rank", i + 1,
			"fitness", fmt.Sprintf("%.4f", s.Fitness),
			"feasible", s.Feasible,
		}
		for name, v := range s.Objectives {
			kvs = append(kvs, name, fmt.Sprintf("%.4f", v))
		}
		o.logger.Info("Solution", kvs...)
	}

	o.logger.Info("Optimization complete",
		"status", result.Status,
		"generations", result.Statistics.Generations,
		"evaluations", result.Statistics.Evaluations,
		"hypervolume", fmt.Sprintf("%.4f", result.FrontMetrics.Hypervolume),
		"spacing", fmt.Sprintf("%.6f", result.FrontMetrics.Spacing),
		"kneePoints", len(result.FrontMetrics.KneePoints),
		"warnings", len(result.Warnings))
	o.logger.Info("Recommendation", "text", result.Recommendation)
}
