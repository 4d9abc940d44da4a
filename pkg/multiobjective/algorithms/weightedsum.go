package algorithms

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/analysis"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// WeightedSumName identifies the scalarizing fallback algorithm.
const WeightedSumName = "WeightedSum"

// WeightedSumConfig configures the weighted-sum fallback.
type WeightedSumConfig struct {
	PopulationSize       int
	MaxGenerations       int
	CrossoverProbability float64
	MutationProbability  float64
	DistributionIndex    float64

	// Weights scalarize the objective vector; nil means equal weights. The
	// length must match the problem's objective count.
	Weights []float64

	PenaltyCoefficient float64
	ConstraintHandling framework.ConstraintHandling

	ConvergenceThreshold float64
	ConvergenceWindow    int

	Seed uint64
}

// WeightedSum is the steady-state scalarizing fallback: objectives collapse
// into one weighted score and each generation breeds a single replacement for
// the worst individual. It diversifies far more weakly than NSGA-II and
// exists for callers that want one preferred trade-off rather than a front.
type WeightedSum struct {
	popSize        int
	numGenerations int
	weights        []float64

	problem   *framework.Problem
	evaluator *framework.Evaluator
	operators *Operators
	rng       *rand.Rand

	convergenceThreshold float64
	convergenceWindow    int
}

// NewWeightedSum validates the problem, weights and configuration.
func NewWeightedSum(config WeightedSumConfig, problem *framework.Problem) (*WeightedSum, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	if config.PopulationSize <= 0 {
		return nil, fmt.Errorf("population size must be positive, got %d", config.PopulationSize)
	}
	if config.MaxGenerations <= 0 {
		return nil, fmt.Errorf("max generations must be positive, got %d", config.MaxGenerations)
	}

	weights := config.Weights
	if weights == nil {
		weights = make([]float64, problem.NumObjectives())
		for i := range weights {
			weights[i] = 1.0 / float64(len(weights))
		}
	}
	if len(weights) != problem.NumObjectives() {
		return nil, fmt.Errorf("%d weights for %d objectives", len(weights), problem.NumObjectives())
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	return &WeightedSum{
		popSize:        config.PopulationSize,
		numGenerations: config.MaxGenerations,
		weights:        weights,
		problem:        problem,
		evaluator: framework.NewEvaluator(problem, framework.EvaluatorConfig{
			PenaltyCoefficient: config.PenaltyCoefficient,
			ConstraintHandling: config.ConstraintHandling,
		}),
		operators:            NewOperators(problem.Variables, config.CrossoverProbability, config.MutationProbability, config.DistributionIndex, rng),
		rng:                  rng,
		convergenceThreshold: config.ConvergenceThreshold,
		convergenceWindow:    config.ConvergenceWindow,
	}, nil
}

// Run executes the steady-state loop: one bred individual per generation,
// replacing the worst member when it scores better.
func (w *WeightedSum) Run(ctx context.Context) (*RunOutcome, error) {
	startTime := time.Now()
	logger := klog.FromContext(ctx)
	logger.Info("Starting weighted-sum optimization",
		"problem", w.problem.Name,
		"populationSize", w.popSize,
		"maxGenerations", w.numGenerations,
		"weights", w.weights)

	population := w.problem.Initialize(w.popSize, w.rng)
	for _, ind := range population {
		w.evaluator.Evaluate(ind)
		ind.Fitness = w.scalarize(ind.Objectives)
	}

	tracker := analysis.NewConvergenceTracker(w.convergenceWindow, w.convergenceThreshold)
	status := StatusMaxGenerations
	history := make([]GenerationStats, 0, w.numGenerations)
	generationsRun := 0

	for gen := 0; gen < w.numGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			logger.Info("Optimization cancelled", "generation", gen)
			status = StatusCancelled
			break
		}

		parent1 := w.scalarTournament(population)
		parent2 := w.scalarTournament(population)
		child, _ := w.operators.Crossover(parent1, parent2)
		w.operators.Mutate(child)
		w.evaluator.Evaluate(child)
		child.Fitness = w.scalarize(child.Objectives)

		worst := 0
		for i, ind := range population {
			if ind.Fitness > population[worst].Fitness {
				worst = i
			}
		}
		if child.Fitness < population[worst].Fitness {
			population[worst] = child
		}

		generationsRun = gen + 1
		stats := w.generationStats(gen, population)
		history = append(history, stats)
		tracker.Observe(stats.BestFitness)

		if tracker.Converged() {
			logger.Info("Convergence detected, stopping early", "generation", gen+1)
			status = StatusConverged
			break
		}
	}

	fronts := NonDominatedSort(population)
	for _, front := range fronts {
		CrowdingDistance(front)
	}
	archived := make([]*framework.Individual, len(fronts[0]))
	for i, ind := range fronts[0] {
		archived[i] = ind.Clone()
	}

	outcome := &RunOutcome{
		Algorithm:   WeightedSumName,
		Problem:     w.problem.Name,
		Status:      status,
		Generations: generationsRun,
		Evaluations: w.evaluator.Evaluations(),
		Population:  population,
		Fronts:      fronts,
		Archive:     archived,
		History:     history,
		Warnings:    w.evaluator.Warnings(),
		Elapsed:     time.Since(startTime),
	}

	logger.Info("Weighted-sum optimization finished",
		"status", status,
		"generations", generationsRun,
		"evaluations", outcome.Evaluations,
		"bestFitness", bestFitness(population))
	return outcome, nil
}

func (w *WeightedSum) scalarize(objectives []float64) float64 {
	sum := 0.0
	for i, v := range objectives {
		sum += w.weights[i] * v
	}
	return sum
}

// scalarTournament is a binary tournament on the scalarized fitness alone.
func (w *WeightedSum) scalarTournament(population []*framework.Individual) *framework.Individual {
	best := population[w.rng.Intn(len(population))]
	contestant := population[w.rng.Intn(len(population))]
	if contestant.Fitness < best.Fitness {
		best = contestant
	}
	return best
}

func (w *WeightedSum) generationStats(gen int, population []*framework.Individual) GenerationStats {
	best := population[0].Fitness
	worst := population[0].Fitness
	sum := 0.0
	for _, ind := range population {
		if ind.Fitness < best {
			best = ind.Fitness
		}
		if ind.Fitness > worst {
			worst = ind.Fitness
		}
		sum += ind.Fitness
	}
	return GenerationStats{
		Generation:   gen,
		BestFitness:  best,
		MeanFitness:  sum / float64(len(population)),
		WorstFitness: worst,
	}
}

func bestFitness(population []*framework.Individual) float64 {
	best := population[0].Fitness
	for _, ind := range population {
		if ind.Fitness < best {
			best = ind.Fitness
		}
	}
	return best
}
