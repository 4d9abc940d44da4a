package algorithms

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/analysis"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/metrics"
)

const (
	Name = "NSGA-II"

	tracerName = "sizewise-optimize/multiobjective"
)

// NSGA2Config holds configuration parameters for NSGA-II.
type NSGA2Config struct {
	PopulationSize       int
	MaxGenerations       int
	CrossoverProbability float64
	// MutationProbability is per variable; 0 selects 1/numVariables.
	MutationProbability float64
	// DistributionIndex is the SBX/polynomial-mutation eta; 0 selects the
	// default.
	DistributionIndex float64
	TournamentSize    int

	PenaltyCoefficient float64
	ConstraintHandling framework.ConstraintHandling

	// ArchiveSize bounds the elite archive; 0 selects PopulationSize.
	ArchiveSize int

	// ConvergenceThreshold stops the run early once the best fitness moves
	// less than this across the convergence window. 0 disables early
	// stopping.
	ConvergenceThreshold float64
	// ConvergenceWindow is the trailing generation count inspected; 0
	// selects the default of 10.
	ConvergenceWindow int

	// RecomputeReference recalculates the hypervolume reference point every
	// generation instead of fixing it after the first. The fixed default
	// keeps the history comparable across generations; recomputing tracks
	// drifting objective ranges at the cost of comparability.
	RecomputeReference bool

	// ParallelExecution evaluates individuals on a worker pool. Variation
	// stays sequential so seeded runs remain reproducible.
	ParallelExecution bool

	// Seed fixes the random source; 0 seeds from the clock.
	Seed uint64
}

// Validate rejects configurations the run loop cannot honor. These are
// programmer errors and fail before any evaluation happens.
func (c NSGA2Config) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf("population size must be positive, got %d", c.PopulationSize)
	}
	if c.MaxGenerations <= 0 {
		return fmt.Errorf("max generations must be positive, got %d", c.MaxGenerations)
	}
	if c.CrossoverProbability < 0 || c.CrossoverProbability > 1 {
		return fmt.Errorf("crossover probability must be in [0,1], got %v", c.CrossoverProbability)
	}
	if c.MutationProbability < 0 || c.MutationProbability > 1 {
		return fmt.Errorf("mutation probability must be in [0,1], got %v", c.MutationProbability)
	}
	if c.ConvergenceThreshold < 0 {
		return fmt.Errorf("convergence threshold must not be negative, got %v", c.ConvergenceThreshold)
	}
	return nil
}

// NSGAII is one configured run of the NSGA-II algorithm over a problem.
type NSGAII struct {
	PopSize        int
	NumGenerations int
	TournamentSize int

	Problem   *framework.Problem
	evaluator *framework.Evaluator
	operators *Operators
	rng       *rand.Rand

	archiveSize          int
	convergenceThreshold float64
	convergenceWindow    int
	recomputeReference   bool
	parallel             bool
}

// NewNSGAII validates the problem and configuration and prepares a run.
func NewNSGAII(config NSGA2Config, problem *framework.Problem) (*NSGAII, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	archiveSize := config.ArchiveSize
	if archiveSize <= 0 {
		archiveSize = config.PopulationSize
	}
	tournamentSize := config.TournamentSize
	if tournamentSize < 2 {
		tournamentSize = 2
	}

	return &NSGAII{
		PopSize:        config.PopulationSize,
		NumGenerations: config.MaxGenerations,
		TournamentSize: tournamentSize,
		Problem:        problem,
		evaluator: framework.NewEvaluator(problem, framework.EvaluatorConfig{
			PenaltyCoefficient: config.PenaltyCoefficient,
			ConstraintHandling: config.ConstraintHandling,
		}),
		operators:            NewOperators(problem.Variables, config.CrossoverProbability, config.MutationProbability, config.DistributionIndex, rng),
		rng:                  rng,
		archiveSize:          archiveSize,
		convergenceThreshold: config.ConvergenceThreshold,
		convergenceWindow:    config.ConvergenceWindow,
		recomputeReference:   config.RecomputeReference,
		parallel:             config.ParallelExecution,
	}, nil
}

// Run executes the NSGA-II generational loop until the generation budget runs
// out, the convergence window flattens, or the context is cancelled.
// Cancellation is checked at the top of each generation, never mid-generation,
// and yields a partial outcome built from the archive rather than an error.
func (n *NSGAII) Run(ctx context.Context) (*RunOutcome, error) {
	startTime := time.Now()
	logger := klog.FromContext(ctx)

	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "nsga2.run", trace.WithAttributes(
		attribute.String("problem", n.Problem.Name),
		attribute.Int("population_size", n.PopSize),
		attribute.Int("max_generations", n.NumGenerations),
	))
	defer span.End()

	mode := "sequential"
	workers := 1
	if n.parallel {
		mode = "parallel"
		workers = runtime.NumCPU()
	}
	logger.Info("Starting NSGA-II optimization",
		"problem", n.Problem.Name,
		"populationSize", n.PopSize,
		"maxGenerations", n.NumGenerations,
		"crossoverRate", n.operators.CrossoverRate,
		"mutationRate", n.operators.MutationRate,
		"tournamentSize", n.TournamentSize,
		"mode", mode,
		"workers", workers)

	// Initial population: sample, evaluate, rank and crowd so the first
	// tournament already has rank/crowding signals to compare.
	population := n.Problem.Initialize(n.PopSize, n.rng)
	n.evaluatePopulation(population)
	fronts := NonDominatedSort(population)
	for _, front := range fronts {
		CrowdingDistance(front)
	}

	tracker := analysis.NewConvergenceTracker(n.convergenceWindow, n.convergenceThreshold)
	archive := NewArchive(n.archiveSize)
	archive.Update(fronts[0])

	var referencePoint []float64
	if !n.recomputeReference {
		referencePoint = analysis.ReferencePoint(analysis.FrontPoints(population), analysis.DefaultReferenceMargin)
	}

	status := StatusMaxGenerations
	history := make([]GenerationStats, 0, n.NumGenerations)
	generationsRun := 0

	for gen := 0; gen < n.NumGenerations; gen++ {
		if err := ctx.Err(); err != nil {
			logger.Info("Optimization cancelled, returning archive as partial result",
				"generation", gen, "archiveSize", archive.Len())
			status = StatusCancelled
			break
		}

		_, genSpan := tracer.Start(ctx, "nsga2.generation",
			trace.WithAttributes(attribute.Int("generation", gen)))

		offspring := n.makeOffspring(population)
		n.evaluatePopulation(offspring)

		// Combine parents and offspring, re-rank the 2N set.
		combined := append(population, offspring...)
		fronts = NonDominatedSort(combined)

		// Environmental selection: whole fronts while they fit, then fill
		// the remainder from the overflowing front by descending crowding
		// distance. Only the overflowing front is ever split.
		population = make([]*framework.Individual, 0, n.PopSize)
		frontIndex := 0
		for len(population)+len(fronts[frontIndex]) <= n.PopSize {
			CrowdingDistance(fronts[frontIndex])
			population = append(population, fronts[frontIndex]...)
			frontIndex++
			if frontIndex >= len(fronts) {
				break
			}
		}
		if len(population) < n.PopSize && frontIndex < len(fronts) {
			CrowdingDistance(fronts[frontIndex])
			sort.Slice(fronts[frontIndex], func(i, j int) bool {
				return fronts[frontIndex][i].CrowdingDistance > fronts[frontIndex][j].CrowdingDistance
			})
			population = append(population, fronts[frontIndex][:n.PopSize-len(population)]...)
		}

		archive.Update(fronts[0])
		generationsRun = gen + 1

		stats := n.generationStats(gen, population, fronts[0], &referencePoint)
		history = append(history, stats)
		tracker.Observe(stats.BestFitness)

		metrics.GenerationsTotal.Inc()
		metrics.BestFitness.WithLabelValues(n.Problem.Name).Set(stats.BestFitness)
		metrics.FrontSize.WithLabelValues(n.Problem.Name).Set(float64(stats.FrontSize))
		metrics.FrontHypervolume.WithLabelValues(n.Problem.Name).Set(stats.Hypervolume)

		if gen%10 == 0 || gen == n.NumGenerations-1 {
			logger.V(2).Info("Generation complete",
				"generation", gen+1,
				"bestFitness", stats.BestFitness,
				"frontSize", stats.FrontSize,
				"hypervolume", stats.Hypervolume,
				"spacing", stats.Spacing)
		}

		genSpan.SetAttributes(
			attribute.Int("front_size", stats.FrontSize),
			attribute.Float64("best_fitness", stats.BestFitness),
		)
		genSpan.End()

		if tracker.Converged() {
			logger.Info("Convergence detected, stopping early",
				"generation", gen+1, "threshold", n.convergenceThreshold)
			status = StatusConverged
			break
		}
	}

	elapsed := time.Since(startTime)
	outcome := &RunOutcome{
		Algorithm:      Name,
		Problem:        n.Problem.Name,
		Status:         status,
		Generations:    generationsRun,
		Evaluations:    n.evaluator.Evaluations(),
		Population:     population,
		Archive:        archive.Members(),
		History:        history,
		Warnings:       n.evaluator.Warnings(),
		Elapsed:        elapsed,
		ReferencePoint: referencePoint,
	}

	if status == StatusCancelled {
		// The working population is mid-flight state on cancellation; the
		// archive is the dependable partial result.
		outcome.Fronts = NonDominatedSort(outcome.Archive)
	} else {
		outcome.Fronts = NonDominatedSort(population)
	}
	for _, front := range outcome.Fronts {
		CrowdingDistance(front)
	}

	span.SetAttributes(
		attribute.String("status", string(status)),
		attribute.Int("generations", generationsRun),
		attribute.Int64("evaluations", outcome.Evaluations),
		attribute.Int("front_size", len(outcome.FirstFront())),
	)
	logger.Info("NSGA-II optimization finished",
		"status", status,
		"generations", generationsRun,
		"evaluations", outcome.Evaluations,
		"frontSize", len(outcome.FirstFront()),
		"elapsed", elapsed)

	return outcome, nil
}

// makeOffspring produces PopSize children by tournament selection, crossover
// and mutation. Variation runs sequentially so the seeded random stream is
// deterministic; evaluation is where the parallel pool applies.
func (n *NSGAII) makeOffspring(population []*framework.Individual) []*framework.Individual {
	offspring := make([]*framework.Individual, 0, n.PopSize)
	for len(offspring) < n.PopSize {
		parent1 := TournamentSelect(n.rng, population, n.TournamentSize)
		parent2 := TournamentSelect(n.rng, population, n.TournamentSize)

		child1, child2 := n.operators.Crossover(parent1, parent2)
		n.operators.Mutate(child1)
		n.operators.Mutate(child2)

		offspring = append(offspring, child1)
		if len(offspring) < n.PopSize {
			offspring = append(offspring, child2)
		}
	}
	return offspring
}

// evaluatePopulation evaluates every individual, on a worker pool when
// parallel execution is enabled. Each task owns its individual; the pool is
// drained before returning so ranking always sees a fully evaluated set.
func (n *NSGAII) evaluatePopulation(population []*framework.Individual) {
	if !n.parallel {
		for _, ind := range population {
			n.evaluator.Evaluate(ind)
		}
		return
	}

	numWorkers := runtime.NumCPU()
	workChan := make(chan int, len(population))
	wg := &sync.WaitGroup{}

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workChan {
				n.evaluator.Evaluate(population[i])
			}
		}()
	}

	for i := range population {
		workChan <- i
	}
	close(workChan)
	wg.Wait()
}

// generationStats snapshots one generation for the run history. The
// hypervolume reference point is fixed after the first computation unless the
// run was configured to recompute it each generation.
func (n *NSGAII) generationStats(gen int, population, firstFront []*framework.Individual, referencePoint *[]float64) GenerationStats {
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

	points := analysis.FrontPoints(firstFront)
	if *referencePoint == nil || n.recomputeReference {
		*referencePoint = analysis.ReferencePoint(points, analysis.DefaultReferenceMargin)
	}

	return GenerationStats{
		Generation:   gen,
		BestFitness:  best,
		MeanFitness:  sum / float64(len(population)),
		WorstFitness: worst,
		FrontSize:    len(firstFront),
		Hypervolume:  analysis.Hypervolume(points, *referencePoint),
		Spacing:      analysis.Spacing(points),
	}
}
