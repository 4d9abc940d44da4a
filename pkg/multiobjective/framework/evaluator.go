package framework

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"k8s.io/klog/v2"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/metrics"
)

// ConstraintHandling selects how infeasible individuals are folded into the
// objective space.
type ConstraintHandling string

const (
	// PenaltyHandling adds the scaled violation sum to every objective of an
	// infeasible individual. Relative ordering among infeasible individuals
	// is preserved and any feasible individual dominates any infeasible one
	// once the coefficient exceeds the feasible spread. This is the default
	// because it needs no problem-specific repair logic.
	PenaltyHandling ConstraintHandling = "penalty"
	// DeathPenaltyHandling assigns the worst sentinel to every objective of
	// an infeasible individual, discarding the violation gradient.
	DeathPenaltyHandling ConstraintHandling = "death-penalty"
)

// DefaultPenaltyCoefficient scales violation sums under PenaltyHandling.
const DefaultPenaltyCoefficient = 1000.0

// WorstObjective is the sentinel objective value for individuals whose
// evaluation failed. Finite on purpose: crowding-distance and hypervolume
// arithmetic over sentinel values must stay NaN-free.
const WorstObjective = math.MaxFloat64

// Evaluator wraps a Problem's objective and constraint functions into the
// uniform evaluation call used by the engine. It applies constraint penalties,
// recovers evaluator panics, and counts evaluations. Safe for concurrent use.
type Evaluator struct {
	problem            *Problem
	penaltyCoefficient float64
	handling           ConstraintHandling

	evaluations atomic.Int64
	failures    atomic.Int64

	mu       sync.Mutex
	warnings []string
}

// EvaluatorConfig tunes constraint handling. Zero values select the defaults.
type EvaluatorConfig struct {
	PenaltyCoefficient float64
	ConstraintHandling ConstraintHandling
}

// NewEvaluator builds an evaluator for the given problem.
func NewEvaluator(problem *Problem, cfg EvaluatorConfig) *Evaluator {
	if cfg.PenaltyCoefficient <= 0 {
		cfg.PenaltyCoefficient = DefaultPenaltyCoefficient
	}
	if cfg.ConstraintHandling == "" {
		cfg.ConstraintHandling = PenaltyHandling
	}
	return &Evaluator{
		problem:            problem,
		penaltyCoefficient: cfg.PenaltyCoefficient,
		handling:           cfg.ConstraintHandling,
	}
}

// Evaluate populates the individual's violations, objectives, feasibility and
// scalar fitness. Evaluation failures (panics, NaN, Inf) never propagate:
// the individual is marked maximally unfit and a warning is recorded, so the
// generational loop always has comparable objective vectors to sort.
func (e *Evaluator) Evaluate(ind *Individual) {
	e.evaluations.Add(1)
	metrics.EvaluationsTotal.Inc()

	violations := make([]float64, len(e.problem.Constraints))
	for i, c := range e.problem.Constraints {
		v, err := call(c, ind.Assignment)
		if err != nil {
			e.markUnfit(ind, fmt.Sprintf("constraint %s: %v", e.problem.ConstraintName(i), err))
			return
		}
		violations[i] = v
	}

	objectives := make([]float64, len(e.problem.Objectives))
	for i, f := range e.problem.Objectives {
		v, err := call(f, ind.Assignment)
		if err != nil {
			e.markUnfit(ind, fmt.Sprintf("objective %s: %v", e.problem.ObjectiveName(i), err))
			return
		}
		objectives[i] = v
	}

	penalty := 0.0
	for _, v := range violations {
		if v > 0 {
			penalty += v
		}
	}
	feasible := penalty == 0

	if !feasible {
		switch e.handling {
		case DeathPenaltyHandling:
			for i := range objectives {
				objectives[i] = WorstObjective
			}
		default:
			for i := range objectives {
				objectives[i] += penalty * e.penaltyCoefficient
			}
		}
	}

	ind.Objectives = objectives
	ind.Violations = violations
	ind.Feasible = feasible
	ind.Fitness = scalarFitness(objectives)
}

// Evaluations returns how many individuals this evaluator has processed.
func (e *Evaluator) Evaluations() int64 {
	return e.evaluations.Load()
}

// Failures returns how many evaluations were recovered as failures.
func (e *Evaluator) Failures() int64 {
	return e.failures.Load()
}

// Warnings returns the recorded evaluation-failure messages.
func (e *Evaluator) Warnings() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, len(e.warnings))
	copy(out, e.warnings)
	return out
}

func (e *Evaluator) markUnfit(ind *Individual, reason string) {
	e.failures.Add(1)
	metrics.EvaluationFailuresTotal.Inc()

	objectives := make([]float64, len(e.problem.Objectives))
	for i := range objectives {
		objectives[i] = WorstObjective
	}
	ind.Objectives = objectives
	ind.Violations = make([]float64, len(e.problem.Constraints))
	ind.Feasible = false
	ind.Fitness = WorstObjective

	e.mu.Lock()
	e.warnings = append(e.warnings, reason)
	e.mu.Unlock()

	klog.Background().V(2).Info("Evaluation failed, individual marked unfit", "reason", reason)
}

// call invokes an evaluator function, converting panics and non-finite
// results into errors.
func call(fn func(Assignment) float64, a Assignment) (val float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	val = fn(a)
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, fmt.Errorf("non-finite result %v", val)
	}
	return val, nil
}

// scalarFitness is the legacy single-objective projection: the mean of the
// penalty-adjusted objective vector.
func scalarFitness(objectives []float64) float64 {
	sum := 0.0
	for _, v := range objectives {
		sum += v
	}
	return sum / float64(len(objectives))
}
