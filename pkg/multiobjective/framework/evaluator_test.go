package framework_test

import (
	"math"
	"strings"
	"testing"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// constrainedProblem minimizes (x, -x) subject to x >= 1, expressed as the
// signed violation g(x) = 1 - x.
func constrainedProblem() *framework.Problem {
	return &framework.Problem{
		Name:      "constrained",
		Variables: []framework.Variable{framework.NewContinuous("x", -10, 10)},
		Objectives: []framework.ObjectiveFunc{
			func(a framework.Assignment) float64 { return a["x"].Number },
			func(a framework.Assignment) float64 { return -a["x"].Number },
		},
		Constraints: []framework.ConstraintFunc{
			func(a framework.Assignment) float64 { return 1 - a["x"].Number },
		},
	}
}

func evaluateAt(e *framework.Evaluator, x float64) *framework.Individual {
	ind := framework.NewIndividual(framework.Assignment{"x": framework.NumberValue(x)})
	e.Evaluate(ind)
	return ind
}

func TestEvaluateFeasible(t *testing.T) {
	e := framework.NewEvaluator(constrainedProblem(), framework.EvaluatorConfig{})

	ind := evaluateAt(e, 2.0)

	if !ind.Feasible {
		t.Errorf("Expected feasible, got infeasible with violations %v", ind.Violations)
	}
	if ind.Objectives[0] != 2.0 || ind.Objectives[1] != -2.0 {
		t.Errorf("Expected objectives [2, -2], got %v", ind.Objectives)
	}
	if ind.Violations[0] != -1.0 {
		t.Errorf("Expected violation -1, got %v", ind.Violations[0])
	}
	if ind.Fitness != 0.0 {
		t.Errorf("Expected mean fitness 0, got %v", ind.Fitness)
	}
}

func TestEvaluatePenalty(t *testing.T) {
	e := framework.NewEvaluator(constrainedProblem(), framework.EvaluatorConfig{
		PenaltyCoefficient: 100,
	})

	// x=0 violates x >= 1 by exactly 1.
	ind := evaluateAt(e, 0.0)

	if ind.Feasible {
		t.Error("Expected infeasible individual")
	}
	if ind.Violations[0] != 1.0 {
		t.Errorf("Expected violation 1, got %v", ind.Violations[0])
	}
	// Both objectives carry the same penalty: 0 + 1*100 and -0 + 1*100.
	if ind.Objectives[0] != 100.0 || ind.Objectives[1] != 100.0 {
		t.Errorf("Expected objectives [100, 100], got %v", ind.Objectives)
	}

	// Deeper violations must score strictly worse on every objective.
	worse := evaluateAt(e, -1.0)
	if worse.Objectives[0] <= ind.Objectives[0] {
		t.Errorf("Expected deeper violation to score worse, got %v vs %v", worse.Objectives[0], ind.Objectives[0])
	}
}

func TestEvaluateDeathPenalty(t *testing.T) {
	e := framework.NewEvaluator(constrainedProblem(), framework.EvaluatorConfig{
		ConstraintHandling: framework.DeathPenaltyHandling,
	})

	ind := evaluateAt(e, 0.0)

	if ind.Feasible {
		t.Error("Expected infeasible individual")
	}
	for i, obj := range ind.Objectives {
		if obj != framework.WorstObjective {
			t.Errorf("Objective %d: expected worst sentinel, got %v", i, obj)
		}
	}

	// The violation gradient is gone: two different violation depths land on
	// the same sentinel.
	deeper := evaluateAt(e, -5.0)
	if deeper.Objectives[0] != ind.Objectives[0] {
		t.Errorf("Expected identical sentinel objectives, got %v vs %v", deeper.Objectives[0], ind.Objectives[0])
	}
}

func TestEvaluateRecoverPanic(t *testing.T) {
	problem := &framework.Problem{
		Name:      "panicky",
		Variables: []framework.Variable{framework.NewContinuous("x", 0, 1)},
		Objectives: []framework.ObjectiveFunc{
			func(a framework.Assignment) float64 { panic("objective blew up") },
			func(a framework.Assignment) float64 { return 0 },
		},
	}
	e := framework.NewEvaluator(problem, framework.EvaluatorConfig{})

	ind := evaluateAt(e, 0.5)

	if ind.Feasible {
		t.Error("Expected failed evaluation to be infeasible")
	}
	for i, obj := range ind.Objectives {
		if obj != framework.WorstObjective {
			t.Errorf("Objective %d: expected worst sentinel, got %v", i, obj)
		}
	}
	if ind.Fitness != framework.WorstObjective {
		t.Errorf("Expected worst fitness, got %v", ind.Fitness)
	}
	if e.Failures() != 1 {
		t.Errorf("Expected 1 failure, got %d", e.Failures())
	}

	warnings := e.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0], "objective blew up") {
		t.Errorf("Expected warning to carry the panic message, got %q", warnings[0])
	}
}

func TestEvaluateRejectNonFinite(t *testing.T) {
	testCases := []struct {
		name   string
		result float64
	}{
		{name: "NaN", result: math.NaN()},
		{name: "PositiveInf", result: math.Inf(1)},
		{name: "NegativeInf", result: math.Inf(-1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			problem := &framework.Problem{
				Name:      "nonfinite",
				Variables: []framework.Variable{framework.NewContinuous("x", 0, 1)},
				Objectives: []framework.ObjectiveFunc{
					func(a framework.Assignment) float64 { return tc.result },
					func(a framework.Assignment) float64 { return 0 },
				},
			}
			e := framework.NewEvaluator(problem, framework.EvaluatorConfig{})

			ind := evaluateAt(e, 0.5)

			if ind.Objectives[0] != framework.WorstObjective {
				t.Errorf("Expected worst sentinel, got %v", ind.Objectives[0])
			}
			if e.Failures() != 1 {
				t.Errorf("Expected 1 failure, got %d", e.Failures())
			}
		})
	}
}

func TestEvaluateFailedConstraintShortCircuits(t *testing.T) {
	objectiveCalls := 0
	problem := &framework.Problem{
		Name:      "shortcircuit",
		Variables: []framework.Variable{framework.NewContinuous("x", 0, 1)},
		Objectives: []framework.ObjectiveFunc{
			func(a framework.Assignment) float64 { objectiveCalls++; return 0 },
			func(a framework.Assignment) float64 { objectiveCalls++; return 0 },
		},
		Constraints: []framework.ConstraintFunc{
			func(a framework.Assignment) float64 { panic("constraint blew up") },
		},
	}
	e := framework.NewEvaluator(problem, framework.EvaluatorConfig{})

	evaluateAt(e, 0.5)

	if objectiveCalls != 0 {
		t.Errorf("Expected no objective calls after constraint failure, got %d", objectiveCalls)
	}
	warnings := e.Warnings()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "g1") {
		t.Errorf("Expected warning naming constraint g1, got %v", warnings)
	}
}

func TestEvaluationCounters(t *testing.T) {
	e := framework.NewEvaluator(constrainedProblem(), framework.EvaluatorConfig{})

	for i := 0; i < 5; i++ {
		evaluateAt(e, float64(i))
	}

	if e.Evaluations() != 5 {
		t.Errorf("Expected 5 evaluations, got %d", e.Evaluations())
	}
	if e.Failures() != 0 {
		t.Errorf("Expected 0 failures, got %d", e.Failures())
	}
}
