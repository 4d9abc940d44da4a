package framework_test

import (
	"strings"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

func twoObjectives() []framework.ObjectiveFunc {
	return []framework.ObjectiveFunc{
		func(a framework.Assignment) float64 { return a["x"].Number },
		func(a framework.Assignment) float64 { return -a["x"].Number },
	}
}

func TestProblemValidate(t *testing.T) {
	testCases := []struct {
		name       string
		problem    framework.Problem
		shouldPass bool
		errSubstr  string
	}{
		{
			name: "ValidContinuousProblem",
			problem: framework.Problem{
				Name:       "valid",
				Variables:  []framework.Variable{framework.NewContinuous("x", 0, 1)},
				Objectives: twoObjectives(),
			},
			shouldPass: true,
		},
		{
			name: "NoVariables",
			problem: framework.Problem{
				Name:       "empty",
				Objectives: twoObjectives(),
			},
			shouldPass: false,
			errSubstr:  "variable list must not be empty",
		},
		{
			name: "SingleObjective",
			problem: framework.Problem{
				Name:      "mono",
				Variables: []framework.Variable{framework.NewContinuous("x", 0, 1)},
				Objectives: []framework.ObjectiveFunc{
					func(a framework.Assignment) float64 { return a["x"].Number },
				},
			},
			shouldPass: false,
			errSubstr:  "at least 2 objectives",
		},
		{
			name: "ObjectiveNameCountMismatch",
			problem: framework.Problem{
				Name:           "names",
				Variables:      []framework.Variable{framework.NewContinuous("x", 0, 1)},
				ObjectiveNames: []string{"only-one"},
				Objectives:     twoObjectives(),
			},
			shouldPass: false,
			errSubstr:  "objective names",
		},
		{
			name: "ConstraintNameCountMismatch",
			problem: framework.Problem{
				Name:            "cnames",
				Variables:       []framework.Variable{framework.NewContinuous("x", 0, 1)},
				Objectives:      twoObjectives(),
				ConstraintNames: []string{"g1", "g2"},
				Constraints: []framework.ConstraintFunc{
					func(a framework.Assignment) float64 { return -1 },
				},
			},
			shouldPass: false,
			errSubstr:  "constraint names",
		},
		{
			name: "EmptyVariableID",
			problem: framework.Problem{
				Name:       "blank",
				Variables:  []framework.Variable{framework.NewContinuous("", 0, 1)},
				Objectives: twoObjectives(),
			},
			shouldPass: false,
			errSubstr:  "empty ID",
		},
		{
			name: "DuplicateVariableID",
			problem: framework.Problem{
				Name: "dup",
				Variables: []framework.Variable{
					framework.NewContinuous("x", 0, 1),
					framework.NewContinuous("x", 2, 3),
				},
				Objectives: twoObjectives(),
			},
			shouldPass: false,
			errSubstr:  "duplicate variable ID",
		},
		{
			name: "InvertedBounds",
			problem: framework.Problem{
				Name:       "inverted",
				Variables:  []framework.Variable{framework.NewContinuous("x", 1, 0)},
				Objectives: twoObjectives(),
			},
			shouldPass: false,
			errSubstr:  "must be below max",
		},
		{
			name: "DegenerateBounds",
			problem: framework.Problem{
				Name:       "point",
				Variables:  []framework.Variable{framework.NewContinuous("x", 1, 1)},
				Objectives: twoObjectives(),
			},
			shouldPass: false,
			errSubstr:  "must be below max",
		},
		{
			name: "EmptyDiscreteSet",
			problem: framework.Problem{
				Name:       "nochoice",
				Variables:  []framework.Variable{framework.NewDiscrete("m")},
				Objectives: twoObjectives(),
			},
			shouldPass: false,
			errSubstr:  "must not be empty",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.problem.Validate()
			if tc.shouldPass && err != nil {
				t.Errorf("Expected valid problem, got error: %v", err)
			}
			if !tc.shouldPass {
				if err == nil {
					t.Fatalf("Expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tc.errSubstr) {
					t.Errorf("Expected error containing %q, got %q", tc.errSubstr, err.Error())
				}
			}
		})
	}
}

func TestObjectiveAndConstraintNames(t *testing.T) {
	named := framework.Problem{
		ObjectiveNames:  []string{"cost", "pressure"},
		Objectives:      twoObjectives(),
		ConstraintNames: []string{"velocity"},
		Constraints: []framework.ConstraintFunc{
			func(a framework.Assignment) float64 { return -1 },
		},
	}
	if got := named.ObjectiveName(0); got != "cost" {
		t.Errorf("Expected cost, got %q", got)
	}
	if got := named.ConstraintName(0); got != "velocity" {
		t.Errorf("Expected velocity, got %q", got)
	}

	anonymous := framework.Problem{
		Objectives: twoObjectives(),
		Constraints: []framework.ConstraintFunc{
			func(a framework.Assignment) float64 { return -1 },
		},
	}
	if got := anonymous.ObjectiveName(1); got != "f2" {
		t.Errorf("Expected f2, got %q", got)
	}
	if got := anonymous.ConstraintName(0); got != "g1" {
		t.Errorf("Expected g1, got %q", got)
	}
}

func TestInitialize(t *testing.T) {
	problem := framework.Problem{
		Name: "init",
		Variables: []framework.Variable{
			framework.NewContinuous("x", -2, 2),
			framework.NewDiscrete("m", framework.LabelValue("a"), framework.LabelValue("b")),
		},
		Objectives: twoObjectives(),
	}
	rng := rand.New(rand.NewSource(7))

	population := problem.Initialize(50, rng)
	if len(population) != 50 {
		t.Fatalf("Expected 50 individuals, got %d", len(population))
	}

	for i, ind := range population {
		if len(ind.Assignment) != 2 {
			t.Fatalf("Individual %d: expected 2 variables, got %d", i, len(ind.Assignment))
		}
		x := ind.Assignment["x"]
		if x.Number < -2 || x.Number > 2 {
			t.Errorf("Individual %d: x=%v outside [-2, 2]", i, x.Number)
		}
		m := ind.Assignment["m"]
		if m.Label != "a" && m.Label != "b" {
			t.Errorf("Individual %d: m=%q not in value set", i, m.Label)
		}
		if ind.Objectives != nil {
			t.Errorf("Individual %d: expected unevaluated, got objectives %v", i, ind.Objectives)
		}
	}
}
