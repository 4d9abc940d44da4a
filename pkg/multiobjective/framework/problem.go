package framework

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Problem is the immutable definition of an optimization problem: the decision
// variables, the objective functions (>= 2, multi-objective optimization is
// undefined for one) and the constraint functions. The engine never mutates a
// Problem; one instance can back any number of runs.
type Problem struct {
	Name string

	Variables []Variable

	// ObjectiveNames parallel Objectives. Names are optional but when given
	// their count must match, this is how identifier/function mismatches from
	// the caller are caught before a run starts.
	ObjectiveNames []string
	Objectives     []ObjectiveFunc

	ConstraintNames []string
	Constraints     []ConstraintFunc
}

// Validate checks the problem definition and returns the first violation.
// These are programmer errors and abort a run before it starts.
func (p *Problem) Validate() error {
	if len(p.Variables) == 0 {
		return fmt.Errorf("problem %q: variable list must not be empty", p.Name)
	}
	if len(p.Objectives) < 2 {
		return fmt.Errorf("problem %q: need at least 2 objectives, got %d", p.Name, len(p.Objectives))
	}
	if len(p.ObjectiveNames) > 0 && len(p.ObjectiveNames) != len(p.Objectives) {
		return fmt.Errorf("problem %q: %d objective names for %d objective functions", p.Name, len(p.ObjectiveNames), len(p.Objectives))
	}
	if len(p.ConstraintNames) > 0 && len(p.ConstraintNames) != len(p.Constraints) {
		return fmt.Errorf("problem %q: %d constraint names for %d constraint functions", p.Name, len(p.ConstraintNames), len(p.Constraints))
	}

	seen := make(map[string]bool, len(p.Variables))
	for _, v := range p.Variables {
		if v.ID == "" {
			return fmt.Errorf("problem %q: variable with empty ID", p.Name)
		}
		if seen[v.ID] {
			return fmt.Errorf("problem %q: duplicate variable ID %q", p.Name, v.ID)
		}
		seen[v.ID] = true

		switch v.Kind {
		case Continuous:
			if v.Min >= v.Max {
				return fmt.Errorf("variable %q: min %v must be below max %v", v.ID, v.Min, v.Max)
			}
		case Discrete:
			if len(v.Values) == 0 {
				return fmt.Errorf("variable %q: discrete value set must not be empty", v.ID)
			}
		default:
			return fmt.Errorf("variable %q: unknown kind %d", v.ID, int(v.Kind))
		}
	}
	return nil
}

// NumObjectives returns the objective count.
func (p *Problem) NumObjectives() int {
	return len(p.Objectives)
}

// ObjectiveName returns the declared name of objective i, or a positional
// fallback when the caller supplied no names.
func (p *Problem) ObjectiveName(i int) string {
	if i < len(p.ObjectiveNames) {
		return p.ObjectiveNames[i]
	}
	return fmt.Sprintf("f%d", i+1)
}

// ConstraintName returns the declared name of constraint i, or a positional
// fallback when the caller supplied no names.
func (p *Problem) ConstraintName(i int) string {
	if i < len(p.ConstraintNames) {
		return p.ConstraintNames[i]
	}
	return fmt.Sprintf("g%d", i+1)
}

// Initialize draws popSize random genomes within the variable domains.
func (p *Problem) Initialize(popSize int, rng *rand.Rand) []*Individual {
	population := make([]*Individual, popSize)
	for i := 0; i < popSize; i++ {
		a := make(Assignment, len(p.Variables))
		for _, v := range p.Variables {
			a[v.ID] = v.Sample(rng)
		}
		population[i] = NewIndividual(a)
	}
	return population
}
