package framework

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// VariableKind discriminates the supported decision variable encodings.
type VariableKind int

const (
	// Continuous variables take any real value inside [Min, Max].
	Continuous VariableKind = iota
	// Discrete variables take one member of an explicit, ordered value set.
	Discrete
)

func (k VariableKind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	}
	return fmt.Sprintf("unknown(%d)", int(k))
}

// Value is the concrete instantiation of a decision variable. Continuous
// variables always populate Number. Discrete variables hold whichever member
// of their value set was chosen, which may be numeric or symbolic.
type Value struct {
	Number   float64
	Label    string
	Symbolic bool
}

// NumberValue wraps a numeric value.
func NumberValue(v float64) Value {
	return Value{Number: v}
}

// LabelValue wraps a symbolic value.
func LabelValue(s string) Value {
	return Value{Label: s, Symbolic: true}
}

func (v Value) String() string {
	if v.Symbolic {
		return v.Label
	}
	return fmt.Sprintf("%g", v.Number)
}

// Equal compares two values of the same variable.
func (v Value) Equal(o Value) bool {
	if v.Symbolic != o.Symbolic {
		return false
	}
	if v.Symbolic {
		return v.Label == o.Label
	}
	return v.Number == o.Number
}

// Assignment maps variable IDs to concrete values. This is the genome handed
// to objective and constraint functions.
type Assignment map[string]Value

// Clone returns an independent copy of the assignment.
func (a Assignment) Clone() Assignment {
	c := make(Assignment, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// Variable is a typed decision variable. Continuous variables carry [Min, Max]
// bounds; discrete variables carry an ordered set of allowed values. Variables
// are owned by the Problem and read-only during a run.
type Variable struct {
	ID   string
	Kind VariableKind

	// Continuous bounds.
	Min float64
	Max float64

	// Discrete domain, ordered.
	Values []Value
}

// NewContinuous declares a continuous variable bounded by [min, max].
func NewContinuous(id string, min, max float64) Variable {
	return Variable{ID: id, Kind: Continuous, Min: min, Max: max}
}

// NewDiscrete declares a discrete variable over an ordered value set.
func NewDiscrete(id string, values ...Value) Variable {
	return Variable{ID: id, Kind: Discrete, Values: values}
}

// Sample draws a uniformly random value: within bounds for continuous
// variables, a uniformly random member for discrete ones.
func (v Variable) Sample(rng *rand.Rand) Value {
	switch v.Kind {
	case Continuous:
		return NumberValue(v.Min + rng.Float64()*(v.Max-v.Min))
	case Discrete:
		return v.Values[rng.Intn(len(v.Values))]
	}
	panic(fmt.Sprintf("unknown variable kind %d for %q", int(v.Kind), v.ID))
}

// Clamp clips continuous values into [Min, Max]. Discrete values are never
// clamped, only resampled, so they pass through unchanged.
func (v Variable) Clamp(val Value) Value {
	switch v.Kind {
	case Continuous:
		return NumberValue(math.Max(v.Min, math.Min(v.Max, val.Number)))
	case Discrete:
		return val
	}
	panic(fmt.Sprintf("unknown variable kind %d for %q", int(v.Kind), v.ID))
}

// ObjectiveFunc evaluates one objective for a variable assignment. Objectives
// are minimization-oriented; maximization objectives must be negated before
// reaching the engine. The function must be pure and return a finite number
// for any assignment within the declared bounds; NaN or Inf is treated as an
// evaluation failure.
type ObjectiveFunc func(Assignment) float64

// ConstraintFunc evaluates one inequality constraint for an assignment.
// The returned value g(x) is a signed violation: g(x) <= 0 means satisfied,
// g(x) > 0 means violated by that magnitude.
type ConstraintFunc func(Assignment) float64

// ObjectiveSpacePoint represents an N-dimensional point in the objective
// space. For a problem with objectives f1 and f2, a point is [f1(x), f2(x)].
type ObjectiveSpacePoint []float64

// Individual is the evolving unit: a genome plus its evaluated objective
// vector and the NSGA-II bookkeeping attached by ranking. Individuals are
// created fresh each generation; once evaluated they are never mutated in
// place, operators always produce new ones.
type Individual struct {
	Assignment Assignment

	// Objectives is the penalty-adjusted, minimization-oriented objective
	// vector. Comparable across all individuals of a run.
	Objectives []float64

	// Violations holds the signed constraint results in constraint order.
	Violations []float64

	// Feasible is true when every violation is <= 0.
	Feasible bool

	// Fitness is the legacy scalar used for single-objective compatibility,
	// convergence tracking and best-solution tie-breaking. The evaluator sets
	// it to the mean of the objective vector.
	Fitness float64

	Rank             int
	CrowdingDistance float64

	// DominationCount and Dominated are populated by NonDominatedSort for the
	// duration of one sort pass. Dominated holds indices into the slice that
	// was sorted, never live references; both are stale after the next pass.
	DominationCount int
	Dominated       []int
}

// NewIndividual builds an unevaluated individual around a genome.
func NewIndividual(a Assignment) *Individual {
	return &Individual{Assignment: a}
}

// Clone deep-copies the individual, dropping sort bookkeeping.
func (ind *Individual) Clone() *Individual {
	c := &Individual{
		Assignment:       ind.Assignment.Clone(),
		Feasible:         ind.Feasible,
		Fitness:          ind.Fitness,
		Rank:             ind.Rank,
		CrowdingDistance: ind.CrowdingDistance,
	}
	if ind.Objectives != nil {
		c.Objectives = make([]float64, len(ind.Objectives))
		copy(c.Objectives, ind.Objectives)
	}
	if ind.Violations != nil {
		c.Violations = make([]float64, len(ind.Violations))
		copy(c.Violations, ind.Violations)
	}
	return c
}

// Point returns the individual's location in objective space.
func (ind *Individual) Point() ObjectiveSpacePoint {
	return ObjectiveSpacePoint(ind.Objectives)
}
