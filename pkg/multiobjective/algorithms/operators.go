package algorithms

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// DefaultDistributionIndex is the SBX/polynomial-mutation distribution index
// eta. Larger values keep children closer to their parents.
const DefaultDistributionIndex = 20.0

// Operators bundles the genetic operators over mixed continuous/discrete
// genomes. Crossover is gated per individual by CrossoverRate; mutation is
// applied per variable with MutationRate probability. Not safe for concurrent
// use: each worker owns its own Operators (the RNG is not synchronized).
type Operators struct {
	CrossoverRate     float64
	MutationRate      float64
	DistributionIndex float64

	variables []framework.Variable
	rng       *rand.Rand
}

// NewOperators builds the operator set for a problem's variables. A zero
// MutationRate selects the canonical 1/numVariables so each offspring expects
// about one mutated gene; a zero DistributionIndex selects the default eta.
func NewOperators(variables []framework.Variable, crossoverRate, mutationRate, eta float64, rng *rand.Rand) *Operators {
	if mutationRate <= 0 {
		mutationRate = 1.0 / float64(len(variables))
	}
	if eta <= 0 {
		eta = DefaultDistributionIndex
	}
	return &Operators{
		CrossoverRate:     crossoverRate,
		MutationRate:      mutationRate,
		DistributionIndex: eta,
		variables:         variables,
		rng:               rng,
	}
}

// Crossover produces two children from two parents. With probability
// 1-CrossoverRate the children are plain clones; otherwise every continuous
// variable goes through simulated binary crossover and every discrete
// variable through uniform inheritance. Crossover is attempted for the
// individual as a whole, not per gene.
func (o *Operators) Crossover(p1, p2 *framework.Individual) (*framework.Individual, *framework.Individual) {
	c1 := framework.NewIndividual(p1.Assignment.Clone())
	c2 := framework.NewIndividual(p2.Assignment.Clone())

	if o.rng.Float64() >= o.CrossoverRate {
		return c1, c2
	}

	for _, v := range o.variables {
		v1 := p1.Assignment[v.ID]
		v2 := p2.Assignment[v.ID]

		switch v.Kind {
		case framework.Continuous:
			y1, y2 := o.sbx(v1.Number, v2.Number)
			c1.Assignment[v.ID] = v.Clamp(framework.NumberValue(y1))
			c2.Assignment[v.ID] = v.Clamp(framework.NumberValue(y2))
		case framework.Discrete:
			// Uniform discrete crossover: each child independently inherits
			// one parent's value with probability 0.5.
			if o.rng.Float64() < 0.5 {
				c1.Assignment[v.ID] = v1
			} else {
				c1.Assignment[v.ID] = v2
			}
			if o.rng.Float64() < 0.5 {
				c2.Assignment[v.ID] = v1
			} else {
				c2.Assignment[v.ID] = v2
			}
		}
	}

	return c1, c2
}

// sbx performs simulated binary crossover on one continuous gene pair. The
// spread factor beta is drawn from the polynomial distribution controlled by
// eta; the children straddle the parents symmetrically.
func (o *Operators) sbx(v1, v2 float64) (float64, float64) {
	u := o.rng.Float64()
	var beta float64
	if u <= 0.5 {
		beta = math.Pow(2*u, 1.0/(o.DistributionIndex+1))
	} else {
		beta = math.Pow(1.0/(2*(1.0-u)), 1.0/(o.DistributionIndex+1))
	}

	y1 := 0.5 * ((1+beta)*v1 + (1-beta)*v2)
	y2 := 0.5 * ((1-beta)*v1 + (1+beta)*v2)
	return y1, y2
}

// Mutate applies polynomial mutation to continuous variables and uniform
// resampling to discrete ones, each variable independently with MutationRate
// probability. The discrete resample may pick the current value again; there
// is no different-value guarantee.
func (o *Operators) Mutate(ind *framework.Individual) {
	for _, v := range o.variables {
		if o.rng.Float64() >= o.MutationRate {
			continue
		}

		switch v.Kind {
		case framework.Continuous:
			u := o.rng.Float64()
			var delta float64
			if u < 0.5 {
				delta = math.Pow(2*u, 1.0/(o.DistributionIndex+1)) - 1
			} else {
				delta = 1 - math.Pow(2*(1-u), 1.0/(o.DistributionIndex+1))
			}
			val := ind.Assignment[v.ID].Number + delta*(v.Max-v.Min)
			ind.Assignment[v.ID] = v.Clamp(framework.NumberValue(val))
		case framework.Discrete:
			ind.Assignment[v.ID] = v.Sample(o.rng)
		}
	}
}
