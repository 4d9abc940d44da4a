package ductwork

import (
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/constraints"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// NewSizingProblem assembles the mixed continuous/discrete duct-sizing
// problem: one diameter variable per segment, one shared material variable,
// pressure/energy/cost objectives and the velocity-band constraints.
func NewSizingProblem(segments []Segment, config DuctConfig) *framework.Problem {
	variables := make([]framework.Variable, 0, len(segments)+1)
	for _, seg := range segments {
		variables = append(variables,
			framework.NewContinuous(DiameterVariableID(seg.Name), config.MinDiameter, config.MaxDiameter))
	}

	materialValues := make([]framework.Value, len(config.Materials))
	for i, m := range config.Materials {
		materialValues[i] = framework.LabelValue(m.Name)
	}
	variables = append(variables, framework.NewDiscrete(MaterialVariableID, materialValues...))

	return &framework.Problem{
		Name:      "duct-sizing",
		Variables: variables,
		ObjectiveNames: []string{
			"pressure_loss_pa",
			"annual_energy_kwh",
			"installed_cost_usd",
		},
		Objectives: []framework.ObjectiveFunc{
			PressureLossObjectiveFunc(segments, config),
			EnergyObjectiveFunc(segments, config),
			CostObjectiveFunc(segments, config),
		},
		ConstraintNames: []string{
			"velocity_ceiling",
			"velocity_floor",
		},
		Constraints: []framework.ConstraintFunc{
			MaxVelocityConstraint(segments, config),
			MinVelocityConstraint(segments, config),
		},
	}
}

// MaxVelocityConstraint keeps the fastest segment at or below the velocity
// ceiling. The violation is the worst excess in m/s.
func MaxVelocityConstraint(segments []Segment, config DuctConfig) framework.ConstraintFunc {
	return constraints.UpperBound(config.MaxVelocity, func(a framework.Assignment) float64 {
		result := evaluateDucts(a, segments, config)
		fastest := 0.0
		for _, seg := range result.Segments {
			if seg.Velocity > fastest {
				fastest = seg.Velocity
			}
		}
		return fastest
	})
}

// MinVelocityConstraint keeps the slowest segment at or above the settling
// floor. The violation is the worst shortfall in m/s.
func MinVelocityConstraint(segments []Segment, config DuctConfig) framework.ConstraintFunc {
	return constraints.LowerBound(config.MinVelocity, func(a framework.Assignment) float64 {
		result := evaluateDucts(a, segments, config)
		slowest := result.Segments[0].Velocity
		for _, seg := range result.Segments {
			if seg.Velocity < slowest {
				slowest = seg.Velocity
			}
		}
		return slowest
	})
}
