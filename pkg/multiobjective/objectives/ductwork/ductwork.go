// Package ductwork provides the worked duct-sizing objectives: pressure loss,
// fan energy and installed cost over a run of duct segments. It exists as the
// canonical demonstration of wiring domain evaluators into the engine; the
// physics is standard engineering practice, not a compliance reference.
package ductwork

import (
	"math"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

// Air properties at standard conditions.
const (
	airDensity   = 1.2    // kg/m3
	airViscosity = 1.8e-5 // Pa*s
)

// Segment describes one duct run to be sized.
type Segment struct {
	Name    string
	Length  float64 // m
	Airflow float64 // m3/s
}

// Material holds the surface properties a duct material contributes to the
// friction and cost models.
type Material struct {
	Name      string
	Roughness float64 // absolute roughness, m
	UnitCost  float64 // installed sheet cost, $/m2
}

// StandardMaterials is the discrete material palette the sizing problem
// offers, ordered cheapest-first.
func StandardMaterials() []Material {
	return []Material{
		{Name: "flexible", Roughness: 3e-3, UnitCost: 15},
		{Name: "galvanized", Roughness: 1.5e-4, UnitCost: 28},
		{Name: "aluminum", Roughness: 5e-5, UnitCost: 40},
		{Name: "stainless", Roughness: 3e-5, UnitCost: 85},
	}
}

// DuctConfig contains the shared sizing parameters.
type DuctConfig struct {
	// Diameter search range, m.
	MinDiameter float64
	MaxDiameter float64

	// Velocity band, m/s. Below the minimum, particulates settle; above the
	// maximum, noise and erosion dominate.
	MinVelocity float64
	MaxVelocity float64

	// Fan and duty-cycle parameters for the energy objective.
	FanEfficiency  float64
	AnnualRunHours float64

	Materials []Material
}

// DefaultDuctConfig returns commercial-HVAC defaults.
func DefaultDuctConfig() DuctConfig {
	return DuctConfig{
		MinDiameter:    0.10,
		MaxDiameter:    1.00,
		MinVelocity:    2.0,
		MaxVelocity:    10.0,
		FanEfficiency:  0.65,
		AnnualRunHours: 3000,
		Materials:      StandardMaterials(),
	}
}

// SegmentResult carries the per-segment evaluation details.
type SegmentResult struct {
	Name           string
	Diameter       float64 // m
	Velocity       float64 // m/s
	ReynoldsNumber float64
	FrictionFactor float64
	PressureLoss   float64 // Pa
	SurfaceArea    float64 // m2
}

// DuctResult aggregates one assignment's evaluation.
type DuctResult struct {
	Material          string
	TotalPressureLoss float64 // Pa
	AnnualEnergy      float64 // kWh/yr
	InstalledCost     float64 // $
	Segments          []SegmentResult
}

// DiameterVariableID names the continuous diameter variable for a segment.
func DiameterVariableID(segmentName string) string {
	return "diameter_" + segmentName
}

// MaterialVariableID is the shared discrete material variable.
const MaterialVariableID = "material"

// PressureLossObjective computes the total friction pressure loss across all
// segments for an assignment.
func PressureLossObjective(a framework.Assignment, segments []Segment, config DuctConfig) float64 {
	result := evaluateDucts(a, segments, config)
	return result.TotalPressureLoss
}

// EnergyObjective computes the annual fan energy needed to overcome the
// friction losses.
func EnergyObjective(a framework.Assignment, segments []Segment, config DuctConfig) float64 {
	result := evaluateDucts(a, segments, config)
	return result.AnnualEnergy
}

// CostObjective computes the installed sheet-metal cost.
func CostObjective(a framework.Assignment, segments []Segment, config DuctConfig) float64 {
	result := evaluateDucts(a, segments, config)
	return result.InstalledCost
}

// EvaluateWithDetails returns the full per-segment breakdown for reporting.
func EvaluateWithDetails(a framework.Assignment, segments []Segment, config DuctConfig) DuctResult {
	return evaluateDucts(a, segments, config)
}

// PressureLossObjectiveFunc returns a pressure-loss objective bound to a
// segment list.
func PressureLossObjectiveFunc(segments []Segment, config DuctConfig) framework.ObjectiveFunc {
	return func(a framework.Assignment) float64 {
		return PressureLossObjective(a, segments, config)
	}
}

// EnergyObjectiveFunc returns an annual-energy objective bound to a segment
// list.
func EnergyObjectiveFunc(segments []Segment, config DuctConfig) framework.ObjectiveFunc {
	return func(a framework.Assignment) float64 {
		return EnergyObjective(a, segments, config)
	}
}

// CostObjectiveFunc returns an installed-cost objective bound to a segment
// list.
func CostObjectiveFunc(segments []Segment, config DuctConfig) framework.ObjectiveFunc {
	return func(a framework.Assignment) float64 {
		return CostObjective(a, segments, config)
	}
}

// evaluateDucts runs the physics for one assignment: velocity from the
// continuity equation, Swamee-Jain friction factor, Darcy-Weisbach pressure
// loss, fan power from flow work, sheet cost from surface area.
func evaluateDucts(a framework.Assignment, segments []Segment, config DuctConfig) DuctResult {
	material := materialByName(config.Materials, a[MaterialVariableID].Label)

	result := DuctResult{
		Material: material.Name,
		Segments: make([]SegmentResult, len(segments)),
	}

	totalFlowWork := 0.0
	for i, seg := range segments {
		d := a[DiameterVariableID(seg.Name)].Number
		area := math.Pi * d * d / 4
		velocity := seg.Airflow / area

		re := airDensity * velocity * d / airViscosity
		f := swameeJain(material.Roughness, d, re)
		loss := f * (seg.Length / d) * 0.5 * airDensity * velocity * velocity
		surface := math.Pi * d * seg.Length

		result.Segments[i] = SegmentResult{
			Name:           seg.Name,
			Diameter:       d,
			Velocity:       velocity,
			ReynoldsNumber: re,
			FrictionFactor: f,
			PressureLoss:   loss,
			SurfaceArea:    surface,
		}

		result.TotalPressureLoss += loss
		result.InstalledCost += surface * material.UnitCost
		totalFlowWork += seg.Airflow * loss
	}

	fanPower := totalFlowWork / config.FanEfficiency // W
	result.AnnualEnergy = fanPower * config.AnnualRunHours / 1000

	return result
}

// swameeJain approximates the Darcy friction factor for turbulent flow.
// Laminar flows fall back to 64/Re.
func swameeJain(roughness, diameter, re float64) float64 {
	if re < 2300 {
		if re <= 0 {
			return 0
		}
		return 64 / re
	}
	denom := math.Log10(roughness/(3.7*diameter) + 5.74/math.Pow(re, 0.9))
	return 0.25 / (denom * denom)
}

func materialByName(materials []Material, name string) Material {
	for _, m := range materials {
		if m.Name == name {
			return m
		}
	}
	// Unknown labels evaluate as the roughest, cheapest material rather than
	// failing the whole individual.
	return materials[0]
}
