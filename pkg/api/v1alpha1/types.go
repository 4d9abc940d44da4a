/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

// Algorithm names accepted by OptimizationConfig.
const (
	AlgorithmNSGAII      = "NSGA-II"
	AlgorithmWeightedSum = "WeightedSum"
)

// Constraint handling modes accepted by OptimizationConfig.
const (
	// ConstraintHandlingPenalty adds the summed violation, scaled by
	// PenaltyCoefficient, onto every objective of an infeasible solution.
	ConstraintHandlingPenalty = "Penalty"
	// ConstraintHandlingDeathPenalty assigns infeasible solutions the worst
	// representable objective values instead.
	ConstraintHandlingDeathPenalty = "DeathPenalty"
)

// Hypervolume reference point policies accepted by OptimizationConfig.
const (
	// ReferenceFixed anchors the reference point on the initial population so
	// the hypervolume series is monotone-comparable across generations.
	ReferenceFixed = "Fixed"
	// ReferencePerGeneration recomputes the reference point from each
	// generation's front.
	ReferencePerGeneration = "PerGeneration"
)

// OptimizationConfig configures a multi-objective optimization run.
// Zero-valued fields are filled in by SetDefaults_OptimizationConfig.
type OptimizationConfig struct {
	// Algorithm selects the search strategy: NSGA-II or WeightedSum
	Algorithm string `json:"algorithm,omitempty"`

	// PopulationSize is the number of candidate solutions kept per generation
	PopulationSize int `json:"populationSize,omitempty"`

	// MaxGenerations bounds the generational loop
	MaxGenerations int `json:"maxGenerations,omitempty"`

	// CrossoverRate is the per-pair probability of recombination
	CrossoverRate float64 `json:"crossoverRate,omitempty"`

	// MutationRate is the per-variable mutation probability. Zero selects
	// 1/numVariables at run time.
	MutationRate float64 `json:"mutationRate,omitempty"`

	// DistributionIndex shapes SBX crossover and polynomial mutation;
	// larger values keep children closer to their parents
	DistributionIndex float64 `json:"distributionIndex,omitempty"`

	// TournamentSize is the number of contenders per selection tournament
	TournamentSize int `json:"tournamentSize,omitempty"`

	// ConstraintHandling selects Penalty or DeathPenalty
	ConstraintHandling string `json:"constraintHandling,omitempty"`

	// PenaltyCoefficient scales constraint violations folded into objectives
	PenaltyCoefficient float64 `json:"penaltyCoefficient,omitempty"`

	// ArchiveSize caps the external archive of non-dominated solutions
	ArchiveSize int `json:"archiveSize,omitempty"`

	// ConvergenceThreshold stops the run early once the best-fitness spread
	// over the trailing window falls below it. Zero or negative disables
	// early stopping.
	ConvergenceThreshold float64 `json:"convergenceThreshold,omitempty"`

	// ConvergenceWindow is the number of trailing generations inspected for
	// the convergence check
	ConvergenceWindow int `json:"convergenceWindow,omitempty"`

	// HypervolumeReference selects Fixed or PerGeneration
	HypervolumeReference string `json:"hypervolumeReference,omitempty"`

	// Parallel evaluates individuals across all CPUs
	Parallel bool `json:"parallel,omitempty"`

	// Seed makes runs reproducible. Zero draws a time-based seed.
	Seed uint64 `json:"seed,omitempty"`

	// Weights scalarizes objectives for the WeightedSum algorithm. When set,
	// its length must match the problem's objective count; NSGA-II ignores it.
	Weights []float64 `json:"weights,omitempty"`
}

// DuctOptimizationJob is the YAML document the CLI consumes: a duct sizing
// problem plus the engine settings to solve it with.
type DuctOptimizationJob struct {
	// Engine configures the optimization run; omitted fields take defaults
	Engine OptimizationConfig `json:"engine,omitempty"`

	// Duct describes the network to size
	Duct DuctSizingSpec `json:"duct"`
}

// DuctSizingSpec describes a duct network sizing problem for the CLI.
type DuctSizingSpec struct {
	// Segments lists the duct runs to size
	Segments []DuctSegmentSpec `json:"segments"`

	// MinVelocity is the lowest acceptable air velocity in m/s
	MinVelocity float64 `json:"minVelocity,omitempty"`

	// MaxVelocity is the highest acceptable air velocity in m/s
	MaxVelocity float64 `json:"maxVelocity,omitempty"`

	// MinDiameter is the smallest selectable duct diameter in meters
	MinDiameter float64 `json:"minDiameter,omitempty"`

	// MaxDiameter is the largest selectable duct diameter in meters
	MaxDiameter float64 `json:"maxDiameter,omitempty"`

	// OperatingHours is the fan runtime per year used for the energy
	// objective
	OperatingHours float64 `json:"operatingHours,omitempty"`

	// FanEfficiency is the combined fan and drive efficiency in (0, 1]
	FanEfficiency float64 `json:"fanEfficiency,omitempty"`
}

// DuctSegmentSpec describes one duct run.
type DuctSegmentSpec struct {
	// Name identifies the segment in results and variable IDs
	Name string `json:"name"`

	// Airflow is the design volumetric flow in m^3/s
	Airflow float64 `json:"airflow"`

	// Length is the segment length in meters
	Length float64 `json:"length"`
}
