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

package multiobjective

import (
	"github.com/engryamato/sizewise-optimize/pkg/api/v1alpha1"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/algorithms"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

const (
	DefaultPopulationSize       = 50
	DefaultMaxGenerations       = 100
	DefaultCrossoverProbability = 0.9
	DefaultMutationProbability  = 0.1
	DefaultTournamentSize       = 2
	DefaultArchiveSize          = 100
	DefaultConvergenceWindow    = 10
)

// SetDefaults_OptimizationConfig fills zero-valued fields with the standard
// NSGA-II settings. MutationRate stays zero so the engine can substitute the
// per-problem 1/numVariables rate at run time.
func SetDefaults_OptimizationConfig(obj *v1alpha1.OptimizationConfig) {
	if obj.Algorithm == "" {
		obj.Algorithm = v1alpha1.AlgorithmNSGAII
	}
	if obj.PopulationSize == 0 {
		obj.PopulationSize = DefaultPopulationSize
	}
	if obj.MaxGenerations == 0 {
		obj.MaxGenerations = DefaultMaxGenerations
	}
	if obj.CrossoverRate == 0 {
		obj.CrossoverRate = DefaultCrossoverProbability
	}
	if obj.DistributionIndex == 0 {
		obj.DistributionIndex = algorithms.DefaultDistributionIndex
	}
	if obj.TournamentSize == 0 {
		obj.TournamentSize = DefaultTournamentSize
	}
	if obj.ConstraintHandling == "" {
		obj.ConstraintHandling = v1alpha1.ConstraintHandlingPenalty
	}
	if obj.PenaltyCoefficient == 0 {
		obj.PenaltyCoefficient = framework.DefaultPenaltyCoefficient
	}
	if obj.ArchiveSize == 0 {
		obj.ArchiveSize = DefaultArchiveSize
	}
	if obj.ConvergenceWindow == 0 {
		obj.ConvergenceWindow = DefaultConvergenceWindow
	}
	if obj.HypervolumeReference == "" {
		obj.HypervolumeReference = v1alpha1.ReferenceFixed
	}
}

// SetDefaults_DuctSizingSpec fills the physical defaults for duct sizing:
// common velocity limits for low-pressure supply duct and a typical fan duty.
func SetDefaults_DuctSizingSpec(obj *v1alpha1.DuctSizingSpec) {
	if obj.MinVelocity == 0 {
		obj.MinVelocity = 2.0
	}
	if obj.MaxVelocity == 0 {
		obj.MaxVelocity = 10.0
	}
	if obj.MinDiameter == 0 {
		obj.MinDiameter = 0.10
	}
	if obj.MaxDiameter == 0 {
		obj.MaxDiameter = 1.00
	}
	if obj.OperatingHours == 0 {
		obj.OperatingHours = 3000
	}
	if obj.FanEfficiency == 0 {
		obj.FanEfficiency = 0.65
	}
}
