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

package multiobjective_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/engryamato/sizewise-optimize/pkg/api/v1alpha1"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective"
)

func TestSetDefaultsOptimizationConfig(t *testing.T) {
	config := &v1alpha1.OptimizationConfig{}
	multiobjective.SetDefaults_OptimizationConfig(config)

	expected := &v1alpha1.OptimizationConfig{
		Algorithm:            v1alpha1.AlgorithmNSGAII,
		PopulationSize:       50,
		MaxGenerations:       100,
		CrossoverRate:        0.9,
		DistributionIndex:    20.0,
		TournamentSize:       2,
		ConstraintHandling:   v1alpha1.ConstraintHandlingPenalty,
		PenaltyCoefficient:   1000.0,
		ArchiveSize:          100,
		ConvergenceWindow:    10,
		HypervolumeReference: v1alpha1.ReferenceFixed,
	}

	if diff := cmp.Diff(expected, config); diff != "" {
		t.Errorf("Unexpected defaults (-want +got):\n%s", diff)
	}

	// MutationRate deliberately stays zero: the engine substitutes the
	// per-problem 1/numVariables rate.
	if config.MutationRate != 0 {
		t.Errorf("Expected mutation rate left at 0, got %v", config.MutationRate)
	}
}

func TestSetDefaultsOptimizationConfigKeepsExplicitValues(t *testing.T) {
	config := &v1alpha1.OptimizationConfig{
		Algorithm:      v1alpha1.AlgorithmWeightedSum,
		PopulationSize: 80,
		CrossoverRate:  0.7,
		MutationRate:   0.05,
	}
	multiobjective.SetDefaults_OptimizationConfig(config)

	if config.Algorithm != v1alpha1.AlgorithmWeightedSum {
		t.Errorf("Expected WeightedSum kept, got %q", config.Algorithm)
	}
	if config.PopulationSize != 80 {
		t.Errorf("Expected population 80 kept, got %d", config.PopulationSize)
	}
	if config.CrossoverRate != 0.7 {
		t.Errorf("Expected crossover 0.7 kept, got %v", config.CrossoverRate)
	}
	if config.MutationRate != 0.05 {
		t.Errorf("Expected mutation 0.05 kept, got %v", config.MutationRate)
	}
	// Untouched fields still default.
	if config.MaxGenerations != 100 {
		t.Errorf("Expected default generations, got %d", config.MaxGenerations)
	}
}

func TestSetDefaultsDuctSizingSpec(t *testing.T) {
	spec := &v1alpha1.DuctSizingSpec{
		Segments: []v1alpha1.DuctSegmentSpec{{Name: "main", Airflow: 0.5, Length: 10}},
	}
	multiobjective.SetDefaults_DuctSizingSpec(spec)

	expected := &v1alpha1.DuctSizingSpec{
		Segments:       []v1alpha1.DuctSegmentSpec{{Name: "main", Airflow: 0.5, Length: 10}},
		MinVelocity:    2.0,
		MaxVelocity:    10.0,
		MinDiameter:    0.10,
		MaxDiameter:    1.00,
		OperatingHours: 3000,
		FanEfficiency:  0.65,
	}

	if diff := cmp.Diff(expected, spec); diff != "" {
		t.Errorf("Unexpected defaults (-want +got):\n%s", diff)
	}
}
