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

	"github.com/engryamato/sizewise-optimize/pkg/api/v1alpha1"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective"
)

func defaultedConfig() v1alpha1.OptimizationConfig {
	config := v1alpha1.OptimizationConfig{}
	multiobjective.SetDefaults_OptimizationConfig(&config)
	return config
}

func TestValidateOptimizationConfig(t *testing.T) {
	testCases := []struct {
		name       string
		modify     func(c *v1alpha1.OptimizationConfig)
		shouldPass bool
	}{
		{
			name:       "DefaultedConfig",
			modify:     func(c *v1alpha1.OptimizationConfig) {},
			shouldPass: true,
		},
		{
			name: "WeightedSumWithWeights",
			modify: func(c *v1alpha1.OptimizationConfig) {
				c.Algorithm = v1alpha1.AlgorithmWeightedSum
				c.Weights = []float64{0.7, 0.3}
			},
			shouldPass: true,
		},
		{
			name:       "UnknownAlgorithm",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.Algorithm = "Anneal" },
			shouldPass: false,
		},
		{
			name:       "PopulationOfOne",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.PopulationSize = 1 },
			shouldPass: false,
		},
		{
			name:       "NegativeGenerations",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.MaxGenerations = -5 },
			shouldPass: false,
		},
		{
			name:       "CrossoverRateAboveOne",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.CrossoverRate = 1.01 },
			shouldPass: false,
		},
		{
			name:       "NegativeMutationRate",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.MutationRate = -0.1 },
			shouldPass: false,
		},
		{
			name:       "NegativeDistributionIndex",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.DistributionIndex = -2 },
			shouldPass: false,
		},
		{
			name:       "TournamentOfOne",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.TournamentSize = 1 },
			shouldPass: false,
		},
		{
			name:       "UnknownConstraintHandling",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.ConstraintHandling = "Repair" },
			shouldPass: false,
		},
		{
			name:       "NegativePenaltyCoefficient",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.PenaltyCoefficient = -1 },
			shouldPass: false,
		},
		{
			name:       "NegativeArchiveSize",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.ArchiveSize = -10 },
			shouldPass: false,
		},
		{
			name:       "ConvergenceWindowOfOne",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.ConvergenceWindow = 1 },
			shouldPass: false,
		},
		{
			name:       "UnknownHypervolumeReference",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.HypervolumeReference = "Adaptive" },
			shouldPass: false,
		},
		{
			name:       "NegativeWeight",
			modify:     func(c *v1alpha1.OptimizationConfig) { c.Weights = []float64{0.5, -0.5} },
			shouldPass: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := defaultedConfig()
			tc.modify(&config)
			err := multiobjective.ValidateOptimizationConfig(&config)
			if tc.shouldPass && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
			if !tc.shouldPass && err == nil {
				t.Error("Expected a validation error, got nil")
			}
		})
	}
}

func defaultedDuctSpec() v1alpha1.DuctSizingSpec {
	spec := v1alpha1.DuctSizingSpec{
		Segments: []v1alpha1.DuctSegmentSpec{
			{Name: "trunk", Airflow: 1.2, Length: 15},
			{Name: "branch", Airflow: 0.4, Length: 8},
		},
	}
	multiobjective.SetDefaults_DuctSizingSpec(&spec)
	return spec
}

func TestValidateDuctSizingSpec(t *testing.T) {
	testCases := []struct {
		name       string
		modify     func(s *v1alpha1.DuctSizingSpec)
		shouldPass bool
	}{
		{
			name:       "DefaultedSpec",
			modify:     func(s *v1alpha1.DuctSizingSpec) {},
			shouldPass: true,
		},
		{
			name:       "NoSegments",
			modify:     func(s *v1alpha1.DuctSizingSpec) { s.Segments = nil },
			shouldPass: false,
		},
		{
			name:       "UnnamedSegment",
			modify:     func(s *v1alpha1.DuctSizingSpec) { s.Segments[0].Name = "" },
			shouldPass: false,
		},
		{
			name:       "DuplicateSegmentNames",
			modify:     func(s *v1alpha1.DuctSizingSpec) { s.Segments[1].Name = s.Segments[0].Name },
			shouldPass: false,
		},
		{
			name:       "ZeroAirflow",
			modify:     func(s *v1alpha1.DuctSizingSpec) { s.Segments[0].Airflow = 0 },
			shouldPass: false,
		},
		{
			name:       "NegativeLength",
			modify:     func(s *v1alpha1.DuctSizingSpec) { s.Segments[1].Length = -3 },
			shouldPass: false,
		},
		{
			name:       "InvertedVelocityRange",
			modify:     func(s *v1alpha1.DuctSizingSpec) { s.MinVelocity, s.MaxVelocity = 8, 3 },
			shouldPass: false,
		},
		{
			name:       "InvertedDiameterRange",
			modify:     func(s *v1alpha1.DuctSizingSpec) { s.MinDiameter, s.MaxDiameter = 0.8, 0.2 },
			shouldPass: false,
		},
		{
			name:       "FanEfficiencyAboveOne",
			modify:     func(s *v1alpha1.DuctSizingSpec) { s.FanEfficiency = 1.2 },
			shouldPass: false,
		},
		{
			name:       "NegativeOperatingHours",
			modify:     func(s *v1alpha1.DuctSizingSpec) { s.OperatingHours = -100 },
			shouldPass: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			spec := defaultedDuctSpec()
			tc.modify(&spec)
			err := multiobjective.ValidateDuctSizingSpec(&spec)
			if tc.shouldPass && err != nil {
				t.Errorf("Expected valid spec, got %v", err)
			}
			if !tc.shouldPass && err == nil {
				t.Error("Expected a validation error, got nil")
			}
		})
	}
}
