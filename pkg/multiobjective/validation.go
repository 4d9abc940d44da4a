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
	"fmt"

	"github.com/engryamato/sizewise-optimize/pkg/api/v1alpha1"
)

// ValidateOptimizationConfig validates a defaulted OptimizationConfig.
func ValidateOptimizationConfig(obj *v1alpha1.OptimizationConfig) error {
	switch obj.Algorithm {
	case v1alpha1.AlgorithmNSGAII, v1alpha1.AlgorithmWeightedSum:
	default:
		return fmt.Errorf("unknown algorithm %q", obj.Algorithm)
	}

	if obj.PopulationSize < 2 {
		return fmt.Errorf("population size must be at least 2, got %d", obj.PopulationSize)
	}
	if obj.MaxGenerations <= 0 {
		return fmt.Errorf("max generations must be positive, got %d", obj.MaxGenerations)
	}
	if obj.CrossoverRate < 0 || obj.CrossoverRate > 1 {
		return fmt.Errorf("crossover rate must be between 0 and 1, got %v", obj.CrossoverRate)
	}
	if obj.MutationRate < 0 || obj.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be between 0 and 1, got %v", obj.MutationRate)
	}
	if obj.DistributionIndex <= 0 {
		return fmt.Errorf("distribution index must be positive, got %v", obj.DistributionIndex)
	}
	if obj.TournamentSize < 2 {
		return fmt.Errorf("tournament size must be at least 2, got %d", obj.TournamentSize)
	}

	switch obj.ConstraintHandling {
	case v1alpha1.ConstraintHandlingPenalty, v1alpha1.ConstraintHandlingDeathPenalty:
	default:
		return fmt.Errorf("unknown constraint handling %q", obj.ConstraintHandling)
	}

	if obj.PenaltyCoefficient < 0 {
		return fmt.Errorf("penalty coefficient must not be negative, got %v", obj.PenaltyCoefficient)
	}
	if obj.ArchiveSize <= 0 {
		return fmt.Errorf("archive size must be positive, got %d", obj.ArchiveSize)
	}
	if obj.ConvergenceWindow < 2 {
		return fmt.Errorf("convergence window must be at least 2, got %d", obj.ConvergenceWindow)
	}

	switch obj.HypervolumeReference {
	case v1alpha1.ReferenceFixed, v1alpha1.ReferencePerGeneration:
	default:
		return fmt.Errorf("unknown hypervolume reference policy %q", obj.HypervolumeReference)
	}

	// Weights are validated against the problem's objective count by the
	// WeightedSum constructor; here we only reject negatives.
	for i, w := range obj.Weights {
		if w < 0 {
			return fmt.Errorf("weight %d must not be negative, got %v", i, w)
		}
	}

	return nil
}

// ValidateDuctSizingSpec validates a defaulted DuctSizingSpec.
func ValidateDuctSizingSpec(obj *v1alpha1.DuctSizingSpec) error {
	if len(obj.Segments) == 0 {
		return fmt.Errorf("at least one duct segment is required")
	}

	seen := make(map[string]bool, len(obj.Segments))
	for i, seg := range obj.Segments {
		if seg.Name == "" {
			return fmt.Errorf("segment %d has no name", i)
		}
		if seen[seg.Name] {
			return fmt.Errorf("duplicate segment name %q", seg.Name)
		}
		seen[seg.Name] = true

		if seg.Airflow <= 0 {
			return fmt.Errorf("segment %q airflow must be positive, got %v", seg.Name, seg.Airflow)
		}
		if seg.Length <= 0 {
			return fmt.Errorf("segment %q length must be positive, got %v", seg.Name, seg.Length)
		}
	}

	if obj.MinVelocity <= 0 || obj.MaxVelocity <= obj.MinVelocity {
		return fmt.Errorf("velocity range [%v, %v] is not ascending and positive", obj.MinVelocity, obj.MaxVelocity)
	}
	if obj.MinDiameter <= 0 || obj.MaxDiameter <= obj.MinDiameter {
		return fmt.Errorf("diameter range [%v, %v] is not ascending and positive", obj.MinDiameter, obj.MaxDiameter)
	}
	if obj.FanEfficiency <= 0 || obj.FanEfficiency > 1 {
		return fmt.Errorf("fan efficiency must be in (0, 1], got %v", obj.FanEfficiency)
	}
	if obj.OperatingHours <= 0 {
		return fmt.Errorf("operating hours must be positive, got %v", obj.OperatingHours)
	}

	return nil
}
