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
	"time"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/algorithms"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/analysis"
)

// OptimizationResult is the caller-facing report of a finished run.
type OptimizationResult struct {
	Problem   string               `json:"problem"`
	Algorithm string               `json:"algorithm"`
	Status    algorithms.RunStatus `json:"status"`

	// BestSolution is the preferred trade-off: the feasible rank-0 solution
	// with the lowest scalar fitness, or the least-bad infeasible one when
	// the whole front is infeasible.
	BestSolution Solution `json:"bestSolution"`

	// ParetoFront lists every distinct rank-0 solution, ordered by the first
	// objective. Knee point indices in FrontMetrics refer to this ordering.
	ParetoFront []Solution `json:"paretoFront"`

	FrontMetrics FrontMetrics `json:"frontMetrics"`
	Statistics   Statistics   `json:"statistics"`

	// Recommendation is a human-readable pointer at the solution worth
	// looking at first.
	Recommendation string `json:"recommendation"`

	// Warnings records non-fatal evaluator failures; the run completed
	// despite them.
	Warnings []string `json:"warnings,omitempty"`

	// Errors records fatal assembly problems, such as a run that was
	// cancelled before producing any front.
	Errors []string `json:"errors,omitempty"`
}

// Solution is one reported trade-off.
type Solution struct {
	// Variables maps variable IDs to their values: numbers for continuous
	// variables, strings for discrete labels.
	Variables map[string]interface{} `json:"variables"`

	// Objectives maps objective names to their raw values.
	Objectives map[string]float64 `json:"objectives"`

	// Fitness is the scalar mean of the penalty-adjusted objectives, kept
	// for ranking and single-objective compatibility.
	Fitness float64 `json:"fitness"`

	Feasible bool `json:"feasible"`

	// Violations carries the per-constraint violation magnitudes for
	// infeasible solutions.
	Violations map[string]float64 `json:"violations,omitempty"`
}

// FrontMetrics summarizes the quality of the reported front.
type FrontMetrics struct {
	// Hypervolume is a simplified convergence indicator, not an exact
	// hypervolume; see the analysis package.
	Hypervolume float64 `json:"hypervolume"`

	// Spacing is the nearest-neighbor distance deviation; lower means a more
	// uniformly covered front.
	Spacing float64 `json:"spacing"`

	// KneePoints are the sharpest trade-offs on the front, best first. The
	// indices refer to ParetoFront's ordering.
	KneePoints []analysis.KneePoint `json:"kneePoints,omitempty"`

	ReferencePoint []float64 `json:"referencePoint,omitempty"`
}

// Statistics captures how the run went, including the per-generation history.
type Statistics struct {
	Generations int           `json:"generations"`
	Evaluations int64         `json:"evaluations"`
	Runtime     time.Duration `json:"runtime"`

	History []algorithms.GenerationStats `json:"history,omitempty"`
}
