package algorithms_test

import (
	"context"
	"testing"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/algorithms"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
)

func biSphereProblem() *framework.Problem {
	return &framework.Problem{
		Name:      "bisphere",
		Variables: []framework.Variable{framework.NewContinuous("x", -5, 5)},
		Objectives: []framework.ObjectiveFunc{
			func(a framework.Assignment) float64 { x := a["x"].Number; return x * x },
			func(a framework.Assignment) float64 { d := a["x"].Number - 2; return d * d },
		},
	}
}

func TestWeightedSumConverges(t *testing.T) {
	// Equal weights scalarize to 0.5*x^2 + 0.5*(x-2)^2, minimal at x=1 with
	// value 1. The steady-state loop should get close.
	config := algorithms.WeightedSumConfig{
		PopulationSize:       20,
		MaxGenerations:       300,
		CrossoverProbability: 0.9,
		Seed:                 42,
	}
	ws, err := algorithms.NewWeightedSum(config, biSphereProblem())
	if err != nil {
		t.Fatalf("Failed to create weighted sum: %v", err)
	}

	outcome, err := ws.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if outcome.Algorithm != algorithms.WeightedSumName {
		t.Errorf("Expected algorithm %q, got %q", algorithms.WeightedSumName, outcome.Algorithm)
	}
	if len(outcome.Population) != config.PopulationSize {
		t.Errorf("Expected population size %d, got %d", config.PopulationSize, len(outcome.Population))
	}

	best := outcome.Population[0].Fitness
	for _, ind := range outcome.Population {
		if ind.Fitness < best {
			best = ind.Fitness
		}
	}
	if best > 1.1 {
		t.Errorf("Expected best scalar fitness near 1.0, got %v", best)
	}
}

func TestWeightedSumCustomWeights(t *testing.T) {
	// All weight on the first objective pulls the optimum to x=0.
	config := algorithms.WeightedSumConfig{
		PopulationSize:       20,
		MaxGenerations:       300,
		CrossoverProbability: 0.9,
		Weights:              []float64{1, 0},
		Seed:                 42,
	}
	ws, err := algorithms.NewWeightedSum(config, biSphereProblem())
	if err != nil {
		t.Fatalf("Failed to create weighted sum: %v", err)
	}

	outcome, err := ws.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	bestX := outcome.Population[0].Assignment["x"].Number
	bestFitness := outcome.Population[0].Fitness
	for _, ind := range outcome.Population {
		if ind.Fitness < bestFitness {
			bestFitness = ind.Fitness
			bestX = ind.Assignment["x"].Number
		}
	}
	if bestX < -0.5 || bestX > 0.5 {
		t.Errorf("Expected best x near 0 with weights (1,0), got %v", bestX)
	}
}

func TestNewWeightedSumRejectsBadInput(t *testing.T) {
	testCases := []struct {
		name   string
		config algorithms.WeightedSumConfig
	}{
		{
			name: "WeightCountMismatch",
			config: algorithms.WeightedSumConfig{
				PopulationSize: 10,
				MaxGenerations: 10,
				Weights:        []float64{0.3, 0.3, 0.4},
			},
		},
		{
			name: "ZeroPopulation",
			config: algorithms.WeightedSumConfig{
				MaxGenerations: 10,
			},
		},
		{
			name: "ZeroGenerations",
			config: algorithms.WeightedSumConfig{
				PopulationSize: 10,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := algorithms.NewWeightedSum(tc.config, biSphereProblem()); err == nil {
				t.Error("Expected constructor error, got nil")
			}
		})
	}
}
