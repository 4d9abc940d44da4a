package benchmarks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/algorithms"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/analysis"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/util"
)

// Suite runs a set of benchmark problems
type Suite struct {
	benchmarks []Benchmark
	config     algorithms.NSGA2Config
}

// NewSuite creates a new benchmark suite sharing one algorithm configuration
func NewSuite(config algorithms.NSGA2Config) *Suite {
	return &Suite{
		config: config,
	}
}

// Add adds a benchmark to the suite
func (s *Suite) Add(b Benchmark) {
	s.benchmarks = append(s.benchmarks, b)
}

// AddStandardProblems adds common benchmark problems
func (s *Suite) AddStandardProblems() {
	s.Add(NewSchaffer())

	// ZDT problems with 30 variables (standard)
	s.Add(NewZDT1(30))
	s.Add(NewZDT3(30))

	// DTLZ2: 2 objectives, 12 variables (M + k - 1, where k=10)
	s.Add(NewDTLZ2(12, 2))
	// 3 objectives version
	s.Add(NewDTLZ2(13, 3))

	// Constrained problem
	s.Add(NewBinhKorn())
}

// Run executes every benchmark, writes plots for the 2-objective problems
// into outputDir, and logs front quality against the known true fronts.
func (s *Suite) Run(ctx context.Context, outputDir string) error {
	logger := klog.FromContext(ctx)

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, b := range s.benchmarks {
		logger.Info("Running benchmark", "algorithm", algorithms.Name, "problem", b.Name())

		nsga2, err := algorithms.NewNSGAII(s.config, b.Problem)
		if err != nil {
			return fmt.Errorf("configuring %s: %w", b.Name(), err)
		}
		outcome, err := nsga2.Run(ctx)
		if err != nil {
			return fmt.Errorf("running %s: %w", b.Name(), err)
		}

		front := analysis.FrontPoints(outcome.FirstFront())

		var trueFront []framework.ObjectiveSpacePoint
		if b.TrueFront != nil {
			trueFront = b.TrueFront(500)
		}

		if b.Problem.NumObjectives() == 2 {
			plotFile := filepath.Join(outputDir, fmt.Sprintf("%s_%s_results.html", b.Name(), algorithms.Name))
			if err := util.PlotResults(front, trueFront, b.Name(), algorithms.Name, plotFile); err != nil {
				logger.Error(err, "Failed to plot results", "problem", b.Name())
			}
		}

		if trueFront != nil {
			// Anchoring the reference point on the true front keeps the
			// hypervolume comparable across runs of the same problem.
			ref := analysis.ReferencePoint(trueFront, analysis.DefaultReferenceMargin)
			logger.Info("Benchmark front quality",
				"problem", b.Name(),
				"status", outcome.Status,
				"generations", outcome.Generations,
				"frontSize", len(front),
				"hypervolume", analysis.Hypervolume(front, ref),
				"igd", analysis.IGD(front, trueFront),
			)
		}
	}

	return nil
}
