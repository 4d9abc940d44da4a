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

package app

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/algorithms"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/benchmarks"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/tracing"
)

type benchmarkOptions struct {
	populationSize int
	generations    int
	seed           uint64
	parallel       bool
	outputDir      string
	metricsAddr    string
	otlpEndpoint   string
}

func newBenchmarkCommand() *cobra.Command {
	o := &benchmarkOptions{}
	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Run the standard benchmark suite and write front plots",
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context())
		},
	}

	o.AddFlags(cmd.Flags())
	return cmd
}

// AddFlags registers the benchmark flags on fs.
func (o *benchmarkOptions) AddFlags(fs *pflag.FlagSet) {
	fs.IntVar(&o.populationSize, "population", 100, "individuals per generation")
	fs.IntVar(&o.generations, "generations", 250, "generation budget per problem")
	fs.Uint64Var(&o.seed, "seed", 0, "RNG seed for reproducible runs; 0 draws one")
	fs.BoolVar(&o.parallel, "parallel", true, "evaluate individuals on all CPUs")
	fs.StringVar(&o.outputDir, "output-dir", "results", "directory for HTML front plots")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9092 (disabled when empty)")
	fs.StringVar(&o.otlpEndpoint, "otlp-endpoint", "", "OTLP gRPC collector for run traces (disabled when empty)")
}

func (o *benchmarkOptions) run(ctx context.Context) error {
	logger := klog.Background()
	ctx = klog.NewContext(ctx, logger)

	shutdown, err := tracing.Setup(ctx, o.otlpEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error(err, "Trace exporter shutdown failed")
		}
	}()

	serveMetrics(logger, o.metricsAddr)

	suite := benchmarks.NewSuite(algorithms.NSGA2Config{
		PopulationSize:       o.populationSize,
		MaxGenerations:       o.generations,
		CrossoverProbability: 0.9,
		Seed:                 o.seed,
		ParallelExecution:    o.parallel,
	})
	suite.AddStandardProblems()

	return suite.Run(ctx, o.outputDir)
}
