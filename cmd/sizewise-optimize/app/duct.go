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
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/engryamato/sizewise-optimize/pkg/api/v1alpha1"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/framework"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/objectives/ductwork"
	"github.com/engryamato/sizewise-optimize/pkg/multiobjective/tracing"
)

type ductOptions struct {
	jobFile      string
	outputFile   string
	metricsAddr  string
	otlpEndpoint string
}

func newDuctCommand() *cobra.Command {
	o := &ductOptions{}
	cmd := &cobra.Command{
		Use:   "duct",
		Short: "Size a duct network from a YAML job file",
		Long: `duct reads a DuctOptimizationJob YAML document describing the segments to
size and the engine settings, runs the optimizer, and writes the resulting
Pareto front as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.Context())
		},
	}

	o.AddFlags(cmd.Flags())
	cobra.CheckErr(cmd.MarkFlagRequired("job"))
	return cmd
}

// AddFlags registers the duct flags on fs.
func (o *ductOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.jobFile, "job", "", "YAML file with the DuctOptimizationJob document (required)")
	fs.StringVar(&o.outputFile, "output", "", "file for the JSON result; stdout when empty")
	fs.StringVar(&o.metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9092 (disabled when empty)")
	fs.StringVar(&o.otlpEndpoint, "otlp-endpoint", "", "OTLP gRPC collector for run traces (disabled when empty)")
}

func (o *ductOptions) run(ctx context.Context) error {
	logger := klog.Background()
	ctx = klog.NewContext(ctx, logger)

	job, err := loadDuctJob(o.jobFile)
	if err != nil {
		return err
	}

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

	problem := buildDuctProblem(job.Duct)
	optimizer, err := multiobjective.NewOptimizer(ctx, job.Engine, problem)
	if err != nil {
		return err
	}

	result, err := optimizer.Run(ctx)
	if err != nil {
		return err
	}

	return o.writeResult(result)
}

// loadDuctJob reads, defaults and validates the YAML job document.
func loadDuctJob(path string) (*v1alpha1.DuctOptimizationJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading job file: %w", err)
	}

	var job v1alpha1.DuctOptimizationJob
	if err := yaml.UnmarshalStrict(data, &job); err != nil {
		return nil, fmt.Errorf("parsing job file %s: %w", path, err)
	}

	multiobjective.SetDefaults_DuctSizingSpec(&job.Duct)
	if err := multiobjective.ValidateDuctSizingSpec(&job.Duct); err != nil {
		return nil, fmt.Errorf("invalid duct spec in %s: %w", path, err)
	}
	return &job, nil
}

func buildDuctProblem(spec v1alpha1.DuctSizingSpec) *framework.Problem {
	segments := make([]ductwork.Segment, len(spec.Segments))
	for i, s := range spec.Segments {
		segments[i] = ductwork.Segment{
			Name:    s.Name,
			Airflow: s.Airflow,
			Length:  s.Length,
		}
	}

	config := ductwork.DefaultDuctConfig()
	config.MinDiameter = spec.MinDiameter
	config.MaxDiameter = spec.MaxDiameter
	config.MinVelocity = spec.MinVelocity
	config.MaxVelocity = spec.MaxVelocity
	config.FanEfficiency = spec.FanEfficiency
	config.AnnualRunHours = spec.OperatingHours

	return ductwork.NewSizingProblem(segments, config)
}

func (o *ductOptions) writeResult(result *multiobjective.OptimizationResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	data = append(data, '\n')

	if o.outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(o.outputFile, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
