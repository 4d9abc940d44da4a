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

// Package app assembles the sizewise-optimize command tree.
package app

import (
	goflag "flag"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// NewOptimizeCommand creates the root command with the shared klog flag set.
func NewOptimizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sizewise-optimize",
		Short: "Multi-objective sizing optimizer",
		Long: `sizewise-optimize searches Pareto-optimal trade-offs for duct network
sizing problems with NSGA-II, and ships the standard evolutionary benchmark
suite for validating the engine.`,
		SilenceUsage: true,
	}

	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(newBenchmarkCommand())
	cmd.AddCommand(newDuctCommand())
	return cmd
}

// serveMetrics exposes the prometheus registry for scraping while a run is in
// progress. An empty addr disables the listener.
func serveMetrics(logger klog.Logger, addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error(err, "Metrics listener failed", "addr", addr)
		}
	}()
	logger.Info("Serving metrics", "addr", addr)
}
