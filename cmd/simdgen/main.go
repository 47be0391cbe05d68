// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command simdgen generates multiversion dispatchers for portable simd
// kernels.
//
// Usage:
//
//	simdgen --input elementwise_base.go --output . --targets avx,sse4.1,generic
//	simdgen --config simdgen.yaml
//
// Or via go:generate:
//
//	//go:generate go run github.com/ajroetker/generic-simd/cmd/simdgen --input $GOFILE
//
// For every function of the form
//
//	func BaseX[T simd.Floats, V simd.Vector[T, V], K simd.Token](tok K, ...)
//
// the generator instantiates the body once per target level and element
// type with that level's vector type, and emits a dispatch file with a
// simd.Multiversion table and the entry points XFloat32, XFloat32For, X
// and XFor.
package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		flags      = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:          "simdgen [flags] [input.go...]",
		Short:        "Generate multiversion dispatchers for simd kernels",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}

			// Flags override the file.
			changed := cmd.Flags().Changed
			if changed("input") {
				cfg.Inputs = flags.Inputs
			}
			cfg.Inputs = append(cfg.Inputs, args...)
			if changed("output") {
				cfg.Output = flags.Output
			}
			if changed("dispatch") {
				cfg.Dispatch = flags.Dispatch
			}
			if changed("targets") {
				cfg.Targets = flags.Targets
			}
			if changed("width") {
				cfg.Width = flags.Width
			}
			if changed("simd-package") {
				cfg.SimdPackage = flags.SimdPackage
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelInfo
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			gen, err := NewGenerator(cfg, logger)
			if err != nil {
				return err
			}
			return gen.Run(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", DefaultConfigFile, "YAML configuration file")
	f.StringSliceVarP(&flags.Inputs, "input", "i", nil, "Input Go source files")
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "Output directory")
	f.StringVar(&flags.Dispatch, "dispatch", "", "Dispatch file prefix (default: input name without _base)")
	f.StringSliceVar(&flags.Targets, "targets", flags.Targets, "Comma-separated targets ("+strings.Join(AvailableTargets(), ",")+") or 'all'")
	f.IntVar(&flags.Width, "width", 0, "Vector width in lanes (1, 2, 4, 8); 0 selects each target's native width")
	f.StringVar(&flags.SimdPackage, "simd-package", flags.SimdPackage, "Import path of the simd package")
	f.BoolVarP(&verbose, "verbose", "v", false, "Log each generated file")
	return cmd
}
