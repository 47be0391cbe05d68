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

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Generator orchestrates the code generation process.
type Generator struct {
	Inputs         []string // Input Go source files
	OutputDir      string   // Output directory
	DispatchPrefix string   // Dispatch file prefix (defaults to the input name)
	Targets        []Target // Target levels, best first
	Width          int      // Vector width, 0 for native
	SimdPackage    string   // Import path of the simd package
	Logger         *slog.Logger
}

// NewGenerator builds a Generator from a validated configuration.
func NewGenerator(cfg Config, logger *slog.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	targets, err := ParseTargets(cfg.Targets)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		Inputs:         cfg.Inputs,
		OutputDir:      cfg.Output,
		DispatchPrefix: cfg.Dispatch,
		Targets:        targets,
		Width:          cfg.Width,
		SimdPackage:    cfg.SimdPackage,
		Logger:         logger,
	}, nil
}

// Run generates one dispatch file per input. Inputs are processed
// concurrently; the first error cancels the rest.
func (g *Generator) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, input := range g.Inputs {
		eg.Go(func() error {
			return g.generate(ctx, input)
		})
	}
	return eg.Wait()
}

func (g *Generator) generate(ctx context.Context, input string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := Parse(input, nil, g.SimdPackage)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	if len(result.Funcs) == 0 {
		return fmt.Errorf("no Base functions found in %s", input)
	}

	outPath := filepath.Join(g.OutputDir, dispatchFileName(g.DispatchPrefix, input))
	code, err := EmitDispatcher(result, EmitOptions{
		Filename: outPath,
		Targets:  g.Targets,
		Width:    g.Width,
	})
	if err != nil {
		return fmt.Errorf("emit %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, code, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	g.Logger.Info("generated dispatcher",
		"input", input,
		"output", outPath,
		"funcs", len(result.Funcs),
		"targets", len(g.Targets))
	return nil
}

// dispatchFileName returns the dispatch file name for input:
// elementwise_base.go -> dispatch_elementwise.gen.go. A non-empty prefix
// replaces the name derived from input.
func dispatchFileName(prefix, input string) string {
	if prefix == "" {
		prefix = strings.TrimSuffix(getBaseFilename(input), "_base")
	}
	return "dispatch_" + prefix + ".gen.go"
}

// getBaseFilename extracts the base filename without extension.
func getBaseFilename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
