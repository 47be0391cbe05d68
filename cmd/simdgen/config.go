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
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = "simdgen.yaml"

// DefaultSimdPackage is the import path of the simd package.
const DefaultSimdPackage = "github.com/ajroetker/generic-simd/simd"

// Config is the simdgen configuration. It can be loaded from a YAML file;
// command line flags override individual fields.
//
//	inputs: [elementwise_base.go]
//	output: .
//	dispatch: elementwise
//	targets: [avx, sse4.1, neon, simd128, generic]
type Config struct {
	Inputs      []string `yaml:"inputs"`
	Output      string   `yaml:"output"`
	Dispatch    string   `yaml:"dispatch"`
	Targets     []string `yaml:"targets"`
	Width       int      `yaml:"width"`
	SimdPackage string   `yaml:"simd_package"`
}

// DefaultConfig returns the configuration used when neither a file nor a
// flag sets a field.
func DefaultConfig() Config {
	return Config{
		Output:      ".",
		Targets:     []string{"all"},
		SimdPackage: DefaultSimdPackage,
	}
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig. A
// missing file is only an error when required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for conflicting settings.
func (c Config) Validate() error {
	if len(c.Inputs) == 0 {
		return errors.New("no input files: set --input or inputs in " + DefaultConfigFile)
	}
	if c.Dispatch != "" && len(c.Inputs) > 1 {
		return fmt.Errorf("dispatch prefix %q needs a single input, got %d", c.Dispatch, len(c.Inputs))
	}
	if c.Width != 0 && !slices.Contains(validWidths, c.Width) {
		return fmt.Errorf("invalid width %d (valid: 1, 2, 4, 8)", c.Width)
	}
	// Every input writes its own file in the output directory.
	seen := make(map[string]string, len(c.Inputs))
	for _, input := range c.Inputs {
		name := dispatchFileName(c.Dispatch, input)
		if prev, ok := seen[name]; ok {
			return fmt.Errorf("inputs %s and %s both generate %s", prev, input, name)
		}
		seen[name] = input
	}
	return nil
}
