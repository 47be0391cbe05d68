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
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Target describes one token level that dispatchers are generated for.
type Target struct {
	Name     string // Flag name: "avx", "sse4.1", ...
	Token    string // Token type in the simd package, also the vector alias prefix
	Level    string // Level constant in the simd package
	VecWidth int    // Register width in bytes, 0 for one-lane vectors
	Priority int    // Mirrors simd.Level.Priority
}

// AVXTarget returns the AVX target (256-bit registers).
func AVXTarget() Target {
	return Target{Name: "avx", Token: "AVX", Level: "LevelAVX", VecWidth: 32, Priority: 30}
}

// SSETarget returns the SSE4.1 target (128-bit registers).
func SSETarget() Target {
	return Target{Name: "sse4.1", Token: "SSE", Level: "LevelSSE", VecWidth: 16, Priority: 20}
}

// NEONTarget returns the NEON target (128-bit registers).
func NEONTarget() Target {
	return Target{Name: "neon", Token: "NEON", Level: "LevelNEON", VecWidth: 16, Priority: 15}
}

// Simd128Target returns the wasm simd128 target (128-bit registers).
func Simd128Target() Target {
	return Target{Name: "simd128", Token: "Simd128", Level: "LevelSimd128", VecWidth: 16, Priority: 15}
}

// GenericTarget returns the portable target. Every dispatcher needs it.
func GenericTarget() Target {
	return Target{Name: "generic", Token: "Generic", Level: "LevelGeneric", Priority: 0}
}

var allTargets = []Target{AVXTarget(), SSETarget(), NEONTarget(), Simd128Target(), GenericTarget()}

// AvailableTargets returns the names of all targets, best first.
func AvailableTargets() []string {
	return lo.Map(allTargets, func(t Target, _ int) string { return t.Name })
}

// GetTarget returns the target configuration for the given name.
func GetTarget(name string) (Target, error) {
	t, ok := lo.Find(allTargets, func(t Target) bool { return t.Name == name })
	if !ok {
		return Target{}, fmt.Errorf("unknown target: %s (valid: %s)", name, strings.Join(AvailableTargets(), ", "))
	}
	return t, nil
}

// ParseTargets resolves target names. "all" selects every target. The
// generic target is always included since a dispatcher cannot be built
// without it. The result is ordered best first and has no duplicates.
func ParseTargets(names []string) ([]Target, error) {
	names = lo.Compact(lo.Map(names, func(s string, _ int) string { return strings.TrimSpace(s) }))
	if slices.Contains(names, "all") {
		return slices.Clone(allTargets), nil
	}

	var targets []Target
	for _, name := range lo.Uniq(names) {
		t, err := GetTarget(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	if !lo.ContainsBy(targets, func(t Target) bool { return t.Token == "Generic" }) {
		targets = append(targets, GenericTarget())
	}
	slices.SortStableFunc(targets, func(a, b Target) int { return b.Priority - a.Priority })
	return targets, nil
}

// elemCodes maps scalar types to the code used in vector alias names.
var elemCodes = map[string]string{
	"float32":    "F32",
	"float64":    "F64",
	"complex64":  "C64",
	"complex128": "C128",
}

// elemSizes maps scalar types to their size in bytes.
var elemSizes = map[string]int{
	"float32":    4,
	"float64":    8,
	"complex64":  8,
	"complex128": 16,
}

// LanesFor returns the native number of lanes for the given element type.
func (t Target) LanesFor(elemType string) int {
	size, ok := elemSizes[elemType]
	if !ok || t.VecWidth == 0 {
		return 1
	}
	return t.VecWidth / size
}

// VectorType returns the simd family alias for elemType at this target,
// e.g. "AVXF32x8". A width of 0 selects the native width.
func (t Target) VectorType(elemType string, width int) (string, error) {
	code, ok := elemCodes[elemType]
	if !ok {
		return "", fmt.Errorf("no vector type for element type %s", elemType)
	}
	if width == 0 {
		width = t.LanesFor(elemType)
	}
	if !slices.Contains(validWidths, width) {
		return "", fmt.Errorf("invalid vector width %d (valid: 1, 2, 4, 8)", width)
	}
	return fmt.Sprintf("%s%sx%d", t.Token, code, width), nil
}

var validWidths = []int{1, 2, 4, 8}
