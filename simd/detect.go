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

package simd

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"sync"
)

// Environment variables read once, on first detection.
const (
	// NoSimdEnvVar forces LevelGeneric when set to a true value.
	NoSimdEnvVar = "GSIMD_NO_SIMD"

	// TargetEnvVar caps detection at the named level. Unknown or unsupported
	// levels are ignored.
	TargetEnvVar = "GSIMD_TARGET"
)

// Features describes the levels the running machine supports.
type Features struct {
	HasSSE     bool // x86 SSE4.1
	HasAVX     bool // x86 AVX
	HasNEON    bool // ARM Advanced SIMD
	HasSimd128 bool // WebAssembly SIMD128

	// ForceGeneric disables every level but LevelGeneric.
	ForceGeneric bool

	// Cap, when non-nil, limits detection to levels implied by *Cap.
	Cap *Level

	Architecture string // runtime.GOARCH
}

// Supports reports whether f allows level.
func (f Features) Supports(level Level) bool {
	if level == LevelGeneric {
		return true
	}
	if f.ForceGeneric {
		return false
	}
	if f.Cap != nil && !f.Cap.Implies(level) {
		return false
	}
	switch level {
	case LevelSSE:
		return f.HasSSE
	case LevelAVX:
		return f.HasAVX && f.HasSSE
	case LevelNEON:
		return f.HasNEON
	case LevelSimd128:
		return f.HasSimd128
	default:
		return false
	}
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	// forcedFeatures overrides hardware detection in tests.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the running machine, after the
// environment overrides are applied. Detection runs once and is cached.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()
	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		f := detectFeaturesImpl()
		f.Architecture = runtime.GOARCH
		applyEnv(&f)
		detectedFeatures = f
		logger().Debug("simd: detected features",
			slog.String("arch", f.Architecture),
			slog.String("best", bestLevel(f).String()),
			slog.Bool("force_generic", f.ForceGeneric))
	})
	f := detectedFeatures
	detectMutex.Unlock()
	return f
}

// applyEnv folds GSIMD_NO_SIMD and GSIMD_TARGET into f.
func applyEnv(f *Features) {
	if NoSimdEnv() {
		f.ForceGeneric = true
		return
	}
	val := os.Getenv(TargetEnvVar)
	if val == "" {
		return
	}
	level, err := ParseLevel(val)
	if err != nil {
		logger().Warn("simd: ignoring "+TargetEnvVar, slog.String("value", val), slog.Any("error", err))
		return
	}
	if !f.Supports(level) {
		logger().Warn("simd: ignoring "+TargetEnvVar+", level not supported",
			slog.String("target", level.String()))
		return
	}
	f.Cap = &level
}

// NoSimdEnv reports whether GSIMD_NO_SIMD is set. Any non-empty value that
// does not parse as a boolean counts as true.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// SetForcedFeatures overrides detection with f. Tests only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache. Tests only.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supported reports whether level is usable on the running machine.
func Supported(level Level) bool {
	return DetectFeatures().Supports(level)
}

// ArchLevels returns the levels that can exist on GOARCH, highest priority
// first. LevelGeneric is always last.
func ArchLevels() []Level {
	return append([]Level(nil), archLevels...)
}

// BestLevel returns the highest-priority supported level.
func BestLevel() Level {
	return bestLevel(DetectFeatures())
}

func bestLevel(f Features) Level {
	for _, level := range archLevels {
		if f.Supports(level) {
			return level
		}
	}
	return LevelGeneric
}
