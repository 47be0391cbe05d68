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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	for l := range numLevels {
		got, err := ParseLevel(l.String())
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
	assert.Equal(t, "unknown", Level(99).String())

	_, err := ParseLevel("avx512")
	assert.Error(t, err)

	got, err := ParseLevel(" SSE41 ")
	require.NoError(t, err)
	assert.Equal(t, LevelSSE, got)
}

func TestLevelImplies(t *testing.T) {
	tests := []struct {
		from, to Level
		want     bool
	}{
		{LevelAVX, LevelAVX, true},
		{LevelAVX, LevelSSE, true},
		{LevelAVX, LevelGeneric, true},
		{LevelSSE, LevelGeneric, true},
		{LevelSSE, LevelAVX, false},
		{LevelNEON, LevelGeneric, true},
		{LevelNEON, LevelSSE, false},
		{LevelSimd128, LevelGeneric, true},
		{LevelSimd128, LevelNEON, false},
		{LevelGeneric, LevelSSE, false},
		{LevelGeneric, LevelGeneric, true},
	}
	for _, tt := range tests {
		if got := tt.from.Implies(tt.to); got != tt.want {
			t.Errorf("%v.Implies(%v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestLevelPriority(t *testing.T) {
	assert.Greater(t, LevelAVX.Priority(), LevelSSE.Priority())
	assert.Greater(t, LevelSSE.Priority(), LevelGeneric.Priority())
	assert.Greater(t, LevelNEON.Priority(), LevelGeneric.Priority())
	assert.Greater(t, LevelSimd128.Priority(), LevelGeneric.Priority())
}

func TestTokenConversions(t *testing.T) {
	avx := NewUnchecked[AVX]()
	assert.Equal(t, LevelSSE, avx.SSE().Level())
	assert.Equal(t, LevelGeneric, avx.Generic().Level())
	assert.Equal(t, LevelGeneric, avx.SSE().Generic().Level())
	assert.Equal(t, LevelGeneric, NewUnchecked[NEON]().Generic().Level())
	assert.Equal(t, LevelGeneric, NewUnchecked[Simd128]().Generic().Level())

	assert.Equal(t, SSE{}, Into[SSE](avx))
	assert.Equal(t, Generic{}, Into[Generic](NewUnchecked[NEON]()))
	assert.Panics(t, func() { Into[AVX](NewUnchecked[SSE]()) })
	assert.Panics(t, func() { Into[SSE](NewUnchecked[NEON]()) })
}

func TestUncheckedToken(t *testing.T) {
	for l := range numLevels {
		assert.Equal(t, l, UncheckedToken(l).Level())
	}
	assert.Equal(t, Generic{}, UncheckedToken(Level(99)))
}

func TestDetectGenericAlways(t *testing.T) {
	t.Cleanup(ResetDetection)
	SetForcedFeatures(Features{ForceGeneric: true})

	_, ok := Detect[Generic]()
	assert.True(t, ok)
	_, ok = Detect[AVX]()
	assert.False(t, ok)
	_, ok = Detect[NEON]()
	assert.False(t, ok)
	assert.Equal(t, LevelGeneric, BestLevel())
}

func TestDetectInterfaceType(t *testing.T) {
	tok, ok := Detect[Token]()
	assert.False(t, ok)
	assert.Nil(t, tok)

	assert.Panics(t, func() { Into[Token](NewUnchecked[AVX]()) })
	assert.Panics(t, func() { Into[Generic](Token(nil)) })
	assert.Panics(t, func() { levelOf[Token]() })
}

func TestDetectForced(t *testing.T) {
	t.Cleanup(ResetDetection)

	SetForcedFeatures(Features{HasSSE: true, HasAVX: true})
	_, ok := Detect[AVX]()
	assert.True(t, ok)
	_, ok = Detect[SSE]()
	assert.True(t, ok)

	// AVX without SSE4.1 is not a configuration the AVX token can prove.
	SetForcedFeatures(Features{HasAVX: true})
	_, ok = Detect[AVX]()
	assert.False(t, ok)

	capped := LevelSSE
	SetForcedFeatures(Features{HasSSE: true, HasAVX: true, Cap: &capped})
	assert.False(t, Supported(LevelAVX))
	assert.True(t, Supported(LevelSSE))

	SetForcedFeatures(Features{HasSimd128: true})
	_, ok = Detect[Simd128]()
	assert.True(t, ok)
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"false", false},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv(NoSimdEnvVar, tt.val)
		assert.Equal(t, tt.want, NoSimdEnv(), "GSIMD_NO_SIMD=%q", tt.val)
	}
}

func TestEnvForcesGeneric(t *testing.T) {
	t.Setenv(NoSimdEnvVar, "1")
	ResetDetection()
	t.Cleanup(ResetDetection)

	f := DetectFeatures()
	assert.True(t, f.ForceGeneric)
	assert.Equal(t, LevelGeneric, BestLevel())
}

func TestEnvTarget(t *testing.T) {
	t.Setenv(NoSimdEnvVar, "")
	t.Setenv(TargetEnvVar, "generic")
	ResetDetection()
	t.Cleanup(ResetDetection)
	assert.Equal(t, LevelGeneric, BestLevel())

	t.Setenv(TargetEnvVar, "not-a-level")
	ResetDetection()
	assert.Nil(t, DetectFeatures().Cap)
}

func TestArchLevels(t *testing.T) {
	levels := ArchLevels()
	require.NotEmpty(t, levels)
	assert.Equal(t, LevelGeneric, levels[len(levels)-1])
	for i := 1; i < len(levels); i++ {
		assert.GreaterOrEqual(t, levels[i-1].Priority(), levels[i].Priority())
	}

	// The result is a copy.
	levels[0] = Level(42)
	assert.NotEqual(t, Level(42), ArchLevels()[0])
}

func TestNativeWidth(t *testing.T) {
	assert.Equal(t, 1, NativeWidth[float32](LevelGeneric))
	assert.Equal(t, 4, NativeWidth[float32](LevelSSE))
	assert.Equal(t, 8, NativeWidth[float32](LevelAVX))
	assert.Equal(t, 4, NativeWidth[float64](LevelAVX))
	assert.Equal(t, 2, NativeWidth[complex64](LevelNEON))
	assert.Equal(t, 1, NativeWidth[complex128](LevelSimd128))
	assert.Equal(t, 2, NativeWidth[complex128](LevelAVX))
}
