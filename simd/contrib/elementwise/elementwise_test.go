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

package elementwise

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ajroetker/generic-simd/simd"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allLevels = []simd.Level{
	simd.LevelAVX,
	simd.LevelSSE,
	simd.LevelNEON,
	simd.LevelSimd128,
	simd.LevelGeneric,
}

// testSizes returns the sizes around the vector width w that exercise the
// head, body and tail paths.
func testSizes(w int) []int {
	sizes := []int{0, 1, w - 1, w, w + 1, 2*w + 3, 8*w + 5}
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

// randomData returns n values in [-8, 8). When integral is set the values
// are whole numbers, so sums of them are exact.
func randomData[T simd.Floats](rng *rand.Rand, n int, integral bool) []T {
	out := make([]T, n)
	for i := range out {
		if integral {
			out[i] = T(rng.IntN(16) - 8)
		} else {
			out[i] = T(rng.Float64()*16 - 8)
		}
	}
	return out
}

func randomComplex[T simd.Complexes](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		re, im := rng.Float64()*16-8, rng.Float64()*16-8
		switch p := any(&out[i]).(type) {
		case *complex64:
			*p = complex64(complex(re, im))
		case *complex128:
			*p = complex(re, im)
		}
	}
	return out
}

func TestAddOneScenario(t *testing.T) {
	x := []float32{1, 2, 3, 4, 5}
	AddOne(x)
	assert.Equal(t, []float32{2, 3, 4, 5, 6}, x)

	// Same values placed across a vector boundary of an aligned buffer.
	buf := simd.AllocateMaxAligned[float32](16)
	placed := buf[7:12]
	copy(placed, []float32{1, 2, 3, 4, 5})
	for _, level := range allLevels {
		y := slices.Clone(placed)
		AddOneFloat32For(simd.UncheckedToken(level), placed)
		assert.Equal(t, []float32{2, 3, 4, 5, 6}, placed, "level %v", level)
		copy(placed, y)
	}
}

// checkDispatch runs fn for every level at every size around that level's
// native width and compares the result with the scalar reference want.
func checkDispatch[T simd.Scalar](t *testing.T, name string, gen func(n int) []T, want func(x []T), fn func(tok simd.Token, x []T)) {
	t.Helper()
	for _, level := range allLevels {
		for _, n := range testSizes(simd.NativeWidth[T](level)) {
			t.Run(fmt.Sprintf("%s/%v/%d", name, level, n), func(t *testing.T) {
				x := gen(n)
				expected := slices.Clone(x)
				want(expected)
				fn(simd.UncheckedToken(level), x)
				if diff := cmp.Diff(expected, x); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestDispatchFloat32(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	gen := func(n int) []float32 { return randomData[float32](rng, n, false) }
	other := randomData[float32](rng, 1024, false)

	checkDispatch(t, "AddOne", gen,
		func(x []float32) {
			for i := range x {
				x[i]++
			}
		},
		func(tok simd.Token, x []float32) { AddOneFloat32For(tok, x) })

	checkDispatch(t, "AddScalar", gen,
		func(x []float32) {
			for i := range x {
				x[i] += 2.5
			}
		},
		func(tok simd.Token, x []float32) { AddScalarFloat32For(tok, x, 2.5) })

	checkDispatch(t, "Add", gen,
		func(x []float32) {
			for i := range x {
				x[i] += other[i]
			}
		},
		func(tok simd.Token, x []float32) { AddFloat32For(tok, x, other) })

	checkDispatch(t, "Mul", gen,
		func(x []float32) {
			for i := range x {
				x[i] *= other[i]
			}
		},
		func(tok simd.Token, x []float32) { MulFloat32For(tok, x, other) })

	checkDispatch(t, "Scale", gen,
		func(x []float32) {
			for i := range x {
				x[i] *= -0.75
			}
		},
		func(tok simd.Token, x []float32) { ScaleFloat32For(tok, x, -0.75) })
}

func TestDispatchFloat64(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	gen := func(n int) []float64 { return randomData[float64](rng, n, false) }
	other := randomData[float64](rng, 1024, false)

	checkDispatch(t, "AddOne", gen,
		func(x []float64) {
			for i := range x {
				x[i]++
			}
		},
		func(tok simd.Token, x []float64) { AddOneFor(tok, x) })

	checkDispatch(t, "Add", gen,
		func(x []float64) {
			for i := range x {
				x[i] += other[i]
			}
		},
		func(tok simd.Token, x []float64) { AddFor(tok, x, other) })

	checkDispatch(t, "Mul", gen,
		func(x []float64) {
			for i := range x {
				x[i] *= other[i]
			}
		},
		func(tok simd.Token, x []float64) { MulFor(tok, x, other) })

	checkDispatch(t, "Scale", gen,
		func(x []float64) {
			for i := range x {
				x[i] *= 3
			}
		},
		func(tok simd.Token, x []float64) { ScaleFor(tok, x, 3) })
}

func TestDispatchComplex(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	checkDispatch(t, "Rotate",
		func(n int) []complex128 { return randomComplex[complex128](rng, n) },
		func(x []complex128) {
			for i, c := range x {
				x[i] = complex(-imag(c), real(c))
			}
		},
		func(tok simd.Token, x []complex128) { RotateComplex128For(tok, x) })

	checkDispatch(t, "Conjugate",
		func(n int) []complex64 { return randomComplex[complex64](rng, n) },
		func(x []complex64) {
			for i, c := range x {
				x[i] = complex(real(c), -imag(c))
			}
		},
		func(tok simd.Token, x []complex64) { ConjugateFor(tok, x) })
}

func TestAddUsesShorterLength(t *testing.T) {
	dst := []float32{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	Add(dst, []float32{1, 2, 3})
	assert.Equal(t, []float32{2, 3, 4, 1, 1, 1, 1, 1, 1, 1}, dst)

	dst = []float32{1, 2}
	Mul(dst, []float32{3, 3, 3, 3, 3, 3, 3, 3, 3})
	assert.Equal(t, []float32{3, 6}, dst)
}

func TestSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for _, level := range allLevels {
		tok := simd.UncheckedToken(level)
		for _, n := range testSizes(simd.NativeWidth[float32](level)) {
			x := randomData[float32](rng, n, true)
			x64 := make([]float64, n)
			var want float32
			for i, v := range x {
				want += v
				x64[i] = float64(v)
			}
			assert.Equal(t, want, SumFloat32For(tok, x), "level %v n %d", level, n)
			assert.Equal(t, float64(want), SumFor(tok, x64), "level %v n %d", level, n)
		}
	}
	assert.Zero(t, Sum[float64](nil))
}

func firScalar[T simd.Floats](dst, src, taps []T) int {
	if len(taps) == 0 || len(src) < len(taps) {
		return 0
	}
	n := min(len(dst), len(src)-len(taps)+1)
	for i := range n {
		var acc T
		for k, tap := range taps {
			acc += src[i+k] * tap
		}
		dst[i] = acc
	}
	return n
}

func TestFIR(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for _, level := range allLevels {
		tok := simd.UncheckedToken(level)
		w := simd.NativeWidth[float32](level)
		for _, numTaps := range []int{1, 3, w + 1} {
			taps := randomData[float32](rng, numTaps, true)
			for _, n := range testSizes(w) {
				src := randomData[float32](rng, n+numTaps-1, true)
				want := make([]float32, n+2)
				got := slices.Clone(want)

				wantN := firScalar(want, src, taps)
				gotN := FIRFloat32For(tok, got, src, taps)
				require.Equal(t, wantN, gotN, "level %v taps %d n %d", level, numTaps, n)
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("level %v taps %d n %d: mismatch (-want +got):\n%s", level, numTaps, n, diff)
				}
			}
		}
	}
}

func TestFIREdgeCases(t *testing.T) {
	dst := make([]float64, 4)
	assert.Zero(t, FIR(dst, []float64{1, 2, 3}, nil))
	assert.Zero(t, FIR(dst, []float64{1, 2}, []float64{1, 1, 1}))

	// dst limits the number of outputs.
	n := FIR(dst[:2], []float64{1, 2, 3, 4, 5, 6}, []float64{1, -1})
	assert.Equal(t, 2, n)
	assert.Equal(t, []float64{-1, -1, 0, 0}, dst)
}

func TestAddOneTwice(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	checkDispatch(t, "AddOneTwice",
		func(n int) []float64 { return randomData[float64](rng, n, false) },
		func(x []float64) {
			AddOneFloat64For(simd.Generic{}, x)
			AddOneFloat64For(simd.Generic{}, x)
		},
		func(tok simd.Token, x []float64) { AddOneTwiceFloat64For(tok, x) })
}

func TestAddOneTwiceSkipsInnerDispatch(t *testing.T) {
	addOneFloat32Dispatch.Reset()
	t.Cleanup(addOneFloat32Dispatch.Reset)

	for _, level := range allLevels {
		x := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
		AddOneTwiceFloat32For(simd.UncheckedToken(level), x)
		assert.Equal(t, []float32{3, 4, 5, 6, 7, 8, 9, 10, 11}, x, "level %v", level)
	}
	x := []float32{1, 2, 3}
	AddOneTwice(x)
	assert.Equal(t, []float32{3, 4, 5}, x)

	// The inner kernel ran in every case, never through its own table.
	assert.Equal(t, simd.Unresolved, addOneFloat32Dispatch.State())
}

func TestResolveMatchesStatic(t *testing.T) {
	t.Cleanup(func() {
		simd.ResetDetection()
		addOneFloat32Dispatch.Reset()
	})

	tests := []struct {
		name     string
		features simd.Features
		want     simd.Level
	}{
		{"generic", simd.Features{ForceGeneric: true}, simd.LevelGeneric},
		{"sse", simd.Features{HasSSE: true}, simd.LevelSSE},
		{"avx", simd.Features{HasSSE: true, HasAVX: true}, simd.LevelAVX},
		{"neon", simd.Features{HasNEON: true}, simd.LevelNEON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			simd.SetForcedFeatures(tt.features)
			addOneFloat32Dispatch.Reset()

			x := randomData[float32](rand.New(rand.NewPCG(11, 12)), 37, false)
			y := slices.Clone(x)
			AddOneFloat32(x)
			AddOneFloat32For(simd.UncheckedToken(tt.want), y)

			assert.Equal(t, tt.want, addOneFloat32Dispatch.Level())
			assert.Equal(t, y, x)
		})
	}
}

func TestGeneratedTables(t *testing.T) {
	for _, levels := range [][]simd.Level{
		addOneFloat32Dispatch.Levels(),
		addOneTwiceFloat32Dispatch.Levels(),
		sumFloat64Dispatch.Levels(),
		firFloat32Dispatch.Levels(),
		rotateComplex64Dispatch.Levels(),
		conjugateComplex128Dispatch.Levels(),
	} {
		assert.Equal(t, allLevels, levels)
	}
}

func BenchmarkAdd(b *testing.B) {
	for _, n := range []int{16, 256, 4096} {
		dst := randomData[float32](rand.New(rand.NewPCG(1, 1)), n, false)
		s := randomData[float32](rand.New(rand.NewPCG(2, 2)), n, false)
		for _, level := range simd.ArchLevels() {
			if !simd.Supported(level) {
				continue
			}
			tok := simd.UncheckedToken(level)
			b.Run(fmt.Sprintf("%v/%d", level, n), func(b *testing.B) {
				b.SetBytes(int64(4 * n))
				for b.Loop() {
					AddFloat32For(tok, dst, s)
				}
			})
		}
	}
}

func BenchmarkFIR(b *testing.B) {
	src := randomData[float32](rand.New(rand.NewPCG(3, 3)), 4096, false)
	taps := randomData[float32](rand.New(rand.NewPCG(4, 4)), 16, false)
	dst := make([]float32, len(src))
	for _, level := range simd.ArchLevels() {
		if !simd.Supported(level) {
			continue
		}
		tok := simd.UncheckedToken(level)
		b.Run(level.String(), func(b *testing.B) {
			for b.Loop() {
				FIRFloat32For(tok, dst, src, taps)
			}
		})
	}
}
