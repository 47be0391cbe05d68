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

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShim2LaneOrder(t *testing.T) {
	tok := NewUnchecked[SSE]()
	lo := Read[SSEF32x4](tok, []float32{1, 2, 3, 4})
	hi := Read[SSEF32x4](tok, []float32{5, 6, 7, 8})
	s := NewShim2(lo, hi)

	require.Equal(t, 8, s.Width())
	assert.Equal(t, lo, s.Lo())
	assert.Equal(t, hi, s.Hi())
	assert.Empty(t, cmp.Diff([]float32{1, 2, 3, 4, 5, 6, 7, 8}, ToSlice(s)))

	// A shim built by concatenation reads the same as one loaded whole.
	assert.Equal(t, s, Read[SSEF32x8](tok, []float32{1, 2, 3, 4, 5, 6, 7, 8}))
}

// checkShimEquivalence compares a composed vector S against a native
// vector N of the same width, lane for lane, for every arithmetic op.
func checkShimEquivalence[S Vector[T, S], N Vector[T, N], T Scalar](t *testing.T, tok Token) {
	t.Helper()
	var n N
	width := n.Width()
	a := testLanes[T](width, -2)
	b := testLanes[T](width, 5)

	sa, sb := Read[S](tok, a), Read[S](tok, b)
	na, nb := Read[N](tok, a), Read[N](tok, b)
	require.Equal(t, width, sa.Width())

	assert.Equal(t, ToSlice(na.Add(nb)), ToSlice(sa.Add(sb)), "add")
	assert.Equal(t, ToSlice(na.Sub(nb)), ToSlice(sa.Sub(sb)), "sub")
	assert.Equal(t, ToSlice(na.Mul(nb)), ToSlice(sa.Mul(sb)), "mul")
	assert.Equal(t, ToSlice(na.Div(nb)), ToSlice(sa.Div(sb)), "div")
	assert.Equal(t, ToSlice(na.Neg()), ToSlice(sa.Neg()), "neg")
	assert.Equal(t, ReduceSum(na), ReduceSum(sa), "sum")
	assert.Equal(t, ReduceProduct(na), ReduceProduct(sa), "product")
	for i := range width {
		assert.Equal(t, na.Lane(i), sa.Lane(i), "lane %d", i)
	}
}

func TestShimEquivalence(t *testing.T) {
	avx := NewUnchecked[AVX]()

	// Doubled, quadrupled and octupled compositions against an 8-lane
	// native register.
	t.Run("2x", func(t *testing.T) { checkShimEquivalence[SSEF32x8, AVXF32x8](t, avx) })
	t.Run("4x", func(t *testing.T) { checkShimEquivalence[Shim4[float32, SSEF32x2], AVXF32x8](t, avx) })
	t.Run("8x", func(t *testing.T) { checkShimEquivalence[GenericF32x8, AVXF32x8](t, avx) })

	t.Run("f64/2x", func(t *testing.T) { checkShimEquivalence[SSEF64x4, AVXF64x4](t, avx) })
	t.Run("f64/4x", func(t *testing.T) { checkShimEquivalence[GenericF64x4, AVXF64x4](t, avx) })
	t.Run("c64/4x", func(t *testing.T) { checkShimEquivalence[GenericC64x4, AVXC64x4](t, avx) })
	t.Run("c128/2x", func(t *testing.T) { checkShimEquivalence[SSEC128x2, AVXC128x2](t, avx) })
}

// checkTokenTransparency checks that W, a ShimToken over U, behaves exactly
// like U.
func checkTokenTransparency[W Vector[T, W], U Vector[T, U], T Scalar](t *testing.T, strong, native Token) {
	t.Helper()
	var u U
	width := u.Width()
	a := testLanes[T](width, 0.5)
	b := testLanes[T](width, -7)
	x := scalarOf[T](3, 1)

	wa, wb := Read[W](strong, a), Read[W](strong, b)
	ua, ub := Read[U](native, a), Read[U](native, b)

	assert.Equal(t, ToSlice(ua.Add(ub)), ToSlice(wa.Add(wb)))
	assert.Equal(t, ToSlice(ua.Sub(ub)), ToSlice(wa.Sub(wb)))
	assert.Equal(t, ToSlice(ua.Mul(ub)), ToSlice(wa.Mul(wb)))
	assert.Equal(t, ToSlice(ua.Div(ub)), ToSlice(wa.Div(wb)))
	assert.Equal(t, ToSlice(ua.DivScalar(x)), ToSlice(wa.DivScalar(x)))
	assert.Equal(t, ToSlice(ua.Neg()), ToSlice(wa.Neg()))
	assert.Equal(t, ToSlice(Splat[U](native, x)), ToSlice(Splat[W](strong, x)))
	assert.Equal(t, width, wa.Width())
	assert.Equal(t, strong.Level(), wa.Level())
	assert.Equal(t, native.Level(), ua.Level())
}

func TestShimTokenTransparency(t *testing.T) {
	avx := NewUnchecked[AVX]()
	sse := NewUnchecked[SSE]()
	gen := NewUnchecked[Generic]()

	t.Run("AVXF32x4", func(t *testing.T) { checkTokenTransparency[AVXF32x4, SSEF32x4](t, avx, sse) })
	t.Run("AVXF32x2", func(t *testing.T) { checkTokenTransparency[AVXF32x2, GenericF32x2](t, avx, gen) })
	t.Run("AVXC128x1", func(t *testing.T) { checkTokenTransparency[AVXC128x1, SSEC128x1](t, avx, sse) })
	t.Run("SSEF64x1", func(t *testing.T) { checkTokenTransparency[SSEF64x1, GenericF64x1](t, sse, gen) })
	t.Run("NEONC64x1", func(t *testing.T) {
		checkTokenTransparency[NEONC64x1, GenericC64x1](t, NewUnchecked[NEON](), gen)
	})
}

func TestCoerce(t *testing.T) {
	sse := NewUnchecked[SSE]()
	avx := NewUnchecked[AVX]()
	u := Splat[SSEF32x4](sse, float32(2))

	w := Coerce(avx, u)
	assert.Equal(t, u, w.Underlying())
	assert.Equal(t, LevelAVX, w.Level())
	var want AVXF32x4 = w
	assert.Equal(t, want, Splat[AVXF32x4](avx, float32(2)))

	assert.Panics(t, func() { Coerce(NewUnchecked[NEON](), u) })
}

func TestShimTokenRejectsStrongerUnderlying(t *testing.T) {
	// An SSE token cannot present an AVX register.
	assert.Panics(t, func() {
		Splat[ShimToken[float32, AVXF32x8, SSE]](NewUnchecked[SSE](), float32(1))
	})
}
