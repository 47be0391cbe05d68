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
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scalarOf builds a lane value from its real and imaginary parts. The
// imaginary part is dropped for real types.
func scalarOf[T Scalar](re, im float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(re)).(T)
	case float64:
		return any(re).(T)
	case complex64:
		return any(complex64(complex(re, im))).(T)
	case complex128:
		return any(complex(re, im)).(T)
	}
	panic("unreachable")
}

// testLanes returns n distinct, non-zero lane values.
func testLanes[T Scalar](n int, seed float64) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = scalarOf[T](seed+float64(i)*1.25, 0.5-float64(i))
	}
	return out
}

type laneOp[T Scalar, V any] struct {
	name   string
	vec    func(a, b V) V
	scalar func(a, b T) T
}

func laneOps[V Vector[T, V], T Scalar]() []laneOp[T, V] {
	return []laneOp[T, V]{
		{"add", func(a, b V) V { return a.Add(b) }, func(a, b T) T { return a + b }},
		{"sub", func(a, b V) V { return a.Sub(b) }, func(a, b T) T { return a - b }},
		{"mul", func(a, b V) V { return a.Mul(b) }, func(a, b T) T { return a * b }},
		{"div", func(a, b V) V { return a.Div(b) }, func(a, b T) T { return a / b }},
	}
}

func checkVector[V Vector[T, V], T Scalar](t *testing.T, tok Token, width int) {
	t.Helper()

	a := testLanes[T](width, 1)
	b := testLanes[T](width, 3.5)
	va := Read[V](tok, a)
	vb := Read[V](tok, b)

	require.Equal(t, width, va.Width())
	require.Equal(t, uintptr(width)*sizeOf[T](), unsafe.Sizeof(va), "layout must be [width]T")
	require.Empty(t, cmp.Diff(a, ToSlice(va)))
	for i := range width {
		assert.Equal(t, a[i], va.Lane(i))
	}
	assert.Panics(t, func() { va.Lane(width) })
	assert.Panics(t, func() { va.Lane(-1) })

	for _, op := range laneOps[V]() {
		got := ToSlice(op.vec(va, vb))
		want := make([]T, width)
		for i := range want {
			want[i] = op.scalar(a[i], b[i])
		}
		assert.Empty(t, cmp.Diff(want, got), op.name)
	}

	x := scalarOf[T](0.75, -2)
	scalarOps := []struct {
		name string
		got  V
		op   func(a T) T
	}{
		{"add", va.AddScalar(x), func(a T) T { return a + x }},
		{"sub", va.SubScalar(x), func(a T) T { return a - x }},
		{"mul", va.MulScalar(x), func(a T) T { return a * x }},
		{"div", va.DivScalar(x), func(a T) T { return a / x }},
		{"neg", va.Neg(), func(a T) T { return -a }},
	}
	for _, tt := range scalarOps {
		want := make([]T, width)
		for i := range want {
			want[i] = tt.op(a[i])
		}
		assert.Empty(t, cmp.Diff(want, ToSlice(tt.got)), tt.name)
	}

	// Vector op scalar is vector op splat.
	assert.Equal(t, va.AddScalar(x), va.Add(Splat[V](tok, x)))
	assert.Equal(t, va.MulScalar(x), va.Mul(Splat[V](tok, x)))

	zero := Zeroed[V](tok)
	for i := range width {
		assert.Equal(t, T(0), zero.Lane(i))
	}

	// Assigning forms match x = x.op(y).
	acc := va
	AddAssign(&acc, vb)
	assert.Equal(t, va.Add(vb), acc)
	SubAssign(&acc, vb)
	assert.Equal(t, va.Add(vb).Sub(vb), acc)
	MulAssign(&acc, vb)
	DivAssign(&acc, vb)
	assert.Equal(t, va.Add(vb).Sub(vb).Mul(vb).Div(vb), acc)

	// Stores and pointer loads.
	dst := make([]T, width+2)
	Write(va, dst[1:])
	assert.Equal(t, T(0), dst[0])
	assert.Equal(t, T(0), dst[width+1])
	assert.Empty(t, cmp.Diff(a, dst[1:width+1]))
	assert.Equal(t, va, ReadPtr[V](tok, &dst[1]))
	assert.Equal(t, va, ReadUnchecked[V](tok, dst[1:]))

	ptrDst := make([]T, width)
	WritePtr(vb, &ptrDst[0])
	assert.Empty(t, cmp.Diff(b, ptrDst))
	clear(ptrDst)
	WriteUnchecked(vb, ptrDst)
	assert.Empty(t, cmp.Diff(b, ptrDst))

	// The slice view aliases the vector.
	view := AsSlice(&va)
	require.Len(t, view, width)
	view[width-1] = x
	assert.Equal(t, x, va.Lane(width-1))

	assert.Panics(t, func() { Read[V](tok, a[:width-1]) })
	assert.Panics(t, func() { Write(va, make([]T, width-1)) })
}

func TestVectorFamily(t *testing.T) {
	gen := NewUnchecked[Generic]()
	sse := NewUnchecked[SSE]()
	avx := NewUnchecked[AVX]()
	neon := NewUnchecked[NEON]()
	wasm := NewUnchecked[Simd128]()

	t.Run("GenericF32x1", func(t *testing.T) { checkVector[GenericF32x1](t, gen, 1) })
	t.Run("GenericF32x2", func(t *testing.T) { checkVector[GenericF32x2](t, gen, 2) })
	t.Run("GenericF64x4", func(t *testing.T) { checkVector[GenericF64x4](t, gen, 4) })
	t.Run("GenericC64x8", func(t *testing.T) { checkVector[GenericC64x8](t, gen, 8) })
	t.Run("GenericC128x2", func(t *testing.T) { checkVector[GenericC128x2](t, gen, 2) })

	t.Run("SSEF32x1", func(t *testing.T) { checkVector[SSEF32x1](t, sse, 1) })
	t.Run("SSEF32x2", func(t *testing.T) { checkVector[SSEF32x2](t, sse, 2) })
	t.Run("SSEF32x4", func(t *testing.T) { checkVector[SSEF32x4](t, sse, 4) })
	t.Run("SSEF32x8", func(t *testing.T) { checkVector[SSEF32x8](t, sse, 8) })
	t.Run("SSEF64x2", func(t *testing.T) { checkVector[SSEF64x2](t, sse, 2) })
	t.Run("SSEF64x8", func(t *testing.T) { checkVector[SSEF64x8](t, sse, 8) })
	t.Run("SSEC64x2", func(t *testing.T) { checkVector[SSEC64x2](t, sse, 2) })
	t.Run("SSEC128x1", func(t *testing.T) { checkVector[SSEC128x1](t, sse, 1) })
	t.Run("SSEC128x8", func(t *testing.T) { checkVector[SSEC128x8](t, sse, 8) })

	t.Run("AVXF32x1", func(t *testing.T) { checkVector[AVXF32x1](t, avx, 1) })
	t.Run("AVXF32x4", func(t *testing.T) { checkVector[AVXF32x4](t, avx, 4) })
	t.Run("AVXF32x8", func(t *testing.T) { checkVector[AVXF32x8](t, avx, 8) })
	t.Run("AVXF64x2", func(t *testing.T) { checkVector[AVXF64x2](t, avx, 2) })
	t.Run("AVXF64x4", func(t *testing.T) { checkVector[AVXF64x4](t, avx, 4) })
	t.Run("AVXF64x8", func(t *testing.T) { checkVector[AVXF64x8](t, avx, 8) })
	t.Run("AVXC64x4", func(t *testing.T) { checkVector[AVXC64x4](t, avx, 4) })
	t.Run("AVXC128x1", func(t *testing.T) { checkVector[AVXC128x1](t, avx, 1) })
	t.Run("AVXC128x2", func(t *testing.T) { checkVector[AVXC128x2](t, avx, 2) })
	t.Run("AVXC128x8", func(t *testing.T) { checkVector[AVXC128x8](t, avx, 8) })

	t.Run("NEONF32x4", func(t *testing.T) { checkVector[NEONF32x4](t, neon, 4) })
	t.Run("NEONF64x8", func(t *testing.T) { checkVector[NEONF64x8](t, neon, 8) })
	t.Run("NEONC64x1", func(t *testing.T) { checkVector[NEONC64x1](t, neon, 1) })

	t.Run("Simd128F32x8", func(t *testing.T) { checkVector[Simd128F32x8](t, wasm, 8) })
	t.Run("Simd128C128x4", func(t *testing.T) { checkVector[Simd128C128x4](t, wasm, 4) })
}

func TestVectorLevels(t *testing.T) {
	assert.Equal(t, LevelGeneric, GenericF32x8{}.Level())
	assert.Equal(t, LevelSSE, SSEF32x4{}.Level())
	assert.Equal(t, LevelSSE, SSEF32x8{}.Level())
	// Narrow widths under a strong token present that token.
	assert.Equal(t, LevelSSE, SSEF32x1{}.Level())
	assert.Equal(t, LevelAVX, AVXF32x4{}.Level())
	assert.Equal(t, LevelAVX, AVXF32x8{}.Level())
	assert.Equal(t, LevelNEON, NEONC128x2{}.Level())
}

func TestTokenMustImplyVectorLevel(t *testing.T) {
	sse := NewUnchecked[SSE]()
	avx := NewUnchecked[AVX]()

	assert.Panics(t, func() { Splat[AVXF32x8](sse, float32(1)) })
	assert.Panics(t, func() { Zeroed[AVXF32x4](sse) })
	assert.Panics(t, func() { Read[NEONF32x4](sse, make([]float32, 4)) })
	assert.Panics(t, func() { Splat[SSEF32x4](NewUnchecked[Generic](), float32(1)) })

	// A stronger token builds vectors of the levels it implies.
	assert.NotPanics(t, func() { Splat[SSEF32x4](avx, float32(1)) })
	assert.NotPanics(t, func() { Splat[GenericF32x8](avx, float32(1)) })
}

func TestComplexOps(t *testing.T) {
	tok := NewUnchecked[AVX]()
	in := []complex64{1 + 2i, -3 + 0.5i, 0 - 1i, 4}
	v := Read[AVXC64x4](tok, in)

	wantConj := []complex64{1 - 2i, -3 - 0.5i, 0 + 1i, 4}
	wantMulI := make([]complex64, len(in))
	wantMulNegI := make([]complex64, len(in))
	for i, c := range in {
		wantMulI[i] = c * 1i
		wantMulNegI[i] = c * -1i
	}

	assert.Empty(t, cmp.Diff(wantConj, ToSlice(Conj(v))))
	assert.Empty(t, cmp.Diff(wantMulI, ToSlice(MulI(v))))
	assert.Empty(t, cmp.Diff(wantMulNegI, ToSlice(MulNegI(v))))

	// Rotating by +90 then -90 degrees is the identity.
	assert.Equal(t, v, MulNegI(MulI(v)))

	in128 := []complex128{2 - 1i, -0.25 + 8i}
	v128 := Read[SSEC128x2](NewUnchecked[SSE](), in128)
	assert.Empty(t, cmp.Diff([]complex128{2 + 1i, -0.25 - 8i}, ToSlice(Conj(v128))))
	assert.Empty(t, cmp.Diff([]complex128{1 + 2i, -8 - 0.25i}, ToSlice(MulI(v128))))
}
