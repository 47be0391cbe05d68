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

// Package elementwise provides element-wise slice kernels built on the simd
// vector types.
//
// Each kernel is written once as a Base* function, generic over the lane
// type, the vector type and the token. simdgen instantiates it for every
// level and emits a dispatcher:
//   - AddOneFloat32, AddOneFloat64: resolve the best level on first call
//   - AddOneFloat32For: use the level of a token the caller already holds
//   - AddOne[T]: generic entry point over the typed ones
//
// The For entry points go through the dispatch table. A Base function that
// needs another kernel calls its Base function directly with its own token
// and vector type, which selects the matching specialization statically.
//
// Some generated AVX variants are replaced by hand-tuned kernels in init;
// see z_vek.go.
package elementwise

//go:generate go run ../../../cmd/simdgen --input elementwise_base.go --output . --dispatch elementwise

import "github.com/ajroetker/generic-simd/simd"

// BaseAddOne adds 1 to every element of x, in place.
//
// The aligned middle of x is processed as whole vectors; the unaligned
// head and tail are processed one element at a time.
//
// Example:
//
//	x := []float32{1, 2, 3, 4, 5}
//	AddOne(x) // x is now {2, 3, 4, 5, 6}
func BaseAddOne[T simd.Floats, V simd.Vector[T, V], K simd.Token](tok K, x []T) {
	head, body, tail := simd.Align[V](tok, x)
	for i := range head {
		head[i]++
	}
	for i := range body {
		body[i] = body[i].AddScalar(1)
	}
	for i := range tail {
		tail[i]++
	}
}

// BaseAddOneTwice adds 2 to every element of x, in place, by running
// BaseAddOne twice.
//
// The inner calls reuse tok and the vector type this specialization was
// instantiated with, so they compile to direct calls: no detection and no
// dispatch table.
func BaseAddOneTwice[T simd.Floats, V simd.Vector[T, V], K simd.Token](tok K, x []T) {
	BaseAddOne[T, V](tok, x)
	BaseAddOne[T, V](tok, x)
}

// BaseAddScalar adds c to every element of x, in place.
func BaseAddScalar[T simd.Floats, V simd.Vector[T, V], K simd.Token](tok K, x []T, c T) {
	head, body, tail := simd.Align[V](tok, x)
	for i := range head {
		head[i] += c
	}
	for i := range body {
		body[i] = body[i].AddScalar(c)
	}
	for i := range tail {
		tail[i] += c
	}
}

// BaseAdd performs in-place element-wise addition: dst[i] += s[i].
//
// If the slices have different lengths, the operation uses the minimum length.
func BaseAdd[T simd.Floats, V simd.Vector[T, V], K simd.Token](tok K, dst, s []T) {
	n := min(len(dst), len(s))
	lanes := simd.Zeroed[V](tok).Width()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vd := simd.Read[V](tok, dst[i:])
		vs := simd.Read[V](tok, s[i:])
		simd.Write(vd.Add(vs), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] += s[i]
	}
}

// BaseMul performs in-place element-wise multiplication: dst[i] *= s[i].
//
// If the slices have different lengths, the operation uses the minimum length.
func BaseMul[T simd.Floats, V simd.Vector[T, V], K simd.Token](tok K, dst, s []T) {
	n := min(len(dst), len(s))
	lanes := simd.Zeroed[V](tok).Width()

	var i int
	for i = 0; i+lanes <= n; i += lanes {
		vd := simd.Read[V](tok, dst[i:])
		vs := simd.Read[V](tok, s[i:])
		simd.Write(vd.Mul(vs), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] *= s[i]
	}
}

// BaseScale multiplies every element of dst by c, in place.
func BaseScale[T simd.Floats, V simd.Vector[T, V], K simd.Token](tok K, dst []T, c T) {
	lanes := simd.Zeroed[V](tok).Width()
	scale := simd.Splat[V](tok, c)

	var i int
	for i = 0; i+lanes <= len(dst); i += lanes {
		v := simd.ReadUnchecked[V](tok, dst[i:])
		simd.WriteUnchecked(v.Mul(scale), dst[i:])
	}
	for ; i < len(dst); i++ {
		dst[i] *= c
	}
}

// BaseSum returns the sum of the elements of x.
//
// Lanes accumulate independently and are folded at the end, so the
// rounding differs from a sequential loop once x holds more than one
// vector.
func BaseSum[T simd.Floats, V simd.Vector[T, V], K simd.Token](tok K, x []T) T {
	lanes := simd.Zeroed[V](tok).Width()
	acc := simd.Zeroed[V](tok)

	var i int
	for i = 0; i+lanes <= len(x); i += lanes {
		simd.AddAssign(&acc, simd.Read[V](tok, x[i:]))
	}
	sum := simd.ReduceSum(acc)
	for ; i < len(x); i++ {
		sum += x[i]
	}
	return sum
}

// BaseFIR applies the finite impulse response filter taps to src:
//
//	dst[i] = taps[0]*src[i] + taps[1]*src[i+1] + ... + taps[m-1]*src[i+m-1]
//
// for every i where the window fits in src. It returns the number of
// outputs written, which is min(len(dst), len(src)-len(taps)+1), or 0 when
// there are no taps or src is shorter than taps.
//
// Products are accumulated in tap order, the same order as the scalar
// formula above.
func BaseFIR[T simd.Floats, V simd.Vector[T, V], K simd.Token](tok K, dst, src, taps []T) int {
	if len(taps) == 0 || len(src) < len(taps) {
		return 0
	}
	n := min(len(dst), len(src)-len(taps)+1)
	lanes := simd.Zeroed[V](tok).Width()

	var i int
	if n >= lanes {
		windows := simd.NewOverlapping[V](tok, src)
		out := simd.NewOverlappingMut[V](tok, dst[:n])
		for i = 0; i+lanes <= n; i += lanes {
			out.Update(i, func(v *V) {
				acc := simd.Zeroed[V](tok)
				for k, tap := range taps {
					acc = acc.Add(windows.GetUnchecked(i + k).MulScalar(tap))
				}
				*v = acc
			})
		}
	}
	for ; i < n; i++ {
		var acc T
		for k, tap := range taps {
			acc += src[i+k] * tap
		}
		dst[i] = acc
	}
	return n
}

// BaseRotate multiplies every element of x by i, in place, rotating it by
// 90 degrees in the complex plane.
func BaseRotate[T simd.Complexes, V simd.Vector[T, V], K simd.Token](tok K, x []T) {
	simd.ProcessWithTail[V](len(x),
		func(off int) {
			simd.Write(simd.MulI(simd.Read[V](tok, x[off:])), x[off:])
		},
		func(off, _ int) {
			simd.WritePartial(simd.MulI(simd.ReadPartial[V](tok, x[off:])), x[off:])
		},
	)
}

// BaseConjugate replaces every element of x by its complex conjugate.
func BaseConjugate[T simd.Complexes, V simd.Vector[T, V], K simd.Token](tok K, x []T) {
	simd.ProcessWithTail[V](len(x),
		func(off int) {
			simd.Write(simd.Conj(simd.Read[V](tok, x[off:])), x[off:])
		},
		func(off, _ int) {
			simd.WritePartial(simd.Conj(simd.ReadPartial[V](tok, x[off:])), x[off:])
		},
	)
}
