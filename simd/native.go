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

import "unsafe"

// Token128 is satisfied by the tokens whose native register is 128 bits.
type Token128 interface {
	SSE | NEON | Simd128
	Token
}

// Token256 is satisfied by the tokens whose native register is 256 bits.
type Token256 interface {
	AVX
	Token
}

// Vec1 is a one-lane vector. It is the native vector of the Generic token.
type Vec1[T Scalar, K Token] struct {
	v T
}

func (Vec1[T, K]) Width() int     { return 1 }
func (Vec1[T, K]) Level() Level   { return levelOf[K]() }
func (Vec1[T, K]) align() uintptr { return alignOf[T]() }

func (v Vec1[T, K]) Lane(i int) T {
	if i != 0 {
		panic(laneOutOfRange(i, 1))
	}
	return v.v
}

func (v Vec1[T, K]) Add(o Vec1[T, K]) Vec1[T, K] { return Vec1[T, K]{v.v + o.v} }
func (v Vec1[T, K]) Sub(o Vec1[T, K]) Vec1[T, K] { return Vec1[T, K]{v.v - o.v} }
func (v Vec1[T, K]) Mul(o Vec1[T, K]) Vec1[T, K] { return Vec1[T, K]{v.v * o.v} }
func (v Vec1[T, K]) Div(o Vec1[T, K]) Vec1[T, K] { return Vec1[T, K]{v.v / o.v} }

func (v Vec1[T, K]) AddScalar(x T) Vec1[T, K] { return Vec1[T, K]{v.v + x} }
func (v Vec1[T, K]) SubScalar(x T) Vec1[T, K] { return Vec1[T, K]{v.v - x} }
func (v Vec1[T, K]) MulScalar(x T) Vec1[T, K] { return Vec1[T, K]{v.v * x} }
func (v Vec1[T, K]) DivScalar(x T) Vec1[T, K] { return Vec1[T, K]{v.v / x} }

func (v Vec1[T, K]) Neg() Vec1[T, K] { return Vec1[T, K]{-v.v} }

func (Vec1[T, K]) splat(x T) Vec1[T, K]              { return Vec1[T, K]{x} }
func (Vec1[T, K]) loadPtr(p *T) Vec1[T, K]           { return Vec1[T, K]{*p} }
func (v Vec1[T, K]) storePtr(p *T)                   { *p = v.v }
func (v Vec1[T, K]) mapLanes(f func(T) T) Vec1[T, K] { return Vec1[T, K]{f(v.v)} }

// Vec128 is a 128-bit vector: 4 float32, 2 float64, 2 complex64 or
// 1 complex128 lanes. It is the native vector of SSE, NEON and Simd128.
type Vec128[T Scalar, K Token128] struct {
	r [2]uint64
}

func (v *Vec128[T, K]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.r)), 16/sizeOf[T]())
}

func (Vec128[T, K]) Width() int     { return int(16 / sizeOf[T]()) }
func (Vec128[T, K]) Level() Level   { return levelOf[K]() }
func (Vec128[T, K]) align() uintptr { return 16 }

func (v Vec128[T, K]) Lane(i int) T {
	l := v.lanes()
	if uint(i) >= uint(len(l)) {
		panic(laneOutOfRange(i, len(l)))
	}
	return l[i]
}

func (v Vec128[T, K]) Add(o Vec128[T, K]) (r Vec128[T, K]) {
	addLanes(r.lanes(), v.lanes(), o.lanes())
	return r
}

func (v Vec128[T, K]) Sub(o Vec128[T, K]) (r Vec128[T, K]) {
	subLanes(r.lanes(), v.lanes(), o.lanes())
	return r
}

func (v Vec128[T, K]) Mul(o Vec128[T, K]) (r Vec128[T, K]) {
	mulLanes(r.lanes(), v.lanes(), o.lanes())
	return r
}

func (v Vec128[T, K]) Div(o Vec128[T, K]) (r Vec128[T, K]) {
	divLanes(r.lanes(), v.lanes(), o.lanes())
	return r
}

func (v Vec128[T, K]) AddScalar(x T) Vec128[T, K] { return v.Add(v.splat(x)) }
func (v Vec128[T, K]) SubScalar(x T) Vec128[T, K] { return v.Sub(v.splat(x)) }
func (v Vec128[T, K]) MulScalar(x T) Vec128[T, K] { return v.Mul(v.splat(x)) }
func (v Vec128[T, K]) DivScalar(x T) Vec128[T, K] { return v.Div(v.splat(x)) }

func (v Vec128[T, K]) Neg() (r Vec128[T, K]) {
	negLanes(r.lanes(), v.lanes())
	return r
}

func (Vec128[T, K]) splat(x T) (r Vec128[T, K]) {
	fillLanes(r.lanes(), x)
	return r
}

func (Vec128[T, K]) loadPtr(p *T) (r Vec128[T, K]) {
	l := r.lanes()
	copy(l, unsafe.Slice(p, len(l)))
	return r
}

func (v Vec128[T, K]) storePtr(p *T) {
	l := v.lanes()
	copy(unsafe.Slice(p, len(l)), l)
}

func (v Vec128[T, K]) mapLanes(f func(T) T) (r Vec128[T, K]) {
	mapLanes(r.lanes(), v.lanes(), f)
	return r
}

// Vec256 is a 256-bit vector: 8 float32, 4 float64, 4 complex64 or
// 2 complex128 lanes. It is the native vector of AVX.
type Vec256[T Scalar, K Token256] struct {
	r [4]uint64
}

func (v *Vec256[T, K]) lanes() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&v.r)), 32/sizeOf[T]())
}

func (Vec256[T, K]) Width() int     { return int(32 / sizeOf[T]()) }
func (Vec256[T, K]) Level() Level   { return levelOf[K]() }
func (Vec256[T, K]) align() uintptr { return 32 }

func (v Vec256[T, K]) Lane(i int) T {
	l := v.lanes()
	if uint(i) >= uint(len(l)) {
		panic(laneOutOfRange(i, len(l)))
	}
	return l[i]
}

func (v Vec256[T, K]) Add(o Vec256[T, K]) (r Vec256[T, K]) {
	addLanes(r.lanes(), v.lanes(), o.lanes())
	return r
}

func (v Vec256[T, K]) Sub(o Vec256[T, K]) (r Vec256[T, K]) {
	subLanes(r.lanes(), v.lanes(), o.lanes())
	return r
}

func (v Vec256[T, K]) Mul(o Vec256[T, K]) (r Vec256[T, K]) {
	mulLanes(r.lanes(), v.lanes(), o.lanes())
	return r
}

func (v Vec256[T, K]) Div(o Vec256[T, K]) (r Vec256[T, K]) {
	divLanes(r.lanes(), v.lanes(), o.lanes())
	return r
}

func (v Vec256[T, K]) AddScalar(x T) Vec256[T, K] { return v.Add(v.splat(x)) }
func (v Vec256[T, K]) SubScalar(x T) Vec256[T, K] { return v.Sub(v.splat(x)) }
func (v Vec256[T, K]) MulScalar(x T) Vec256[T, K] { return v.Mul(v.splat(x)) }
func (v Vec256[T, K]) DivScalar(x T) Vec256[T, K] { return v.Div(v.splat(x)) }

func (v Vec256[T, K]) Neg() (r Vec256[T, K]) {
	negLanes(r.lanes(), v.lanes())
	return r
}

func (Vec256[T, K]) splat(x T) (r Vec256[T, K]) {
	fillLanes(r.lanes(), x)
	return r
}

func (Vec256[T, K]) loadPtr(p *T) (r Vec256[T, K]) {
	l := r.lanes()
	copy(l, unsafe.Slice(p, len(l)))
	return r
}

func (v Vec256[T, K]) storePtr(p *T) {
	l := v.lanes()
	copy(unsafe.Slice(p, len(l)), l)
}

func (v Vec256[T, K]) mapLanes(f func(T) T) (r Vec256[T, K]) {
	mapLanes(r.lanes(), v.lanes(), f)
	return r
}
