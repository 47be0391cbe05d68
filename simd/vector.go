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
	"fmt"
	"unsafe"
)

// Vector is the contract shared by every vector type in the package: native
// register-shaped types, width shims and token shims.
//
// V is the implementing type itself, so that operations return the concrete
// type. A vector has the exact memory layout of [Width()]T.
//
// The interface is sealed. Vectors are built from a Token through Zeroed,
// Splat, Read and friends, so that holding one is evidence the level it
// needs is supported.
type Vector[T Scalar, V any] interface {
	// Width returns the number of lanes.
	Width() int

	// Level returns the level whose token is required to build the vector.
	Level() Level

	// Lane returns lane i. It panics if i is out of range.
	Lane(i int) T

	Add(V) V
	Sub(V) V
	Mul(V) V
	Div(V) V

	AddScalar(T) V
	SubScalar(T) V
	MulScalar(T) V
	DivScalar(T) V

	Neg() V

	splat(x T) V
	loadPtr(p *T) V
	storePtr(p *T)
	mapLanes(f func(T) T) V

	// align is the alignment of the vector register, in bytes.
	align() uintptr
}

// widthOf returns the lane count of V.
func widthOf[V Vector[T, V], T Scalar]() int {
	var v V
	return v.Width()
}

// Zeroed returns a vector with every lane set to zero.
func Zeroed[V Vector[T, V], T Scalar](tok Token) V {
	var v V
	mustImply(tok, v.Level())
	return v.splat(0)
}

// Splat returns a vector with every lane set to x.
func Splat[V Vector[T, V], T Scalar](tok Token, x T) V {
	var v V
	mustImply(tok, v.Level())
	return v.splat(x)
}

// Read loads the first Width() elements of src. It panics if src is
// shorter than one vector.
func Read[V Vector[T, V], T Scalar](tok Token, src []T) V {
	var v V
	mustImply(tok, v.Level())
	if len(src) < v.Width() {
		panic(fmt.Sprintf("simd: read of %d lanes from slice of length %d", v.Width(), len(src)))
	}
	return v.loadPtr(unsafe.SliceData(src))
}

// ReadUnchecked loads the first Width() elements of src without a length
// check. The caller must guarantee len(src) >= Width().
func ReadUnchecked[V Vector[T, V], T Scalar](tok Token, src []T) V {
	var v V
	mustImply(tok, v.Level())
	return v.loadPtr(unsafe.SliceData(src))
}

// ReadPtr loads Width() elements starting at p. p must address that many
// readable elements; it need not be aligned.
func ReadPtr[V Vector[T, V], T Scalar](tok Token, p *T) V {
	var v V
	mustImply(tok, v.Level())
	return v.loadPtr(p)
}

// Write stores the lanes of v into the first Width() elements of dst. It
// panics if dst is shorter than one vector.
func Write[V Vector[T, V], T Scalar](v V, dst []T) {
	if len(dst) < v.Width() {
		panic(fmt.Sprintf("simd: write of %d lanes to slice of length %d", v.Width(), len(dst)))
	}
	v.storePtr(unsafe.SliceData(dst))
}

// WriteUnchecked stores v into dst without a length check. The caller must
// guarantee len(dst) >= Width().
func WriteUnchecked[V Vector[T, V], T Scalar](v V, dst []T) {
	v.storePtr(unsafe.SliceData(dst))
}

// WritePtr stores v to Width() elements starting at p.
func WritePtr[V Vector[T, V], T Scalar](v V, p *T) {
	v.storePtr(p)
}

// AsSlice returns a view of the lanes of *v. Writes through the slice
// modify *v.
func AsSlice[V Vector[T, V], T Scalar](v *V) []T {
	w := (*v).Width()
	if unsafe.Sizeof(*v) != uintptr(w)*sizeOf[T]() {
		panic(fmt.Sprintf("simd: vector of %d lanes is %d bytes, not %d",
			w, unsafe.Sizeof(*v), uintptr(w)*sizeOf[T]()))
	}
	return unsafe.Slice((*T)(unsafe.Pointer(v)), w)
}

// ToSlice copies the lanes of v into a new slice.
func ToSlice[V Vector[T, V], T Scalar](v V) []T {
	out := make([]T, v.Width())
	v.storePtr(unsafe.SliceData(out))
	return out
}

// AddAssign sets *x to x.Add(y).
func AddAssign[V Vector[T, V], T Scalar](x *V, y V) { *x = (*x).Add(y) }

// SubAssign sets *x to x.Sub(y).
func SubAssign[V Vector[T, V], T Scalar](x *V, y V) { *x = (*x).Sub(y) }

// MulAssign sets *x to x.Mul(y).
func MulAssign[V Vector[T, V], T Scalar](x *V, y V) { *x = (*x).Mul(y) }

// DivAssign sets *x to x.Div(y).
func DivAssign[V Vector[T, V], T Scalar](x *V, y V) { *x = (*x).Div(y) }

// Lanewise helpers shared by the register-shaped types.

func addLanes[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subLanes[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulLanes[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divLanes[T Scalar](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func negLanes[T Scalar](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func mapLanes[T Scalar](dst, a []T, f func(T) T) {
	for i := range dst {
		dst[i] = f(a[i])
	}
}

func fillLanes[T Scalar](dst []T, x T) {
	for i := range dst {
		dst[i] = x
	}
}

func laneOutOfRange(i, width int) string {
	return fmt.Sprintf("simd: lane %d out of range [0, %d)", i, width)
}
