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

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// Complexes is a constraint for complex lane types.
type Complexes interface {
	complex64 | complex128
}

// Scalar is a constraint for all types that can be stored in vector lanes.
//
// The type set is closed (no ~) because lane helpers switch on the
// concrete type.
type Scalar interface {
	Floats | Complexes
}

// Supported vector widths, in lanes.
const (
	W1 = 1
	W2 = 2
	W4 = 4
	W8 = 8
)

// sizeOf returns the size of one lane of T in bytes.
func sizeOf[T Scalar]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// NativeWidth returns the number of T lanes in the native vector of the
// given level. For example, 8 for float32 under AVX and 1 under Generic.
func NativeWidth[T Scalar](level Level) int {
	bytes := level.RegisterBytes()
	if bytes == 0 {
		return 1
	}
	return bytes / int(sizeOf[T]())
}

// alignOf returns the alignment of T in bytes.
func alignOf[T Scalar]() uintptr {
	var zero T
	return unsafe.Alignof(zero)
}
