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

// ReadNative loads the native vector of tok's level from p. V must be the
// family type whose width is NativeWidth[T](tok.Level()); any other V is a
// programmer error and panics. Generic code that needs "whatever the
// register holds" uses it to pin the width it was instantiated with.
func ReadNative[V Vector[T, V], T Scalar](tok Token, p *T) V {
	var v V
	if want := NativeWidth[T](tok.Level()); v.Width() != want {
		panic(fmt.Sprintf("simd: %d-lane vector is not native for %v (%d lanes)", v.Width(), tok.Level(), want))
	}
	return ReadPtr[V](tok, p)
}

// ReadAlignedPtr loads Width() elements starting at p, which must sit on
// the register alignment of V. It panics if p is misaligned.
func ReadAlignedPtr[V Vector[T, V], T Scalar](tok Token, p *T) V {
	var v V
	if addr := uintptr(unsafe.Pointer(p)); addr%v.align() != 0 {
		panic(fmt.Sprintf("simd: address %#x is not %d-byte aligned", addr, v.align()))
	}
	return ReadPtr[V](tok, p)
}

// Advance returns p moved forward by n elements.
func Advance[T Scalar](p *T, n int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), uintptr(n)*sizeOf[T]()))
}
