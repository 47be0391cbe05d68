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

// MaxAlign is the largest register alignment of any level, in bytes.
const MaxAlign = 32

// AllocateAligned returns a zeroed slice of count elements whose first
// element sits at an address divisible by align. align must be a power of
// two no smaller than the alignment of T. It panics if count <= 0.
//
// The slice is cut from a slightly larger byte allocation.
func AllocateAligned[T Scalar](count, align int) []T {
	if count <= 0 {
		panic(fmt.Sprintf("simd: aligned allocation of %d elements", count))
	}
	if align <= 0 || align&(align-1) != 0 || uintptr(align) < alignOf[T]() {
		panic(fmt.Sprintf("simd: invalid alignment %d", align))
	}
	size := int(sizeOf[T]())
	buf := make([]byte, count*size+align)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := (uintptr(align) - addr&uintptr(align-1)) & uintptr(align-1)
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[off])), count)
}

// AllocateMaxAligned returns a zeroed slice of count elements aligned for
// every vector type of every level.
func AllocateMaxAligned[T Scalar](count int) []T {
	return AllocateAligned[T](count, MaxAlign)
}
