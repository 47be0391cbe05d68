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

// ReadPartial loads up to Width() elements of src. Lanes past the end of
// src are zero.
//
// Example:
//
//	remaining := len(data) % width
//	if remaining > 0 {
//	    off := len(data) - remaining
//	    v := simd.ReadPartial[V](tok, data[off:])
//	    // ... process tail
//	    simd.WritePartial(v, data[off:])
//	}
func ReadPartial[V Vector[T, V], T Scalar](tok Token, src []T) V {
	v := Zeroed[V](tok)
	if len(src) >= v.Width() {
		return v.loadPtr(&src[0])
	}
	copy(AsSlice(&v), src)
	return v
}

// WritePartial stores up to Width() lanes of v into dst.
func WritePartial[V Vector[T, V], T Scalar](v V, dst []T) {
	if len(dst) >= v.Width() {
		v.storePtr(&dst[0])
		return
	}
	copy(dst, AsSlice(&v))
}

// ProcessWithTail walks size elements in steps of V's width. It calls
// fullFn(offset) for each full vector and then, if size is not a multiple
// of the width, tailFn(offset, count) once for the remaining count
// elements.
//
// Example:
//
//	simd.ProcessWithTail[simd.AVXF32x8](len(data),
//	    func(offset int) {
//	        v := simd.Read[simd.AVXF32x8](tok, data[offset:])
//	        simd.Write(v.Add(v), data[offset:])
//	    },
//	    func(offset, count int) {
//	        v := simd.ReadPartial[simd.AVXF32x8](tok, data[offset:])
//	        simd.WritePartial(v.Add(v), data[offset:])
//	    },
//	)
func ProcessWithTail[V Vector[T, V], T Scalar](size int, fullFn func(offset int), tailFn func(offset, count int)) {
	width := widthOf[V]()

	full := size / width
	for i := range full {
		fullFn(i * width)
	}
	if rem := size - full*width; rem > 0 {
		tailFn(full*width, rem)
	}
}
