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
	"iter"
	"unsafe"
)

// Align splits s into an unaligned head, a run of vectors aligned to the
// register alignment of V, and an unaligned tail, as if s were
// reinterpreted in place:
//
//	len(head) + len(body)*width + len(tail) == len(s)
//
// body aliases s, so writes through it modify s. The three parts never
// overlap. Where the split falls depends on the address of s.
func Align[V Vector[T, V], T Scalar](tok Token, s []T) (head []T, body []V, tail []T) {
	var v V
	mustImply(tok, v.Level())
	w := v.Width()

	off, ok := alignOffset(s, v.align())
	if !ok || len(s)-off < w {
		return s, nil, s[len(s):]
	}
	n := (len(s) - off) / w
	head = s[:off:off]
	body = unsafe.Slice((*V)(unsafe.Pointer(&s[off])), n)
	tail = s[off+n*w:]
	return head, body, tail
}

// alignOffset returns the number of leading elements of s before the first
// element whose address is a multiple of align. ok is false when no element
// of s can be aligned.
func alignOffset[T Scalar](s []T, align uintptr) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	size := sizeOf[T]()
	rem := uintptr(unsafe.Pointer(unsafe.SliceData(s))) % align
	if rem == 0 {
		return 0, true
	}
	gap := align - rem
	if gap%size != 0 {
		return 0, false
	}
	off := int(gap / size)
	return off, off <= len(s)
}

// Overlapping is a read-only sliding window of vectors over a slice of
// scalars. Window i holds s[i : i+width], so neighbouring windows share
// all but one element.
type Overlapping[V Vector[T, V], T Scalar] struct {
	s []T
	w int
}

// NewOverlapping returns the windows of V over s. It panics if s is shorter
// than one vector.
func NewOverlapping[V Vector[T, V], T Scalar](tok Token, s []T) Overlapping[V, T] {
	w := checkWindow[V](tok, s)
	return Overlapping[V, T]{s: s, w: w}
}

func checkWindow[V Vector[T, V], T Scalar](tok Token, s []T) int {
	var v V
	mustImply(tok, v.Level())
	w := v.Width()
	if len(s) < w {
		panic(fmt.Sprintf("simd: slice of length %d is shorter than one %d-lane vector", len(s), w))
	}
	return w
}

// Len returns the number of windows, len(s) - width + 1. The zero value
// has no windows.
func (o Overlapping[V, T]) Len() int {
	if o.w == 0 {
		return 0
	}
	return len(o.s) - o.w + 1
}

// Width returns the number of lanes per window.
func (o Overlapping[V, T]) Width() int { return o.w }

// Get returns window i. ok is false if i is out of range.
func (o Overlapping[V, T]) Get(i int) (V, bool) {
	if uint(i) >= uint(o.Len()) {
		var zero V
		return zero, false
	}
	return o.GetUnchecked(i), true
}

// GetUnchecked returns window i without a bounds check. The caller must
// guarantee 0 <= i < Len().
func (o Overlapping[V, T]) GetUnchecked(i int) V {
	var v V
	return v.loadPtr(elemPtr(o.s, i))
}

// All iterates over every window in order.
func (o Overlapping[V, T]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i := range o.Len() {
			if !yield(i, o.GetUnchecked(i)) {
				return
			}
		}
	}
}

// OverlappingMut is a sliding window of vectors over a mutable slice of
// scalars. Writes go through a Ref and reach the slice when the Ref is
// released.
//
// At most one Ref may be live per OverlappingMut: windows overlap, so two
// live Refs would commit over each other.
type OverlappingMut[V Vector[T, V], T Scalar] struct {
	Overlapping[V, T]
}

// NewOverlappingMut returns the mutable windows of V over s. It panics if s
// is shorter than one vector.
func NewOverlappingMut[V Vector[T, V], T Scalar](tok Token, s []T) OverlappingMut[V, T] {
	return OverlappingMut[V, T]{NewOverlapping[V](tok, s)}
}

// GetMut returns a handle on window i, loaded with the current contents of
// s[i : i+width]. ok is false if i is out of range.
func (o OverlappingMut[V, T]) GetMut(i int) (*Ref[V, T], bool) {
	if uint(i) >= uint(o.Len()) {
		return nil, false
	}
	return o.GetUncheckedMut(i), true
}

// GetUncheckedMut is GetMut without the bounds check. The caller must
// guarantee 0 <= i < Len().
func (o OverlappingMut[V, T]) GetUncheckedMut(i int) *Ref[V, T] {
	p := elemPtr(o.s, i)
	var v V
	return &Ref[V, T]{v: v.loadPtr(p), dst: p}
}

// Update calls fn with window i and commits the result to s when fn
// returns, including when fn panics. It reports false, without calling fn,
// if i is out of range.
func (o OverlappingMut[V, T]) Update(i int, fn func(v *V)) bool {
	ref, ok := o.GetMut(i)
	if !ok {
		return false
	}
	defer ref.Release()
	fn(ref.Ptr())
	return true
}

// Ref buffers writes to one window. Nothing reaches the slice until
// Release, which writes every lane exactly once.
type Ref[V Vector[T, V], T Scalar] struct {
	v        V
	dst      *T
	released bool
}

// Get returns the buffered vector.
func (r *Ref[V, T]) Get() V { return r.v }

// Set replaces the buffered vector.
func (r *Ref[V, T]) Set(v V) { r.v = v }

// Ptr returns the buffered vector for in-place updates such as AddAssign.
// The pointer must not be used after Release.
func (r *Ref[V, T]) Ptr() *V { return &r.v }

// Release writes the buffered vector back to the window. Calls after the
// first do nothing.
func (r *Ref[V, T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.v.storePtr(r.dst)
}

// elemPtr returns &s[i] without a bounds check.
func elemPtr[T Scalar](s []T, i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(s)), uintptr(i)*sizeOf[T]()))
}
