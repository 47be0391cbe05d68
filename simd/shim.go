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

// Shim2 doubles the width of U by storing two U values back to back. Lane
// i of the shim is lane i of the low half for i < U.Width(), and lane
// i-U.Width() of the high half otherwise.
//
// Every operation applies to each half independently, so a shim behaves
// exactly like a native vector of twice the width.
type Shim2[T Scalar, U Vector[T, U]] struct {
	lo, hi U
}

// Shim4 quadruples the width of U.
type Shim4[T Scalar, U Vector[T, U]] = Shim2[T, Shim2[T, U]]

// Shim8 octuples the width of U.
type Shim8[T Scalar, U Vector[T, U]] = Shim2[T, Shim4[T, U]]

// NewShim2 joins two vectors into one of twice the width.
func NewShim2[T Scalar, U Vector[T, U]](lo, hi U) Shim2[T, U] {
	return Shim2[T, U]{lo: lo, hi: hi}
}

// Lo returns the low half.
func (s Shim2[T, U]) Lo() U { return s.lo }

// Hi returns the high half.
func (s Shim2[T, U]) Hi() U { return s.hi }

func (s Shim2[T, U]) Width() int     { return 2 * s.lo.Width() }
func (s Shim2[T, U]) Level() Level   { return s.lo.Level() }
func (s Shim2[T, U]) align() uintptr { return s.lo.align() }

func (s Shim2[T, U]) Lane(i int) T {
	w := s.lo.Width()
	if uint(i) >= uint(2*w) {
		panic(laneOutOfRange(i, 2*w))
	}
	if i < w {
		return s.lo.Lane(i)
	}
	return s.hi.Lane(i - w)
}

func (s Shim2[T, U]) Add(o Shim2[T, U]) Shim2[T, U] {
	return Shim2[T, U]{s.lo.Add(o.lo), s.hi.Add(o.hi)}
}

func (s Shim2[T, U]) Sub(o Shim2[T, U]) Shim2[T, U] {
	return Shim2[T, U]{s.lo.Sub(o.lo), s.hi.Sub(o.hi)}
}

func (s Shim2[T, U]) Mul(o Shim2[T, U]) Shim2[T, U] {
	return Shim2[T, U]{s.lo.Mul(o.lo), s.hi.Mul(o.hi)}
}

func (s Shim2[T, U]) Div(o Shim2[T, U]) Shim2[T, U] {
	return Shim2[T, U]{s.lo.Div(o.lo), s.hi.Div(o.hi)}
}

func (s Shim2[T, U]) AddScalar(x T) Shim2[T, U] {
	return Shim2[T, U]{s.lo.AddScalar(x), s.hi.AddScalar(x)}
}

func (s Shim2[T, U]) SubScalar(x T) Shim2[T, U] {
	return Shim2[T, U]{s.lo.SubScalar(x), s.hi.SubScalar(x)}
}

func (s Shim2[T, U]) MulScalar(x T) Shim2[T, U] {
	return Shim2[T, U]{s.lo.MulScalar(x), s.hi.MulScalar(x)}
}

func (s Shim2[T, U]) DivScalar(x T) Shim2[T, U] {
	return Shim2[T, U]{s.lo.DivScalar(x), s.hi.DivScalar(x)}
}

func (s Shim2[T, U]) Neg() Shim2[T, U] {
	return Shim2[T, U]{s.lo.Neg(), s.hi.Neg()}
}

func (s Shim2[T, U]) splat(x T) Shim2[T, U] {
	return Shim2[T, U]{s.lo.splat(x), s.hi.splat(x)}
}

func (s Shim2[T, U]) loadPtr(p *T) Shim2[T, U] {
	return Shim2[T, U]{s.lo.loadPtr(p), s.hi.loadPtr(s.upper(p))}
}

func (s Shim2[T, U]) storePtr(p *T) {
	s.lo.storePtr(p)
	s.hi.storePtr(s.upper(p))
}

func (s Shim2[T, U]) mapLanes(f func(T) T) Shim2[T, U] {
	return Shim2[T, U]{s.lo.mapLanes(f), s.hi.mapLanes(f)}
}

// upper returns the address of the first lane of the high half, given the
// address p of lane 0.
func (s Shim2[T, U]) upper(p *T) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), uintptr(s.lo.Width())*sizeOf[T]()))
}
