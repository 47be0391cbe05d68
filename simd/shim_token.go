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

import "fmt"

// ShimToken presents a vector built for a weaker level under a stronger
// token K. Every operation delegates to U unchanged.
//
// It lets the family of a token reuse vectors of the levels it implies:
// under AVX, a 4-lane float32 vector is the SSE register wrapped as
// ShimToken[float32, SSEF32x4, AVX].
type ShimToken[T Scalar, U Vector[T, U], K Token] struct {
	u U
}

// Coerce wraps u so that it is presented under tok. It panics if the level
// of tok does not imply the level of u.
func Coerce[K Token, U Vector[T, U], T Scalar](tok K, u U) ShimToken[T, U, K] {
	mustImply(tok, u.Level())
	return ShimToken[T, U, K]{u: u}
}

// Underlying returns the wrapped vector.
func (s ShimToken[T, U, K]) Underlying() U { return s.u }

func (s ShimToken[T, U, K]) Width() int     { return s.u.Width() }
func (ShimToken[T, U, K]) Level() Level     { return levelOf[K]() }
func (s ShimToken[T, U, K]) align() uintptr { return s.u.align() }
func (s ShimToken[T, U, K]) Lane(i int) T   { return s.u.Lane(i) }

func (s ShimToken[T, U, K]) Add(o ShimToken[T, U, K]) ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.Add(o.u)}
}

func (s ShimToken[T, U, K]) Sub(o ShimToken[T, U, K]) ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.Sub(o.u)}
}

func (s ShimToken[T, U, K]) Mul(o ShimToken[T, U, K]) ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.Mul(o.u)}
}

func (s ShimToken[T, U, K]) Div(o ShimToken[T, U, K]) ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.Div(o.u)}
}

func (s ShimToken[T, U, K]) AddScalar(x T) ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.AddScalar(x)}
}

func (s ShimToken[T, U, K]) SubScalar(x T) ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.SubScalar(x)}
}

func (s ShimToken[T, U, K]) MulScalar(x T) ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.MulScalar(x)}
}

func (s ShimToken[T, U, K]) DivScalar(x T) ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.DivScalar(x)}
}

func (s ShimToken[T, U, K]) Neg() ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.Neg()}
}

func (s ShimToken[T, U, K]) splat(x T) ShimToken[T, U, K] {
	s.checkCoercion()
	return ShimToken[T, U, K]{s.u.splat(x)}
}

func (s ShimToken[T, U, K]) loadPtr(p *T) ShimToken[T, U, K] {
	s.checkCoercion()
	return ShimToken[T, U, K]{s.u.loadPtr(p)}
}

func (s ShimToken[T, U, K]) storePtr(p *T) { s.u.storePtr(p) }

func (s ShimToken[T, U, K]) mapLanes(f func(T) T) ShimToken[T, U, K] {
	return ShimToken[T, U, K]{s.u.mapLanes(f)}
}

// checkCoercion panics if K cannot stand in for the token of U. The family
// aliases never trip it; a hand-written instantiation such as
// ShimToken[float32, AVXF32x8, SSE] does.
func (s ShimToken[T, U, K]) checkCoercion() {
	if k := levelOf[K](); !k.Implies(s.u.Level()) {
		panic(fmt.Sprintf("simd: %v token cannot present %v vectors", k, s.u.Level()))
	}
}
