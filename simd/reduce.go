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

import "iter"

// ReduceSum adds the lanes of v from left to right, starting at 0.
func ReduceSum[V Vector[T, V], T Scalar](v V) T {
	var sum T
	for i := range v.Width() {
		sum += v.Lane(i)
	}
	return sum
}

// ReduceProduct multiplies the lanes of v from left to right, starting at 1.
func ReduceProduct[V Vector[T, V], T Scalar](v V) T {
	prod := T(1)
	for i := range v.Width() {
		prod *= v.Lane(i)
	}
	return prod
}

// SumVectors adds the vectors of seq lane-wise. ok is false when seq is
// empty.
func SumVectors[V Vector[T, V], T Scalar](seq iter.Seq[V]) (sum V, ok bool) {
	for v := range seq {
		if !ok {
			sum, ok = v, true
			continue
		}
		sum = sum.Add(v)
	}
	return sum, ok
}

// ProductVectors multiplies the vectors of seq lane-wise. ok is false when
// seq is empty.
func ProductVectors[V Vector[T, V], T Scalar](seq iter.Seq[V]) (prod V, ok bool) {
	for v := range seq {
		if !ok {
			prod, ok = v, true
			continue
		}
		prod = prod.Mul(v)
	}
	return prod, ok
}

// Sum adds every lane of every vector in seq. An empty seq sums to 0.
func Sum[V Vector[T, V], T Scalar](seq iter.Seq[V]) T {
	sum, ok := SumVectors(seq)
	if !ok {
		return 0
	}
	return ReduceSum(sum)
}

// Product multiplies every lane of every vector in seq. An empty seq
// yields 1.
func Product[V Vector[T, V], T Scalar](seq iter.Seq[V]) T {
	prod, ok := ProductVectors(seq)
	if !ok {
		return 1
	}
	return ReduceProduct(prod)
}
