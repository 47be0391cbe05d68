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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceLeftToRight(t *testing.T) {
	tok := NewUnchecked[AVX]()
	in := []float32{1e8, 1, -1e8, 1, 0.5, 0.25, 3, -2}
	v := Read[GenericF32x8](tok, in)

	var wantSum float32
	wantProd := float32(1)
	for _, x := range in {
		wantSum += x
		wantProd *= x
	}
	assert.Equal(t, wantSum, ReduceSum(v))
	assert.Equal(t, wantProd, ReduceProduct(v))

	// The same fold over every composition of the same lanes.
	assert.Equal(t, wantSum, ReduceSum(Read[AVXF32x8](tok, in)))
	assert.Equal(t, wantSum, ReduceSum(Read[SSEF32x8](tok, in)))
}

func TestSumAndProduct(t *testing.T) {
	tok := NewUnchecked[SSE]()
	vs := []SSEF64x2{
		Read[SSEF64x2](tok, []float64{1, 2}),
		Read[SSEF64x2](tok, []float64{3, 4}),
		Read[SSEF64x2](tok, []float64{5, 6}),
	}

	lanewise, ok := SumVectors(slices.Values(vs))
	require.True(t, ok)
	assert.Equal(t, []float64{9, 12}, ToSlice(lanewise))
	assert.Equal(t, 21.0, Sum(slices.Values(vs)))

	prod, ok := ProductVectors(slices.Values(vs))
	require.True(t, ok)
	assert.Equal(t, []float64{15, 48}, ToSlice(prod))
	assert.Equal(t, 720.0, Product(slices.Values(vs)))
}

func TestReductionIdentity(t *testing.T) {
	_, ok := SumVectors(slices.Values([]AVXF32x8(nil)))
	assert.False(t, ok)
	_, ok = ProductVectors(slices.Values([]AVXF32x8(nil)))
	assert.False(t, ok)

	assert.Equal(t, float32(0), Sum(slices.Values([]AVXF32x8(nil))))
	assert.Equal(t, float32(1), Product(slices.Values([]AVXF32x8(nil))))
	assert.Equal(t, float64(1), Product(slices.Values([]GenericF64x4{})))
	assert.Equal(t, complex64(0), Sum(slices.Values([]SSEC64x2(nil))))
	assert.Equal(t, complex(1, 0), Product(slices.Values([]AVXC128x2(nil))))

	// A zero vector reduces to zero; a vector of ones to one.
	tok := NewUnchecked[Generic]()
	assert.Equal(t, complex128(0), ReduceSum(Zeroed[GenericC128x4](tok)))
	assert.Equal(t, complex128(1), ReduceProduct(Splat[GenericC128x4](tok, 1)))
}
