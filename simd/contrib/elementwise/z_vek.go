//go:build amd64 && !nosimd

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

package elementwise

import (
	"github.com/ajroetker/generic-simd/simd"
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// The AVX variants of Add, AddScalar, Mul and Scale are replaced by vek's
// assembly kernels when vek reports acceleration (AVX2 and FMA). They are
// element-wise, so results are identical to the generated variants. Sum is
// not replaced: vek accumulates in a different order.
func init() {
	if !vek32.Info().Acceleration {
		return
	}
	addFloat32Dispatch.Override(simd.LevelAVX, addFloat32Vek)
	addFloat64Dispatch.Override(simd.LevelAVX, addFloat64Vek)
	addScalarFloat32Dispatch.Override(simd.LevelAVX, vek32.AddNumber_Inplace)
	addScalarFloat64Dispatch.Override(simd.LevelAVX, vek.AddNumber_Inplace)
	mulFloat32Dispatch.Override(simd.LevelAVX, mulFloat32Vek)
	mulFloat64Dispatch.Override(simd.LevelAVX, mulFloat64Vek)
	scaleFloat32Dispatch.Override(simd.LevelAVX, vek32.MulNumber_Inplace)
	scaleFloat64Dispatch.Override(simd.LevelAVX, vek.MulNumber_Inplace)
}

// vek panics on slices of different lengths.

func addFloat32Vek(dst, s []float32) {
	n := min(len(dst), len(s))
	vek32.Add_Inplace(dst[:n], s[:n])
}

func addFloat64Vek(dst, s []float64) {
	n := min(len(dst), len(s))
	vek.Add_Inplace(dst[:n], s[:n])
}

func mulFloat32Vek(dst, s []float32) {
	n := min(len(dst), len(s))
	vek32.Mul_Inplace(dst[:n], s[:n])
}

func mulFloat64Vek(dst, s []float64) {
	n := min(len(dst), len(s))
	vek.Mul_Inplace(dst[:n], s[:n])
}
