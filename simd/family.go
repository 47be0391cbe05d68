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

// Vector families. For every token, scalar and width there is one type;
// widths narrower than the native register reuse the vectors of a weaker
// level through ShimToken, and wider ones double the native register with
// Shim2.

// Generic family.
type (
	GenericX1[T Scalar] = Vec1[T, Generic]
	GenericX2[T Scalar] = Shim2[T, GenericX1[T]]
	GenericX4[T Scalar] = Shim4[T, GenericX1[T]]
	GenericX8[T Scalar] = Shim8[T, GenericX1[T]]
)

type (
	GenericF32x1 = GenericX1[float32]
	GenericF32x2 = GenericX2[float32]
	GenericF32x4 = GenericX4[float32]
	GenericF32x8 = GenericX8[float32]

	GenericF64x1 = GenericX1[float64]
	GenericF64x2 = GenericX2[float64]
	GenericF64x4 = GenericX4[float64]
	GenericF64x8 = GenericX8[float64]

	GenericC64x1 = GenericX1[complex64]
	GenericC64x2 = GenericX2[complex64]
	GenericC64x4 = GenericX4[complex64]
	GenericC64x8 = GenericX8[complex64]

	GenericC128x1 = GenericX1[complex128]
	GenericC128x2 = GenericX2[complex128]
	GenericC128x4 = GenericX4[complex128]
	GenericC128x8 = GenericX8[complex128]
)

// SSE family.
type (
	SSEF32x1 = ShimToken[float32, GenericF32x1, SSE]
	SSEF32x2 = ShimToken[float32, GenericF32x2, SSE]
	SSEF32x4 = Vec128[float32, SSE]
	SSEF32x8 = Shim2[float32, SSEF32x4]

	SSEF64x1 = ShimToken[float64, GenericF64x1, SSE]
	SSEF64x2 = Vec128[float64, SSE]
	SSEF64x4 = Shim2[float64, SSEF64x2]
	SSEF64x8 = Shim4[float64, SSEF64x2]

	SSEC64x1 = ShimToken[complex64, GenericC64x1, SSE]
	SSEC64x2 = Vec128[complex64, SSE]
	SSEC64x4 = Shim2[complex64, SSEC64x2]
	SSEC64x8 = Shim4[complex64, SSEC64x2]

	SSEC128x1 = Vec128[complex128, SSE]
	SSEC128x2 = Shim2[complex128, SSEC128x1]
	SSEC128x4 = Shim4[complex128, SSEC128x1]
	SSEC128x8 = Shim8[complex128, SSEC128x1]
)

// NEON family.
type (
	NEONF32x1 = ShimToken[float32, GenericF32x1, NEON]
	NEONF32x2 = ShimToken[float32, GenericF32x2, NEON]
	NEONF32x4 = Vec128[float32, NEON]
	NEONF32x8 = Shim2[float32, NEONF32x4]

	NEONF64x1 = ShimToken[float64, GenericF64x1, NEON]
	NEONF64x2 = Vec128[float64, NEON]
	NEONF64x4 = Shim2[float64, NEONF64x2]
	NEONF64x8 = Shim4[float64, NEONF64x2]

	NEONC64x1 = ShimToken[complex64, GenericC64x1, NEON]
	NEONC64x2 = Vec128[complex64, NEON]
	NEONC64x4 = Shim2[complex64, NEONC64x2]
	NEONC64x8 = Shim4[complex64, NEONC64x2]

	NEONC128x1 = Vec128[complex128, NEON]
	NEONC128x2 = Shim2[complex128, NEONC128x1]
	NEONC128x4 = Shim4[complex128, NEONC128x1]
	NEONC128x8 = Shim8[complex128, NEONC128x1]
)

// Simd128 family.
type (
	Simd128F32x1 = ShimToken[float32, GenericF32x1, Simd128]
	Simd128F32x2 = ShimToken[float32, GenericF32x2, Simd128]
	Simd128F32x4 = Vec128[float32, Simd128]
	Simd128F32x8 = Shim2[float32, Simd128F32x4]

	Simd128F64x1 = ShimToken[float64, GenericF64x1, Simd128]
	Simd128F64x2 = Vec128[float64, Simd128]
	Simd128F64x4 = Shim2[float64, Simd128F64x2]
	Simd128F64x8 = Shim4[float64, Simd128F64x2]

	Simd128C64x1 = ShimToken[complex64, GenericC64x1, Simd128]
	Simd128C64x2 = Vec128[complex64, Simd128]
	Simd128C64x4 = Shim2[complex64, Simd128C64x2]
	Simd128C64x8 = Shim4[complex64, Simd128C64x2]

	Simd128C128x1 = Vec128[complex128, Simd128]
	Simd128C128x2 = Shim2[complex128, Simd128C128x1]
	Simd128C128x4 = Shim4[complex128, Simd128C128x1]
	Simd128C128x8 = Shim8[complex128, Simd128C128x1]
)

// AVX family.
type (
	AVXF32x1 = ShimToken[float32, GenericF32x1, AVX]
	AVXF32x2 = ShimToken[float32, GenericF32x2, AVX]
	AVXF32x4 = ShimToken[float32, SSEF32x4, AVX]
	AVXF32x8 = Vec256[float32, AVX]

	AVXF64x1 = ShimToken[float64, GenericF64x1, AVX]
	AVXF64x2 = ShimToken[float64, SSEF64x2, AVX]
	AVXF64x4 = Vec256[float64, AVX]
	AVXF64x8 = Shim2[float64, AVXF64x4]

	AVXC64x1 = ShimToken[complex64, GenericC64x1, AVX]
	AVXC64x2 = ShimToken[complex64, SSEC64x2, AVX]
	AVXC64x4 = Vec256[complex64, AVX]
	AVXC64x8 = Shim2[complex64, AVXC64x4]

	AVXC128x1 = ShimToken[complex128, SSEC128x1, AVX]
	AVXC128x2 = Vec256[complex128, AVX]
	AVXC128x4 = Shim2[complex128, AVXC128x2]
	AVXC128x8 = Shim4[complex128, AVXC128x2]
)
