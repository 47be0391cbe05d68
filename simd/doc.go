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

// Package simd provides fixed-width vector types guarded by CPU capability
// tokens, and a multiversion dispatcher that selects the best specialization
// of a function at runtime.
//
// A token proves that an instruction-set extension is usable:
//
//	tok, ok := simd.Detect[simd.AVX]()
//	if !ok {
//	    // fall back
//	}
//
// Vectors are built from a token and operate lane-wise:
//
//	a := simd.Splat[simd.AVXF32x8](tok, float32(1))
//	b := simd.Read[simd.AVXF32x8](tok, data)
//	simd.Write(a.Add(b), out)
//
// Function bodies are written once, generic over the vector type and token,
// and instantiated per target. A Multiversion holds the instantiations,
// detects the best supported one on first call, and caches the choice:
//
//	var addOne = simd.NewMultiversion("AddOne",
//	    simd.Version[func([]float32)]{Level: simd.LevelAVX, Fn: addOneAVX},
//	    simd.Version[func([]float32)]{Level: simd.LevelSSE, Fn: addOneSSE},
//	    simd.Version[func([]float32)]{Level: simd.LevelGeneric, Fn: addOneGeneric},
//	)
//
//	addOne.Resolve()(data)
//
// The cmd/simdgen generator emits these tables from Base* functions.
//
// Leaf vector operations are portable Go over register-shaped storage; the
// types and the dispatch structure are what carry the per-target contract.
package simd
