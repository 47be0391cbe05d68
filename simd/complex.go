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

// Conj returns the lane-wise complex conjugate of v.
func Conj[V Vector[T, V], T Complexes](v V) V {
	return v.mapLanes(conj[T])
}

// MulI returns v multiplied by i, which rotates each lane by +90 degrees.
func MulI[V Vector[T, V], T Complexes](v V) V {
	return v.mapLanes(mulI[T])
}

// MulNegI returns v multiplied by -i, which rotates each lane by -90
// degrees.
func MulNegI[V Vector[T, V], T Complexes](v V) V {
	return v.mapLanes(mulNegI[T])
}

func conj[T Complexes](x T) T {
	switch c := any(x).(type) {
	case complex64:
		return any(complex(real(c), -imag(c))).(T)
	case complex128:
		return any(complex(real(c), -imag(c))).(T)
	}
	panic("unreachable")
}

func mulI[T Complexes](x T) T {
	switch c := any(x).(type) {
	case complex64:
		return any(complex(-imag(c), real(c))).(T)
	case complex128:
		return any(complex(-imag(c), real(c))).(T)
	}
	panic("unreachable")
}

func mulNegI[T Complexes](x T) T {
	switch c := any(x).(type) {
	case complex64:
		return any(complex(imag(c), -real(c))).(T)
	case complex128:
		return any(complex(imag(c), -real(c))).(T)
	}
	panic("unreachable")
}
