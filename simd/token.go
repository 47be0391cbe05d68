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
	"strings"
)

// Level identifies an instruction-set extension a function can be
// specialized for.
type Level int

const (
	// LevelGeneric is the portable fallback. Every machine supports it.
	LevelGeneric Level = iota

	// LevelSSE is x86 SSE4.1 (128-bit vectors).
	LevelSSE

	// LevelAVX is x86 AVX (256-bit vectors). Implies LevelSSE.
	LevelAVX

	// LevelNEON is ARM Advanced SIMD (128-bit vectors).
	LevelNEON

	// LevelSimd128 is WebAssembly SIMD128 (128-bit vectors).
	LevelSimd128

	numLevels
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelGeneric:
		return "generic"
	case LevelSSE:
		return "sse4.1"
	case LevelAVX:
		return "avx"
	case LevelNEON:
		return "neon"
	case LevelSimd128:
		return "simd128"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name as returned by String. A few common
// aliases are accepted ("scalar", "sse", "sse41", "wasm").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic", "scalar", "none":
		return LevelGeneric, nil
	case "sse4.1", "sse41", "sse":
		return LevelSSE, nil
	case "avx":
		return LevelAVX, nil
	case "neon", "asimd":
		return LevelNEON, nil
	case "simd128", "wasm":
		return LevelSimd128, nil
	}
	return LevelGeneric, fmt.Errorf("simd: unknown level %q", s)
}

// Priority orders levels for dispatch. Higher is tried first.
func (l Level) Priority() int {
	switch l {
	case LevelAVX:
		return 30
	case LevelSSE:
		return 20
	case LevelNEON, LevelSimd128:
		return 15
	default:
		return 0
	}
}

// RegisterBytes is the width of the native vector register of the level,
// or 0 for LevelGeneric which has no vector register.
func (l Level) RegisterBytes() int {
	switch l {
	case LevelSSE, LevelNEON, LevelSimd128:
		return 16
	case LevelAVX:
		return 32
	default:
		return 0
	}
}

// parent is the level directly implied by l.
func (l Level) parent() (Level, bool) {
	switch l {
	case LevelAVX:
		return LevelSSE, true
	case LevelSSE, LevelNEON, LevelSimd128:
		return LevelGeneric, true
	default:
		return LevelGeneric, false
	}
}

// Implies reports whether support for l guarantees support for other.
// Every level implies itself and LevelGeneric.
func (l Level) Implies(other Level) bool {
	for cur := l; ; {
		if cur == other {
			return true
		}
		next, ok := cur.parent()
		if !ok {
			return false
		}
		cur = next
	}
}

// Token is a zero-sized proof that a level is usable on the running machine.
//
// Tokens can only be obtained through Detect, NewUnchecked, or by converting
// a stronger token. The interface is sealed.
type Token interface {
	Level() Level
	token()
}

// Generic is the token for the portable fallback.
type Generic struct{}

// SSE is the token for x86 SSE4.1.
type SSE struct{}

// AVX is the token for x86 AVX.
type AVX struct{}

// NEON is the token for ARM Advanced SIMD.
type NEON struct{}

// Simd128 is the token for WebAssembly SIMD128.
type Simd128 struct{}

func (Generic) Level() Level { return LevelGeneric }
func (SSE) Level() Level     { return LevelSSE }
func (AVX) Level() Level     { return LevelAVX }
func (NEON) Level() Level    { return LevelNEON }
func (Simd128) Level() Level { return LevelSimd128 }

func (Generic) token() {}
func (SSE) token()     {}
func (AVX) token()     {}
func (NEON) token()    {}
func (Simd128) token() {}

func (Generic) String() string { return LevelGeneric.String() }
func (SSE) String() string     { return LevelSSE.String() }
func (AVX) String() string     { return LevelAVX.String() }
func (NEON) String() string    { return LevelNEON.String() }
func (Simd128) String() string { return LevelSimd128.String() }

// SSE narrows an AVX token.
func (AVX) SSE() SSE { return SSE{} }

// Generic narrows an AVX token.
func (AVX) Generic() Generic { return Generic{} }

// Generic narrows an SSE token.
func (SSE) Generic() Generic { return Generic{} }

// Generic narrows a NEON token.
func (NEON) Generic() Generic { return Generic{} }

// Generic narrows a Simd128 token.
func (Simd128) Generic() Generic { return Generic{} }

// Detect probes the running machine for the level of K. The returned token
// is only meaningful when ok is true. Detect never panics; K must be one of
// the concrete token types, and the Token interface itself reports false.
func Detect[K Token]() (tok K, ok bool) {
	if any(tok) == nil {
		return tok, false
	}
	return tok, Supported(tok.Level())
}

// NewUnchecked returns a token without probing. The caller must already
// know that the level of K is supported, for example because a dispatcher
// selected this code path after detection.
func NewUnchecked[K Token]() K {
	var tok K
	return tok
}

// UncheckedToken returns the token of level as a Token interface value,
// without probing. Like NewUnchecked, the caller vouches for the level.
func UncheckedToken(level Level) Token {
	switch level {
	case LevelSSE:
		return SSE{}
	case LevelAVX:
		return AVX{}
	case LevelNEON:
		return NEON{}
	case LevelSimd128:
		return Simd128{}
	default:
		return Generic{}
	}
}

// Into converts a token to a weaker one. It panics if the level of from
// does not imply the level of To.
func Into[To, From Token](from From) To {
	var to To
	want := levelOf[To]()
	if any(from) == nil {
		panic("simd: nil token")
	}
	if !from.Level().Implies(want) {
		panic(fmt.Sprintf("simd: token %v does not imply %v", from.Level(), want))
	}
	return to
}

// mustImply panics if tok cannot stand in for want.
func mustImply(tok Token, want Level) {
	if !tok.Level().Implies(want) {
		panic(fmt.Sprintf("simd: token %v cannot construct %v vectors", tok.Level(), want))
	}
}

// levelOf returns the level of token type K. K must be a concrete token
// type.
func levelOf[K Token]() Level {
	var tok K
	if any(tok) == nil {
		panic("simd: Token interface is not a concrete token type")
	}
	return tok.Level()
}
