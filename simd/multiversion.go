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
	"cmp"
	"fmt"
	"slices"
	"sync/atomic"
)

// Version is one specialization of a multiversioned function.
type Version[F any] struct {
	// Level is the level Fn was specialized for. Fn may only run on
	// machines that support it.
	Level Level

	// Fn is the specialization.
	Fn F
}

// State is the resolution state of a Multiversion.
type State int32

const (
	// Unresolved means no specialization has been chosen yet.
	Unresolved State = iota

	// Resolving means detection is in flight. Concurrent callers may
	// resolve at the same time; they all arrive at the same choice.
	Resolving

	// Resolved means a specialization has been chosen and is cached.
	Resolved
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Unresolved:
		return "unresolved"
	case Resolving:
		return "resolving"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Multiversion holds the specializations of one function and picks the best
// one the running machine supports.
//
// Resolve detects on first use and caches the choice for the lifetime of
// the process. Static skips detection entirely: it is for callers that
// already run inside a specialization and hold its token.
//
// A Multiversion is safe for concurrent use. Override and Reset are not;
// call them before the function is shared, or from tests.
type Multiversion[F any] struct {
	name     string
	versions []Version[F]

	// static[l] is the index of the best version whose level is implied by l.
	static [numLevels]int

	state    atomic.Int32
	resolved atomic.Pointer[Version[F]]
}

// NewMultiversion returns a dispatcher over versions, tried in descending
// Level.Priority order. It panics if no version targets LevelGeneric, or if
// two versions target the same level: both are setup defects.
func NewMultiversion[F any](name string, versions ...Version[F]) *Multiversion[F] {
	m := &Multiversion[F]{name: name}
	m.setVersions(slices.Clone(versions))
	return m
}

func (m *Multiversion[F]) setVersions(versions []Version[F]) {
	slices.SortStableFunc(versions, func(a, b Version[F]) int {
		return cmp.Compare(b.Level.Priority(), a.Level.Priority())
	})
	hasGeneric := false
	for i, v := range versions {
		if slices.IndexFunc(versions[:i], func(o Version[F]) bool { return o.Level == v.Level }) >= 0 {
			panic(fmt.Sprintf("simd: %s: two versions for %v", m.name, v.Level))
		}
		if v.Level == LevelGeneric {
			hasGeneric = true
		}
	}
	if !hasGeneric {
		panic(fmt.Sprintf("simd: %s: no %v version", m.name, LevelGeneric))
	}
	m.versions = versions

	for l := range numLevels {
		m.static[l] = slices.IndexFunc(versions, func(v Version[F]) bool {
			return l.Implies(v.Level)
		})
	}
}

// Name returns the name given to NewMultiversion.
func (m *Multiversion[F]) Name() string { return m.name }

// Resolve returns the best specialization supported by the running
// machine. Detection runs on the first call only.
func (m *Multiversion[F]) Resolve() F {
	if v := m.resolved.Load(); v != nil {
		return v.Fn
	}
	return m.resolveSlow().Fn
}

func (m *Multiversion[F]) resolveSlow() *Version[F] {
	m.state.CompareAndSwap(int32(Unresolved), int32(Resolving))
	for i := range m.versions {
		v := &m.versions[i]
		if !Supported(v.Level) {
			continue
		}
		m.resolved.Store(v)
		m.state.Store(int32(Resolved))
		logger().WithFunction(m.name).WithLevel(v.Level).Debug("simd: resolved")
		return v
	}
	// Generic is always supported and always present.
	panic(fmt.Sprintf("simd: %s: no supported version", m.name))
}

// Static returns the specialization for tok's level, or for the closest
// level it implies, without detection. tok is the caller's proof that the
// level is supported.
//
// Static is for callers that hold a token but run outside a specialized
// function; it costs a table lookup and an indirect call. A specialized
// function that needs another kernel calls that kernel's generic body with
// its own token type instead, which selects the variant at compile time.
func (m *Multiversion[F]) Static(tok Token) F {
	return m.versions[m.static[tok.Level()]].Fn
}

// StaticLevel returns the level Static(tok) selects.
func (m *Multiversion[F]) StaticLevel(tok Token) Level {
	return m.versions[m.static[tok.Level()]].Level
}

// Level returns the level of the resolved specialization, resolving first
// if needed.
func (m *Multiversion[F]) Level() Level {
	if v := m.resolved.Load(); v != nil {
		return v.Level
	}
	return m.resolveSlow().Level
}

// State returns the resolution state.
func (m *Multiversion[F]) State() State {
	return State(m.state.Load())
}

// Levels returns the levels of the versions, in the order they are tried.
func (m *Multiversion[F]) Levels() []Level {
	levels := make([]Level, len(m.versions))
	for i, v := range m.versions {
		levels[i] = v.Level
	}
	return levels
}

// Versions returns a copy of the versions, in the order they are tried.
func (m *Multiversion[F]) Versions() []Version[F] {
	return slices.Clone(m.versions)
}

// Override replaces the version for level, or adds one if there is none,
// and clears any cached resolution. Packages use it from init to swap a
// generated specialization for a hand-tuned one.
func (m *Multiversion[F]) Override(level Level, fn F) {
	versions := slices.Clone(m.versions)
	if i := slices.IndexFunc(versions, func(v Version[F]) bool { return v.Level == level }); i >= 0 {
		versions[i].Fn = fn
	} else {
		versions = append(versions, Version[F]{Level: level, Fn: fn})
	}
	m.setVersions(versions)
	m.Reset()
	logger().WithFunction(m.name).WithLevel(level).Debug("simd: override")
}

// Reset forgets the cached resolution, so the next call detects again.
// Tests use it together with SetForcedFeatures.
func (m *Multiversion[F]) Reset() {
	m.resolved.Store(nil)
	m.state.Store(int32(Unresolved))
}
