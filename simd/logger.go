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
	"log/slog"
	"sync/atomic"
)

// Logger wraps slog.Logger with dispatch-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger returns a Logger writing to handler. A nil handler discards
// everything.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.DiscardHandler
	}
	return &Logger{Logger: slog.New(handler)}
}

// WithFunction tags records with the dispatched function name.
func (l *Logger) WithFunction(name string) *Logger {
	return &Logger{Logger: l.Logger.With("func", name)}
}

// WithLevel tags records with a dispatch level.
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{Logger: l.Logger.With("target", level.String())}
}

var pkgLogger atomic.Pointer[Logger]

// SetLogger sets the logger used for detection and dispatch records. The
// package logs at debug level, except for ignored environment overrides
// which are warnings. Passing nil restores the default, which discards.
func SetLogger(l *Logger) {
	pkgLogger.Store(l)
}

func logger() *Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return discardLogger
}

var discardLogger = NewLogger(nil)
