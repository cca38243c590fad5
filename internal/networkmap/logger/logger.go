/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package logger provides centralized logging functionality for the network map service.
package logger

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.SugaredLogger]

func init() {
	current.Store(zap.NewNop().Sugar())
}

// Init replaces the package logger.
//
// Parameters:
//   - level: one of debug, info, warn, error
//   - development: human readable console output instead of JSON
func Init(level string, development bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid logging level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	current.Store(l.Named("NetworkMap").Sugar())
	return nil
}

// Use installs l as the package logger. Tests pass an observer-backed logger.
func Use(l *zap.Logger) {
	current.Store(l.Named("NetworkMap").Sugar())
}

// Sync flushes buffered entries.
func Sync() {
	_ = current.Load().Sync()
}

// LogError logs an error with context information.
//
// Parameters:
//   - context: A description of where/when the error occurred
//   - err: The error that occurred
//   - keysAndValues: additional structured fields
func LogError(context string, err error, keysAndValues ...any) {
	if err != nil {
		current.Load().Errorw(context, append(keysAndValues, "error", err)...)
	}
}

// LogInfo logs an informational message with structured fields.
func LogInfo(message string, keysAndValues ...any) {
	current.Load().Infow(message, keysAndValues...)
}

// LogWarning logs a warning message with structured fields.
func LogWarning(message string, keysAndValues ...any) {
	current.Load().Warnw(message, keysAndValues...)
}

// LogDebug logs a debug message with structured fields.
func LogDebug(message string, keysAndValues ...any) {
	current.Load().Debugw(message, keysAndValues...)
}
