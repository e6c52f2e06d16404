// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package's default logger. Accessed atomically so
// SetLogger can be called concurrently with NewContext from any
// goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the default logger byegl hands new Contexts.
// By default, byegl produces no log output. Call SetLogger to enable it.
//
// SetLogger is safe for concurrent use: it stores the new logger
// atomically. Pass nil to disable logging (restore default silent
// behavior). It only affects Contexts constructed afterward — an
// already-running Context keeps the logger it was built with, since
// state is confined to its owning context (spec.md §5) and there is no
// global registry of live contexts to retrofit.
//
// Log levels used by byegl:
//   - [slog.LevelDebug]: pipeline and uniform-buffer cache hits and misses
//   - [slog.LevelWarn]: non-fatal conditions (shadow-buffer regeneration,
//     falling back to load when a resized surface invalidates a cached
//     depth texture)
//
// Example:
//
//	// Enable info-level logging to stderr:
//	byegl.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package's current default logger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
