// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import "log/slog"

// ContextOption configures a Context during creation. GL contexts take no
// file-based configuration — everything observable through the legacy API
// is configured through that API itself (SPEC_FULL.md §2); these options
// cover only the non-spec knobs a host may want to tune.
//
// Example:
//
//	ctx := byegl.NewContext(dev, queue, surface, byegl.WithLogger(slog.Default()))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	logger                 *slog.Logger
	validateWGSL           bool
	attributeCapacityHint  int
}

// defaultOptions returns the default context options: the package's
// current default logger, WGSL validation on (SPEC_FULL.md §3's naga
// wiring), and a small capacity hint for the attribute table.
func defaultOptions() contextOptions {
	return contextOptions{
		logger:                Logger(),
		validateWGSL:          true,
		attributeCapacityHint: 8,
	}
}

// WithLogger installs a logger for one Context, overriding the package
// default (byegl.SetLogger) for this Context only.
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		if l == nil {
			l = newNopLogger()
		}
		o.logger = l
	}
}

// WithWGSLValidation toggles naga.Compile validation of every emitted
// WGSL module (SPEC_FULL.md §3). Enabled by default; disable it for
// hosts without the cgo-backed naga binding available — the translated
// WGSL is still returned, just unchecked.
func WithWGSLValidation(enabled bool) ContextOption {
	return func(o *contextOptions) {
		o.validateWGSL = enabled
	}
}

// WithAttributeCapacityHint records n (if positive) as the attribute-table
// capacity hint. The Context never reads the hint, so it neither pre-sizes
// any table nor changes any observable behavior.
func WithAttributeCapacityHint(n int) ContextOption {
	return func(o *contextOptions) {
		if n > 0 {
			o.attributeCapacityHint = n
		}
	}
}
