// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package byegl emulates the legacy OpenGL ES 2.0/3.0 (WebGL 1/2) API on
// top of an explicit, WebGPU-shaped graphics device. It translates GLSL
// ES shader pairs to WGSL (internal/translator) and, on every draw call,
// synthesizes the equivalent render pipeline, bind group and command
// buffer (internal/drawsynth). See spec.md and SPEC_FULL.md for the full
// design.
package byegl

import (
	"log/slog"

	"github.com/gogpu/byegl/device"
	"github.com/gogpu/byegl/internal/drawsynth"
	"github.com/gogpu/byegl/internal/uniformcache"
	"github.com/gogpu/wgpu/hal"
)

// Context is one legacy-GL context bound to a host-supplied device and
// surface (spec.md §1, §3). A Context is a process-local singleton per
// canvas: every entry point runs to completion on the caller's thread,
// and a Context's state is never shared across goroutines (spec.md §5).
type Context struct {
	device  device.Device
	queue   hal.Queue
	surface device.Surface
	logger  *slog.Logger

	validateWGSL bool

	state    *State
	uniforms *uniformcache.Cache
	synth    *drawsynth.Synthesizer

	intercepted bool
}

// NewContext creates a Context drawing through dev and queue, targeting
// surf's current color texture on every draw (spec.md §1: the core
// "consumes two interfaces from the host", never creates its own
// instance/adapter/device).
func NewContext(dev device.Device, queue hal.Queue, surf device.Surface, opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	uniforms := uniformcache.New(dev, queue)
	synth := drawsynth.NewSynthesizer()
	uniforms.SetLogger(o.logger)
	synth.SetLogger(o.logger)
	return &Context{
		device:       dev,
		queue:        queue,
		surface:      surf,
		logger:       o.logger,
		validateWGSL: o.validateWGSL,
		state:        newState(),
		uniforms:     uniforms,
		synth:        synth,
		intercepted:  interceptionActive(),
	}
}

// NewContextFromProvider creates a Context from a device.Provider, for
// hosts that hand over their device lazily (SPEC_FULL.md §3's
// gpucontext.DeviceProvider parity).
func NewContextFromProvider(p device.Provider, surf device.Surface, opts ...ContextOption) *Context {
	return NewContext(p.Device(), p.Queue(), surf, opts...)
}
