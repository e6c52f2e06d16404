// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"sync/atomic"

	"github.com/gogpu/byegl/device"
	"github.com/gogpu/wgpu/hal"
)

// interceptionFlag tracks whether a host's context-factory interception
// is currently installed. The original interception boundary (spec.md
// §6) replaces a browser canvas's getContext factory; this module has no
// canvas to patch, so the flag instead marks every Context built while
// interception is active as core-owned, for IsIntercepted to report.
var interceptionFlag atomic.Bool

func interceptionActive() bool { return interceptionFlag.Load() }

// Enable installs interception and returns a disable thunk (spec.md §6).
// A host wrapping this core around a legacy context factory calls Enable
// before installing its factory override, and calls the returned thunk
// when the override is removed. Contexts constructed between the two
// calls report true from IsIntercepted.
func Enable() (disable func()) {
	interceptionFlag.Store(true)
	return func() { interceptionFlag.Store(false) }
}

// IsIntercepted reports whether ctx was constructed while interception
// was active (spec.md §6).
func IsIntercepted(ctx *Context) bool {
	return ctx.intercepted
}

// GetDevice returns the graphics device ctx draws through, for callers
// that mix explicit-API work with the legacy surface (spec.md §6).
func GetDevice(ctx *Context) device.Device {
	return ctx.device
}

// ImportDeviceBuffer wraps an existing device buffer as a *Buffer so
// legacy entry points (bindBuffer, vertexAttribPointer, drawElements) can
// reference it. Per spec.md §9, imported buffers are never reallocated
// by bufferData's size-change path without the caller being warned —
// reallocating one here would silently orphan the host's original handle.
func ImportDeviceBuffer(ctx *Context, buf hal.Buffer, length int) *Buffer {
	return &Buffer{device: buf, data: make([]byte, length), imported: true}
}

// GetDeviceBuffer returns the device buffer backing b, if one has been
// allocated (lazily, on first bufferData/draw) or imported.
func GetDeviceBuffer(ctx *Context, b *Buffer) (hal.Buffer, bool) {
	return b.device, b.device != nil
}

// GetWgslSource returns the WGSL module translated for prog's last
// successful link, for inspection (spec.md §6).
func GetWgslSource(ctx *Context, prog *Program) (string, bool) {
	if prog.compiled == nil {
		return "", false
	}
	return prog.compiled.WGSL, true
}
