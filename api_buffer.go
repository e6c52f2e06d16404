// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// CreateBuffer allocates an empty buffer object. No device buffer is
// created until the first BufferData call (spec.md §3: "lazily-allocated
// device buffer").
func (c *Context) CreateBuffer() *Buffer {
	return &Buffer{}
}

// BindBuffer binds b to target (ARRAY_BUFFER or ELEMENT_ARRAY_BUFFER).
// Binding to ELEMENT_ARRAY_BUFFER sets the sticky "bound as index buffer
// at least once" flag (spec.md §3), which widens the device buffer's
// usage flags on its next (re)allocation.
func (c *Context) BindBuffer(target Enum, b *Buffer) {
	switch target {
	case ARRAY_BUFFER:
		c.state.arrayBuffer = b
	case ELEMENT_ARRAY_BUFFER:
		c.state.elementArrayBuffer = b
		if b != nil {
			b.everIndex = true
		}
	default:
		c.setError(INVALID_ENUM)
	}
}

// BufferData (re)sizes and fills b with data, per the target most
// recently bound. A buffer is re-allocated on the device whenever its
// size changes or its role changes from vertex to index-and-vertex
// (spec.md §3, §9 "lazy device resources").
func (c *Context) BufferData(target Enum, data []byte, usage Enum) {
	b := c.state.boundBuffer(target)
	if b == nil {
		c.setError(INVALID_OPERATION)
		return
	}
	if b.imported {
		c.logger.Warn("byegl: bufferData on an imported buffer is a no-op; import the data through the host device instead")
		return
	}
	b.data = append([]byte(nil), data...)
	b.dirty = true
	if err := c.ensureBufferDevice(b); err != nil {
		c.logger.Warn("byegl: bufferData: device buffer allocation failed", "error", err)
		c.setError(OUT_OF_MEMORY)
	}
}

// DeleteBuffer destroys b's device resources (if any) and flags the
// handle destroyed.
func (c *Context) DeleteBuffer(b *Buffer) {
	if b == nil || b.destroyed {
		return
	}
	if b.device != nil && !b.imported {
		c.device.DestroyBuffer(b.device)
	}
	if b.shadow != nil && b.shadow.Buffer != nil {
		c.device.DestroyBuffer(b.shadow.Buffer)
	}
	b.destroyed = true
}

// GetBufferParameter answers BUFFER_SIZE and BUFFER_USAGE
// (SPEC_FULL.md §7). BUFFER_USAGE always reports STATIC_DRAW: the usage
// hint passed to BufferData is not recorded.
func (c *Context) GetBufferParameter(target, pname Enum) any {
	b := c.state.boundBuffer(target)
	if b == nil {
		c.setError(INVALID_OPERATION)
		return nil
	}
	switch pname {
	case BUFFER_SIZE:
		return int32(len(b.data))
	case BUFFER_USAGE:
		return Enum(STATIC_DRAW)
	default:
		c.setError(INVALID_ENUM)
		return nil
	}
}

// bufferUsageFor computes the device usage flags b needs given its
// current sticky role.
func bufferUsageFor(b *Buffer) gputypes.BufferUsage {
	usage := gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	if b.everIndex {
		usage |= gputypes.BufferUsageIndex
	}
	return usage
}

// ensureBufferDevice (re)creates b's device buffer when its size changed
// or its usage needs widened, then uploads the current data.
func (c *Context) ensureBufferDevice(b *Buffer) error {
	needed := bufferUsageFor(b)
	recreate := b.device == nil || b.deviceSize != len(b.data) || b.deviceUsage&needed != needed
	if recreate {
		if b.device != nil {
			c.device.DestroyBuffer(b.device)
		}
		dev, err := c.device.CreateBuffer(&hal.BufferDescriptor{
			Label: "byegl_buffer",
			Size:  uint64(len(b.data)),
			Usage: needed,
		})
		if err != nil {
			return err
		}
		b.device = dev
		b.deviceUsage = needed
		b.deviceSize = len(b.data)
	}
	if len(b.data) > 0 {
		if err := c.queue.WriteBuffer(b.device, 0, b.data); err != nil {
			return err
		}
	}
	b.dirty = false
	return nil
}
