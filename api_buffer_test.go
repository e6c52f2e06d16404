// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import "testing"

func TestCreateBufferIsLazy(t *testing.T) {
	c, _ := newTestContext(t)
	b := c.CreateBuffer()
	if b.device != nil {
		t.Errorf("a fresh buffer should have no device resource until bufferData")
	}
}

func TestBufferDataAllocatesDeviceBuffer(t *testing.T) {
	c, _ := newTestContext(t)
	b := c.CreateBuffer()
	c.BindBuffer(ARRAY_BUFFER, b)

	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	c.BufferData(ARRAY_BUFFER, data, STATIC_DRAW)

	if b.device == nil {
		t.Fatalf("bufferData should allocate a device buffer")
	}
	if got := c.GetError(); got != NO_ERROR {
		t.Fatalf("unexpected error after bufferData: %#x", uint32(got))
	}
	if got := c.GetBufferParameter(ARRAY_BUFFER, BUFFER_SIZE); got != int32(len(data)) {
		t.Errorf("BUFFER_SIZE = %v, want %d", got, len(data))
	}
	if got := c.GetBufferParameter(ARRAY_BUFFER, BUFFER_USAGE); got != Enum(STATIC_DRAW) {
		t.Errorf("BUFFER_USAGE = %v, want STATIC_DRAW", got)
	}
}

func TestBufferDataWithoutBindingIsAnError(t *testing.T) {
	c, _ := newTestContext(t)
	c.BufferData(ARRAY_BUFFER, []byte{1, 2, 3}, STATIC_DRAW)
	if got := c.GetError(); got != INVALID_OPERATION {
		t.Errorf("GetError() = %#x, want INVALID_OPERATION", uint32(got))
	}
}

func TestElementArrayBufferBindingStickyWidensUsage(t *testing.T) {
	c, _ := newTestContext(t)
	b := c.CreateBuffer()

	// Bind as a vertex buffer first and upload data, so the device buffer
	// exists with vertex-only usage.
	c.BindBuffer(ARRAY_BUFFER, b)
	c.BufferData(ARRAY_BUFFER, []byte{1, 2, 3, 4}, STATIC_DRAW)
	firstDevice := b.device

	// Now bind the same buffer as an index buffer: everIndex flips sticky,
	// and the next bufferData call must widen (recreate) the device buffer.
	c.BindBuffer(ELEMENT_ARRAY_BUFFER, b)
	if !b.everIndex {
		t.Fatalf("binding to ELEMENT_ARRAY_BUFFER should set the sticky everIndex flag")
	}
	c.BufferData(ELEMENT_ARRAY_BUFFER, []byte{1, 2, 3, 4}, STATIC_DRAW)
	if b.device == firstDevice {
		t.Errorf("widening usage should recreate the device buffer")
	}
}

func TestDeleteBufferFlagsBufferDestroyed(t *testing.T) {
	c, dev := newTestContext(t)
	b := c.CreateBuffer()
	c.BindBuffer(ARRAY_BUFFER, b)
	c.BufferData(ARRAY_BUFFER, []byte{1, 2, 3, 4}, STATIC_DRAW)

	c.DeleteBuffer(b)
	if !b.destroyed {
		t.Fatalf("DeleteBuffer should flag the buffer destroyed")
	}
	if IsBuffer(b) {
		t.Errorf("a destroyed buffer should no longer report IsBuffer")
	}
	_ = dev
}

func TestGetBufferParameterUnboundIsAnError(t *testing.T) {
	c, _ := newTestContext(t)
	if got := c.GetBufferParameter(ARRAY_BUFFER, BUFFER_SIZE); got != nil {
		t.Errorf("GetBufferParameter on an unbound target = %v, want nil", got)
	}
	if got := c.GetError(); got != INVALID_OPERATION {
		t.Errorf("GetError() = %#x, want INVALID_OPERATION", uint32(got))
	}
}
