// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawsynth

import (
	"fmt"

	"github.com/gogpu/byegl/device"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// ShadowBuffer holds an 8x4 remap of a source buffer's 8x3 normalized
// unsigned-byte triplets (spec.md §9): a device buffer whose contents are
// regenerated whenever the source buffer mutates.
type ShadowBuffer struct {
	Buffer     hal.Buffer
	sourceHash uint64
	elements   int
}

// RemapUnorm8x3 copies every RGB byte triplet from src into an RGBA buffer
// with the alpha byte zeroed, creating or growing dst's device buffer as
// needed. src is raw client/device-side bytes already read back by the
// caller (the legacy bufferData call already has them in host memory).
func RemapUnorm8x3(dev device.Device, dst *ShadowBuffer, src []byte, offset, stride, count int) error {
	if stride <= 0 {
		stride = 3
	}
	out := make([]byte, count*4)
	for i := 0; i < count; i++ {
		base := offset + i*stride
		if base+3 > len(src) {
			return fmt.Errorf("drawsynth: unorm8x3 remap: source buffer too small for element %d", i)
		}
		out[i*4+0] = src[base+0]
		out[i*4+1] = src[base+1]
		out[i*4+2] = src[base+2]
		out[i*4+3] = 0
	}

	if dst.Buffer == nil || dst.elements < count {
		if dst.Buffer != nil {
			dev.DestroyBuffer(dst.Buffer)
		}
		buf, err := dev.CreateBuffer(&hal.BufferDescriptor{
			Label: "byegl_unorm8x3_shadow",
			Size:  uint64(len(out)),
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("drawsynth: create shadow buffer: %w", err)
		}
		dst.Buffer = buf
		dst.elements = count
	}

	if err := dev.Queue().WriteBuffer(dst.Buffer, 0, out); err != nil {
		return fmt.Errorf("drawsynth: write shadow buffer: %w", err)
	}
	dst.sourceHash = hashBytes(src[offset : offset+count*stride])
	return nil
}

// NeedsRemap reports whether src's relevant byte range has changed since
// dst was last regenerated, per spec.md §9's "regenerated when the source
// buffer mutates" rule.
func NeedsRemap(dst *ShadowBuffer, src []byte, offset, stride, count int) bool {
	if dst.Buffer == nil {
		return true
	}
	return dst.sourceHash != hashBytes(src[offset:offset+count*stride])
}

func hashBytes(b []byte) uint64 {
	var h uint64 = 1469598103934665603
	for _, c := range b {
		h ^= uint64(c)
		h *= 1099511628211
	}
	return h
}
