// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawsynth

import (
	"fmt"

	"github.com/gogpu/byegl/device"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// buildBindGroup resolves every uniform in declaration order to a texture
// view, a sampler, or the cached uniform-struct buffer slice, producing one
// GPUBindGroupEntry per binding (spec.md §4.5).
func buildBindGroup(dev device.Device, layout hal.BindGroupLayout, req *DrawRequest) (hal.BindGroup, error) {
	var entries []gputypes.BindGroupEntry
	if req.Program.UniformBuffer != nil {
		if req.UniformBuffer == nil {
			return nil, fmt.Errorf("drawsynth: program declares uniforms but no uniform buffer is bound")
		}
		entries = append(entries, gputypes.BindGroupEntry{
			Binding: uint32(req.Program.UniformBuffer.Binding),
			Resource: gputypes.BufferBinding{
				Buffer: req.UniformBuffer.NativeHandle(),
				Offset: 0,
				Size:   uint64(req.Program.UniformBuffer.Size),
			},
		})
	}
	for _, tb := range req.Textures {
		entries = append(entries, gputypes.BindGroupEntry{
			Binding:  uint32(tb.Uniform.TextureBinding),
			Resource: gputypes.TextureViewBinding{TextureView: tb.View.NativeHandle()},
		})
		entries = append(entries, gputypes.BindGroupEntry{
			Binding:  uint32(tb.Uniform.SamplerBinding),
			Resource: gputypes.SamplerBinding{Sampler: tb.Sampler.NativeHandle()},
		})
	}

	return dev.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   "byegl_bind_group",
		Layout:  layout,
		Entries: entries,
	})
}
