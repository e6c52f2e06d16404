// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Device is the graphics device the core draws through. It is satisfied by
// anything exposing the subset of github.com/gogpu/wgpu/hal.Device that the
// draw synthesizer and uniform buffer cache need: resource creation plus a
// queue to upload and submit through.
//
// Device mirrors hal.Device deliberately rather than embedding it, so a host
// can wrap a richer device (one that also does compute, offscreen text
// rendering, and so on) without that surface leaking into this core.
type Device interface {
	// CreateBuffer allocates a device buffer. Buffers backing vertex data,
	// index data, and the unified uniform struct all go through this.
	CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error)

	// DestroyBuffer releases a buffer created via CreateBuffer. A buffer
	// re-created because its declared size changed destroys the previous
	// one first (spec.md §5).
	DestroyBuffer(buf hal.Buffer)

	// CreateTexture allocates a device texture.
	CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error)

	// CreateTextureView creates a view over a previously created texture;
	// the draw synthesizer's depth-texture cache uses this to get a
	// render-attachment-compatible view for its cached depth texture.
	CreateTextureView(tex hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error)

	// DestroyTexture releases a texture created via CreateTexture.
	DestroyTexture(tex hal.Texture)

	// CreateSampler allocates a device sampler.
	CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error)

	// CreateShaderModule compiles a WGSL module produced by the translator.
	CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error)

	// CreateBindGroupLayout describes the resource bindings a pipeline
	// expects; the draw synthesizer builds one entry per uniform.
	CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error)

	// CreatePipelineLayout combines bind group layouts for a render pipeline.
	CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error)

	// CreateRenderPipeline builds the explicit-API pipeline synthesized for
	// one draw call's program, topology, depth/stencil and blend state.
	CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error)

	// CreateBindGroup binds concrete resources (buffer slices, texture
	// views, samplers) to a bind group layout.
	CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error)

	// DestroyBindGroup releases a bind group created via CreateBindGroup.
	// The draw synthesizer builds and destroys one per draw call: bind
	// groups are cheap and the resources they reference can change every
	// draw, unlike pipelines.
	DestroyBindGroup(bg hal.BindGroup)

	// CreateCommandEncoder starts recording one command buffer. The draw
	// synthesizer creates exactly one encoder per draw call.
	CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error)

	// Queue returns the device's submission queue.
	Queue() hal.Queue
}

// Provider hands over a Device (and its queue/adapter) lazily, for hosts
// that construct their device after the ByeGL context. Provider mirrors
// gpucontext.DeviceProvider's shape so a host already implementing that
// interface for another consumer satisfies this one for free.
type Provider interface {
	Device() Device
	Queue() hal.Queue
	Adapter() gpucontext.Adapter
}

// Surface provides the current color texture of the canvas a context draws
// to, and the format the host prefers for it (so the draw synthesizer can
// pick a matching color-target format without round-tripping through the
// device).
type Surface interface {
	// CurrentTexture returns the texture view to render into for the frame
	// in progress. Hosts that re-acquire a swapchain image per frame should
	// return the newly acquired view on every call.
	CurrentTexture() (hal.TextureView, error)

	// Width and Height report the surface's current pixel dimensions. The
	// draw synthesizer re-creates its cached depth texture whenever these
	// change between draws.
	Width() int
	Height() int

	// PreferredFormat is the color format CurrentTexture's view is in.
	PreferredFormat() gputypes.TextureFormat
}
