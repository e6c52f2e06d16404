// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package drawsynth assembles one draw call's pipeline, bind group and
// render pass and encodes it against device (spec.md §4.5). It never
// touches the legacy state machine directly: the root package reduces its
// Context state to a DrawRequest, and drawsynth turns that into exactly one
// command buffer submission.
package drawsynth

import (
	"github.com/gogpu/byegl/internal/translator"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// CullMode mirrors the three legacy GL culling outcomes: disabled, cull
// back faces, cull front faces.
type CullMode int

// Cull modes a draw can request.
const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// AttributeBinding is one enabled vertex attribute's device-side binding:
// the buffer it reads from (already remapped to the 8x4 shadow buffer for
// unorm8x3 segments), its format, offset and stride.
type AttributeBinding struct {
	Location int
	Buffer   hal.Buffer
	Offset   uint64
	Stride   uint64
	Format   gputypes.VertexFormat
}

// DepthStencilConfig is present on a DrawRequest iff DEPTH_TEST is enabled
// (spec.md §4.5).
type DepthStencilConfig struct {
	Enabled bool
	Compare gputypes.CompareFunction
}

// BlendConfig is present on a DrawRequest iff BLEND is enabled.
type BlendConfig struct {
	Enabled                 bool
	ColorSrc, ColorDst      gputypes.BlendFactor
	ColorOp                 gputypes.BlendOperation
	AlphaSrc, AlphaDst      gputypes.BlendFactor
	AlphaOp                 gputypes.BlendOperation
}

// TextureBinding resolves one translator.TextureUniform to device
// resources at draw time.
type TextureBinding struct {
	Uniform translator.TextureUniform
	View    hal.TextureView
	Sampler hal.Sampler
}

// ClearRequest is the clear-bits latch, read and cleared by the root
// package immediately before a draw (spec.md §4.5/§4.7).
type ClearRequest struct {
	Color      bool
	Depth      bool
	ColorValue gputypes.Color
	DepthValue float32
}

// IndexBinding describes an indexed draw's element buffer.
type IndexBinding struct {
	Buffer hal.Buffer
	Format gputypes.IndexFormat
	Offset uint64
}

// CompiledProgram is the subset of a linked program's compiled artifact
// the draw synthesizer needs: the WGSL module plus its binding metadata
// (spec.md §4.3's Result, threaded through unchanged).
type CompiledProgram struct {
	// Key identifies the program for shader-module and pipeline caching;
	// callers pass the program handle itself (comparable by identity per
	// spec.md §4.6).
	Key           any
	WGSL          string
	Attributes    []translator.Attribute
	UniformBuffer *translator.UniformBufferLayout
	Textures      []translator.TextureUniform
}

// DrawRequest is everything one drawArrays/drawElements call needs,
// reduced from the Context state machine (spec.md §4.5's input list).
type DrawRequest struct {
	Program      *CompiledProgram
	Attributes   []AttributeBinding
	Topology     gputypes.PrimitiveTopology
	Cull         CullMode
	DepthStencil DepthStencilConfig
	Blend        BlendConfig
	ColorWrite   gputypes.ColorWriteMask

	UniformBuffer hal.Buffer
	Textures      []TextureBinding

	ColorTarget hal.TextureView
	ColorFormat gputypes.TextureFormat
	Clear       ClearRequest

	Indexed bool
	Index   IndexBinding

	// Count is the vertex count (non-indexed) or index count (indexed).
	Count uint32
	// First is firstVertex (non-indexed) or firstIndex, the index-buffer
	// element offset passed to drawElements (indexed). Index.Offset is a
	// separate byte offset applied when the index buffer is bound.
	First uint32
}
