// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawsynth

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"log/slog"
	"sync"

	"github.com/gogpu/byegl/device"
	"github.com/gogpu/byegl/internal/typesreg"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

const depthFormat = gputypes.TextureFormatDepth24PlusStencil8

// pipelineEntry bundles the four resources one cached pipeline owns: the
// compiled shader module, its bind group layout, its pipeline layout, and
// the render pipeline itself. All four are recreated together because the
// bind group layout's
// shape is derived from the same program the shader module compiles.
type pipelineEntry struct {
	shader    hal.ShaderModule
	bgLayout  hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline  hal.RenderPipeline
}

// PipelineCache caches synthesized render pipelines by a hash of every
// field that affects the pipeline descriptor, grounded on the teacher's
// PipelineCacheCore (backend/native/pipeline_cache_core.go): an FNV-1a
// descriptor hash plus double-checked RWMutex locking, map instead of
// sync.Map to keep hit/miss accounting simple.
type PipelineCache struct {
	mu      sync.RWMutex
	entries map[uint64]*pipelineEntry
	hits    uint64
	misses  uint64
	logger  *slog.Logger
}

// NewPipelineCache creates an empty cache. It logs nothing until SetLogger
// installs a logger (SPEC_FULL.md §2).
func NewPipelineCache() *PipelineCache {
	return &PipelineCache{entries: make(map[uint64]*pipelineEntry), logger: slog.New(nopHandler{})}
}

// SetLogger installs l as the cache's diagnostics logger. Passing nil
// restores the silent default.
func (c *PipelineCache) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

// GetOrCreate returns the cached pipeline entry for req, creating it (and
// its shader module and bind group layout) on first use.
func (c *PipelineCache) GetOrCreate(dev device.Device, req *DrawRequest) (*pipelineEntry, error) {
	key := hashDrawRequest(req)

	c.mu.RLock()
	if e, ok := c.entries[key]; ok {
		c.hits++
		c.logger.Debug("drawsynth: pipeline cache hit", "key", key, "hits", c.hits, "misses", c.misses)
		c.mu.RUnlock()
		return e, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		c.hits++
		c.logger.Debug("drawsynth: pipeline cache hit", "key", key, "hits", c.hits, "misses", c.misses)
		return e, nil
	}

	e, err := createPipelineEntry(dev, req)
	if err != nil {
		return nil, err
	}
	c.entries[key] = e
	c.misses++
	c.logger.Debug("drawsynth: pipeline cache miss, created new pipeline", "key", key, "hits", c.hits, "misses", c.misses)
	return e, nil
}

func createPipelineEntry(dev device.Device, req *DrawRequest) (*pipelineEntry, error) {
	shader, err := dev.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "byegl_program_shader",
		Source: hal.ShaderSource{WGSL: req.Program.WGSL},
	})
	if err != nil {
		return nil, fmt.Errorf("drawsynth: compile program shader: %w", err)
	}

	bgLayout, err := dev.CreateBindGroupLayout(bindGroupLayoutDescriptor(req.Program))
	if err != nil {
		return nil, fmt.Errorf("drawsynth: create bind group layout: %w", err)
	}

	pipeLayout, err := dev.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "byegl_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{bgLayout},
	})
	if err != nil {
		return nil, fmt.Errorf("drawsynth: create pipeline layout: %w", err)
	}

	pipeline, err := dev.CreateRenderPipeline(renderPipelineDescriptor(req, shader, pipeLayout))
	if err != nil {
		return nil, fmt.Errorf("drawsynth: create render pipeline: %w", err)
	}

	return &pipelineEntry{shader: shader, bgLayout: bgLayout, pipeLayout: pipeLayout, pipeline: pipeline}, nil
}

// bindGroupLayoutDescriptor builds one entry per uniform in declaration
// order: samplers as filtering samplers, textures as float (or uint for
// usampler2D) sample type, buffers as uniform; every binding is visible to
// both stages (spec.md §4.5).
func bindGroupLayoutDescriptor(p *CompiledProgram) *hal.BindGroupLayoutDescriptor {
	var entries []gputypes.BindGroupLayoutEntry
	if p.UniformBuffer != nil {
		entries = append(entries, gputypes.BindGroupLayoutEntry{
			Binding:    uint32(p.UniformBuffer.Binding),
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		})
	}
	for _, tex := range p.Textures {
		sampleType := gputypes.TextureSampleTypeFloat
		if tex.Type.Kind == typesreg.KindUSampler2D {
			sampleType = gputypes.TextureSampleTypeUint
		}
		entries = append(entries, gputypes.BindGroupLayoutEntry{
			Binding:    uint32(tex.TextureBinding),
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    sampleType,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		})
		entries = append(entries, gputypes.BindGroupLayoutEntry{
			Binding:    uint32(tex.SamplerBinding),
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		})
	}
	return &hal.BindGroupLayoutDescriptor{Label: "byegl_bind_group_layout", Entries: entries}
}

// vertexBufferLayouts builds one GPUVertexBufferLayout per enabled
// attribute at its own buffer index — attributes are never interleaved
// across buffers (spec.md §4.5).
func vertexBufferLayouts(attrs []AttributeBinding) []gputypes.VertexBufferLayout {
	layouts := make([]gputypes.VertexBufferLayout, len(attrs))
	for i, a := range attrs {
		layouts[i] = gputypes.VertexBufferLayout{
			ArrayStride: a.Stride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: a.Format, Offset: 0, ShaderLocation: uint32(a.Location)},
			},
		}
	}
	return layouts
}

func cullModeOf(c CullMode) gputypes.CullMode {
	switch c {
	case CullBack:
		return gputypes.CullModeBack
	case CullFront:
		return gputypes.CullModeFront
	default:
		return gputypes.CullModeNone
	}
}

func renderPipelineDescriptor(req *DrawRequest, shader hal.ShaderModule, layout hal.PipelineLayout) *hal.RenderPipelineDescriptor {
	target := gputypes.ColorTargetState{
		Format:    req.ColorFormat,
		WriteMask: req.ColorWrite,
	}
	if req.Blend.Enabled {
		target.Blend = &gputypes.BlendState{
			Color: gputypes.BlendComponent{SrcFactor: req.Blend.ColorSrc, DstFactor: req.Blend.ColorDst, Operation: req.Blend.ColorOp},
			Alpha: gputypes.BlendComponent{SrcFactor: req.Blend.AlphaSrc, DstFactor: req.Blend.AlphaDst, Operation: req.Blend.AlphaOp},
		}
	}

	desc := &hal.RenderPipelineDescriptor{
		Label:  "byegl_render_pipeline",
		Layout: layout,
		Vertex: hal.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    vertexBufferLayouts(req.Attributes),
		},
		Fragment: &hal.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets:    []gputypes.ColorTargetState{target},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: req.Topology,
			CullMode: cullModeOf(req.Cull),
		},
		Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
	}

	if req.DepthStencil.Enabled {
		desc.DepthStencil = &hal.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      req.DepthStencil.Compare,
			StencilFront:      hal.StencilFaceState{Compare: gputypes.CompareFunctionAlways, FailOp: hal.StencilOperationKeep, DepthFailOp: hal.StencilOperationKeep, PassOp: hal.StencilOperationKeep},
			StencilBack:       hal.StencilFaceState{Compare: gputypes.CompareFunctionAlways, FailOp: hal.StencilOperationKeep, DepthFailOp: hal.StencilOperationKeep, PassOp: hal.StencilOperationKeep},
			StencilReadMask:   0xFF,
			StencilWriteMask:  0xFF,
		}
	}
	return desc
}

func hashDrawRequest(req *DrawRequest) uint64 {
	h := fnv.New64a()
	writeString(h, fmt.Sprintf("%v", req.Program.Key))
	writeString(h, req.Program.WGSL)
	writeUint32(h, uint32(len(req.Attributes)))
	for _, a := range req.Attributes {
		writeUint64(h, a.Stride)
		writeUint32(h, uint32(a.Format))
		writeUint32(h, uint32(a.Location))
	}
	writeUint32(h, uint32(req.Topology))
	writeUint32(h, uint32(req.Cull))
	writeUint32(h, uint32(req.ColorFormat))
	writeBool(h, req.DepthStencil.Enabled)
	writeUint32(h, uint32(req.DepthStencil.Compare))
	writeBool(h, req.Blend.Enabled)
	if req.Blend.Enabled {
		writeUint32(h, uint32(req.Blend.ColorSrc))
		writeUint32(h, uint32(req.Blend.ColorDst))
		writeUint32(h, uint32(req.Blend.ColorOp))
		writeUint32(h, uint32(req.Blend.AlphaSrc))
		writeUint32(h, uint32(req.Blend.AlphaDst))
		writeUint32(h, uint32(req.Blend.AlphaOp))
	}
	writeUint32(h, uint32(req.ColorWrite))
	return h.Sum64()
}

func writeUint64(h hash.Hash64, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	h.Write(b[:])
}

func writeUint32(h hash.Hash64, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	h.Write(b[:])
}

func writeBool(h hash.Hash64, v bool) {
	if v {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
}

func writeString(h hash.Hash64, s string) {
	h.Write([]byte(s))
}
