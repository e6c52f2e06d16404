// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package devicetest fakes the device.Device/device.Surface/device.Provider
// interfaces the core draws through, recording every call so
// internal/uniformcache and internal/drawsynth can assert against them
// without a real graphics backend. Grounded on the teacher's own
// mockHALDevice (backend/native/texture_test.go): every resource-returning
// method hands back a minimal struct satisfying hal's Destroy()+
// NativeHandle() resource marker, and every no-op destroy method is kept
// for interface completeness rather than panicking.
package devicetest

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// fakeResource satisfies every hal resource interface's Destroy()+
// NativeHandle() marker (hal.Buffer, hal.Texture, hal.Sampler, ...).
type fakeResource struct {
	destroyed bool
}

func (r *fakeResource) Destroy()                { r.destroyed = true }
func (r *fakeResource) NativeHandle() uintptr    { return 0 }
func (r *fakeResource) IsDestroyed() bool        { return r.destroyed }

// Buffer is a fake hal.Buffer that owns an in-memory byte slice, written
// to by the fake Queue's WriteBuffer.
type Buffer struct {
	fakeResource
	Label string
	Data  []byte
}

// Texture is a fake hal.Texture.
type Texture struct {
	fakeResource
	Desc    *hal.TextureDescriptor
	Written []byte
}

// TextureView is a fake hal.TextureView.
type TextureView struct {
	fakeResource
	Texture *Texture
}

// Sampler is a fake hal.Sampler.
type Sampler struct {
	fakeResource
	Desc *hal.SamplerDescriptor
}

// ShaderModule is a fake hal.ShaderModule, retaining the WGSL source for
// assertions (e.g. "the vertex shader bound at draw time is the one the
// translator emitted").
type ShaderModule struct {
	fakeResource
	Source string
}

// BindGroupLayout is a fake hal.BindGroupLayout.
type BindGroupLayout struct {
	fakeResource
	Desc *hal.BindGroupLayoutDescriptor
}

// PipelineLayout is a fake hal.PipelineLayout.
type PipelineLayout struct {
	fakeResource
	Desc *hal.PipelineLayoutDescriptor
}

// RenderPipeline is a fake hal.RenderPipeline, retaining the descriptor it
// was created from so tests can assert on topology, blend state, and so on
// without re-deriving it.
type RenderPipeline struct {
	fakeResource
	Desc *hal.RenderPipelineDescriptor
}

// BindGroup is a fake hal.BindGroup.
type BindGroup struct {
	fakeResource
	Desc *hal.BindGroupDescriptor
}

// Fence is a fake hal.Fence, always already signaled.
type Fence struct{ fakeResource }

// CommandBuffer is a fake hal.CommandBuffer recording the draw/command
// trace an encoder produced, for "exactly one command buffer per draw
// call" assertions (spec.md §4.5).
type CommandBuffer struct {
	Commands []string
}

// Device fakes device.Device (and, via Provider, device.Provider),
// recording every resource it creates.
type Device struct {
	mu sync.Mutex

	buffers  []*Buffer
	textures []*Texture
	samplers []*Sampler
	shaders  []*ShaderModule
	layouts  []*BindGroupLayout
	pipeLayouts []*PipelineLayout
	pipelines   []*RenderPipeline
	bindGroups  []*BindGroup

	queue *Queue
}

// NewDevice creates a fresh fake Device with its own fake Queue.
func NewDevice() *Device {
	d := &Device{}
	d.queue = &Queue{device: d}
	return d
}

// FakeQueue returns the fake hal.Queue paired with this device.
func (d *Device) FakeQueue() *Queue { return d.queue }

// Queue implements device.Provider.
func (d *Device) Queue() hal.Queue { return d.queue }

// Adapter implements device.Provider with a nil adapter; nothing in this
// module inspects adapter limits today.
func (d *Device) Adapter() any { return nil }

func (d *Device) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	b := &Buffer{Label: desc.Label, Data: make([]byte, desc.Size)}
	d.mu.Lock()
	d.buffers = append(d.buffers, b)
	d.mu.Unlock()
	return b, nil
}

func (d *Device) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	tx := &Texture{Desc: desc}
	d.mu.Lock()
	d.textures = append(d.textures, tx)
	d.mu.Unlock()
	return tx, nil
}

func (d *Device) CreateTextureView(tex hal.Texture, _ *hal.TextureViewDescriptor) (hal.TextureView, error) {
	t, ok := tex.(*Texture)
	if !ok {
		return nil, fmt.Errorf("devicetest: CreateTextureView: not a fake texture")
	}
	return &TextureView{Texture: t}, nil
}

func (d *Device) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	s := &Sampler{Desc: desc}
	d.mu.Lock()
	d.samplers = append(d.samplers, s)
	d.mu.Unlock()
	return s, nil
}

func (d *Device) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	m := &ShaderModule{Source: desc.Source.WGSL}
	d.mu.Lock()
	d.shaders = append(d.shaders, m)
	d.mu.Unlock()
	return m, nil
}

func (d *Device) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	l := &BindGroupLayout{Desc: desc}
	d.mu.Lock()
	d.layouts = append(d.layouts, l)
	d.mu.Unlock()
	return l, nil
}

func (d *Device) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	l := &PipelineLayout{Desc: desc}
	d.mu.Lock()
	d.pipeLayouts = append(d.pipeLayouts, l)
	d.mu.Unlock()
	return l, nil
}

func (d *Device) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	p := &RenderPipeline{Desc: desc}
	d.mu.Lock()
	d.pipelines = append(d.pipelines, p)
	d.mu.Unlock()
	return p, nil
}

func (d *Device) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	g := &BindGroup{Desc: desc}
	d.mu.Lock()
	d.bindGroups = append(d.bindGroups, g)
	d.mu.Unlock()
	return g, nil
}

func (d *Device) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	return &Encoder{device: d, label: desc.Label}, nil
}

func (d *Device) CreateFence() (hal.Fence, error) { return &Fence{}, nil }
func (d *Device) DestroyFence(hal.Fence)          {}
func (d *Device) Wait(hal.Fence, uint64, time.Duration) (bool, error) { return true, nil }
func (d *Device) Destroy()                                            {}

func (d *Device) DestroyBuffer(b hal.Buffer)                   { destroyOne(b) }
func (d *Device) DestroyTexture(t hal.Texture)                 { destroyOne(t) }
func (d *Device) DestroySampler(s hal.Sampler)                 { destroyOne(s) }
func (d *Device) DestroyShaderModule(m hal.ShaderModule)        { destroyOne(m) }
func (d *Device) DestroyBindGroupLayout(l hal.BindGroupLayout)  { destroyOne(l) }
func (d *Device) DestroyPipelineLayout(l hal.PipelineLayout)    { destroyOne(l) }
func (d *Device) DestroyRenderPipeline(p hal.RenderPipeline)    { destroyOne(p) }
func (d *Device) DestroyBindGroup(g hal.BindGroup)              { destroyOne(g) }
func (d *Device) FreeCommandBuffer(hal.CommandBuffer)           {}

type destroyer interface{ Destroy() }

func destroyOne(v destroyer) { v.Destroy() }

// WrittenBuffer returns the raw bytes of the index-th buffer this device
// has created (creation order, not a binding index — callers that create
// exactly one uniform buffer per test can pass 0).
func (d *Device) WrittenBuffer(index int) ([]byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.buffers) {
		return nil, false
	}
	return d.buffers[index].Data, true
}

// Pipelines returns every render pipeline descriptor this device has been
// asked to create, for drawsynth assertions.
func (d *Device) Pipelines() []*RenderPipeline {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*RenderPipeline(nil), d.pipelines...)
}

// Queue fakes hal.Queue: WriteBuffer copies into a fake Buffer's backing
// slice, Submit records the command buffers it was given, ReadBuffer hands
// back whatever bytes a previous WriteBuffer put there.
type Queue struct {
	mu        sync.Mutex
	device    *Device
	submitted [][]hal.CommandBuffer
}

func (q *Queue) WriteBuffer(buf hal.Buffer, offset uint64, data []byte) error {
	b, ok := buf.(*Buffer)
	if !ok {
		return fmt.Errorf("devicetest: WriteBuffer: not a fake buffer")
	}
	if int(offset)+len(data) > len(b.Data) {
		return fmt.Errorf("devicetest: WriteBuffer: write [%d:%d] exceeds buffer size %d", offset, int(offset)+len(data), len(b.Data))
	}
	copy(b.Data[offset:], data)
	return nil
}

func (q *Queue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, _ *hal.ImageDataLayout, _ *hal.Extent3D) error {
	t, ok := dst.Texture.(*Texture)
	if !ok {
		return fmt.Errorf("devicetest: WriteTexture: not a fake texture")
	}
	t.Written = append([]byte(nil), data...)
	return nil
}

func (q *Queue) ReadBuffer(buf hal.Buffer, offset uint64, out []byte) error {
	b, ok := buf.(*Buffer)
	if !ok {
		return fmt.Errorf("devicetest: ReadBuffer: not a fake buffer")
	}
	copy(out, b.Data[offset:])
	return nil
}

func (q *Queue) Submit(buffers []hal.CommandBuffer, _ hal.Fence, _ uint64) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.submitted = append(q.submitted, buffers)
	return nil
}

// SubmitCount reports how many times Submit was called, the check behind
// spec.md §4.5's "exactly one command buffer per draw call" invariant.
func (q *Queue) SubmitCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.submitted)
}

// Encoder fakes hal.CommandEncoder, recording the render-pass/copy/barrier
// sequence a draw call encodes.
type Encoder struct {
	device  *Device
	label   string
	trace   []string
	discard bool
}

func (e *Encoder) BeginEncoding(label string) error {
	e.trace = append(e.trace, "begin:"+label)
	return nil
}

func (e *Encoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	e.trace = append(e.trace, "render_pass:"+desc.Label)
	return &RenderPass{encoder: e, desc: desc}
}

func (e *Encoder) TransitionTextures(barriers []hal.TextureBarrier) {
	e.trace = append(e.trace, fmt.Sprintf("transition:%d", len(barriers)))
}

func (e *Encoder) CopyTextureToBuffer(hal.Texture, hal.Buffer, []hal.BufferTextureCopy) {
	e.trace = append(e.trace, "copy_texture_to_buffer")
}

func (e *Encoder) CopyBufferToBuffer(hal.Buffer, hal.Buffer, []hal.BufferCopy) {
	e.trace = append(e.trace, "copy_buffer_to_buffer")
}

func (e *Encoder) DiscardEncoding() { e.discard = true }

func (e *Encoder) EndEncoding() (hal.CommandBuffer, error) {
	e.trace = append(e.trace, "end")
	return &CommandBuffer{Commands: append([]string(nil), e.trace...)}, nil
}

// Trace returns the ordered sequence of high-level operations this encoder
// recorded, for drawsynth's render-pass-assembly tests.
func (e *Encoder) Trace() []string { return e.trace }

// RenderPass fakes hal.RenderPassEncoder, recording every draw command.
type RenderPass struct {
	encoder *Encoder
	desc    *hal.RenderPassDescriptor

	Pipeline     *RenderPipeline
	BindGroups   map[uint32]*BindGroup
	VertexBuffers map[uint32]*Buffer
	IndexBuffer  *Buffer
	IndexFormat  gputypes.IndexFormat
	Draws        []DrawCall
}

// DrawCall records one Draw/DrawIndexed invocation.
type DrawCall struct {
	Indexed                                  bool
	VertexOrIndexCount, InstanceCount         uint32
	FirstVertexOrIndex                        uint32
	BaseVertex                                int32
	FirstInstance                             uint32
}

func (p *RenderPass) SetPipeline(pipeline hal.RenderPipeline) {
	p.Pipeline, _ = pipeline.(*RenderPipeline)
}

func (p *RenderPass) SetBindGroup(index uint32, group hal.BindGroup, _ []uint32) {
	if p.BindGroups == nil {
		p.BindGroups = map[uint32]*BindGroup{}
	}
	p.BindGroups[index], _ = group.(*BindGroup)
}

func (p *RenderPass) SetVertexBuffer(slot uint32, buf hal.Buffer, _ uint64) {
	if p.VertexBuffers == nil {
		p.VertexBuffers = map[uint32]*Buffer{}
	}
	p.VertexBuffers[slot], _ = buf.(*Buffer)
}

func (p *RenderPass) SetIndexBuffer(buf hal.Buffer, format gputypes.IndexFormat, _ uint64) {
	p.IndexBuffer, _ = buf.(*Buffer)
	p.IndexFormat = format
}

func (p *RenderPass) SetViewport(_, _, _, _, _, _ float32) {}
func (p *RenderPass) SetScissorRect(_, _, _, _ uint32)     {}
func (p *RenderPass) SetBlendConstant(gputypes.Color)      {}
func (p *RenderPass) SetStencilReference(uint32)           {}

func (p *RenderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.Draws = append(p.Draws, DrawCall{
		VertexOrIndexCount: vertexCount,
		InstanceCount:      instanceCount,
		FirstVertexOrIndex: firstVertex,
		FirstInstance:      firstInstance,
	})
}

func (p *RenderPass) DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32) {
	p.Draws = append(p.Draws, DrawCall{
		Indexed:             true,
		VertexOrIndexCount:  indexCount,
		InstanceCount:       instanceCount,
		FirstVertexOrIndex:  firstIndex,
		BaseVertex:          baseVertex,
		FirstInstance:       firstInstance,
	})
}

func (p *RenderPass) DrawIndirect(hal.Buffer, uint64)              {}
func (p *RenderPass) DrawIndexedIndirect(hal.Buffer, uint64)        {}

func (p *RenderPass) End() {
	p.encoder.trace = append(p.encoder.trace, "end_render_pass")
}

// Surface fakes device.Surface: a fixed-size color target whose current
// texture view never changes between draws. Grounded on the teacher's
// surface.ImageSurface (a self-contained fake host surface implementation).
type Surface struct {
	width, height int
	format        gputypes.TextureFormat
	view          hal.TextureView
}

// NewSurface creates a fake surface of the given size, defaulting to
// gputypes.TextureFormatRGBA8Unorm.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		format: gputypes.TextureFormatRGBA8Unorm,
		view:   &TextureView{Texture: &Texture{}},
	}
}

func (s *Surface) CurrentTexture() (hal.TextureView, error) { return s.view, nil }
func (s *Surface) Width() int                                { return s.width }
func (s *Surface) Height() int                               { return s.height }
func (s *Surface) PreferredFormat() gputypes.TextureFormat   { return s.format }
