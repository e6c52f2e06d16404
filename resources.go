// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"github.com/gogpu/byegl/internal/drawsynth"
	"github.com/gogpu/byegl/internal/translator"
	"github.com/gogpu/byegl/internal/typesreg"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Shader is a thin wrapper over one shader stage's source text (spec.md
// §3). Handles are comparable by identity — two *Shader values are the
// same shader iff they are the same pointer.
type Shader struct {
	stage     translator.Stage
	source    string
	destroyed bool
}

// Type reports which stage this shader compiles for.
func (s *Shader) Type() translator.Stage { return s.stage }

// Program is a linked pair of shaders plus, iff the last link succeeded,
// the translator's compiled artifact (spec.md §3).
type Program struct {
	vertex   *Shader
	fragment *Shader

	compiled *translator.Result
	infoLog  string

	attribByName  map[string]*translator.Attribute
	uniformByName map[string]*uniformEntry

	destroyed bool
}

// uniformEntry is the link between a uniform's name and either its
// non-sampler struct member or its sampler/texture binding pair — never
// both (spec.md §3's "active-uniform table" and "texture-uniform table").
type uniformEntry struct {
	member  *translator.UniformMember
	texture *translator.TextureUniform
}

// Linked reports whether the program's compiled artifact is present — the
// sole link-status signal (spec.md §7).
func (p *Program) Linked() bool { return p.compiled != nil }

// Buffer backs ARRAY_BUFFER or ELEMENT_ARRAY_BUFFER data (spec.md §3). The
// CPU-side mirror in data is retained so a later vertexAttribPointer call
// that turns on the unorm8x3 remap path, or a device buffer recreation,
// never needs to round-trip through the device to re-read the source
// bytes.
type Buffer struct {
	data        []byte
	device      hal.Buffer
	deviceUsage gputypes.BufferUsage
	deviceSize  int
	dirty       bool
	everIndex   bool
	imported    bool
	shadow      *drawsynth.ShadowBuffer
	destroyed   bool
}

// Len reports the buffer's declared byte length.
func (b *Buffer) Len() int { return len(b.data) }

// Texture holds sampler parameters plus lazily-allocated device resources
// (spec.md §3). Parameter defaults match the legacy API's own: LINEAR
// filters, LINEAR_MIPMAP_LINEAR min filter, REPEAT wrap on every axis.
type Texture struct {
	width, height int

	minFilter, magFilter     Enum
	wrapS, wrapT, wrapR      Enum
	baseLevel, maxLevel      int
	compareMode, compareFunc Enum
	lodMin, lodMax           float32

	format gputypes.TextureFormat

	device        hal.Texture
	deviceView    hal.TextureView
	deviceSampler hal.Sampler
	paramsDirty   bool

	imported  bool
	destroyed bool
}

func newTexture() *Texture {
	return &Texture{
		minFilter:   LINEAR_MIPMAP_LINEAR,
		magFilter:   LINEAR,
		wrapS:       REPEAT,
		wrapT:       REPEAT,
		wrapR:       REPEAT,
		maxLevel:    1000,
		lodMax:      1000,
		paramsDirty: true,
	}
}

// UniformLocation is the opaque handle returned by getUniformLocation: a
// program plus the exact member or texture-uniform it names (spec.md §3).
// Two locations for the same program may alias different members of the
// same struct uniform — UniformLocation stores the resolved member, not an
// index, so aliasing is free.
type UniformLocation struct {
	program *Program
	member  *translator.UniformMember
	texture *translator.TextureUniform
}

func (l *UniformLocation) isSampler() bool { return l.texture != nil }

func (l *UniformLocation) glType() typesreg.Type {
	if l.texture != nil {
		return l.texture.Type
	}
	return l.member.Type
}

// Framebuffer is the inert placeholder SPEC_FULL.md §4 describes: it can be
// created and deleted, but binding it (other than to null) and
// framebufferTexture2D both raise the "not implemented yet" hard error —
// framebuffer objects are a named Non-goal.
type Framebuffer struct {
	destroyed bool
}

// IsBuffer, IsProgram, IsShader and IsTexture reduce to identity type
// checks (spec.md §4.6): a deleted handle is still of its type, but no
// longer "is" one in the legacy sense once destroyed.
func IsBuffer(v any) bool {
	b, ok := v.(*Buffer)
	return ok && b != nil && !b.destroyed
}

func IsProgram(v any) bool {
	p, ok := v.(*Program)
	return ok && p != nil && !p.destroyed
}

func IsShader(v any) bool {
	s, ok := v.(*Shader)
	return ok && s != nil && !s.destroyed
}

func IsTexture(v any) bool {
	t, ok := v.(*Texture)
	return ok && t != nil && !t.destroyed
}
