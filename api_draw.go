// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"fmt"

	"github.com/gogpu/byegl/device"
	"github.com/gogpu/byegl/internal/drawsynth"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// EnableVertexAttribArray turns on a vertex-attribute-pointer slot, making
// it eligible for binding on the next draw (spec.md §4.7).
func (c *Context) EnableVertexAttribArray(index int) {
	if index < 0 || index >= len(c.state.vertexAttribs) {
		c.setError(INVALID_VALUE)
		return
	}
	c.state.vertexAttribs[index].enabled = true
}

// DisableVertexAttribArray turns off a vertex-attribute-pointer slot.
func (c *Context) DisableVertexAttribArray(index int) {
	if index < 0 || index >= len(c.state.vertexAttribs) {
		c.setError(INVALID_VALUE)
		return
	}
	c.state.vertexAttribs[index].enabled = false
}

// VertexAttribPointer records a vertex attribute's source layout, read from
// ARRAY_BUFFER as currently bound (spec.md §4.7, §6). It does not touch the
// device: the remap for unorm8x3 segments and the final device binding are
// both resolved lazily, at draw time.
func (c *Context) VertexAttribPointer(index int, size int, typ Enum, normalized bool, stride, offset int) {
	if index < 0 || index >= len(c.state.vertexAttribs) {
		c.setError(INVALID_VALUE)
		return
	}
	b := c.state.arrayBuffer
	if b == nil {
		c.setError(INVALID_OPERATION)
		return
	}
	c.state.vertexAttribs[index] = vertexAttribState{
		enabled:    c.state.vertexAttribs[index].enabled,
		buffer:     b,
		size:       size,
		typ:        typ,
		normalized: normalized,
		stride:     stride,
		offset:     offset,
	}
}

// GetVertexAttrib answers the per-attribute pnames spec.md §6 and
// SPEC_FULL.md §7 enumerate.
func (c *Context) GetVertexAttrib(index int, pname Enum) any {
	if index < 0 || index >= len(c.state.vertexAttribs) {
		c.setError(INVALID_VALUE)
		return nil
	}
	a := c.state.vertexAttribs[index]
	switch pname {
	case VERTEX_ATTRIB_ARRAY_ENABLED:
		return a.enabled
	case VERTEX_ATTRIB_ARRAY_SIZE:
		return int32(a.size)
	case VERTEX_ATTRIB_ARRAY_STRIDE:
		return int32(a.stride)
	case VERTEX_ATTRIB_ARRAY_TYPE:
		return a.typ
	case VERTEX_ATTRIB_ARRAY_NORMALIZED:
		return a.normalized
	case VERTEX_ATTRIB_ARRAY_BUFFER_BINDING:
		return a.buffer
	default:
		c.setError(INVALID_ENUM)
		return nil
	}
}

// GetVertexAttribOffset returns the byte offset recorded by
// vertexAttribPointer for index (spec.md §6).
func (c *Context) GetVertexAttribOffset(index int, pname Enum) int {
	if index < 0 || index >= len(c.state.vertexAttribs) {
		return 0
	}
	return c.state.vertexAttribs[index].offset
}

// cullMode reduces CULL_FACE's enabled flag and cullFaceMode to the three
// outcomes the draw synthesizer understands.
func (s *State) cullMode() drawsynth.CullMode {
	if !s.capabilities[CULL_FACE] {
		return drawsynth.CullNone
	}
	switch s.cullFaceMode {
	case FRONT:
		return drawsynth.CullFront
	case FRONT_AND_BACK:
		return drawsynth.CullBack
	default:
		return drawsynth.CullBack
	}
}

// buildAttributeBindings resolves every active-attribute-linked vertex
// attribute to its device buffer binding, remapping unorm8x3 segments
// through the shadow buffer path (spec.md §9).
func (c *Context) buildAttributeBindings(p *Program) ([]drawsynth.AttributeBinding, error) {
	var bindings []drawsynth.AttributeBinding
	for i := range p.compiled.Attributes {
		attr := &p.compiled.Attributes[i]
		if attr.Location < 0 || attr.Location >= len(c.state.vertexAttribs) {
			return nil, fmt.Errorf("byegl: attribute %q location %d out of range", attr.Name, attr.Location)
		}
		a := c.state.vertexAttribs[attr.Location]
		if !a.enabled || a.buffer == nil {
			return nil, fmt.Errorf("byegl: attribute %q has no enabled vertex attribute array bound", attr.Name)
		}
		b := a.buffer
		src := device.VertexSourceType(a.typ)
		byteSize, ok := device.VertexByteSizes[src]
		if !ok {
			return nil, fmt.Errorf("byegl: attribute %q: unsupported vertex component type", attr.Name)
		}
		stride := a.stride
		if stride == 0 {
			stride = a.size * byteSize
		}

		if device.IsUnorm8x3(src, a.size, a.normalized) {
			count := (len(b.data) - a.offset) / stride
			if b.shadow == nil {
				b.shadow = &drawsynth.ShadowBuffer{}
			}
			if drawsynth.NeedsRemap(b.shadow, b.data, a.offset, stride, count) {
				c.logger.Warn("byegl: regenerating unorm8x3 shadow buffer", "attribute", attr.Name, "count", count)
				if err := drawsynth.RemapUnorm8x3(c.device, b.shadow, b.data, a.offset, stride, count); err != nil {
					return nil, err
				}
			}
			bindings = append(bindings, drawsynth.AttributeBinding{
				Location: attr.Location,
				Buffer:   b.shadow.Buffer,
				Offset:   0,
				Stride:   4,
				Format:   gputypes.VertexFormatUnorm8x4,
			})
			continue
		}

		format, ok := device.NativeVertexFormat(src, a.size, a.normalized)
		if !ok {
			return nil, fmt.Errorf("byegl: attribute %q: unsupported (type, size, normalized) combination", attr.Name)
		}
		if b.device == nil {
			return nil, fmt.Errorf("byegl: attribute %q: bound buffer has no device data (call bufferData first)", attr.Name)
		}
		bindings = append(bindings, drawsynth.AttributeBinding{
			Location: attr.Location,
			Buffer:   b.device,
			Offset:   uint64(a.offset),
			Stride:   uint64(stride),
			Format:   format,
		})
	}
	return bindings, nil
}

// buildTextureBindings resolves every sampler uniform to the texture unit
// it was last bound to via uniform1i, creating the device sampler lazily
// if the texture's parameters changed since its last use (spec.md §4.4
// point 2, §9).
func (c *Context) buildTextureBindings(p *Program) ([]drawsynth.TextureBinding, error) {
	if len(p.compiled.Textures) == 0 {
		return nil, nil
	}
	bindings := make([]drawsynth.TextureBinding, 0, len(p.compiled.Textures))
	for _, tex := range p.compiled.Textures {
		unit, ok := c.uniforms.TextureUnit(p, tex)
		if !ok {
			return nil, fmt.Errorf("byegl: sampler %q was never bound to a texture unit", tex.Name)
		}
		u := c.state.unit(unit)
		t := u.texture2D
		if t == nil || t.device == nil {
			return nil, fmt.Errorf("byegl: sampler %q: texture unit %d has no image data (call texImage2D first)", tex.Name, unit)
		}
		if t.deviceSampler == nil || t.paramsDirty {
			sampler, err := c.device.CreateSampler(samplerDescriptorFor(t))
			if err != nil {
				return nil, fmt.Errorf("byegl: create sampler for %q: %w", tex.Name, err)
			}
			t.deviceSampler = sampler
			t.paramsDirty = false
		}
		bindings = append(bindings, drawsynth.TextureBinding{
			Uniform: tex,
			View:    t.deviceView,
			Sampler: t.deviceSampler,
		})
	}
	return bindings, nil
}

func (c *Context) draw(mode Enum, first, count int, indexed bool, indexType Enum) {
	p := c.state.currentProgram
	if p == nil || !p.Linked() {
		panicDraw("draw", fmt.Errorf("no linked program is current"))
	}

	topology, ok := device.MapPrimitiveTopology(device.PrimitiveTopologyGL(mode))
	if !ok {
		panicDraw("draw", fmt.Errorf("unsupported primitive mode %#x", uint32(mode)))
	}

	attrs, err := c.buildAttributeBindings(p)
	if err != nil {
		panicDraw("draw", err)
	}
	textures, err := c.buildTextureBindings(p)
	if err != nil {
		panicDraw("draw", err)
	}

	uniformBuf, _ := c.uniforms.Buffer(p, uniformBinding(p))

	colorView, err := c.surface.CurrentTexture()
	if err != nil {
		panicDraw("draw", fmt.Errorf("acquire current surface texture: %w", err))
	}

	req := &drawsynth.DrawRequest{
		Program: &drawsynth.CompiledProgram{
			Key:           p,
			WGSL:          p.compiled.WGSL,
			Attributes:    p.compiled.Attributes,
			UniformBuffer: p.compiled.UniformBuffer,
			Textures:      p.compiled.Textures,
		},
		Attributes:    attrs,
		Topology:      topology,
		Cull:          c.state.cullMode(),
		UniformBuffer: uniformBuf,
		Textures:      textures,
		ColorTarget:   colorView,
		ColorFormat:   c.surface.PreferredFormat(),
		ColorWrite:    colorWriteMaskFor(c.state.colorWriteMask),
		Count:         uint32(count),
		First:         uint32(first),
	}

	if c.state.capabilities[DEPTH_TEST] {
		cmp, _ := device.MapCompareFunction(device.DepthFuncGL(c.state.depthFunc))
		req.DepthStencil = drawsynth.DepthStencilConfig{Enabled: true, Compare: cmp}
	}
	if c.state.capabilities[BLEND] {
		colorSrc, _ := device.MapBlendFactor(device.BlendFactorGL(c.state.blendColorSrc))
		colorDst, _ := device.MapBlendFactor(device.BlendFactorGL(c.state.blendColorDst))
		alphaSrc, _ := device.MapBlendFactor(device.BlendFactorGL(c.state.blendAlphaSrc))
		alphaDst, _ := device.MapBlendFactor(device.BlendFactorGL(c.state.blendAlphaDst))
		colorOp, _ := device.MapBlendEquation(device.BlendEquationGL(c.state.blendColorEq))
		alphaOp, _ := device.MapBlendEquation(device.BlendEquationGL(c.state.blendAlphaEq))
		req.Blend = drawsynth.BlendConfig{
			Enabled:  true,
			ColorSrc: colorSrc, ColorDst: colorDst, ColorOp: colorOp,
			AlphaSrc: alphaSrc, AlphaDst: alphaDst, AlphaOp: alphaOp,
		}
	}

	if c.state.clearLatch != 0 {
		req.Clear = drawsynth.ClearRequest{
			Color: c.state.clearLatch&COLOR_BUFFER_BIT != 0,
			Depth: c.state.clearLatch&DEPTH_BUFFER_BIT != 0,
			ColorValue: gputypes.Color{
				R: float64(c.state.colorClear[0]), G: float64(c.state.colorClear[1]),
				B: float64(c.state.colorClear[2]), A: float64(c.state.colorClear[3]),
			},
			DepthValue: c.state.depthClear,
		}
	}

	if indexed {
		ib := c.state.elementArrayBuffer
		if ib == nil || ib.device == nil {
			panicDraw("draw", fmt.Errorf("indexed draw without a bound, uploaded ELEMENT_ARRAY_BUFFER"))
		}
		format, ok := device.MapIndexFormat(device.IndexTypeGL(indexType))
		if !ok {
			panicDraw("draw", fmt.Errorf("unsupported index type %#x", uint32(indexType)))
		}
		req.Indexed = true
		req.Index = drawsynth.IndexBinding{Buffer: ib.device, Format: format}
	}

	if err := c.synth.Draw(c.device, c.surface, req); err != nil {
		panicDraw("draw", err)
	}
	c.state.clearLatch = 0
}

// DrawArrays draws count vertices starting at first, using mode as the
// primitive topology (spec.md §4.5). LINE_LOOP and TRIANGLE_FAN are
// unsupported and raise a hard error.
func (c *Context) DrawArrays(mode Enum, first, count int) {
	c.draw(mode, first, count, false, 0)
}

// DrawElements draws count indices starting at the index-buffer element
// offset given by offsetElements, using mode as the primitive topology and
// indexType as the index type (spec.md §4.5). Index types other than
// UNSIGNED_SHORT and UNSIGNED_INT are unsupported and raise a hard error.
func (c *Context) DrawElements(mode Enum, count int, indexType Enum, offsetElements int) {
	c.draw(mode, offsetElements, count, true, indexType)
}

func uniformBinding(p *Program) int {
	if p.compiled.UniformBuffer == nil {
		return 0
	}
	return p.compiled.UniformBuffer.Binding
}

// colorWriteMaskFor collapses colorMask's four independent channel flags to
// the device's all-or-nothing write mask: per-channel masking has no
// device equivalent exercised anywhere in this core's dependency surface,
// so a partial mask degrades to ColorWriteMaskAll (see DESIGN.md's
// open-question entry).
func colorWriteMaskFor(m [4]bool) gputypes.ColorWriteMask {
	if !m[0] && !m[1] && !m[2] && !m[3] {
		return gputypes.ColorWriteMaskNone
	}
	return gputypes.ColorWriteMaskAll
}

func samplerDescriptorFor(t *Texture) *hal.SamplerDescriptor {
	return &hal.SamplerDescriptor{
		Label:        "byegl_sampler",
		AddressModeU: wrapModeFor(t.wrapS),
		AddressModeV: wrapModeFor(t.wrapT),
		AddressModeW: wrapModeFor(t.wrapR),
		MagFilter:    filterModeFor(t.magFilter),
		MinFilter:    filterModeFor(t.minFilter),
		MipmapFilter: mipmapFilterFor(t.minFilter),
	}
}

func wrapModeFor(wrap Enum) gputypes.AddressMode {
	switch wrap {
	case CLAMP_TO_EDGE:
		return gputypes.AddressModeClampToEdge
	case MIRRORED_REPEAT:
		return gputypes.AddressModeMirrorRepeat
	default:
		return gputypes.AddressModeRepeat
	}
}

func filterModeFor(filter Enum) gputypes.FilterMode {
	switch filter {
	case NEAREST, NEAREST_MIPMAP_NEAREST, NEAREST_MIPMAP_LINEAR:
		return gputypes.FilterModeNearest
	default:
		return gputypes.FilterModeLinear
	}
}

func mipmapFilterFor(minFilter Enum) gputypes.FilterMode {
	switch minFilter {
	case NEAREST_MIPMAP_NEAREST, LINEAR_MIPMAP_NEAREST:
		return gputypes.FilterModeNearest
	default:
		return gputypes.FilterModeLinear
	}
}
