// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

// ClearColor sets the color the next clear operation's CLEAR_COLOR_BUFFER
// bit writes (spec.md §4.7).
func (c *Context) ClearColor(r, g, b, a float32) {
	c.state.colorClear = [4]float32{r, g, b, a}
}

// ClearDepth sets the depth value the next clear operation's
// CLEAR_DEPTH_BUFFER bit writes.
func (c *Context) ClearDepth(d float32) { c.state.depthClear = d }

// ClearStencil sets the stencil value the next clear operation's
// CLEAR_STENCIL_BUFFER bit writes.
func (c *Context) ClearStencil(s int32) { c.state.stencilClear = s }

// Clear ORs mask into the clear latch, consumed by the next draw call
// (spec.md §8: "the clear latch is consumed by drawArrays/drawElements").
// mask must be the bitwise OR of COLOR_BUFFER_BIT, DEPTH_BUFFER_BIT and
// STENCIL_BUFFER_BIT.
func (c *Context) Clear(mask Enum) {
	c.state.clearLatch |= mask
}

// ColorMask records which color channels subsequent draws and clears
// write. At draw time the four flags collapse to all-or-nothing: any
// enabled channel writes all four, none enabled writes none.
func (c *Context) ColorMask(r, g, b, a bool) {
	c.state.colorWriteMask = [4]bool{r, g, b, a}
}

// CullFace sets which triangle winding is culled when CULL_FACE is
// enabled (FRONT, BACK or FRONT_AND_BACK).
func (c *Context) CullFace(mode Enum) {
	switch mode {
	case FRONT, BACK, FRONT_AND_BACK:
		c.state.cullFaceMode = mode
	default:
		c.setError(INVALID_ENUM)
	}
}

// FrontFace sets which winding order (CW or CCW) is considered front-facing.
func (c *Context) FrontFace(mode Enum) {
	switch mode {
	case CW, CCW:
		c.state.frontFace = mode
	default:
		c.setError(INVALID_ENUM)
	}
}

// DepthFunc sets the comparison function DEPTH_TEST uses when enabled.
func (c *Context) DepthFunc(fn Enum) { c.state.depthFunc = fn }

// DepthMask enables or disables writing to the depth buffer.
func (c *Context) DepthMask(flag bool) { c.state.depthMask = flag }

// DepthRange sets the near/far mapping of normalized device depth.
func (c *Context) DepthRange(near, far float32) {
	c.state.depthRangeN = near
	c.state.depthRangeF = far
}

// BlendFunc sets one blend factor pair for both the color and alpha
// channels (spec.md §4.5).
func (c *Context) BlendFunc(sfactor, dfactor Enum) {
	c.state.blendColorSrc, c.state.blendColorDst = sfactor, dfactor
	c.state.blendAlphaSrc, c.state.blendAlphaDst = sfactor, dfactor
}

// BlendFuncSeparate sets independent blend factor pairs for the color and
// alpha channels.
func (c *Context) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum) {
	c.state.blendColorSrc, c.state.blendColorDst = srcRGB, dstRGB
	c.state.blendAlphaSrc, c.state.blendAlphaDst = srcAlpha, dstAlpha
}

// BlendEquation sets one blend operation for both the color and alpha
// channels.
func (c *Context) BlendEquation(mode Enum) {
	c.state.blendColorEq, c.state.blendAlphaEq = mode, mode
}

// BlendEquationSeparate sets independent blend operations for the color
// and alpha channels.
func (c *Context) BlendEquationSeparate(modeRGB, modeAlpha Enum) {
	c.state.blendColorEq, c.state.blendAlphaEq = modeRGB, modeAlpha
}

// Viewport sets the viewport rectangle in pixels.
func (c *Context) Viewport(x, y, width, height int) {
	c.state.viewport = [4]int{x, y, width, height}
}

// Scissor sets the scissor rectangle in pixels, effective only while
// SCISSOR_TEST is enabled.
func (c *Context) Scissor(x, y, width, height int) {
	c.state.scissorBox = [4]int{x, y, width, height}
}

// StencilMask sets the write mask for both faces' stencil buffer.
func (c *Context) StencilMask(mask uint32) {
	c.state.stencilMask = mask
	c.state.stencilMaskBack = mask
}

// StencilMaskSeparate sets the write mask for one face (FRONT, BACK or
// FRONT_AND_BACK).
func (c *Context) StencilMaskSeparate(face Enum, mask uint32) {
	switch face {
	case FRONT:
		c.state.stencilMask = mask
	case BACK:
		c.state.stencilMaskBack = mask
	case FRONT_AND_BACK:
		c.state.stencilMask = mask
		c.state.stencilMaskBack = mask
	default:
		c.setError(INVALID_ENUM)
	}
}

// GetParameter answers the capability, binding and state pnames spec.md
// §4.7 and §6 enumerate. Capabilities not explicitly listed there answer
// through IsEnabled instead.
func (c *Context) GetParameter(pname Enum) any {
	s := c.state
	switch pname {
	case ARRAY_BUFFER_BINDING:
		return s.arrayBuffer
	case ELEMENT_ARRAY_BUFFER_BINDING:
		return s.elementArrayBuffer
	case CURRENT_PROGRAM:
		return s.currentProgram
	case FRAMEBUFFER_BINDING:
		return s.framebuffer
	case ACTIVE_TEXTURE:
		return Enum(TEXTURE0) + Enum(s.activeTexture)
	case CULL_FACE_MODE:
		return s.cullFaceMode
	case FRONT_FACE:
		return s.frontFace
	case DEPTH_FUNC:
		return s.depthFunc
	case DEPTH_WRITEMASK:
		return s.depthMask
	case DEPTH_RANGE:
		return [2]float32{s.depthRangeN, s.depthRangeF}
	case DEPTH_CLEAR_VALUE:
		return s.depthClear
	case COLOR_WRITEMASK:
		return s.colorWriteMask
	case COLOR_CLEAR_VALUE:
		return s.colorClear
	case STENCIL_CLEAR_VALUE:
		return s.stencilClear
	case STENCIL_WRITEMASK:
		return s.stencilMask
	case STENCIL_BACK_WRITEMASK:
		return s.stencilMaskBack
	case BLEND_SRC_RGB:
		return s.blendColorSrc
	case BLEND_DST_RGB:
		return s.blendColorDst
	case BLEND_SRC_ALPHA:
		return s.blendAlphaSrc
	case BLEND_DST_ALPHA:
		return s.blendAlphaDst
	case BLEND_EQUATION_RGB:
		return s.blendColorEq
	case BLEND_EQUATION_ALPHA:
		return s.blendAlphaEq
	case VIEWPORT:
		return s.viewport
	case SCISSOR_BOX:
		return s.scissorBox
	case MAX_VERTEX_ATTRIBS:
		return int32(maxVertexAttribs)
	case MAX_TEXTURE_SIZE:
		return int32(8192)
	case VERSION:
		return "OpenGL ES 2.0 (byegl)"
	case VENDOR:
		return "gogpu"
	case RENDERER:
		return "byegl"
	case SHADING_LANGUAGE_VERSION:
		return "OpenGL ES GLSL ES 1.00 (byegl)"
	default:
		if _, isCap := s.capabilities[pname]; isCap {
			return c.IsEnabled(pname)
		}
		c.setError(INVALID_ENUM)
		return nil
	}
}

// ContextAttributes mirrors the subset of WebGLContextAttributes this core
// honors (spec.md §6): every draw target comes from a host-supplied
// surface, so alpha/antialias/depth/stencil describe that surface rather
// than configuring it.
type ContextAttributes struct {
	Alpha                       bool
	Depth                       bool
	Stencil                     bool
	Antialias                   bool
	PremultipliedAlpha          bool
	PreserveDrawingBuffer       bool
	FailIfMajorPerformanceCaveat bool
}

// GetContextAttributes reports fixed attributes describing the
// host-supplied surface this Context draws through.
func (c *Context) GetContextAttributes() ContextAttributes {
	return ContextAttributes{
		Alpha:              true,
		Depth:              true,
		Stencil:            false,
		PremultipliedAlpha: true,
	}
}
