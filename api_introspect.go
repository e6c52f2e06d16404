// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

// Hint accepts a performance/quality hint. The mode is validated
// (INVALID_ENUM otherwise) but not stored: getParameter has no
// GENERATE_MIPMAP_HINT readback, and nothing in this core changes behavior
// in response to it (spec.md §6).
func (c *Context) Hint(target, mode Enum) {
	switch mode {
	case FASTEST, NICEST, DONT_CARE:
	default:
		c.setError(INVALID_ENUM)
	}
}

// IsContextLost always reports false: a host-supplied device losing its
// connection to its adapter is outside this core's model (spec.md §9).
func (c *Context) IsContextLost() bool { return false }

// GetSupportedExtensions always returns an empty, non-nil slice: no legacy
// extension is implemented (spec.md §6).
func (c *Context) GetSupportedExtensions() []string { return []string{} }

// GetExtension always returns nil: the same "no extensions" contract as
// GetSupportedExtensions.
func (c *Context) GetExtension(name string) any { return nil }

// PixelStorei sets one of the two unpack flags texImage2D consults, or the
// unpack alignment (spec.md §6, SPEC_FULL.md §4).
func (c *Context) PixelStorei(pname Enum, param int32) {
	switch pname {
	case UNPACK_FLIP_Y_WEBGL:
		c.state.unpackFlipY = param != 0
	case UNPACK_PREMULTIPLY_ALPHA_WEBGL:
		c.state.unpackPremultiplyAlpha = param != 0
	case UNPACK_ALIGNMENT:
		c.state.unpackAlignment = int(param)
	default:
		c.setError(INVALID_ENUM)
	}
}

// CreateFramebuffer allocates a framebuffer placeholder object
// (SPEC_FULL.md §4: framebuffer objects are a named Non-goal beyond
// bookkeeping).
func (c *Context) CreateFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// BindFramebuffer accepts binding the default framebuffer (fb == nil) as a
// no-op; binding any other framebuffer object raises the hard
// "not implemented yet" error, since this core never renders to one
// (spec.md §9).
func (c *Context) BindFramebuffer(target Enum, fb *Framebuffer) {
	if fb == nil {
		c.state.framebuffer = nil
		return
	}
	c.state.framebuffer = fb
	notImplemented("bindFramebuffer to a non-default framebuffer")
}

// FramebufferTexture2D always raises the hard "not implemented yet" error;
// nothing is recorded and no texture is ever wired to a render target.
func (c *Context) FramebufferTexture2D(target, attachment, textarget Enum, t *Texture, level int) {
	notImplemented("framebufferTexture2D")
}

// DeleteFramebuffer flags fb destroyed.
func (c *Context) DeleteFramebuffer(fb *Framebuffer) {
	if fb == nil {
		return
	}
	fb.destroyed = true
}

// CheckFramebufferStatus always reports FRAMEBUFFER_COMPLETE for the
// default framebuffer; any other binding would already have raised
// "not implemented yet" in bindFramebuffer.
func (c *Context) CheckFramebufferStatus(target Enum) Enum {
	return FRAMEBUFFER_COMPLETE
}
