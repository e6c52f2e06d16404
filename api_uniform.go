// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

// writeFloats is the common tail of every uniformNf/uniformNfv/
// uniformMatrixNfv entry point: resolve the location to its program's
// compiled uniform-buffer layout and member, then hand the packed
// component values to the uniform cache (spec.md §4.4). A nil location, a
// sampler location, or a location whose program is not linked (or has no
// uniform buffer) is absorbed silently, per the legacy contract (spec.md
// §7). The location's program is written whether or not it is current.
func (c *Context) writeFloats(loc *UniformLocation, values []float32, transpose bool) {
	if loc == nil || loc.member == nil {
		return
	}
	p := loc.program
	if p == nil || p.compiled == nil || p.compiled.UniformBuffer == nil {
		return
	}
	if err := c.uniforms.WriteFloats(p, p.compiled.UniformBuffer, *loc.member, values, transpose); err != nil {
		c.logger.Warn("byegl: uniform write failed", "error", err)
		c.setError(INVALID_OPERATION)
	}
}

func (c *Context) writeInts(loc *UniformLocation, values []int32) {
	if loc == nil {
		return
	}
	if loc.texture != nil {
		if len(values) != 1 {
			c.setError(INVALID_VALUE)
			return
		}
		c.uniforms.WriteTextureUnit(loc.program, *loc.texture, int(values[0]))
		return
	}
	if loc.member == nil {
		return
	}
	p := loc.program
	if p == nil || p.compiled == nil || p.compiled.UniformBuffer == nil {
		return
	}
	if err := c.uniforms.WriteInts(p, p.compiled.UniformBuffer, *loc.member, values); err != nil {
		c.logger.Warn("byegl: uniform write failed", "error", err)
		c.setError(INVALID_OPERATION)
	}
}

func (c *Context) Uniform1f(loc *UniformLocation, x float32) { c.writeFloats(loc, []float32{x}, false) }
func (c *Context) Uniform2f(loc *UniformLocation, x, y float32) {
	c.writeFloats(loc, []float32{x, y}, false)
}
func (c *Context) Uniform3f(loc *UniformLocation, x, y, z float32) {
	c.writeFloats(loc, []float32{x, y, z}, false)
}
func (c *Context) Uniform4f(loc *UniformLocation, x, y, z, w float32) {
	c.writeFloats(loc, []float32{x, y, z, w}, false)
}

func (c *Context) Uniform1fv(loc *UniformLocation, v []float32) { c.writeFloats(loc, v, false) }
func (c *Context) Uniform2fv(loc *UniformLocation, v []float32) { c.writeFloats(loc, v, false) }
func (c *Context) Uniform3fv(loc *UniformLocation, v []float32) { c.writeFloats(loc, v, false) }
func (c *Context) Uniform4fv(loc *UniformLocation, v []float32) { c.writeFloats(loc, v, false) }

// Uniform1i is also the sampler-binding entry point: assigning a texture
// unit to a sampler uniform goes through GLSL ES's "samplers are set with
// uniform1i" convention (spec.md §4.4 point 2).
func (c *Context) Uniform1i(loc *UniformLocation, x int32) { c.writeInts(loc, []int32{x}) }
func (c *Context) Uniform2i(loc *UniformLocation, x, y int32) {
	c.writeInts(loc, []int32{x, y})
}
func (c *Context) Uniform3i(loc *UniformLocation, x, y, z int32) {
	c.writeInts(loc, []int32{x, y, z})
}
func (c *Context) Uniform4i(loc *UniformLocation, x, y, z, w int32) {
	c.writeInts(loc, []int32{x, y, z, w})
}

func (c *Context) Uniform1iv(loc *UniformLocation, v []int32) { c.writeInts(loc, v) }
func (c *Context) Uniform2iv(loc *UniformLocation, v []int32) { c.writeInts(loc, v) }
func (c *Context) Uniform3iv(loc *UniformLocation, v []int32) { c.writeInts(loc, v) }
func (c *Context) Uniform4iv(loc *UniformLocation, v []int32) { c.writeInts(loc, v) }

// UniformMatrix2fv, UniformMatrix3fv and UniformMatrix4fv upload
// column-major NxN matrices. transpose honors the caller's flag; see
// DESIGN.md's open-question entry on why this differs from the observed
// original, which silently ignored it.
func (c *Context) UniformMatrix2fv(loc *UniformLocation, transpose bool, v []float32) {
	c.writeFloats(loc, v, transpose)
}
func (c *Context) UniformMatrix3fv(loc *UniformLocation, transpose bool, v []float32) {
	c.writeFloats(loc, v, transpose)
}
func (c *Context) UniformMatrix4fv(loc *UniformLocation, transpose bool, v []float32) {
	c.writeFloats(loc, v, transpose)
}

// GetUniform reads back the last value written through a uniformN* call,
// rather than round-tripping through the device (spec.md §6). Returns nil
// for a location never written, or for a sampler uniform that has not yet
// been assigned a texture unit through uniform1i.
func (c *Context) GetUniform(p *Program, loc *UniformLocation) any {
	if p == nil || loc == nil {
		return nil
	}
	if loc.texture != nil {
		if unit, ok := c.uniforms.TextureUnit(p, *loc.texture); ok {
			return int32(unit)
		}
		return nil
	}
	if loc.member == nil {
		return nil
	}
	if floats, ok := c.uniforms.LastFloats(p, loc.member.Name); ok {
		return floats
	}
	if ints, ok := c.uniforms.LastInts(p, loc.member.Name); ok {
		return ints
	}
	return nil
}
