// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import "testing"

func TestIsBufferIdentityAndDestroyed(t *testing.T) {
	c, _ := newTestContext(t)
	b := c.CreateBuffer()
	if !IsBuffer(b) {
		t.Errorf("a fresh buffer should report IsBuffer")
	}
	if IsBuffer("not a buffer") {
		t.Errorf("IsBuffer should reject values of the wrong type")
	}
	if IsBuffer((*Buffer)(nil)) {
		t.Errorf("IsBuffer should reject a nil *Buffer")
	}
	c.DeleteBuffer(b)
	if IsBuffer(b) {
		t.Errorf("a deleted buffer should no longer report IsBuffer")
	}
}

func TestIsProgramIdentityAndDestroyed(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkTestProgram(t, c)
	if !IsProgram(p) {
		t.Errorf("a linked program should report IsProgram")
	}
	c.DeleteProgram(p)
	if IsProgram(p) {
		t.Errorf("a deleted program should no longer report IsProgram")
	}
}

func TestIsShaderIdentityAndDestroyed(t *testing.T) {
	c, _ := newTestContext(t)
	s := c.CreateShader(VERTEX_SHADER)
	if !IsShader(s) {
		t.Errorf("a fresh shader should report IsShader")
	}
	c.DeleteShader(s)
	if IsShader(s) {
		t.Errorf("a deleted shader should no longer report IsShader")
	}
}

func TestIsTextureIdentityAndDestroyed(t *testing.T) {
	c, _ := newTestContext(t)
	tex := c.CreateTexture()
	if !IsTexture(tex) {
		t.Errorf("a fresh texture should report IsTexture")
	}
	c.DeleteTexture(tex)
	if IsTexture(tex) {
		t.Errorf("a deleted texture should no longer report IsTexture")
	}
}
