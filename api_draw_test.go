// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"math"
	"testing"
)

const drawVertexShader = `
attribute vec3 a_position;
uniform mat4 u_mvp;

void main() {
	gl_Position = u_mvp * vec4(a_position, 1.0);
}
`

const drawFragmentShader = `
precision mediump float;
uniform vec4 u_color;

void main() {
	gl_FragColor = u_color;
}
`

func linkDrawProgram(t *testing.T, c *Context) *Program {
	t.Helper()
	vs := c.CreateShader(VERTEX_SHADER)
	c.ShaderSource(vs, drawVertexShader)
	c.CompileShader(vs)

	fs := c.CreateShader(FRAGMENT_SHADER)
	c.ShaderSource(fs, drawFragmentShader)
	c.CompileShader(fs)

	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	if !p.Linked() {
		t.Fatalf("LinkProgram failed: %s", c.GetProgramInfoLog(p))
	}
	return p
}

func setupTriangle(t *testing.T, c *Context, p *Program) {
	t.Helper()
	loc := c.GetAttribLocation(p, "a_position")
	if loc < 0 {
		t.Fatalf("a_position should have a valid attribute location")
	}
	buf := c.CreateBuffer()
	c.BindBuffer(ARRAY_BUFFER, buf)
	vertices := []float32{
		0, 1, 0,
		-1, -1, 0,
		1, -1, 0,
	}
	c.BufferData(ARRAY_BUFFER, float32sToBytes(vertices), STATIC_DRAW)
	c.VertexAttribPointer(loc, 3, FLOAT, false, 0, 0)
	c.EnableVertexAttribArray(loc)
}

func float32sToBytes(v []float32) []byte {
	out := make([]byte, len(v)*4)
	for i, f := range v {
		bits := math.Float32bits(f)
		out[i*4+0] = byte(bits)
		out[i*4+1] = byte(bits >> 8)
		out[i*4+2] = byte(bits >> 16)
		out[i*4+3] = byte(bits >> 24)
	}
	return out
}

func TestDrawArraysHappyPath(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkDrawProgram(t, c)
	c.UseProgram(p)
	setupTriangle(t, c, p)

	c.ClearColor(0, 0, 0, 1)
	c.Clear(COLOR_BUFFER_BIT)

	c.DrawArrays(TRIANGLES, 0, 3)

	if got := c.state.clearLatch; got != 0 {
		t.Errorf("clearLatch after a draw = %#x, want 0 (consumed)", uint32(got))
	}
}

func TestDrawArraysWithoutProgramPanics(t *testing.T) {
	c, _ := newTestContext(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("DrawArrays without a current program should panic")
		}
	}()
	c.DrawArrays(TRIANGLES, 0, 3)
}

func TestDrawArraysUnsupportedTopologyPanics(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkDrawProgram(t, c)
	c.UseProgram(p)
	setupTriangle(t, c, p)

	defer func() {
		if recover() == nil {
			t.Fatalf("DrawArrays with LINE_LOOP should panic")
		}
	}()
	c.DrawArrays(LINE_LOOP, 0, 3)
}

func TestDrawArraysMissingAttributeBufferPanics(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkDrawProgram(t, c)
	c.UseProgram(p)
	// a_position is never enabled/bound.

	defer func() {
		if recover() == nil {
			t.Fatalf("DrawArrays with a missing attribute binding should panic")
		}
	}()
	c.DrawArrays(TRIANGLES, 0, 3)
}

func TestDrawElementsUnsupportedIndexTypePanics(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkDrawProgram(t, c)
	c.UseProgram(p)
	setupTriangle(t, c, p)

	ib := c.CreateBuffer()
	c.BindBuffer(ELEMENT_ARRAY_BUFFER, ib)
	c.BufferData(ELEMENT_ARRAY_BUFFER, []byte{0, 1, 2}, STATIC_DRAW)

	defer func() {
		if recover() == nil {
			t.Fatalf("DrawElements with UNSIGNED_BYTE indices should panic")
		}
	}()
	c.DrawElements(TRIANGLES, 3, UNSIGNED_BYTE, 0)
}

func TestDrawElementsHappyPath(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkDrawProgram(t, c)
	c.UseProgram(p)
	setupTriangle(t, c, p)

	ib := c.CreateBuffer()
	c.BindBuffer(ELEMENT_ARRAY_BUFFER, ib)
	indices := []byte{0, 0, 1, 0, 2, 0}
	c.BufferData(ELEMENT_ARRAY_BUFFER, indices, STATIC_DRAW)

	c.DrawElements(TRIANGLES, 3, UNSIGNED_SHORT, 0)
}
