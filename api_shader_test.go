// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"testing"

	"github.com/gogpu/byegl/internal/typesreg"
)

const testVertexShader = `
attribute vec3 a_position;
uniform mat4 u_mvp;
varying vec2 v_uv;

void main() {
	gl_Position = u_mvp * vec4(a_position, 1.0);
	v_uv = a_position.xy;
}
`

const testFragmentShader = `
precision mediump float;
uniform sampler2D u_tex;
uniform vec4 u_color;
varying vec2 v_uv;

void main() {
	gl_FragColor = texture2D(u_tex, v_uv) * u_color;
}
`

func linkTestProgram(t *testing.T, c *Context) *Program {
	t.Helper()
	vs := c.CreateShader(VERTEX_SHADER)
	c.ShaderSource(vs, testVertexShader)
	c.CompileShader(vs)

	fs := c.CreateShader(FRAGMENT_SHADER)
	c.ShaderSource(fs, testFragmentShader)
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

func TestLinkProgramSucceeds(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkTestProgram(t, c)

	if loc := c.GetAttribLocation(p, "a_position"); loc != 0 {
		t.Errorf("GetAttribLocation(a_position) = %d, want 0", loc)
	}
	if loc := c.GetAttribLocation(p, "nonexistent"); loc != -1 {
		t.Errorf("GetAttribLocation(nonexistent) = %d, want -1", loc)
	}
	if c.GetUniformLocation(p, "u_mvp") == nil {
		t.Errorf("GetUniformLocation(u_mvp) = nil, want a location")
	}
	if c.GetUniformLocation(p, "u_tex") == nil {
		t.Errorf("GetUniformLocation(u_tex) = nil, want a sampler location")
	}
	if c.GetUniformLocation(p, "nope") != nil {
		t.Errorf("GetUniformLocation(nope) should be nil")
	}
}

const testLightArrayFragmentShader = `
precision mediump float;

struct Light {
	float intensity;
	vec3 position;
};

uniform Light u_lights[4];
varying vec2 v_uv;

void main() {
	gl_FragColor = vec4(u_lights[2].position * u_lights[0].intensity, 1.0);
}
`

// TestGetUniformLocationResolvesNestedPath exercises the nested-offset
// invariant end to end: linking a program that declares a struct-array
// uniform, then resolving a path into one element's field, must return the
// same byte offset the layout algebra computes by hand (spec.md §8).
func TestGetUniformLocationResolvesNestedPath(t *testing.T) {
	c, _ := newTestContext(t)
	vs := c.CreateShader(VERTEX_SHADER)
	c.ShaderSource(vs, testVertexShader)
	fs := c.CreateShader(FRAGMENT_SHADER)
	c.ShaderSource(fs, testLightArrayFragmentShader)

	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	if !p.Linked() {
		t.Fatalf("LinkProgram failed: %s", c.GetProgramInfoLog(p))
	}

	base, ok := p.uniformByName["u_lights"]
	if !ok || base.member == nil {
		t.Fatalf("u_lights did not register as a uniform member")
	}
	elem := *base.member.Type.Elem
	stride := typesreg.ArrayStride(elem)
	wantOffset := base.member.Offset + 2*stride + typesreg.FieldOffset(elem.Fields, 1)

	loc := c.GetUniformLocation(p, "u_lights[2].position")
	if loc == nil {
		t.Fatalf("GetUniformLocation(u_lights[2].position) = nil")
	}
	if loc.member.Offset != wantOffset {
		t.Errorf("resolved offset = %d, want %d", loc.member.Offset, wantOffset)
	}
	if loc.member.Type.Kind != typesreg.KindVec3 {
		t.Errorf("resolved leaf kind = %v, want vec3", loc.member.Type.Kind)
	}

	if c.GetUniformLocation(p, "u_lights[9].position") != nil {
		t.Errorf("out-of-range array index should resolve to nil")
	}
	if c.GetUniformLocation(p, "u_lights[0].nope") != nil {
		t.Errorf("unknown field should resolve to nil")
	}
}

func TestLinkProgramMissingShaderFails(t *testing.T) {
	c, _ := newTestContext(t)
	vs := c.CreateShader(VERTEX_SHADER)
	c.ShaderSource(vs, testVertexShader)

	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.LinkProgram(p)

	if p.Linked() {
		t.Fatalf("LinkProgram should fail without a fragment shader")
	}
	if c.GetProgramInfoLog(p) == "" {
		t.Errorf("GetProgramInfoLog should be non-empty after a failed link")
	}
}

func TestUseProgramIdempotent(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkTestProgram(t, c)
	c.UseProgram(p)
	c.UseProgram(p)
	if c.state.currentProgram != p {
		t.Fatalf("UseProgram did not set the current program")
	}
}

func TestDeleteShaderKeepsProgramUsable(t *testing.T) {
	c, _ := newTestContext(t)
	vs := c.CreateShader(VERTEX_SHADER)
	c.ShaderSource(vs, testVertexShader)
	fs := c.CreateShader(FRAGMENT_SHADER)
	c.ShaderSource(fs, testFragmentShader)

	p := c.CreateProgram()
	c.AttachShader(p, vs)
	c.AttachShader(p, fs)
	c.LinkProgram(p)
	if !p.Linked() {
		t.Fatalf("LinkProgram failed: %s", c.GetProgramInfoLog(p))
	}

	c.DeleteShader(vs)
	if IsShader(vs) {
		t.Errorf("DeleteShader did not flag the shader destroyed")
	}
	if !p.Linked() {
		t.Errorf("deleting an attached shader should not unlink the program")
	}
}
