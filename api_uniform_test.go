// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import "testing"

func TestUniform4fRoundTrips(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkTestProgram(t, c)
	c.UseProgram(p)

	loc := c.GetUniformLocation(p, "u_color")
	if loc == nil {
		t.Fatalf("u_color should resolve to a uniform location")
	}
	c.Uniform4f(loc, 1, 0.5, 0.25, 1)

	got, ok := c.GetUniform(p, loc).([]float32)
	if !ok {
		t.Fatalf("GetUniform(u_color) = %v, want a []float32", c.GetUniform(p, loc))
	}
	want := []float32{1, 0.5, 0.25, 1}
	if len(got) != len(want) {
		t.Fatalf("GetUniform(u_color) length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("component %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestUniformMatrix4fvTranspose(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkTestProgram(t, c)
	c.UseProgram(p)

	loc := c.GetUniformLocation(p, "u_mvp")
	if loc == nil {
		t.Fatalf("u_mvp should resolve to a uniform location")
	}
	identity := []float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	c.UniformMatrix4fv(loc, true, identity)
	if got := c.GetError(); got != NO_ERROR {
		t.Fatalf("unexpected error: %#x", uint32(got))
	}
}

func TestUniform1iBindsSamplerUnit(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkTestProgram(t, c)
	c.UseProgram(p)

	loc := c.GetUniformLocation(p, "u_tex")
	if loc == nil {
		t.Fatalf("u_tex should resolve to a sampler location")
	}
	c.Uniform1i(loc, 2)

	got, ok := c.GetUniform(p, loc).(int32)
	if !ok {
		t.Fatalf("GetUniform(u_tex) = %v, want an int32 unit", c.GetUniform(p, loc))
	}
	if got != 2 {
		t.Errorf("bound sampler unit = %d, want 2", got)
	}
}

func TestUniformOnNilLocationIsSilent(t *testing.T) {
	c, _ := newTestContext(t)
	c.Uniform1f(nil, 1)
	c.Uniform1i(nil, 1)
	if got := c.GetError(); got != NO_ERROR {
		t.Errorf("writing to a nil uniform location should not raise an error, got %#x", uint32(got))
	}
}

func TestUniform1iWrongArityIsAnError(t *testing.T) {
	c, _ := newTestContext(t)
	p := linkTestProgram(t, c)
	c.UseProgram(p)

	loc := c.GetUniformLocation(p, "u_tex")
	c.Uniform2iv(loc, []int32{1, 2})
	if got := c.GetError(); got != INVALID_VALUE {
		t.Errorf("GetError() = %#x, want INVALID_VALUE", uint32(got))
	}
}
