// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import "testing"

func TestNewStateDefaults(t *testing.T) {
	s := newState()
	if !s.capabilities[DITHER] {
		t.Errorf("DITHER should be enabled by default")
	}
	if s.capabilities[BLEND] {
		t.Errorf("BLEND should be disabled by default")
	}
	if s.cullFaceMode != BACK {
		t.Errorf("cullFaceMode = %#x, want BACK", uint32(s.cullFaceMode))
	}
	if s.frontFace != CCW {
		t.Errorf("frontFace = %#x, want CCW", uint32(s.frontFace))
	}
	if s.depthFunc != LESS {
		t.Errorf("depthFunc = %#x, want LESS", uint32(s.depthFunc))
	}
	if !s.depthMask {
		t.Errorf("depthMask should default to true")
	}
	if s.depthRangeF != 1 {
		t.Errorf("depthRangeF = %v, want 1", s.depthRangeF)
	}
	if s.colorWriteMask != [4]bool{true, true, true, true} {
		t.Errorf("colorWriteMask = %v, want all true", s.colorWriteMask)
	}
	if s.blendColorSrc != ONE || s.blendColorDst != ZERO {
		t.Errorf("blend color factors = %#x/%#x, want ONE/ZERO", uint32(s.blendColorSrc), uint32(s.blendColorDst))
	}
	if len(s.vertexAttribs) != maxVertexAttribs {
		t.Errorf("len(vertexAttribs) = %d, want %d", len(s.vertexAttribs), maxVertexAttribs)
	}
}

func TestStateUnitLazilyAllocates(t *testing.T) {
	s := newState()
	u1 := s.unit(2)
	u2 := s.unit(2)
	if u1 != u2 {
		t.Errorf("unit(n) should return the same *textureUnit on repeated calls")
	}
	if u1 == s.unit(3) {
		t.Errorf("different unit indices should not alias")
	}
}

func TestStateBoundBuffer(t *testing.T) {
	s := newState()
	a := &Buffer{}
	e := &Buffer{}
	s.arrayBuffer = a
	s.elementArrayBuffer = e

	if s.boundBuffer(ARRAY_BUFFER) != a {
		t.Errorf("boundBuffer(ARRAY_BUFFER) should resolve to the bound array buffer")
	}
	if s.boundBuffer(ELEMENT_ARRAY_BUFFER) != e {
		t.Errorf("boundBuffer(ELEMENT_ARRAY_BUFFER) should resolve to the bound element array buffer")
	}
	if s.boundBuffer(TEXTURE_2D) != nil {
		t.Errorf("boundBuffer on a non-buffer target should return nil")
	}
}
