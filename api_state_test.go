// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import "testing"

func TestClearLatchesOredBits(t *testing.T) {
	c, _ := newTestContext(t)
	c.Clear(COLOR_BUFFER_BIT)
	c.Clear(DEPTH_BUFFER_BIT)
	if got := c.state.clearLatch; got != COLOR_BUFFER_BIT|DEPTH_BUFFER_BIT {
		t.Errorf("clearLatch = %#x, want COLOR_BUFFER_BIT|DEPTH_BUFFER_BIT", uint32(got))
	}
}

func TestBlendFuncSetsBothChannels(t *testing.T) {
	c, _ := newTestContext(t)
	c.BlendFunc(SRC_ALPHA, ONE_MINUS_SRC_ALPHA)
	if c.state.blendColorSrc != SRC_ALPHA || c.state.blendAlphaSrc != SRC_ALPHA {
		t.Errorf("blendFunc should set both color and alpha src factors")
	}
	if c.state.blendColorDst != ONE_MINUS_SRC_ALPHA || c.state.blendAlphaDst != ONE_MINUS_SRC_ALPHA {
		t.Errorf("blendFunc should set both color and alpha dst factors")
	}
}

func TestBlendFuncSeparateIndependentChannels(t *testing.T) {
	c, _ := newTestContext(t)
	c.BlendFuncSeparate(SRC_ALPHA, ONE_MINUS_SRC_ALPHA, ONE, ZERO)
	if c.state.blendColorSrc != SRC_ALPHA || c.state.blendColorDst != ONE_MINUS_SRC_ALPHA {
		t.Errorf("blendFuncSeparate color factors mismatch")
	}
	if c.state.blendAlphaSrc != ONE || c.state.blendAlphaDst != ZERO {
		t.Errorf("blendFuncSeparate alpha factors mismatch")
	}
}

func TestCullFaceRejectsInvalidEnum(t *testing.T) {
	c, _ := newTestContext(t)
	c.CullFace(Enum(0x1234))
	if got := c.GetError(); got != INVALID_ENUM {
		t.Errorf("GetError() = %#x, want INVALID_ENUM", uint32(got))
	}
}

func TestGetParameterViewportAndClearColor(t *testing.T) {
	c, _ := newTestContext(t)
	c.Viewport(1, 2, 3, 4)
	c.ClearColor(0.1, 0.2, 0.3, 0.4)

	viewport, ok := c.GetParameter(VIEWPORT).([4]int)
	if !ok || viewport != [4]int{1, 2, 3, 4} {
		t.Errorf("GetParameter(VIEWPORT) = %v, want [1 2 3 4]", viewport)
	}
	clearColor, ok := c.GetParameter(COLOR_CLEAR_VALUE).([4]float32)
	if !ok || clearColor != [4]float32{0.1, 0.2, 0.3, 0.4} {
		t.Errorf("GetParameter(COLOR_CLEAR_VALUE) = %v, want [0.1 0.2 0.3 0.4]", clearColor)
	}
}

func TestGetParameterActiveTexture(t *testing.T) {
	c, _ := newTestContext(t)
	c.ActiveTexture(TEXTURE0 + 3)
	got, ok := c.GetParameter(ACTIVE_TEXTURE).(Enum)
	if !ok || got != TEXTURE0+3 {
		t.Errorf("GetParameter(ACTIVE_TEXTURE) = %v, want TEXTURE0+3", got)
	}
}

func TestGetParameterUnknownPnameIsAnError(t *testing.T) {
	c, _ := newTestContext(t)
	if got := c.GetParameter(Enum(0xDEAD)); got != nil {
		t.Errorf("GetParameter(unknown) = %v, want nil", got)
	}
	if got := c.GetError(); got != INVALID_ENUM {
		t.Errorf("GetError() = %#x, want INVALID_ENUM", uint32(got))
	}
}

func TestGetParameterFallsBackToCapabilities(t *testing.T) {
	c, _ := newTestContext(t)
	c.Enable(BLEND)
	got, ok := c.GetParameter(BLEND).(bool)
	if !ok || !got {
		t.Errorf("GetParameter(BLEND) = %v, want true", got)
	}
}

func TestGetContextAttributesFixedValues(t *testing.T) {
	c, _ := newTestContext(t)
	attrs := c.GetContextAttributes()
	if !attrs.Alpha || !attrs.Depth || !attrs.PremultipliedAlpha {
		t.Errorf("GetContextAttributes = %+v, want Alpha/Depth/PremultipliedAlpha true", attrs)
	}
	if attrs.Stencil || attrs.Antialias {
		t.Errorf("GetContextAttributes = %+v, want Stencil/Antialias false", attrs)
	}
}
