// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import "testing"

func TestCreateTextureDefaults(t *testing.T) {
	c, _ := newTestContext(t)
	tex := c.CreateTexture()
	if tex.minFilter != LINEAR_MIPMAP_LINEAR {
		t.Errorf("minFilter = %#x, want LINEAR_MIPMAP_LINEAR", uint32(tex.minFilter))
	}
	if tex.wrapS != REPEAT || tex.wrapT != REPEAT {
		t.Errorf("wrapS/wrapT = %#x/%#x, want REPEAT/REPEAT", uint32(tex.wrapS), uint32(tex.wrapT))
	}
}

func TestActiveTextureSelectsUnit(t *testing.T) {
	c, _ := newTestContext(t)
	c.ActiveTexture(TEXTURE0 + 1)
	if c.state.activeTexture != 1 {
		t.Fatalf("activeTexture = %d, want 1", c.state.activeTexture)
	}

	tex := c.CreateTexture()
	c.BindTexture(TEXTURE_2D, tex)
	if c.state.unit(1).texture2D != tex {
		t.Errorf("bindTexture should bind into the active unit")
	}
	if c.state.unit(0).texture2D == tex {
		t.Errorf("bindTexture should not affect unit 0")
	}
}

func TestActiveTextureBelowTEXTURE0IsAnError(t *testing.T) {
	c, _ := newTestContext(t)
	c.ActiveTexture(0)
	if got := c.GetError(); got != INVALID_ENUM {
		t.Errorf("GetError() = %#x, want INVALID_ENUM", uint32(got))
	}
}

func TestTexImage2DRGBAUploadsVerbatim(t *testing.T) {
	c, _ := newTestContext(t)
	tex := c.CreateTexture()
	c.BindTexture(TEXTURE_2D, tex)

	pixels := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
	}
	c.TexImage2D(TEXTURE_2D, 0, int32(RGBA), 2, 1, 0, RGBA, UNSIGNED_BYTE, pixels)

	if got := c.GetError(); got != NO_ERROR {
		t.Fatalf("unexpected error: %#x", uint32(got))
	}
	if tex.device == nil {
		t.Fatalf("texImage2D should allocate a device texture")
	}
	if tex.width != 2 || tex.height != 1 {
		t.Errorf("texture size = %dx%d, want 2x1", tex.width, tex.height)
	}
}

func TestTexImage2DExpandsRGBToRGBA(t *testing.T) {
	pixels := []byte{10, 20, 30, 40, 50, 60}
	got := expandRGBToRGBA(pixels, 2)
	want := []byte{10, 20, 30, 255, 40, 50, 60, 255}
	if len(got) != len(want) {
		t.Fatalf("expandRGBToRGBA length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestApplyUnpackFlipY(t *testing.T) {
	// 2x2 image, 1 byte per pixel, rows [1,2] and [3,4].
	data := []byte{1, 2, 3, 4}
	got := applyUnpackFlipY(data, 2, 2, 1)
	want := []byte{3, 4, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("byte %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestApplyUnpackPremultiplyAlpha(t *testing.T) {
	data := []byte{255, 255, 255, 128}
	applyUnpackPremultiplyAlpha(data, 4)
	if data[3] != 128 {
		t.Fatalf("alpha channel should be untouched")
	}
	for i := 0; i < 3; i++ {
		if data[i] != 128 {
			t.Errorf("channel %d = %d, want 128 (255*128/255)", i, data[i])
		}
	}
}

func TestTexImage2DUnsupportedFormatIsAnError(t *testing.T) {
	c, _ := newTestContext(t)
	tex := c.CreateTexture()
	c.BindTexture(TEXTURE_2D, tex)
	c.TexImage2D(TEXTURE_2D, 0, int32(RGBA), 1, 1, 0, RGBA, FLOAT, []byte{0, 0, 0, 0})
	if got := c.GetError(); got != INVALID_ENUM {
		t.Errorf("GetError() = %#x, want INVALID_ENUM", uint32(got))
	}
}

func TestTexImage2DWithoutBindingIsAnError(t *testing.T) {
	c, _ := newTestContext(t)
	c.TexImage2D(TEXTURE_2D, 0, int32(RGBA), 1, 1, 0, RGBA, UNSIGNED_BYTE, []byte{0, 0, 0, 0})
	if got := c.GetError(); got != INVALID_OPERATION {
		t.Errorf("GetError() = %#x, want INVALID_OPERATION", uint32(got))
	}
}

func TestTexParameteriRoundTrip(t *testing.T) {
	c, _ := newTestContext(t)
	tex := c.CreateTexture()
	c.BindTexture(TEXTURE_2D, tex)
	c.TexParameteri(TEXTURE_2D, TEXTURE_MIN_FILTER, int32(NEAREST))
	if got := c.GetTexParameter(TEXTURE_2D, TEXTURE_MIN_FILTER); got != Enum(NEAREST) {
		t.Errorf("TEXTURE_MIN_FILTER = %v, want NEAREST", got)
	}
	if !tex.paramsDirty {
		t.Errorf("texParameteri should mark the sampler dirty for lazy rebuild")
	}
}

func TestDeleteTextureDestroysDeviceResource(t *testing.T) {
	c, _ := newTestContext(t)
	tex := c.CreateTexture()
	c.BindTexture(TEXTURE_2D, tex)
	c.TexImage2D(TEXTURE_2D, 0, int32(RGBA), 1, 1, 0, RGBA, UNSIGNED_BYTE, []byte{0, 0, 0, 0})

	c.DeleteTexture(tex)
	if !tex.destroyed {
		t.Fatalf("DeleteTexture should flag the texture destroyed")
	}
	if IsTexture(tex) {
		t.Errorf("a destroyed texture should no longer report IsTexture")
	}
}
