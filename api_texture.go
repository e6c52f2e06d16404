// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// CreateTexture allocates a texture object. No device texture is created
// until the first texImage2D call supplies its dimensions and format
// (spec.md §3: lazily-allocated device resources).
func (c *Context) CreateTexture() *Texture {
	return newTexture()
}

// ActiveTexture selects which texture unit subsequent bindTexture and
// uniform1i sampler bindings address (spec.md §4.7).
func (c *Context) ActiveTexture(texture Enum) {
	if texture < TEXTURE0 {
		c.setError(INVALID_ENUM)
		return
	}
	c.state.activeTexture = int(texture - TEXTURE0)
}

// BindTexture binds t to target on the current active texture unit. Only
// TEXTURE_2D is backed by device resources; TEXTURE_CUBE_MAP is recorded
// but never synthesized into a draw.
func (c *Context) BindTexture(target Enum, t *Texture) {
	switch target {
	case TEXTURE_2D:
		c.state.unit(c.state.activeTexture).texture2D = t
	case TEXTURE_CUBE_MAP:
		c.state.unit(c.state.activeTexture).cubeMap = t
	default:
		c.setError(INVALID_ENUM)
	}
}

// textureFormatFor maps a texImage2D (format, type) pair to a device
// texture format, and reports whether the source bytes need expanding from
// 3 to 4 components per pixel (the RGB/UNSIGNED_BYTE case, which has no
// native single-component-per-byte device format and is promoted to RGBA
// the same way internal/drawsynth's shadow buffer promotes unorm8x3 vertex
// data).
func textureFormatFor(format, dtype Enum) (gputypes.TextureFormat, int, bool, bool) {
	if dtype != UNSIGNED_BYTE {
		return 0, 0, false, false
	}
	switch format {
	case RGBA:
		return gputypes.TextureFormatRGBA8Unorm, 4, false, true
	case RGB:
		return gputypes.TextureFormatRGBA8Unorm, 3, true, true
	case ALPHA, LUMINANCE:
		return gputypes.TextureFormatR8Unorm, 1, false, true
	case LUMINANCE_ALPHA:
		return gputypes.TextureFormatRG8Unorm, 2, false, true
	default:
		return 0, 0, false, false
	}
}

// expandRGBToRGBA widens a tightly-packed RGB byte buffer to RGBA, filling
// every alpha byte opaque. Mirrors internal/drawsynth/shadowbuffer.go's
// unorm8x3 remap: legacy callers routinely upload 3-component pixel data
// that WebGPU-shaped devices have no native format for.
func expandRGBToRGBA(src []byte, pixels int) []byte {
	out := make([]byte, pixels*4)
	for i := 0; i < pixels; i++ {
		out[i*4+0] = src[i*3+0]
		out[i*4+1] = src[i*3+1]
		out[i*4+2] = src[i*3+2]
		out[i*4+3] = 0xFF
	}
	return out
}

// applyUnpackFlipY returns a copy of data with its row order reversed,
// honoring UNPACK_FLIP_Y_WEBGL (SPEC_FULL.md §4). data is left unchanged.
func applyUnpackFlipY(data []byte, width, height, bytesPerPixel int) []byte {
	rowSize := width * bytesPerPixel
	out := make([]byte, len(data))
	for y := 0; y < height; y++ {
		srcOff := y * rowSize
		dstOff := (height - 1 - y) * rowSize
		copy(out[dstOff:dstOff+rowSize], data[srcOff:srcOff+rowSize])
	}
	return out
}

// applyUnpackPremultiplyAlpha multiplies RGB channels by alpha in place,
// honoring UNPACK_PREMULTIPLY_ALPHA_WEBGL (SPEC_FULL.md §4). A no-op for
// formats with no alpha channel.
func applyUnpackPremultiplyAlpha(data []byte, bytesPerPixel int) {
	if bytesPerPixel != 4 {
		return
	}
	for i := 0; i+3 < len(data); i += 4 {
		a := uint32(data[i+3])
		data[i+0] = byte(uint32(data[i+0]) * a / 255)
		data[i+1] = byte(uint32(data[i+1]) * a / 255)
		data[i+2] = byte(uint32(data[i+2]) * a / 255)
	}
}

// TexImage2D (re)allocates t's device texture to width x height and
// uploads pixels, honoring the current unpack state (spec.md §6,
// SPEC_FULL.md §4). Only the UNSIGNED_BYTE path over RGBA/RGB/ALPHA/
// LUMINANCE/LUMINANCE_ALPHA is supported; decoding externally-sourced
// images (HTMLImageElement and friends) is left to the host, per spec.md
// §1's "image loading is an external collaborator" non-goal.
func (c *Context) TexImage2D(target, level Enum, internalFormat int32, width, height int, border int32, format, dtype Enum, pixels []byte) {
	t := c.boundTextureForImage(target)
	if t == nil {
		c.setError(INVALID_OPERATION)
		return
	}
	deviceFormat, bpp, expand, ok := textureFormatFor(format, dtype)
	if !ok {
		c.setError(INVALID_ENUM)
		return
	}

	data := pixels
	if expand && format == RGB {
		data = expandRGBToRGBA(pixels, width*height)
	} else if pixels != nil {
		data = append([]byte(nil), pixels...)
	}
	deviceBpp := bpp
	if format == RGB {
		deviceBpp = 4
	}

	if data != nil {
		if c.state.unpackFlipY {
			data = applyUnpackFlipY(data, width, height, deviceBpp)
		}
		if c.state.unpackPremultiplyAlpha {
			applyUnpackPremultiplyAlpha(data, deviceBpp)
		}
	}

	if t.device == nil || t.width != width || t.height != height || t.format != deviceFormat {
		if t.device != nil {
			c.device.DestroyTexture(t.device)
		}
		dev, err := c.device.CreateTexture(&hal.TextureDescriptor{
			Label: "byegl_texture",
			Size: gputypes.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   1,
			Dimension:     gputypes.TextureDimension2D,
			Format:        deviceFormat,
			Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
		})
		if err != nil {
			c.logger.Warn("byegl: texImage2D: device texture allocation failed", "error", err)
			c.setError(OUT_OF_MEMORY)
			return
		}
		view, err := c.device.CreateTextureView(dev, &hal.TextureViewDescriptor{Label: "byegl_texture_view"})
		if err != nil {
			c.logger.Warn("byegl: texImage2D: device texture view creation failed", "error", err)
			c.setError(OUT_OF_MEMORY)
			return
		}
		t.device = dev
		t.deviceView = view
		t.width = width
		t.height = height
		t.format = deviceFormat
		t.paramsDirty = true
	}

	if len(data) > 0 {
		c.queue.WriteTexture(
			&hal.ImageCopyTexture{Texture: t.device, MipLevel: 0},
			data,
			&hal.ImageDataLayout{
				Offset:       0,
				BytesPerRow:  uint32(width * deviceBpp),
				RowsPerImage: uint32(height),
			},
			&hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
		)
	}
}

func (c *Context) boundTextureForImage(target Enum) *Texture {
	unit := c.state.unit(c.state.activeTexture)
	switch target {
	case TEXTURE_2D:
		return unit.texture2D
	default:
		return nil
	}
}

// TexParameteri sets an integer-valued sampler parameter (spec.md §6). The
// device sampler is rebuilt lazily, on next use, rather than here.
func (c *Context) TexParameteri(target Enum, pname Enum, param int32) {
	t := c.boundTextureForImage(target)
	if t == nil {
		c.setError(INVALID_OPERATION)
		return
	}
	switch pname {
	case TEXTURE_MIN_FILTER:
		t.minFilter = Enum(param)
	case TEXTURE_MAG_FILTER:
		t.magFilter = Enum(param)
	case TEXTURE_WRAP_S:
		t.wrapS = Enum(param)
	case TEXTURE_WRAP_T:
		t.wrapT = Enum(param)
	case TEXTURE_WRAP_R:
		t.wrapR = Enum(param)
	case TEXTURE_COMPARE_MODE:
		t.compareMode = Enum(param)
	case TEXTURE_COMPARE_FUNC:
		t.compareFunc = Enum(param)
	default:
		c.setError(INVALID_ENUM)
		return
	}
	t.paramsDirty = true
}

// TexParameterf is TexParameteri's float-valued twin (spec.md §6).
func (c *Context) TexParameterf(target Enum, pname Enum, param float32) {
	c.TexParameteri(target, pname, int32(param))
}

// GetTexParameter answers the sampler-parameter pnames TexParameteri
// accepts (SPEC_FULL.md §7).
func (c *Context) GetTexParameter(target, pname Enum) any {
	t := c.boundTextureForImage(target)
	if t == nil {
		c.setError(INVALID_OPERATION)
		return nil
	}
	switch pname {
	case TEXTURE_MIN_FILTER:
		return t.minFilter
	case TEXTURE_MAG_FILTER:
		return t.magFilter
	case TEXTURE_WRAP_S:
		return t.wrapS
	case TEXTURE_WRAP_T:
		return t.wrapT
	case TEXTURE_WRAP_R:
		return t.wrapR
	case TEXTURE_COMPARE_MODE:
		return t.compareMode
	case TEXTURE_COMPARE_FUNC:
		return t.compareFunc
	default:
		c.setError(INVALID_ENUM)
		return nil
	}
}

// GenerateMipmap is a recorded no-op: the draw synthesizer always binds
// mip level 0 (spec.md §6 "stub" — mipmap chain generation is a named
// Non-goal).
func (c *Context) GenerateMipmap(target Enum) {
	t := c.boundTextureForImage(target)
	if t == nil {
		c.setError(INVALID_OPERATION)
	}
}

// DeleteTexture destroys t's device resources (if any) and flags the
// handle destroyed.
func (c *Context) DeleteTexture(t *Texture) {
	if t == nil || t.destroyed {
		return
	}
	if t.device != nil && !t.imported {
		c.device.DestroyTexture(t.device)
	}
	t.destroyed = true
}
