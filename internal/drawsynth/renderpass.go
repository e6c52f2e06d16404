// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawsynth

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/byegl/device"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// depthTarget caches the dedicated depth texture and view for one surface,
// re-created whenever the color texture's size changes (spec.md §4.5).
type depthTarget struct {
	mu      sync.Mutex
	width   int
	height  int
	texture hal.Texture
	view    hal.TextureView
}

// DepthCache owns one depthTarget per surface, keyed by the surface value
// itself (surfaces are expected to be long-lived, comparable handles).
type DepthCache struct {
	mu      sync.Mutex
	targets map[device.Surface]*depthTarget
	logger  *slog.Logger
}

// NewDepthCache creates an empty depth-texture cache. It logs nothing
// until SetLogger installs a logger (SPEC_FULL.md §2).
func NewDepthCache() *DepthCache {
	return &DepthCache{targets: make(map[device.Surface]*depthTarget), logger: slog.New(nopHandler{})}
}

// SetLogger installs l as the cache's diagnostics logger. Passing nil
// restores the silent default.
func (c *DepthCache) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

// EnsureView returns the depth texture view for surf at its current size,
// creating or recreating the backing texture if the size changed. recreated
// reports whether an existing texture was invalidated and replaced by a
// resize (false on first-ever creation for surf), so the caller can warn
// when a render pass is about to load from stale-shaped contents instead of
// clearing (spec.md §9).
func (c *DepthCache) EnsureView(dev device.Device, surf device.Surface) (view hal.TextureView, recreated bool, err error) {
	c.mu.Lock()
	target, ok := c.targets[surf]
	if !ok {
		target = &depthTarget{}
		c.targets[surf] = target
	}
	c.mu.Unlock()

	target.mu.Lock()
	defer target.mu.Unlock()

	w, h := surf.Width(), surf.Height()
	if target.view != nil && target.width == w && target.height == h {
		return target.view, false, nil
	}

	wasResize := target.texture != nil
	if wasResize {
		c.logger.Warn("drawsynth: surface resized, regenerating depth texture", "width", w, "height", h)
		dev.DestroyTexture(target.texture)
	}

	tex, err := dev.CreateTexture(&hal.TextureDescriptor{
		Label:         "byegl_depth_texture",
		Size:          gputypes.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        depthFormat,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, false, fmt.Errorf("drawsynth: create depth texture: %w", err)
	}

	texView, err := dev.CreateTextureView(tex, &hal.TextureViewDescriptor{Label: "byegl_depth_view"})
	if err != nil {
		dev.DestroyTexture(tex)
		return nil, false, fmt.Errorf("drawsynth: create depth view: %w", err)
	}

	target.texture = tex
	target.view = texView
	target.width, target.height = w, h
	return texView, wasResize, nil
}

// renderPassDescriptor assembles the render pass for one draw call:
// loadOp=clear iff the corresponding clear-bit was latched, else load
// (spec.md §4.5).
func renderPassDescriptor(req *DrawRequest, depthView hal.TextureView) *hal.RenderPassDescriptor {
	colorLoad := gputypes.LoadOpLoad
	if req.Clear.Color {
		colorLoad = gputypes.LoadOpClear
	}
	desc := &hal.RenderPassDescriptor{
		Label: "byegl_draw_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       req.ColorTarget,
			LoadOp:     colorLoad,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: req.Clear.ColorValue,
		}},
	}
	if req.DepthStencil.Enabled {
		depthLoad := gputypes.LoadOpLoad
		if req.Clear.Depth {
			depthLoad = gputypes.LoadOpClear
		}
		desc.DepthStencilAttachment = &hal.RenderPassDepthStencilAttachment{
			View:              depthView,
			DepthLoadOp:       depthLoad,
			DepthStoreOp:      gputypes.StoreOpStore,
			DepthClearValue:   req.Clear.DepthValue,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpDiscard,
			StencilClearValue: 0,
		}
	}
	return desc
}
