// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device defines the two interfaces ByeGL's core consumes from its
// host: a graphics device (creates buffers, textures, samplers, shader
// modules, pipelines, bind groups and command encoders, and owns a queue)
// and a surface (provides the current color texture of a canvas and its
// preferred format).
//
// Both interfaces are minimal subsets of the github.com/gogpu/wgpu hal
// package and github.com/gogpu/gputypes wire vocabulary, so any host that
// already holds a hal.Device can satisfy Device with a thin adapter — the
// same pattern the gogpu/gg renderer uses for gpucontext.DeviceProvider.
package device
