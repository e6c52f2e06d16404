// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

// Enable turns on a capability (spec.md §6's enable). Every capability
// enum is accepted and recorded; only CULL_FACE, DEPTH_TEST and BLEND are
// consulted by the draw synthesizer, the rest (DITHER,
// POLYGON_OFFSET_FILL, SAMPLE_COVERAGE, SAMPLE_ALPHA_TO_COVERAGE,
// SCISSOR_TEST, STENCIL_TEST) are bookkeeping this core has no device
// feature to back, matching the Non-goals list (multisampling, stencil
// operations).
func (c *Context) Enable(cap Enum) {
	c.state.capabilities[cap] = true
}

// Disable turns off a capability.
func (c *Context) Disable(cap Enum) {
	c.state.capabilities[cap] = false
}

// IsEnabled reports a capability's current state.
func (c *Context) IsEnabled(cap Enum) bool {
	return c.state.capabilities[cap]
}
