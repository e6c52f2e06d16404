// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import "github.com/gogpu/naga"

// validate runs the emitted WGSL module through naga's validator when
// Options.ValidateWGSL is set (SPEC_FULL.md §3). A real shader
// cross-compiler never ships without a round-trip check against the
// target compiler; naga is the one WGSL front end anywhere in the
// retrieval pack (internal/native/shader_helper.go wires it for the same
// purpose), so wiring it here rather than trusting this package's own
// emission logic follows the same precedent.
func validate(wgsl string) (diagnostics string, ok bool) {
	if _, err := naga.Compile(wgsl); err != nil {
		return err.Error(), false
	}
	return "", true
}
