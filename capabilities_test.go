// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import "testing"

func TestEnableDisableIsEnabled(t *testing.T) {
	c, _ := newTestContext(t)

	if c.IsEnabled(SCISSOR_TEST) {
		t.Errorf("SCISSOR_TEST should start disabled")
	}
	c.Enable(SCISSOR_TEST)
	if !c.IsEnabled(SCISSOR_TEST) {
		t.Errorf("Enable(SCISSOR_TEST) should flip IsEnabled to true")
	}
	c.Disable(SCISSOR_TEST)
	if c.IsEnabled(SCISSOR_TEST) {
		t.Errorf("Disable(SCISSOR_TEST) should flip IsEnabled back to false")
	}
}

func TestEnableUnknownCapabilityIsStillRecorded(t *testing.T) {
	c, _ := newTestContext(t)
	unknown := Enum(0xBEEF)
	c.Enable(unknown)
	if !c.IsEnabled(unknown) {
		t.Errorf("any capability enum, known or not, should round-trip through enable/isEnabled")
	}
}
