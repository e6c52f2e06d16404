// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"testing"

	"github.com/gogpu/byegl/internal/devicetest"
)

// newTestContext builds a Context wired to a fake device/queue/surface, for
// tests that don't need a real graphics backend.
func newTestContext(t *testing.T) (*Context, *devicetest.Device) {
	t.Helper()
	dev := devicetest.NewDevice()
	surf := devicetest.NewSurface(64, 64)
	return NewContext(dev, dev.FakeQueue(), surf), dev
}

func TestNewContextDefaults(t *testing.T) {
	c, _ := newTestContext(t)
	if c.state == nil || c.uniforms == nil || c.synth == nil {
		t.Fatalf("NewContext left a nil collaborator: %+v", c)
	}
	if !c.IsEnabled(DITHER) {
		t.Errorf("DITHER should be enabled by default")
	}
	if c.IsEnabled(DEPTH_TEST) {
		t.Errorf("DEPTH_TEST should be disabled by default")
	}
	if got := c.GetError(); got != NO_ERROR {
		t.Errorf("GetError() on a fresh context = %#x, want NO_ERROR", uint32(got))
	}
}

func TestIntercepted(t *testing.T) {
	c, _ := newTestContext(t)
	if IsIntercepted(c) {
		t.Errorf("context built with interception inactive should not report intercepted")
	}
	disable := Enable()
	c2, _ := newTestContext(t)
	disable()
	if !IsIntercepted(c2) {
		t.Errorf("context built while Enable() was active should report intercepted")
	}
	c3, _ := newTestContext(t)
	if IsIntercepted(c3) {
		t.Errorf("context built after the disable thunk runs should not report intercepted")
	}
}
