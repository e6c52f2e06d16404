// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import "fmt"

// setError latches code if no error is currently pending (spec.md §4.7:
// "subsequent errors are dropped until read").
func (c *Context) setError(code Enum) {
	if c.state.errorLatch == NO_ERROR {
		c.state.errorLatch = code
	}
}

// GetError returns the latched error and clears it, per getError (spec.md
// §6).
func (c *Context) GetError() Enum {
	e := c.state.errorLatch
	c.state.errorLatch = NO_ERROR
	return e
}

// NotImplementedError is the hard-failure exception for entry points named
// in spec.md's Non-goals: a programmer error, not a silent no-op (spec.md
// §4.7, §7).
type NotImplementedError struct {
	Op string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("byegl: %s: not implemented yet", e.Op)
}

// notImplemented panics with a NotImplementedError. Callers are the entry
// points spec.md names as hooks for Non-goal features: framebuffer
// binding to a non-null target, and anything else this core never
// synthesizes device work for.
func notImplemented(op string) {
	panic(&NotImplementedError{Op: op})
}

// DrawError is the hard-failure exception for programmer errors discovered
// at draw time: unsupported topologies, bad index types, a draw issued
// without a linked program, an indexed draw without a bound element array
// buffer (spec.md §7).
type DrawError struct {
	Op  string
	Err error
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("byegl: %s: %s", e.Op, e.Err)
}

func (e *DrawError) Unwrap() error { return e.Err }

func panicDraw(op string, err error) {
	panic(&DrawError{Op: op, Err: err})
}
