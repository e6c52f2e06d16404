// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import (
	"fmt"
	"strings"

	"github.com/gogpu/byegl/internal/glsl/ast"
)

// Error is one translation failure: an unsupported construct or an
// internal inconsistency discovered while lowering a shader. It carries an
// ancestor trace (the chain of enclosing nodes the error occurred under)
// so the program's info log can report more than a bare message (spec.md
// §4.3.7).
type Error struct {
	Stage     Stage
	Pos       ast.Pos
	Msg       string
	Ancestors []string
}

func (e *Error) Error() string {
	if len(e.Ancestors) == 0 {
		return fmt.Sprintf("%s shader %d:%d: %s", e.Stage, e.Pos.Line, e.Pos.Col, e.Msg)
	}
	return fmt.Sprintf("%s shader %d:%d: %s (in %s)", e.Stage, e.Pos.Line, e.Pos.Col, e.Msg, strings.Join(e.Ancestors, " > "))
}

// errorLog accumulates Errors for one stage's lowering pass. It never
// aborts the pass early — every error the pass hits is collected and
// folded into the program's info log, matching spec.md §4.3.7 ("parsing
// errors and unsupported constructs are collected").
type errorLog struct {
	stage Stage
	errs  []error
}

func (l *errorLog) add(pos ast.Pos, ancestors []string, format string, args ...any) {
	l.addStage(l.stage, pos, ancestors, format, args...)
}

// addStage is like add but records an explicit stage, for passes (like
// location assignment) that walk both stages' declarations through one
// shared errorLog.
func (l *errorLog) addStage(stage Stage, pos ast.Pos, ancestors []string, format string, args ...any) {
	trace := make([]string, len(ancestors))
	copy(trace, ancestors)
	if len(trace) > 20 {
		// Long traces keep only the first ten and last ten frames.
		trace = append(trace[:10], trace[len(trace)-10:]...)
	}
	l.errs = append(l.errs, &Error{Stage: stage, Pos: pos, Msg: fmt.Sprintf(format, args...), Ancestors: trace})
}

func (l *errorLog) ok() bool { return len(l.errs) == 0 }

// InfoLog renders every accumulated error as a program info log, one line
// per error, the format linkProgram surfaces to the caller (spec.md
// §4.3.7).
func InfoLog(errs []error) string {
	var b strings.Builder
	for _, e := range errs {
		b.WriteString(e.Error())
		b.WriteByte('\n')
	}
	return b.String()
}
