// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package typesreg

import "testing"

func TestRoundUp(t *testing.T) {
	cases := []struct {
		value, modulus, want int
	}{
		{0, 16, 0},
		{1, 16, 16},
		{16, 16, 16},
		{17, 16, 32},
		{4, 8, 8},
		{8, 8, 8},
	}
	for _, c := range cases {
		if got := RoundUp(c.value, c.modulus); got != c.want {
			t.Errorf("RoundUp(%d, %d) = %d, want %d", c.value, c.modulus, got, c.want)
		}
	}
}

func TestVec3AlignsTo16(t *testing.T) {
	if got := Align(Scalar(KindVec3)); got != 16 {
		t.Errorf("Align(vec3) = %d, want 16", got)
	}
	if got := Size(Scalar(KindVec3)); got != 12 {
		t.Errorf("Size(vec3) = %d, want 12", got)
	}
}

func TestUniformStructPacking(t *testing.T) {
	// spec.md §8 scenario 2: float, vec3, mat4 in declaration order.
	st := Struct("_Uniforms",
		Field{Name: "u_time", Type: Scalar(KindFloat)},
		Field{Name: "u_color", Type: Scalar(KindVec3)},
		Field{Name: "u_mvp", Type: Scalar(KindMat4)},
	)

	if got := FieldOffset(st.Fields, 0); got != 0 {
		t.Errorf("u_time offset = %d, want 0", got)
	}
	if got := FieldOffset(st.Fields, 1); got != 16 {
		t.Errorf("u_color offset = %d, want 16", got)
	}
	if got := FieldOffset(st.Fields, 2); got != 32 {
		t.Errorf("u_mvp offset = %d, want 32", got)
	}
	if got := Size(st); got != 96 {
		t.Errorf("struct size = %d, want 96", got)
	}
}

func TestArrayElementAlignmentFloorsAt16(t *testing.T) {
	arr := Array(Scalar(KindFloat), 4)
	if got := ArrayStride(*arr.Elem); got != 16 {
		t.Errorf("ArrayStride(float) = %d, want 16", got)
	}
	if got := Size(arr); got != 64 {
		t.Errorf("Size(array<float,4>) = %d, want 64", got)
	}
}

// TestNestedFieldOffsetArithmetic checks the per-step arithmetic the
// nested-offset invariant (spec.md §8: offset(u.a[i].b) == offset(a) +
// i*stride(elem) + offset(b in elem)) is built from, against offsets
// computed by hand rather than by re-running the same expression twice.
// The invariant's other half — that GetUniformLocation actually composes
// these steps for a real linked program — is exercised end to end by
// TestGetUniformLocationResolvesNestedPath in the root package.
func TestNestedFieldOffsetArithmetic(t *testing.T) {
	elem := Struct("Elem",
		Field{Name: "x", Type: Scalar(KindFloat)},
		Field{Name: "b", Type: Scalar(KindVec3)},
	)
	outer := Struct("Outer",
		Field{Name: "lead", Type: Scalar(KindFloat)},
		Field{Name: "a", Type: Array(elem, 4)},
	)

	if got := FieldOffset(outer.Fields, 1); got != 16 {
		t.Errorf("offset(a) = %d, want 16", got)
	}
	if got := ArrayStride(elem); got != 32 {
		t.Errorf("stride(elem) = %d, want 32", got)
	}
	if got := FieldOffset(elem.Fields, 1); got != 16 {
		t.Errorf("offset(b) within element = %d, want 16", got)
	}

	const i = 2
	wantNested := FieldOffset(outer.Fields, 1) + i*ArrayStride(elem) + 16
	if wantNested != 96 {
		t.Errorf("offset(a[%d].b) = %d, want 96", i, wantNested)
	}
}

func TestDivisibleByAlignment(t *testing.T) {
	types := []Type{
		Scalar(KindFloat), Scalar(KindVec2), Scalar(KindVec3), Scalar(KindVec4),
		Scalar(KindMat2), Scalar(KindMat3), Scalar(KindMat4),
		Array(Scalar(KindFloat), 3),
	}
	st := make([]Field, len(types))
	for i, ty := range types {
		st[i] = Field{Name: ty.Kind.String(), Type: ty}
	}
	for i, f := range st {
		off := FieldOffset(st, i)
		align := Align(f.Type)
		if off%align != 0 {
			t.Errorf("offset of %s = %d, not divisible by alignment %d", f.Name, off, align)
		}
	}
}
