// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uniformcache

import (
	"math"
	"testing"

	"github.com/gogpu/byegl/internal/devicetest"
	"github.com/gogpu/byegl/internal/translator"
	"github.com/gogpu/byegl/internal/typesreg"
)

func TestWriteFloatsScalarAndVec3(t *testing.T) {
	dev := devicetest.NewDevice()
	c := New(dev, dev.FakeQueue())
	layout := &translator.UniformBufferLayout{Binding: 0, Size: 32}
	program := "program-a"

	timeMember := translator.UniformMember{Name: "u_time", Type: typesreg.Scalar(typesreg.KindFloat), Offset: 0}
	if err := c.WriteFloats(program, layout, timeMember, []float32{1.5}, false); err != nil {
		t.Fatalf("WriteFloats(u_time): %v", err)
	}

	colorMember := translator.UniformMember{Name: "u_color", Type: typesreg.Scalar(typesreg.KindVec3), Offset: 16}
	if err := c.WriteFloats(program, layout, colorMember, []float32{1, 0.5, 0.25}, false); err != nil {
		t.Fatalf("WriteFloats(u_color): %v", err)
	}

	buf, ok := dev.WrittenBuffer(layout.Binding)
	if !ok {
		t.Fatalf("expected a written buffer at binding %d", layout.Binding)
	}
	if len(buf) != 32 {
		t.Fatalf("buffer size = %d, want 32", len(buf))
	}
	if got := f32At(buf, 0); got != 1.5 {
		t.Errorf("u_time = %v, want 1.5", got)
	}
	if got := f32At(buf, 16); got != 1 {
		t.Errorf("u_color.x = %v, want 1", got)
	}
	if got := f32At(buf, 20); got != 0.5 {
		t.Errorf("u_color.y = %v, want 0.5", got)
	}
	if got := f32At(buf, 24); got != 0.25 {
		t.Errorf("u_color.z = %v, want 0.25", got)
	}

	values, ok := c.LastFloats(program, "u_color")
	if !ok || len(values) != 3 || values[0] != 1 {
		t.Errorf("LastFloats(u_color) = %v, %v", values, ok)
	}
}

func TestWriteFloatsMat3Transpose(t *testing.T) {
	dev := devicetest.NewDevice()
	c := New(dev, dev.FakeQueue())
	layout := &translator.UniformBufferLayout{Binding: 0, Size: 48}
	member := translator.UniformMember{Name: "u_normal", Type: typesreg.Scalar(typesreg.KindMat3), Offset: 0}

	// Row-major input: rows [1,2,3] [4,5,6] [7,8,9]; transpose=true should
	// store it column-major, i.e. column 0 = [1,4,7].
	rowMajor := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if err := c.WriteFloats("p", layout, member, rowMajor, true); err != nil {
		t.Fatalf("WriteFloats: %v", err)
	}
	buf, _ := dev.WrittenBuffer(layout.Binding)
	col0 := []float32{f32At(buf, 0), f32At(buf, 4), f32At(buf, 8)}
	want := []float32{1, 4, 7}
	for i := range want {
		if col0[i] != want[i] {
			t.Errorf("column 0 = %v, want %v", col0, want)
			break
		}
	}
	// Column stride for mat3 is 16 bytes, so column 1 starts at byte 16.
	col1 := []float32{f32At(buf, 16), f32At(buf, 20), f32At(buf, 24)}
	want1 := []float32{2, 5, 8}
	for i := range want1 {
		if col1[i] != want1[i] {
			t.Errorf("column 1 = %v, want %v", col1, want1)
			break
		}
	}
}

func TestWriteFloatsArray(t *testing.T) {
	dev := devicetest.NewDevice()
	c := New(dev, dev.FakeQueue())
	elem := typesreg.Scalar(typesreg.KindFloat)
	arrType := typesreg.Array(elem, 3)
	layout := &translator.UniformBufferLayout{Binding: 0, Size: typesreg.Size(arrType)}
	member := translator.UniformMember{Name: "u_weights", Type: arrType, Offset: 0}

	if err := c.WriteFloats("p", layout, member, []float32{1, 2, 3}, false); err != nil {
		t.Fatalf("WriteFloats: %v", err)
	}
	buf, _ := dev.WrittenBuffer(layout.Binding)
	stride := typesreg.ArrayStride(elem)
	for i, want := range []float32{1, 2, 3} {
		if got := f32At(buf, i*stride); got != want {
			t.Errorf("element %d = %v, want %v", i, got, want)
		}
	}
}

func TestWriteTextureUnitAndForget(t *testing.T) {
	dev := devicetest.NewDevice()
	c := New(dev, dev.FakeQueue())
	tex := translator.TextureUniform{Name: "u_tex", TextureBinding: 1, SamplerBinding: 2}

	c.WriteTextureUnit("p", tex, 3)
	unit, ok := c.TextureUnit("p", tex)
	if !ok || unit != 3 {
		t.Fatalf("TextureUnit = %v, %v, want 3, true", unit, ok)
	}

	c.Forget("p")
	if _, ok := c.TextureUnit("p", tex); ok {
		t.Errorf("TextureUnit should be forgotten after Forget")
	}
}

func f32At(buf []byte, offset int) float32 {
	bits := uint32(buf[offset]) | uint32(buf[offset+1])<<8 | uint32(buf[offset+2])<<16 | uint32(buf[offset+3])<<24
	return math.Float32frombits(bits)
}
