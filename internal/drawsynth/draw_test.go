// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package drawsynth

import (
	"testing"

	"github.com/gogpu/byegl/internal/devicetest"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

func TestSynthesizerDrawTriangleNoDepthNoBlend(t *testing.T) {
	dev := devicetest.NewDevice()
	syn := NewSynthesizer()

	program := &CompiledProgram{
		Key:  "prog-1",
		WGSL: "@vertex fn vs_main() {}\n@fragment fn fs_main() {}",
	}
	posBuf, _ := dev.CreateBuffer(&hal.BufferDescriptor{Label: "positions", Size: 24})

	req := &DrawRequest{
		Program:  program,
		Topology: gputypes.PrimitiveTopologyTriangleList,
		Attributes: []AttributeBinding{
			{Location: 0, Buffer: posBuf, Offset: 0, Stride: 8, Format: gputypes.VertexFormatFloat32x2},
		},
		ColorWrite:  gputypes.ColorWriteMaskAll,
		ColorFormat: gputypes.TextureFormatBGRA8Unorm,
		Count:       3,
	}

	if err := syn.Draw(dev, nil, req); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	q := dev.FakeQueue()
	if got := q.SubmitCount(); got != 1 {
		t.Fatalf("SubmitCount = %d, want 1", got)
	}

	pipelines := dev.Pipelines()
	if len(pipelines) != 1 {
		t.Fatalf("pipelines created = %d, want 1", len(pipelines))
	}
	desc := pipelines[0].Desc
	if len(desc.Vertex.Buffers) != 1 || desc.Vertex.Buffers[0].ArrayStride != 8 {
		t.Fatalf("vertex buffer layout = %#v", desc.Vertex.Buffers)
	}
	if desc.Vertex.Buffers[0].Attributes[0].Format != gputypes.VertexFormatFloat32x2 {
		t.Errorf("attribute format = %v, want float32x2", desc.Vertex.Buffers[0].Attributes[0].Format)
	}
	if desc.Primitive.Topology != gputypes.PrimitiveTopologyTriangleList {
		t.Errorf("topology = %v, want triangle-list", desc.Primitive.Topology)
	}
	if desc.DepthStencil != nil {
		t.Errorf("expected no depth-stencil state, got %#v", desc.DepthStencil)
	}
	if desc.Fragment.Targets[0].Blend != nil {
		t.Errorf("expected no blend state")
	}
	if desc.Fragment.Targets[0].WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("write mask = %v, want all", desc.Fragment.Targets[0].WriteMask)
	}
}

func TestSynthesizerSecondDrawReusesPipeline(t *testing.T) {
	dev := devicetest.NewDevice()
	syn := NewSynthesizer()
	program := &CompiledProgram{Key: "prog-1", WGSL: "@vertex fn vs_main() {}\n@fragment fn fs_main() {}"}
	buf, _ := dev.CreateBuffer(&hal.BufferDescriptor{Size: 24})
	req := &DrawRequest{
		Program:     program,
		Topology:    gputypes.PrimitiveTopologyTriangleList,
		Attributes:  []AttributeBinding{{Location: 0, Buffer: buf, Stride: 8, Format: gputypes.VertexFormatFloat32x2}},
		ColorWrite:  gputypes.ColorWriteMaskAll,
		ColorFormat: gputypes.TextureFormatBGRA8Unorm,
		Count:       3,
	}
	if err := syn.Draw(dev, nil, req); err != nil {
		t.Fatalf("first draw: %v", err)
	}
	if err := syn.Draw(dev, nil, req); err != nil {
		t.Fatalf("second draw: %v", err)
	}
	if len(dev.Pipelines()) != 1 {
		t.Errorf("pipelines created = %d, want 1 (cached)", len(dev.Pipelines()))
	}
	if syn.Pipelines.hits != 1 {
		t.Errorf("cache hits = %d, want 1", syn.Pipelines.hits)
	}
}

func TestSynthesizerIndexedDraw(t *testing.T) {
	dev := devicetest.NewDevice()
	syn := NewSynthesizer()
	program := &CompiledProgram{Key: "prog-2", WGSL: "@vertex fn vs_main() {}\n@fragment fn fs_main() {}"}
	vbuf, _ := dev.CreateBuffer(&hal.BufferDescriptor{Size: 24})
	ibuf, _ := dev.CreateBuffer(&hal.BufferDescriptor{Size: 12})

	req := &DrawRequest{
		Program:     program,
		Topology:    gputypes.PrimitiveTopologyTriangleList,
		Attributes:  []AttributeBinding{{Location: 0, Buffer: vbuf, Stride: 8, Format: gputypes.VertexFormatFloat32x2}},
		ColorWrite:  gputypes.ColorWriteMaskAll,
		ColorFormat: gputypes.TextureFormatBGRA8Unorm,
		Indexed:     true,
		Index:       IndexBinding{Buffer: ibuf, Format: gputypes.IndexFormatUint16},
		Count:       6,
	}
	if err := syn.Draw(dev, nil, req); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if dev.FakeQueue().SubmitCount() != 1 {
		t.Fatalf("expected exactly one submitted command buffer")
	}
}

func TestSynthesizerIndexedDrawWithoutIndexBufferFails(t *testing.T) {
	dev := devicetest.NewDevice()
	syn := NewSynthesizer()
	req := &DrawRequest{
		Program: &CompiledProgram{Key: "prog-3", WGSL: "x"},
		Indexed: true,
	}
	if err := syn.Draw(dev, nil, req); err == nil {
		t.Fatal("expected error for indexed draw without a bound index buffer")
	}
}
