// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package uniformcache owns the device buffer backing each program's
// uniform struct, plus the last-seen value of every uniform (spec.md
// §4.4). It is keyed by (program, binding index): every uniformN write from
// the legacy API funnels through here before a draw can read the uniform
// struct back out of device memory.
package uniformcache

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/byegl/device"
	"github.com/gogpu/byegl/internal/translator"
	"github.com/gogpu/byegl/internal/typesreg"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// nopHandler silently discards all log records, matching byegl's
// package-level default (logger.go) for callers that never call
// SetLogger.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// bufKey identifies one program's uniform-struct device buffer, or one
// program's sampler uniform's last-seen texture unit.
type bufKey struct {
	program any
	binding int
}

// memberKey identifies one uniform's last-seen component value, by name
// rather than offset: two uniforms never share a name within one program.
type memberKey struct {
	program any
	name    string
}

type bufferEntry struct {
	buf  hal.Buffer
	size int
}

// Cache owns one device buffer per (program, uniform-struct binding), plus
// the retained component values uniformN calls last wrote. Grounded on the
// teacher's backend/wgpu/pipeline.go PipelineCache: a plain map guarded by
// a mutex, not sync.Map, matching that cache's RWMutex discipline.
type Cache struct {
	mu           sync.RWMutex
	device       device.Device
	queue        hal.Queue
	buffers      map[bufKey]*bufferEntry
	textureUnits map[bufKey]int
	lastFloats   map[memberKey][]float32
	lastInts     map[memberKey][]int32
	logger       *slog.Logger
}

// New creates a Cache that allocates uniform-struct buffers through dev and
// uploads through queue. The cache logs nothing until SetLogger installs a
// logger (SPEC_FULL.md §2).
func New(dev device.Device, queue hal.Queue) *Cache {
	return &Cache{
		device:       dev,
		queue:        queue,
		buffers:      make(map[bufKey]*bufferEntry),
		textureUnits: make(map[bufKey]int),
		lastFloats:   make(map[memberKey][]float32),
		lastInts:     make(map[memberKey][]int32),
		logger:       slog.New(nopHandler{}),
	}
}

// SetLogger installs l as the cache's diagnostics logger, mirroring the
// teacher's loggerSetter propagation pattern (logger.go). Passing nil
// restores the silent default.
func (c *Cache) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	c.mu.Lock()
	c.logger = l
	c.mu.Unlock()
}

// Forget drops every buffer and retained value belonging to program. Called
// when a program is deleted or relinked, since a relink can change the
// uniform-struct layout entirely (spec.md §4.4, §9 "lazy device resources").
func (c *Cache) Forget(program any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.buffers {
		if k.program == program {
			delete(c.buffers, k)
		}
	}
	for k := range c.textureUnits {
		if k.program == program {
			delete(c.textureUnits, k)
		}
	}
	for k := range c.lastFloats {
		if k.program == program {
			delete(c.lastFloats, k)
		}
	}
	for k := range c.lastInts {
		if k.program == program {
			delete(c.lastInts, k)
		}
	}
}

// Buffer returns the device buffer backing program's uniform struct at
// binding, for the draw synthesizer's bind group entry. ok is false until
// at least one uniform belonging to that struct has been written.
func (c *Cache) Buffer(program any, binding int) (hal.Buffer, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.buffers[bufKey{program, binding}]
	if !ok {
		return nil, false
	}
	return e.buf, true
}

// WriteTextureUnit records the active texture unit most recently bound to
// a sampler uniform (spec.md §4.4 point 2: sampler/texture uniforms
// allocate no device buffer; only the unit integer is retained for the
// draw synthesizer to resolve at draw time).
func (c *Cache) WriteTextureUnit(program any, tex translator.TextureUniform, unit int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.textureUnits[bufKey{program, tex.TextureBinding}] = unit
}

// TextureUnit resolves the texture unit a sampler uniform was last bound
// to.
func (c *Cache) TextureUnit(program any, tex translator.TextureUniform) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	unit, ok := c.textureUnits[bufKey{program, tex.TextureBinding}]
	return unit, ok
}

// LastFloats returns the most recently written float-component value of a
// uniform by name (uniform1f/2f/3f/4f/MatrixNfv and their array forms),
// for getUniform readback without a device round trip.
func (c *Cache) LastFloats(program any, name string) ([]float32, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.lastFloats[memberKey{program, name}]
	return v, ok
}

// LastInts returns the most recently written int-component value of a
// uniform by name (uniform1i/2i/3i/4i and their array forms, plus bool
// uniforms set via uniform1i).
func (c *Cache) LastInts(program any, name string) ([]int32, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.lastInts[memberKey{program, name}]
	return v, ok
}

// WriteFloats serializes a float-component uniform value (float, vecN,
// matN, or a fixed-size array of these) into the std140-like layout
// typesreg computes, and writes it into program's uniform-struct device
// buffer at member.Offset (spec.md §4.4 point 3). values must be the
// tightly-packed component floats the legacy uniformNfv entry points
// receive (no struct padding) — WriteFloats re-pads per typesreg's rules.
//
// transpose honors uniformMatrix*'s transpose argument; see DESIGN.md's
// Open-question entry: this cache transposes where the observed original
// silently ignored the flag.
func (c *Cache) WriteFloats(program any, layout *translator.UniformBufferLayout, member translator.UniformMember, values []float32, transpose bool) error {
	data, err := serializeFloats(member.Type, values, transpose)
	if err != nil {
		return fmt.Errorf("uniformcache: %s: %w", member.Name, err)
	}
	if err := c.write(program, layout, member.Offset, data); err != nil {
		return err
	}
	c.mu.Lock()
	c.lastFloats[memberKey{program, member.Name}] = append([]float32(nil), values...)
	c.mu.Unlock()
	return nil
}

// WriteInts is WriteFloats' counterpart for int, uint, and bool uniforms
// (bool occupies a u32 slot in the uniform struct per spec.md §4.1; callers
// pass 0 or 1).
func (c *Cache) WriteInts(program any, layout *translator.UniformBufferLayout, member translator.UniformMember, values []int32) error {
	data, err := serializeInts(member.Type, values)
	if err != nil {
		return fmt.Errorf("uniformcache: %s: %w", member.Name, err)
	}
	if err := c.write(program, layout, member.Offset, data); err != nil {
		return err
	}
	c.mu.Lock()
	c.lastInts[memberKey{program, member.Name}] = append([]int32(nil), values...)
	c.mu.Unlock()
	return nil
}

func (c *Cache) write(program any, layout *translator.UniformBufferLayout, offset int, data []byte) error {
	buf, err := c.ensureBuffer(program, layout)
	if err != nil {
		return err
	}
	if err := c.queue.WriteBuffer(buf, uint64(offset), data); err != nil {
		return fmt.Errorf("uniformcache: write buffer: %w", err)
	}
	return nil
}

// ensureBuffer returns program's uniform-struct device buffer at
// layout.Binding, (re-)creating it when it does not exist yet or when
// layout.Size no longer matches (spec.md §4.4 point 3, §9 "lazy device
// resources").
func (c *Cache) ensureBuffer(program any, layout *translator.UniformBufferLayout) (hal.Buffer, error) {
	key := bufKey{program, layout.Binding}

	c.mu.RLock()
	if e, ok := c.buffers[key]; ok && e.size == layout.Size {
		c.logger.Debug("uniformcache: buffer cache hit", "binding", layout.Binding, "size", layout.Size)
		c.mu.RUnlock()
		return e.buf, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.buffers[key]; ok && e.size == layout.Size {
		c.logger.Debug("uniformcache: buffer cache hit", "binding", layout.Binding, "size", layout.Size)
		return e.buf, nil
	}

	buf, err := c.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "byegl_uniform_buffer",
		Size:  uint64(layout.Size),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("uniformcache: create uniform buffer: %w", err)
	}
	c.logger.Debug("uniformcache: buffer cache miss, allocating", "binding", layout.Binding, "size", layout.Size)
	c.buffers[key] = &bufferEntry{buf: buf, size: layout.Size}
	return buf, nil
}

func vecComponents(k typesreg.Kind) int {
	switch k {
	case typesreg.KindVec2, typesreg.KindIVec2, typesreg.KindUVec2:
		return 2
	case typesreg.KindVec3, typesreg.KindIVec3, typesreg.KindUVec3:
		return 3
	case typesreg.KindVec4, typesreg.KindIVec4, typesreg.KindUVec4:
		return 4
	default:
		return 1
	}
}

func matDim(k typesreg.Kind) int {
	switch k {
	case typesreg.KindMat2:
		return 2
	case typesreg.KindMat3:
		return 3
	case typesreg.KindMat4:
		return 4
	default:
		return 0
	}
}

// matColumnStride is the byte stride between consecutive columns of a
// matrix inside a uniform block: mat2's vec2 columns need no extra
// padding, mat3's vec3 columns pad out to 16 bytes, mat4's vec4 columns
// already are 16 bytes (spec.md §4.1).
func matColumnStride(n int) int {
	if n == 2 {
		return 8
	}
	return 16
}

// componentCount reports how many scalar components one value of t
// flattens to in the caller's tightly-packed input (not the padded
// in-buffer size) — used to slice an array's flat input per element.
func componentCount(t typesreg.Type) int {
	switch t.Kind {
	case typesreg.KindMat2, typesreg.KindMat3, typesreg.KindMat4:
		n := matDim(t.Kind)
		return n * n
	case typesreg.KindArray:
		return componentCount(*t.Elem) * t.ArrayLen
	default:
		return vecComponents(t.Kind)
	}
}

func transposeSquare(values []float32, n int) []float32 {
	out := make([]float32, len(values))
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out[col*n+row] = values[row*n+col]
		}
	}
	return out
}

func float32sToBytes(values []float32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		putFloat32(out[i*4:], v)
	}
	return out
}

func int32sToBytes(values []int32) []byte {
	out := make([]byte, 4*len(values))
	for i, v := range values {
		putUint32(out[i*4:], uint32(v))
	}
	return out
}

func putFloat32(b []byte, v float32) {
	putUint32(b, math.Float32bits(v))
}

func putUint32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}

// serializeFloats lowers a float-component GLSL value into its std140-like
// in-buffer byte representation (spec.md §4.1, §4.4 point 3).
func serializeFloats(t typesreg.Type, values []float32, transpose bool) ([]byte, error) {
	switch t.Kind {
	case typesreg.KindFloat:
		if len(values) < 1 {
			return nil, fmt.Errorf("float uniform needs 1 component, got %d", len(values))
		}
		return float32sToBytes(values[:1]), nil
	case typesreg.KindVec2, typesreg.KindVec3, typesreg.KindVec4:
		n := vecComponents(t.Kind)
		if len(values) < n {
			return nil, fmt.Errorf("%s uniform needs %d components, got %d", t.Kind, n, len(values))
		}
		return float32sToBytes(values[:n]), nil
	case typesreg.KindMat2, typesreg.KindMat3, typesreg.KindMat4:
		n := matDim(t.Kind)
		if len(values) < n*n {
			return nil, fmt.Errorf("%s uniform needs %d components, got %d", t.Kind, n*n, len(values))
		}
		data := values[:n*n]
		if transpose {
			data = transposeSquare(data, n)
		}
		stride := matColumnStride(n)
		out := make([]byte, stride*n)
		for col := 0; col < n; col++ {
			copy(out[col*stride:], float32sToBytes(data[col*n:col*n+n]))
		}
		return out, nil
	case typesreg.KindArray:
		elemStride := typesreg.ArrayStride(*t.Elem)
		elemComponents := componentCount(*t.Elem)
		out := make([]byte, elemStride*t.ArrayLen)
		for i := 0; i < t.ArrayLen; i++ {
			start := i * elemComponents
			if start+elemComponents > len(values) {
				return nil, fmt.Errorf("array uniform needs %d components, got %d", elemComponents*t.ArrayLen, len(values))
			}
			chunk, err := serializeFloats(*t.Elem, values[start:start+elemComponents], transpose)
			if err != nil {
				return nil, err
			}
			copy(out[i*elemStride:], chunk)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("type %s is not a float-valued uniform", t.Kind)
	}
}

// serializeInts lowers an int/uint/bool-component GLSL value into its
// in-buffer byte representation. Bool uniforms occupy a u32 slot (spec.md
// §4.1); values carries 0 or 1 for those.
func serializeInts(t typesreg.Type, values []int32) ([]byte, error) {
	switch t.Kind {
	case typesreg.KindInt, typesreg.KindUint, typesreg.KindBool:
		if len(values) < 1 {
			return nil, fmt.Errorf("%s uniform needs 1 component, got %d", t.Kind, len(values))
		}
		return int32sToBytes(values[:1]), nil
	case typesreg.KindIVec2, typesreg.KindIVec3, typesreg.KindIVec4,
		typesreg.KindUVec2, typesreg.KindUVec3, typesreg.KindUVec4:
		n := vecComponents(t.Kind)
		if len(values) < n {
			return nil, fmt.Errorf("%s uniform needs %d components, got %d", t.Kind, n, len(values))
		}
		return int32sToBytes(values[:n]), nil
	case typesreg.KindArray:
		elemStride := typesreg.ArrayStride(*t.Elem)
		elemComponents := componentCount(*t.Elem)
		out := make([]byte, elemStride*t.ArrayLen)
		for i := 0; i < t.ArrayLen; i++ {
			start := i * elemComponents
			if start+elemComponents > len(values) {
				return nil, fmt.Errorf("array uniform needs %d components, got %d", elemComponents*t.ArrayLen, len(values))
			}
			chunk, err := serializeInts(*t.Elem, values[start:start+elemComponents])
			if err != nil {
				return nil, err
			}
			copy(out[i*elemStride:], chunk)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("type %s is not an int-valued uniform", t.Kind)
	}
}
