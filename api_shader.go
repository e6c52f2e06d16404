// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package byegl

import (
	"strconv"
	"strings"

	"github.com/gogpu/byegl/internal/translator"
	"github.com/gogpu/byegl/internal/typesreg"
)

// CreateShader allocates a shader object for the given stage (VERTEX_SHADER
// or FRAGMENT_SHADER).
func (c *Context) CreateShader(stype Enum) *Shader {
	var stage translator.Stage
	switch stype {
	case VERTEX_SHADER:
		stage = translator.StageVertex
	case FRAGMENT_SHADER:
		stage = translator.StageFragment
	default:
		c.setError(INVALID_ENUM)
		return nil
	}
	return &Shader{stage: stage}
}

// ShaderSource replaces a shader's source text. May be called more than
// once; only the last call before compileShader/linkProgram matters
// (spec.md §3: "source set once or replaced").
func (c *Context) ShaderSource(s *Shader, source string) {
	if s == nil || s.destroyed {
		c.setError(INVALID_OPERATION)
		return
	}
	s.source = source
}

// CompileShader is a no-op: translation is deferred to linkProgram, which
// is the only point a shader pair's semantics can be checked together
// (spec.md §3).
func (c *Context) CompileShader(s *Shader) {
	if s == nil || s.destroyed {
		c.setError(INVALID_OPERATION)
	}
}

// DeleteShader flags s destroyed. Programs may still reference a deleted
// shader by identity (spec.md §9: "deletion is a flag, not a free").
func (c *Context) DeleteShader(s *Shader) {
	if s == nil {
		return
	}
	s.destroyed = true
}

// CreateProgram allocates an empty program object.
func (c *Context) CreateProgram() *Program {
	return &Program{}
}

// AttachShader attaches s to p at its stage. Re-attaching the same stage
// replaces the previous shader.
func (c *Context) AttachShader(p *Program, s *Shader) {
	if p == nil || p.destroyed || s == nil {
		c.setError(INVALID_OPERATION)
		return
	}
	switch s.stage {
	case translator.StageVertex:
		p.vertex = s
	case translator.StageFragment:
		p.fragment = s
	}
}

// LinkProgram translates the attached shader pair to one WGSL module and
// builds the program's compiled artifact (spec.md §4.3, §4.3.7). A
// program is usable for drawing iff both shaders are attached and the
// last link succeeded; failures are folded into the info log and the
// compiled artifact is cleared, never populated halfway.
func (c *Context) LinkProgram(p *Program) {
	if p == nil || p.destroyed {
		c.setError(INVALID_OPERATION)
		return
	}
	p.compiled = nil
	p.infoLog = ""
	p.attribByName = nil
	p.uniformByName = nil
	c.uniforms.Forget(p)

	if p.vertex == nil || p.fragment == nil {
		p.infoLog = "byegl: link failed: program has no attached vertex and fragment shader\n"
		return
	}

	result, errs := translator.Translate(p.vertex.source, p.fragment.source, translator.Options{
		ValidateWGSL: c.validateWGSL,
	})
	if len(errs) != 0 {
		p.infoLog = translator.InfoLog(errs)
		return
	}

	p.compiled = result
	p.attribByName = make(map[string]*translator.Attribute, len(result.Attributes))
	for i := range result.Attributes {
		a := &result.Attributes[i]
		p.attribByName[a.Name] = a
	}
	p.uniformByName = make(map[string]*uniformEntry)
	if result.UniformBuffer != nil {
		for i := range result.UniformBuffer.Members {
			m := &result.UniformBuffer.Members[i]
			p.uniformByName[m.Name] = &uniformEntry{member: m}
		}
	}
	for i := range result.Textures {
		t := &result.Textures[i]
		p.uniformByName[t.Name] = &uniformEntry{texture: t}
	}
}

// DeleteProgram flags p destroyed and drops its cached uniform buffers.
func (c *Context) DeleteProgram(p *Program) {
	if p == nil {
		return
	}
	p.destroyed = true
	c.uniforms.Forget(p)
}

// UseProgram sets the current program. Calling it twice with the same
// program is indistinguishable from once (spec.md §8 idempotence).
func (c *Context) UseProgram(p *Program) {
	c.state.currentProgram = p
}

// GetAttribLocation returns the location assigned to a vertex-input
// variable by name, or -1 if unknown or the program isn't linked.
func (c *Context) GetAttribLocation(p *Program, name string) int {
	if p == nil || p.attribByName == nil {
		return -1
	}
	if a, ok := p.attribByName[name]; ok {
		return a.Location
	}
	return -1
}

// GetUniformLocation resolves a uniform by name to the opaque handle
// draw-time and uniformN calls consume, or nil if the program isn't
// linked or the name is unrecognized — both are absorbed silently per
// the legacy contract (spec.md §7). name may carry a nested access path
// (`u_lights[2].position`) into a struct or array uniform; the returned
// location's offset is resolved all the way down to the leaf's byte offset
// in the uniform struct (spec.md §8's nested-offset invariant).
func (c *Context) GetUniformLocation(p *Program, name string) *UniformLocation {
	if p == nil || p.uniformByName == nil {
		return nil
	}
	base, path := splitUniformPath(name)
	e, ok := p.uniformByName[base]
	if !ok {
		return nil
	}
	if e.texture != nil {
		if path != "" {
			return nil
		}
		return &UniformLocation{program: p, texture: e.texture}
	}
	if e.member == nil {
		return nil
	}
	offset, leaf, ok := resolveUniformPath(e.member.Type, e.member.Offset, path)
	if !ok {
		return nil
	}
	resolved := &translator.UniformMember{Name: name, Type: leaf, Offset: offset}
	return &UniformLocation{program: p, member: resolved}
}

// splitUniformPath separates a uniform access name into its top-level
// declaration name and the remaining `[i]`/`.field` path, e.g.
// "u_lights[2].position" splits into ("u_lights", "[2].position").
func splitUniformPath(name string) (base, path string) {
	i := strings.IndexAny(name, "[.")
	if i < 0 {
		return name, ""
	}
	return name[:i], name[i:]
}

// resolveUniformPath walks path ("" for the root itself) against t's shape,
// starting at baseOffset, accumulating the byte offset of each `[i]` index
// through typesreg.ArrayStride and each `.field` through
// typesreg.FieldOffset (spec.md §8). Returns false for an out-of-range
// index, an unknown field, or a path applied to a scalar.
func resolveUniformPath(t typesreg.Type, baseOffset int, path string) (offset int, leaf typesreg.Type, ok bool) {
	offset = baseOffset
	leaf = t
	for len(path) > 0 {
		switch path[0] {
		case '[':
			end := strings.IndexByte(path, ']')
			if end < 0 {
				return 0, typesreg.Type{}, false
			}
			idx, err := strconv.Atoi(path[1:end])
			if err != nil || leaf.Kind != typesreg.KindArray || idx < 0 || idx >= leaf.ArrayLen {
				return 0, typesreg.Type{}, false
			}
			offset += idx * typesreg.ArrayStride(*leaf.Elem)
			leaf = *leaf.Elem
			path = path[end+1:]
		case '.':
			rest := path[1:]
			end := strings.IndexAny(rest, "[.")
			var field string
			if end < 0 {
				field, path = rest, ""
			} else {
				field, path = rest[:end], rest[end:]
			}
			if leaf.Kind != typesreg.KindStruct {
				return 0, typesreg.Type{}, false
			}
			idx := -1
			for i, f := range leaf.Fields {
				if f.Name == field {
					idx = i
					break
				}
			}
			if idx < 0 {
				return 0, typesreg.Type{}, false
			}
			offset += typesreg.FieldOffset(leaf.Fields, idx)
			leaf = leaf.Fields[idx].Type
		default:
			return 0, typesreg.Type{}, false
		}
	}
	return offset, leaf, true
}

// GetProgramParameter answers LINK_STATUS, ACTIVE_ATTRIBUTES,
// ACTIVE_UNIFORMS, ATTACHED_SHADERS, DELETE_STATUS and VALIDATE_STATUS
// (spec.md §6). VALIDATE_STATUS mirrors LINK_STATUS: this core performs
// no separate validateProgram pass.
func (c *Context) GetProgramParameter(p *Program, pname Enum) any {
	if p == nil {
		return nil
	}
	switch pname {
	case LINK_STATUS, VALIDATE_STATUS:
		return p.Linked()
	case ACTIVE_ATTRIBUTES:
		if p.compiled == nil {
			return int32(0)
		}
		return int32(len(p.compiled.Attributes))
	case ACTIVE_UNIFORMS:
		if p.compiled == nil {
			return int32(0)
		}
		return int32(len(p.uniformByName))
	case ATTACHED_SHADERS:
		n := 0
		if p.vertex != nil {
			n++
		}
		if p.fragment != nil {
			n++
		}
		return int32(n)
	case DELETE_STATUS:
		return p.destroyed
	default:
		c.setError(INVALID_ENUM)
		return nil
	}
}

// GetShaderParameter answers COMPILE_STATUS (always true — compileShader
// never fails on its own, per spec.md §6), SHADER_TYPE and DELETE_STATUS.
func (c *Context) GetShaderParameter(s *Shader, pname Enum) any {
	if s == nil {
		return nil
	}
	switch pname {
	case COMPILE_STATUS:
		return true
	case SHADER_TYPE:
		if s.stage == translator.StageVertex {
			return Enum(VERTEX_SHADER)
		}
		return Enum(FRAGMENT_SHADER)
	case DELETE_STATUS:
		return s.destroyed
	default:
		c.setError(INVALID_ENUM)
		return nil
	}
}

// GetShaderInfoLog always returns "" — shader compilation never fails on
// its own; translation errors surface through getProgramInfoLog after
// linkProgram (spec.md §4.3.7).
func (c *Context) GetShaderInfoLog(s *Shader) string { return "" }

// GetProgramInfoLog returns the accumulated translation errors from the
// last linkProgram call, empty if it succeeded or was never attempted.
func (c *Context) GetProgramInfoLog(p *Program) string {
	if p == nil {
		return ""
	}
	return p.infoLog
}

// ShaderPrecisionFormat is getShaderPrecisionFormat's fixed return value
// (spec.md §6): range exponents and precision bits, the same for every
// shader stage and precision qualifier this core is asked about — whether
// these should instead reflect device limits is an open question
// (spec.md §9).
type ShaderPrecisionFormat struct {
	RangeMin, RangeMax, Precision int
}

// GetShaderPrecisionFormat returns the fixed precision constants spec.md
// §6 mandates: float 127/127/23, int 31/30/0.
func (c *Context) GetShaderPrecisionFormat(shaderType, precisionType Enum) ShaderPrecisionFormat {
	switch precisionType {
	case 0x8DF3, 0x8DF4, 0x8DF5: // LOW_INT, MEDIUM_INT, HIGH_INT
		return ShaderPrecisionFormat{RangeMin: 31, RangeMax: 30, Precision: 0}
	default: // LOW_FLOAT, MEDIUM_FLOAT, HIGH_FLOAT
		return ShaderPrecisionFormat{RangeMin: 127, RangeMax: 127, Precision: 23}
	}
}
