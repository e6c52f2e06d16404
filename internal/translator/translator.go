// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package translator

import (
	"fmt"
	"strings"

	"github.com/gogpu/byegl/internal/glsl/ast"
	"github.com/gogpu/byegl/internal/glsl/parser"
	"github.com/gogpu/byegl/internal/typesreg"
)

// Translate lowers vertexSrc and fragmentSrc (GLSL ES #version 100 or 300
// es source text) to one WGSL module, per spec.md §4.3. It never returns a
// hard Go error for a malformed shader — every parse failure and
// unsupported construct is instead collected into the returned error
// slice, which the caller (Program.link) folds into the program's info
// log (spec.md §4.3.7); a non-empty slice means translation failed and
// Result is nil.
func Translate(vertexSrc, fragmentSrc string, opts Options) (*Result, []error) {
	var errs []error

	vAST, vParseErrs := parser.Parse(vertexSrc)
	fAST, fParseErrs := parser.Parse(fragmentSrc)
	errs = append(errs, tagStage(vParseErrs, StageVertex)...)
	errs = append(errs, tagStage(fParseErrs, StageFragment)...)

	vStmts, vppErrs := Expand(vAST.Stmts)
	fStmts, fppErrs := Expand(fAST.Stmts)
	errs = append(errs, tagStage(vppErrs, StageVertex)...)
	errs = append(errs, tagStage(fppErrs, StageFragment)...)
	if len(errs) != 0 {
		return nil, errs
	}

	st := newSymtab()
	var structOrder []string
	for _, stmts := range [][]ast.Stmt{vStmts, fStmts} {
		for _, s := range stmts {
			if sd, ok := s.(*ast.StructDecl); ok {
				if _, exists := st.structs[sd.Name]; !exists {
					structOrder = append(structOrder, sd.Name)
				}
				st.registerStruct(sd)
			}
		}
	}

	vErrs := &errorLog{stage: StageVertex}
	fErrs := &errorLog{stage: StageFragment}
	binds := assignLocations(vStmts, fStmts, st, vErrs)

	for _, a := range binds.Attributes {
		st.declare(a.Name, a.Type)
	}
	for _, name := range binds.VaryingOrder {
		st.declare(name, binds.VaryingType[name])
	}
	if binds.UniformBuffer != nil {
		for _, m := range binds.UniformBuffer.Members {
			st.declare(m.Name, m.Type)
		}
	}
	for _, t := range binds.Textures {
		st.declare(t.Name, t.Type)
	}
	st.declare("gl_Position", typesreg.Scalar(typesreg.KindVec4))
	st.declare("gl_FragColor", typesreg.Scalar(typesreg.KindVec4))
	st.declare("gl_FragDepth", typesreg.Scalar(typesreg.KindFloat))
	st.declare("gl_FrontFacing", typesreg.Scalar(typesreg.KindBool))

	fragOutputName := ""
	fragOutputType := typesreg.Scalar(typesreg.KindVec4)
	for _, s := range fStmts {
		decl, ok := s.(*ast.VarDecl)
		if !ok {
			continue
		}
		t, ok := st.resolveType(decl.Type)
		if ok && classify(decl, StageFragment, t.Kind.IsSampler()) == RoleFragmentOutput {
			fragOutputName = decl.Name
			fragOutputType = t
			st.declare(decl.Name, t)
			break
		}
	}

	helpers := &helperSet{}

	vDirs := buildFuncDirTable(vStmts)
	fDirs := buildFuncDirTable(fStmts)

	vCtx := &lowerCtx{stage: StageVertex, scope: st, binds: binds, dirs: vDirs, helpers: helpers, errs: vErrs}
	fCtx := &lowerCtx{stage: StageFragment, scope: st, binds: binds, dirs: fDirs, helpers: helpers, errs: fErrs}

	vertexFuncs := emitFunctions(vStmts, "_vertex_main_impl", vCtx)
	fragmentFuncs := emitFunctions(fStmts, "_fragment_main_impl", fCtx)

	errs = append(errs, vErrs.errs...)
	errs = append(errs, fErrs.errs...)
	if len(errs) != 0 {
		return nil, errs
	}

	var wgsl strings.Builder
	wgsl.WriteString(emitUniformStruct(binds.UniformBuffer))
	wgsl.WriteString(emitTextureBindings(binds.Textures))
	wgsl.WriteString(emitProxies(binds.Attributes, binds.VaryingOrder, binds.VaryingType, fragOutputName, fragOutputType))
	wgsl.WriteString(emitUserStructs(structOrder, st))
	wgsl.WriteString(emitHelpers(helpers))
	wgsl.WriteString(vertexFuncs)
	wgsl.WriteString(fragmentFuncs)
	wgsl.WriteString(emitStageStructs(binds.Attributes, binds.VaryingOrder, binds.VaryingLocation, binds.VaryingType))
	wgsl.WriteString(emitEntryFunctions(binds.Attributes, binds.VaryingOrder, fragOutputName))

	result := &Result{
		WGSL:          wgsl.String(),
		Attributes:    binds.Attributes,
		UniformBuffer: binds.UniformBuffer,
		Textures:      binds.Textures,
	}

	if opts.ValidateWGSL {
		if diag, ok := validate(result.WGSL); !ok {
			result.NagaDiagnostics = diag
			return nil, append(errs, fmt.Errorf("wgsl validation failed: %s", diag))
		}
	}

	return result, nil
}

func tagStage(errs []error, stage Stage) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = fmt.Errorf("%s shader: %w", stage, e)
	}
	return out
}
