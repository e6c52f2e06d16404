// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parser is a hand-written recursive-descent parser that turns
// GLSL ES source text into the AST node kinds internal/glsl/ast defines,
// fulfilling the "GLSL Parser" contract of spec.md §4.2. No GLSL/WGSL
// parsing library appears anywhere in the retrieval pack (see DESIGN.md),
// so this is new code written in the teacher's plain-function style.
package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/byegl/internal/glsl/ast"
	"github.com/gogpu/byegl/internal/glsl/lexer"
)

// qualifierKeywords are the storage/parameter qualifiers spec.md §4.2
// enumerates.
var qualifierKeywords = map[string]ast.Qualifier{
	"attribute": ast.QualAttribute,
	"varying":   ast.QualVarying,
	"uniform":   ast.QualUniform,
	"const":     ast.QualConst,
	"in":        ast.QualIn,
	"out":       ast.QualOut,
	"inout":     ast.QualInOut,
}

var precisionKeywords = map[string]bool{
	"lowp": true, "mediump": true, "highp": true,
}

// Error is one parse error, carrying the position it occurred at so the
// translator can fold it into a program's info log with a line reference.
type Error struct {
	Pos ast.Pos
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Col, e.Msg)
}

// Parser holds the token stream and accumulated errors for one shader's
// source text.
type Parser struct {
	lex    *lexer.Lexer
	tok    lexer.Token
	peeked *lexer.Token
	errs   []error
}

// Parse lexes and parses src into a Shader AST. Parse errors are collected
// rather than aborting immediately, so the caller sees as many problems as
// possible in one pass (spec.md §4.3.7: parsing errors accumulate into the
// program's info log).
func Parse(src string) (*ast.Shader, []error) {
	p := &Parser{lex: lexer.New(src)}
	p.next()

	shader := &ast.Shader{}
	for p.tok.Kind != lexer.EOF {
		if stmt := p.parseStmt(); stmt != nil {
			shader.Stmts = append(shader.Stmts, stmt)
		} else {
			// Avoid an infinite loop on a token we can't start a statement
			// with: consume it and keep going so later statements still
			// get a chance to parse.
			if p.tok.Kind != lexer.EOF {
				p.next()
			}
		}
	}
	return shader, p.errs
}

func (p *Parser) next() {
	if p.peeked != nil {
		p.tok = *p.peeked
		p.peeked = nil
		return
	}
	p.tok = p.lex.Next()
}

func (p *Parser) peek() lexer.Token {
	if p.peeked == nil {
		t := p.lex.Next()
		p.peeked = &t
	}
	return *p.peeked
}

func (p *Parser) pos() ast.Pos { return ast.Pos{Line: p.tok.Line, Col: p.tok.Col} }

func (p *Parser) errorf(format string, args ...any) {
	p.errs = append(p.errs, &Error{Pos: p.pos(), Msg: fmt.Sprintf(format, args...)})
}

func (p *Parser) expectPunct(s string) bool {
	if p.tok.Kind == lexer.Punct && p.tok.Text == s {
		p.next()
		return true
	}
	p.errorf("expected %q, got %q", s, p.tok.Text)
	return false
}

func (p *Parser) isPunct(s string) bool {
	return p.tok.Kind == lexer.Punct && p.tok.Text == s
}

func (p *Parser) isIdent(s string) bool {
	return p.tok.Kind == lexer.Ident && p.tok.Text == s
}

// ---- statements ----

func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.tok.Kind == lexer.PreprocessorLine:
		return p.parsePreprocessor()
	case p.isIdent("struct"):
		return p.parseStructDecl()
	case p.isIdent("precision"):
		return p.parsePrecision()
	case p.isIdent("return"):
		return p.parseReturn()
	case p.isIdent("if"):
		return p.parseIf()
	case p.isIdent("for"):
		return p.parseFor()
	case p.isPunct("{"):
		return p.parseBlock()
	case p.startsDeclaration():
		return p.parseDeclaration()
	case p.tok.Kind == lexer.EOF:
		return nil
	default:
		return p.parseExprStmt()
	}
}

// startsDeclaration reports whether the upcoming tokens look like a
// qualifier list or a type name followed by an identifier — the shape of a
// variable or function declaration — as opposed to a bare expression
// statement.
func (p *Parser) startsDeclaration() bool {
	if p.tok.Kind != lexer.Ident {
		return false
	}
	if _, ok := qualifierKeywords[p.tok.Text]; ok {
		return true
	}
	if precisionKeywords[p.tok.Text] {
		return true
	}
	// A bare type name (builtin or user struct) followed by an identifier
	// is a declaration; followed by '(' with the name itself matching a
	// known constructor-like call would be an expression, but since
	// constructors are only ever call expressions used as values (never
	// statements with this exact shape: Ident Ident), checking the second
	// token is Ident is a correct-enough heuristic for this grammar.
	return p.peek().Kind == lexer.Ident
}

func (p *Parser) parsePreprocessor() ast.Stmt {
	line := p.tok.Text
	pos := p.pos()
	p.next()

	body := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#"))
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return &ast.PreprocessorDirective{Base: ast.Base{Pos: pos}, Kind: "empty"}
	}

	directive := &ast.PreprocessorDirective{Kind: fields[0]}
	directive.Pos = pos

	rest := strings.TrimSpace(strings.TrimPrefix(body, fields[0]))
	switch fields[0] {
	case "version":
		directive.Kind = "version"
	case "define":
		return parseDefine(directive, rest, pos)
	case "ifdef":
		directive.Kind = "ifdef"
		directive.Name = rest
	case "ifndef":
		directive.Kind = "ifndef"
		directive.Name = rest
	case "if":
		directive.Kind = "if"
		directive.Cond, _ = ParseExprString(rest)
	case "elif":
		directive.Kind = "elif"
		directive.Cond, _ = ParseExprString(rest)
	case "else":
		directive.Kind = "else"
	case "endif":
		directive.Kind = "endif"
	default:
		directive.Kind = fields[0]
		directive.Body = rest
	}
	return directive
}

func parseDefine(d *ast.PreprocessorDirective, rest string, pos ast.Pos) ast.Stmt {
	d.Pos = pos
	rest = strings.TrimSpace(rest)
	name := rest
	body := ""
	for i, r := range rest {
		if r == '(' || r == ' ' || r == '\t' {
			name = rest[:i]
			body = strings.TrimSpace(rest[i:])
			break
		}
	}
	d.Name = name

	if strings.HasPrefix(body, "(") {
		d.Kind = "define_function"
		end := strings.Index(body, ")")
		if end < 0 {
			d.Body = body
			return d
		}
		params := strings.Split(body[1:end], ",")
		for i := range params {
			params[i] = strings.TrimSpace(params[i])
		}
		if len(params) == 1 && params[0] == "" {
			params = nil
		}
		d.Params = params
		d.Body = strings.TrimSpace(body[end+1:])
	} else {
		d.Kind = "define_object"
		d.Body = body
	}
	return d
}

func (p *Parser) parseStructDecl() ast.Stmt {
	pos := p.pos()
	p.next() // "struct"
	name := p.tok.Text
	p.next()
	p.expectPunct("{")
	var fields []ast.StructField
	for !p.isPunct("}") && p.tok.Kind != lexer.EOF {
		ty := p.parseTypeSpec()
		fname := p.tok.Text
		p.next()
		ty = p.maybeParseArraySuffix(ty)
		fields = append(fields, ast.StructField{Type: ty, Name: fname})
		p.expectPunct(";")
	}
	p.expectPunct("}")
	p.expectPunct(";")
	return &ast.StructDecl{Base: ast.Base{Pos: pos}, Name: name, Fields: fields}
}

func (p *Parser) parsePrecision() ast.Stmt {
	pos := p.pos()
	p.next() // "precision"
	precision := p.tok.Text
	p.next()
	typ := p.tok.Text
	p.next()
	p.expectPunct(";")
	return &ast.PrecisionStmt{Base: ast.Base{Pos: pos}, Precision: precision, Type: typ}
}

func (p *Parser) parseTypeSpec() ast.TypeSpec {
	ts := ast.TypeSpec{Name: p.tok.Text, ExplicitLoc: -1}
	p.next()
	return ts
}

func (p *Parser) maybeParseArraySuffix(ts ast.TypeSpec) ast.TypeSpec {
	if p.isPunct("[") {
		p.next()
		if p.tok.Kind == lexer.IntLit {
			n, _ := strconv.Atoi(p.tok.Text)
			ts.ArrayLen = n
			ts.IsArray = true
			p.next()
		}
		p.expectPunct("]")
	}
	return ts
}

// parseDeclaration parses a qualifier/precision/type-led line that is
// either one or more variable declarators or a single function
// declaration (spec.md §4.2, §4.3.6).
func (p *Parser) parseDeclaration() ast.Stmt {
	pos := p.pos()
	var quals []ast.Qualifier
	for p.tok.Kind == lexer.Ident {
		if q, ok := qualifierKeywords[p.tok.Text]; ok {
			quals = append(quals, q)
			p.next()
			continue
		}
		break
	}
	precision := ""
	if p.tok.Kind == lexer.Ident && precisionKeywords[p.tok.Text] {
		precision = p.tok.Text
		p.next()
	}
	ty := p.parseTypeSpec()
	ty = p.maybeParseArraySuffix(ty)

	name := p.tok.Text
	p.next()

	if p.isPunct("(") {
		return p.parseFuncDecl(pos, ty, name)
	}

	return p.parseVarDeclarators(pos, quals, precision, ty, name)
}

func (p *Parser) parseVarDeclarators(pos ast.Pos, quals []ast.Qualifier, precision string, ty ast.TypeSpec, name string) ast.Stmt {
	first := p.parseOneVarDecl(pos, quals, precision, ty, name)
	// Multiple comma-separated declarators share type/qualifiers; the
	// caller only gets the first back as a Stmt, so subsequent
	// declarators are folded into a synthetic Block to keep one Stmt per
	// parseStmt call while preserving declaration order.
	var extra []ast.Stmt
	for p.isPunct(",") {
		p.next()
		dname := p.tok.Text
		dpos := p.pos()
		p.next()
		dty := ty
		dty = p.maybeParseArraySuffix(dty)
		extra = append(extra, p.parseOneVarDecl(dpos, quals, precision, dty, dname))
	}
	p.expectPunct(";")
	if len(extra) == 0 {
		return first
	}
	return &ast.Block{Base: ast.Base{Pos: pos}, Stmts: append([]ast.Stmt{first}, extra...)}
}

func (p *Parser) parseOneVarDecl(pos ast.Pos, quals []ast.Qualifier, precision string, ty ast.TypeSpec, name string) ast.Stmt {
	ty = p.maybeParseArraySuffix(ty)
	var init ast.Expr
	if p.isPunct("=") {
		p.next()
		init = p.parseExpr()
	}
	return &ast.VarDecl{Base: ast.Base{Pos: pos}, Qualifiers: quals, Precision: precision, Type: ty, Name: name, Init: init}
}

func (p *Parser) parseFuncDecl(pos ast.Pos, ret ast.TypeSpec, name string) ast.Stmt {
	p.expectPunct("(")
	var params []ast.Param
	for !p.isPunct(")") && p.tok.Kind != lexer.EOF {
		if p.isIdent("void") && p.peek().Kind == lexer.Punct && p.peek().Text == ")" {
			p.next()
			break
		}
		dir := ""
		if p.isIdent("out") || p.isIdent("inout") || p.isIdent("in") {
			dir = p.tok.Text
			if dir == "in" {
				dir = ""
			}
			p.next()
		}
		if p.tok.Kind == lexer.Ident && precisionKeywords[p.tok.Text] {
			p.next()
		}
		pty := p.parseTypeSpec()
		pname := ""
		if p.tok.Kind == lexer.Ident {
			pname = p.tok.Text
			p.next()
		}
		pty = p.maybeParseArraySuffix(pty)
		params = append(params, ast.Param{Direction: dir, Type: pty, Name: pname})
		if p.isPunct(",") {
			p.next()
		}
	}
	p.expectPunct(")")

	var body *ast.Block
	if p.isPunct("{") {
		body = p.parseBlock().(*ast.Block)
	} else {
		p.expectPunct(";")
	}
	return &ast.FuncDecl{Base: ast.Base{Pos: pos}, ReturnType: ret, Name: name, Params: params, Body: body}
}

func (p *Parser) parseBlock() ast.Stmt {
	pos := p.pos()
	p.expectPunct("{")
	var stmts []ast.Stmt
	for !p.isPunct("}") && p.tok.Kind != lexer.EOF {
		if s := p.parseStmt(); s != nil {
			stmts = append(stmts, s)
		} else if p.tok.Kind != lexer.EOF {
			p.next()
		}
	}
	p.expectPunct("}")
	return &ast.Block{Base: ast.Base{Pos: pos}, Stmts: stmts}
}

func (p *Parser) parseReturn() ast.Stmt {
	pos := p.pos()
	p.next()
	var x ast.Expr
	if !p.isPunct(";") {
		x = p.parseExpr()
	}
	p.expectPunct(";")
	return &ast.ReturnStmt{Base: ast.Base{Pos: pos}, X: x}
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.pos()
	p.next()
	p.expectPunct("(")
	cond := p.parseExpr()
	p.expectPunct(")")
	then := p.parseStmt()
	var els ast.Stmt
	if p.isIdent("else") {
		p.next()
		els = p.parseStmt()
	}
	return &ast.IfStmt{Base: ast.Base{Pos: pos}, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseFor() ast.Stmt {
	pos := p.pos()
	p.next()
	p.expectPunct("(")
	var init ast.Stmt
	if !p.isPunct(";") {
		init = p.parseStmt()
	} else {
		p.next()
	}
	var cond ast.Expr
	if !p.isPunct(";") {
		cond = p.parseExpr()
	}
	p.expectPunct(";")
	var post ast.Expr
	if !p.isPunct(")") {
		post = p.parseExpr()
	}
	p.expectPunct(")")
	body := p.parseStmt()
	return &ast.ForStmt{Base: ast.Base{Pos: pos}, Init: init, Cond: cond, Post: post, Body: body}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	pos := p.pos()
	x := p.parseExpr()
	p.expectPunct(";")
	return &ast.ExprStmt{Base: ast.Base{Pos: pos}, X: x}
}

// ---- expressions ----
//
// Precedence climbs, lowest to highest: assignment, conditional (ternary),
// logical-or, logical-and, equality, relational, additive, multiplicative,
// unary, postfix, primary. GLSL ES has no comma operator and no bitwise
// operators in the fragment of the language spec.md §4.2 scopes in, so
// those precedence levels are omitted.

func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignment()
}

var assignOps = map[string]ast.AssignOp{
	"=":  ast.AssignPlain,
	"+=": ast.AssignAdd,
	"-=": ast.AssignSub,
	"*=": ast.AssignMul,
	"/=": ast.AssignDiv,
}

func (p *Parser) parseAssignment() ast.Expr {
	pos := p.pos()
	lhs := p.parseConditional()
	if p.tok.Kind == lexer.Punct {
		if op, ok := assignOps[p.tok.Text]; ok {
			p.next()
			rhs := p.parseAssignment()
			return &ast.Assignment{Base: ast.Base{Pos: pos}, Op: op, LHS: lhs, RHS: rhs}
		}
	}
	return lhs
}

func (p *Parser) parseConditional() ast.Expr {
	pos := p.pos()
	cond := p.parseLogicalOr()
	if p.isPunct("?") {
		p.next()
		then := p.parseAssignment()
		p.expectPunct(":")
		els := p.parseAssignment()
		return &ast.Conditional{Base: ast.Base{Pos: pos}, Cond: cond, Then: then, Else: els}
	}
	return cond
}

func (p *Parser) parseLogicalOr() ast.Expr {
	pos := p.pos()
	x := p.parseLogicalAnd()
	for p.isPunct("||") {
		p.next()
		rhs := p.parseLogicalAnd()
		x = &ast.Logical{Base: ast.Base{Pos: pos}, Op: "||", LHS: x, RHS: rhs}
	}
	return x
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	pos := p.pos()
	x := p.parseEquality()
	for p.isPunct("&&") {
		p.next()
		rhs := p.parseEquality()
		x = &ast.Logical{Base: ast.Base{Pos: pos}, Op: "&&", LHS: x, RHS: rhs}
	}
	return x
}

func (p *Parser) parseEquality() ast.Expr {
	pos := p.pos()
	x := p.parseRelational()
	for p.isPunct("==") || p.isPunct("!=") {
		op := p.tok.Text
		p.next()
		rhs := p.parseRelational()
		x = &ast.Binary{Base: ast.Base{Pos: pos}, Op: op, LHS: x, RHS: rhs}
	}
	return x
}

func (p *Parser) parseRelational() ast.Expr {
	pos := p.pos()
	x := p.parseAdditive()
	for p.isPunct("<") || p.isPunct("<=") || p.isPunct(">") || p.isPunct(">=") {
		op := p.tok.Text
		p.next()
		rhs := p.parseAdditive()
		x = &ast.Binary{Base: ast.Base{Pos: pos}, Op: op, LHS: x, RHS: rhs}
	}
	return x
}

func (p *Parser) parseAdditive() ast.Expr {
	pos := p.pos()
	x := p.parseMultiplicative()
	for p.isPunct("+") || p.isPunct("-") {
		op := p.tok.Text
		p.next()
		rhs := p.parseMultiplicative()
		x = &ast.Binary{Base: ast.Base{Pos: pos}, Op: op, LHS: x, RHS: rhs}
	}
	return x
}

func (p *Parser) parseMultiplicative() ast.Expr {
	pos := p.pos()
	x := p.parseUnary()
	for p.isPunct("*") || p.isPunct("/") || p.isPunct("%") {
		op := p.tok.Text
		p.next()
		rhs := p.parseUnary()
		x = &ast.Binary{Base: ast.Base{Pos: pos}, Op: op, LHS: x, RHS: rhs}
	}
	return x
}

func (p *Parser) parseUnary() ast.Expr {
	pos := p.pos()
	if p.isPunct("-") || p.isPunct("!") || p.isPunct("+") {
		op := p.tok.Text
		p.next()
		x := p.parseUnary()
		return &ast.Unary{Base: ast.Base{Pos: pos}, Op: op, X: x}
	}
	if p.isPunct("++") || p.isPunct("--") {
		op := p.tok.Text
		p.next()
		x := p.parseUnary()
		return &ast.Update{Base: ast.Base{Pos: pos}, Op: op, Prefix: true, X: x}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	x := p.parsePrimary()
	for {
		pos := p.pos()
		switch {
		case p.isPunct("."):
			p.next()
			field := p.tok.Text
			p.next()
			x = &ast.Member{Base: ast.Base{Pos: pos}, X: x, Field: field}
		case p.isPunct("["):
			p.next()
			idx := p.parseExpr()
			p.expectPunct("]")
			x = &ast.ComputedMember{Base: ast.Base{Pos: pos}, X: x, Index: idx}
		case p.isPunct("++") || p.isPunct("--"):
			op := p.tok.Text
			p.next()
			x = &ast.Update{Base: ast.Base{Pos: pos}, Op: op, Prefix: false, X: x}
		default:
			return x
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	pos := p.pos()
	switch {
	case p.isPunct("("):
		p.next()
		x := p.parseExpr()
		p.expectPunct(")")
		return x
	case p.tok.Kind == lexer.IntLit:
		lit := &ast.Literal{Base: ast.Base{Pos: pos}, Kind: ast.LiteralInt, Text: p.tok.Text}
		p.next()
		return lit
	case p.tok.Kind == lexer.UintLit:
		lit := &ast.Literal{Base: ast.Base{Pos: pos}, Kind: ast.LiteralUint, Text: p.tok.Text}
		p.next()
		return lit
	case p.tok.Kind == lexer.FloatLit:
		lit := &ast.Literal{Base: ast.Base{Pos: pos}, Kind: ast.LiteralFloat, Text: p.tok.Text}
		p.next()
		return lit
	case p.tok.Kind == lexer.BoolLit:
		lit := &ast.Literal{Base: ast.Base{Pos: pos}, Kind: ast.LiteralBool, Text: p.tok.Text}
		p.next()
		return lit
	case p.tok.Kind == lexer.Ident:
		name := p.tok.Text
		p.next()
		if p.isPunct("(") {
			return p.parseCall(pos, name)
		}
		return &ast.Ident{Base: ast.Base{Pos: pos}, Name: name}
	default:
		p.errorf("unexpected token %q", p.tok.Text)
		tok := p.tok
		if tok.Kind != lexer.EOF {
			p.next()
		}
		return &ast.Ident{Base: ast.Base{Pos: pos}, Name: tok.Text}
	}
}

func (p *Parser) parseCall(pos ast.Pos, callee string) ast.Expr {
	p.expectPunct("(")
	var args []ast.Expr
	for !p.isPunct(")") && p.tok.Kind != lexer.EOF {
		if p.isIdent("void") && p.peek().Kind == lexer.Punct && p.peek().Text == ")" {
			p.next()
			break
		}
		args = append(args, p.parseAssignment())
		if p.isPunct(",") {
			p.next()
		}
	}
	p.expectPunct(")")
	return &ast.Call{Base: ast.Base{Pos: pos}, Callee: callee, Args: args}
}

// ParseExprString parses a single standalone expression, such as the
// condition text of a `#if`/`#elif` preprocessor directive (spec.md
// §4.3.1), which the lexer/parser never sees as part of the main token
// stream since PreprocessorLine is lexed as one opaque line.
func ParseExprString(src string) (ast.Expr, []error) {
	p := &Parser{lex: lexer.New(src)}
	p.next()
	if p.tok.Kind == lexer.EOF {
		return nil, nil
	}
	x := p.parseExpr()
	return x, p.errs
}
