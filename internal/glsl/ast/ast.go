// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ast defines the node kinds the GLSL parser contract (spec.md
// §4.2) produces: preprocessor directives, declarations, statements and
// expressions. The parser (internal/glsl/parser) is the sole producer of
// these nodes; internal/translator is their sole consumer.
package ast

// Pos is a source offset, used only for diagnostics (info-log messages and
// the translator's ancestor trace).
type Pos struct {
	Line, Col int
}

// Node is implemented by every AST node. It carries nothing but a position
// so the translator can report where a lowering failure occurred.
type Node interface {
	Position() Pos
}

// Base is embedded by every concrete node to satisfy Node. It is exported
// solely so internal/glsl/parser can set a node's position in a keyed
// composite literal; callers otherwise never touch it directly.
type Base struct{ Pos Pos }

func (b Base) Position() Pos { return b.Pos }

// ---- Top-level: a shader is a flat list of statements ----

// Shader is a full translation unit: the flat statement list a vertex or
// fragment shader's source text parses to.
type Shader struct {
	Stmts []Stmt
}

// ---- Qualifiers ----

// Qualifier is one storage/parameter qualifier keyword. A declaration may
// carry zero or more of these (spec.md §4.2).
type Qualifier string

// The qualifier keywords the parser recognizes.
const (
	QualAttribute Qualifier = "attribute"
	QualVarying   Qualifier = "varying"
	QualUniform   Qualifier = "uniform"
	QualConst     Qualifier = "const"
	QualIn        Qualifier = "in"
	QualOut       Qualifier = "out"
	QualInOut     Qualifier = "inout"
)

// TypeSpec names a type as written in source: a bare identifier ("float",
// "vec3", "sampler2D", or a user struct name), optionally with a
// fixed-size array suffix and an explicit layout(location=N) binding.
type TypeSpec struct {
	Name          string
	ArrayLen      int  // 0 if not an array
	IsArray       bool
	ExplicitLoc   int  // -1 if no layout(location=N) qualifier
	HasExplicit   bool
}

// ---- Statements ----

// Stmt is implemented by every statement node kind from spec.md §4.2:
// preprocessor directive, struct declaration, variable declaration,
// function declaration, precision qualifier, expression statement, block,
// return, if, for.
type Stmt interface {
	Node
	stmtNode()
}

// PreprocessorDirective is one #version/#define/#if family directive.
// Kind is one of "version", "define_object", "define_function", "if",
// "ifdef", "ifndef", "elif", "else", "endif", or "empty" for a bare `#`.
type PreprocessorDirective struct {
	Base
	Kind   string
	Name   string   // macro/identifier name, for define*/ifdef/ifndef
	Params []string // parameter names, for define_function
	Body   string   // macro replacement text, for define*
	Cond   Expr     // parsed condition, for if/elif (nil otherwise)
}

func (*PreprocessorDirective) stmtNode() {}

// StructDecl declares a named struct type with ordered fields.
type StructDecl struct {
	Base
	Name   string
	Fields []StructField
}

func (*StructDecl) stmtNode() {}

// StructField is one member of a StructDecl.
type StructField struct {
	Type TypeSpec
	Name string
}

// VarDecl declares one or more variables sharing a type and qualifier set.
// Multiple comma-separated declarators (`uniform float a, b;`) are split by
// the parser into one VarDecl per declarator so each has its own Init.
type VarDecl struct {
	Base
	Qualifiers []Qualifier
	Precision  string // "lowp"/"mediump"/"highp", or "" if unspecified
	Type       TypeSpec
	Name       string
	Init       Expr // nil if no initializer
}

func (*VarDecl) stmtNode() {}

// FuncDecl declares a function: a return type, name, parameters, and a
// body (nil for a prototype-only declaration ending in `;`).
type FuncDecl struct {
	Base
	ReturnType TypeSpec
	Name       string
	Params     []Param
	Body       *Block
}

func (*FuncDecl) stmtNode() {}

// Param is one function parameter. Direction is "" (in, the default),
// "out" or "inout" per spec.md §4.3.6.
type Param struct {
	Direction string
	Type      TypeSpec
	Name      string
}

// PrecisionStmt is a `precision mediump float;`-style statement.
type PrecisionStmt struct {
	Base
	Precision string
	Type      string
}

func (*PrecisionStmt) stmtNode() {}

// ExprStmt is an expression evaluated for its side effect.
type ExprStmt struct {
	Base
	X Expr
}

func (*ExprStmt) stmtNode() {}

// Block is a brace-delimited statement list, used for function bodies and
// if/for bodies.
type Block struct {
	Base
	Stmts []Stmt
}

func (*Block) stmtNode() {}

// ReturnStmt is a `return` or `return <expr>;`.
type ReturnStmt struct {
	Base
	X Expr // nil for a bare `return;`
}

func (*ReturnStmt) stmtNode() {}

// IfStmt is an `if (cond) then [else else_]`.
type IfStmt struct {
	Base
	Cond Expr
	Then Stmt
	Else Stmt // nil if no else clause
}

func (*IfStmt) stmtNode() {}

// ForStmt is a C-style `for (init; cond; post) body`. Each clause may be
// nil (an empty clause).
type ForStmt struct {
	Base
	Init Stmt
	Cond Expr
	Post Expr
	Body Stmt
}

func (*ForStmt) stmtNode() {}

// ---- Expressions ----

// Expr is implemented by every expression node kind from spec.md §4.2:
// identifier, literal, call, assignment, binary, unary, update,
// conditional, logical, member, computed member, array-specifier.
type Expr interface {
	Node
	exprNode()
}

// Ident is a bare identifier reference.
type Ident struct {
	Base
	Name string
}

func (*Ident) exprNode() {}

// LiteralKind distinguishes the numeric/boolean literal forms.
type LiteralKind int

const (
	LiteralInt LiteralKind = iota
	LiteralUint
	LiteralFloat
	LiteralBool
)

// Literal is a numeric or boolean constant.
type Literal struct {
	Base
	Kind LiteralKind
	Text string // original source spelling, preserved for exact re-emission
}

func (*Literal) exprNode() {}

// Call is a function call or a type constructor call (`vec3(...)`,
// `mat3(m4)` — the translator tells these apart by whether Callee names a
// type in the type registry).
type Call struct {
	Base
	Callee string
	Args   []Expr
}

func (*Call) exprNode() {}

// AssignOp is the operator of an Assignment.
type AssignOp string

// Assignment operators the parser recognizes.
const (
	AssignPlain  AssignOp = "="
	AssignAdd    AssignOp = "+="
	AssignSub    AssignOp = "-="
	AssignMul    AssignOp = "*="
	AssignDiv    AssignOp = "/="
)

// Assignment is `lhs op rhs`.
type Assignment struct {
	Base
	Op  AssignOp
	LHS Expr
	RHS Expr
}

func (*Assignment) exprNode() {}

// Binary is a binary arithmetic or comparison expression.
type Binary struct {
	Base
	Op   string // "+","-","*","/","%","<","<=",">",">=","==","!="
	LHS  Expr
	RHS  Expr
}

func (*Binary) exprNode() {}

// Logical is `&&` or `||`, kept distinct from Binary because GLSL's
// short-circuit scalar semantics need the `all(...)` reduction described in
// spec.md §4.3.5 when they appear in a scalar-bool context.
type Logical struct {
	Base
	Op  string // "&&" or "||"
	LHS Expr
	RHS Expr
}

func (*Logical) exprNode() {}

// Unary is a prefix `-`, `!` or `+`.
type Unary struct {
	Base
	Op string
	X  Expr
}

func (*Unary) exprNode() {}

// Update is a pre/post increment or decrement.
type Update struct {
	Base
	Op     string // "++" or "--"
	Prefix bool
	X      Expr
}

func (*Update) exprNode() {}

// Conditional is the ternary `cond ? then : else_`.
type Conditional struct {
	Base
	Cond Expr
	Then Expr
	Else Expr
}

func (*Conditional) exprNode() {}

// Member is `x.field` (also used for swizzles: `x.xyz`).
type Member struct {
	Base
	X     Expr
	Field string
}

func (*Member) exprNode() {}

// ComputedMember is `x[index]`.
type ComputedMember struct {
	Base
	X     Expr
	Index Expr
}

func (*ComputedMember) exprNode() {}

// ArraySpecifier is a bracketed array-length suffix on a type name, used in
// constructor calls like `float[3](1.0, 2.0, 3.0)`.
type ArraySpecifier struct {
	Base
	ElemType TypeSpec
	Len      Expr
	Elems    []Expr
}

func (*ArraySpecifier) exprNode() {}
