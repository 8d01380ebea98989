package ast

import "github.com/gotriangle/triparse/source"

// Declaration is the closed set of declaration forms.
type Declaration interface {
	Pos() source.Position
	declarationNode()
}

// ConstDeclaration is "const Identifier ~ Expression" (written with IS in
// the surface syntax), and is also synthesized by the parser inside a
// ForCommand to bind the loop variable to its lower bound.
type ConstDeclaration struct {
	Identifier *Identifier
	Value      Expression
	Position   source.Position
}

func (d *ConstDeclaration) Pos() source.Position { return d.Position }
func (*ConstDeclaration) declarationNode()       {}

// VarDeclaration is "var Identifier : TypeDenoter".
type VarDeclaration struct {
	Identifier *Identifier
	Type       TypeDenoter
	Position   source.Position
}

func (d *VarDeclaration) Pos() source.Position { return d.Position }
func (*VarDeclaration) declarationNode()       {}

// InitVarDeclaration is "var Identifier := Expression" — a variable
// declaration whose type is inferred from, and whose value is, Value.
type InitVarDeclaration struct {
	Identifier *Identifier
	Value      Expression
	Position   source.Position
}

func (d *InitVarDeclaration) Pos() source.Position { return d.Position }
func (*InitVarDeclaration) declarationNode()       {}

// ProcDeclaration is "proc Identifier ( FormalParameterSequence ) ~ SingleCommand".
type ProcDeclaration struct {
	Identifier *Identifier
	Parameters FormalParameterSequence
	Command    Command
	Position   source.Position
}

func (d *ProcDeclaration) Pos() source.Position { return d.Position }
func (*ProcDeclaration) declarationNode()       {}

// FuncDeclaration is "func Identifier ( FormalParameterSequence ) : TypeDenoter ~ Expression".
type FuncDeclaration struct {
	Identifier *Identifier
	Parameters FormalParameterSequence
	Type       TypeDenoter
	Expression Expression
	Position   source.Position
}

func (d *FuncDeclaration) Pos() source.Position { return d.Position }
func (*FuncDeclaration) declarationNode()       {}

// TypeDeclaration is "type Identifier ~ TypeDenoter".
type TypeDeclaration struct {
	Identifier *Identifier
	Type       TypeDenoter
	Position   source.Position
}

func (d *TypeDeclaration) Pos() source.Position { return d.Position }
func (*TypeDeclaration) declarationNode()       {}

// UserUnaryOperatorDeclaration is "func Operator ( FormalParameterSequence )
// : TypeDenoter ~ Expression" where the parameter sequence has zero or one
// parameters.
type UserUnaryOperatorDeclaration struct {
	Operator   *Operator
	Parameters FormalParameterSequence
	Type       TypeDenoter
	Expression Expression
	Position   source.Position
}

func (d *UserUnaryOperatorDeclaration) Pos() source.Position { return d.Position }
func (*UserUnaryOperatorDeclaration) declarationNode()       {}

// UserBinaryOperatorDeclaration is the same production with exactly two
// parameters.
type UserBinaryOperatorDeclaration struct {
	Operator   *Operator
	Parameters FormalParameterSequence
	Type       TypeDenoter
	Expression Expression
	Position   source.Position
}

func (d *UserBinaryOperatorDeclaration) Pos() source.Position { return d.Position }
func (*UserBinaryOperatorDeclaration) declarationNode()       {}

// SequentialDeclaration is "Declaration1 ; Declaration2", built
// left-associated the same way SequentialCommand is.
type SequentialDeclaration struct {
	First, Second Declaration
	Position      source.Position
}

func (d *SequentialDeclaration) Pos() source.Position { return d.Position }
func (*SequentialDeclaration) declarationNode()       {}
