// Package ast defines the Abstract Syntax Tree produced by package parser.
//
// Every syntactic category from the language's grammar (command, expression,
// value-or-variable name, declaration, formal/actual parameter, type
// denoter, ...) is a closed set of node types: an interface carrying an
// unexported marker method, implemented by exactly the concrete struct
// types that category admits. Go has no compiler-enforced sum type, so
// "closed" here means "closed by convention, within this package" — the
// marker method can only be satisfied from inside ast.
//
// Every node is immutable once constructed and owns exactly one
// source.Position. Nodes are built exclusively by package parser during a
// single top-down pass and are never mutated afterward.
package ast

import "github.com/gotriangle/triparse/source"

// Program is the root of every AST this package describes.
type Program struct {
	Command  Command
	Position source.Position
}

func (p *Program) Pos() source.Position { return p.Position }

// Identifier, Operator, IntegerLiteral and CharacterLiteral are the leaves
// of the tree: they carry a spelling and nothing else besides a position.

// Identifier is a name: a variable, procedure, function, type, or field name.
type Identifier struct {
	Spelling string
	Position source.Position
}

func (i *Identifier) Pos() source.Position { return i.Position }

// Operator is an operator spelling, e.g. "+", "\/", "**". Operators carry
// no fixed meaning in the AST — meaning, if any, is user-defined (see
// UserUnaryOperatorDeclaration / UserBinaryOperatorDeclaration) or assigned
// by a downstream phase this package does not implement.
type Operator struct {
	Spelling string
	Position source.Position
}

func (o *Operator) Pos() source.Position { return o.Position }

// IntegerLiteral is the spelling of an integer literal, kept as text —
// this package never interprets it as a number.
type IntegerLiteral struct {
	Spelling string
	Position source.Position
}

func (i *IntegerLiteral) Pos() source.Position { return i.Position }

// CharacterLiteral is the spelling of a character literal, including its
// enclosing quotes, kept as text.
type CharacterLiteral struct {
	Spelling string
	Position source.Position
}

func (c *CharacterLiteral) Pos() source.Position { return c.Position }
