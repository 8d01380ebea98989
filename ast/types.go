package ast

import "github.com/gotriangle/triparse/source"

// TypeDenoter is the closed set of syntactic type forms: a named type, an
// array type, or a record type.
type TypeDenoter interface {
	Pos() source.Position
	typeDenoterNode()
}

// SimpleTypeDenoter is a type named by an identifier, e.g. "Integer".
type SimpleTypeDenoter struct {
	Identifier *Identifier
	Position   source.Position
}

func (t *SimpleTypeDenoter) Pos() source.Position { return t.Position }
func (*SimpleTypeDenoter) typeDenoterNode()       {}

// ArrayTypeDenoter is "array IntegerLiteral of TypeDenoter".
type ArrayTypeDenoter struct {
	Size     *IntegerLiteral
	Element  TypeDenoter
	Position source.Position
}

func (t *ArrayTypeDenoter) Pos() source.Position { return t.Position }
func (*ArrayTypeDenoter) typeDenoterNode()       {}

// RecordTypeDenoter is "record FieldTypeDenoter end".
type RecordTypeDenoter struct {
	Fields   FieldTypeDenoter
	Position source.Position
}

func (t *RecordTypeDenoter) Pos() source.Position { return t.Position }
func (*RecordTypeDenoter) typeDenoterNode()       {}

// FieldTypeDenoter is the closed, right-associated list of record field
// declarations: a single "Identifier : TypeDenoter", or one followed by
// the rest of the list.
type FieldTypeDenoter interface {
	Pos() source.Position
	fieldTypeDenoterNode()
}

type SingleFieldTypeDenoter struct {
	Identifier *Identifier
	Type       TypeDenoter
	Position   source.Position
}

func (f *SingleFieldTypeDenoter) Pos() source.Position { return f.Position }
func (*SingleFieldTypeDenoter) fieldTypeDenoterNode()  {}

type MultipleFieldTypeDenoter struct {
	Identifier *Identifier
	Type       TypeDenoter
	Rest       FieldTypeDenoter
	Position   source.Position
}

func (f *MultipleFieldTypeDenoter) Pos() source.Position { return f.Position }
func (*MultipleFieldTypeDenoter) fieldTypeDenoterNode()  {}
