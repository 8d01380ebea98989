package ast

import "github.com/gotriangle/triparse/source"

// Vname is the closed set of value-or-variable name forms: a simple
// identifier, optionally extended left-to-right by field-dot and
// subscript suffixes. parseRestOfVname folds these suffixes into a
// left-deep tree — the outermost suffix is the outermost node.
type Vname interface {
	Pos() source.Position
	vnameNode()
}

// SimpleVname is a bare identifier used as a Vname.
type SimpleVname struct {
	Identifier *Identifier
	Position   source.Position
}

func (v *SimpleVname) Pos() source.Position { return v.Position }
func (*SimpleVname) vnameNode()             {}

// DotVname is "Vname . Identifier", a record field selection.
type DotVname struct {
	Base     Vname
	Field    *Identifier
	Position source.Position
}

func (v *DotVname) Pos() source.Position { return v.Position }
func (*DotVname) vnameNode()             {}

// SubscriptVname is "Vname [ Expression ]", an array element selection.
type SubscriptVname struct {
	Base     Vname
	Index    Expression
	Position source.Position
}

func (v *SubscriptVname) Pos() source.Position { return v.Position }
func (*SubscriptVname) vnameNode()             {}
