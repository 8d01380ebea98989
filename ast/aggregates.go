package ast

import "github.com/gotriangle/triparse/source"

// RecordAggregate is the closed, right-associated list backing a record
// literal "{ f is e, ... }": a single "Identifier is Expression" field, or
// one followed by the rest of the list.
type RecordAggregate interface {
	Pos() source.Position
	recordAggregateNode()
}

type SingleRecordAggregate struct {
	Identifier *Identifier
	Value      Expression
	Position   source.Position
}

func (a *SingleRecordAggregate) Pos() source.Position { return a.Position }
func (*SingleRecordAggregate) recordAggregateNode()    {}

type MultipleRecordAggregate struct {
	Identifier *Identifier
	Value      Expression
	Rest       RecordAggregate
	Position   source.Position
}

func (a *MultipleRecordAggregate) Pos() source.Position { return a.Position }
func (*MultipleRecordAggregate) recordAggregateNode()    {}

// ArrayAggregate is the closed, right-associated list backing an array
// literal "[ e, ... ]".
type ArrayAggregate interface {
	Pos() source.Position
	arrayAggregateNode()
}

type SingleArrayAggregate struct {
	Value    Expression
	Position source.Position
}

func (a *SingleArrayAggregate) Pos() source.Position { return a.Position }
func (*SingleArrayAggregate) arrayAggregateNode()     {}

type MultipleArrayAggregate struct {
	Value    Expression
	Rest     ArrayAggregate
	Position source.Position
}

func (a *MultipleArrayAggregate) Pos() source.Position { return a.Position }
func (*MultipleArrayAggregate) arrayAggregateNode()     {}
