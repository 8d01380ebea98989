package ast

import (
	"bytes"
	"fmt"
	"io"
)

const dumpIndentSize = 2

// dumper walks a tree and writes one indented line per node, in the style
// of the teacher's PrintingVisitor — an indent counter plus a buffer —
// but dispatching on a type switch instead of a NodeVisitor interface,
// since the taxonomy here is a closed set within this package rather than
// an open class hierarchy.
type dumper struct {
	buf    bytes.Buffer
	indent int
}

func (d *dumper) line(format string, args ...any) {
	for i := 0; i < d.indent; i++ {
		d.buf.WriteByte(' ')
	}
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteByte('\n')
}

func (d *dumper) nested(f func()) {
	d.indent += dumpIndentSize
	f()
	d.indent -= dumpIndentSize
}

// Fdump writes an indented tree view of p to w, for humans — it is not
// the canonical reserialization (see Sprint) and need not round-trip.
func Fdump(w io.Writer, p *Program) error {
	d := &dumper{}
	d.line("Program @%s", p.Position)
	d.nested(func() { d.dumpCommand(p.Command) })
	_, err := w.Write(d.buf.Bytes())
	return err
}

// Dump renders the same tree view as Fdump, as a string.
func Dump(p *Program) string {
	var buf bytes.Buffer
	_ = Fdump(&buf, p)
	return buf.String()
}

func (d *dumper) dumpCommand(node Command) {
	switch c := node.(type) {
	case nil:
		d.line("<nil Command>")
	case *EmptyCommand:
		d.line("EmptyCommand @%s", c.Position)
	case *AssignCommand:
		d.line("AssignCommand @%s", c.Position)
		d.nested(func() {
			d.dumpVname(c.Variable)
			d.dumpExpr(c.Expression)
		})
	case *CallCommand:
		d.line("CallCommand %s @%s", c.Identifier.Spelling, c.Position)
		d.nested(func() { d.dumpActualParameterSequence(c.Parameters) })
	case *SequentialCommand:
		d.line("SequentialCommand @%s", c.Position)
		d.nested(func() {
			d.dumpCommand(c.First)
			d.dumpCommand(c.Second)
		})
	case *LetCommand:
		d.line("LetCommand @%s", c.Position)
		d.nested(func() {
			d.dumpDeclaration(c.Declaration)
			d.dumpCommand(c.Command)
		})
	case *IfCommand:
		d.line("IfCommand @%s", c.Position)
		d.nested(func() {
			d.dumpExpr(c.Condition)
			d.dumpCommand(c.Then)
			d.dumpCommand(c.Else)
		})
	case *WhileCommand:
		d.line("WhileCommand @%s", c.Position)
		d.nested(func() {
			d.dumpExpr(c.Condition)
			d.dumpCommand(c.Body)
		})
	case *RepeatCommand:
		d.line("RepeatCommand @%s", c.Position)
		d.nested(func() {
			d.dumpCommand(c.Body)
			d.dumpExpr(c.Condition)
		})
	case *ForCommand:
		d.line("ForCommand %s @%s", c.LoopVariable.Identifier.Spelling, c.Position)
		d.nested(func() {
			d.dumpDeclaration(c.LoopVariable)
			d.dumpExpr(c.LowerBound)
			d.dumpExpr(c.UpperBound)
			d.dumpCommand(c.Body)
		})
	case *CaseCommand:
		d.line("CaseCommand arms=%d @%s", c.Arms(), c.Position)
		d.nested(func() {
			d.dumpExpr(c.Selector)
			for i, label := range c.Labels {
				d.line("arm %s", label.Spelling)
				d.nested(func() { d.dumpCommand(c.Bodies[i]) })
			}
			d.line("else")
			d.nested(func() { d.dumpCommand(c.Else) })
		})
	default:
		panic(fmt.Sprintf("ast: unhandled Command type %T", node))
	}
}

func (d *dumper) dumpExpr(node Expression) {
	switch e := node.(type) {
	case nil:
		d.line("<nil Expression>")
	case *IntegerExpression:
		d.line("IntegerExpression %s @%s", e.Value.Spelling, e.Position)
	case *CharacterExpression:
		d.line("CharacterExpression %s @%s", e.Value.Spelling, e.Position)
	case *VnameExpression:
		d.line("VnameExpression @%s", e.Position)
		d.nested(func() { d.dumpVname(e.Variable) })
	case *CallExpression:
		d.line("CallExpression %s @%s", e.Identifier.Spelling, e.Position)
		d.nested(func() { d.dumpActualParameterSequence(e.Parameters) })
	case *IfExpression:
		d.line("IfExpression @%s", e.Position)
		d.nested(func() {
			d.dumpExpr(e.Condition)
			d.dumpExpr(e.Then)
			d.dumpExpr(e.Else)
		})
	case *LetExpression:
		d.line("LetExpression @%s", e.Position)
		d.nested(func() {
			d.dumpDeclaration(e.Declaration)
			d.dumpExpr(e.Expression)
		})
	case *UnaryExpression:
		d.line("UnaryExpression %s @%s", e.Operator.Spelling, e.Position)
		d.nested(func() { d.dumpExpr(e.Operand) })
	case *BinaryExpression:
		d.line("BinaryExpression %s @%s", e.Operator.Spelling, e.Position)
		d.nested(func() {
			d.dumpExpr(e.Left)
			d.dumpExpr(e.Right)
		})
	case *ArrayExpression:
		d.line("ArrayExpression @%s", e.Position)
		d.nested(func() { d.dumpArrayAggregate(e.Value) })
	case *RecordExpression:
		d.line("RecordExpression @%s", e.Position)
		d.nested(func() { d.dumpRecordAggregate(e.Value) })
	default:
		panic(fmt.Sprintf("ast: unhandled Expression type %T", node))
	}
}

func (d *dumper) dumpVname(node Vname) {
	switch v := node.(type) {
	case *SimpleVname:
		d.line("SimpleVname %s @%s", v.Identifier.Spelling, v.Position)
	case *DotVname:
		d.line("DotVname .%s @%s", v.Field.Spelling, v.Position)
		d.nested(func() { d.dumpVname(v.Base) })
	case *SubscriptVname:
		d.line("SubscriptVname @%s", v.Position)
		d.nested(func() {
			d.dumpVname(v.Base)
			d.dumpExpr(v.Index)
		})
	default:
		panic(fmt.Sprintf("ast: unhandled Vname type %T", node))
	}
}

func (d *dumper) dumpDeclaration(node Declaration) {
	switch decl := node.(type) {
	case nil:
		d.line("<nil Declaration>")
	case *ConstDeclaration:
		d.line("ConstDeclaration %s @%s", decl.Identifier.Spelling, decl.Position)
		d.nested(func() { d.dumpExpr(decl.Value) })
	case *VarDeclaration:
		d.line("VarDeclaration %s @%s", decl.Identifier.Spelling, decl.Position)
		d.nested(func() { d.dumpTypeDenoter(decl.Type) })
	case *InitVarDeclaration:
		d.line("InitVarDeclaration %s @%s", decl.Identifier.Spelling, decl.Position)
		d.nested(func() { d.dumpExpr(decl.Value) })
	case *ProcDeclaration:
		d.line("ProcDeclaration %s @%s", decl.Identifier.Spelling, decl.Position)
		d.nested(func() {
			d.dumpFormalParameterSequence(decl.Parameters)
			d.dumpCommand(decl.Command)
		})
	case *FuncDeclaration:
		d.line("FuncDeclaration %s @%s", decl.Identifier.Spelling, decl.Position)
		d.nested(func() {
			d.dumpFormalParameterSequence(decl.Parameters)
			d.dumpTypeDenoter(decl.Type)
			d.dumpExpr(decl.Expression)
		})
	case *TypeDeclaration:
		d.line("TypeDeclaration %s @%s", decl.Identifier.Spelling, decl.Position)
		d.nested(func() { d.dumpTypeDenoter(decl.Type) })
	case *UserUnaryOperatorDeclaration:
		d.line("UserUnaryOperatorDeclaration %s @%s", decl.Operator.Spelling, decl.Position)
		d.nested(func() {
			d.dumpFormalParameterSequence(decl.Parameters)
			d.dumpTypeDenoter(decl.Type)
			d.dumpExpr(decl.Expression)
		})
	case *UserBinaryOperatorDeclaration:
		d.line("UserBinaryOperatorDeclaration %s @%s", decl.Operator.Spelling, decl.Position)
		d.nested(func() {
			d.dumpFormalParameterSequence(decl.Parameters)
			d.dumpTypeDenoter(decl.Type)
			d.dumpExpr(decl.Expression)
		})
	case *SequentialDeclaration:
		d.line("SequentialDeclaration @%s", decl.Position)
		d.nested(func() {
			d.dumpDeclaration(decl.First)
			d.dumpDeclaration(decl.Second)
		})
	default:
		panic(fmt.Sprintf("ast: unhandled Declaration type %T", node))
	}
}

func (d *dumper) dumpTypeDenoter(node TypeDenoter) {
	switch t := node.(type) {
	case *SimpleTypeDenoter:
		d.line("SimpleTypeDenoter %s @%s", t.Identifier.Spelling, t.Position)
	case *ArrayTypeDenoter:
		d.line("ArrayTypeDenoter %s @%s", t.Size.Spelling, t.Position)
		d.nested(func() { d.dumpTypeDenoter(t.Element) })
	case *RecordTypeDenoter:
		d.line("RecordTypeDenoter @%s", t.Position)
		d.nested(func() { d.dumpFieldTypeDenoter(t.Fields) })
	default:
		panic(fmt.Sprintf("ast: unhandled TypeDenoter type %T", node))
	}
}

func (d *dumper) dumpFieldTypeDenoter(node FieldTypeDenoter) {
	switch f := node.(type) {
	case *SingleFieldTypeDenoter:
		d.line("SingleFieldTypeDenoter %s @%s", f.Identifier.Spelling, f.Position)
		d.nested(func() { d.dumpTypeDenoter(f.Type) })
	case *MultipleFieldTypeDenoter:
		d.line("MultipleFieldTypeDenoter %s @%s", f.Identifier.Spelling, f.Position)
		d.nested(func() {
			d.dumpTypeDenoter(f.Type)
			d.dumpFieldTypeDenoter(f.Rest)
		})
	default:
		panic(fmt.Sprintf("ast: unhandled FieldTypeDenoter type %T", node))
	}
}

func (d *dumper) dumpFormalParameterSequence(node FormalParameterSequence) {
	switch s := node.(type) {
	case *EmptyFormalParameterSequence:
		d.line("EmptyFormalParameterSequence @%s", s.Position)
	case *SingleFormalParameterSequence:
		d.line("SingleFormalParameterSequence @%s", s.Position)
		d.nested(func() { d.dumpFormalParameter(s.Parameter) })
	case *MultipleFormalParameterSequence:
		d.line("MultipleFormalParameterSequence @%s", s.Position)
		d.nested(func() {
			d.dumpFormalParameter(s.Parameter)
			d.dumpFormalParameterSequence(s.Rest)
		})
	default:
		panic(fmt.Sprintf("ast: unhandled FormalParameterSequence type %T", node))
	}
}

func (d *dumper) dumpFormalParameter(node FormalParameter) {
	switch p := node.(type) {
	case *ConstFormalParameter:
		d.line("ConstFormalParameter %s @%s", p.Identifier.Spelling, p.Position)
		d.nested(func() { d.dumpTypeDenoter(p.Type) })
	case *VarFormalParameter:
		d.line("VarFormalParameter %s @%s", p.Identifier.Spelling, p.Position)
		d.nested(func() { d.dumpTypeDenoter(p.Type) })
	case *ResultFormalParameter:
		d.line("ResultFormalParameter %s @%s", p.Identifier.Spelling, p.Position)
		d.nested(func() { d.dumpTypeDenoter(p.Type) })
	case *ValueResultFormalParameter:
		d.line("ValueResultFormalParameter %s @%s", p.Identifier.Spelling, p.Position)
		d.nested(func() { d.dumpTypeDenoter(p.Type) })
	case *ProcFormalParameter:
		d.line("ProcFormalParameter %s @%s", p.Identifier.Spelling, p.Position)
		d.nested(func() { d.dumpFormalParameterSequence(p.Parameters) })
	case *FuncFormalParameter:
		d.line("FuncFormalParameter %s @%s", p.Identifier.Spelling, p.Position)
		d.nested(func() {
			d.dumpFormalParameterSequence(p.Parameters)
			d.dumpTypeDenoter(p.Type)
		})
	default:
		panic(fmt.Sprintf("ast: unhandled FormalParameter type %T", node))
	}
}

func (d *dumper) dumpActualParameterSequence(node ActualParameterSequence) {
	switch s := node.(type) {
	case *EmptyActualParameterSequence:
		d.line("EmptyActualParameterSequence @%s", s.Position)
	case *SingleActualParameterSequence:
		d.line("SingleActualParameterSequence @%s", s.Position)
		d.nested(func() { d.dumpActualParameter(s.Parameter) })
	case *MultipleActualParameterSequence:
		d.line("MultipleActualParameterSequence @%s", s.Position)
		d.nested(func() {
			d.dumpActualParameter(s.Parameter)
			d.dumpActualParameterSequence(s.Rest)
		})
	default:
		panic(fmt.Sprintf("ast: unhandled ActualParameterSequence type %T", node))
	}
}

func (d *dumper) dumpActualParameter(node ActualParameter) {
	switch p := node.(type) {
	case *ConstActualParameter:
		d.line("ConstActualParameter @%s", p.Position)
		d.nested(func() { d.dumpExpr(p.Expression) })
	case *VarActualParameter:
		d.line("VarActualParameter @%s", p.Position)
		d.nested(func() { d.dumpVname(p.Variable) })
	case *ResultActualParameter:
		d.line("ResultActualParameter @%s", p.Position)
		d.nested(func() { d.dumpVname(p.Variable) })
	case *ValueResultActualParameter:
		d.line("ValueResultActualParameter @%s", p.Position)
		d.nested(func() { d.dumpVname(p.Variable) })
	case *ProcActualParameter:
		d.line("ProcActualParameter %s @%s", p.Identifier.Spelling, p.Position)
	case *FuncActualParameter:
		d.line("FuncActualParameter %s @%s", p.Identifier.Spelling, p.Position)
	default:
		panic(fmt.Sprintf("ast: unhandled ActualParameter type %T", node))
	}
}

func (d *dumper) dumpRecordAggregate(node RecordAggregate) {
	switch a := node.(type) {
	case *SingleRecordAggregate:
		d.line("SingleRecordAggregate %s @%s", a.Identifier.Spelling, a.Position)
		d.nested(func() { d.dumpExpr(a.Value) })
	case *MultipleRecordAggregate:
		d.line("MultipleRecordAggregate %s @%s", a.Identifier.Spelling, a.Position)
		d.nested(func() {
			d.dumpExpr(a.Value)
			d.dumpRecordAggregate(a.Rest)
		})
	default:
		panic(fmt.Sprintf("ast: unhandled RecordAggregate type %T", node))
	}
}

func (d *dumper) dumpArrayAggregate(node ArrayAggregate) {
	switch a := node.(type) {
	case *SingleArrayAggregate:
		d.line("SingleArrayAggregate @%s", a.Position)
		d.nested(func() { d.dumpExpr(a.Value) })
	case *MultipleArrayAggregate:
		d.line("MultipleArrayAggregate @%s", a.Position)
		d.nested(func() {
			d.dumpExpr(a.Value)
			d.dumpArrayAggregate(a.Rest)
		})
	default:
		panic(fmt.Sprintf("ast: unhandled ArrayAggregate type %T", node))
	}
}
