package ast

import (
	"bytes"
	"fmt"
)

// Sprint renders p as a single line of canonical source text. Reparsing
// the result with package parser is guaranteed to produce a structurally
// identical AST (the idempotence property tested in ast/print_test.go) —
// Sprint resolves every position where the grammar is ambiguous about
// grouping (parenthesizing a non-primary expression used in a primary
// slot, wrapping a SequentialCommand with begin/end when it appears where
// only a single command is allowed, dropping the optional "in" keyword on
// a bare const formal/actual parameter) to the one canonical spelling.
//
// This is a printer, not a formatter: it exists to let the parser's
// output be turned back into parseable text, not to pretty-print user
// source with original layout preserved (this package tracks no trivia).
func Sprint(p *Program) string {
	var buf bytes.Buffer
	writeCommand(&buf, p.Command)
	return buf.String()
}

// writeCommand renders node in "command position" — the position
// reachable via parseCommand, where a bare SequentialCommand needs no
// wrapping.
func writeCommand(buf *bytes.Buffer, node Command) {
	if seq, ok := node.(*SequentialCommand); ok {
		writeCommand(buf, seq.First)
		buf.WriteString("; ")
		writeSingleCommand(buf, seq.Second)
		return
	}
	writeCommandBody(buf, node)
}

// writeSingleCommand renders node in "single command position" — the
// position reachable via parseSingleCommand, where a SequentialCommand
// must be wrapped in begin/end to reparse back to the same shape.
func writeSingleCommand(buf *bytes.Buffer, node Command) {
	if seq, ok := node.(*SequentialCommand); ok {
		buf.WriteString("begin ")
		writeCommand(buf, seq)
		buf.WriteString(" end")
		return
	}
	writeCommandBody(buf, node)
}

// writeCommandBody renders every command kind except SequentialCommand,
// which writeCommand and writeSingleCommand handle themselves.
func writeCommandBody(buf *bytes.Buffer, node Command) {
	switch c := node.(type) {
	case *EmptyCommand:
		// nothing to write
	case *AssignCommand:
		writeVname(buf, c.Variable)
		buf.WriteString(" := ")
		writeExpr(buf, c.Expression)
	case *CallCommand:
		buf.WriteString(c.Identifier.Spelling)
		buf.WriteString("(")
		writeActualParameterSequence(buf, c.Parameters)
		buf.WriteString(")")
	case *LetCommand:
		buf.WriteString("let ")
		writeDeclaration(buf, c.Declaration)
		buf.WriteString(" in ")
		writeSingleCommand(buf, c.Command)
	case *IfCommand:
		buf.WriteString("if ")
		writeExpr(buf, c.Condition)
		buf.WriteString(" then ")
		writeSingleCommand(buf, c.Then)
		buf.WriteString(" else ")
		writeSingleCommand(buf, c.Else)
	case *WhileCommand:
		buf.WriteString("while ")
		writeExpr(buf, c.Condition)
		buf.WriteString(" do ")
		writeSingleCommand(buf, c.Body)
	case *RepeatCommand:
		buf.WriteString("repeat ")
		writeSingleCommand(buf, c.Body)
		buf.WriteString(" until ")
		writeExpr(buf, c.Condition)
	case *ForCommand:
		buf.WriteString("for ")
		buf.WriteString(c.LoopVariable.Identifier.Spelling)
		buf.WriteString(" from ")
		writeExpr(buf, c.LowerBound)
		buf.WriteString(" to ")
		writeExpr(buf, c.UpperBound)
		buf.WriteString(" do ")
		writeSingleCommand(buf, c.Body)
	case *CaseCommand:
		buf.WriteString("case ")
		writeExpr(buf, c.Selector)
		buf.WriteString(" of ")
		for i, label := range c.Labels {
			buf.WriteString(label.Spelling)
			buf.WriteString(": ")
			writeSingleCommand(buf, c.Bodies[i])
			buf.WriteString("; ")
		}
		buf.WriteString("else: ")
		writeSingleCommand(buf, c.Else)
	default:
		panic(fmt.Sprintf("ast: unhandled Command type %T", node))
	}
}

func writeDeclaration(buf *bytes.Buffer, node Declaration) {
	switch d := node.(type) {
	case *SequentialDeclaration:
		writeDeclaration(buf, d.First)
		buf.WriteString("; ")
		writeDeclaration(buf, d.Second)
	case *ConstDeclaration:
		buf.WriteString("const ")
		buf.WriteString(d.Identifier.Spelling)
		buf.WriteString(" is ")
		writeExpr(buf, d.Value)
	case *VarDeclaration:
		buf.WriteString("var ")
		buf.WriteString(d.Identifier.Spelling)
		buf.WriteString(" : ")
		writeTypeDenoter(buf, d.Type)
	case *InitVarDeclaration:
		buf.WriteString("var ")
		buf.WriteString(d.Identifier.Spelling)
		buf.WriteString(" := ")
		writeExpr(buf, d.Value)
	case *ProcDeclaration:
		buf.WriteString("proc ")
		buf.WriteString(d.Identifier.Spelling)
		buf.WriteString("(")
		writeFormalParameterSequence(buf, d.Parameters)
		buf.WriteString(") is ")
		writeSingleCommand(buf, d.Command)
	case *FuncDeclaration:
		buf.WriteString("func ")
		buf.WriteString(d.Identifier.Spelling)
		buf.WriteString("(")
		writeFormalParameterSequence(buf, d.Parameters)
		buf.WriteString(") : ")
		writeTypeDenoter(buf, d.Type)
		buf.WriteString(" is ")
		writeExpr(buf, d.Expression)
	case *UserUnaryOperatorDeclaration:
		buf.WriteString("func ")
		buf.WriteString(d.Operator.Spelling)
		buf.WriteString("(")
		writeFormalParameterSequence(buf, d.Parameters)
		buf.WriteString(") : ")
		writeTypeDenoter(buf, d.Type)
		buf.WriteString(" is ")
		writeExpr(buf, d.Expression)
	case *UserBinaryOperatorDeclaration:
		buf.WriteString("func ")
		buf.WriteString(d.Operator.Spelling)
		buf.WriteString("(")
		writeFormalParameterSequence(buf, d.Parameters)
		buf.WriteString(") : ")
		writeTypeDenoter(buf, d.Type)
		buf.WriteString(" is ")
		writeExpr(buf, d.Expression)
	case nil:
		// the arity-violation well-formedness error (spec.md §4.7 / §7)
		// leaves this slot nil; nothing to print.
	default:
		panic(fmt.Sprintf("ast: unhandled Declaration type %T", node))
	}
}

// writeExpr renders node in "expression position" — the full grammar
// (parseExpression), where If/Let/Binary need no parenthesizing.
func writeExpr(buf *bytes.Buffer, node Expression) {
	switch e := node.(type) {
	case *IntegerExpression:
		buf.WriteString(e.Value.Spelling)
	case *CharacterExpression:
		buf.WriteString(e.Value.Spelling)
	case *VnameExpression:
		writeVname(buf, e.Variable)
	case *CallExpression:
		buf.WriteString(e.Identifier.Spelling)
		buf.WriteString("(")
		writeActualParameterSequence(buf, e.Parameters)
		buf.WriteString(")")
	case *IfExpression:
		buf.WriteString("if ")
		writeExpr(buf, e.Condition)
		buf.WriteString(" then ")
		writeExpr(buf, e.Then)
		buf.WriteString(" else ")
		writeExpr(buf, e.Else)
	case *LetExpression:
		buf.WriteString("let ")
		writeDeclaration(buf, e.Declaration)
		buf.WriteString(" in ")
		writeExpr(buf, e.Expression)
	case *UnaryExpression:
		buf.WriteString(e.Operator.Spelling)
		if _, ok := e.Operand.(*UnaryExpression); ok {
			// keep "- - 1" from printing as "--1", which scans as one operator
			buf.WriteString(" ")
		}
		writeExprPrimary(buf, e.Operand)
	case *BinaryExpression:
		writeBinaryLeft(buf, e.Left)
		buf.WriteString(" ")
		buf.WriteString(e.Operator.Spelling)
		buf.WriteString(" ")
		writeExprPrimary(buf, e.Right)
	case *ArrayExpression:
		buf.WriteString("[")
		writeArrayAggregate(buf, e.Value)
		buf.WriteString("]")
	case *RecordExpression:
		buf.WriteString("{")
		writeRecordAggregate(buf, e.Value)
		buf.WriteString("}")
	default:
		panic(fmt.Sprintf("ast: unhandled Expression type %T", node))
	}
}

// writeBinaryLeft renders the left operand of a BinaryExpression: a
// nested BinaryExpression continues the left fold without parens (that is
// how the parser itself builds this shape); anything else is a primary.
func writeBinaryLeft(buf *bytes.Buffer, node Expression) {
	if _, ok := node.(*BinaryExpression); ok {
		writeExpr(buf, node)
		return
	}
	writeExprPrimary(buf, node)
}

// writeExprPrimary renders node the way parsePrimaryExpression would need
// to see it: If/Let/Binary are wrapped in parens since none of them is in
// the FIRST set of a primary expression.
func writeExprPrimary(buf *bytes.Buffer, node Expression) {
	switch node.(type) {
	case *IfExpression, *LetExpression, *BinaryExpression:
		buf.WriteString("(")
		writeExpr(buf, node)
		buf.WriteString(")")
	default:
		writeExpr(buf, node)
	}
}

func writeVname(buf *bytes.Buffer, node Vname) {
	switch v := node.(type) {
	case *SimpleVname:
		buf.WriteString(v.Identifier.Spelling)
	case *DotVname:
		writeVname(buf, v.Base)
		buf.WriteString(".")
		buf.WriteString(v.Field.Spelling)
	case *SubscriptVname:
		writeVname(buf, v.Base)
		buf.WriteString("[")
		writeExpr(buf, v.Index)
		buf.WriteString("]")
	default:
		panic(fmt.Sprintf("ast: unhandled Vname type %T", node))
	}
}

func writeTypeDenoter(buf *bytes.Buffer, node TypeDenoter) {
	switch t := node.(type) {
	case *SimpleTypeDenoter:
		buf.WriteString(t.Identifier.Spelling)
	case *ArrayTypeDenoter:
		buf.WriteString("array ")
		buf.WriteString(t.Size.Spelling)
		buf.WriteString(" of ")
		writeTypeDenoter(buf, t.Element)
	case *RecordTypeDenoter:
		buf.WriteString("record ")
		writeFieldTypeDenoter(buf, t.Fields)
		buf.WriteString(" end")
	default:
		panic(fmt.Sprintf("ast: unhandled TypeDenoter type %T", node))
	}
}

func writeFieldTypeDenoter(buf *bytes.Buffer, node FieldTypeDenoter) {
	switch f := node.(type) {
	case *SingleFieldTypeDenoter:
		buf.WriteString(f.Identifier.Spelling)
		buf.WriteString(" : ")
		writeTypeDenoter(buf, f.Type)
	case *MultipleFieldTypeDenoter:
		buf.WriteString(f.Identifier.Spelling)
		buf.WriteString(" : ")
		writeTypeDenoter(buf, f.Type)
		buf.WriteString(", ")
		writeFieldTypeDenoter(buf, f.Rest)
	default:
		panic(fmt.Sprintf("ast: unhandled FieldTypeDenoter type %T", node))
	}
}

func writeFormalParameterSequence(buf *bytes.Buffer, node FormalParameterSequence) {
	switch s := node.(type) {
	case *EmptyFormalParameterSequence:
	case *SingleFormalParameterSequence:
		writeFormalParameter(buf, s.Parameter)
	case *MultipleFormalParameterSequence:
		writeFormalParameter(buf, s.Parameter)
		buf.WriteString(", ")
		writeFormalParameterSequence(buf, s.Rest)
	default:
		panic(fmt.Sprintf("ast: unhandled FormalParameterSequence type %T", node))
	}
}

func writeFormalParameter(buf *bytes.Buffer, node FormalParameter) {
	switch p := node.(type) {
	case *ConstFormalParameter:
		buf.WriteString(p.Identifier.Spelling)
		buf.WriteString(" : ")
		writeTypeDenoter(buf, p.Type)
	case *VarFormalParameter:
		buf.WriteString("var ")
		buf.WriteString(p.Identifier.Spelling)
		buf.WriteString(" : ")
		writeTypeDenoter(buf, p.Type)
	case *ResultFormalParameter:
		buf.WriteString("out ")
		buf.WriteString(p.Identifier.Spelling)
		buf.WriteString(" : ")
		writeTypeDenoter(buf, p.Type)
	case *ValueResultFormalParameter:
		buf.WriteString("in out ")
		buf.WriteString(p.Identifier.Spelling)
		buf.WriteString(" : ")
		writeTypeDenoter(buf, p.Type)
	case *ProcFormalParameter:
		buf.WriteString("proc ")
		buf.WriteString(p.Identifier.Spelling)
		buf.WriteString("(")
		writeFormalParameterSequence(buf, p.Parameters)
		buf.WriteString(")")
	case *FuncFormalParameter:
		buf.WriteString("func ")
		buf.WriteString(p.Identifier.Spelling)
		buf.WriteString("(")
		writeFormalParameterSequence(buf, p.Parameters)
		buf.WriteString(") : ")
		writeTypeDenoter(buf, p.Type)
	default:
		panic(fmt.Sprintf("ast: unhandled FormalParameter type %T", node))
	}
}

func writeActualParameterSequence(buf *bytes.Buffer, node ActualParameterSequence) {
	switch s := node.(type) {
	case *EmptyActualParameterSequence:
	case *SingleActualParameterSequence:
		writeActualParameter(buf, s.Parameter)
	case *MultipleActualParameterSequence:
		writeActualParameter(buf, s.Parameter)
		buf.WriteString(", ")
		writeActualParameterSequence(buf, s.Rest)
	default:
		panic(fmt.Sprintf("ast: unhandled ActualParameterSequence type %T", node))
	}
}

func writeActualParameter(buf *bytes.Buffer, node ActualParameter) {
	switch p := node.(type) {
	case *ConstActualParameter:
		writeExpr(buf, p.Expression)
	case *VarActualParameter:
		buf.WriteString("var ")
		writeVname(buf, p.Variable)
	case *ResultActualParameter:
		buf.WriteString("out ")
		writeVname(buf, p.Variable)
	case *ValueResultActualParameter:
		buf.WriteString("in out ")
		writeVname(buf, p.Variable)
	case *ProcActualParameter:
		buf.WriteString("proc ")
		buf.WriteString(p.Identifier.Spelling)
	case *FuncActualParameter:
		buf.WriteString("func ")
		buf.WriteString(p.Identifier.Spelling)
	default:
		panic(fmt.Sprintf("ast: unhandled ActualParameter type %T", node))
	}
}

func writeRecordAggregate(buf *bytes.Buffer, node RecordAggregate) {
	switch a := node.(type) {
	case *SingleRecordAggregate:
		buf.WriteString(a.Identifier.Spelling)
		buf.WriteString(" is ")
		writeExpr(buf, a.Value)
	case *MultipleRecordAggregate:
		buf.WriteString(a.Identifier.Spelling)
		buf.WriteString(" is ")
		writeExpr(buf, a.Value)
		buf.WriteString(", ")
		writeRecordAggregate(buf, a.Rest)
	default:
		panic(fmt.Sprintf("ast: unhandled RecordAggregate type %T", node))
	}
}

func writeArrayAggregate(buf *bytes.Buffer, node ArrayAggregate) {
	switch a := node.(type) {
	case *SingleArrayAggregate:
		writeExpr(buf, a.Value)
	case *MultipleArrayAggregate:
		writeExpr(buf, a.Value)
		buf.WriteString(", ")
		writeArrayAggregate(buf, a.Rest)
	default:
		panic(fmt.Sprintf("ast: unhandled ArrayAggregate type %T", node))
	}
}
