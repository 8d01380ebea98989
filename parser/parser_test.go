package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/errs"
	"github.com/gotriangle/triparse/lexer"
	"github.com/gotriangle/triparse/parser"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	reporter := errs.NewCollectingReporter()
	p := parser.New(lexer.New(src), reporter)
	program := p.Parse()
	require.Falsef(t, reporter.HasErrors(), "unexpected error(s): %v", reporter.Diagnostics)
	require.NotNil(t, program)
	return program
}

func parseErr(t *testing.T, src string) {
	t.Helper()
	reporter := errs.NewCollectingReporter()
	p := parser.New(lexer.New(src), reporter)
	program := p.Parse()
	assert.Nil(t, program)
	assert.True(t, reporter.HasErrors())
}

func TestEmptyProgram(t *testing.T) {
	program := parseOK(t, "")
	_, ok := program.Command.(*ast.EmptyCommand)
	assert.True(t, ok)
}

func TestAssignmentWithSubscriptAndField(t *testing.T) {
	program := parseOK(t, "x.f[1] := 2")
	assign, ok := program.Command.(*ast.AssignCommand)
	require.True(t, ok)

	sub, ok := assign.Variable.(*ast.SubscriptVname)
	require.True(t, ok)
	idx, ok := sub.Index.(*ast.IntegerExpression)
	require.True(t, ok)
	assert.Equal(t, "1", idx.Value.Spelling)

	dot, ok := sub.Base.(*ast.DotVname)
	require.True(t, ok)
	assert.Equal(t, "f", dot.Field.Spelling)

	simple, ok := dot.Base.(*ast.SimpleVname)
	require.True(t, ok)
	assert.Equal(t, "x", simple.Identifier.Spelling)

	rhs, ok := assign.Expression.(*ast.IntegerExpression)
	require.True(t, ok)
	assert.Equal(t, "2", rhs.Value.Spelling)
}

func TestLeftAssociativeBinaryExpression(t *testing.T) {
	program := parseOK(t, "let var n: Integer in n := 1 + 2 + 3")
	letCmd, ok := program.Command.(*ast.LetCommand)
	require.True(t, ok)

	assign, ok := letCmd.Command.(*ast.AssignCommand)
	require.True(t, ok)

	outer, ok := assign.Expression.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", outer.Operator.Spelling)

	rightLeaf, ok := outer.Right.(*ast.IntegerExpression)
	require.True(t, ok)
	assert.Equal(t, "3", rightLeaf.Value.Spelling)

	inner, ok := outer.Left.(*ast.BinaryExpression)
	require.True(t, ok)
	assert.Equal(t, "+", inner.Operator.Spelling)

	leftLeaf, ok := inner.Left.(*ast.IntegerExpression)
	require.True(t, ok)
	assert.Equal(t, "1", leftLeaf.Value.Spelling)

	midLeaf, ok := inner.Right.(*ast.IntegerExpression)
	require.True(t, ok)
	assert.Equal(t, "2", midLeaf.Value.Spelling)
}

func TestForWithSynthesizedConstDeclaration(t *testing.T) {
	program := parseOK(t, "for i from 1 to 10 do putint(i)")
	forCmd, ok := program.Command.(*ast.ForCommand)
	require.True(t, ok)

	assert.Equal(t, "i", forCmd.LoopVariable.Identifier.Spelling)
	lowerInDecl, ok := forCmd.LoopVariable.Value.(*ast.IntegerExpression)
	require.True(t, ok)
	assert.Equal(t, "1", lowerInDecl.Value.Spelling)

	lower, ok := forCmd.LowerBound.(*ast.IntegerExpression)
	require.True(t, ok)
	assert.Equal(t, "1", lower.Value.Spelling)

	upper, ok := forCmd.UpperBound.(*ast.IntegerExpression)
	require.True(t, ok)
	assert.Equal(t, "10", upper.Value.Spelling)

	call, ok := forCmd.Body.(*ast.CallCommand)
	require.True(t, ok)
	assert.Equal(t, "putint", call.Identifier.Spelling)
}

func TestCaseWithTwoArmsPlusElse(t *testing.T) {
	program := parseOK(t, "case x of 1: a:=a; 2: b:=b; else: c:=c")
	caseCmd, ok := program.Command.(*ast.CaseCommand)
	require.True(t, ok)
	assert.Equal(t, 2, caseCmd.Arms())
	assert.Equal(t, "1", caseCmd.Labels[0].Spelling)
	assert.Equal(t, "2", caseCmd.Labels[1].Spelling)
	assert.NotNil(t, caseCmd.Else)
}

func TestUserBinaryOperatorDeclaration(t *testing.T) {
	program := parseOK(t, "let func ** (x: Integer, y: Integer): Integer is x in x := x")
	letCmd, ok := program.Command.(*ast.LetCommand)
	require.True(t, ok)
	decl, ok := letCmd.Declaration.(*ast.UserBinaryOperatorDeclaration)
	require.True(t, ok)
	assert.Equal(t, "**", decl.Operator.Spelling)

	multiple, ok := decl.Parameters.(*ast.MultipleFormalParameterSequence)
	require.True(t, ok)
	_, ok = multiple.Rest.(*ast.SingleFormalParameterSequence)
	assert.True(t, ok)
}

func TestUserUnaryOperatorDeclarationWithZeroParameters(t *testing.T) {
	program := parseOK(t, "let func ++ (): Integer is 1 in x := x")
	letCmd, ok := program.Command.(*ast.LetCommand)
	require.True(t, ok)
	decl, ok := letCmd.Declaration.(*ast.UserUnaryOperatorDeclaration)
	require.True(t, ok)
	assert.Equal(t, "++", decl.Operator.Spelling)
	_, ok = decl.Parameters.(*ast.EmptyFormalParameterSequence)
	assert.True(t, ok)
}

func TestUserUnaryOperatorDeclarationWithOneParameter(t *testing.T) {
	program := parseOK(t, "let func ~ (x: Integer): Integer is x in x := x")
	letCmd, ok := program.Command.(*ast.LetCommand)
	require.True(t, ok)
	decl, ok := letCmd.Declaration.(*ast.UserUnaryOperatorDeclaration)
	require.True(t, ok)
	assert.Equal(t, "~", decl.Operator.Spelling)
	_, ok = decl.Parameters.(*ast.SingleFormalParameterSequence)
	assert.True(t, ok)
}

func TestUserOperatorArityViolationReportsWithoutSyntacticFailure(t *testing.T) {
	reporter := errs.NewCollectingReporter()
	p := parser.New(lexer.New("let func ** (x:Integer, y:Integer, z:Integer): Integer is x in x := x"), reporter)
	program := p.Parse()

	// Well-formedness errors on user operator arity are reported but do
	// not bail out of the parse: the caller still gets a Program back,
	// with the offending declaration as a nil Declaration.
	require.NotNil(t, program)
	require.True(t, reporter.HasErrors())
	assert.Contains(t, reporter.First(), "Operator declaration must have either 1 or 2 parameters")
}

func TestUnaryExpressionIsRightAssociative(t *testing.T) {
	program := parseOK(t, "x := - - 1")
	assign := program.Command.(*ast.AssignCommand)
	outer, ok := assign.Expression.(*ast.UnaryExpression)
	require.True(t, ok)
	assert.Equal(t, "-", outer.Operator.Spelling)
	inner, ok := outer.Operand.(*ast.UnaryExpression)
	require.True(t, ok)
	assert.Equal(t, "-", inner.Operator.Spelling)
	_, ok = inner.Operand.(*ast.IntegerExpression)
	assert.True(t, ok)
}

func TestRecordAndArrayAggregates(t *testing.T) {
	program := parseOK(t, "x := {a is 1, b is 2}")
	assign := program.Command.(*ast.AssignCommand)
	rec, ok := assign.Expression.(*ast.RecordExpression)
	require.True(t, ok)
	multi, ok := rec.Value.(*ast.MultipleRecordAggregate)
	require.True(t, ok)
	assert.Equal(t, "a", multi.Identifier.Spelling)
	single, ok := multi.Rest.(*ast.SingleRecordAggregate)
	require.True(t, ok)
	assert.Equal(t, "b", single.Identifier.Spelling)

	program2 := parseOK(t, "x := [1, 2, 3]")
	assign2 := program2.Command.(*ast.AssignCommand)
	arr, ok := assign2.Expression.(*ast.ArrayExpression)
	require.True(t, ok)
	_, ok = arr.Value.(*ast.MultipleArrayAggregate)
	assert.True(t, ok)
}

func TestPositionsAreNestedAndNonNegative(t *testing.T) {
	program := parseOK(t, "x := 1 + 2")
	assert.GreaterOrEqual(t, program.Position.Start, 0)
	assert.GreaterOrEqual(t, program.Position.Finish, program.Position.Start)

	assign := program.Command.(*ast.AssignCommand)
	assert.True(t, program.Position.Contains(assign.Position))
	assert.True(t, assign.Position.Contains(assign.Expression.Pos()))
}

func TestUnbalancedBeginRaisesSyntacticError(t *testing.T) {
	parseErr(t, "begin x := 1")
}

func TestIfWithoutElseRaisesSyntacticError(t *testing.T) {
	parseErr(t, "if x then y := 1")
}

func TestAssignToNonVnameRaisesSyntacticError(t *testing.T) {
	parseErr(t, "1 := 2")
}

func TestTrailingTokensAfterProgramRaiseSyntacticError(t *testing.T) {
	parseErr(t, "x := 1 y")
}

func TestCaseWithBodylessArmRaisesSyntacticError(t *testing.T) {
	// Arm "1:" has no command before the expected SEMICOLON: the
	// following ELSE is in Command's FOLLOW set, so parseSingleCommand
	// yields EmptyCommand without consuming it, and the SEMICOLON accept
	// that follows fails against the still-unconsumed "else".
	parseErr(t, "case x of 1: else: c")
}
