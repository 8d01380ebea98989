package parser

import (
	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/token"
)

// parseExpression dispatches LET and IF to their own expression forms;
// anything else falls through to parseSecondaryExpression.
func (p *Parser) parseExpression() ast.Expression {
	pos := p.start()
	switch p.currentToken.Kind {
	case token.LET:
		p.acceptIt()
		decl := p.parseDeclaration()
		p.accept(token.IN_IN)
		body := p.parseExpression()
		return &ast.LetExpression{Declaration: decl, Expression: body, Position: p.finish(pos)}
	case token.IF:
		p.acceptIt()
		cond := p.parseExpression()
		p.accept(token.THEN)
		thenExpr := p.parseExpression()
		p.accept(token.ELSE)
		elseExpr := p.parseExpression()
		return &ast.IfExpression{Condition: cond, Then: thenExpr, Else: elseExpr, Position: p.finish(pos)}
	default:
		return p.parseSecondaryExpression()
	}
}

// parseSecondaryExpression is "primary (OPERATOR primary)*", left-folded
// into BinaryExpression with equal precedence for every operator —
// there is no precedence table anywhere in this grammar.
func (p *Parser) parseSecondaryExpression() ast.Expression {
	pos := p.start()
	expr := p.parsePrimaryExpression()
	for p.currentToken.Kind == token.OPERATOR {
		op := p.parseOperator()
		right := p.parsePrimaryExpression()
		expr = &ast.BinaryExpression{Left: expr, Operator: op, Right: right, Position: p.finish(pos)}
	}
	return expr
}

// parsePrimaryExpression dispatches on the current token to the leaf and
// compound forms expression grammar admits at this level.
func (p *Parser) parsePrimaryExpression() ast.Expression {
	pos := p.start()
	switch p.currentToken.Kind {

	case token.INTLITERAL:
		lit := p.parseIntegerLiteral()
		return &ast.IntegerExpression{Value: lit, Position: p.finish(pos)}

	case token.CHARLITERAL:
		lit := p.parseCharacterLiteral()
		return &ast.CharacterExpression{Value: lit, Position: p.finish(pos)}

	case token.LBRACKET:
		p.acceptIt()
		agg := p.parseArrayAggregate()
		p.accept(token.RBRACKET)
		return &ast.ArrayExpression{Value: agg, Position: p.finish(pos)}

	case token.LCURLY:
		p.acceptIt()
		agg := p.parseRecordAggregate()
		p.accept(token.RCURLY)
		return &ast.RecordExpression{Value: agg, Position: p.finish(pos)}

	case token.IDENTIFIER:
		id := p.parseIdentifier()
		if p.currentToken.Kind == token.LPAREN {
			p.acceptIt()
			params := p.parseActualParameterSequence()
			p.accept(token.RPAREN)
			return &ast.CallExpression{Identifier: id, Parameters: params, Position: p.finish(pos)}
		}
		variable := p.parseRestOfVname(id)
		return &ast.VnameExpression{Variable: variable, Position: p.finish(pos)}

	case token.OPERATOR:
		op := p.parseOperator()
		operand := p.parsePrimaryExpression()
		return &ast.UnaryExpression{Operator: op, Operand: operand, Position: p.finish(pos)}

	case token.LPAREN:
		p.acceptIt()
		expr := p.parseExpression()
		p.accept(token.RPAREN)
		return expr

	default:
		p.syntacticError("\"%\" cannot start an expression", p.currentToken.Spelling)
		return nil
	}
}

// parseRecordAggregate parses "Identifier is Expression (, RecordAggregate)?",
// right-associated.
func (p *Parser) parseRecordAggregate() ast.RecordAggregate {
	pos := p.start()
	id := p.parseIdentifier()
	p.accept(token.IS)
	value := p.parseExpression()
	if p.currentToken.Kind == token.COMMA {
		p.acceptIt()
		rest := p.parseRecordAggregate()
		return &ast.MultipleRecordAggregate{Identifier: id, Value: value, Rest: rest, Position: p.finish(pos)}
	}
	return &ast.SingleRecordAggregate{Identifier: id, Value: value, Position: p.finish(pos)}
}

// parseArrayAggregate parses "Expression (, ArrayAggregate)?", right-associated.
func (p *Parser) parseArrayAggregate() ast.ArrayAggregate {
	pos := p.start()
	value := p.parseExpression()
	if p.currentToken.Kind == token.COMMA {
		p.acceptIt()
		rest := p.parseArrayAggregate()
		return &ast.MultipleArrayAggregate{Value: value, Rest: rest, Position: p.finish(pos)}
	}
	return &ast.SingleArrayAggregate{Value: value, Position: p.finish(pos)}
}
