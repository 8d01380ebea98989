package parser

import (
	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/token"
)

// parseIdentifier accepts the current IDENTIFIER token and wraps its
// spelling as an ast.Identifier leaf.
func (p *Parser) parseIdentifier() *ast.Identifier {
	pos := p.start()
	spelling := p.currentToken.Spelling
	p.accept(token.IDENTIFIER)
	return &ast.Identifier{Spelling: spelling, Position: p.finish(pos)}
}

// parseOperator accepts the current OPERATOR token.
func (p *Parser) parseOperator() *ast.Operator {
	pos := p.start()
	spelling := p.currentToken.Spelling
	p.accept(token.OPERATOR)
	return &ast.Operator{Spelling: spelling, Position: p.finish(pos)}
}

// parseIntegerLiteral accepts the current INTLITERAL token.
func (p *Parser) parseIntegerLiteral() *ast.IntegerLiteral {
	pos := p.start()
	spelling := p.currentToken.Spelling
	p.accept(token.INTLITERAL)
	return &ast.IntegerLiteral{Spelling: spelling, Position: p.finish(pos)}
}

// parseCharacterLiteral accepts the current CHARLITERAL token.
func (p *Parser) parseCharacterLiteral() *ast.CharacterLiteral {
	pos := p.start()
	spelling := p.currentToken.Spelling
	p.accept(token.CHARLITERAL)
	return &ast.CharacterLiteral{Spelling: spelling, Position: p.finish(pos)}
}
