package parser

import (
	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/source"
	"github.com/gotriangle/triparse/token"
)

// parseVname consumes a leading identifier and delegates the suffixes to
// parseRestOfVname.
func (p *Parser) parseVname() ast.Vname {
	id := p.parseIdentifier()
	return p.parseRestOfVname(id)
}

// parseRestOfVname starts with SimpleVname(id) and left-folds dot and
// subscript suffixes while the current token is DOT or LBRACKET. The
// result is left-deep: the outermost suffix is the outermost node.
func (p *Parser) parseRestOfVname(id *ast.Identifier) ast.Vname {
	pos := source.Position{Start: id.Position.Start}
	var v ast.Vname = &ast.SimpleVname{Identifier: id, Position: id.Position}
	for p.currentToken.Kind == token.DOT || p.currentToken.Kind == token.LBRACKET {
		switch p.currentToken.Kind {
		case token.DOT:
			p.acceptIt()
			field := p.parseIdentifier()
			v = &ast.DotVname{Base: v, Field: field, Position: p.finish(pos)}
		case token.LBRACKET:
			p.acceptIt()
			index := p.parseExpression()
			p.accept(token.RBRACKET)
			v = &ast.SubscriptVname{Base: v, Index: index, Position: p.finish(pos)}
		}
	}
	return v
}
