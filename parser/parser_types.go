package parser

import (
	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/token"
)

// parseTypeDenoter dispatches on the current token: a bare identifier
// names a type, ARRAY introduces a fixed-size array type, RECORD a
// labeled field list.
func (p *Parser) parseTypeDenoter() ast.TypeDenoter {
	pos := p.start()
	switch p.currentToken.Kind {

	case token.IDENTIFIER:
		id := p.parseIdentifier()
		return &ast.SimpleTypeDenoter{Identifier: id, Position: p.finish(pos)}

	case token.ARRAY:
		p.acceptIt()
		size := p.parseIntegerLiteral()
		p.accept(token.OF)
		elem := p.parseTypeDenoter()
		return &ast.ArrayTypeDenoter{Size: size, Element: elem, Position: p.finish(pos)}

	case token.RECORD:
		p.acceptIt()
		fields := p.parseFieldTypeDenoter()
		p.accept(token.END)
		return &ast.RecordTypeDenoter{Fields: fields, Position: p.finish(pos)}

	default:
		p.syntacticError("\"%\" cannot start a type denoter", p.currentToken.Spelling)
		return nil
	}
}

// parseFieldTypeDenoter parses "Identifier : TypeDenoter (, FieldTypeDenoter)?",
// right-associated.
func (p *Parser) parseFieldTypeDenoter() ast.FieldTypeDenoter {
	pos := p.start()
	id := p.parseIdentifier()
	p.accept(token.COLON)
	typ := p.parseTypeDenoter()
	if p.currentToken.Kind == token.COMMA {
		p.acceptIt()
		rest := p.parseFieldTypeDenoter()
		return &ast.MultipleFieldTypeDenoter{Identifier: id, Type: typ, Rest: rest, Position: p.finish(pos)}
	}
	return &ast.SingleFieldTypeDenoter{Identifier: id, Type: typ, Position: p.finish(pos)}
}
