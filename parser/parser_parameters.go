package parser

import (
	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/token"
)

// parseFormalParameterSequence is empty iff the current token is RPAREN;
// otherwise it is a proper, right-associated sequence.
func (p *Parser) parseFormalParameterSequence() ast.FormalParameterSequence {
	pos := p.start()
	if p.currentToken.Kind == token.RPAREN {
		return &ast.EmptyFormalParameterSequence{Position: p.finish(pos)}
	}
	return p.parseProperFormalParameterSequence()
}

// parseProperFormalParameterSequence parses "FormalParameter (,
// ProperFormalParameterSequence)?", right-associated.
func (p *Parser) parseProperFormalParameterSequence() ast.FormalParameterSequence {
	pos := p.start()
	param := p.parseFormalParameter()
	if p.currentToken.Kind == token.COMMA {
		p.acceptIt()
		rest := p.parseProperFormalParameterSequence()
		return &ast.MultipleFormalParameterSequence{Parameter: param, Rest: rest, Position: p.finish(pos)}
	}
	return &ast.SingleFormalParameterSequence{Parameter: param, Position: p.finish(pos)}
}

// parseFormalParameter dispatches on the current token to one of the six
// parameter modes.
func (p *Parser) parseFormalParameter() ast.FormalParameter {
	pos := p.start()
	switch p.currentToken.Kind {

	case token.IDENTIFIER:
		id := p.parseIdentifier()
		p.accept(token.COLON)
		typ := p.parseTypeDenoter()
		return &ast.ConstFormalParameter{Identifier: id, Type: typ, Position: p.finish(pos)}

	case token.IN_IN:
		p.acceptIt()
		if p.currentToken.Kind == token.OUT {
			p.acceptIt()
			id := p.parseIdentifier()
			p.accept(token.COLON)
			typ := p.parseTypeDenoter()
			return &ast.ValueResultFormalParameter{Identifier: id, Type: typ, Position: p.finish(pos)}
		}
		id := p.parseIdentifier()
		p.accept(token.COLON)
		typ := p.parseTypeDenoter()
		return &ast.ConstFormalParameter{Identifier: id, Type: typ, Position: p.finish(pos)}

	case token.OUT:
		p.acceptIt()
		id := p.parseIdentifier()
		p.accept(token.COLON)
		typ := p.parseTypeDenoter()
		return &ast.ResultFormalParameter{Identifier: id, Type: typ, Position: p.finish(pos)}

	case token.VAR:
		p.acceptIt()
		id := p.parseIdentifier()
		p.accept(token.COLON)
		typ := p.parseTypeDenoter()
		return &ast.VarFormalParameter{Identifier: id, Type: typ, Position: p.finish(pos)}

	case token.PROC:
		p.acceptIt()
		id := p.parseIdentifier()
		p.accept(token.LPAREN)
		params := p.parseFormalParameterSequence()
		p.accept(token.RPAREN)
		return &ast.ProcFormalParameter{Identifier: id, Parameters: params, Position: p.finish(pos)}

	case token.FUNC:
		p.acceptIt()
		id := p.parseIdentifier()
		p.accept(token.LPAREN)
		params := p.parseFormalParameterSequence()
		p.accept(token.RPAREN)
		p.accept(token.COLON)
		typ := p.parseTypeDenoter()
		return &ast.FuncFormalParameter{Identifier: id, Parameters: params, Type: typ, Position: p.finish(pos)}

	default:
		p.syntacticError("\"%\" cannot start a formal parameter", p.currentToken.Spelling)
		return nil
	}
}

// parseActualParameterSequence mirrors parseFormalParameterSequence: empty
// iff the current token is RPAREN, else a proper sequence.
func (p *Parser) parseActualParameterSequence() ast.ActualParameterSequence {
	pos := p.start()
	if p.currentToken.Kind == token.RPAREN {
		return &ast.EmptyActualParameterSequence{Position: p.finish(pos)}
	}
	return p.parseProperActualParameterSequence()
}

// parseProperActualParameterSequence mirrors
// parseProperFormalParameterSequence.
func (p *Parser) parseProperActualParameterSequence() ast.ActualParameterSequence {
	pos := p.start()
	param := p.parseActualParameter()
	if p.currentToken.Kind == token.COMMA {
		p.acceptIt()
		rest := p.parseProperActualParameterSequence()
		return &ast.MultipleActualParameterSequence{Parameter: param, Rest: rest, Position: p.finish(pos)}
	}
	return &ast.SingleActualParameterSequence{Parameter: param, Position: p.finish(pos)}
}

// parseActualParameter dispatches on the current token. Any token in
// Expression's FIRST set parses a plain expression as a ConstActualParameter,
// as does IN followed by an expression; IN OUT, OUT, VAR, PROC and FUNC
// introduce the other five modes.
func (p *Parser) parseActualParameter() ast.ActualParameter {
	pos := p.start()
	switch p.currentToken.Kind {

	case token.IDENTIFIER, token.INTLITERAL, token.CHARLITERAL, token.OPERATOR,
		token.LET, token.IF, token.LPAREN, token.LBRACKET, token.LCURLY:
		expr := p.parseExpression()
		return &ast.ConstActualParameter{Expression: expr, Position: p.finish(pos)}

	case token.IN_IN:
		p.acceptIt()
		if p.currentToken.Kind == token.OUT {
			p.acceptIt()
			variable := p.parseVname()
			return &ast.ValueResultActualParameter{Variable: variable, Position: p.finish(pos)}
		}
		expr := p.parseExpression()
		return &ast.ConstActualParameter{Expression: expr, Position: p.finish(pos)}

	case token.OUT:
		p.acceptIt()
		variable := p.parseVname()
		return &ast.ResultActualParameter{Variable: variable, Position: p.finish(pos)}

	case token.VAR:
		p.acceptIt()
		variable := p.parseVname()
		return &ast.VarActualParameter{Variable: variable, Position: p.finish(pos)}

	case token.PROC:
		p.acceptIt()
		id := p.parseIdentifier()
		return &ast.ProcActualParameter{Identifier: id, Position: p.finish(pos)}

	case token.FUNC:
		p.acceptIt()
		id := p.parseIdentifier()
		return &ast.FuncActualParameter{Identifier: id, Position: p.finish(pos)}

	default:
		p.syntacticError("\"%\" cannot start an actual parameter", p.currentToken.Spelling)
		return nil
	}
}
