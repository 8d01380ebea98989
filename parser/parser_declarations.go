package parser

import (
	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/token"
)

// parseDeclaration parses a single declaration, then left-folds further
// semicolon-separated declarations into SequentialDeclaration, the same
// way parseCommand folds SequentialCommand.
func (p *Parser) parseDeclaration() ast.Declaration {
	pos := p.start()
	decl := p.parseSingleDeclaration()
	for p.currentToken.Kind == token.SEMICOLON {
		p.acceptIt()
		second := p.parseSingleDeclaration()
		decl = &ast.SequentialDeclaration{First: decl, Second: second, Position: p.finish(pos)}
	}
	return decl
}

// parseSingleDeclaration dispatches on the current token's kind. The FUNC
// arm additionally enforces that a user-defined operator declaration has
// zero or one parameters (UserUnaryOperatorDeclaration) or exactly two
// (UserBinaryOperatorDeclaration); three or more is a violation reported to
// the error reporter without bailing out of the parse (spec.md §7, case 2 —
// the only well-formedness error that is not also a syntactic error).
func (p *Parser) parseSingleDeclaration() ast.Declaration {
	pos := p.start()
	switch p.currentToken.Kind {

	case token.CONST:
		p.acceptIt()
		id := p.parseIdentifier()
		p.accept(token.IS)
		value := p.parseExpression()
		return &ast.ConstDeclaration{Identifier: id, Value: value, Position: p.finish(pos)}

	case token.VAR:
		p.acceptIt()
		id := p.parseIdentifier()
		if p.currentToken.Kind == token.COLON {
			p.acceptIt()
			typ := p.parseTypeDenoter()
			return &ast.VarDeclaration{Identifier: id, Type: typ, Position: p.finish(pos)}
		}
		p.accept(token.BECOMES)
		value := p.parseExpression()
		return &ast.InitVarDeclaration{Identifier: id, Value: value, Position: p.finish(pos)}

	case token.PROC:
		p.acceptIt()
		id := p.parseIdentifier()
		p.accept(token.LPAREN)
		params := p.parseFormalParameterSequence()
		p.accept(token.RPAREN)
		p.accept(token.IS)
		body := p.parseSingleCommand()
		return &ast.ProcDeclaration{Identifier: id, Parameters: params, Command: body, Position: p.finish(pos)}

	case token.FUNC:
		p.acceptIt()
		if p.currentToken.Kind == token.IDENTIFIER {
			id := p.parseIdentifier()
			p.accept(token.LPAREN)
			params := p.parseFormalParameterSequence()
			p.accept(token.RPAREN)
			p.accept(token.COLON)
			typ := p.parseTypeDenoter()
			p.accept(token.IS)
			expr := p.parseExpression()
			return &ast.FuncDeclaration{Identifier: id, Parameters: params, Type: typ, Expression: expr, Position: p.finish(pos)}
		}
		op := p.parseOperator()
		p.accept(token.LPAREN)
		params := p.parseFormalParameterSequence()
		p.accept(token.RPAREN)
		p.accept(token.COLON)
		typ := p.parseTypeDenoter()
		p.accept(token.IS)
		expr := p.parseExpression()
		switch operatorArity(params) {
		case unaryOperator:
			return &ast.UserUnaryOperatorDeclaration{Operator: op, Parameters: params, Type: typ, Expression: expr, Position: p.finish(pos)}
		case binaryOperator:
			return &ast.UserBinaryOperatorDeclaration{Operator: op, Parameters: params, Type: typ, Expression: expr, Position: p.finish(pos)}
		default:
			p.reporter.ReportError("Operator declaration must have either 1 or 2 parameters", "", p.finish(pos))
			return nil
		}

	case token.TYPE:
		p.acceptIt()
		id := p.parseIdentifier()
		p.accept(token.IS)
		typ := p.parseTypeDenoter()
		return &ast.TypeDeclaration{Identifier: id, Type: typ, Position: p.finish(pos)}

	default:
		p.syntacticError("\"%\" cannot start a declaration", p.currentToken.Spelling)
		return nil
	}
}

// operatorArity classifies a FormalParameterSequence used in a user-defined
// operator declaration. Any sequence that is not itself a
// MultipleFormalParameterSequence (the empty sequence, zero params, or a
// single sequence, one param) is unary. A MultipleFormalParameterSequence
// whose Rest is not itself Multiple holds exactly two params and is binary.
// A MultipleFormalParameterSequence whose Rest is also Multiple has three or
// more params, which is the arity violation.
func operatorArity(seq ast.FormalParameterSequence) operatorArityKind {
	multiple, ok := seq.(*ast.MultipleFormalParameterSequence)
	if !ok {
		return unaryOperator
	}
	if _, restIsMultiple := multiple.Rest.(*ast.MultipleFormalParameterSequence); restIsMultiple {
		return invalidOperatorArity
	}
	return binaryOperator
}

type operatorArityKind int

const (
	unaryOperator operatorArityKind = iota
	binaryOperator
	invalidOperatorArity
)
