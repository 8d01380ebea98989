package parser

import (
	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/token"
)

// parseCommand parses a single command, then left-folds further
// semicolon-separated commands into SequentialCommand: "a; b; c" becomes
// Sequential(Sequential(a, b), c).
func (p *Parser) parseCommand() ast.Command {
	pos := p.start()
	cmd := p.parseSingleCommand()
	for p.currentToken.Kind == token.SEMICOLON {
		p.acceptIt()
		second := p.parseSingleCommand()
		cmd = &ast.SequentialCommand{First: cmd, Second: second, Position: p.finish(pos)}
	}
	return cmd
}

// parseSingleCommand dispatches on the current token's kind to one of the
// command productions, or to EmptyCommand when the current token is in
// Command's FOLLOW set.
func (p *Parser) parseSingleCommand() ast.Command {
	pos := p.start()
	switch p.currentToken.Kind {

	case token.IDENTIFIER:
		id := p.parseIdentifier()
		if p.currentToken.Kind == token.LPAREN {
			p.acceptIt()
			params := p.parseActualParameterSequence()
			p.accept(token.RPAREN)
			return &ast.CallCommand{Identifier: id, Parameters: params, Position: p.finish(pos)}
		}
		variable := p.parseRestOfVname(id)
		p.accept(token.BECOMES)
		expr := p.parseExpression()
		return &ast.AssignCommand{Variable: variable, Expression: expr, Position: p.finish(pos)}

	case token.BEGIN:
		p.acceptIt()
		cmd := p.parseCommand()
		p.accept(token.END)
		return cmd

	case token.LET:
		p.acceptIt()
		decl := p.parseDeclaration()
		p.accept(token.IN_IN)
		body := p.parseSingleCommand()
		return &ast.LetCommand{Declaration: decl, Command: body, Position: p.finish(pos)}

	case token.IF:
		p.acceptIt()
		cond := p.parseExpression()
		p.accept(token.THEN)
		thenCmd := p.parseSingleCommand()
		p.accept(token.ELSE)
		elseCmd := p.parseSingleCommand()
		return &ast.IfCommand{Condition: cond, Then: thenCmd, Else: elseCmd, Position: p.finish(pos)}

	case token.WHILE:
		p.acceptIt()
		cond := p.parseExpression()
		p.accept(token.DO)
		body := p.parseSingleCommand()
		return &ast.WhileCommand{Condition: cond, Body: body, Position: p.finish(pos)}

	case token.REPEAT:
		p.acceptIt()
		body := p.parseSingleCommand()
		p.accept(token.UNTIL)
		cond := p.parseExpression()
		return &ast.RepeatCommand{Body: body, Condition: cond, Position: p.finish(pos)}

	case token.FOR:
		p.acceptIt()
		id := p.parseIdentifier()
		p.accept(token.FROM)
		lower := p.parseExpression()
		p.accept(token.TO)
		upper := p.parseExpression()
		p.accept(token.DO)
		body := p.parseSingleCommand()
		loopVar := &ast.ConstDeclaration{Identifier: id, Value: lower, Position: lower.Pos()}
		return &ast.ForCommand{LoopVariable: loopVar, LowerBound: lower, UpperBound: upper, Body: body, Position: p.finish(pos)}

	case token.CASE:
		p.acceptIt()
		selector := p.parseExpression()
		p.accept(token.OF)
		var labels []*ast.IntegerLiteral
		var bodies []ast.Command
		for p.currentToken.Kind != token.ELSE {
			label := p.parseIntegerLiteral()
			p.accept(token.COLON)
			body := p.parseSingleCommand()
			p.accept(token.SEMICOLON)
			labels = append(labels, label)
			bodies = append(bodies, body)
		}
		p.accept(token.ELSE)
		p.accept(token.COLON)
		elseBody := p.parseSingleCommand()
		return &ast.CaseCommand{Selector: selector, Labels: labels, Bodies: bodies, Else: elseBody, Position: p.finish(pos)}

	case token.SEMICOLON, token.END, token.ELSE, token.IN_IN, token.EOT:
		return &ast.EmptyCommand{Position: p.finish(pos)}

	default:
		p.syntacticError("\"%\" cannot start a command", p.currentToken.Spelling)
		return nil
	}
}
