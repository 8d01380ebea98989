// Package parser implements a recursive-descent, LL(1) parser for the
// language: it consumes a token.Token stream from a Scanner and produces
// the ast.Program this module's other packages describe.
//
// There is one routine per grammar nonterminal (parseCommand,
// parseExpression, parseDeclaration, ...), dispatching on the current
// token's kind with no backtracking and no operator-precedence table.
// parsing fails fast: the first syntactic error reports through the
// configured errs.Reporter and unwinds the whole parse via errs.Bailout,
// the same panic/recover technique the standard library's go/parser uses.
package parser

import (
	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/errs"
	"github.com/gotriangle/triparse/source"
	"github.com/gotriangle/triparse/token"
)

// Scanner is the lexical collaborator this package consumes. A
// *lexer.Lexer satisfies it; nothing in this package depends on package
// lexer directly.
type Scanner interface {
	Scan() token.Token
}

// Parser holds the state of one parse: the scanner, the error reporter,
// the current token, and the end position of the previously consumed
// token (positions are measured up to and including that offset).
//
// A Parser is single-use: construct one with New, call Parse once, and
// discard it. Two Parsers may run concurrently provided they have
// disjoint Scanners and Reporters.
type Parser struct {
	scanner               Scanner
	reporter              errs.Reporter
	currentToken          token.Token
	previousTokenPosition source.Position
}

// New returns a Parser that will read tokens from scanner and report
// errors to reporter.
func New(scanner Scanner, reporter errs.Reporter) *Parser {
	return &Parser{scanner: scanner, reporter: reporter}
}

// Parse runs parseProgram to completion, recovering from a Bailout raised
// anywhere in the recursive descent and returning nil in that case — the
// external contract is "AST root on success, nil on syntactic failure",
// exactly once reported.
func (p *Parser) Parse() (program *ast.Program) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(errs.Bailout); ok {
				program = nil
				return
			}
			panic(r)
		}
	}()
	p.previousTokenPosition = source.Position{Start: 0, Finish: 0}
	p.currentToken = p.scanner.Scan()
	return p.parseProgram()
}

// parseProgram is the grammar's start symbol: a single Command, followed
// by end of text.
func (p *Parser) parseProgram() *ast.Program {
	pos := p.start()
	cmd := p.parseCommand()
	if p.currentToken.Kind != token.EOT {
		p.syntacticError("\"%\" not expected after end of program", p.currentToken.Spelling)
	}
	p.accept(token.EOT)
	return &ast.Program{Command: cmd, Position: p.finish(pos)}
}

// start snapshots the current token's start offset, to be closed later by
// finish once the phrase's last token has been consumed.
func (p *Parser) start() source.Position {
	return source.Position{Start: p.currentToken.Position.Start}
}

// finish returns pos with its Finish set to the end of the most recently
// consumed token. Called once a phrase's last token has been accepted;
// callers that extend a phrase in a loop call it again each iteration.
func (p *Parser) finish(pos source.Position) source.Position {
	pos.Finish = p.previousTokenPosition.Finish
	return pos
}

// acceptIt unconditionally consumes the current token.
func (p *Parser) acceptIt() {
	p.previousTokenPosition = p.currentToken.Position
	p.currentToken = p.scanner.Scan()
}

// accept consumes the current token if it has the expected kind, else
// raises a syntactic error naming the kind that was expected.
func (p *Parser) accept(kind token.Kind) {
	if p.currentToken.Kind == kind {
		p.acceptIt()
		return
	}
	p.syntacticError("\"%\" expected here", token.Spell(kind))
}

// syntacticError reports template/substitution at the current token's
// position and unwinds the parse via Bailout. It never returns.
func (p *Parser) syntacticError(template, substitution string) {
	p.reporter.ReportError(template, substitution, p.currentToken.Position)
	panic(errs.Bailout{})
}
