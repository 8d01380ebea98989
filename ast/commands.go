package ast

import "github.com/gotriangle/triparse/source"

// Command is the closed set of command forms: empty, assign, call,
// sequential, let, if, while, repeat, for, case.
type Command interface {
	Pos() source.Position
	commandNode()
}

// EmptyCommand is the command that does nothing — the production reached
// when a command is expected but the current token is in Command's FOLLOW
// set (SEMICOLON, END, ELSE, IN, EOT).
type EmptyCommand struct {
	Position source.Position
}

func (c *EmptyCommand) Pos() source.Position { return c.Position }
func (*EmptyCommand) commandNode()           {}

// AssignCommand is "Vname := Expression".
type AssignCommand struct {
	Variable   Vname
	Expression Expression
	Position   source.Position
}

func (c *AssignCommand) Pos() source.Position { return c.Position }
func (*AssignCommand) commandNode()           {}

// CallCommand is "Identifier ( ActualParameterSequence )" used as a command.
type CallCommand struct {
	Identifier *Identifier
	Parameters ActualParameterSequence
	Position   source.Position
}

func (c *CallCommand) Pos() source.Position { return c.Position }
func (*CallCommand) commandNode()           {}

// SequentialCommand is "Command1 ; Command2", built left-associated by
// parseCommand's fold: "a; b; c" is SequentialCommand(SequentialCommand(a,
// b), c).
type SequentialCommand struct {
	First, Second Command
	Position      source.Position
}

func (c *SequentialCommand) Pos() source.Position { return c.Position }
func (*SequentialCommand) commandNode()           {}

// LetCommand is "let Declaration in SingleCommand".
type LetCommand struct {
	Declaration Declaration
	Command     Command
	Position    source.Position
}

func (c *LetCommand) Pos() source.Position { return c.Position }
func (*LetCommand) commandNode()           {}

// IfCommand is "if Expression then SingleCommand else SingleCommand". The
// else branch is mandatory; there is no dangling-else ambiguity in this
// grammar.
type IfCommand struct {
	Condition  Expression
	Then, Else Command
	Position   source.Position
}

func (c *IfCommand) Pos() source.Position { return c.Position }
func (*IfCommand) commandNode()           {}

// WhileCommand is "while Expression do SingleCommand".
type WhileCommand struct {
	Condition Expression
	Body      Command
	Position  source.Position
}

func (c *WhileCommand) Pos() source.Position { return c.Position }
func (*WhileCommand) commandNode()           {}

// RepeatCommand is "repeat SingleCommand until Expression".
type RepeatCommand struct {
	Body      Command
	Condition Expression
	Position  source.Position
}

func (c *RepeatCommand) Pos() source.Position { return c.Position }
func (*RepeatCommand) commandNode()           {}

// ForCommand is "for Identifier from Expression to Expression do
// SingleCommand". LoopVariable is a ConstDeclaration synthesized by the
// parser, binding Identifier to LowerBound; LowerBound also appears
// standalone. Both are kept — see DESIGN.md's resolution of the "For"
// Open Question in spec.md §9; the redundancy is preserved, not collapsed.
type ForCommand struct {
	LoopVariable           *ConstDeclaration
	LowerBound, UpperBound Expression
	Body                   Command
	Position               source.Position
}

func (c *ForCommand) Pos() source.Position { return c.Position }
func (*ForCommand) commandNode()           {}

// CaseCommand is "case Expression of (IntegerLiteral : SingleCommand ;)*
// else : SingleCommand". Labels and Bodies are parallel and have equal
// length (the number of arms before the mandatory else); Else is held
// separately rather than as a trailing Bodies[len(Labels)] slot.
type CaseCommand struct {
	Selector Expression
	Labels   []*IntegerLiteral
	Bodies   []Command
	Else     Command
	Position source.Position
}

func (c *CaseCommand) Pos() source.Position { return c.Position }
func (*CaseCommand) commandNode()           {}

// Arms reports the number of labeled arms (excluding the mandatory else).
func (c *CaseCommand) Arms() int { return len(c.Labels) }
