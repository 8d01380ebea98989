// Package replshell implements the interactive Read-Parse-Print Loop: a
// line-oriented shell where each line of input is parsed as a standalone
// program and its AST is echoed back in canonical form.
//
// This mirrors the teacher's repl package structurally (banner, readline,
// colored output, panic recovery around each line) with the evaluator
// step replaced by parse-and-print, since this module stops at the parser
// stage (spec.md §1, "downstream semantic analysis" is out of scope).
package replshell

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gotriangle/triparse/ast"
	"github.com/gotriangle/triparse/errs"
	"github.com/gotriangle/triparse/lexer"
	"github.com/gotriangle/triparse/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// exitCommand ends the session when typed alone on a line.
const exitCommand = ".exit"

// Shell is a configured Read-Parse-Print Loop session.
type Shell struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New returns a Shell ready to Start.
func New(banner, version, author, line, prompt string) *Shell {
	return &Shell{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

// printBanner writes the startup banner and usage hints to writer.
func (s *Shell) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", s.Line)
	greenColor.Fprintf(writer, "%s\n", s.Banner)
	blueColor.Fprintf(writer, "%s\n", s.Line)
	yellowColor.Fprintln(writer, "Version: "+s.Version+" | Author: "+s.Author)
	blueColor.Fprintf(writer, "%s\n", s.Line)
	cyanColor.Fprintf(writer, "%s\n", "Each line is parsed as a standalone program.")
	cyanColor.Fprintf(writer, "%s\n", "Type '"+exitCommand+"' to quit.")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate history.")
	blueColor.Fprintf(writer, "%s\n", s.Line)
}

// Start runs the loop until the user exits or readline reports EOF.
func (s *Shell) Start(writer io.Writer) {
	s.printBanner(writer)

	rl, err := readline.New(s.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Goodbye!\n"))
			return
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == exitCommand {
			writer.Write([]byte("Goodbye!\n"))
			return
		}
		rl.SaveHistory(line)

		s.parseAndPrint(writer, line)
	}
}

// parseAndPrint parses one line and echoes its canonical form, recovering
// from any panic so a malformed line never kills the session.
func (s *Shell) parseAndPrint(writer io.Writer, line string) {
	defer func() {
		if r := recover(); r != nil {
			redColor.Fprintf(writer, "[internal error] %v\n", r)
		}
	}()

	reporter := errs.NewCollectingReporter()
	p := parser.New(lexer.New(line), reporter)
	program := p.Parse()

	if reporter.HasErrors() {
		for _, d := range reporter.Diagnostics {
			redColor.Fprintf(writer, "%s\n", d.Message())
		}
		return
	}
	if program == nil {
		redColor.Fprintf(writer, "[parse error] no program produced\n")
		return
	}

	yellowColor.Fprintf(writer, "%s\n", ast.Sprint(program))
}
