package errs

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/gotriangle/triparse/source"
)

// ConsoleReporter prints one colored diagnostic line and exits the
// process — the direct analogue of the original Parser's
// syntacticError, which calls errorReporter->reportError(...) and then
// exit(1) (original_source/Parser.h). Color use mirrors the teacher's
// repl/main packages, which reserve FgRed for error output.
type ConsoleReporter struct {
	Out       io.Writer
	SessionID SessionID
	// Exit is called after the diagnostic is printed; it defaults to
	// os.Exit(1) but tests may override it to observe the call instead
	// of killing the test binary.
	Exit func(code int)
}

// NewConsoleReporter returns a ConsoleReporter writing to os.Stderr and
// exiting the process on report, with a fresh SessionID.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{
		Out:       os.Stderr,
		SessionID: NewSessionID(),
		Exit:      os.Exit,
	}
}

var errorColor = color.New(color.FgRed, color.Bold)

// ReportError implements Reporter.
func (r *ConsoleReporter) ReportError(template, substitution string, pos source.Position) {
	msg := Diagnostic{Template: template, Substitution: substitution, Position: pos}.Message()
	errorColor.Fprintf(r.Out, "[%s] %s\n", r.SessionID, msg)
	exit := r.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(1)
}
