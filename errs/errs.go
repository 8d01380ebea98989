// Package errs implements the error-reporter contract the parser talks to
// (spec.md §6), plus the bailout mechanism that unwinds a failed parse
// back to its entry point (spec.md §9, "Control flow via long-jump on
// error").
package errs

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gotriangle/triparse/source"
)

// Reporter is the single collaborator the parser reports syntactic and
// well-formedness errors to. Template may contain one '%' character,
// replaced by substitution. The parser never assumes ReportError returns —
// a Reporter is free to terminate the process.
type Reporter interface {
	ReportError(template, substitution string, pos source.Position)
}

// Render expands template's single '%' placeholder with substitution,
// the shared formatting rule both Reporter implementations below use.
func Render(template, substitution string) string {
	return strings.Replace(template, "%", substitution, 1)
}

// Diagnostic is one reported error, as captured by CollectingReporter.
type Diagnostic struct {
	Template     string
	Substitution string
	Position     source.Position
}

// Message renders the diagnostic the way spec.md §7 requires:
// "<template-with-%-replaced> at <position>".
func (d Diagnostic) Message() string {
	return fmt.Sprintf("%s at %s", Render(d.Template, d.Substitution), d.Position)
}

// Bailout is the sentinel panic value parser.Parser uses to unwind to its
// entry point after a syntactic error, whatever the Reporter did. This is
// the same technique the Go standard library's own go/parser uses for
// fail-fast recursive descent: panic with a private sentinel type, recover
// it exactly once at the top of the call stack, and report the guaranteed
// nil result — it replaces the original implementation's thrown-string /
// caught-in-parseProgram control flow one-for-one (spec.md §9).
type Bailout struct{}

// SessionID tags every diagnostic emitted by one Reporter instance so
// multiple reports from one parse invocation (or one REPL turn) can be
// correlated — e.g. in a CLI that logs several files in one run.
type SessionID = uuid.UUID

// NewSessionID mints a fresh correlation id for a Reporter.
func NewSessionID() SessionID { return uuid.New() }
