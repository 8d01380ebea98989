package errs

import "github.com/gotriangle/triparse/source"

// CollectingReporter records diagnostics instead of terminating the
// process. Most calls to ReportError are followed by a Bailout panic in
// package parser, unwinding the current parse on the first syntactic
// error; the one exception is the user-operator arity well-formedness
// check, which reports and lets parsing continue. Either way the caller —
// a test, or the REPL — gets the diagnostic back instead of losing the
// process.
type CollectingReporter struct {
	SessionID   SessionID
	Diagnostics []Diagnostic
}

// NewCollectingReporter returns a CollectingReporter with a fresh SessionID.
func NewCollectingReporter() *CollectingReporter {
	return &CollectingReporter{SessionID: NewSessionID()}
}

// ReportError implements Reporter.
func (r *CollectingReporter) ReportError(template, substitution string, pos source.Position) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Template:     template,
		Substitution: substitution,
		Position:     pos,
	})
}

// HasErrors reports whether any diagnostic was recorded.
func (r *CollectingReporter) HasErrors() bool { return len(r.Diagnostics) > 0 }

// First returns the first recorded diagnostic's rendered message, or ""
// if none was recorded.
func (r *CollectingReporter) First() string {
	if len(r.Diagnostics) == 0 {
		return ""
	}
	return r.Diagnostics[0].Message()
}
