package diag

import (
	"optlint/internal/source"
)

// Note is secondary context attached to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit replaces the text at Span with NewText. OldText, when set, is
// verified against the current file content before the splice.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixApplicability says how safely a fix can be applied without review.
type FixApplicability uint8

const (
	// FixApplicabilityAlwaysSafe fixes may be applied in bulk.
	FixApplicabilityAlwaysSafe FixApplicability = iota
	// FixApplicabilityMaybeIncorrect fixes need a human look first.
	FixApplicabilityMaybeIncorrect
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilityMaybeIncorrect:
		return "maybe-incorrect"
	}
	return "unknown"
}

// Fix is a suggested correction carried by a diagnostic.
type Fix struct {
	ID            string
	Title         string
	Applicability FixApplicability
	IsPreferred   bool
	Edits         []TextEdit
}

// Diagnostic is one reported finding.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(fix Fix) Diagnostic {
	d.Fixes = append(d.Fixes, fix)
	return d
}

// Fixable reports whether the diagnostic carries at least one fix with
// edits.
func (d Diagnostic) Fixable() bool {
	for _, f := range d.Fixes {
		if len(f.Edits) > 0 {
			return true
		}
	}
	return false
}
