// Package analyze inspects call sites of the option-mutating function
// family and classifies the autoload argument's literal value. It is a
// pure pass over a token stream: diagnostics go to a diag.Reporter,
// observations to a metrics.Recorder, and the source is never touched.
package analyze

import (
	"fmt"
	"strings"

	"optlint/internal/diag"
	"optlint/internal/metrics"
	"optlint/internal/registry"
	"optlint/internal/source"
	"optlint/internal/token"
)

// MetricName keys every observation this pass records.
const MetricName = "autoload value"

// Analyzer runs the autoload check over one file's token stream.
type Analyzer struct {
	Stream   *token.Stream
	File     *source.File
	Reporter diag.Reporter
	Metrics  metrics.Recorder
}

func New(stream *token.Stream, file *source.File, reporter diag.Reporter, rec metrics.Recorder) *Analyzer {
	return &Analyzer{
		Stream:   stream,
		File:     file,
		Reporter: reporter,
		Metrics:  rec,
	}
}

// Run scans the stream for registered function names and checks every
// genuine call site. Function name matching is case-insensitive.
func (a *Analyzer) Run() {
	for i := 0; i < a.Stream.Len(); i++ {
		tok := a.Stream.At(i)
		if tok.Kind != token.Ident {
			continue
		}
		entry, ok := registry.Lookup(strings.ToLower(tok.Text))
		if !ok {
			continue
		}
		if !a.isCallSite(i) {
			continue
		}
		a.checkCall(i, entry)
	}
}

// checkCall resolves the call's arguments, selects the registered
// parameter, and classifies its value. Exactly one metric observation
// per examined occurrence; one diagnostic at most per non-valid one.
func (a *Analyzer) checkCall(identIdx int, entry *registry.Entry) {
	ident := a.Stream.At(identIdx)
	args := locateArguments(a.Stream, a.File, identIdx+1)

	target, ok := selectTarget(args, entry)
	if !ok {
		a.record(ident.Span, "param missing")
		if entry.Optional {
			msg := fmt.Sprintf("it is recommended to always pass the $%s parameter when calling %s()",
				entry.ArgName, entry.Name)
			diag.ReportWarning(a.Reporter, diag.AutoloadMissing, ident.Span, msg).Emit()
		}
		return
	}

	if entry.IsArray {
		values, ok := unwrapArrayValues(a.Stream, a.File, target)
		if !ok {
			// not an array literal; the contents are opaque
			return
		}
		for _, v := range values {
			a.classifyAndReport(entry, v)
		}
		return
	}

	a.classifyAndReport(entry, target)
}

func (a *Analyzer) classifyAndReport(entry *registry.Entry, arg Argument) {
	v := classify(a.Stream, entry, arg)
	at := a.argSpan(arg)
	a.record(at, v.Value)

	switch v.Category {
	case Valid, Undetermined:
		// silent outcomes

	case Deprecated:
		msg := fmt.Sprintf("the autoload value %s is deprecated, use %s instead", arg.Clean, v.Replacement)
		a.reportFixable(diag.AutoloadDeprecatedValue, at, msg, v)

	case InternalFixable:
		msg := fmt.Sprintf("the autoload value %s is reserved for internal use, use %s instead", arg.Clean, v.Replacement)
		a.reportFixable(diag.AutoloadInternalValue, at, msg, v)

	case InternalNonFixable:
		msg := fmt.Sprintf("the autoload value %s is reserved for internal use", arg.Clean)
		diag.ReportWarning(a.Reporter, diag.AutoloadInternalValue, at, msg).Emit()

	case InvalidOther:
		msg := fmt.Sprintf("invalid autoload value %s, use %s instead", arg.Clean, validList(entry))
		diag.ReportWarning(a.Reporter, diag.AutoloadInvalidValue, at, msg).Emit()
	}
}

func (a *Analyzer) reportFixable(code diag.Code, at source.Span, msg string, v Verdict) {
	tok := a.Stream.At(v.FixTok)
	fix := diag.Fix{
		ID:            "autoload-value",
		Title:         fmt.Sprintf("replace %s with %s", tok.Text, v.Replacement),
		Applicability: diag.FixApplicabilityAlwaysSafe,
		IsPreferred:   true,
		Edits: []diag.TextEdit{{
			Span:    tok.Span,
			NewText: v.Replacement,
			OldText: tok.Text,
		}},
	}
	diag.ReportWarning(a.Reporter, code, at, msg).WithFix(fix).Emit()
}

func (a *Analyzer) record(at source.Span, value string) {
	if a.Metrics == nil {
		return
	}
	a.Metrics.Record(at, MetricName, value)
}

// argSpan covers the argument's tokens.
func (a *Analyzer) argSpan(arg Argument) source.Span {
	if arg.End <= arg.Start {
		return a.Stream.At(arg.Start).Span
	}
	first := a.Stream.At(arg.Start).Span
	last := a.Stream.At(arg.End - 1).Span
	return first.Cover(last)
}

func validList(entry *registry.Entry) string {
	if entry.Accepts("null") {
		return "true, false or null"
	}
	return "true or false"
}
