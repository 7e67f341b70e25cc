package analyze

import (
	"strings"

	"optlint/internal/registry"
	"optlint/internal/token"
)

// Category is the outcome of classifying one argument occurrence.
type Category uint8

const (
	// Valid values need no diagnostic.
	Valid Category = iota
	// Undetermined values cannot be resolved statically; silent.
	Undetermined
	// Deprecated spellings carry a safe replacement.
	Deprecated
	// InternalFixable spellings are reserved but mechanically mappable.
	InternalFixable
	// InternalNonFixable spellings are reserved with no static mapping.
	InternalNonFixable
	// InvalidOther covers determinable values outside every known set.
	InvalidOther
)

// Verdict is the classification result plus what the emitter needs:
// the metric value, and for fixable categories the replacement text and
// the token it replaces.
type Verdict struct {
	Category    Category
	Value       string
	Replacement string
	FixTok      int
}

// deprecatedValues and internalFixableValues map discouraged spellings
// to their boolean replacements; internalValues have no replacement.
var deprecatedValues = map[string]string{
	"yes": "true",
	"no":  "false",
}

var internalFixableValues = map[string]string{
	"on":  "true",
	"off": "false",
}

var internalValues = map[string]bool{
	"auto":     true,
	"auto-on":  true,
	"auto-off": true,
}

// classify runs the decision table over one value span. First match
// wins:
//  1. normalized value in the entry's valid set
//  2. leading variable or bare identifier (other than null) -> undetermined
//  3. multi-token span not starting with an array opener -> undetermined
//  4. unquoted value in the deprecated / internal sets
//  5. anything else determinable -> invalid
//
// Normalization lowercases the span's cleaned text; a leading namespace
// separator before a bare true/false/null collapses to the bare
// literal, and the collapsed span counts as single-token in rule 3.
func classify(s *token.Stream, entry *registry.Entry, arg Argument) Verdict {
	count := arg.End - arg.Start
	if count <= 0 {
		return Verdict{Category: Undetermined, Value: "undetermined value"}
	}

	t1 := s.At(arg.Start)
	eff := arg.Start
	norm := strings.ToLower(arg.Clean)

	// `\true`, `\false`, `\null` collapse to the bare literal; the span
	// then behaves as that single effective token for every later rule.
	collapsed := false
	if t1.Kind == token.Backslash && count == 2 {
		if low := strings.ToLower(s.At(arg.Start + 1).Text); low == "true" || low == "false" || low == "null" {
			norm = low
			eff = arg.Start + 1
			collapsed = true
		}
	}

	if entry.Accepts(norm) {
		return Verdict{Category: Valid, Value: norm}
	}

	if t1.Kind == token.Variable ||
		(t1.Kind == token.Ident && strings.ToLower(t1.Text) != "null") {
		return Verdict{Category: Undetermined, Value: "undetermined value"}
	}

	if count >= 2 && !collapsed && !isArrayOpener(s, arg.Start) {
		return Verdict{Category: Undetermined, Value: "undetermined value"}
	}

	unq := unquote(norm)
	if repl, ok := deprecatedValues[unq]; ok {
		return Verdict{Category: Deprecated, Value: unq, Replacement: repl, FixTok: eff}
	}
	if repl, ok := internalFixableValues[unq]; ok {
		return Verdict{Category: InternalFixable, Value: unq, Replacement: repl, FixTok: eff}
	}
	if internalValues[unq] {
		return Verdict{Category: InternalNonFixable, Value: unq}
	}

	return Verdict{Category: InvalidOther, Value: "other value"}
}

// isArrayOpener reports whether the token at i starts an array literal,
// short or long form.
func isArrayOpener(s *token.Stream, i int) bool {
	switch s.At(i).Kind {
	case token.LBracket:
		return true
	case token.KwArray:
		return s.At(i+1).Kind == token.LParen
	default:
		return false
	}
}

// unquote strips one matching pair of surrounding quotes.
func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '\'' && v[len(v)-1] == '\'') || (v[0] == '"' && v[len(v)-1] == '"') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
