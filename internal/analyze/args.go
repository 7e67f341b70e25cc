package analyze

import (
	"strings"

	"optlint/internal/registry"
	"optlint/internal/source"
	"optlint/internal/token"
)

// Argument is one supplied call argument as a token index range
// [Start, End). Name is set only for named-argument passing and never
// includes the colon.
type Argument struct {
	Start int
	End   int
	Name  string
	Raw   string // exact source slice
	Clean string // token texts joined with single spaces
}

// locateArguments splits the call's parenthesized argument list on
// top-level commas. Commas inside nested groups do not split. Returns
// nil when the call never closes.
func locateArguments(s *token.Stream, file *source.File, open int) []Argument {
	closeIdx := s.MatchingClose(open)
	if closeIdx < 0 {
		return nil
	}

	var args []Argument
	for _, sp := range splitTopLevel(s, open+1, closeIdx) {
		args = append(args, makeArgument(s, file, sp[0], sp[1]))
	}
	return args
}

// splitTopLevel returns the non-empty comma-separated sub-ranges of
// [lo, hi) at bracket depth zero.
func splitTopLevel(s *token.Stream, lo, hi int) [][2]int {
	var spans [][2]int
	depth := 0
	start := lo
	for i := lo; i < hi; i++ {
		tok := s.At(i)
		switch {
		case tok.IsOpener():
			depth++
		case tok.IsCloser():
			depth--
		case tok.Kind == token.Comma && depth == 0:
			if i > start {
				spans = append(spans, [2]int{start, i})
			}
			start = i + 1
		}
	}
	if hi > start {
		spans = append(spans, [2]int{start, hi})
	}
	return spans
}

func makeArgument(s *token.Stream, file *source.File, lo, hi int) Argument {
	name := ""
	// `ident:` prefix marks a named argument; requires a value after it
	if hi-lo >= 3 && s.At(lo).Kind == token.Ident && s.At(lo+1).Kind == token.Colon {
		name = s.At(lo).Text
		lo += 2
	}
	return Argument{
		Start: lo,
		End:   hi,
		Name:  name,
		Raw:   rawText(s, file, lo, hi),
		Clean: cleanText(s, lo, hi),
	}
}

// selectTarget picks the argument matching the registry selector. A
// named argument wins over position; named arguments do not consume
// positional slots. PHP named arguments are case-sensitive.
func selectTarget(args []Argument, entry *registry.Entry) (Argument, bool) {
	for _, a := range args {
		if a.Name != "" && a.Name == entry.ArgName {
			return a, true
		}
	}
	pos := 0
	for _, a := range args {
		if a.Name != "" {
			continue
		}
		if pos == entry.ArgPos {
			return a, true
		}
		pos++
	}
	return Argument{}, false
}

func rawText(s *token.Stream, file *source.File, lo, hi int) string {
	if lo >= hi {
		return ""
	}
	start := s.At(lo).Span.Start
	end := s.At(hi - 1).Span.End
	return string(file.Content[start:end])
}

func cleanText(s *token.Stream, lo, hi int) string {
	var b strings.Builder
	for i := lo; i < hi; i++ {
		if i > lo {
			b.WriteByte(' ')
		}
		b.WriteString(s.At(i).Text)
	}
	return b.String()
}
