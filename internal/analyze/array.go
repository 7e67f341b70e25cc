package analyze

import (
	"optlint/internal/source"
	"optlint/internal/token"
)

// unwrapArrayValues fans an array-literal argument out into one
// value-span per top-level entry. For `key => value` pairs the value
// side is taken; plain entries are used whole. Returns false when the
// argument is not an array literal (short `[...]` or long `array(...)`)
// and its contents cannot be enumerated statically.
func unwrapArrayValues(s *token.Stream, file *source.File, arg Argument) ([]Argument, bool) {
	if arg.End <= arg.Start {
		return nil, false
	}

	open := -1
	switch s.At(arg.Start).Kind {
	case token.LBracket:
		open = arg.Start
	case token.KwArray:
		if s.At(arg.Start+1).Kind == token.LParen {
			open = arg.Start + 1
		}
	}
	if open < 0 {
		return nil, false
	}

	closeIdx := s.MatchingClose(open)
	if closeIdx < 0 || closeIdx >= arg.End {
		return nil, false
	}

	var values []Argument
	for _, sp := range splitTopLevel(s, open+1, closeIdx) {
		lo, hi := sp[0], sp[1]
		if arrow := findTopLevelArrow(s, lo, hi); arrow >= 0 {
			lo = arrow + 1
		}
		if lo >= hi {
			// `key =>` with nothing after it; skip the malformed pair
			continue
		}
		values = append(values, Argument{
			Start: lo,
			End:   hi,
			Raw:   rawText(s, file, lo, hi),
			Clean: cleanText(s, lo, hi),
		})
	}
	return values, true
}

// findTopLevelArrow returns the index of the first => at depth zero in
// [lo, hi), or -1.
func findTopLevelArrow(s *token.Stream, lo, hi int) int {
	depth := 0
	for i := lo; i < hi; i++ {
		tok := s.At(i)
		switch {
		case tok.IsOpener():
			depth++
		case tok.IsCloser():
			depth--
		case tok.Kind == token.DoubleArrow && depth == 0:
			return i
		}
	}
	return -1
}
