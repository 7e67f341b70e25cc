package analyze

import "optlint/internal/token"

// isCallSite reports whether the registered identifier at identIdx is a
// genuine invocation of the global function. Rejected shapes:
//   - method and static calls (`->`, `?->`, `::` before the name): a
//     same-named method on some class is a different function
//   - `new name(...)` instantiations
//   - `function name(...)` declarations and `use function name` imports
//   - any identifier not directly followed by an opening parenthesis
//   - first-class callable references, `name(...)` with nothing else
//     between the parentheses
//
// The stream carries significant tokens only, so adjacency here already
// skips comments and whitespace.
func (a *Analyzer) isCallSite(identIdx int) bool {
	s := a.Stream
	prev := s.At(identIdx - 1)
	next := s.At(identIdx + 1)

	switch prev.Kind {
	case token.Arrow, token.QuestionArrow, token.DoubleColon, token.KwNew, token.KwFunction:
		return false
	}

	if next.Kind != token.LParen {
		return false
	}

	if s.At(identIdx+2).Kind == token.Ellipsis && s.At(identIdx+3).Kind == token.RParen {
		return false
	}

	return true
}
