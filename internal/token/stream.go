package token

// Stream is a read-only windowed view over an ordered token slice.
// The slice holds significant tokens only (trivia lives on Leading), so
// every scan below is already trivia-skipping.
type Stream struct {
	toks []Token
}

// NewStream wraps toks in a Stream. The slice is not copied; callers
// must not mutate it afterwards.
func NewStream(toks []Token) *Stream {
	return &Stream{toks: toks}
}

// Len returns the number of tokens in the stream.
func (s *Stream) Len() int { return len(s.toks) }

// At returns the token at index i. Out-of-range indices yield an EOF
// token so scans degrade instead of panicking.
func (s *Stream) At(i int) Token {
	if i < 0 || i >= len(s.toks) {
		return Token{Kind: EOF}
	}
	return s.toks[i]
}

// Tokens exposes the underlying slice. Read-only.
func (s *Stream) Tokens() []Token { return s.toks }

// FindNext returns the first index in [from, before) whose kind is in
// kinds, or -1. A before of -1 means the end of the stream.
func (s *Stream) FindNext(from, before int, kinds ...Kind) int {
	if before < 0 || before > len(s.toks) {
		before = len(s.toks)
	}
	if from < 0 {
		from = 0
	}
	for i := from; i < before; i++ {
		for _, k := range kinds {
			if s.toks[i].Kind == k {
				return i
			}
		}
	}
	return -1
}

// FindPrev returns the last index in [after, from] whose kind is in
// kinds, scanning backwards from from, or -1.
func (s *Stream) FindPrev(from, after int, kinds ...Kind) int {
	if from >= len(s.toks) {
		from = len(s.toks) - 1
	}
	if after < 0 {
		after = 0
	}
	for i := from; i >= after; i-- {
		for _, k := range kinds {
			if s.toks[i].Kind == k {
				return i
			}
		}
	}
	return -1
}

// MatchingClose returns the index of the closer balancing the opener at
// open, or -1 when the group never closes. Nested groups of any bracket
// shape are respected.
func (s *Stream) MatchingClose(open int) int {
	if open < 0 || open >= len(s.toks) || !s.toks[open].IsOpener() {
		return -1
	}
	depth := 0
	for i := open; i < len(s.toks); i++ {
		switch {
		case s.toks[i].IsOpener():
			depth++
		case s.toks[i].IsCloser():
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
