package token

import "testing"

func mkStream(kinds ...Kind) *Stream {
	toks := make([]Token, len(kinds))
	for i, k := range kinds {
		toks[i] = Token{Kind: k}
	}
	return NewStream(toks)
}

func TestStreamAt(t *testing.T) {
	s := mkStream(Ident, LParen, RParen)

	if got := s.At(1).Kind; got != LParen {
		t.Errorf("At(1) = %v, want LParen", got)
	}
	if got := s.At(-1).Kind; got != EOF {
		t.Errorf("At(-1) = %v, want EOF", got)
	}
	if got := s.At(3).Kind; got != EOF {
		t.Errorf("At(3) = %v, want EOF", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestFindNext(t *testing.T) {
	// add_option ( $a , true )
	s := mkStream(Ident, LParen, Variable, Comma, Ident, RParen)

	tests := []struct {
		name     string
		from     int
		before   int
		kinds    []Kind
		expected int
	}{
		{"first comma", 0, -1, []Kind{Comma}, 3},
		{"from past match", 4, -1, []Kind{Comma}, -1},
		{"bounded window excludes match", 0, 3, []Kind{Comma}, -1},
		{"multiple kinds", 0, -1, []Kind{Comma, Variable}, 2},
		{"negative from clamps", -5, -1, []Kind{Ident}, 0},
		{"before past end clamps", 0, 100, []Kind{RParen}, 5},
		{"no match", 0, -1, []Kind{LBrace}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.FindNext(tt.from, tt.before, tt.kinds...)
			if got != tt.expected {
				t.Errorf("FindNext(%d, %d, %v) = %d, want %d",
					tt.from, tt.before, tt.kinds, got, tt.expected)
			}
		})
	}
}

func TestFindPrev(t *testing.T) {
	s := mkStream(Ident, LParen, Variable, Comma, Ident, RParen)

	tests := []struct {
		name     string
		from     int
		after    int
		kinds    []Kind
		expected int
	}{
		{"last ident", 5, 0, []Kind{Ident}, 4},
		{"bounded below", 3, 3, []Kind{Ident}, -1},
		{"from past end clamps", 100, 0, []Kind{RParen}, 5},
		{"negative after clamps", 2, -5, []Kind{Ident}, 0},
		{"no match", 5, 0, []Kind{LBrace}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.FindPrev(tt.from, tt.after, tt.kinds...)
			if got != tt.expected {
				t.Errorf("FindPrev(%d, %d, %v) = %d, want %d",
					tt.from, tt.after, tt.kinds, got, tt.expected)
			}
		})
	}
}

func TestMatchingClose(t *testing.T) {
	tests := []struct {
		name     string
		kinds    []Kind
		open     int
		expected int
	}{
		{
			name:     "flat parens",
			kinds:    []Kind{Ident, LParen, Variable, RParen},
			open:     1,
			expected: 3,
		},
		{
			name:     "nested call inside argument list",
			kinds:    []Kind{Ident, LParen, Ident, LParen, RParen, Comma, Ident, RParen},
			open:     1,
			expected: 7,
		},
		{
			name:     "mixed bracket shapes",
			kinds:    []Kind{LParen, LBracket, Ident, RBracket, RParen},
			open:     0,
			expected: 4,
		},
		{
			name:     "unclosed group",
			kinds:    []Kind{LParen, Ident},
			open:     0,
			expected: -1,
		},
		{
			name:     "not an opener",
			kinds:    []Kind{Ident, LParen, RParen},
			open:     0,
			expected: -1,
		},
		{
			name:     "out of range",
			kinds:    []Kind{LParen, RParen},
			open:     9,
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mkStream(tt.kinds...).MatchingClose(tt.open)
			if got != tt.expected {
				t.Errorf("MatchingClose(%d) = %d, want %d", tt.open, got, tt.expected)
			}
		})
	}
}
