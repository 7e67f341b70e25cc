package lexer

import (
	"optlint/internal/diag"
	"optlint/internal/source"
	"optlint/internal/token"
)

// scanNumber scans integer and float literals: decimal with optional _
// separators, 0x/0o/0b prefixes, fractional part, exponent. The literal
// value is never interpreted here; the analysis only needs the shape.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	// prefixed integers
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		switch b1 {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			n := 0
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				if lx.cursor.Bump() != '_' {
					n++
				}
			}
			sp := lx.cursor.SpanFrom(start)
			if n == 0 {
				lx.errLex(diag.LexBadNumber, sp, "hex literal without digits")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
		case 'b', 'B', 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
		}
	}

	isFloat := false
	lx.scanDigits()

	if lx.isNumberAfterDot() {
		isFloat = true
		lx.cursor.Bump() // '.'
		lx.scanDigits()
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (isDec(b1) || b1 == '+' || b1 == '-') {
			isFloat = true
			lx.cursor.Bump() // 'e'
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			lx.scanDigits()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	kind := token.IntLit
	if isFloat {
		kind = token.FloatLit
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) scanDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
