package lexer

import (
	"optlint/internal/diag"
	"optlint/internal/token"
)

// scanString scans a single- or double-quoted literal into one
// StringLit token. Newlines are legal inside PHP strings. Interpolation
// inside double quotes is not split out; the analysis treats any
// interpolated string as opaque anyway.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			// eat the escape pair; no deep validation here
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanHeredoc scans <<<LABEL ... LABEL and <<<'LABEL' ... LABEL bodies
// into one StringLit token. The closing label may be indented (PHP 7.3
// flexible syntax).
func (lx *Lexer) scanHeredoc() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '<'
	lx.cursor.Bump() // '<'
	lx.cursor.Bump() // '<'

	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}

	var quote byte
	if b := lx.cursor.Peek(); b == '\'' || b == '"' {
		quote = b
		lx.cursor.Bump()
	}

	labelStart := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	labelSpan := lx.cursor.SpanFrom(labelStart)
	label := lx.text(labelSpan)

	if quote != 0 && lx.cursor.Peek() == quote {
		lx.cursor.Bump()
	}

	if label == "" {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedHeredoc, sp, "heredoc without label")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}

	// body: scan line by line until a line whose first non-blank token
	// is the label
	for !lx.cursor.EOF() {
		// advance to the next line
		for !lx.cursor.EOF() && lx.cursor.Bump() != '\n' {
		}
		lineStart := lx.cursor.Mark()
		for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
			lx.cursor.Bump()
		}
		wordStart := lx.cursor.Mark()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		word := lx.text(lx.cursor.SpanFrom(wordStart))
		if word == label {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		// body line; the next iteration consumes it up to \n
		lx.cursor.Reset(lineStart)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedHeredoc, sp, "unterminated heredoc string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
