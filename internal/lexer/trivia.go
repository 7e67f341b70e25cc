package lexer

import (
	"optlint/internal/diag"
	"optlint/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before the next
// significant token:
//   - inline HTML up to the next <?php / <?= tag (or EOF) while outside
//     a PHP region, plus the open tag itself
//   - ' '/'\t' runs coalesce into one TriviaSpace
//   - '\n' runs coalesce into one TriviaNewline
//   - //... and #... up to end of line -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment, /** ... */ -> TriviaDocBlock
//     (unterminated ones are reported and clipped at EOF)
//   - ?> leaves the PHP region; the tag is TriviaCloseTag
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		if !lx.inPHP {
			lx.scanInlineHTMLIntoHold()
			continue
		}

		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// space/tabs
		if b == ' ' || b == '\t' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaSpace, start)
			continue
		}

		// newlines (coalesced)
		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaNewline, start)
			continue
		}

		// # line comment (also covers #[ attributes, which this tool
		// does not inspect)
		if b == '#' {
			lx.skipToLineEnd()
			lx.holdTrivia(token.TriviaLineComment, start)
			continue
		}

		if b == '/' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '/' {
				lx.skipToLineEnd()
				lx.holdTrivia(token.TriviaLineComment, start)
				continue
			}
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && b1 == '*' {
				lx.scanBlockCommentIntoHold(start)
				continue
			}
		}

		// ?> closes the PHP region; a // or # comment above already ate
		// any ?> on its line, matching PHP's short-comment rule loosely.
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '?' && b1 == '>' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.holdTrivia(token.TriviaCloseTag, start)
			lx.inPHP = false
			continue
		}

		// no more trivia
		break
	}
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

// scanInlineHTMLIntoHold consumes raw output until an open tag or EOF,
// then the tag itself, switching the lexer into the PHP region.
func (lx *Lexer) scanInlineHTMLIntoHold() {
	htmlStart := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if lx.isOpenTag() {
			break
		}
		lx.cursor.Bump()
	}
	if lx.cursor.SpanFrom(htmlStart).Len() > 0 {
		lx.holdTrivia(token.TriviaInlineHTML, htmlStart)
	}
	if lx.cursor.EOF() {
		return
	}

	tagStart := lx.cursor.Mark()
	lx.cursor.Bump() // '<'
	lx.cursor.Bump() // '?'
	if lx.cursor.Peek() == '=' {
		lx.cursor.Bump()
	} else {
		// optional 'php' suffix, case-insensitive
		for _, want := range []byte{'p', 'h', 'p'} {
			got := lx.cursor.Peek()
			if got != want && got != want-('a'-'A') {
				break
			}
			lx.cursor.Bump()
		}
	}
	lx.holdTrivia(token.TriviaOpenTag, tagStart)
	lx.inPHP = true
}

// isOpenTag reports whether the cursor sits on <? (covering <?php and
// <?= as well).
func (lx *Lexer) isOpenTag() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '<' && b1 == '?'
}

func (lx *Lexer) skipToLineEnd() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		// stop short of ?> so templates like <?php # note ?> keep the
		// close tag
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '?' && b1 == '>' {
			return
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanBlockCommentIntoHold(start Mark) {
	lx.cursor.Bump() // '/'
	lx.cursor.Bump() // '*'
	kind := token.TriviaBlockComment
	if lx.cursor.Peek() == '*' {
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 != '/' {
			kind = token.TriviaDocBlock
		}
	}
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.holdTrivia(kind, start)
			return
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
	lx.holdTrivia(kind, start)
}
