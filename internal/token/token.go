package token

import (
	"optlint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a PHP keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFunction, KwFn, KwUse, KwAs, KwArray, KwStatic, KwClass, KwNew,
		KwReturn, KwEcho, KwNamespace, KwGlobal, KwIf, KwElse, KwForeach, KwMatch:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsOpener reports whether the token opens a bracketed group.
func (t Token) IsOpener() bool {
	switch t.Kind {
	case LParen, LBrace, LBracket:
		return true
	default:
		return false
	}
}

// IsCloser reports whether the token closes a bracketed group.
func (t Token) IsCloser() bool {
	switch t.Kind {
	case RParen, RBrace, RBracket:
		return true
	default:
		return false
	}
}

// CloserFor returns the closing kind matching an opener.
func CloserFor(open Kind) Kind {
	switch open {
	case LParen:
		return RParen
	case LBrace:
		return RBrace
	case LBracket:
		return RBracket
	default:
		return Invalid
	}
}
