// Package token defines the PHP token alphabet produced by the lexer
// and a read-only Stream view used by the analysis passes. Trivia
// (whitespace, comments, inline HTML, open/close tags) is attached to
// the following significant token as Leading, so a token slice contains
// significant tokens only.
package token
