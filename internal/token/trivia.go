package token

import "optlint/internal/source"

// TriviaKind classifies non-significant token material.
type TriviaKind uint8

const (
	// TriviaSpace is a run of spaces and tabs.
	TriviaSpace TriviaKind = iota
	// TriviaNewline is a run of newlines.
	TriviaNewline
	// TriviaLineComment is a // or # comment up to end of line.
	TriviaLineComment
	// TriviaBlockComment is a /* ... */ comment.
	TriviaBlockComment
	// TriviaDocBlock is a /** ... */ docblock.
	TriviaDocBlock
	// TriviaInlineHTML is raw output outside <?php ... ?> regions.
	TriviaInlineHTML
	// TriviaOpenTag is a <?php or <?= tag.
	TriviaOpenTag
	// TriviaCloseTag is a ?> tag.
	TriviaCloseTag
)

var triviaNames = map[TriviaKind]string{
	TriviaSpace:        "Space",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
	TriviaDocBlock:     "DocBlock",
	TriviaInlineHTML:   "InlineHTML",
	TriviaOpenTag:      "OpenTag",
	TriviaCloseTag:     "CloseTag",
}

func (k TriviaKind) String() string {
	if s, ok := triviaNames[k]; ok {
		return s
	}
	return "TriviaKind(?)"
}

// Trivia is a single piece of non-significant source text attached to
// the significant token that follows it.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
