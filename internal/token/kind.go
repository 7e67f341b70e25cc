package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier or unqualified constant name.
	Ident
	// Variable represents a $name variable reference.
	Variable

	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwArray represents the 'array' keyword (long-form array syntax).
	KwArray // array
	// KwStatic represents the 'static' keyword.
	KwStatic // static
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwEcho represents the 'echo' keyword.
	KwEcho // echo
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace // namespace
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwForeach represents the 'foreach' keyword.
	KwForeach // foreach
	// KwMatch represents the 'match' keyword.
	KwMatch // match

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a float literal token.
	FloatLit
	// StringLit represents a single-quoted, double-quoted, heredoc, or
	// nowdoc string literal token.
	StringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Dot represents the string concatenation operator token.
	Dot // .
	// Assign represents the assignment operator token.
	Assign // =
	// EqEq represents the loose equality operator token.
	EqEq // ==
	// EqEqEq represents the strict equality operator token.
	EqEqEq // ===
	// Bang represents the negation operator token.
	Bang // !
	// BangEq represents the loose inequality operator token.
	BangEq // !=
	// BangEqEq represents the strict inequality operator token.
	BangEqEq // !==
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// AndAnd represents the logical-and operator token.
	AndAnd // &&
	// OrOr represents the logical-or operator token.
	OrOr // ||
	// Amp represents the ampersand (reference / bitwise-and) token.
	Amp // &
	// Pipe represents the bitwise-or operator token.
	Pipe // |
	// Caret represents the bitwise-xor operator token.
	Caret // ^
	// Tilde represents the bitwise-not operator token.
	Tilde // ~
	// Question represents the question operator token.
	Question // ?
	// QuestionQuestion represents the null-coalescing operator token.
	QuestionQuestion // ??
	// QuestionArrow represents the nullsafe object operator token.
	QuestionArrow // ?->
	// Colon represents the colon token (named arguments, ternary else).
	Colon // :
	// DoubleColon represents the scope resolution operator token.
	DoubleColon // ::
	// Semicolon represents the statement terminator token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Arrow represents the object operator token.
	Arrow // ->
	// DoubleArrow represents the key => value separator token.
	DoubleArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token (short array syntax).
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Backslash represents the namespace separator token.
	Backslash // \
	// Ellipsis represents the spread / first-class-callable marker token.
	Ellipsis // ...
	// At represents the error-suppression operator token.
	At // @
	// Dollar represents a bare dollar sign (variable variables).
	Dollar // $
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	Variable:         "Variable",
	KwFunction:       "function",
	KwFn:             "fn",
	KwUse:            "use",
	KwAs:             "as",
	KwArray:          "array",
	KwStatic:         "static",
	KwClass:          "class",
	KwNew:            "new",
	KwReturn:         "return",
	KwEcho:           "echo",
	KwNamespace:      "namespace",
	KwGlobal:         "global",
	KwIf:             "if",
	KwElse:           "else",
	KwForeach:        "foreach",
	KwMatch:          "match",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	StringLit:        "StringLit",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	Percent:          "%",
	Dot:              ".",
	Assign:           "=",
	EqEq:             "==",
	EqEqEq:           "===",
	Bang:             "!",
	BangEq:           "!=",
	BangEqEq:         "!==",
	Lt:               "<",
	LtEq:             "<=",
	Gt:               ">",
	GtEq:             ">=",
	AndAnd:           "&&",
	OrOr:             "||",
	Amp:              "&",
	Pipe:             "|",
	Caret:            "^",
	Tilde:            "~",
	Question:         "?",
	QuestionQuestion: "??",
	QuestionArrow:    "?->",
	Colon:            ":",
	DoubleColon:      "::",
	Semicolon:        ";",
	Comma:            ",",
	Arrow:            "->",
	DoubleArrow:      "=>",
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	Backslash:        "\\",
	Ellipsis:         "...",
	At:               "@",
	Dollar:           "$",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Kind(?)"
}
