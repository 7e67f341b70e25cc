package token

import "strings"

var keywords = map[string]Kind{
	"function":  KwFunction,
	"fn":        KwFn,
	"use":       KwUse,
	"as":        KwAs,
	"array":     KwArray,
	"static":    KwStatic,
	"class":     KwClass,
	"new":       KwNew,
	"return":    KwReturn,
	"echo":      KwEcho,
	"namespace": KwNamespace,
	"global":    KwGlobal,
	"if":        KwIf,
	"else":      KwElse,
	"foreach":   KwForeach,
	"match":     KwMatch,
}

// LookupKeyword returns the keyword kind for ident, if any. PHP keywords
// are case-insensitive, so FUNCTION and Function both resolve.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(ident)]
	return k, ok
}
