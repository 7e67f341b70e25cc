package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident    string
		expected Kind
		ok       bool
	}{
		{"function", KwFunction, true},
		{"FUNCTION", KwFunction, true},
		{"Function", KwFunction, true},
		{"use", KwUse, true},
		{"as", KwAs, true},
		{"array", KwArray, true},
		{"ARRAY", KwArray, true},
		{"match", KwMatch, true},
		{"add_option", 0, false},
		{"true", 0, false}, // bool constants stay Ident
		{"null", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			k, ok := LookupKeyword(tt.ident)
			if ok != tt.ok {
				t.Fatalf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.ok)
			}
			if ok && k != tt.expected {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, k, tt.expected)
			}
		})
	}
}

func TestKeywordTokensReportIsKeyword(t *testing.T) {
	for ident, kind := range keywords {
		tok := Token{Kind: kind, Text: ident}
		if !tok.IsKeyword() {
			t.Errorf("Token for %q does not report IsKeyword", ident)
		}
	}
	if (Token{Kind: Ident, Text: "true"}).IsKeyword() {
		t.Error("Ident reported as keyword")
	}
}
