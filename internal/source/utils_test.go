package source

import "testing"

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		expected    string
		wantChanged bool
	}{
		{"no carriage returns", "a\nb\n", "a\nb\n", false},
		{"crlf pairs", "a\r\nb\r\n", "a\nb\n", true},
		{"lone cr untouched", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
		{"empty", "", "", false},
		{"trailing cr", "a\n\r", "a\n\r", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed := normalizeCRLF([]byte(tt.in))
			if string(out) != tt.expected {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.in, out, tt.expected)
			}
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'x', '\n'}
	out, had := removeBOM(withBOM)
	if !had {
		t.Error("expected BOM to be detected")
	}
	if string(out) != "x\n" {
		t.Errorf("content after BOM removal = %q, want %q", out, "x\n")
	}

	plain := []byte("x\n")
	out, had = removeBOM(plain)
	if had {
		t.Error("BOM reported on plain content")
	}
	if string(out) != "x\n" {
		t.Errorf("plain content changed: %q", out)
	}

	short := []byte{0xEF, 0xBB}
	if _, had := removeBOM(short); had {
		t.Error("BOM reported on truncated prefix")
	}
}

func TestBuildLineIndex(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected []uint32
	}{
		{"empty", "", nil},
		{"no newlines", "hello", nil},
		{"only newline", "\n", []uint32{0}},
		{"two lines", "a\nb\n", []uint32{1, 3}},
		{"no trailing newline", "a\nbc", []uint32{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildLineIndex([]byte(tt.in))
			if len(got) != len(tt.expected) {
				t.Fatalf("buildLineIndex(%q) = %v, want %v", tt.in, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("index[%d] = %d, want %d", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n"
	//  012 345
	lineIdx := []uint32{2, 5}

	tests := []struct {
		off      uint32
		expected LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 1, Col: 3}}, // the newline itself
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{6, LineCol{Line: 3, Col: 1}}, // one past the last newline
	}

	for _, tt := range tests {
		got := toLineCol(lineIdx, tt.off)
		if got != tt.expected {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.expected)
		}
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("./a/b/../c.php"); got != "a/c.php" {
		t.Errorf("normalizePath = %q, want %q", got, "a/c.php")
	}
}
