package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddVirtual(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.php", []byte("a\nb\n"))
	if id != 0 {
		t.Errorf("first FileID = %d, want 0", id)
	}

	file := fs.Get(id)
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("LineIdx = %v, want %v", file.LineIdx, expected)
	}
	for i, want := range expected {
		if file.LineIdx[i] != want {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], want)
		}
	}
}

func TestAddKeepsVersions(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.php", []byte("version 1"), 0)
	id2 := fs.Add("test.php", []byte("version 2"), 0)
	if id1 == id2 {
		t.Fatal("expected a fresh FileID for the second Add")
	}

	if got, ok := fs.GetByPath("test.php"); !ok || got.ID != id2 {
		t.Errorf("GetByPath returned ID %v, want %d", got, id2)
	}
	if string(fs.Get(id1).Content) != "version 1" {
		t.Errorf("old version content lost: %q", fs.Get(id1).Content)
	}
	if string(fs.Get(id2).Content) != "version 2" {
		t.Errorf("new version content wrong: %q", fs.Get(id2).Content)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestAddContentHashDiffers(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.AddVirtual("a.php", []byte("one"))
	id2 := fs.AddVirtual("b.php", []byte("two"))
	if fs.Get(id1).Hash == fs.Get(id2).Hash {
		t.Error("distinct contents produced the same hash")
	}

	id3 := fs.AddVirtual("c.php", []byte("one"))
	if fs.Get(id1).Hash != fs.Get(id3).Hash {
		t.Error("identical contents produced different hashes")
	}
}

func TestLoadNormalizes(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		raw       string
		expected  string
		wantFlags FileFlags
	}{
		{"plain", "a\nb\n", "a\nb\n", 0},
		{"bom", "\xEF\xBB\xBFa\nb\n", "a\nb\n", FileHadBOM},
		{"crlf", "a\r\nb\r\n", "a\nb\n", FileNormalizedCRLF},
		{"bom and crlf", "\xEF\xBB\xBFa\r\n", "a\n", FileHadBOM | FileNormalizedCRLF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".php")
			if err := os.WriteFile(path, []byte(tt.raw), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}

			fs := NewFileSet()
			id, err := fs.Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			file := fs.Get(id)
			if string(file.Content) != tt.expected {
				t.Errorf("content = %q, want %q", file.Content, tt.expected)
			}
			if file.Flags != tt.wantFlags {
				t.Errorf("flags = %v, want %v", file.Flags, tt.wantFlags)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "absent.php")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.php", []byte("ab\ncd\n"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 5})
	if (start != LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %+v, want line 2 col 1", start)
	}
	if (end != LineCol{Line: 2, Col: 3}) {
		t.Errorf("end = %+v, want line 2 col 3", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("test.php", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	tests := []struct {
		line     uint32
		expected string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := file.GetLine(tt.line); got != tt.expected {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.expected)
		}
	}
}

func TestFormatPath(t *testing.T) {
	f := &File{Path: "sub/file.php"}

	if got := f.FormatPath("basename", ""); got != "file.php" {
		t.Errorf("basename = %q, want %q", got, "file.php")
	}
	if got := f.FormatPath("auto", ""); got != "sub/file.php" {
		t.Errorf("auto on short relative path = %q, want unchanged", got)
	}
	if got := f.FormatPath("", ""); got != "sub/file.php" {
		t.Errorf("unknown mode = %q, want raw path", got)
	}

	base := string(filepath.Separator) + filepath.Join("proj", "src")
	abs := filepath.Join(base, "file.php")
	f = &File{Path: abs}
	if got := f.FormatPath("relative", base); got != "file.php" {
		t.Errorf("relative = %q, want %q", got, "file.php")
	}
}
