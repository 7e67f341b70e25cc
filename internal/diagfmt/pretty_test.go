package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"optlint/internal/diag"
	"optlint/internal/source"
)

func TestPrettyBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("<?php\nupdate_option('x', $v, 'yes');\n")
	fileID := fs.AddVirtual("test.php", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevWarning,
		diag.AutoloadDeprecatedValue,
		source.Span{File: fileID, Start: 29, End: 34},
		"the autoload value 'yes' is deprecated, use true instead",
	))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	expected := "test.php:2:24: WARNING OPT3002: the autoload value 'yes' is deprecated, use true instead\n" +
		"    update_option('x', $v, 'yes');\n" +
		"    " + strings.Repeat(" ", 23) + "^~~~~\n"
	if buf.String() != expected {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("add_option('a', 1, '', 'on');")
	fileID := fs.AddVirtual("test.php", content)

	valueSpan := source.Span{File: fileID, Start: 23, End: 27}
	d := diag.New(diag.SevWarning, diag.AutoloadInternalValue, valueSpan,
		"the autoload value 'on' is reserved for internal use, use true instead")
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 10}, "in this call")
	d = d.WithFix(diag.Fix{Title: "replace 'on' with true"})

	bag := diag.NewBag(10)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{
		PathMode:  PathModeBasename,
		ShowNotes: true,
		ShowFixes: true,
	})

	out := buf.String()
	if !strings.Contains(out, "note: test.php:1:1: in this call") {
		t.Errorf("note line missing:\n%s", out)
	}
	if !strings.Contains(out, "fix: replace 'on' with true") {
		t.Errorf("fix line missing:\n%s", out)
	}
}

func TestPrettyNotesSuppressed(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.php", []byte("add_option('a');"))

	d := diag.New(diag.SevWarning, diag.AutoloadMissing,
		source.Span{File: fileID, Start: 0, End: 10}, "missing")
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 10}, "hidden note")

	bag := diag.NewBag(10)
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})
	if strings.Contains(buf.String(), "hidden note") {
		t.Errorf("note rendered despite ShowNotes=false:\n%s", buf.String())
	}
}

func TestPrettyUnderlineClippedAtLineEnd(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("short;\n")
	fileID := fs.AddVirtual("test.php", content)

	bag := diag.NewBag(10)
	// span runs past the end of the line
	bag.Add(diag.New(diag.SevError, diag.LexUnknownChar,
		source.Span{File: fileID, Start: 4, End: 40}, "bad"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected three output lines, got:\n%s", buf.String())
	}
	marker := strings.TrimLeft(lines[2], " ")
	if marker != "^~" {
		t.Errorf("marker = %q, want clipped %q", marker, "^~")
	}
}

func TestPrettyEmptyBag(t *testing.T) {
	fs := source.NewFileSet()
	var buf bytes.Buffer
	Pretty(&buf, diag.NewBag(10), fs, PrettyOpts{})
	if buf.Len() != 0 {
		t.Errorf("empty bag produced output: %q", buf.String())
	}
}
