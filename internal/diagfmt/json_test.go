package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"optlint/internal/diag"
	"optlint/internal/metrics"
	"optlint/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("<?php\nupdate_option('name', $v, 'yes');\n")
	fileID := fs.AddVirtual("test.php", content)

	bag := diag.NewBag(10)
	bag.Add(diag.New(
		diag.SevWarning,
		diag.AutoloadDeprecatedValue,
		source.Span{File: fileID, Start: 32, End: 37},
		"the autoload value 'yes' is deprecated, use true instead",
	))

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
		IncludeFixes:     true,
	}
	if err := JSON(&buf, bag, fs, nil, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput: %s", err, buf.String())
	}

	if output.Count != 1 {
		t.Errorf("count = %d, want 1", output.Count)
	}
	if len(output.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %d, want 1", len(output.Diagnostics))
	}

	d := output.Diagnostics[0]
	if d.Severity != "WARNING" {
		t.Errorf("severity = %s, want WARNING", d.Severity)
	}
	if d.Code != "OPT3002" {
		t.Errorf("code = %s, want OPT3002", d.Code)
	}
	if d.Location.File != "test.php" {
		t.Errorf("file = %s, want test.php", d.Location.File)
	}
	if d.Location.StartByte != 32 || d.Location.EndByte != 37 {
		t.Errorf("bytes = %d-%d, want 32-37", d.Location.StartByte, d.Location.EndByte)
	}
	if d.Location.StartLine != 2 {
		t.Errorf("start_line = %d, want 2", d.Location.StartLine)
	}
	if d.Location.StartCol != 27 {
		t.Errorf("start_col = %d, want 27", d.Location.StartCol)
	}
}

func TestJSONWithNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("update_option('name', $v, 'on')")
	fileID := fs.AddVirtual("test.php", content)

	valueSpan := source.Span{File: fileID, Start: 26, End: 30}
	d := diag.New(diag.SevWarning, diag.AutoloadInternalValue, valueSpan,
		"the autoload value 'on' is reserved for internal use, use true instead")
	d = d.WithNote(source.Span{File: fileID, Start: 0, End: 13}, "in this call")
	d = d.WithFix(diag.Fix{
		ID:    "autoload-value",
		Title: "replace 'on' with true",
		Edits: []diag.TextEdit{{Span: valueSpan, NewText: "true", OldText: "'on'"}},
	})

	bag := diag.NewBag(10)
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
		IncludeFixes:     true,
	}
	if err := JSON(&buf, bag, fs, nil, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	dj := output.Diagnostics[0]
	if len(dj.Notes) != 1 || dj.Notes[0].Message != "in this call" {
		t.Fatalf("notes = %v, want one note", dj.Notes)
	}
	if len(dj.Fixes) != 1 {
		t.Fatalf("fixes = %d, want 1", len(dj.Fixes))
	}

	fj := dj.Fixes[0]
	if fj.Title != "replace 'on' with true" {
		t.Errorf("fix title = %q", fj.Title)
	}
	if fj.Applicability != "always-safe" {
		t.Errorf("applicability = %q, want always-safe", fj.Applicability)
	}
	if len(fj.Edits) != 1 {
		t.Fatalf("edits = %d, want 1", len(fj.Edits))
	}
	if fj.Edits[0].NewText != "true" || fj.Edits[0].OldText != "'on'" {
		t.Errorf("edit = %+v", fj.Edits[0])
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.php", []byte("add_option('a')"))

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevInfo, diag.AutoloadInfo,
		source.Span{File: fileID, Start: 0, End: 10}, "info"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, nil, JSONOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	d := output.Diagnostics[0]
	if d.Location.StartLine != 0 {
		t.Errorf("start_line = %d, want omitted", d.Location.StartLine)
	}
	if d.Location.StartByte != 0 || d.Location.EndByte != 10 {
		t.Errorf("byte offsets missing: %+v", d.Location)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.php", []byte("some content"))

	bag := diag.NewBag(10)
	for i := 0; i < 5; i++ {
		bag.Add(diag.New(diag.SevWarning, diag.AutoloadMissing,
			source.Span{File: fileID, Start: uint32(i), End: uint32(i + 1)}, "missing"))
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, nil, JSONOpts{PathMode: PathModeBasename, Max: 3}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if output.Count != 3 || len(output.Diagnostics) != 3 {
		t.Errorf("count = %d, diagnostics = %d, want 3 each", output.Count, len(output.Diagnostics))
	}
}

func TestJSONMetrics(t *testing.T) {
	fs := source.NewFileSet()
	bag := diag.NewBag(10)
	totals := []metrics.Total{
		{Metric: "autoload value", Value: "true", Count: 3},
		{Metric: "autoload value", Value: "yes", Count: 1},
	}

	var buf bytes.Buffer
	opts := JSONOpts{PathMode: PathModeBasename, IncludeMetrics: true}
	if err := JSON(&buf, bag, fs, totals, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(output.Metrics) != 2 {
		t.Fatalf("metrics = %v, want 2 entries", output.Metrics)
	}
	if output.Metrics[0].Value != "true" || output.Metrics[0].Count != 3 {
		t.Errorf("metrics[0] = %+v", output.Metrics[0])
	}

	// metrics stay out unless asked for
	buf.Reset()
	if err := JSON(&buf, bag, fs, totals, JSONOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	output = DiagnosticsOutput{}
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(output.Metrics) != 0 {
		t.Errorf("metrics leaked without IncludeMetrics: %v", output.Metrics)
	}
}
