package diag

import (
	"testing"

	"optlint/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(NewWarning(AutoloadMissing, span(0, 0, 1), "first")) {
		t.Error("first Add rejected")
	}
	if !bag.Add(NewWarning(AutoloadMissing, span(0, 1, 2), "second")) {
		t.Error("second Add rejected")
	}
	if bag.Add(NewWarning(AutoloadMissing, span(0, 2, 3), "third")) {
		t.Error("Add past the limit should be dropped")
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
	if bag.Cap() != 2 {
		t.Errorf("Cap() = %d, want 2", bag.Cap())
	}
}

func TestBagSeverityQueries(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("empty bag reports findings")
	}

	bag.Add(New(SevInfo, AutoloadInfo, span(0, 0, 1), "info"))
	if bag.HasWarnings() {
		t.Error("info-only bag reports warnings")
	}

	bag.Add(NewWarning(AutoloadDeprecatedValue, span(0, 1, 2), "warn"))
	if !bag.HasWarnings() {
		t.Error("warning not seen")
	}
	if bag.HasErrors() {
		t.Error("warning counted as error")
	}

	bag.Add(NewError(LexUnterminatedString, span(0, 2, 3), "err"))
	if !bag.HasErrors() {
		t.Error("error not seen")
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewWarning(AutoloadDeprecatedValue, span(1, 5, 9), "b"))
	bag.Add(NewWarning(AutoloadMissing, span(0, 20, 30), "c"))
	bag.Add(NewError(LexUnknownChar, span(0, 20, 30), "d"))
	bag.Add(NewWarning(AutoloadInvalidValue, span(0, 3, 8), "a"))

	bag.Sort()

	items := bag.Items()
	if items[0].Message != "a" {
		t.Errorf("items[0] = %q, want the earliest span in file 0", items[0].Message)
	}
	// same span: higher severity first
	if items[1].Message != "d" || items[2].Message != "c" {
		t.Errorf("same-span ordering = %q, %q; want error before warning", items[1].Message, items[2].Message)
	}
	if items[3].Message != "b" {
		t.Errorf("items[3] = %q, want the file 1 entry last", items[3].Message)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(NewWarning(AutoloadDeprecatedValue, span(0, 5, 10), "dup"))
	bag.Add(NewWarning(AutoloadDeprecatedValue, span(0, 5, 10), "dup again"))
	bag.Add(NewWarning(AutoloadInternalValue, span(0, 5, 10), "different code"))
	bag.Add(NewWarning(AutoloadDeprecatedValue, span(0, 6, 10), "different span"))

	bag.Dedup()

	if bag.Len() != 3 {
		t.Fatalf("Len() after Dedup = %d, want 3", bag.Len())
	}
	for _, d := range bag.Items() {
		if d.Message == "dup again" {
			t.Error("duplicate survived Dedup")
		}
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewWarning(AutoloadMissing, span(0, 0, 1), "a"))

	b := NewBag(2)
	b.Add(NewWarning(AutoloadMissing, span(0, 1, 2), "b1"))
	b.Add(NewWarning(AutoloadMissing, span(0, 2, 3), "b2"))

	a.Merge(b)
	if a.Len() != 3 {
		t.Fatalf("Len() after Merge = %d, want 3", a.Len())
	}
	// the limit grows only enough to fit the merged items
	if a.Add(NewWarning(AutoloadMissing, span(0, 3, 4), "post")) {
		t.Error("Add past the merged limit should be dropped")
	}
}
