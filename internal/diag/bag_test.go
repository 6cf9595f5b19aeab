package diag

import (
	"testing"

	"quell/internal/source"
)

func TestBag_AddRespectsLimit(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(New(SevWarning, UnknownCode, source.Span{}, "one")) {
		t.Fatal("first Add should succeed")
	}
	if !bag.Add(New(SevWarning, UnknownCode, source.Span{}, "two")) {
		t.Fatal("second Add should succeed")
	}
	if bag.Add(New(SevWarning, UnknownCode, source.Span{}, "three")) {
		t.Error("Add past the limit should fail")
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(8)
	bag.Add(New(SevInfo, ConfInfo, source.Span{}, "note"))

	if bag.HasErrors() || bag.HasWarnings() {
		t.Error("info-only bag should have neither errors nor warnings")
	}

	bag.Add(New(SevWarning, SupInfo, source.Span{}, "careful"))
	if !bag.HasWarnings() {
		t.Error("expected HasWarnings after adding a warning")
	}
	if bag.HasErrors() {
		t.Error("warning must not count as error")
	}

	bag.Add(NewError(UnknownCode, source.Span{}, "boom"))
	if !bag.HasErrors() {
		t.Error("expected HasErrors after adding an error")
	}
}

func TestBag_SortIsDeterministic(t *testing.T) {
	bag := NewBag(8)
	bag.Add(New(SevWarning, SupInfo, source.Span{File: 1, Start: 50, End: 60}, "later"))
	bag.Add(New(SevWarning, SupInfo, source.Span{File: 0, Start: 10, End: 20}, "earlier file"))
	bag.Add(New(SevError, SupInfo, source.Span{File: 1, Start: 50, End: 60}, "same span, higher sev"))

	bag.Sort()
	items := bag.Items()
	if items[0].Message != "earlier file" {
		t.Errorf("first item = %q, want %q", items[0].Message, "earlier file")
	}
	// При равном спане ошибка идёт раньше предупреждения.
	if items[1].Severity != SevError {
		t.Errorf("second item severity = %v, want SevError", items[1].Severity)
	}
}

func TestBag_Dedup(t *testing.T) {
	bag := NewBag(8)
	d := New(SevWarning, SupInfo, source.Span{File: 0, Start: 1, End: 2}, "dup")
	bag.Add(d)
	bag.Add(d)
	bag.Add(New(SevWarning, SupInfo, source.Span{File: 0, Start: 3, End: 4}, "other"))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("Len() after Dedup = %d, want 2", bag.Len())
	}
}

func TestCode_ID(t *testing.T) {
	tests := []struct {
		code     Code
		expected string
	}{
		{ConfBadPattern, "CONF1001"},
		{ConfMarkerUnresolved, "CONF1002"},
		{SupScanFailed, "SUP2001"},
		{Code(42), "HOST0042"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.expected {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.expected)
		}
	}
}
