package diag

import (
	"testing"

	"quell/internal/source"
)

func TestDedupReporter(t *testing.T) {
	bag := NewBag(16)
	rep := NewDedupReporter(BagReporter{Bag: bag})

	span := source.Span{File: 1, Start: 10, End: 14}
	rep.Report(Code(42), SevWarning, span, "unused value", nil)
	// Та же находка из развёрнутой формы — повтор.
	rep.Report(Code(42), SevWarning, span, "unused value", nil)
	// Любое отличие ключа делает диагностику уникальной.
	rep.Report(Code(42), SevError, span, "unused value", nil)
	rep.Report(Code(42), SevWarning, span, "other message", nil)
	rep.Report(Code(42), SevWarning, source.Span{File: 1, Start: 20, End: 24}, "unused value", nil)

	if bag.Len() != 4 {
		t.Fatalf("forwarded %d diagnostics, want 4", bag.Len())
	}
	// Порядок поступления сохраняется.
	items := bag.Items()
	if items[0].Severity != SevWarning || items[1].Severity != SevError {
		t.Errorf("unexpected order: %+v", items)
	}
}

func TestDedupReporter_NilSafe(t *testing.T) {
	var rep *DedupReporter
	rep.Report(Code(1), SevWarning, source.Span{}, "ignored", nil)

	inner := NewDedupReporter(nil)
	inner.Report(Code(1), SevWarning, source.Span{}, "ignored", nil)
}
