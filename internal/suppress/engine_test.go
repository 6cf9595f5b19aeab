package suppress

import (
	"testing"

	"quell/internal/ast"
	"quell/internal/diag"
	"quell/internal/source"
)

func TestEngine_EndToEnd(t *testing.T) {
	files := source.NewFileSet()
	fileA := files.AddVirtual("/repo/A.src", make([]byte, 512))

	u := ast.NewUniverse()
	u.AddType(markerFQN)
	sym := u.AddSymbol("pkg.noisy", markerFQN)

	sink := &recordingReporter{}
	eng, err := NewEngine(Config{}, files, u, markerFQN, sink)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	// Объявление с маркером, покрытие [100,140].
	b := ast.NewBuilder(u, fileA)
	body := b.Block(b.Span(105, 140), true)
	decl := b.Decl(sym, b.Span(100, 110), true, body)
	tree := b.Finish(b.Block(b.Span(0, 512), true, decl))

	eng.ScanUnit(tree)

	rep := eng.Reporter()
	rep.Report(diag.Code(1), diag.SevWarning, source.Span{File: fileA, Start: 120, End: 121}, "inside", nil)
	rep.Report(diag.Code(2), diag.SevWarning, source.Span{File: fileA, Start: 160, End: 161}, "outside", nil)

	if len(sink.got) != 1 {
		t.Fatalf("sink received %d diagnostics, want 1", len(sink.got))
	}
	if sink.got[0].Message != "outside" {
		t.Errorf("forwarded %q, want %q", sink.got[0].Message, "outside")
	}
}

// Конец спана узла переносится в диапазон как есть, и граница
// включительна: предупреждение ровно на конечном смещении подавляется.
func TestEngine_EndOffsetBoundarySuppressed(t *testing.T) {
	files := source.NewFileSet()
	id := files.AddVirtual("/repo/A.src", make([]byte, 256))

	u := ast.NewUniverse()
	u.AddType(markerFQN)

	eng, err := NewEngine(Config{}, files, u, markerFQN, diag.NopReporter{})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	b := ast.NewBuilder(u, id)
	tree := b.Finish(b.Block(b.Span(0, 256), true,
		b.Annotated(markerFQN, b.Span(100, 140), true)))
	eng.ScanUnit(tree)

	tests := []struct {
		name     string
		off      uint32
		expected Verdict
	}{
		{"at start", 100, Drop},
		{"at span end offset", 140, Drop},
		{"one past the boundary", 141, Forward},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := diag.NewWarning(diag.Code(1), source.Span{File: id, Start: tt.off, End: tt.off + 1}, "w")
			if got := eng.Evaluate(d); got != tt.expected {
				t.Errorf("offset %d: Evaluate = %v, want %v", tt.off, got, tt.expected)
			}
		})
	}
}

func TestEngine_UnresolvedMarkerDegradedMode(t *testing.T) {
	files := source.NewFileSet()
	id := files.AddVirtual("/repo/A.src", make([]byte, 64))

	u := ast.NewUniverse() // маркер нигде не объявлен

	sink := &recordingReporter{}
	eng, err := NewEngine(Config{MessageFilters: []string{"noisy"}}, files, u, markerFQN, sink)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	// Ровно одно конфигурационное предупреждение, сразу в sink, мимо гейта.
	if len(sink.got) != 1 {
		t.Fatalf("attach-time notices = %d, want 1", len(sink.got))
	}
	if sink.got[0].Code != diag.ConfMarkerUnresolved || sink.got[0].Severity != diag.SevWarning {
		t.Errorf("notice = %+v", sink.got[0])
	}

	// Сканы ничего не записывают.
	b := ast.NewBuilder(u, id)
	tree := b.Finish(b.Annotated(markerFQN, b.Span(0, 40), true))
	eng.ScanUnit(tree)

	if eng.Registry().Contains(id, 20) {
		t.Error("degraded mode must not record ranges")
	}

	// Механизмы (b) и (c) продолжают работать.
	sink.got = nil
	rep := eng.Reporter()
	rep.Report(diag.Code(3), diag.SevWarning, source.Span{File: id, Start: 20, End: 21}, "noisy warning", nil)
	rep.Report(diag.Code(4), diag.SevWarning, source.Span{File: id, Start: 20, End: 21}, "quiet warning", nil)
	if len(sink.got) != 1 || sink.got[0].Message != "quiet warning" {
		t.Errorf("pattern suppression must stay functional, sink = %+v", sink.got)
	}
}

func TestEngine_NoMarkerConfiguredIsSilent(t *testing.T) {
	files := source.NewFileSet()
	sink := &recordingReporter{}
	_, err := NewEngine(Config{}, files, ast.NewUniverse(), "", sink)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if len(sink.got) != 0 {
		t.Errorf("empty marker FQN must not produce a notice, got %+v", sink.got)
	}
}

func TestEngine_BadPatternAbortsConstruction(t *testing.T) {
	files := source.NewFileSet()
	_, err := NewEngine(Config{PathFilters: []string{"("}}, files, ast.NewUniverse(), "", diag.NopReporter{})
	if err == nil {
		t.Fatal("malformed pattern must abort engine construction")
	}
}

func TestEngine_RescanReplacesEntry(t *testing.T) {
	files := source.NewFileSet()
	id := files.AddVirtual("/repo/A.src", make([]byte, 256))

	u := ast.NewUniverse()
	u.AddType(markerFQN)

	eng, err := NewEngine(Config{}, files, u, markerFQN, diag.NopReporter{})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	b := ast.NewBuilder(u, id)
	tree1 := b.Finish(b.Annotated(markerFQN, b.Span(0, 50), true))
	eng.ScanUnit(tree1)
	if !eng.Registry().Contains(id, 25) {
		t.Fatal("first pass must record the range")
	}

	// Следующий проход: дерево без маркеров — старая запись уходит.
	b2 := ast.NewBuilder(u, id)
	tree2 := b2.Finish(b2.Block(b2.Span(0, 50), true))
	eng.ScanUnit(tree2)
	if eng.Registry().Contains(id, 25) {
		t.Error("second pass must discard the previous entry")
	}
}
