package source

import (
	"testing"
)

func TestFileSet_AddAndGet(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("test.src", []byte("hello\nworld\n"))
	f := fs.Get(id)

	if f.Path != "test.src" {
		t.Errorf("Path = %q, want %q", f.Path, "test.src")
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
	if f.Len() != 12 {
		t.Errorf("Len() = %d, want 12", f.Len())
	}
}

func TestFileSet_DuplicatePathGetsFreshID(t *testing.T) {
	fs := NewFileSet()

	first := fs.AddVirtual("a.src", []byte("one"))
	second := fs.AddVirtual("a.src", []byte("two"))

	if first == second {
		t.Fatal("expected distinct IDs for re-added path")
	}
	// Индекс указывает на последнюю версию файла.
	f, ok := fs.GetByPath("a.src")
	if !ok {
		t.Fatal("GetByPath failed")
	}
	if string(f.Content) != "two" {
		t.Errorf("latest content = %q, want %q", f.Content, "two")
	}
}

func TestFileSet_Resolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.src", []byte("aa\nbb\ncc\n"))

	start, end := fs.Resolve(Span{File: id, Start: 3, End: 7})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %+v, want 2:1", start)
	}
	if end != (LineCol{Line: 3, Col: 2}) {
		t.Errorf("end = %+v, want 3:2", end)
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("l.src", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

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
		if got := f.GetLine(tt.line); got != tt.expected {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.expected)
		}
	}
}
