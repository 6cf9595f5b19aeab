package source

import (
	"testing"
)

func TestInterner_InternAndLookup(t *testing.T) {
	in := NewInterner()

	id := in.Intern("demo.Suppress")
	if id == NoStringID {
		t.Fatal("expected non-zero ID")
	}
	if again := in.Intern("demo.Suppress"); again != id {
		t.Errorf("re-intern returned %d, want %d", again, id)
	}

	s, ok := in.Lookup(id)
	if !ok || s != "demo.Suppress" {
		t.Errorf("Lookup(%d) = %q, %v", id, s, ok)
	}
}

func TestInterner_Find(t *testing.T) {
	in := NewInterner()
	in.Intern("known")

	if _, ok := in.Find("known"); !ok {
		t.Error("Find(known) should succeed")
	}
	if id, ok := in.Find("missing"); ok {
		t.Errorf("Find(missing) = %d, %v; want miss", id, ok)
	}
}

func TestInterner_NoStringID(t *testing.T) {
	in := NewInterner()
	if in.Has(NoStringID) {
		t.Error("Has(NoStringID) must be false")
	}
	if s, ok := in.Lookup(NoStringID); ok || s != "" {
		t.Errorf("Lookup(NoStringID) = %q, %v; want empty string and false", s, ok)
	}
	if s, ok := in.Lookup(StringID(99)); ok || s != "" {
		t.Errorf("Lookup(out of range) = %q, %v; want miss", s, ok)
	}
	if in.Len() != 1 {
		t.Errorf("Len() = %d, want 1", in.Len())
	}
}
