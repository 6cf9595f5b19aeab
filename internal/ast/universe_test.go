package ast

import (
	"testing"
)

func TestUniverse_LookupType(t *testing.T) {
	u := NewUniverse()
	id := u.AddType("corp.lint.Suppress")

	got, ok := u.LookupType("corp.lint.Suppress")
	if !ok || got != id {
		t.Errorf("LookupType = %d, %v; want %d, true", got, ok, id)
	}

	if _, ok := u.LookupType("corp.lint.Missing"); ok {
		t.Error("lookup of unregistered type must fail")
	}
}

func TestUniverse_TypeAnnotations(t *testing.T) {
	u := NewUniverse()
	marker := u.InternName("corp.lint.Suppress")
	plain := u.AddType("corp.Plain")
	tagged := u.AddType("corp.Tagged", "corp.lint.Suppress", "corp.Other")

	if u.TypeHasAnnotation(plain, marker) {
		t.Error("plain type must not carry the marker")
	}
	if !u.TypeHasAnnotation(tagged, marker) {
		t.Error("tagged type must carry the marker")
	}
	if u.TypeHasAnnotation(NoTypeID, marker) {
		t.Error("NoTypeID carries nothing")
	}
}

func TestUniverse_SymbolAnnotations(t *testing.T) {
	u := NewUniverse()
	marker := u.InternName("corp.lint.Suppress")
	sym := u.AddSymbol("pkg.fn", "corp.lint.Suppress")
	bare := u.AddSymbol("pkg.other")

	if !u.SymbolHasAnnotation(sym, marker) {
		t.Error("annotated symbol must carry the marker")
	}
	if u.SymbolHasAnnotation(bare, marker) {
		t.Error("bare symbol must not carry the marker")
	}
}

func TestUniverse_ReRegisterTypeName(t *testing.T) {
	u := NewUniverse()
	first := u.AddType("corp.T")
	second := u.AddType("corp.T", "corp.lint.Suppress")

	got, ok := u.LookupType("corp.T")
	if !ok || got != second {
		t.Errorf("LookupType = %d, %v; want latest %d", got, ok, second)
	}
	if first == second {
		t.Error("expected distinct IDs for re-registered type")
	}
}
