package ast

import (
	"quell/internal/source"
)

// TypeInfo describes one type known to the host front-end: its fully
// qualified name and the annotations attached at type level.
type TypeInfo struct {
	Name   source.StringID
	Annots []source.StringID
}

// SymbolInfo describes one declared symbol and its annotations.
type SymbolInfo struct {
	Name   source.StringID
	Annots []source.StringID
}

// Universe is the slice of the host's type-resolved world the engine
// needs: fully qualified names of types and annotations plus which
// annotations each type or symbol carries. One Universe outlives the
// trees built against it.
type Universe struct {
	names      *source.Interner
	types      *Arena[TypeInfo]
	symbols    *Arena[SymbolInfo]
	typeByName map[source.StringID]TypeID
}

func NewUniverse() *Universe {
	return &Universe{
		names:      source.NewInterner(),
		types:      NewArena[TypeInfo](1 << 6),
		symbols:    NewArena[SymbolInfo](1 << 6),
		typeByName: make(map[source.StringID]TypeID),
	}
}

// InternName даёт ID полному имени типа или аннотации.
func (u *Universe) InternName(fqn string) source.StringID {
	return u.names.Intern(fqn)
}

// NameOf возвращает строку по ID имени.
func (u *Universe) NameOf(id source.StringID) string {
	s, _ := u.names.Lookup(id)
	return s
}

// AddType registers a type with its type-level annotations and returns its ID.
// Re-registering a name replaces the lookup target; the old TypeID stays valid.
func (u *Universe) AddType(fqn string, annots ...string) TypeID {
	name := u.names.Intern(fqn)
	info := TypeInfo{Name: name, Annots: u.internAll(annots)}
	id := TypeID(u.types.Allocate(info))
	u.typeByName[name] = id
	return id
}

// AddSymbol registers a declared symbol with its annotations.
func (u *Universe) AddSymbol(name string, annots ...string) SymbolID {
	info := SymbolInfo{Name: u.names.Intern(name), Annots: u.internAll(annots)}
	return SymbolID(u.symbols.Allocate(info))
}

func (u *Universe) internAll(names []string) []source.StringID {
	if len(names) == 0 {
		return nil
	}
	out := make([]source.StringID, len(names))
	for i, n := range names {
		out[i] = u.names.Intern(n)
	}
	return out
}

// LookupType resolves a fully qualified name to a TypeID.
// Несуществующее имя — валидный исход, а не ошибка: хост может
// компилировать код без библиотеки, где объявлен маркер.
func (u *Universe) LookupType(fqn string) (TypeID, bool) {
	name, ok := u.names.Find(fqn)
	if !ok {
		return NoTypeID, false
	}
	id, ok := u.typeByName[name]
	return id, ok
}

// Type returns the registered info for id, or nil for NoTypeID.
func (u *Universe) Type(id TypeID) *TypeInfo {
	return u.types.Get(uint32(id))
}

// Symbol returns the registered info for id, or nil for NoSymbolID.
func (u *Universe) Symbol(id SymbolID) *SymbolInfo {
	return u.symbols.Get(uint32(id))
}

// TypeHasAnnotation reports whether the type carries the annotation name.
func (u *Universe) TypeHasAnnotation(id TypeID, annot source.StringID) bool {
	info := u.types.Get(uint32(id))
	if info == nil {
		return false
	}
	return hasName(info.Annots, annot)
}

// SymbolHasAnnotation reports whether the symbol carries the annotation name.
func (u *Universe) SymbolHasAnnotation(id SymbolID, annot source.StringID) bool {
	info := u.symbols.Get(uint32(id))
	if info == nil {
		return false
	}
	return hasName(info.Annots, annot)
}

func hasName(list []source.StringID, want source.StringID) bool {
	for _, id := range list {
		if id == want {
			return true
		}
	}
	return false
}
