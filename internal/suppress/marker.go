package suppress

import (
	"quell/internal/ast"
	"quell/internal/source"
)

// MarkerResolution is the outcome of looking up the suppression marker
// type by its fully qualified name. Resolution happens once per engine
// lifetime; an unresolved marker is an explicit state, not an error, and
// permanently disables the marker mechanism for the run.
type MarkerResolution struct {
	// Name is the interned annotation name compared against wrapper
	// references and type/symbol annotation lists.
	Name source.StringID
	// Type is the resolved marker type handle.
	Type ast.TypeID

	resolved bool
}

// Unresolved is the degraded no-marker state.
var Unresolved = MarkerResolution{}

// Resolved reports whether the marker type was found.
func (m MarkerResolution) Resolved() bool {
	return m.resolved
}

// ResolveMarker looks the marker type up in the universe by its fully
// qualified name. A missing type yields Unresolved; никакого
// исключительного control flow — вызывающий проверяет Resolved().
func ResolveMarker(u *ast.Universe, fqn string) MarkerResolution {
	if u == nil || fqn == "" {
		return Unresolved
	}
	typ, ok := u.LookupType(fqn)
	if !ok {
		return Unresolved
	}
	return MarkerResolution{
		Name:     u.InternName(fqn),
		Type:     typ,
		resolved: true,
	}
}
