package suppress

import (
	"quell/internal/ast"
	"quell/internal/diag"
	"quell/internal/source"
)

// Engine ties the pieces together for one run: filters compiled once,
// marker resolved once, a registry written by per-unit scans and read by
// the gate. The engine performs no IO and acquires no resources beyond
// the collaborators handed to it.
type Engine struct {
	files    *source.FileSet
	filters  *FilterSet
	registry *Registry
	marker   MarkerResolution
	gate     *Gate
	sink     diag.Reporter
}

// NewEngine validates cfg, resolves the marker type against the universe
// and returns a ready engine. A malformed filter pattern aborts here,
// before any unit is processed.
//
// An unresolved marker is non-fatal: the engine degrades to pattern-only
// suppression and reports that once, straight to the sink. The notice is
// itself exempt from suppression since it is not a per-unit diagnostic.
func NewEngine(cfg Config, files *source.FileSet, universe *ast.Universe, markerFQN string, sink diag.Reporter) (*Engine, error) {
	filters, err := NewFilterSet(cfg)
	if err != nil {
		return nil, err
	}

	marker := ResolveMarker(universe, markerFQN)
	registry := NewRegistry()

	e := &Engine{
		files:    files,
		filters:  filters,
		registry: registry,
		marker:   marker,
		gate:     NewGate(registry, filters, files),
		sink:     sink,
	}

	if markerFQN != "" && !marker.Resolved() && sink != nil {
		diag.ReportWarning(sink, diag.ConfMarkerUnresolved, source.Span{},
			"suppression marker type "+markerFQN+" not found; marker-based suppression disabled").Emit()
	}

	return e, nil
}

// Marker returns the resolution computed at attach time.
func (e *Engine) Marker() MarkerResolution {
	return e.marker
}

// Registry exposes the per-file range store (the gate's read side).
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Filters exposes the compiled filter set.
func (e *Engine) Filters() *FilterSet {
	return e.filters
}

// ScanUnit scans one unit's tree and replaces its file's registry entry.
// Must complete before the gate evaluates diagnostics of that unit's
// pass; entries for different files are independent.
func (e *Engine) ScanUnit(tree *ast.Tree) []Range {
	fileLen := e.files.Get(tree.File).Len()
	ranges := ScanTree(tree, e.marker, fileLen)
	e.registry.Record(tree.File, ranges)
	return ranges
}

// Evaluate decides forward-or-drop for one diagnostic.
func (e *Engine) Evaluate(d diag.Diagnostic) Verdict {
	return e.gate.Evaluate(d)
}

// Reporter returns the wrapping sink that applies the gate in front of
// the engine's configured sink.
func (e *Engine) Reporter() diag.Reporter {
	return NewGateReporter(e.gate, e.sink)
}
