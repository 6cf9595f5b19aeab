package suppress

import (
	"quell/internal/diag"
	"quell/internal/source"
)

// Verdict is the gate's decision for one diagnostic.
type Verdict uint8

const (
	// Forward passes the diagnostic to the sink unchanged.
	Forward Verdict = iota
	// Drop discards the diagnostic; it is never delivered and never logged.
	Drop
)

func (v Verdict) String() string {
	if v == Drop {
		return "drop"
	}
	return "forward"
}

// Gate intercepts each diagnostic before it reaches the sink and decides
// forward-or-drop against the registry and the filter set. Suppression is
// a warning-only feature: all other severities are inert here.
type Gate struct {
	registry *Registry
	filters  *FilterSet
	files    *source.FileSet
}

func NewGate(registry *Registry, filters *FilterSet, files *source.FileSet) *Gate {
	return &Gate{
		registry: registry,
		filters:  filters,
		files:    files,
	}
}

// Evaluate decides the verdict for one diagnostic. A warning is dropped
// when any of the three mechanisms holds (covering range, message
// pattern, path pattern); the checks are independent and unordered.
func (g *Gate) Evaluate(d diag.Diagnostic) Verdict {
	if d.Severity != diag.SevWarning {
		return Forward
	}
	if g.registry.Contains(d.Primary.File, d.Primary.Start) {
		return Drop
	}
	if g.filters.MatchesMessage(d.Message) {
		return Drop
	}
	if g.filters.MatchesPath(g.files.Get(d.Primary.File).Path) {
		return Drop
	}
	return Forward
}

// GateReporter is the thin wrapping sink: a diag.Reporter that drops
// suppressed warnings and forwards everything else to next verbatim.
// The host pipeline wires it in itself; there is no global swap of
// reporting state anywhere.
type GateReporter struct {
	gate *Gate
	next diag.Reporter
}

func NewGateReporter(gate *Gate, next diag.Reporter) *GateReporter {
	return &GateReporter{gate: gate, next: next}
}

func (r *GateReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	if r == nil || r.next == nil {
		return
	}
	d := diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	}
	if r.gate.Evaluate(d) == Drop {
		return
	}
	r.next.Report(code, sev, primary, msg, notes)
}
