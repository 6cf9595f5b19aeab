// Package diag defines the diagnostic model shared by the suppression
// engine and its host-facing surfaces.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures for diagnostics
//     received from a host front-end and for the engine's own
//     configuration-time findings.
//   - Offer light-weight utilities (Reporter, Bag) that decouple producers
//     from concrete storage or formatting layers.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt; the forward-or-drop decision lives in
// internal/suppress and is exposed as a Reporter wrapper there.
//
// # Data model
//
// Diagnostic is the central record: Severity (Info, Warning, Error), Code
// (compact numeric identifier with a stable string form, see codes.go),
// Message, the primary source.Span, and optional Notes. Diagnostics are
// treated as opaque payloads by the gate: a forwarded diagnostic reaches
// the sink unchanged.
//
// # Emitting diagnostics
//
// Producers report through a diag.Reporter. BagReporter aggregates into a
// Bag, which supports sorting, deduplication and limits. Wrapping reporters
// compose: DedupReporter drops repeats, suppress.GateReporter drops
// suppressed warnings, and whatever sits at the end of the chain is the
// sink.
package diag
