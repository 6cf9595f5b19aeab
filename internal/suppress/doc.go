// Package suppress implements the diagnostics-suppression engine: the
// decision, per emitted warning, to forward it to the sink or drop it.
//
// Three independent mechanisms suppress a warning:
//
//   - marker-annotated source regions, computed by ScanTree from a unit's
//     syntax tree and stored per file in a Registry;
//   - message-text patterns, matched anywhere inside the message;
//   - file-path patterns, matched against a root-relative filter key.
//
// The Gate ORs the three checks; any single hit drops the warning. All
// other severities pass through unconditionally: suppression is a
// deliberate warning-only feature, not a general diagnostic filter.
//
// Lifecycle: a Config is built once from the complete option set and
// compiled eagerly (NewFilterSet fails fast on a malformed pattern); the
// marker type is resolved once per engine; each unit pass scans its tree
// and replaces that file's registry entry wholesale before the unit's
// diagnostics are gated. Dropped diagnostics are never delivered and
// never logged.
//
// Processing is single-threaded per unit. A host that parallelizes units
// keeps one writer per file; Registry swaps entries under a lock so a
// reader never observes a partially written range set.
package suppress
