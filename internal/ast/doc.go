// Package ast models the slice of a host front-end's syntax tree that the
// suppression engine inspects.
//
// The engine never parses or type-checks anything itself; it consumes
// whatever expanded, type-resolved tree the host already produced. That
// contract is captured by three pieces:
//
//   - Node / Tree: a closed tagged-variant view over syntax nodes. Only
//     three shapes matter to suppression: annotation wrappers, type
//     ascriptions, and named declarations; the Leaf/Block arms exist so
//     traversal can recurse without special casing. Each node either has
//     a byte span or an explicit no-position state, and may link a
//     host-expanded form that is traversed independently of the original.
//   - Universe: the host's type world, reduced to fully qualified names
//     and which annotations each type or symbol carries. The marker type
//     is resolved against the Universe exactly once per engine lifetime.
//   - Builder: the bottom-up construction surface hosts (and tests, and
//     the fixture decoder in internal/driver) use to hand trees over.
//
// Nodes are arena-backed with 1-based typed IDs; 0 is the invalid ID
// everywhere, which keeps "no expanded form" and "no symbol" free.
package ast
