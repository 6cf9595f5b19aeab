package ast

import (
	"quell/internal/source"
)

// NodeKind is a closed set of syntax-node shapes. The scanner only cares
// about the three marked shapes; everything else recurses into children
// through the Leaf/Block arms without special casing.
type NodeKind uint8

const (
	// NodeLeaf has no suppression-relevant structure and no children.
	NodeLeaf NodeKind = iota
	// NodeBlock is any container node: bodies, argument lists, groups.
	NodeBlock
	// NodeAnnotated is an explicit annotation wrapper around its children.
	// Marker holds the interned name of the referenced annotation.
	NodeAnnotated
	// NodeAscribed carries an ascribed type; the type's own annotations
	// live in the Universe.
	NodeAscribed
	// NodeDecl is a named declaration; the declared symbol's annotations
	// live in the Universe.
	NodeDecl
)

func (k NodeKind) String() string {
	switch k {
	case NodeLeaf:
		return "leaf"
	case NodeBlock:
		return "block"
	case NodeAnnotated:
		return "annotated"
	case NodeAscribed:
		return "ascribed"
	case NodeDecl:
		return "decl"
	}
	return "unknown"
}

// Node is one syntax-tree node as the host front-end exposes it.
//
// HasSpan separates "positioned at offset 0" from "no position at all":
// synthesized nodes arrive without positions and must not contribute to
// covering ranges.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	HasSpan  bool
	Marker   source.StringID // NodeAnnotated: referenced annotation name
	Type     TypeID          // NodeAscribed: ascribed type
	Symbol   SymbolID        // NodeDecl: declared symbol
	Children []NodeID
	Expanded NodeID // host-expanded form; scanned independently of the original
}
