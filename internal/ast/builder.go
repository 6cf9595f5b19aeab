package ast

import (
	"quell/internal/source"
)

// Builder constructs a Tree bottom-up: children are allocated before the
// nodes that reference them. Hosts translate their own representation
// through this surface; tests and fixtures use it directly.
type Builder struct {
	file     source.FileID
	universe *Universe
	nodes    *Arena[Node]
}

// NewBuilder starts a tree for one unit's file against a universe.
func NewBuilder(universe *Universe, file source.FileID) *Builder {
	return &Builder{
		file:     file,
		universe: universe,
		nodes:    NewArena[Node](1 << 8),
	}
}

// Leaf allocates a leaf node with a position.
func (b *Builder) Leaf(span source.Span) NodeID {
	return b.alloc(Node{Kind: NodeLeaf, Span: span, HasSpan: true})
}

// UnpositionedLeaf allocates a leaf node with the explicit no-position state.
func (b *Builder) UnpositionedLeaf() NodeID {
	return b.alloc(Node{Kind: NodeLeaf})
}

// Block allocates a container node over children.
func (b *Builder) Block(span source.Span, hasSpan bool, children ...NodeID) NodeID {
	return b.alloc(Node{Kind: NodeBlock, Span: span, HasSpan: hasSpan, Children: children})
}

// Annotated allocates an explicit annotation wrapper referencing markerFQN.
func (b *Builder) Annotated(markerFQN string, span source.Span, hasSpan bool, children ...NodeID) NodeID {
	return b.alloc(Node{
		Kind:     NodeAnnotated,
		Span:     span,
		HasSpan:  hasSpan,
		Marker:   b.universe.InternName(markerFQN),
		Children: children,
	})
}

// Ascribed allocates a type-ascribed node.
func (b *Builder) Ascribed(typ TypeID, span source.Span, hasSpan bool, children ...NodeID) NodeID {
	return b.alloc(Node{
		Kind:     NodeAscribed,
		Span:     span,
		HasSpan:  hasSpan,
		Type:     typ,
		Children: children,
	})
}

// Decl allocates a named declaration node.
func (b *Builder) Decl(sym SymbolID, span source.Span, hasSpan bool, children ...NodeID) NodeID {
	return b.alloc(Node{
		Kind:     NodeDecl,
		Span:     span,
		HasSpan:  hasSpan,
		Symbol:   sym,
		Children: children,
	})
}

// SetExpanded links the host-expanded form of a node. The expanded tree
// hangs off the original and is scanned independently.
func (b *Builder) SetExpanded(id, expanded NodeID) {
	n := b.nodes.Get(uint32(id))
	if n != nil {
		n.Expanded = expanded
	}
}

// Span is a convenience for spans inside the builder's file.
func (b *Builder) Span(start, end uint32) source.Span {
	return source.Span{File: b.file, Start: start, End: end}
}

// Finish seals the tree with the given root.
func (b *Builder) Finish(root NodeID) *Tree {
	return &Tree{
		File:     b.file,
		Root:     root,
		universe: b.universe,
		nodes:    b.nodes,
	}
}

func (b *Builder) alloc(n Node) NodeID {
	if n.HasSpan {
		n.Span.File = b.file
	}
	return NodeID(b.nodes.Allocate(n))
}
