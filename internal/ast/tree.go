package ast

import (
	"quell/internal/source"
)

// Tree is one compilation unit's syntax tree as handed over by the host.
// Nodes are arena-backed and immutable once the builder finishes.
type Tree struct {
	File     source.FileID
	Root     NodeID
	universe *Universe
	nodes    *Arena[Node]
}

// Universe returns the type universe the tree was built against.
func (t *Tree) Universe() *Universe {
	return t.universe
}

// Node returns the node for id, or nil for NoNodeID.
func (t *Tree) Node(id NodeID) *Node {
	return t.nodes.Get(uint32(id))
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() uint32 {
	return t.nodes.Len()
}
