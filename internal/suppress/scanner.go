package suppress

import (
	"quell/internal/ast"
	"quell/internal/source"
)

// ScanTree walks one unit's tree and produces the suppressed ranges for
// its file, in traversal order. No sorting, merging or deduplication:
// original and expanded forms are scanned independently, and duplicate
// coverage across the two is acceptable.
//
// With an unresolved marker the scan is a no-op. The degraded mode is
// flagged once at engine attach time, not here.
func ScanTree(tree *ast.Tree, marker MarkerResolution, fileLen uint32) []Range {
	if !marker.Resolved() {
		return nil
	}
	s := &scanner{
		tree:    tree,
		marker:  marker,
		fileLen: fileLen,
	}
	s.walk(tree.Root)
	return s.ranges
}

type scanner struct {
	tree    *ast.Tree
	marker  MarkerResolution
	fileLen uint32
	ranges  []Range
}

func (s *scanner) walk(id ast.NodeID) {
	node := s.tree.Node(id)
	if node == nil {
		return
	}

	if s.marked(node) {
		s.ranges = append(s.ranges, s.cover(id))
	}

	// Вложенные помеченные узлы дают собственные диапазоны;
	// перекрытие с родителем допустимо.
	for _, child := range node.Children {
		s.walk(child)
	}
	if node.Expanded.IsValid() {
		s.walk(node.Expanded)
	}
}

// marked reports whether the node is suppressed by the marker through
// any of the three mechanisms: explicit wrapper reference, ascribed-type
// annotation, or declaration-symbol annotation.
func (s *scanner) marked(node *ast.Node) bool {
	u := s.tree.Universe()
	switch node.Kind {
	case ast.NodeAnnotated:
		return node.Marker == s.marker.Name
	case ast.NodeAscribed:
		return u.TypeHasAnnotation(node.Type, s.marker.Name)
	case ast.NodeDecl:
		return u.SymbolHasAnnotation(node.Symbol, s.marker.Name)
	case ast.NodeLeaf, ast.NodeBlock:
		return false
	}
	return false
}

// cover computes the minimal start and maximal end offset among all
// positioned nodes reachable from id, the node itself included. A marked
// node with no positioned descendant collapses to a degenerate range
// anchored at the file length rather than failing the unit.
func (s *scanner) cover(id ast.NodeID) Range {
	var (
		found bool
		cov   source.Span
	)
	s.bounds(id, &found, &cov)

	if !found {
		return Range{File: s.tree.File, Start: s.fileLen, End: s.fileLen}
	}

	// Смещения зажимаются в [0, длина файла].
	start, end := cov.Start, cov.End
	if start > s.fileLen {
		start = s.fileLen
	}
	if end > s.fileLen {
		end = s.fileLen
	}
	return Range{File: s.tree.File, Start: start, End: end}
}

func (s *scanner) bounds(id ast.NodeID, found *bool, cov *source.Span) {
	node := s.tree.Node(id)
	if node == nil {
		return
	}
	if node.HasSpan {
		if *found {
			*cov = cov.Cover(node.Span)
		} else {
			*found = true
			*cov = node.Span
		}
	}
	for _, child := range node.Children {
		s.bounds(child, found, cov)
	}
	if node.Expanded.IsValid() {
		s.bounds(node.Expanded, found, cov)
	}
}
