package driver

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"quell/internal/ast"
	"quell/internal/diag"
	"quell/internal/source"
)

// Unit fixtures are the host hand-over format for `quell scan`: one JSON
// document per unit with the type universe slice, the node table and the
// host's diagnostics. Node references are 0-based indexes into "nodes",
// in any order; the decoder resolves references recursively and rejects
// cycles.
type unitFixture struct {
	File       string              `json:"file"`
	ContentLen uint32              `json:"content_len"`
	Types      []fixtureType       `json:"types,omitempty"`
	Symbols    []fixtureSymbol     `json:"symbols,omitempty"`
	Nodes      []fixtureNode       `json:"nodes"`
	Root       int                 `json:"root"`
	Diags      []fixtureDiagnostic `json:"diagnostics,omitempty"`
}

type fixtureType struct {
	Name   string   `json:"name"`
	Annots []string `json:"annotations,omitempty"`
}

type fixtureSymbol struct {
	Name   string   `json:"name"`
	Annots []string `json:"annotations,omitempty"`
}

type fixtureNode struct {
	Kind     string  `json:"kind"`
	Start    *uint32 `json:"start,omitempty"` // nil вместе с End = нет позиции
	End      *uint32 `json:"end,omitempty"`
	Marker   string  `json:"marker,omitempty"` // kind=annotated
	Type     int     `json:"type,omitempty"`   // kind=ascribed: индекс в types
	Symbol   int     `json:"symbol,omitempty"` // kind=decl: индекс в symbols
	Children []int   `json:"children,omitempty"`
	Expanded *int    `json:"expanded,omitempty"`
}

type fixtureDiagnostic struct {
	Severity string `json:"severity"`
	Code     uint16 `json:"code"`
	Message  string `json:"message"`
	Offset   uint32 `json:"offset"`
	End      uint32 `json:"end,omitempty"`
}

// ListUnitFixtures возвращает отсортированный список всех *.unit.json
// файлов в директории.
func ListUnitFixtures(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".unit.json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// LoadUnitFixture reads and decodes one fixture file, registering its
// file, types and symbols as it goes.
func LoadUnitFixture(path string, files *source.FileSet, universe *ast.Universe) (*Unit, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	unit, err := DecodeUnitFixture(data, files, universe)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return unit, nil
}

// DecodeUnitFixture builds a Unit from fixture JSON.
func DecodeUnitFixture(data []byte, files *source.FileSet, universe *ast.Universe) (*Unit, error) {
	var fx unitFixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("%s: %w", diag.SupBadFixture.ID(), err)
	}
	if fx.File == "" {
		return nil, fmt.Errorf("%s: fixture has no file identity", diag.SupBadFixture.ID())
	}
	if len(fx.Nodes) == 0 {
		return nil, fmt.Errorf("%s: fixture has no nodes", diag.SupBadFixture.ID())
	}
	if fx.Root < 0 || fx.Root >= len(fx.Nodes) {
		return nil, fmt.Errorf("%s: root %d out of range", diag.SupBadFixture.ID(), fx.Root)
	}

	fileID := files.AddVirtual(fx.File, make([]byte, fx.ContentLen))

	typeIDs := make([]ast.TypeID, len(fx.Types))
	for i, t := range fx.Types {
		typeIDs[i] = universe.AddType(t.Name, t.Annots...)
	}
	symbolIDs := make([]ast.SymbolID, len(fx.Symbols))
	for i, s := range fx.Symbols {
		symbolIDs[i] = universe.AddSymbol(s.Name, s.Annots...)
	}

	dec := &fixtureDecoder{
		fx:        &fx,
		builder:   ast.NewBuilder(universe, fileID),
		typeIDs:   typeIDs,
		symbolIDs: symbolIDs,
		built:     make([]ast.NodeID, len(fx.Nodes)),
		state:     make([]uint8, len(fx.Nodes)),
	}
	root, err := dec.node(fx.Root)
	if err != nil {
		return nil, err
	}

	diags, err := decodeFixtureDiags(fx.Diags, fileID)
	if err != nil {
		return nil, err
	}

	return &Unit{
		Path:   fx.File,
		Tree:   dec.builder.Finish(root),
		Digest: sha256.Sum256(data),
		Diags:  diags,
	}, nil
}

type fixtureDecoder struct {
	fx        *unitFixture
	builder   *ast.Builder
	typeIDs   []ast.TypeID
	symbolIDs []ast.SymbolID
	built     []ast.NodeID
	state     []uint8 // 0 не посещён, 1 в работе, 2 готов
}

func (d *fixtureDecoder) node(idx int) (ast.NodeID, error) {
	if idx < 0 || idx >= len(d.fx.Nodes) {
		return ast.NoNodeID, fmt.Errorf("%s: node index %d out of range", diag.SupBadFixture.ID(), idx)
	}
	switch d.state[idx] {
	case 2:
		return d.built[idx], nil
	case 1:
		return ast.NoNodeID, fmt.Errorf("%s: node cycle through %d", diag.SupBadFixture.ID(), idx)
	}
	d.state[idx] = 1

	fn := d.fx.Nodes[idx]

	children := make([]ast.NodeID, 0, len(fn.Children))
	for _, c := range fn.Children {
		id, err := d.node(c)
		if err != nil {
			return ast.NoNodeID, err
		}
		children = append(children, id)
	}

	span, hasSpan, err := d.span(fn)
	if err != nil {
		return ast.NoNodeID, err
	}

	var id ast.NodeID
	switch fn.Kind {
	case "leaf", "":
		if hasSpan {
			id = d.builder.Leaf(span)
		} else {
			id = d.builder.UnpositionedLeaf()
		}
	case "block":
		id = d.builder.Block(span, hasSpan, children...)
	case "annotated":
		if fn.Marker == "" {
			return ast.NoNodeID, fmt.Errorf("%s: annotated node %d has no marker reference", diag.SupBadFixture.ID(), idx)
		}
		id = d.builder.Annotated(fn.Marker, span, hasSpan, children...)
	case "ascribed":
		if fn.Type < 0 || fn.Type >= len(d.typeIDs) {
			return ast.NoNodeID, fmt.Errorf("%s: node %d references type %d out of range", diag.SupBadFixture.ID(), idx, fn.Type)
		}
		id = d.builder.Ascribed(d.typeIDs[fn.Type], span, hasSpan, children...)
	case "decl":
		if fn.Symbol < 0 || fn.Symbol >= len(d.symbolIDs) {
			return ast.NoNodeID, fmt.Errorf("%s: node %d references symbol %d out of range", diag.SupBadFixture.ID(), idx, fn.Symbol)
		}
		id = d.builder.Decl(d.symbolIDs[fn.Symbol], span, hasSpan, children...)
	default:
		return ast.NoNodeID, fmt.Errorf("%s: node %d has unknown kind %q", diag.SupBadFixture.ID(), idx, fn.Kind)
	}

	if fn.Expanded != nil {
		exp, err := d.node(*fn.Expanded)
		if err != nil {
			return ast.NoNodeID, err
		}
		d.builder.SetExpanded(id, exp)
	}

	d.built[idx] = id
	d.state[idx] = 2
	return id, nil
}

func (d *fixtureDecoder) span(fn fixtureNode) (source.Span, bool, error) {
	if fn.Start == nil && fn.End == nil {
		return source.Span{}, false, nil
	}
	if fn.Start == nil || fn.End == nil {
		return source.Span{}, false, fmt.Errorf("%s: node has start without end (or vice versa)", diag.SupBadFixture.ID())
	}
	return d.builder.Span(*fn.Start, *fn.End), true, nil
}

func decodeFixtureDiags(raw []fixtureDiagnostic, file source.FileID) ([]diag.Diagnostic, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make([]diag.Diagnostic, 0, len(raw))
	for _, fd := range raw {
		sev, ok := diag.ParseSeverity(fd.Severity)
		if !ok {
			return nil, fmt.Errorf("%s: unknown severity %q", diag.SupBadFixture.ID(), fd.Severity)
		}
		end := fd.End
		if end <= fd.Offset {
			end = fd.Offset + 1
		}
		out = append(out, diag.New(sev, diag.Code(fd.Code), source.Span{File: file, Start: fd.Offset, End: end}, fd.Message))
	}
	return out, nil
}
