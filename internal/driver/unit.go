package driver

import (
	"quell/internal/ast"
	"quell/internal/diag"
	"quell/internal/source"
	"quell/internal/suppress"
)

// Unit is one compilation unit as handed over by the host: its syntax
// tree plus the diagnostics the host emitted for it, in host order.
//
// Digest identifies the hand-over document the unit was decoded from
// (fixture JSON). Virtual file contents are all zeros, so the file hash
// cannot distinguish two units of the same length; the digest can. A
// zero digest marks the unit as uncacheable.
type Unit struct {
	Path   string
	Tree   *ast.Tree
	Digest [32]byte
	Diags  []diag.Diagnostic
}

// UnitResult captures the outcome of processing one unit.
type UnitResult struct {
	Path      string
	FileID    source.FileID
	Ranges    int       // сколько диапазонов записал сканер
	Forwarded *diag.Bag // прошедшие гейт, в исходном порядке
	Dropped   int
	CacheHit  bool
}

// ProcessUnit runs the per-unit pass: scan the tree, replace the file's
// registry entry, then gate every diagnostic of the unit. The scan always
// finishes before the first gate read; that ordering is the driver's job,
// not the engine's.
func ProcessUnit(eng *suppress.Engine, unit *Unit, maxDiagnostics int) UnitResult {
	ranges := eng.ScanUnit(unit.Tree)
	res := gateUnit(eng, unit, maxDiagnostics)
	res.Ranges = len(ranges)
	return res
}

// ProcessUnitCached is ProcessUnit with a scan cache in front: for an
// unchanged unit the recorded ranges come from the cache and the tree
// walk is skipped. Units without a digest are processed without the
// cache. Cache write failures are returned but the unit is still fully
// processed.
func ProcessUnitCached(eng *suppress.Engine, files *source.FileSet, unit *Unit, cache *ScanCache, maxDiagnostics int) (UnitResult, error) {
	if cache == nil || unit.Digest == ([32]byte{}) {
		return ProcessUnit(eng, unit, maxDiagnostics), nil
	}

	file := files.Get(unit.Tree.File)
	markerFQN := unit.Tree.Universe().NameOf(eng.Marker().Name)
	key := cache.Key(unit.Digest, markerFQN)

	ranges, hit, err := cache.Get(key, file)
	if err != nil {
		return UnitResult{}, err
	}
	if hit {
		eng.Registry().Record(unit.Tree.File, ranges)
	} else {
		ranges = eng.ScanUnit(unit.Tree)
		err = cache.Put(key, file, ranges)
	}

	res := gateUnit(eng, unit, maxDiagnostics)
	res.Ranges = len(ranges)
	res.CacheHit = hit
	return res, err
}

func gateUnit(eng *suppress.Engine, unit *Unit, maxDiagnostics int) UnitResult {
	forwarded := diag.NewBag(maxDiagnostics)
	dropped := 0
	for _, d := range unit.Diags {
		if eng.Evaluate(d) == suppress.Drop {
			dropped++
			continue
		}
		forwarded.Add(d)
	}
	return UnitResult{
		Path:      unit.Path,
		FileID:    unit.Tree.File,
		Forwarded: forwarded,
		Dropped:   dropped,
	}
}
