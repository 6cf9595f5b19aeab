package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"quell/internal/source"
	"quell/internal/suppress"
)

// ProcessUnits runs the per-unit pass over every unit, optionally in
// parallel. Results keep the input order regardless of scheduling.
//
// The single-writer discipline holds by construction: each unit owns its
// file, and the registry swaps entries atomically, so a parallel host
// never observes a partially written range set. There is no cancellation
// concept beyond ctx: an aborted unit simply never records its entry.
func ProcessUnits(ctx context.Context, eng *suppress.Engine, files *source.FileSet, units []*Unit, opts ProcessOptions) ([]UnitResult, error) {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Индексы уникальны для каждой горутины, мьютекс не нужен.
	results := make([]UnitResult, len(units))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(units)))

	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			select {
			case <-gctx.Done():
				emit(opts.Events, Event{Path: unit.Path, Stage: StageFailed, Err: gctx.Err()})
				return gctx.Err()
			default:
			}

			emit(opts.Events, Event{Path: unit.Path, Stage: StageScan})
			res, err := ProcessUnitCached(eng, files, unit, opts.Cache, opts.MaxDiagnostics)
			if err != nil {
				emit(opts.Events, Event{Path: unit.Path, Stage: StageFailed, Err: err})
				return err
			}
			results[i] = res
			emit(opts.Events, Event{Path: unit.Path, Stage: StageDone})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// ProcessOptions configures a multi-unit run.
type ProcessOptions struct {
	MaxDiagnostics int
	Jobs           int          // 0 = GOMAXPROCS
	Cache          *ScanCache   // nil = no caching
	Events         chan<- Event // nil = no progress reporting
}
