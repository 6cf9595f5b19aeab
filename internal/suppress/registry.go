package suppress

import (
	"sync"

	"quell/internal/source"
)

// Range is a suppressed region of one file. Both bounds are inclusive:
// a diagnostic sitting exactly on Start or End is suppressed.
type Range struct {
	File  source.FileID
	Start uint32
	End   uint32
}

// Contains reports whether the offset falls inside the range.
func (r Range) Contains(off uint32) bool {
	return off >= r.Start && off <= r.End
}

// Registry stores, per file, the range set most recently computed by the
// scanner. Entries are replaced wholesale, never merged: one Record call
// per file per pass, and the previous entry is simply discarded.
//
// Ranges inside one entry may overlap; the point-in-range OR test the
// gate performs makes merging a non-observable optimization, so we keep
// scanner output untouched.
//
// Each file has exactly one writer per pass. The slice handed to Record
// is never mutated afterwards, so swapping it under the write lock gives
// readers an atomic view.
type Registry struct {
	mu     sync.RWMutex
	byFile map[source.FileID][]Range
}

func NewRegistry() *Registry {
	return &Registry{
		byFile: make(map[source.FileID][]Range),
	}
}

// Record overwrites the entry for file with ranges.
// Пустой срез — тоже валидная запись: файл просканирован, областей нет.
func (r *Registry) Record(file source.FileID, ranges []Range) {
	r.mu.Lock()
	r.byFile[file] = ranges
	r.mu.Unlock()
}

// Contains reports whether off falls within at least one range currently
// recorded for file. Files with no entry yield false for every offset.
func (r *Registry) Contains(file source.FileID, off uint32) bool {
	r.mu.RLock()
	ranges := r.byFile[file]
	r.mu.RUnlock()

	for _, rg := range ranges {
		if rg.Contains(off) {
			return true
		}
	}
	return false
}

// Ranges returns the current entry for file (nil when never scanned).
// READONLY
func (r *Registry) Ranges(file source.FileID) []Range {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byFile[file]
}

// Len returns the number of files with a recorded entry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byFile)
}
