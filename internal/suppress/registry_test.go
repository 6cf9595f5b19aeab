package suppress

import (
	"testing"
)

func TestRegistry_ContainsInclusiveBounds(t *testing.T) {
	reg := NewRegistry()
	reg.Record(1, []Range{{File: 1, Start: 100, End: 140}})

	tests := []struct {
		name     string
		off      uint32
		expected bool
	}{
		{"before start", 99, false},
		{"exactly at start", 100, true},
		{"inside", 120, true},
		{"exactly at end", 140, true},
		{"after end", 141, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Contains(1, tt.off); got != tt.expected {
				t.Errorf("Contains(1, %d) = %v, want %v", tt.off, got, tt.expected)
			}
		})
	}
}

func TestRegistry_UnknownFile(t *testing.T) {
	reg := NewRegistry()
	if reg.Contains(7, 0) {
		t.Error("file with no entry yields false for every offset")
	}
}

func TestRegistry_RecordReplacesWholesale(t *testing.T) {
	reg := NewRegistry()
	reg.Record(2, []Range{{File: 2, Start: 0, End: 10}})
	reg.Record(2, []Range{{File: 2, Start: 50, End: 60}})

	if reg.Contains(2, 5) {
		t.Error("old entry must be discarded, not merged")
	}
	if !reg.Contains(2, 55) {
		t.Error("new entry must be in effect")
	}
}

func TestRegistry_EmptyRecordClearsFile(t *testing.T) {
	reg := NewRegistry()
	reg.Record(3, []Range{{File: 3, Start: 0, End: 100}})
	reg.Record(3, nil)

	if reg.Contains(3, 50) {
		t.Error("rescanning to no ranges must clear suppression")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (entry exists, just empty)", reg.Len())
	}
}

func TestRegistry_FilesAreIndependent(t *testing.T) {
	reg := NewRegistry()
	reg.Record(1, []Range{{File: 1, Start: 100, End: 140}})

	if reg.Contains(2, 120) {
		t.Error("ranges are per-file; other files stay unsuppressed")
	}
}

func TestRegistry_OverlappingRangesAllowed(t *testing.T) {
	reg := NewRegistry()
	reg.Record(1, []Range{
		{File: 1, Start: 0, End: 50},
		{File: 1, Start: 30, End: 80},
	})

	if got := len(reg.Ranges(1)); got != 2 {
		t.Errorf("ranges stored = %d, want 2 (no dedup invariant)", got)
	}
	if !reg.Contains(1, 40) || !reg.Contains(1, 70) {
		t.Error("offsets covered by either range are suppressed")
	}
}

func TestRange_DegenerateContains(t *testing.T) {
	r := Range{File: 1, Start: 25, End: 25}
	if !r.Contains(25) {
		t.Error("degenerate range contains its anchor")
	}
	if r.Contains(24) || r.Contains(26) {
		t.Error("degenerate range contains nothing else")
	}
}
