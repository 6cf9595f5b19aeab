package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		other    Span
		expected Span
	}{
		{
			name:     "disjoint spans extend both ends",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 30, End: 40},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "contained span is absorbed",
			span:     Span{File: 1, Start: 10, End: 40},
			other:    Span{File: 1, Start: 15, End: 20},
			expected: Span{File: 1, Start: 10, End: 40},
		},
		{
			name:     "overlap on the left",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 1, Start: 5, End: 12},
			expected: Span{File: 1, Start: 5, End: 20},
		},
		{
			name:     "different file is ignored",
			span:     Span{File: 1, Start: 10, End: 20},
			other:    Span{File: 2, Start: 0, End: 100},
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "empty span covered by empty span",
			span:     Span{File: 3, Start: 7, End: 7},
			other:    Span{File: 3, Start: 7, End: 7},
			expected: Span{File: 3, Start: 7, End: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.span.Cover(tt.other)
			if result != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestSpan_EmptyAndLen(t *testing.T) {
	s := Span{File: 1, Start: 5, End: 5}
	if !s.Empty() {
		t.Errorf("expected span %v to be empty", s)
	}
	s.End = 9
	if s.Empty() {
		t.Errorf("expected span %v to be non-empty", s)
	}
	if got := s.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
}

func TestSpan_String(t *testing.T) {
	s := Span{File: 2, Start: 10, End: 30}
	if got := s.String(); got != "2:10-30" {
		t.Errorf("String() = %q, want %q", got, "2:10-30")
	}
}
