package suppress

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"empty string", "", nil},
		{"single item", "unused value", []string{"unused value"}},
		{"two items", "a;b", []string{"a", "b"}},
		{"empty segments dropped", "a;;b;", []string{"a", "b"}},
		{"only separators", ";;;", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitList(tt.raw)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitList(%q) = %#v, want %#v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	base := Config{
		MessageFilters: []string{"from manifest"},
		SourceRoots:    []string{"/repo/src"},
	}
	merged := base.Merge(Config{
		MessageFilters: []string{"from flags"},
		PathFilters:    []string{"generated/"},
	})

	if got := merged.MessageFilters[0]; got != "from flags" {
		t.Errorf("MessageFilters[0] = %q, want flag value", got)
	}
	if got := merged.PathFilters[0]; got != "generated/" {
		t.Errorf("PathFilters[0] = %q", got)
	}
	// Пустой список в other не затирает базу.
	if got := merged.SourceRoots[0]; got != "/repo/src" {
		t.Errorf("SourceRoots[0] = %q, want manifest value", got)
	}
}
