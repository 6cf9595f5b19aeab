package suppress

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrBadPattern is wrapped by NewFilterSet when a configured pattern does
// not compile. Pattern compilation is eager and exhaustive: the first run
// over units never sees a malformed pattern.
var ErrBadPattern = errors.New("suppress: bad filter pattern")

// FilterSet holds the compiled message and path patterns plus the source
// roots. It is immutable after construction; matching is pure.
type FilterSet struct {
	messages []*regexp.Regexp
	paths    []*regexp.Regexp
	roots    []string
}

// NewFilterSet compiles all patterns from cfg. Any compilation failure
// aborts construction; a partially usable FilterSet is never returned.
func NewFilterSet(cfg Config) (*FilterSet, error) {
	messages, err := compileAll(cfg.MessageFilters)
	if err != nil {
		return nil, err
	}
	paths, err := compileAll(cfg.PathFilters)
	if err != nil {
		return nil, err
	}
	return &FilterSet{
		messages: messages,
		paths:    paths,
		roots:    cfg.SourceRoots,
	}, nil
}

func compileAll(patterns []string) ([]*regexp.Regexp, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, p, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// MatchesMessage reports whether any message pattern is found anywhere
// within text. Patterns are unanchored: a partial match suffices.
func (f *FilterSet) MatchesMessage(text string) bool {
	for _, re := range f.messages {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// MatchesPath reports whether any path pattern is found anywhere within
// the file's filter key (see FilterKey).
func (f *FilterSet) MatchesPath(path string) bool {
	key := f.FilterKey(path)
	for _, re := range f.paths {
		if re.MatchString(key) {
			return true
		}
	}
	return false
}

// FilterKey computes the key path patterns run against: the first
// configured source root that prefixes the absolute path wins and is
// stripped; with no matching root the raw path is the key. Root
// stripping only changes the key, never the match semantics.
func (f *FilterSet) FilterKey(path string) string {
	for _, root := range f.roots {
		if strings.HasPrefix(path, root) {
			return path[len(root):]
		}
	}
	return path
}

// Empty reports whether the set has no patterns at all.
func (f *FilterSet) Empty() bool {
	return len(f.messages) == 0 && len(f.paths) == 0
}
