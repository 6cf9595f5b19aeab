package suppress

import (
	"strings"
)

// Config is the complete external surface of the engine: three optional
// pattern/root lists, built once from the host's option set before any
// unit is processed. Nothing here is reassigned after construction.
type Config struct {
	// MessageFilters are regex patterns matched anywhere inside a
	// warning's message text.
	MessageFilters []string
	// PathFilters are regex patterns matched anywhere inside a file's
	// root-relative filter key.
	PathFilters []string
	// SourceRoots are path prefixes tried in order when computing a
	// file's filter key.
	SourceRoots []string
}

// SplitList разбирает список, разделённый точками с запятой.
// Пустые элементы отбрасываются: "a;;b;" -> ["a", "b"].
func SplitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Merge накладывает other поверх c: непустые списки other побеждают.
// Используется для слияния манифеста и флагов CLI.
func (c Config) Merge(other Config) Config {
	if len(other.MessageFilters) > 0 {
		c.MessageFilters = other.MessageFilters
	}
	if len(other.PathFilters) > 0 {
		c.PathFilters = other.PathFilters
	}
	if len(other.SourceRoots) > 0 {
		c.SourceRoots = other.SourceRoots
	}
	return c
}
