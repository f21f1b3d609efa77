package suggest

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

const (
	// DefaultLimit caps the number of suggestions returned by Closest.
	DefaultLimit = 3
	// MinSimilarity is the lowest similarity still worth suggesting.
	MinSimilarity = 0.5
)

// Normalize lower-cases s and drops separators and whitespace.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || unicode.IsSpace(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

type scored struct {
	id    string
	score float64
}

// Closest returns up to limit candidates similar to id, best first. Ties
// keep candidate order. A limit <= 0 means DefaultLimit.
func Closest(id string, candidates []string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var hits []scored

	for _, c := range candidates {
		if c == id {
			continue
		}

		if s := Similarity(id, c); s >= MinSimilarity {
			hits = append(hits, scored{id: c, score: s})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, 0, min(limit, len(hits)))
	for _, h := range hits[:min(limit, len(hits))] {
		out = append(out, h.id)
	}

	return out
}
