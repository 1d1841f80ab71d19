// Package pokedex provides the species name database used to validate
// extracted folder names, with fuzzy suggestions for near-misses.
package pokedex

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// suggestMaxDistance is the largest Levenshtein distance still offered
// as a "did you mean" suggestion.
const suggestMaxDistance = 2

// Pokedex is a case-insensitive species name lookup.
type Pokedex struct {
	byKey map[string]string // lookup key -> canonical name
	keys  []string          // stable order for suggestions
}

// New returns a Pokedex over the embedded species list.
func New() *Pokedex {
	return NewWithNames(speciesNames)
}

// NewWithNames returns a Pokedex over an explicit name list.
// Tests use this to substitute a small fixture list.
func NewWithNames(names []string) *Pokedex {
	p := &Pokedex{
		byKey: make(map[string]string, len(names)),
		keys:  make([]string, 0, len(names)),
	}
	for _, name := range names {
		key := lookupKey(name)
		if key == "" {
			continue
		}
		if _, exists := p.byKey[key]; !exists {
			p.keys = append(p.keys, key)
		}
		p.byKey[key] = name
	}
	return p
}

// lookupKey folds a name for matching: lowercase with the separator
// characters a folder name may carry removed, so "mr_mime", "Mr-Mime"
// and "MrMime" all resolve to the same species.
func lookupKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Contains reports whether name identifies a known species.
// Matching is case-insensitive and ignores separators.
func (p *Pokedex) Contains(name string) bool {
	_, ok := p.byKey[lookupKey(name)]
	return ok
}

// Canonical returns the canonical database spelling for a name,
// or "" if the name is not in the database.
func (p *Pokedex) Canonical(name string) string {
	return p.byKey[lookupKey(name)]
}

// Len returns the number of species in the database.
func (p *Pokedex) Len() int {
	return len(p.keys)
}

// Suggest returns up to max canonical names close to the given name,
// nearest first. It returns nil when nothing is within edit distance.
func (p *Pokedex) Suggest(name string, max int) []string {
	key := lookupKey(name)
	if key == "" || max <= 0 {
		return nil
	}

	type scored struct {
		key      string
		distance int
	}
	var matches []scored
	for _, candidate := range p.keys {
		d := fuzzy.LevenshteinDistance(key, candidate)
		if d <= suggestMaxDistance {
			matches = append(matches, scored{key: candidate, distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	if len(matches) > max {
		matches = matches[:max]
	}
	suggestions := make([]string, len(matches))
	for i, m := range matches {
		suggestions[i] = p.byKey[m.key]
	}
	return suggestions
}
