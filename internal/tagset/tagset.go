// Package tagset rewrites comma-separated tag lines for curated dataset
// folders: trims, drops absorbed and self-reference tags, lowercases,
// deduplicates and prepends the species trigger tag.
package tagset

import (
	"strings"

	"pokecurator/internal/namecase"
)

// AbsorbSet holds tags that are removed from tag lines wherever they
// occur verbatim. Matching is case-sensitive exact match after trimming.
type AbsorbSet map[string]struct{}

// NewAbsorbSet builds an AbsorbSet from a tag list, trimming entries and
// dropping blanks.
func NewAbsorbSet(tags []string) AbsorbSet {
	set := make(AbsorbSet, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

// Contains reports whether tag is in the set.
func (s AbsorbSet) Contains(tag string) bool {
	_, ok := s[tag]
	return ok
}

// Normalize produces the curated tag line for a species.
//
// Tokens are split on commas and trimmed; empty tokens, the species
// self-reference tag ("<name>_(pokemon)", case-insensitive) and absorbed
// tags are dropped; the rest are lowercased and deduplicated preserving
// first-occurrence order. The trigger tag is prepended exactly once with
// its casing intact: a raw token identical to the trigger is consumed
// rather than lowercased, which makes Normalize idempotent.
//
// An empty or blank rawTagLine yields a line containing only the trigger.
func Normalize(pokemonName, rawTagLine string, tagsToAbsorb AbsorbSet) string {
	trigger := namecase.TriggerTag(pokemonName)
	selfTag := pokemonName + "_(pokemon)"

	tags := []string{trigger}
	seen := make(map[string]struct{})

	for _, token := range strings.Split(rawTagLine, ",") {
		token = strings.TrimSpace(token)
		if token == "" || token == trigger {
			continue
		}
		if strings.EqualFold(token, selfTag) {
			continue
		}
		if tagsToAbsorb.Contains(token) {
			continue
		}
		token = strings.ToLower(token)
		// Re-check after lowercasing so a differently-cased occurrence of
		// an absorbed tag cannot survive one pass and be removed on the
		// next; normalization stays idempotent.
		if tagsToAbsorb.Contains(token) {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		tags = append(tags, token)
	}

	return strings.Join(tags, ", ")
}
