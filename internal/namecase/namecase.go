// Package namecase provides canonical casing for Pokemon species names.
package namecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FolderSuffix is the literal suffix of a canonical dataset folder name.
const FolderSuffix = "Pokedex_IXL"

// Trigger tag framing. The mixed casing is deliberate and must survive
// tag normalization verbatim.
const (
	triggerPrefix = "zz"
	triggerSuffix = "C1tr0n"
)

// isSeparator reports whether r separates parts of a multi-word species name.
func isSeparator(r rune) bool {
	return r == '_' || r == '-'
}

// Canonical converts a species name to its canonical capitalized form.
// Separator-delimited parts are each capitalized (first rune upper, rest
// lower) and concatenated: "pikachu" -> "Pikachu", "mr_mime" -> "MrMime",
// "ho-oh" -> "HoOh".
func Canonical(name string) string {
	parts := strings.FieldsFunc(name, isSeparator)
	caser := cases.Title(language.Und)
	var b strings.Builder
	b.Grow(len(name))
	for _, part := range parts {
		b.WriteString(caser.String(strings.ToLower(part)))
	}
	return b.String()
}

// FolderName returns the canonical dataset folder name for a species.
func FolderName(name string) string {
	return Canonical(name) + FolderSuffix
}

// TriggerTag returns the training trigger tag for a species.
// The trigger must appear exactly once, first, in every curated tag line.
func TriggerTag(name string) string {
	return triggerPrefix + Canonical(name) + triggerSuffix
}
