// Package classifier decides whether a dataset folder name matches one of
// the recognized naming patterns and what its canonical name should be.
package classifier

import (
	"regexp"
	"strings"

	"pokecurator/internal/namecase"
)

// Reason explains why a folder could not be classified.
type Reason string

const (
	// UnrecognizedFormat means the folder name matches no known pattern.
	UnrecognizedFormat Reason = "unrecognized format"
	// NameNotInDatabase means a name was extracted but is not a known species.
	NameNotInDatabase Reason = "name not in database"
)

// SpeciesLookup is the species database membership test.
type SpeciesLookup interface {
	Contains(name string) bool
}

// Decision is the outcome of classifying a single folder name.
// It is computed once, immutable, and consumed immediately.
type Decision struct {
	Accepted            bool
	PokemonName         string
	CanonicalFolderName string
	NeedsRename         bool
	Reason              Reason
}

// Rejected reports whether the folder was not accepted.
func (d *Decision) Rejected() bool {
	return !d.Accepted
}

// Folder name patterns in priority order. The canonical suffix is matched
// with exact case so unrelated folders are never mistaken for already
// curated ones; the loose suffixes are case-insensitive as in the wild.
var (
	reCanonical = regexp.MustCompile(`^([A-Za-z]+)` + namecase.FolderSuffix + `$`)
	reParenTag  = regexp.MustCompile(`(?i)^([A-Za-z_-]+)_\(pokemon\)$`)
	rePlainTag  = regexp.MustCompile(`(?i)^([A-Za-z_-]+)_pokemon$`)
	reBareName  = regexp.MustCompile(`^[A-Za-z_-]+$`)
)

// Classify determines the classification of a dataset folder name.
// Accepted folders carry the extracted species name, the canonical folder
// name and whether a rename is required. Everything else is rejected with
// a reason; Classify never fails.
func Classify(folderName string, dex SpeciesLookup) *Decision {
	if folderName == "" {
		return &Decision{Reason: UnrecognizedFormat}
	}

	if m := reCanonical.FindStringSubmatch(folderName); m != nil {
		return accept(m[1], folderName, folderName, dex)
	}
	if m := reParenTag.FindStringSubmatch(folderName); m != nil {
		name := strings.ToLower(m[1])
		return accept(name, namecase.FolderName(name), folderName, dex)
	}
	if m := rePlainTag.FindStringSubmatch(folderName); m != nil {
		name := strings.ToLower(m[1])
		return accept(name, namecase.FolderName(name), folderName, dex)
	}
	if reBareName.MatchString(folderName) && !looksLikeBotchedSuffix(folderName) {
		name := strings.ToLower(folderName)
		return accept(name, namecase.FolderName(name), folderName, dex)
	}

	return &Decision{Reason: UnrecognizedFormat}
}

// accept validates the extracted name against the species database and
// builds the accepted decision. The database check runs after pattern
// extraction and before the rename decision.
func accept(name, canonical, folderName string, dex SpeciesLookup) *Decision {
	if !dex.Contains(name) {
		return &Decision{Reason: NameNotInDatabase}
	}
	return &Decision{
		Accepted:            true,
		PokemonName:         name,
		CanonicalFolderName: canonical,
		NeedsRename:         canonical != folderName,
	}
}

// looksLikeBotchedSuffix catches bare names that contain the canonical
// suffix text in the wrong case (e.g. "pikachupokedex_ixl"). Treating
// those as species names would reject them with the misleading
// "name not in database" reason.
func looksLikeBotchedSuffix(folderName string) bool {
	return strings.Contains(strings.ToLower(folderName), "pokedex")
}
