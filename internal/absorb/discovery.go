// Package absorb discovers candidate tags to absorb by scanning how often
// they occur across a dataset's tag files, and applies accepted candidates
// to the configuration.
package absorb

import (
	"os"
	"sort"
	"strings"

	"pokecurator/internal/classifier"
	"pokecurator/internal/config"
	"pokecurator/internal/namecase"
	"pokecurator/internal/scanner"
)

// CandidateTag is a tag that appears widely enough across tag files to be
// worth absorbing.
type CandidateTag struct {
	Tag   string
	Files int     // tag files containing the tag
	Total int     // tag files analyzed overall
	Share float64 // Files / Total
}

// Result contains the outcome of a discovery scan.
type Result struct {
	Candidates     []CandidateTag
	FoldersScanned int
	FilesAnalyzed  int
}

// DiscoverCandidates scans the tag files of every recognized folder under
// the given dataset directories and returns tags whose share of files is at
// least minShare. Trigger tags, species self-tags and tags already
// configured for absorption are never candidates. Unreadable directories
// and files are skipped.
func DiscoverCandidates(dirs []string, dex classifier.SpeciesLookup, cfg *config.Configuration, minShare float64) (*Result, error) {
	result := &Result{}
	fileCounts := make(map[string]int)

	for _, dir := range dirs {
		folders, err := scanner.ScanFolders(dir)
		if err != nil {
			continue
		}

		for _, folder := range folders {
			decision := classifier.Classify(folder.Name, dex)
			if decision.Rejected() {
				continue
			}
			result.FoldersScanned++

			selfTag := strings.ToLower(decision.PokemonName) + "_(pokemon)"
			trigger := strings.ToLower(namecase.TriggerTag(decision.PokemonName))

			files, err := scanner.TagFiles(folder.FullPath)
			if err != nil {
				continue
			}
			for _, path := range files {
				tags, err := readTagFile(path)
				if err != nil {
					continue
				}
				result.FilesAnalyzed++

				seen := make(map[string]struct{})
				for _, tag := range tags {
					if tag == trigger || tag == selfTag {
						continue
					}
					if cfg != nil && cfg.HasAbsorbTag(tag) {
						continue
					}
					if _, dup := seen[tag]; dup {
						continue
					}
					seen[tag] = struct{}{}
					fileCounts[tag]++
				}
			}
		}
	}

	for tag, count := range fileCounts {
		share := float64(count) / float64(result.FilesAnalyzed)
		if share < minShare {
			continue
		}
		result.Candidates = append(result.Candidates, CandidateTag{
			Tag:   tag,
			Files: count,
			Total: result.FilesAnalyzed,
			Share: share,
		})
	}

	sort.Slice(result.Candidates, func(i, j int) bool {
		if result.Candidates[i].Files != result.Candidates[j].Files {
			return result.Candidates[i].Files > result.Candidates[j].Files
		}
		return result.Candidates[i].Tag < result.Candidates[j].Tag
	})

	return result, nil
}

// readTagFile returns the lowercased, trimmed tags of one tag file.
func readTagFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, part := range strings.Split(string(data), ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Apply adds the accepted tags to the configuration's absorb list and
// saves it back to disk. Tags already present are skipped.
func Apply(cfg *config.Configuration, configPath string, tags []string) (added int, err error) {
	added = cfg.AddAbsorbTags(tags)
	if added == 0 {
		return 0, nil
	}
	if err := config.Save(cfg, configPath); err != nil {
		return added, err
	}
	return added, nil
}
