package orchestrator

import (
	"fmt"
	"sort"
	"strings"

	"pokecurator/internal/classifier"
	"pokecurator/internal/scanner"
)

// DatasetStatus describes the pending work in one dataset directory.
type DatasetStatus struct {
	Directory   string
	Canonical   []string          // folders already in canonical form
	NeedsRename map[string]string // folder name -> canonical name
	Rejected    []string          // rejection lines
	Total       int
}

// StatusResult contains the status analysis for all dataset directories.
type StatusResult struct {
	ByDataset  map[string]*DatasetStatus
	GrandTotal int
}

// Status analyzes dataset folders without modifying anything: each folder
// is classified and grouped by what a run would do with it.
func (o *Orchestrator) Status(dirs []string) (*StatusResult, error) {
	if len(dirs) == 0 {
		dirs = o.cfg.DatasetDirectories
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no dataset directories given and none configured")
	}

	result := &StatusResult{ByDataset: make(map[string]*DatasetStatus)}

	for _, dir := range dirs {
		status := &DatasetStatus{
			Directory:   dir,
			NeedsRename: make(map[string]string),
		}
		result.ByDataset[dir] = status

		folders, err := scanner.ScanFolders(dir)
		if err != nil {
			// Unscannable directories stay in the result with zero counts.
			continue
		}

		for _, folder := range folders {
			status.Total++
			result.GrandTotal++

			decision := classifier.Classify(folder.Name, o.dex)
			switch {
			case decision.Rejected():
				status.Rejected = append(status.Rejected,
					fmt.Sprintf("%s (%s)", folder.Name, decision.Reason))
			case decision.NeedsRename:
				status.NeedsRename[folder.Name] = decision.CanonicalFolderName
			default:
				status.Canonical = append(status.Canonical, folder.Name)
			}
		}
	}

	return result, nil
}

// Format renders the status result as a human-readable block.
func (r *StatusResult) Format() string {
	var b strings.Builder

	dirs := make([]string, 0, len(r.ByDataset))
	for dir := range r.ByDataset {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		status := r.ByDataset[dir]
		fmt.Fprintf(&b, "%s: %d folder(s)\n", dir, status.Total)

		for _, name := range status.Canonical {
			fmt.Fprintf(&b, "  ok      %s\n", name)
		}

		renames := make([]string, 0, len(status.NeedsRename))
		for name := range status.NeedsRename {
			renames = append(renames, name)
		}
		sort.Strings(renames)
		for _, name := range renames {
			fmt.Fprintf(&b, "  rename  %s -> %s\n", name, status.NeedsRename[name])
		}

		for _, line := range status.Rejected {
			fmt.Fprintf(&b, "  reject  %s\n", line)
		}
	}

	fmt.Fprintf(&b, "Total: %d folder(s)\n", r.GrandTotal)
	return b.String()
}
