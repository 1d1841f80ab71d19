// Package orchestrator coordinates the dataset curation workflow:
// scan, classify, rename, rewrite, report.
package orchestrator

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"pokecurator/internal/audit"
	"pokecurator/internal/classifier"
	"pokecurator/internal/config"
	"pokecurator/internal/curator"
	"pokecurator/internal/pokedex"
	"pokecurator/internal/report"
	"pokecurator/internal/scanner"
	"pokecurator/internal/tagset"
)

// maxSuggestions caps the "did you mean" list for rejected names.
const maxSuggestions = 3

// Options control a curation run.
type Options struct {
	DryRun     bool   // decide everything, touch nothing
	Progress   bool   // show a progress bar while processing folders
	ReportPath string // report file override; "" falls back to the config
}

// FolderResult is the outcome of curating a single folder.
type FolderResult struct {
	FolderName     string
	Path           string
	PokemonName    string
	Renamed        bool
	RenamePlanned  bool // dry run: a rename would happen
	FilesProcessed int
	FilesChanged   int
}

// Summary represents the overall results of a curation run.
type Summary struct {
	TotalFolders int
	Curated      int
	Renamed      int
	Rejected     int
	FileErrors   int
	Results      []FolderResult
	Rejections   []report.Rejection
	ScanErrors   []error
	Duration     time.Duration
}

// Orchestrator wires the classifier, curator, species database and
// reporter together.
type Orchestrator struct {
	cfg *config.Configuration
	dex *pokedex.Pokedex
	rep *report.Reporter
}

// New creates an Orchestrator.
func New(cfg *config.Configuration, dex *pokedex.Pokedex, rep *report.Reporter) *Orchestrator {
	return &Orchestrator{cfg: cfg, dex: dex, rep: rep}
}

// Run executes the curation workflow over the given dataset directories,
// falling back to the configured ones when dirs is empty.
func (o *Orchestrator) Run(dirs []string, opts Options) (*Summary, error) {
	if len(dirs) == 0 {
		dirs = o.cfg.DatasetDirectories
	}
	if len(dirs) == 0 {
		return nil, errors.New("no dataset directories given and none configured")
	}

	start := time.Now()
	summary := &Summary{}
	absorb := o.cfg.AbsorbSet()

	var folders []scanner.FolderEntry
	for _, dir := range dirs {
		found, err := scanner.ScanFolders(dir)
		if err != nil {
			summary.ScanErrors = append(summary.ScanErrors, fmt.Errorf("scan %s: %w", dir, err))
			continue
		}
		folders = append(folders, found...)
	}
	summary.TotalFolders = len(folders)

	var auditLog *audit.Writer
	if !opts.DryRun && o.cfg.Audit != nil && !o.cfg.Audit.Disabled {
		var err error
		auditLog, err = audit.NewWriter(*o.cfg.Audit)
		if err != nil {
			return nil, fmt.Errorf("open audit log: %w", err)
		}
		defer auditLog.Close()
		auditLog.RunStart()
	}

	var bar *progressbar.ProgressBar
	if opts.Progress && len(folders) > 0 {
		bar = progressbar.NewOptions(len(folders),
			progressbar.OptionSetDescription("Curating folders"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprint(os.Stderr, "\n")
			}),
		)
	}

	for _, folder := range folders {
		o.processFolder(folder, absorb, opts, summary, auditLog)
		if bar != nil {
			bar.Add(1)
		}
	}

	if auditLog != nil {
		status := audit.StatusSuccess
		if summary.FileErrors > 0 {
			status = audit.StatusFailure
		}
		auditLog.RunEnd(status, summary.Format())
	}

	summary.Duration = time.Since(start)

	o.rep.PrintRejections(summary.Rejections)
	if reportPath := o.reportPath(opts); reportPath != "" && !opts.DryRun {
		if err := report.WriteReportFile(reportPath, summary.Rejections); err != nil {
			o.rep.Error("%v", err)
		}
	}

	return summary, nil
}

func (o *Orchestrator) reportPath(opts Options) string {
	if opts.ReportPath != "" {
		return opts.ReportPath
	}
	if o.cfg.Report != nil {
		return o.cfg.Report.Path
	}
	return ""
}

// processFolder classifies and curates a single dataset folder.
func (o *Orchestrator) processFolder(folder scanner.FolderEntry, absorb tagset.AbsorbSet, opts Options, summary *Summary, auditLog *audit.Writer) {
	decision := classifier.Classify(folder.Name, o.dex)

	if decision.Rejected() {
		summary.Rejected++
		rejection := report.Rejection{
			FolderName: folder.Name,
			Reason:     string(decision.Reason),
		}
		if decision.Reason == classifier.NameNotInDatabase {
			rejection.Suggestions = o.dex.Suggest(folder.Name, maxSuggestions)
		}
		summary.Rejections = append(summary.Rejections, rejection)
		if auditLog != nil {
			auditLog.Reject(folder.FullPath, reasonCode(decision.Reason))
		}
		o.rep.Verbose("Skipping %s: %s", folder.Name, decision.Reason)
		return
	}

	result := FolderResult{
		FolderName:  folder.Name,
		Path:        folder.FullPath,
		PokemonName: decision.PokemonName,
	}

	if decision.NeedsRename {
		if opts.DryRun {
			result.RenamePlanned = true
			o.rep.Verbose("Would rename: %s -> %s", folder.Name, decision.CanonicalFolderName)
		} else {
			renamed, err := curator.RenameFolder(folder, decision.CanonicalFolderName)
			if err != nil {
				// The folder keeps its old name but its tag files are
				// still curated, as the original tool did.
				o.rep.Warn("cannot rename %s to %s: %v", folder.Name, decision.CanonicalFolderName, err)
				if auditLog != nil {
					auditLog.Rename(folder.FullPath, decision.CanonicalFolderName, audit.StatusFailure, renameReason(err))
				}
			} else {
				result.Path = renamed.NewPath
				result.Renamed = true
				summary.Renamed++
				o.rep.Verbose("Renamed: %s -> %s", folder.Name, decision.CanonicalFolderName)
				if auditLog != nil {
					auditLog.Rename(renamed.OldPath, renamed.NewPath, audit.StatusSuccess, "")
				}
			}
		}
	}

	var rewrite *curator.RewriteResult
	var err error
	if opts.DryRun {
		rewrite, err = curator.PreviewTagFiles(result.Path, decision.PokemonName, absorb)
	} else {
		rewrite, err = curator.RewriteTagFiles(result.Path, decision.PokemonName, absorb)
	}
	if err != nil {
		summary.FileErrors++
		o.rep.Error("processing %s: %v", result.FolderName, err)
		if auditLog != nil {
			auditLog.Append(audit.Event{
				EventType:  audit.EventError,
				Status:     audit.StatusFailure,
				FolderPath: result.Path,
				Message:    err.Error(),
			})
		}
		return
	}

	for _, fileErr := range rewrite.FileErrors {
		summary.FileErrors++
		o.rep.Error("%v", fileErr)
	}

	result.FilesProcessed = rewrite.FilesProcessed
	result.FilesChanged = rewrite.FilesChanged
	summary.Results = append(summary.Results, result)
	summary.Curated++

	if auditLog != nil {
		auditLog.Rewrite(result.Path, rewrite.FilesProcessed, rewrite.FilesChanged)
	}
}

// reasonCode maps a classifier rejection to its audit reason code.
func reasonCode(reason classifier.Reason) audit.ReasonCode {
	if reason == classifier.NameNotInDatabase {
		return audit.ReasonNameNotInDatabase
	}
	return audit.ReasonUnrecognizedFormat
}

// renameReason maps a rename failure to its audit reason code.
func renameReason(err error) audit.ReasonCode {
	var curErr *curator.CurateError
	if errors.As(err, &curErr) && curErr.Type == curator.TargetExists {
		return audit.ReasonTargetExists
	}
	return ""
}
