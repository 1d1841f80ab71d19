package orchestrator

import "fmt"

// HasErrors returns true if anything went wrong during the run.
func (s *Summary) HasErrors() bool {
	return s.FileErrors > 0 || len(s.ScanErrors) > 0
}

// Format returns a one-line run summary.
func (s *Summary) Format() string {
	return fmt.Sprintf("Processed %d folders: %d curated (%d renamed), %d rejected, %d file errors",
		s.TotalFolders, s.Curated, s.Renamed, s.Rejected, s.FileErrors)
}
