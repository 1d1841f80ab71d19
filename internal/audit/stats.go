package audit

import (
	"fmt"
	"sort"
	"strings"
)

// Stats aggregates an event stream into per-kind counts.
type Stats struct {
	Runs            int
	Renames         int
	RenameFailures  int
	Rewrites        int
	FilesProcessed  int
	FilesChanged    int
	Rejects         int
	Errors          int
	RejectsByReason map[ReasonCode]int
}

// Compute aggregates events into Stats.
func Compute(events []Event) *Stats {
	s := &Stats{RejectsByReason: make(map[ReasonCode]int)}
	for _, e := range events {
		switch e.EventType {
		case EventRunStart:
			s.Runs++
		case EventRename:
			if e.Status == StatusSuccess {
				s.Renames++
			} else {
				s.RenameFailures++
			}
		case EventRewrite:
			s.Rewrites++
			s.FilesProcessed += e.FilesProcessed
			s.FilesChanged += e.FilesChanged
		case EventReject:
			s.Rejects++
			if e.ReasonCode != "" {
				s.RejectsByReason[e.ReasonCode]++
			}
		case EventError:
			s.Errors++
		}
	}
	return s
}

// Format renders the stats as a human-readable block.
func (s *Stats) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Runs:             %d\n", s.Runs)
	fmt.Fprintf(&b, "Folders renamed:  %d (%d failed)\n", s.Renames, s.RenameFailures)
	fmt.Fprintf(&b, "Folders rewritten:%d\n", s.Rewrites)
	fmt.Fprintf(&b, "Tag files:        %d processed, %d changed\n", s.FilesProcessed, s.FilesChanged)
	fmt.Fprintf(&b, "Rejections:       %d\n", s.Rejects)

	reasons := make([]string, 0, len(s.RejectsByReason))
	for reason := range s.RejectsByReason {
		reasons = append(reasons, string(reason))
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(&b, "  %s: %d\n", reason, s.RejectsByReason[ReasonCode(reason)])
	}

	if s.Errors > 0 {
		fmt.Fprintf(&b, "Errors:           %d\n", s.Errors)
	}
	return b.String()
}
