package absorb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is a terminal. Piped or redirected
// input disables the interactive review flow.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PromptResult represents the user's choice for a candidate tag.
type PromptResult int

const (
	// PromptAccept absorbs this tag.
	PromptAccept PromptResult = iota
	// PromptReject skips this tag.
	PromptReject
	// PromptAcceptAll absorbs this and all remaining tags.
	PromptAcceptAll
	// PromptRejectAll skips this and all remaining tags.
	PromptRejectAll
	// PromptQuit stops the review without touching the remaining tags.
	PromptQuit
)

// Prompter asks the user whether to absorb discovered candidate tags.
type Prompter struct {
	scanner *bufio.Scanner
	writer  io.Writer
}

// NewPrompter creates a Prompter. Use os.Stdin and os.Stdout for normal
// operation, or buffers for testing.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(reader), writer: writer}
}

// PromptForTag shows one candidate and reads the user's choice.
func (p *Prompter) PromptForTag(candidate CandidateTag) (PromptResult, error) {
	fmt.Fprintf(p.writer, "\nCandidate tag: %s\n", candidate.Tag)
	fmt.Fprintf(p.writer, "  Found in %d of %d tag files (%.0f%%)\n",
		candidate.Files, candidate.Total, candidate.Share*100)
	fmt.Fprintf(p.writer, "Absorb this tag? (y)es, (n)o, (a)ccept all, (r)eject all, (q)uit: ")

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return PromptQuit, fmt.Errorf("read input: %w", err)
		}
		// EOF is treated as quit.
		return PromptQuit, nil
	}

	switch strings.TrimSpace(strings.ToLower(p.scanner.Text())) {
	case "y", "yes":
		return PromptAccept, nil
	case "n", "no":
		return PromptReject, nil
	case "a", "accept all":
		return PromptAcceptAll, nil
	case "r", "reject all":
		return PromptRejectAll, nil
	case "q", "quit":
		return PromptQuit, nil
	default:
		fmt.Fprintf(p.writer, "Unrecognized input, treating as reject.\n")
		return PromptReject, nil
	}
}

// Review walks the candidate list through the prompter and returns the
// accepted tags.
func (p *Prompter) Review(candidates []CandidateTag) ([]string, error) {
	var accepted []string
	for i, candidate := range candidates {
		result, err := p.PromptForTag(candidate)
		if err != nil {
			return accepted, err
		}
		switch result {
		case PromptAccept:
			accepted = append(accepted, candidate.Tag)
		case PromptReject:
		case PromptAcceptAll:
			for _, rest := range candidates[i:] {
				accepted = append(accepted, rest.Tag)
			}
			return accepted, nil
		case PromptRejectAll, PromptQuit:
			return accepted, nil
		}
	}
	return accepted, nil
}
