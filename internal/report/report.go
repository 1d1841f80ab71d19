// Package report handles user-facing output: per-folder warnings, the
// unprocessed-folder report and the run summary, with color on terminals.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Config holds reporter configuration.
type Config struct {
	Verbose   bool      // Enable verbose output
	Writer    io.Writer // Output destination (default: os.Stdout)
	ErrWriter io.Writer // Error output destination (default: os.Stderr)
	Color     bool      // Whether to colorize output
}

// DefaultConfig returns a Config with TTY-based color detection.
func DefaultConfig() Config {
	return Config{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Color:     term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Reporter writes formatted curation output.
type Reporter struct {
	config  Config
	warn    *color.Color
	fail    *color.Color
	success *color.Color
}

// New creates a Reporter with the given configuration.
func New(config Config) *Reporter {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.ErrWriter == nil {
		config.ErrWriter = os.Stderr
	}

	warn := color.New(color.FgYellow)
	fail := color.New(color.FgRed)
	success := color.New(color.FgGreen)
	if !config.Color {
		warn.DisableColor()
		fail.DisableColor()
		success.DisableColor()
	}

	return &Reporter{
		config:  config,
		warn:    warn,
		fail:    fail,
		success: success,
	}
}

// Info prints an informational message.
func (r *Reporter) Info(format string, args ...interface{}) {
	fmt.Fprintf(r.config.Writer, format+"\n", args...)
}

// Verbose prints a message only when verbose mode is enabled.
func (r *Reporter) Verbose(format string, args ...interface{}) {
	if !r.config.Verbose {
		return
	}
	fmt.Fprintf(r.config.Writer, format+"\n", args...)
}

// Warn prints a warning to stderr.
func (r *Reporter) Warn(format string, args ...interface{}) {
	r.warn.Fprintf(r.config.ErrWriter, "Warning: "+format+"\n", args...)
}

// Error prints an error to stderr.
func (r *Reporter) Error(format string, args ...interface{}) {
	r.fail.Fprintf(r.config.ErrWriter, "Error: "+format+"\n", args...)
}

// Success prints a success message.
func (r *Reporter) Success(format string, args ...interface{}) {
	r.success.Fprintf(r.config.Writer, format+"\n", args...)
}

// IsVerbose returns whether verbose mode is enabled.
func (r *Reporter) IsVerbose() bool {
	return r.config.Verbose
}

// Rejection is one folder that could not be processed.
type Rejection struct {
	FolderName  string
	Reason      string
	Suggestions []string // optional "did you mean" species names
}

// Line renders the rejection in the report format.
func (rej Rejection) Line() string {
	line := fmt.Sprintf("Could not process: %s (%s)", rej.FolderName, rej.Reason)
	if len(rej.Suggestions) > 0 {
		line += fmt.Sprintf(" - did you mean %s?", strings.Join(rej.Suggestions, ", "))
	}
	return line
}

// PrintRejections writes the unprocessed-folder report to the terminal.
func (r *Reporter) PrintRejections(rejections []Rejection) {
	if len(rejections) == 0 {
		r.Success("All folders processed successfully.")
		return
	}

	r.Info("")
	r.Info("%d unprocessed folder(s):", len(rejections))
	for _, rej := range rejections {
		r.warn.Fprintln(r.config.Writer, rej.Line())
	}
}

// WriteReportFile writes the rejection lines to a report file, one per
// line, replacing any previous report.
func WriteReportFile(path string, rejections []Rejection) error {
	var b strings.Builder
	for _, rej := range rejections {
		b.WriteString(rej.Line())
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report file %s: %w", path, err)
	}
	return nil
}
