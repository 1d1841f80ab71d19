package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newBufferedReporter(verbose bool) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	r := New(Config{
		Verbose:   verbose,
		Writer:    &out,
		ErrWriter: &errOut,
		Color:     false,
	})
	return r, &out, &errOut
}

func TestRejectionLine(t *testing.T) {
	rej := Rejection{FolderName: "stuff", Reason: "unrecognized format"}
	want := "Could not process: stuff (unrecognized format)"
	if got := rej.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestRejectionLineWithSuggestions(t *testing.T) {
	rej := Rejection{
		FolderName:  "pikuchu",
		Reason:      "name not in database",
		Suggestions: []string{"Pikachu", "Pichu"},
	}
	got := rej.Line()
	if !strings.Contains(got, "did you mean Pikachu, Pichu?") {
		t.Errorf("Line() = %q, want suggestions appended", got)
	}
}

func TestPrintRejections(t *testing.T) {
	r, out, _ := newBufferedReporter(false)

	r.PrintRejections([]Rejection{
		{FolderName: "a", Reason: "unrecognized format"},
		{FolderName: "b", Reason: "name not in database"},
	})

	text := out.String()
	if !strings.Contains(text, "2 unprocessed folder(s):") {
		t.Errorf("missing count header: %q", text)
	}
	if !strings.Contains(text, "Could not process: a (unrecognized format)") {
		t.Errorf("missing rejection line: %q", text)
	}
}

func TestPrintRejectionsEmpty(t *testing.T) {
	r, out, _ := newBufferedReporter(false)

	r.PrintRejections(nil)

	if !strings.Contains(out.String(), "All folders processed successfully.") {
		t.Errorf("missing success line: %q", out.String())
	}
}

func TestVerboseSuppressed(t *testing.T) {
	r, out, _ := newBufferedReporter(false)

	r.Verbose("hidden %d", 1)
	if out.Len() != 0 {
		t.Errorf("verbose output leaked: %q", out.String())
	}
}

func TestVerboseEnabled(t *testing.T) {
	r, out, _ := newBufferedReporter(true)

	r.Verbose("shown %d", 1)
	if !strings.Contains(out.String(), "shown 1") {
		t.Errorf("verbose output missing: %q", out.String())
	}
}

func TestWarnGoesToErrWriter(t *testing.T) {
	r, out, errOut := newBufferedReporter(false)

	r.Warn("cannot rename %s", "pikachu")

	if out.Len() != 0 {
		t.Errorf("warning leaked to stdout: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "Warning: cannot rename pikachu") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestWriteReportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")

	err := WriteReportFile(path, []Rejection{
		{FolderName: "a", Reason: "unrecognized format"},
	})
	if err != nil {
		t.Fatalf("WriteReportFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "Could not process: a (unrecognized format)\n" {
		t.Errorf("report content = %q", string(data))
	}
}
