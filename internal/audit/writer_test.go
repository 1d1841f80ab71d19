package audit

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestWriter(t *testing.T, rotationSize int64) (*Writer, string) {
	t.Helper()
	dir := t.TempDir()
	w, err := NewWriter(Config{LogDirectory: dir, RotationSize: rotationSize})
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w, dir
}

func TestWriterAppendAndReadBack(t *testing.T) {
	w, dir := newTestWriter(t, 1024*1024)

	if err := w.RunStart(); err != nil {
		t.Fatalf("RunStart failed: %v", err)
	}
	if err := w.Rename("/data/pikachu", "/data/PikachuPokedex_IXL", StatusSuccess, ""); err != nil {
		t.Fatalf("Rename failed: %v", err)
	}
	if err := w.Rewrite("/data/PikachuPokedex_IXL", 12, 3); err != nil {
		t.Fatalf("Rewrite failed: %v", err)
	}
	if err := w.Reject("/data/stuff", ReasonUnrecognizedFormat); err != nil {
		t.Fatalf("Reject failed: %v", err)
	}
	if err := w.RunEnd(StatusSuccess, "done"); err != nil {
		t.Fatalf("RunEnd failed: %v", err)
	}

	events, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(events) != 5 {
		t.Fatalf("got %d events, want 5", len(events))
	}

	if events[0].EventType != EventRunStart {
		t.Errorf("first event = %s, want RUN_START", events[0].EventType)
	}
	if events[1].NewPath != "/data/PikachuPokedex_IXL" {
		t.Errorf("rename NewPath = %q", events[1].NewPath)
	}
	if events[2].FilesProcessed != 12 || events[2].FilesChanged != 3 {
		t.Errorf("rewrite counts = %d/%d, want 12/3", events[2].FilesProcessed, events[2].FilesChanged)
	}
	if events[3].ReasonCode != ReasonUnrecognizedFormat {
		t.Errorf("reject reason = %q", events[3].ReasonCode)
	}
	for _, e := range events {
		if e.RunID != w.RunID() {
			t.Errorf("event %s carries run ID %q, want %q", e.EventType, e.RunID, w.RunID())
		}
		if e.Timestamp.IsZero() {
			t.Errorf("event %s has zero timestamp", e.EventType)
		}
	}
}

func TestWriterRotation(t *testing.T) {
	// Rotation size small enough that a handful of events overflow it.
	w, dir := newTestWriter(t, 200)

	for i := 0; i < 10; i++ {
		if err := w.Reject("/data/some_folder_with_a_long_name", ReasonNameNotInDatabase); err != nil {
			t.Fatalf("Reject failed: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("expected rotated log files, found %d entries", len(entries))
	}

	// All events must survive rotation.
	events, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(events) != 10 {
		t.Errorf("got %d events after rotation, want 10", len(events))
	}
}

func TestReadDirMissingDirectory(t *testing.T) {
	events, err := ReadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("ReadDir on missing dir: %v", err)
	}
	if events != nil {
		t.Errorf("expected no events, got %d", len(events))
	}
}

func TestReadDirSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	content := `{"event_type":"RUN_START","status":"SUCCESS","run_id":"x","timestamp":"2026-01-02T03:04:05Z"}
not json at all
{"event_type":"RUN_END","status":"SUCCESS","run_id":"x","timestamp":"2026-01-02T03:04:06Z"}
`
	if err := os.WriteFile(filepath.Join(dir, currentLogName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	events, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2 (malformed line skipped)", len(events))
	}
}
