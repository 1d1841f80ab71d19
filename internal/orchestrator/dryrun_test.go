package orchestrator

import (
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pokecurator/internal/config"
)

// snapshot captures every path and file content under root.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	state := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			state[rel] = "<dir>"
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		state[rel] = string(data)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return state
}

func TestDryRunTouchesNothing(t *testing.T) {
	dir := makeDataset(t)
	auditDir := filepath.Join(t.TempDir(), "audit")
	cfg := &config.Configuration{TagsToAbsorb: []string{"pokemon"}}
	o, _ := newTestOrchestrator(t, cfg)
	cfg.Audit.LogDirectory = auditDir

	before := snapshot(t, dir)

	summary, err := o.Run([]string{dir}, Options{DryRun: true})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	after := snapshot(t, dir)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("dry run modified the dataset:\nbefore: %v\nafter:  %v", before, after)
	}

	// No audit log is written either.
	if _, err := os.Stat(auditDir); !os.IsNotExist(err) {
		t.Error("dry run should not create an audit log")
	}

	// The summary still reflects what a real run would do.
	if summary.Curated != 2 {
		t.Errorf("Curated = %d, want 2", summary.Curated)
	}
	if summary.Rejected != 2 {
		t.Errorf("Rejected = %d, want 2", summary.Rejected)
	}
	var planned int
	for _, result := range summary.Results {
		if result.RenamePlanned {
			planned++
		}
		if result.Renamed {
			t.Errorf("dry run marked %s as renamed", result.FolderName)
		}
	}
	if planned != 1 {
		t.Errorf("planned renames = %d, want 1", planned)
	}
}

func TestDryRunCountsPendingChanges(t *testing.T) {
	dir := makeDataset(t)
	cfg := &config.Configuration{TagsToAbsorb: []string{"pokemon"}}
	o, _ := newTestOrchestrator(t, cfg)

	dry, err := o.Run([]string{dir}, Options{DryRun: true})
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	applied, err := o.Run([]string{dir}, Options{})
	if err != nil {
		t.Fatalf("real run failed: %v", err)
	}

	dryChanged := 0
	for _, r := range dry.Results {
		dryChanged += r.FilesChanged
	}
	realChanged := 0
	for _, r := range applied.Results {
		realChanged += r.FilesChanged
	}
	if dryChanged != realChanged {
		t.Errorf("dry run predicted %d changed files, real run changed %d", dryChanged, realChanged)
	}
}
