package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `{
		"dataset_directories": ["/data/sets"],
		"tags_to_absorb": ["pokemon", "solo"],
		"report": {"path": "report.txt"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.DatasetDirectories) != 1 || cfg.DatasetDirectories[0] != "/data/sets" {
		t.Errorf("DatasetDirectories = %v", cfg.DatasetDirectories)
	}
	if len(cfg.TagsToAbsorb) != 2 {
		t.Errorf("TagsToAbsorb = %v", cfg.TagsToAbsorb)
	}
	if cfg.Report == nil || cfg.Report.Path != "report.txt" {
		t.Errorf("Report = %+v", cfg.Report)
	}
	if cfg.Audit == nil || cfg.Audit.LogDirectory == "" {
		t.Error("audit defaults should be applied")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	var cfgErr *Error
	if !errors.As(err, &cfgErr) || cfgErr.Type != FileNotFound {
		t.Fatalf("expected FileNotFound, got %v", err)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeConfig(t, `{"tags_to_absorb": [`)

	_, err := Load(path)
	var cfgErr *Error
	if !errors.As(err, &cfgErr) || cfgErr.Type != InvalidJSON {
		t.Fatalf("expected InvalidJSON, got %v", err)
	}
}

func TestValidateRejectsCommaTag(t *testing.T) {
	path := writeConfig(t, `{"tags_to_absorb": ["looking at viewer, smile"]}`)

	_, err := Load(path)
	var cfgErr *Error
	if !errors.As(err, &cfgErr) || cfgErr.Type != ValidationError {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidateRejectsEmptyTag(t *testing.T) {
	path := writeConfig(t, `{"tags_to_absorb": ["pokemon", "  "]}`)

	_, err := Load(path)
	var cfgErr *Error
	if !errors.As(err, &cfgErr) || cfgErr.Type != ValidationError {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidateRejectsDuplicateTag(t *testing.T) {
	path := writeConfig(t, `{"tags_to_absorb": ["solo", "solo"]}`)

	_, err := Load(path)
	var cfgErr *Error
	if !errors.As(err, &cfgErr) || cfgErr.Type != ValidationError {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoadOrCreateMissingFile(t *testing.T) {
	cfg, existed, err := LoadOrCreate(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadOrCreate failed: %v", err)
	}
	if existed {
		t.Error("existed = true for missing file")
	}
	if len(cfg.TagsToAbsorb) != 0 {
		t.Errorf("TagsToAbsorb = %v, want empty", cfg.TagsToAbsorb)
	}
	if cfg.Audit == nil {
		t.Error("audit defaults should be applied")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := &Configuration{
		DatasetDirectories: []string{"/data"},
		TagsToAbsorb:       []string{"pokemon"},
	}

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Save failed: %v", err)
	}
	if len(loaded.TagsToAbsorb) != 1 || loaded.TagsToAbsorb[0] != "pokemon" {
		t.Errorf("round trip lost tags: %v", loaded.TagsToAbsorb)
	}
}

func TestAddAbsorbTags(t *testing.T) {
	cfg := &Configuration{TagsToAbsorb: []string{"pokemon"}}

	added := cfg.AddAbsorbTags([]string{"pokemon", "solo", "", "solo"})
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}
	if len(cfg.TagsToAbsorb) != 2 {
		t.Errorf("TagsToAbsorb = %v", cfg.TagsToAbsorb)
	}
}

func TestAbsorbSet(t *testing.T) {
	cfg := &Configuration{TagsToAbsorb: []string{" pokemon ", "solo"}}

	set := cfg.AbsorbSet()
	if !set.Contains("pokemon") || !set.Contains("solo") {
		t.Errorf("AbsorbSet missing entries: %v", set)
	}
}
