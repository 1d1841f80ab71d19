// Package config handles configuration loading and validation for the
// dataset curator. The on-disk format is the tool's config.json with the
// tags_to_absorb list, plus optional dataset, report, audit and watch
// sections.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"pokecurator/internal/audit"
	"pokecurator/internal/tagset"
)

// ErrorType represents the type of configuration error.
type ErrorType string

const (
	FileNotFound    ErrorType = "FILE_NOT_FOUND"
	InvalidJSON     ErrorType = "INVALID_JSON"
	ValidationError ErrorType = "VALIDATION_ERROR"
)

// Error represents an error that occurred during configuration loading.
type Error struct {
	Type    ErrorType
	Path    string
	Message string
}

func (e *Error) Error() string {
	switch e.Type {
	case FileNotFound:
		return fmt.Sprintf("configuration file not found: %s", e.Path)
	case InvalidJSON:
		return fmt.Sprintf("invalid JSON in configuration file: %s", e.Message)
	case ValidationError:
		return fmt.Sprintf("configuration validation error: %s", e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// WatchSettings configures watch mode.
type WatchSettings struct {
	DebounceSeconds   int      `json:"debounce_seconds,omitempty"`
	StableThresholdMs int      `json:"stable_threshold_ms,omitempty"`
	IgnorePatterns    []string `json:"ignore_patterns,omitempty"`
}

// ReportSettings configures the optional report file.
type ReportSettings struct {
	Path string `json:"path,omitempty"`
}

// Configuration holds all settings for the curator.
type Configuration struct {
	DatasetDirectories []string        `json:"dataset_directories,omitempty"`
	TagsToAbsorb       []string        `json:"tags_to_absorb"`
	Report             *ReportSettings `json:"report,omitempty"`
	Audit              *audit.Config   `json:"audit,omitempty"`
	Watch              *WatchSettings  `json:"watch,omitempty"`
}

// ApplyDefaults fills missing audit settings with their defaults.
func (c *Configuration) ApplyDefaults() {
	defaults := audit.DefaultConfig()
	if c.Audit == nil {
		c.Audit = &defaults
		return
	}
	if c.Audit.LogDirectory == "" {
		c.Audit.LogDirectory = defaults.LogDirectory
	}
	if c.Audit.RotationSize == 0 {
		c.Audit.RotationSize = defaults.RotationSize
	}
}

// AbsorbSet returns the configured absorb tags as a lookup set.
func (c *Configuration) AbsorbSet() tagset.AbsorbSet {
	return tagset.NewAbsorbSet(c.TagsToAbsorb)
}

// HasAbsorbTag checks whether a tag is already configured (exact match,
// absorb matching is case-sensitive).
func (c *Configuration) HasAbsorbTag(tag string) bool {
	for _, t := range c.TagsToAbsorb {
		if t == tag {
			return true
		}
	}
	return false
}

// AddAbsorbTags appends tags that are not yet configured and returns how
// many were added.
func (c *Configuration) AddAbsorbTags(tags []string) int {
	added := 0
	for _, tag := range tags {
		if tag == "" || c.HasAbsorbTag(tag) {
			continue
		}
		c.TagsToAbsorb = append(c.TagsToAbsorb, tag)
		added++
	}
	return added
}

// Load reads, parses and validates a configuration file.
func Load(filePath string) (*Configuration, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &Error{Type: FileNotFound, Path: filePath}
		}
		return nil, &Error{Type: FileNotFound, Path: filePath, Message: err.Error()}
	}

	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &Error{Type: InvalidJSON, Message: err.Error()}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// LoadOrCreate loads the config if it exists, or returns an empty
// configuration (no absorb tags) when the file is missing, matching the
// tool's historical warn-and-continue behavior. The bool reports whether
// the file existed.
func LoadOrCreate(filePath string) (*Configuration, bool, error) {
	cfg, err := Load(filePath)
	if err != nil {
		var cfgErr *Error
		if errors.As(err, &cfgErr) && cfgErr.Type == FileNotFound {
			empty := &Configuration{TagsToAbsorb: []string{}}
			empty.ApplyDefaults()
			return empty, false, nil
		}
		return nil, false, err
	}
	return cfg, true, nil
}

// Save serializes and writes a configuration to the given path.
func Save(cfg *Configuration, filePath string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return &Error{Type: InvalidJSON, Message: err.Error()}
	}
	data = append(data, '\n')

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return &Error{
			Type:    ValidationError,
			Path:    filePath,
			Message: fmt.Sprintf("failed to write configuration file: %s", err.Error()),
		}
	}
	return nil
}
