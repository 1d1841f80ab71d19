package config

import (
	"fmt"
	"strings"
)

// Validate checks the configuration for values that would silently
// misbehave at curation time.
func (c *Configuration) Validate() error {
	if err := c.validateAbsorbTags(); err != nil {
		return err
	}
	return c.validateDatasetDirectories()
}

// validateAbsorbTags rejects absorb entries that could never match a
// parsed token: blanks, and tags containing a comma (tokens are split on
// commas, so such a tag cannot survive the round trip).
func (c *Configuration) validateAbsorbTags() error {
	seen := make(map[string]int, len(c.TagsToAbsorb))
	for i, tag := range c.TagsToAbsorb {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" {
			return &Error{
				Type:    ValidationError,
				Message: fmt.Sprintf("tags_to_absorb[%d] is empty", i),
			}
		}
		if strings.Contains(trimmed, ",") {
			return &Error{
				Type:    ValidationError,
				Message: fmt.Sprintf("tags_to_absorb[%d] %q contains a comma and can never match a tag token", i, tag),
			}
		}
		if prev, dup := seen[trimmed]; dup {
			return &Error{
				Type:    ValidationError,
				Message: fmt.Sprintf("tags_to_absorb[%d] %q duplicates tags_to_absorb[%d]", i, tag, prev),
			}
		}
		seen[trimmed] = i
	}
	return nil
}

func (c *Configuration) validateDatasetDirectories() error {
	for i, dir := range c.DatasetDirectories {
		if strings.TrimSpace(dir) == "" {
			return &Error{
				Type:    ValidationError,
				Message: fmt.Sprintf("dataset_directories[%d] is empty", i),
			}
		}
	}
	return nil
}
