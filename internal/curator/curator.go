// Package curator applies classification decisions to the filesystem:
// renaming dataset folders to their canonical form and rewriting the tag
// files inside them.
package curator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pokecurator/internal/scanner"
	"pokecurator/internal/tagset"
)

// ErrorType represents the type of curation error.
type ErrorType string

const (
	// TargetExists indicates the canonical folder name is already taken.
	// The folder is left alone; datasets are never merged.
	TargetExists ErrorType = "TARGET_EXISTS"
	// FolderNotFound indicates the folder vanished before it was processed.
	FolderNotFound ErrorType = "FOLDER_NOT_FOUND"
	// PermissionDenied indicates insufficient permissions for the operation.
	PermissionDenied ErrorType = "PERMISSION_DENIED"
)

// CurateError represents an error that occurred while curating a folder.
type CurateError struct {
	Type ErrorType
	Path string
	Err  error
}

func (e *CurateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Type, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Path)
}

func (e *CurateError) Unwrap() error {
	return e.Err
}

// RenameResult represents the outcome of renaming one folder.
type RenameResult struct {
	OldPath string
	NewPath string
	Renamed bool // false when the folder already had its canonical name
}

// RenameFolder renames a dataset folder to its canonical name within the
// same parent directory. A folder that already carries the canonical name
// is left untouched. An existing folder at the target name is an error:
// the caller warns and continues processing under the old name.
func RenameFolder(folder scanner.FolderEntry, canonicalName string) (*RenameResult, error) {
	if folder.Name == canonicalName {
		return &RenameResult{OldPath: folder.FullPath, NewPath: folder.FullPath}, nil
	}

	newPath := filepath.Join(filepath.Dir(folder.FullPath), canonicalName)
	if _, err := os.Lstat(newPath); err == nil {
		return nil, &CurateError{Type: TargetExists, Path: newPath}
	}

	if err := os.Rename(folder.FullPath, newPath); err != nil {
		if os.IsNotExist(err) {
			return nil, &CurateError{Type: FolderNotFound, Path: folder.FullPath, Err: err}
		}
		if os.IsPermission(err) {
			return nil, &CurateError{Type: PermissionDenied, Path: folder.FullPath, Err: err}
		}
		return nil, err
	}

	return &RenameResult{OldPath: folder.FullPath, NewPath: newPath, Renamed: true}, nil
}

// RewriteResult represents the outcome of a tag rewrite pass over one folder.
type RewriteResult struct {
	FilesProcessed int
	FilesChanged   int
	FileErrors     []error // per-file failures; the pass continues past them
}

// PreviewTagFiles computes what RewriteTagFiles would do without writing
// anything. Dry runs use it to report file counts with zero mutation.
func PreviewTagFiles(folderPath, pokemonName string, absorb tagset.AbsorbSet) (*RewriteResult, error) {
	files, err := scanner.TagFiles(folderPath)
	if err != nil {
		return nil, err
	}

	result := &RewriteResult{}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			result.FileErrors = append(result.FileErrors, fmt.Errorf("read %s: %w", path, err))
			continue
		}
		raw := strings.TrimSpace(string(data))
		result.FilesProcessed++
		if tagset.Normalize(pokemonName, raw, absorb) != raw {
			result.FilesChanged++
		}
	}
	return result, nil
}

// RewriteTagFiles normalizes every tag file in a folder in place. Files
// whose content is already normalized are counted but not rewritten, so
// repeated passes do not touch timestamps. Per-file read/write failures
// are collected and the remaining files are still processed.
func RewriteTagFiles(folderPath, pokemonName string, absorb tagset.AbsorbSet) (*RewriteResult, error) {
	files, err := scanner.TagFiles(folderPath)
	if err != nil {
		return nil, err
	}

	result := &RewriteResult{}
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			result.FileErrors = append(result.FileErrors, fmt.Errorf("read %s: %w", path, err))
			continue
		}

		raw := strings.TrimSpace(string(data))
		normalized := tagset.Normalize(pokemonName, raw, absorb)
		result.FilesProcessed++

		if normalized == raw {
			continue
		}
		if err := os.WriteFile(path, []byte(normalized), 0644); err != nil {
			result.FileErrors = append(result.FileErrors, fmt.Errorf("write %s: %w", path, err))
			continue
		}
		result.FilesChanged++
	}
	return result, nil
}
