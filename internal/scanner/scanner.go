// Package scanner enumerates dataset folders and their tag files.
package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrorType represents the type of scanning error.
type ErrorType string

const (
	// DirectoryNotFound indicates the directory does not exist.
	DirectoryNotFound ErrorType = "DIRECTORY_NOT_FOUND"
	// NotADirectory indicates the path exists but is not a directory.
	NotADirectory ErrorType = "NOT_A_DIRECTORY"
	// PermissionDenied indicates insufficient permissions to read the directory.
	PermissionDenied ErrorType = "PERMISSION_DENIED"
)

// ScanError represents an error that occurred during directory scanning.
type ScanError struct {
	Type ErrorType
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return string(e.Type) + ": " + e.Path
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// tagFileExt is the extension of per-image tag files.
const tagFileExt = ".txt"

// FolderEntry represents a dataset folder found during scanning.
type FolderEntry struct {
	Name     string // Folder name only
	FullPath string // Absolute path
}

// ScanFolders enumerates the immediate subdirectories of a dataset
// directory. Files and symlinks are skipped; each folder is one dataset.
func ScanFolders(directory string) ([]FolderEntry, error) {
	info, err := os.Lstat(directory)
	if err != nil {
		return nil, classifyStatError(directory, err)
	}
	if !info.IsDir() {
		return nil, &ScanError{
			Type: NotADirectory,
			Path: directory,
			Err:  errors.New("path is not a directory"),
		}
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &ScanError{Type: PermissionDenied, Path: directory, Err: err}
		}
		return nil, err
	}

	var folders []FolderEntry
	for _, entry := range entries {
		fullPath := filepath.Join(directory, entry.Name())

		info, err := os.Lstat(fullPath)
		if err != nil {
			continue // Skip entries we can't stat
		}
		if info.Mode()&os.ModeSymlink != 0 {
			continue
		}
		if !info.IsDir() {
			continue
		}

		absPath, err := filepath.Abs(fullPath)
		if err != nil {
			absPath = fullPath
		}
		folders = append(folders, FolderEntry{
			Name:     entry.Name(),
			FullPath: absPath,
		})
	}

	sort.Slice(folders, func(i, j int) bool {
		return folders[i].Name < folders[j].Name
	})
	return folders, nil
}

// TagFiles returns the full paths of the tag files directly inside a
// dataset folder, sorted by name.
func TagFiles(folderPath string) ([]string, error) {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return nil, classifyStatError(folderPath, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), tagFileExt) {
			continue
		}
		files = append(files, filepath.Join(folderPath, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func classifyStatError(path string, err error) error {
	if os.IsNotExist(err) {
		return &ScanError{Type: DirectoryNotFound, Path: path, Err: err}
	}
	if os.IsPermission(err) {
		return &ScanError{Type: PermissionDenied, Path: path, Err: err}
	}
	return err
}
