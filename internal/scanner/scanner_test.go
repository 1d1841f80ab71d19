package scanner

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestScanFolders(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"pikachu", "EeveePokedex_IXL", "stuff"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0755); err != nil {
			t.Fatal(err)
		}
	}
	// Loose files must not be reported as folders.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	folders, err := ScanFolders(dir)
	if err != nil {
		t.Fatalf("ScanFolders failed: %v", err)
	}

	if len(folders) != 3 {
		t.Fatalf("got %d folders, want 3", len(folders))
	}
	// Sorted by name.
	if folders[0].Name != "EeveePokedex_IXL" || folders[1].Name != "pikachu" || folders[2].Name != "stuff" {
		t.Errorf("unexpected order: %v", folders)
	}
	for _, f := range folders {
		if !filepath.IsAbs(f.FullPath) {
			t.Errorf("FullPath not absolute: %q", f.FullPath)
		}
	}
}

func TestScanFoldersSkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	real := filepath.Join(dir, "pikachu")
	if err := os.Mkdir(real, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(real, filepath.Join(dir, "linked")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	folders, err := ScanFolders(dir)
	if err != nil {
		t.Fatalf("ScanFolders failed: %v", err)
	}
	if len(folders) != 1 || folders[0].Name != "pikachu" {
		t.Errorf("symlink should be skipped, got %v", folders)
	}
}

func TestScanFoldersMissingDirectory(t *testing.T) {
	_, err := ScanFolders(filepath.Join(t.TempDir(), "missing"))

	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != DirectoryNotFound {
		t.Fatalf("expected DirectoryNotFound, got %v", err)
	}
}

func TestScanFoldersNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ScanFolders(file)
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Type != NotADirectory {
		t.Fatalf("expected NotADirectory, got %v", err)
	}
}

func TestTagFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.txt", "image.png", "caps.TXT"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	files, err := TagFiles(dir)
	if err != nil {
		t.Fatalf("TagFiles failed: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("got %d tag files, want 3: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.txt" || filepath.Base(files[1]) != "b.txt" {
		t.Errorf("unexpected order: %v", files)
	}
}
