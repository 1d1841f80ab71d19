package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ReadDir reads every audit log file in dir, rotated files first, and
// returns all parseable events in write order. Malformed lines are
// skipped rather than failing the whole read.
func ReadDir(dir string) ([]Event, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read audit log directory: %w", err)
	}

	var rotated []string
	hasCurrent := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name == currentLogName {
			hasCurrent = true
			continue
		}
		if filepath.Ext(name) == ".jsonl" {
			rotated = append(rotated, name)
		}
	}
	// Rotated names embed their rotation timestamp, so lexical order is
	// chronological order.
	sort.Strings(rotated)

	files := rotated
	if hasCurrent {
		files = append(files, currentLogName)
	}

	var events []Event
	for _, name := range files {
		fileEvents, err := readFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		events = append(events, fileEvents...)
	}
	return events, nil
}

func readFile(path string) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open audit log %s: %w", path, err)
	}
	defer file.Close()

	var events []Event
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e Event
		if err := json.Unmarshal(line, &e); err != nil {
			continue
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan audit log %s: %w", path, err)
	}
	return events, nil
}
