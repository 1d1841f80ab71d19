package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// currentLogName is the name of the active log file; rotated files are
// renamed with a timestamp.
const currentLogName = "current.jsonl"

// Writer appends events to the active audit log, rotating it by size.
// It is safe for use from a single run; Append serializes internally.
type Writer struct {
	mu      sync.Mutex
	dir     string
	maxSize int64
	runID   RunID
	file    *os.File
	size    int64
}

// NewWriter opens (or creates) the audit log in cfg.LogDirectory and
// assigns a fresh run ID.
func NewWriter(cfg Config) (*Writer, error) {
	if cfg.LogDirectory == "" {
		cfg.LogDirectory = DefaultConfig().LogDirectory
	}
	if cfg.RotationSize <= 0 {
		cfg.RotationSize = DefaultConfig().RotationSize
	}

	if err := os.MkdirAll(cfg.LogDirectory, 0755); err != nil {
		return nil, fmt.Errorf("create audit log directory: %w", err)
	}

	path := filepath.Join(cfg.LogDirectory, currentLogName)
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat audit log: %w", err)
	}

	return &Writer{
		dir:     cfg.LogDirectory,
		maxSize: cfg.RotationSize,
		runID:   RunID(uuid.NewString()),
		file:    file,
		size:    info.Size(),
	}, nil
}

// RunID returns the identifier assigned to this writer's run.
func (w *Writer) RunID() RunID {
	return w.runID
}

// Append writes a single event to the log, rotating first if the event
// would push the file past the rotation size.
func (w *Writer) Append(e Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	if e.RunID == "" {
		e.RunID = w.runID
	}

	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	line = append(line, '\n')

	if w.size > 0 && w.size+int64(len(line)) > w.maxSize {
		if err := w.rotate(); err != nil {
			return err
		}
	}

	n, err := w.file.Write(line)
	w.size += int64(n)
	if err != nil {
		return fmt.Errorf("write audit event: %w", err)
	}
	return nil
}

// rotate renames the active log with a timestamp and opens a fresh one.
// Caller holds the mutex.
func (w *Writer) rotate() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("close audit log for rotation: %w", err)
	}

	current := filepath.Join(w.dir, currentLogName)
	rotated := filepath.Join(w.dir, fmt.Sprintf("audit-%s.jsonl", time.Now().UTC().Format("20060102T150405.000000000")))
	if err := os.Rename(current, rotated); err != nil {
		return fmt.Errorf("rotate audit log: %w", err)
	}

	file, err := os.OpenFile(current, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("reopen audit log: %w", err)
	}
	w.file = file
	w.size = 0
	return nil
}

// Close flushes and closes the active log file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// RunStart records the beginning of a curation run.
func (w *Writer) RunStart() error {
	return w.Append(Event{EventType: EventRunStart, Status: StatusSuccess})
}

// RunEnd records the end of a curation run.
func (w *Writer) RunEnd(status OperationStatus, message string) error {
	return w.Append(Event{EventType: EventRunEnd, Status: status, Message: message})
}

// Rename records a folder rename, successful or not.
func (w *Writer) Rename(oldPath, newPath string, status OperationStatus, reason ReasonCode) error {
	return w.Append(Event{
		EventType:  EventRename,
		Status:     status,
		FolderPath: oldPath,
		NewPath:    newPath,
		ReasonCode: reason,
	})
}

// Rewrite records a tag file rewrite pass over one folder.
func (w *Writer) Rewrite(folderPath string, filesProcessed, filesChanged int) error {
	return w.Append(Event{
		EventType:      EventRewrite,
		Status:         StatusSuccess,
		FolderPath:     folderPath,
		FilesProcessed: filesProcessed,
		FilesChanged:   filesChanged,
	})
}

// Reject records a folder that could not be classified.
func (w *Writer) Reject(folderPath string, reason ReasonCode) error {
	return w.Append(Event{
		EventType:  EventReject,
		Status:     StatusSkipped,
		FolderPath: folderPath,
		ReasonCode: reason,
	})
}
