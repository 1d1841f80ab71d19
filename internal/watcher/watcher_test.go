package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// fastSettings keeps the watcher tests quick.
func fastSettings() Settings {
	return Settings{
		Debounce:        50 * time.Millisecond,
		StableThreshold: 30 * time.Millisecond,
	}
}

// collector records handler invocations.
type collector struct {
	mu   sync.Mutex
	dirs []string
}

func (c *collector) handle(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirs = append(c.dirs, dir)
}

func (c *collector) waitFor(t *testing.T, n int, timeout time.Duration) []string {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		count := len(c.dirs)
		dirs := append([]string(nil), c.dirs...)
		c.mu.Unlock()
		if count >= n {
			return dirs
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("handler fired %d times, wanted %d within %v", len(c.dirs), n, timeout)
	return nil
}

func TestWatcherTriggersOnNewFolder(t *testing.T) {
	dir := t.TempDir()
	var c collector

	w := New(fastSettings(), c.handle)
	if err := w.Start([]string{dir}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.Mkdir(filepath.Join(dir, "pikachu"), 0755); err != nil {
		t.Fatal(err)
	}

	dirs := c.waitFor(t, 1, 2*time.Second)
	if want, _ := filepath.Abs(dir); dirs[0] != want {
		t.Errorf("handler got %q, want %q", dirs[0], want)
	}
}

func TestWatcherTriggersOnTagFileWrite(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, "pikachu")
	if err := os.Mkdir(folder, 0755); err != nil {
		t.Fatal(err)
	}

	var c collector
	w := New(fastSettings(), c.handle)
	if err := w.Start([]string{dir}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(folder, "001.txt"), []byte("smile"), 0644); err != nil {
		t.Fatal(err)
	}

	c.waitFor(t, 1, 2*time.Second)
}

func TestWatcherIgnoresTemporaryFiles(t *testing.T) {
	dir := t.TempDir()
	var c collector

	w := New(fastSettings(), c.handle)
	if err := w.Start([]string{dir}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "001.tmp"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(300 * time.Millisecond)
	summary := w.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.dirs) != 0 {
		t.Errorf("handler fired for ignored file: %v", c.dirs)
	}
	if summary.EventsSkipped == 0 {
		t.Error("skipped events should be counted")
	}
}

func TestWatcherCoalescesBurst(t *testing.T) {
	dir := t.TempDir()
	folder := filepath.Join(dir, "pikachu")
	if err := os.Mkdir(folder, 0755); err != nil {
		t.Fatal(err)
	}

	var c collector
	w := New(fastSettings(), c.handle)
	if err := w.Start([]string{dir}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		name := filepath.Join(folder, "00"+string(rune('0'+i))+".txt")
		if err := os.WriteFile(name, []byte("smile"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	c.waitFor(t, 1, 2*time.Second)
	// Let any stragglers land before counting.
	time.Sleep(300 * time.Millisecond)
	summary := w.Stop()

	if summary.Triggers != 1 {
		t.Errorf("Triggers = %d, want 1 for a single burst", summary.Triggers)
	}
}

func TestWatcherStartStop(t *testing.T) {
	w := New(fastSettings(), nil)
	if err := w.Start([]string{t.TempDir()}); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !w.IsRunning() {
		t.Error("watcher should be running after Start")
	}

	summary := w.Stop()
	if summary == nil {
		t.Fatal("Stop returned nil summary")
	}
	if w.IsRunning() {
		t.Error("watcher should not be running after Stop")
	}
}
