package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid change events per dataset directory so that a
// burst of file writes triggers a single curation run after the delay
// expires.
type Debouncer struct {
	delay    time.Duration
	pending  map[string]*time.Timer
	callback func(dir string)
	mu       sync.Mutex
}

// NewDebouncer creates a Debouncer. The callback fires once per directory
// after the delay passes with no further Add calls for it.
func NewDebouncer(delay time.Duration, callback func(dir string)) *Debouncer {
	return &Debouncer{
		delay:    delay,
		pending:  make(map[string]*time.Timer),
		callback: callback,
	}
}

// Add schedules a directory for processing, resetting its timer if one is
// already pending.
func (d *Debouncer) Add(dir string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.pending[dir]; ok {
		timer.Stop()
	}
	d.pending[dir] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.pending, dir)
		d.mu.Unlock()

		// The callback runs outside the lock; it may Add again.
		if d.callback != nil {
			d.callback(dir)
		}
	})
}

// Cancel drops a pending directory without firing its callback.
func (d *Debouncer) Cancel(dir string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if timer, ok := d.pending[dir]; ok {
		timer.Stop()
		delete(d.pending, dir)
	}
}

// CancelAll drops every pending directory. Used during shutdown.
func (d *Debouncer) CancelAll() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for dir, timer := range d.pending {
		timer.Stop()
		delete(d.pending, dir)
	}
}

// PendingCount returns how many directories are awaiting their callback.
func (d *Debouncer) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// IsPending reports whether the directory has a scheduled callback.
func (d *Debouncer) IsPending(dir string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.pending[dir]
	return ok
}
