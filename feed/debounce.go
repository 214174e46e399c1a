package feed

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window applied to streaming search
// input before the query pipeline runs.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer runs a function only after triggers have been quiet for the
// configured window. At most one timer is pending at a time; each Trigger
// cancels and restarts it, so a superseded value never fires and the final
// trigger always fires exactly once.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiescence window, replacing any pending
// schedule.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending fire.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
