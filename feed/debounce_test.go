package feed

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer(60 * time.Millisecond)

	var mu sync.Mutex
	var fired []string

	for _, q := range []string{"r", "re", "rea"} {
		q := q
		d.Trigger(func() {
			mu.Lock()
			fired = append(fired, q)
			mu.Unlock()
		})
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"rea"}, fired)
}

func TestDebouncerFiresAfterQuiescence(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	done := make(chan struct{})
	d.Trigger(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced function never fired")
	}
}

func TestDebouncerStopCancelsPendingFire(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var mu sync.Mutex
	count := 0
	d.Trigger(func() {
		mu.Lock()
		count++
		mu.Unlock()
	})
	d.Stop()

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, count)
}

func TestDebouncerDefaultsWindow(t *testing.T) {
	d := NewDebouncer(0)
	assert.Equal(t, DefaultDebounce, d.delay)
}
