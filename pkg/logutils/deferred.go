package logutils

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// Deferred is a zerolog hook that holds log messages at or above a minimum
// level in memory until Flush is called. Repeated messages are collapsed
// into one line with a count. Safe for concurrent use.
type Deferred struct {
	min zerolog.Level

	mu     sync.Mutex
	order  []string
	counts map[string]int
}

var _ zerolog.Hook = (*Deferred)(nil)

// NewDeferred creates a hook that keeps messages at level min and above.
func NewDeferred(min zerolog.Level) *Deferred {
	return &Deferred{
		min:    min,
		counts: make(map[string]int),
	}
}

// Run records the message for a later Flush.
func (d *Deferred) Run(_ *zerolog.Event, level zerolog.Level, msg string) {
	if level < d.min || level == zerolog.NoLevel || msg == "" {
		return
	}

	line := level.String() + ": " + msg

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.counts[line] == 0 {
		d.order = append(d.order, line)
	}
	d.counts[line]++
}

// Flush writes the buffered messages to w, one per line, and clears the buffer.
func (d *Deferred) Flush(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, line := range d.order {
		if n := d.counts[line]; n > 1 {
			line = fmt.Sprintf("%s (x%d)", line, n)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	d.order = nil
	d.counts = make(map[string]int)
	return nil
}
