// Package tasktest provides fakes for exercising the task controller.
package tasktest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/store/memory"
	"github.com/colonyops/tick/pkg/kv"
)

// ErrSaveFailed is returned by a MemorySlot configured to fail writes.
var ErrSaveFailed = errors.New("memory slot: save failed")

// MemorySlot wraps a memory.TaskSlot with save counting, failure injection
// and raw access to the stored bytes.
type MemorySlot struct {
	*memory.TaskSlot
	store *kv.Store[string, []byte]

	mu        sync.Mutex
	saves     int
	failSaves bool
}

var _ task.Slot = (*MemorySlot)(nil)

// NewMemorySlot creates an empty in-memory slot under the default key.
func NewMemorySlot() *MemorySlot {
	store := kv.New[string, []byte]()
	return &MemorySlot{
		TaskSlot: memory.NewTaskSlot(store, task.DefaultSlotKey),
		store:    store,
	}
}

// Save counts the call and stores tasks unless failures are enabled.
func (s *MemorySlot) Save(ctx context.Context, tasks []task.Task) error {
	s.mu.Lock()
	s.saves++
	fail := s.failSaves
	s.mu.Unlock()

	if fail {
		return ErrSaveFailed
	}
	return s.TaskSlot.Save(ctx, tasks)
}

// SetRaw replaces the stored bytes, bypassing the codec.
func (s *MemorySlot) SetRaw(data []byte) {
	s.store.Set(task.DefaultSlotKey, data)
}

// Raw returns the stored bytes.
func (s *MemorySlot) Raw() ([]byte, bool) {
	return s.store.Get(task.DefaultSlotKey)
}

// Saves returns how many times Save was called.
func (s *MemorySlot) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// FailSaves makes subsequent Save calls return ErrSaveFailed.
func (s *MemorySlot) FailSaves(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failSaves = fail
}

// Clock is a manual time source. Each call to Now advances it by Step.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	Step time.Duration
}

// NewClock returns a clock starting at start that advances one millisecond per call.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start, Step: time.Millisecond}
}

// Now returns the current time and advances the clock.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.Step)
	return t
}
