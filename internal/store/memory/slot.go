// Package memory keeps the task list in process memory for throwaway sessions.
package memory

import (
	"context"

	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/pkg/kv"
)

// TaskSlot is a task.Slot holding the encoded list in a kv.Store. The stored
// bytes go through the same codec as the durable slots.
type TaskSlot struct {
	key   string
	store *kv.Store[string, []byte]
}

var _ task.Slot = (*TaskSlot)(nil)

// NewTaskSlot creates a slot persisting under key in store.
func NewTaskSlot(store *kv.Store[string, []byte], key string) *TaskSlot {
	return &TaskSlot{key: key, store: store}
}

// Load decodes the stored bytes.
func (s *TaskSlot) Load(_ context.Context) ([]task.Task, bool) {
	data, ok := s.store.Get(s.key)
	if !ok {
		return nil, false
	}
	return task.Decode(data)
}

// Save encodes and stores tasks.
func (s *TaskSlot) Save(_ context.Context, tasks []task.Task) error {
	data, err := task.Encode(tasks)
	if err != nil {
		return err
	}
	s.store.Set(s.key, data)
	return nil
}
