package stores

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tick/internal/core/kv"
	"github.com/colonyops/tick/internal/core/task"
)

// TaskSlot stores the task list as a single entry of a KV store.
type TaskSlot struct {
	store kv.KV
	key   string
	log   zerolog.Logger
}

var _ task.Slot = (*TaskSlot)(nil)

// NewTaskSlot creates a slot persisting under key in store.
func NewTaskSlot(store kv.KV, key string, log zerolog.Logger) *TaskSlot {
	return &TaskSlot{
		store: store,
		key:   key,
		log:   log.With().Str("component", "sqlite-slot").Str("key", key).Logger(),
	}
}

// Load reads the raw entry and decodes it with the shared slot codec.
// Missing rows, read errors and undecodable values all report false.
func (s *TaskSlot) Load(ctx context.Context) ([]task.Task, bool) {
	entry, err := s.store.GetRaw(ctx, s.key)
	if err != nil {
		if !IsNotFoundError(err) {
			s.log.Warn().Err(err).Msg("read task slot")
		}
		return nil, false
	}

	tasks, ok := task.Decode(entry.Value)
	if !ok {
		s.log.Debug().Int("bytes", len(entry.Value)).Msg("task slot holds undecodable data")
	}
	return tasks, ok
}

// Save replaces the stored list.
func (s *TaskSlot) Save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	if err := s.store.Set(ctx, s.key, tasks); err != nil {
		return fmt.Errorf("save task slot: %w", err)
	}
	return nil
}
