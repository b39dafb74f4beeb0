// Package jsonfile persists the task list as a plain JSON file.
package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/tick/internal/core/task"
)

// TaskSlot implements task.Slot using one JSON file per slot key.
type TaskSlot struct {
	path string
	log  zerolog.Logger
	mu   sync.RWMutex
}

var _ task.Slot = (*TaskSlot)(nil)

// NewTaskSlot creates a slot stored at <dir>/<key>.json.
func NewTaskSlot(dir, key string, log zerolog.Logger) *TaskSlot {
	path := filepath.Join(dir, key+".json")
	return &TaskSlot{
		path: path,
		log:  log.With().Str("component", "json-slot").Str("path", path).Logger(),
	}
}

// Load reads and decodes the slot file. A missing, empty or undecodable
// file reports false.
func (s *TaskSlot) Load(_ context.Context) ([]task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Msg("read task slot")
		}
		return nil, false
	}

	tasks, ok := task.Decode(data)
	if !ok {
		s.log.Debug().Int("bytes", len(data)).Msg("task slot holds undecodable data")
	}
	return tasks, ok
}

// Save writes the list atomically.
func (s *TaskSlot) Save(_ context.Context, tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := task.Encode(tasks)
	if err != nil {
		return fmt.Errorf("encode task slot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write task slot: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace task slot: %w", err)
	}

	return nil
}
