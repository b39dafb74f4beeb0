// Package task defines the task list domain model and the controller that
// owns a single session's view state.
package task

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"
)

// DefaultSlotKey is the name of the persistence slot holding the task list.
const DefaultSlotKey = "todo-tasks"

// DefaultTimeFormat renders creation times as month/day/year with a 12-hour clock.
const DefaultTimeFormat = "1/2/2006, 3:04:05 PM"

// Task is a single to-do item. ID is the creation time in Unix milliseconds.
type Task struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
	Time string `json:"time"`
}

// Status returns the label shown for the task's completion state.
func (t Task) Status() string {
	if t.Done {
		return "Done"
	}
	return "Pending"
}

// Slot is the durable storage location for the serialized task list.
// Load reports false when the slot is empty or holds data that does not
// decode as a task list.
type Slot interface {
	Load(ctx context.Context) ([]Task, bool)
	Save(ctx context.Context, tasks []Task) error
}

// Encode serializes tasks into the slot format: a JSON array of objects.
// A nil list encodes as an empty array.
func Encode(tasks []Task) ([]byte, error) {
	if tasks == nil {
		tasks = []Task{}
	}
	return json.Marshal(tasks)
}

// storedTask mirrors Task with pointer fields so absent and null fields can
// be told apart from zero values.
type storedTask struct {
	ID   *int64  `json:"id"`
	Text *string `json:"text"`
	Done *bool   `json:"done"`
	Time *string `json:"time"`
}

// Decode parses slot content. Anything other than a JSON array of task
// objects carrying all four fields, correctly typed and non-null, with
// non-blank text reports false.
func Decode(data []byte) ([]Task, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, false
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}

	tasks := make([]Task, 0, len(raw))
	for _, elem := range raw {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			return nil, false
		}

		var st storedTask
		if err := json.Unmarshal(elem, &st); err != nil {
			return nil, false
		}
		if st.ID == nil || st.Text == nil || st.Done == nil || st.Time == nil {
			return nil, false
		}
		if strings.TrimSpace(*st.Text) == "" {
			return nil, false
		}

		tasks = append(tasks, Task{ID: *st.ID, Text: *st.Text, Done: *st.Done, Time: *st.Time})
	}

	return tasks, true
}

// newTask builds a pending task stamped with now.
func newTask(text string, now time.Time, layout string) Task {
	return Task{
		ID:   now.UnixMilli(),
		Text: text,
		Done: false,
		Time: now.Format(layout),
	}
}
