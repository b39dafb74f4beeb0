// Package eventbus provides a typed, synchronous publish/subscribe event bus
// for signalling between the task controller and presentation layers.
package eventbus

// Event names a kind of bus message.
type Event string

const (
	EventInputFocus  Event = "input.focus"
	EventPageChanged Event = "page.changed"
	EventTaskAdded   Event = "task.added"
	EventTaskDeleted Event = "task.deleted"
	EventTaskToggled Event = "task.toggled"
)

// Events maps every event name to its payload type.
var Events = map[Event]any{
	// Keep list sorted A-Z
	EventInputFocus:  InputFocusPayload{},
	EventPageChanged: PageChangedPayload{},
	EventTaskAdded:   TaskAddedPayload{},
	EventTaskDeleted: TaskDeletedPayload{},
	EventTaskToggled: TaskToggledPayload{},
}

// InputFocusPayload asks the presentation layer to return focus to the entry field.
type InputFocusPayload struct{}

// PageChangedPayload is emitted when the current page moves.
type PageChangedPayload struct {
	From int
	To   int
}

// TaskAddedPayload is emitted after a task is prepended to the list.
type TaskAddedPayload struct {
	ID   int64
	Text string
}

// TaskDeletedPayload is emitted after a task is removed.
type TaskDeletedPayload struct {
	ID        int64
	Remaining int
}

// TaskToggledPayload is emitted after a task's done flag flips.
type TaskToggledPayload struct {
	ID   int64
	Done bool
}
