package task

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/tick/internal/core/eventbus"
)

// PageSize is the number of tasks shown per page.
const PageSize = 5

// Direction selects a neighbouring page.
type Direction int

const (
	Previous Direction = iota
	Next
)

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source used for task ids and timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithTimeFormat sets the layout used to render creation times.
func WithTimeFormat(layout string) Option {
	return func(c *Controller) {
		if layout != "" {
			c.layout = layout
		}
	}
}

// WithBus sets the bus that receives task, page and focus events.
func WithBus(bus *eventbus.EventBus) Option {
	return func(c *Controller) { c.bus = bus }
}

// WithLogger sets the controller's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log.With().Str("component", "task-controller").Logger() }
}

// Controller owns the task list, the current page and the input buffer for
// one session. It reads its slot once in Initialize and writes the whole
// list back after every mutation. Controllers are not safe for concurrent use.
type Controller struct {
	slot   Slot
	bus    *eventbus.EventBus
	log    zerolog.Logger
	clock  func() time.Time
	layout string

	tasks []Task
	page  int
	input string
}

// NewController creates a controller persisting to slot.
func NewController(slot Slot, opts ...Option) *Controller {
	c := &Controller{
		slot:   slot,
		log:    zerolog.Nop(),
		clock:  time.Now,
		layout: DefaultTimeFormat,
		page:   1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize loads the task list from the slot. Absent or undecodable data
// starts the session with an empty list.
func (c *Controller) Initialize(ctx context.Context) {
	tasks, ok := c.slot.Load(ctx)
	if !ok {
		c.log.Debug().Ctx(ctx).Msg("no stored task list, starting empty")
		tasks = nil
	}

	c.tasks = tasks
	c.page = 1
	c.log.Debug().Ctx(ctx).Int("count", len(c.tasks)).Msg("task list loaded")
}

// SetInputBuffer replaces the pending text verbatim.
func (c *Controller) SetInputBuffer(text string) {
	c.input = text
}

// AddTask commits the input buffer as a new task at the head of the list.
// Whitespace-only input is ignored and reported as false. The current page
// is left unchanged.
func (c *Controller) AddTask(ctx context.Context) bool {
	text := strings.TrimSpace(c.input)
	if text == "" {
		return false
	}

	t := newTask(text, c.clock(), c.layout)
	c.tasks = append([]Task{t}, c.tasks...)
	c.input = ""
	c.persist(ctx)

	c.bus.PublishTaskAdded(eventbus.TaskAddedPayload{ID: t.ID, Text: t.Text})
	c.bus.PublishInputFocus(eventbus.InputFocusPayload{})

	return true
}

// ToggleTask flips the done flag of the task with id. Unknown ids leave the
// list unchanged.
func (c *Controller) ToggleTask(ctx context.Context, id int64) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i].Done = !c.tasks[i].Done
			c.bus.PublishTaskToggled(eventbus.TaskToggledPayload{ID: id, Done: c.tasks[i].Done})
		}
	}
	c.persist(ctx)
}

// DeleteTask removes the task with id and pulls the current page back inside
// the new page range. Unknown ids leave the list unchanged.
func (c *Controller) DeleteTask(ctx context.Context, id int64) {
	kept := make([]Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(c.tasks)

	c.tasks = kept
	c.persist(ctx)

	if total := c.TotalPages(); c.page > total {
		c.movePage(total)
	}

	if removed {
		c.bus.PublishTaskDeleted(eventbus.TaskDeletedPayload{ID: id, Remaining: len(c.tasks)})
	}
}

// SetPage moves one page in direction, staying within [1, TotalPages].
func (c *Controller) SetPage(dir Direction) {
	switch dir {
	case Previous:
		c.GoToPage(c.page - 1)
	case Next:
		c.GoToPage(c.page + 1)
	}
}

// GoToPage jumps to page n, clamped to [1, TotalPages].
func (c *Controller) GoToPage(n int) {
	c.movePage(min(max(n, 1), c.TotalPages()))
}

// VisibleTasks returns a copy of the tasks on the current page.
func (c *Controller) VisibleTasks() []Task {
	start := (c.page - 1) * PageSize
	if start >= len(c.tasks) {
		return []Task{}
	}
	end := min(start+PageSize, len(c.tasks))

	out := make([]Task, end-start)
	copy(out, c.tasks[start:end])
	return out
}

// Tasks returns a copy of the whole list, newest first.
func (c *Controller) Tasks() []Task {
	out := make([]Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Find returns the task with id.
func (c *Controller) Find(id int64) (Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Input returns the pending text.
func (c *Controller) Input() string { return c.input }

// CurrentPage returns the 1-based current page.
func (c *Controller) CurrentPage() int { return c.page }

// PageSize returns the number of tasks per page.
func (c *Controller) PageSize() int { return PageSize }

// TotalPages returns the number of pages, never less than one.
func (c *Controller) TotalPages() int {
	return max(1, (len(c.tasks)+PageSize-1)/PageSize)
}

// Paginated reports whether the list spans more than one page.
func (c *Controller) Paginated() bool { return len(c.tasks) > PageSize }

// HasPrevious reports whether SetPage(Previous) would move.
func (c *Controller) HasPrevious() bool { return c.page > 1 }

// HasNext reports whether SetPage(Next) would move.
func (c *Controller) HasNext() bool { return c.page < c.TotalPages() }

func (c *Controller) movePage(to int) {
	if to == c.page {
		return
	}
	from := c.page
	c.page = to
	c.bus.PublishPageChanged(eventbus.PageChangedPayload{From: from, To: to})
}

// persist writes the full list to the slot. Failures are logged, not returned.
func (c *Controller) persist(ctx context.Context) {
	if err := c.slot.Save(ctx, c.Tasks()); err != nil {
		c.log.Warn().Ctx(ctx).Err(err).Int("count", len(c.tasks)).Msg("failed to save task list")
	}
}
