package eventbus

import "sync"

// EventBus dispatches events to subscribers on the publishing goroutine,
// in subscription order.
type EventBus struct {
	mu    sync.RWMutex
	subs  map[Event][]func(any)
	hooks hooks
}

// New creates an empty event bus.
func New() *EventBus {
	return &EventBus{
		subs: make(map[Event][]func(any)),
	}
}

func (bus *EventBus) subscribe(event Event, fn func(any)) {
	bus.mu.Lock()
	defer bus.mu.Unlock()
	bus.subs[event] = append(bus.subs[event], fn)
}

// send delivers payload to every subscriber of event, then fires publish hooks.
// A nil bus drops the event.
func (bus *EventBus) send(event Event, payload any) {
	if bus == nil {
		return
	}

	bus.mu.RLock()
	subs := make([]func(any), len(bus.subs[event]))
	copy(subs, bus.subs[event])
	bus.mu.RUnlock()

	for _, fn := range subs {
		bus.deliver(event, payload, fn)
	}

	bus.runOnPublish(event, payload)
}

func (bus *EventBus) deliver(event Event, payload any, fn func(any)) {
	defer func() {
		if r := recover(); r != nil {
			bus.runOnPanic(event, payload, r)
		}
	}()
	fn(payload)
}

// PublishInputFocus publishes an input.focus event.
func (bus *EventBus) PublishInputFocus(p InputFocusPayload) { bus.send(EventInputFocus, p) }

// PublishPageChanged publishes a page.changed event.
func (bus *EventBus) PublishPageChanged(p PageChangedPayload) { bus.send(EventPageChanged, p) }

// PublishTaskAdded publishes a task.added event.
func (bus *EventBus) PublishTaskAdded(p TaskAddedPayload) { bus.send(EventTaskAdded, p) }

// PublishTaskDeleted publishes a task.deleted event.
func (bus *EventBus) PublishTaskDeleted(p TaskDeletedPayload) { bus.send(EventTaskDeleted, p) }

// PublishTaskToggled publishes a task.toggled event.
func (bus *EventBus) PublishTaskToggled(p TaskToggledPayload) { bus.send(EventTaskToggled, p) }

// SubscribeInputFocus registers fn for input.focus events.
func (bus *EventBus) SubscribeInputFocus(fn func(InputFocusPayload)) {
	bus.subscribe(EventInputFocus, func(p any) { fn(p.(InputFocusPayload)) })
}

// SubscribePageChanged registers fn for page.changed events.
func (bus *EventBus) SubscribePageChanged(fn func(PageChangedPayload)) {
	bus.subscribe(EventPageChanged, func(p any) { fn(p.(PageChangedPayload)) })
}

// SubscribeTaskAdded registers fn for task.added events.
func (bus *EventBus) SubscribeTaskAdded(fn func(TaskAddedPayload)) {
	bus.subscribe(EventTaskAdded, func(p any) { fn(p.(TaskAddedPayload)) })
}

// SubscribeTaskDeleted registers fn for task.deleted events.
func (bus *EventBus) SubscribeTaskDeleted(fn func(TaskDeletedPayload)) {
	bus.subscribe(EventTaskDeleted, func(p any) { fn(p.(TaskDeletedPayload)) })
}

// SubscribeTaskToggled registers fn for task.toggled events.
func (bus *EventBus) SubscribeTaskToggled(fn func(TaskToggledPayload)) {
	bus.subscribe(EventTaskToggled, func(p any) { fn(p.(TaskToggledPayload)) })
}
