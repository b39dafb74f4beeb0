package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies op and slot from an event's context into its fields.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if op := GetOperation(ctx); op != "" {
		e.Str("op", op)
	}

	if key := GetSlot(ctx); key != "" {
		e.Str("slot", key)
	}
}
