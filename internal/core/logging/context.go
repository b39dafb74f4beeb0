// Package logging carries per-invocation log fields through context.
package logging

import "context"

type contextKey string

const (
	operationKey contextKey = "op"
	slotKey      contextKey = "slot"
)

// WithOperation tags the context with the user operation being served
// (add, ls, toggle, rm, tui).
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, operationKey, op)
}

// WithSlot tags the context with the persistence slot key in use.
func WithSlot(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, slotKey, key)
}

// GetOperation retrieves the operation from the context.
// Returns empty string if not present.
func GetOperation(ctx context.Context) string {
	if op, ok := ctx.Value(operationKey).(string); ok {
		return op
	}
	return ""
}

// GetSlot retrieves the slot key from the context.
// Returns empty string if not present.
func GetSlot(ctx context.Context) string {
	if key, ok := ctx.Value(slotKey).(string); ok {
		return key
	}
	return ""
}
