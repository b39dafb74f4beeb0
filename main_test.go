package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdown(t *testing.T) {
	errClose := errors.New("database is locked")

	tests := []struct {
		name     string
		closeErr error
	}{
		{name: "clean close"},
		{name: "app close fails", closeErr: errClose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logClosed := false

			err := shutdown(func() error { return tt.closeErr }, func() { logClosed = true })

			assert.ErrorIs(t, err, tt.closeErr)
			assert.True(t, logClosed, "log file must be closed")
		})
	}
}

func TestShutdown_NoLogCloser(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.NoError(t, shutdown(func() error { return nil }, nil))
	})
}
