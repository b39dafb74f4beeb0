package validate

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskText(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "Buy milk", false},
		{"padded", "  Buy milk  ", false},
		{"empty string", "", true},
		{"only spaces", "   ", true},
		{"only tabs and newlines", "\t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TaskText(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "TaskText(%q) error = %v", tt.input, err)
		})
	}
}

func TestTaskID(t *testing.T) {
	id, err := TaskID(" 1700000000000 ")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000000), id)

	for _, bad := range []string{"", "abc", "1.5", "12x"} {
		_, err := TaskID(bad)
		assert.Error(t, err, "TaskID(%q)", bad)
	}
}

func TestSlotKey(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default", "todo-tasks", false},
		{"dotted", "work.tasks", false},
		{"empty", "", true},
		{"blank", "  ", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"slash", "a/b", true},
		{"backslash", `a\b`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SlotKey(tt.input)
			assert.Equal(t, tt.wantErr, err != nil, "SlotKey(%q) error = %v", tt.input, err)
		})
	}
}

func TestSlotKeyField(t *testing.T) {
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, SlotKeyField("storage.key", ""), &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "storage.key", fieldErrs[0].Field)

	assert.NoError(t, SlotKeyField("storage.key", "todo-tasks"))
}
