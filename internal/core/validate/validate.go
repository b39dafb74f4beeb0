// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hay-kot/criterio"
)

// TaskText validates that text is non-empty after trimming whitespace.
func TaskText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text is required")
	}
	return nil
}

// TaskID parses a task id given on the command line.
func TaskID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id must be an integer, got %q", s)
	}
	return id, nil
}

// SlotKey validates a persistence slot key. Keys double as file names for
// the json backend, so path separators and dot names are rejected.
func SlotKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}
	if key == "." || key == ".." {
		return fmt.Errorf("key cannot be %q", key)
	}
	if strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("key cannot contain path separators")
	}
	return nil
}

// SlotKeyField returns a criterio validator for slot keys.
func SlotKeyField(field, key string) error {
	return criterio.Run(field, key, SlotKey)
}
