package todolist

import (
	"fmt"
	"strings"
)

// --- UseCase Inputs ---

type CreateListInput struct {
	Title string
}

type AddTaskInput struct {
	ListID      string
	Title       string
	Description string
}

type ToggleTaskInput struct {
	ListID string
	TaskID int64
}

// RequireNonBlank returns ErrValidation naming the first blank field.
// Fields are given as name, value pairs.
func RequireNonBlank(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, pairs[i])
		}
	}
	return nil
}
