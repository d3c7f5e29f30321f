package store

import (
	"errors"
	"fmt"
)

// ErrTodoNotFound is returned when a keyed mutation targets a (userId, todoId)
// that does not exist. Updates are conditional, never upserts, so a missing
// key surfaces here instead of silently creating a partial record.
var ErrTodoNotFound = errors.New("todo not found")

// StorageError wraps a DynamoDB failure with the operation context the
// caller needs to log or retry externally.
type StorageError struct {
	Op     string
	UserID string
	TodoID string
	Err    error
}

func (e *StorageError) Error() string {
	if e.TodoID == "" {
		return fmt.Sprintf("todos %s for user %s: %v", e.Op, e.UserID, e.Err)
	}
	return fmt.Sprintf("todos %s for user %s todo %s: %v", e.Op, e.UserID, e.TodoID, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
