// ABOUTME: Error kinds raised by workout operations.
// ABOUTME: Validation and not-found errors are surfaced; persistence errors are logged.
package models

import "fmt"

// ValidationError blocks a create or update. No state changes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an operation targeting an unknown workout ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("workout not found: %s", e.ID)
}

// PersistenceError wraps a read or write failure against the KV store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s snapshot: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
