package session

import "fmt"

// ErrNotFound indicates no session is registered under ID.
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrNothingToUndo indicates Undo was called before any swipe.
type ErrNothingToUndo struct{}

func (e *ErrNothingToUndo) Error() string {
	return "nothing to undo"
}

// ErrDeckExhausted indicates there is no current card to swipe.
type ErrDeckExhausted struct {
	Index int
}

func (e *ErrDeckExhausted) Error() string {
	return fmt.Sprintf("no card at position %d", e.Index)
}

// ErrInvalidConfig wraps a rejected deck configuration.
type ErrInvalidConfig struct {
	Message string
	Cause   error
}

func (e *ErrInvalidConfig) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid deck config: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid deck config: %s", e.Message)
}

func (e *ErrInvalidConfig) Unwrap() error {
	return e.Cause
}
