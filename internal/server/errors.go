package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/vibe-quiz/internal/session"
	"github.com/jonathan/vibe-quiz/internal/sports"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a missing resource
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrUnavailable indicates a feature whose backing service is not configured
type ErrUnavailable struct {
	Feature string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not available", e.Feature)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation  *ErrValidation
		notFound    *ErrNotFound
		unavailable *ErrUnavailable
		badConfig   *session.ErrInvalidConfig
		noSession   *session.ErrNotFound
		noUndo      *session.ErrNothingToUndo
		exhausted   *session.ErrDeckExhausted
		unknownTeam *sports.TeamNotFoundError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation), errors.As(err, &badConfig):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.As(err, &noSession), errors.As(err, &unknownTeam):
		return http.StatusNotFound
	case errors.As(err, &noUndo), errors.As(err, &exhausted):
		return http.StatusConflict
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
