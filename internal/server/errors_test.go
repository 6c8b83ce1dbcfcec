package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/vibe-quiz/internal/session"
	"github.com/jonathan/vibe-quiz/internal/sports"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "target_count", Message: "must be at most 200"}
	assert.Equal(t, "validation error: target_count - must be at most 200", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestErrNotFound(t *testing.T) {
	err := &ErrNotFound{Resource: "result", ID: "abc"}
	assert.Equal(t, "result not found: abc", err.Error())
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestErrUnavailable(t *testing.T) {
	err := &ErrUnavailable{Feature: "result storage"}
	assert.Equal(t, "result storage is not available", err.Error())
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", &ErrValidation{Field: "q", Message: "required"}, http.StatusBadRequest},
		{"invalid deck config", &session.ErrInvalidConfig{Message: "bad"}, http.StatusBadRequest},
		{"session not found", &session.ErrNotFound{ID: "x"}, http.StatusNotFound},
		{"wrapped session not found", fmt.Errorf("lookup: %w", &session.ErrNotFound{ID: "x"}), http.StatusNotFound},
		{"unknown team", &sports.TeamNotFoundError{Query: "zebras"}, http.StatusNotFound},
		{"nothing to undo", &session.ErrNothingToUndo{}, http.StatusConflict},
		{"deck exhausted", &session.ErrDeckExhausted{Index: 3}, http.StatusConflict},
		{"unavailable", &ErrUnavailable{Feature: "db"}, http.StatusServiceUnavailable},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
		{"nil error", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}
