package sports

import "fmt"

// TeamNotFoundError indicates a query did not resolve to any team.
type TeamNotFoundError struct {
	Query string
}

func (e *TeamNotFoundError) Error() string {
	return fmt.Sprintf("team not found: %q", e.Query)
}

// RosterError represents a failure fetching or decoding a roster.
type RosterError struct {
	Team    string
	Message string
	Cause   error
}

func (e *RosterError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("roster error for %s: %s: %v", e.Team, e.Message, e.Cause)
	}
	return fmt.Sprintf("roster error for %s: %s", e.Team, e.Message)
}

func (e *RosterError) Unwrap() error {
	return e.Cause
}
