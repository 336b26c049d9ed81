package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrAgentNotFound is returned by GetAgent when the server answers 404.
// Callers can tell "does not exist" apart from transport failures with
// errors.Is.
var ErrAgentNotFound = errors.New("agent not found")

// APIError is a non-2xx response from the leaderboard API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsAuthError returns true if the server rejected the API key.
func (e *APIError) IsAuthError() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// newAPIError extracts a human-readable message from an error response
// body, falling back to "HTTP <status>" when the body is not JSON or
// carries no message.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{Status: status, Message: payload.Message}
	}
	return &APIError{Status: status, Message: fmt.Sprintf("HTTP %d", status)}
}
