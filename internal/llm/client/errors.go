package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork wraps transport failures: DNS, refused or reset connections.
	ErrNetwork = errors.New("gemini: network error")

	// ErrTimeout wraps requests that exceeded the client timeout.
	ErrTimeout = errors.New("gemini: request timed out")

	// ErrNoResponse matches *NoResponseError via errors.Is.
	ErrNoResponse = errors.New("gemini: no response")
)

// StatusError is returned when the endpoint answers with a non-success
// HTTP status.
type StatusError struct {
	StatusCode int
	// Message is error.message from the response body, when present.
	Message string
}

func (err *StatusError) Error() string {
	if err.Message != "" {
		return fmt.Sprintf("gemini: HTTP %d: %s", err.StatusCode, err.Message)
	}
	return fmt.Sprintf("gemini: HTTP %d", err.StatusCode)
}

// IsBadRequest reports a 400, usually a malformed request or an invalid key.
func (err *StatusError) IsBadRequest() bool {
	return err.StatusCode == http.StatusBadRequest
}

// IsForbidden reports a 403: key not permitted or quota exceeded.
func (err *StatusError) IsForbidden() bool {
	return err.StatusCode == http.StatusForbidden
}

// NoResponseError is returned when a successful response carries no
// candidates.
type NoResponseError struct {
	Message string
}

func (err *NoResponseError) Error() string {
	return "gemini: no response: " + err.Message
}

func (err *NoResponseError) Is(target error) bool {
	return target == ErrNoResponse
}
