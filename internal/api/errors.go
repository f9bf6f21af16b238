package api

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when a 2xx response carries no usable body
var ErrEmptyResponse = errors.New("empty response from backend")

// RejectedError reports that the backend answered but refused the request,
// either with a non-2xx status or with a success=false payload.
type RejectedError struct {
	Op         string // endpoint path, e.g. "/api/start-download"
	StatusCode int    // HTTP status code
	Message    string // backend provided message, may be empty
}

func (e *RejectedError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s rejected (%d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s rejected (%d)", e.Op, e.StatusCode)
}

// UserMessage returns the backend message or fallback when the backend sent none
func (e *RejectedError) UserMessage(fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	return fallback
}

// MessageOf extracts a user-facing message from err: the backend message of a
// RejectedError, or err.Error() otherwise.
func MessageOf(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var rejected *RejectedError
	if errors.As(err, &rejected) {
		return rejected.UserMessage(fallback)
	}
	return err.Error()
}
