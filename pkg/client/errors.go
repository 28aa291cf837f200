package client

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates a missing or invalid API key (HTTP 401). Callers
// branch on it to prompt for a new credential.
var ErrUnauthorized = errors.New("unauthorized: missing or invalid API key")

// RequestFailedError is any non-2xx backend response other than 401, carrying
// the decoded error message or the HTTP status as fallback
type RequestFailedError struct {
	StatusCode int
	Message    string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request failed: %s (status %d)", e.Message, e.StatusCode)
}

// DecodeError indicates a 2xx response whose body could not be decoded
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
