package youtube

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials means the OAuth client credentials file is absent.
	ErrMissingCredentials = errors.New("oauth credentials file not found")
	// ErrAPI marks failures reported by the YouTube Data API.
	ErrAPI = errors.New("youtube api error")
	// ErrNoChannel is returned when the authorised account has no channel.
	ErrNoChannel = errors.New("no channel found")
)

// APIError wraps an upstream failure with the call that produced it.
type APIError struct {
	Op  string
	Err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube %s: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() []error { return []error{ErrAPI, e.Err} }
