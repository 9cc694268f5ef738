package domain

import "errors"

// ErrValidation is returned when a mandatory TripRequest field is missing.
// It fails before any network call and should be surfaced to the user as-is.
var ErrValidation = errors.New("validation error")

// ErrNetwork is returned by the gateway when no response was received at all
// (connection refused, DNS failure, timeout). Callers surface a generic
// failure message; there is nothing backend-authored to show.
var ErrNetwork = errors.New("network error")

// RemoteError is a structured error returned by the backend. Its message is
// backend-authored and must be surfaced to the user verbatim.
type RemoteError struct {
	// StatusCode is the HTTP status the backend responded with.
	StatusCode int
	// Message is the backend's error text, taken from the response body.
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// AsRemote unwraps err into a *RemoteError if one is anywhere in its chain.
func AsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	ok := errors.As(err, &re)
	return re, ok
}
