package oneroster

import (
	"errors"
	"fmt"
)

// ErrConfigMissing indicates a required connection setting is unset.
// Fatal to the calling operation, never retried.
var ErrConfigMissing = errors.New("missing SIS configuration")

// APIError indicates the SIS returned a non-2xx response. The body is
// kept verbatim because SIS error payloads are the only clue to what
// the server rejected.
type APIError struct {
	Method   string
	Endpoint string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Endpoint, e.Status, e.Body)
}

// AuthorizationError indicates the acting teacher does not own the
// course or line item being touched. The remote API does not enforce
// this boundary itself, so this error is never bypassed or downgraded.
type AuthorizationError struct {
	Resource string
	ID       string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("not authorized for %s %q", e.Resource, e.ID)
}

// TokenError indicates the client-credentials grant failed.
type TokenError struct {
	Status int
	Err    error
}

func (e *TokenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("acquire access token: %v", e.Err)
	}
	return fmt.Sprintf("acquire access token: HTTP %d", e.Status)
}

func (e *TokenError) Unwrap() error { return e.Err }
