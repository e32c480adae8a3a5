package api

import "errors"

var (
	// ErrRequest covers transport failures and unexpected status codes.
	ErrRequest = errors.New("API request failed")
	// ErrUnauthorized is returned for 401 responses: the session token is
	// missing, expired, or the caller does not own the item.
	ErrUnauthorized = errors.New("not authorized")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
)
