package domain

import (
	"errors"
	"fmt"
)

// User-visible failure messages.
const (
	MessageFetchFailed = "Failed to fetch APOD data"
	MessageUnknown     = "An unknown error occurred"
)

var (
	// ErrBadStatus is returned when the APOD endpoint answers with a non-2xx status.
	ErrBadStatus = errors.New("apod endpoint returned non-success status")

	// ErrInvalidRecord is returned when the response body does not have the
	// expected record shape.
	ErrInvalidRecord = errors.New("invalid APOD record")

	// ErrRateLimited is returned when a client mounts too many views.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrMountNotFound is returned when a mount id is unknown or has expired.
	ErrMountNotFound = errors.New("view not found or expired")

	// ErrInvalidMountID is returned when a mount id is not a UUID.
	ErrInvalidMountID = errors.New("invalid view id")
)

// StatusError carries the status code of a failed APOD response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("apod endpoint returned status %d", e.Code)
}

// Is makes errors.Is(err, ErrBadStatus) match any StatusError.
func (e *StatusError) Is(target error) bool {
	return target == ErrBadStatus
}

// FailureMessage converts a fetch error into the message shown to users.
// Non-success statuses collapse to a fixed message and drop their detail.
func FailureMessage(err error) string {
	if err == nil {
		return MessageUnknown
	}
	if errors.Is(err, ErrBadStatus) {
		return MessageFetchFailed
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MessageUnknown
}
