package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("gateway unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Error is returned for any response with a status outside [200,300).
// It carries the numeric status so callers can decide recovery; transport
// failures are reported as plain wrapped errors without one.
type Error struct {
	Status     int
	StatusText string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error: %d %s", e.Status, e.StatusText)
}

// Is maps HTTP status classes onto the package sentinels so callers can use
// errors.Is without inspecting the code themselves.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == 401 || e.Status == 403
	case ErrNotFound:
		return e.Status == 404
	case ErrUnavailable:
		return e.Status >= 500
	}
	return false
}
