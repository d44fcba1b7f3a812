package router

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRoute = errors.New("invalid route")
	ErrNoRoute      = errors.New("cannot match any routes")
	ErrRedirectLoop = errors.New("too many redirects")
	ErrHistoryEmpty = errors.New("no previous location")
)

// NoRouteError reports a location that no route matched. Suggestion holds the
// closest declared location, if any was close enough.
type NoRouteError struct {
	URL        string
	Suggestion string
}

func (e *NoRouteError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s (did you mean %s?)", ErrNoRoute, e.URL, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", ErrNoRoute, e.URL)
}

func (e *NoRouteError) Unwrap() error {
	return ErrNoRoute
}

func invalidRoute(path, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidRoute, path, fmt.Sprintf(format, args...))
}
