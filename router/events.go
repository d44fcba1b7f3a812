package router

import "time"

// Event is emitted to observers for every navigation attempt.
type Event interface {
	NavigationID() int
}

type NavigationStart struct {
	ID  int
	URL string
	At  time.Time
}

type NavigationEnd struct {
	ID                int
	URL               string
	URLAfterRedirects string
	At                time.Time
}

type NavigationError struct {
	ID  int
	URL string
	Err error
	At  time.Time
}

func (e NavigationStart) NavigationID() int { return e.ID }
func (e NavigationEnd) NavigationID() int   { return e.ID }
func (e NavigationError) NavigationID() int { return e.ID }

type Observer func(Event)
