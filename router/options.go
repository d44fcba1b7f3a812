package router

import (
	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

type Option func(*Router)

func WithClock(c clock.Clock) Option {
	return func(r *Router) { r.clock = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// WithMaxHistory caps how many previous locations Back can return to. Zero
// disables history.
func WithMaxHistory(n int) Option {
	return func(r *Router) { r.maxHistory = max(0, n) }
}

func WithObserver(o Observer) Option {
	return func(r *Router) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}
