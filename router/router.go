package router

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/camunda-angular/client/core"
)

const (
	maxRedirects      = 10
	defaultMaxHistory = 50
)

type Router struct {
	routes     []Route
	segments   [][]string
	active     View
	current    Snapshot
	mounted    bool
	history    []string
	maxHistory int
	nextID     int
	last       NavigationEnd
	clock      clock.Clock
	log        *zap.Logger
	observers  []Observer
}

func New(routes []Route, opts ...Option) (*Router, error) {
	segs, err := validate(routes)
	if err != nil {
		return nil, err
	}
	r := &Router{
		routes:     slices.Clone(routes),
		segments:   segs,
		maxHistory: defaultMaxHistory,
		clock:      clock.New(),
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Navigate resolves url, unmounts the current view and mounts the matched
// one. When resolution fails the current view stays mounted. Navigating to the
// location already mounted is a no-op.
func (r *Router) Navigate(url string) error {
	return r.navigate(url, true)
}

// Back returns to the previous location.
func (r *Router) Back() error {
	if len(r.history) == 0 {
		return ErrHistoryEmpty
	}
	prev := r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	if err := r.navigate(prev, false); err != nil {
		r.history = append(r.history, prev)
		return err
	}
	return nil
}

func (r *Router) navigate(url string, record bool) error {
	target := normalize(url)
	if r.mounted && target == r.current.URL {
		return nil
	}

	r.nextID++
	id := r.nextID
	log := r.log.With(zap.Int("nav_id", id), zap.String("url", target))
	r.emit(NavigationStart{ID: id, URL: target, At: r.clock.Now()})

	snap, err := r.resolve(target)
	if err != nil {
		log.Warn("navigation failed", zap.Error(err))
		r.emit(NavigationError{ID: id, URL: target, Err: err, At: r.clock.Now()})
		return err
	}

	end := NavigationEnd{ID: id, URL: target, URLAfterRedirects: snap.URL, At: r.clock.Now()}
	if r.mounted && snap.URL == r.current.URL {
		r.last = end
		r.emit(end)
		return nil
	}

	if u, ok := r.active.(Unmounter); ok {
		u.Unmount()
	}
	if record && r.mounted {
		r.pushHistory(r.current.URL)
	}
	r.active = snap.Route.View(snap)
	r.current = snap
	r.mounted = true

	end.At = r.clock.Now()
	r.last = end
	log.Debug("navigation end", zap.String("url_after_redirects", snap.URL))
	r.emit(end)
	return nil
}

func (r *Router) resolve(url string) (Snapshot, error) {
	for range maxRedirects + 1 {
		segs := splitPath(url)
		idx, params, rest, ok := r.match(segs)
		if !ok {
			return Snapshot{}, &NoRouteError{URL: url, Suggestion: r.Suggest(url)}
		}
		route := r.routes[idx]
		if route.RedirectTo != "" {
			next := expand(route.RedirectTo, params)
			if len(rest) > 0 {
				next += "/" + strings.Join(rest, "/")
			}
			url = normalize(next)
			continue
		}
		snap := Snapshot{URL: url, Route: route, Params: params, Routes: r.Routes()}
		if route.Path == wildcard {
			snap.Suggestion = r.Suggest(url)
		}
		return snap, nil
	}
	return Snapshot{}, fmt.Errorf("%w resolving %s", ErrRedirectLoop, url)
}

// match returns the first route matching segs. For prefix redirects, rest holds
// the segments beyond the matched prefix.
func (r *Router) match(segs []string) (idx int, params map[string]string, rest []string, ok bool) {
	for i, route := range r.routes {
		pattern := r.segments[i]
		if route.Path == wildcard {
			return i, map[string]string{}, nil, true
		}
		prefix := route.RedirectTo != "" && route.PathMatch == PathMatchPrefix
		if len(segs) < len(pattern) || (!prefix && len(segs) != len(pattern)) {
			continue
		}
		captured, matched := matchSegments(pattern, segs)
		if !matched {
			continue
		}
		return i, captured, segs[len(pattern):], true
	}
	return 0, nil, nil, false
}

func matchSegments(pattern, segs []string) (map[string]string, bool) {
	params := map[string]string{}
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			params[name] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

func expand(target string, params map[string]string) string {
	segs := strings.Split(target, "/")
	for i, s := range segs {
		if name, ok := strings.CutPrefix(s, ":"); ok {
			if v, found := params[name]; found {
				segs[i] = v
			}
		}
	}
	return strings.Join(segs, "/")
}

func (r *Router) pushHistory(url string) {
	if r.maxHistory == 0 {
		return
	}
	r.history = append(r.history, url)
	if over := len(r.history) - r.maxHistory; over > 0 {
		r.history = slices.Delete(r.history, 0, over)
	}
}

func (r *Router) emit(e Event) {
	for _, o := range r.observers {
		o(e)
	}
}

// Location is the current location after redirects, or "" before the first
// successful navigation.
func (r *Router) Location() string {
	if !r.mounted {
		return ""
	}
	return r.current.URL
}

func (r *Router) Current() (Snapshot, bool) {
	return r.current, r.mounted
}

func (r *Router) Params() map[string]string {
	return maps.Clone(r.current.Params)
}

func (r *Router) Title() string {
	return r.current.Route.Title
}

func (r *Router) Last() NavigationEnd {
	return r.last
}

func (r *Router) History() []string {
	return slices.Clone(r.history)
}

func (r *Router) Routes() []Route {
	return slices.Clone(r.routes)
}

func (r *Router) Scope() string {
	if r.active == nil {
		return ""
	}
	return r.active.Scope()
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	return r.active.Update(msg)
}

func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}

var _ core.Navigator = (*Router)(nil)

func NavigateCmd(path string) tea.Cmd {
	return func() tea.Msg { return core.NavigateMsg{Path: path} }
}

func BackCmd() tea.Cmd {
	return func() tea.Msg { return core.BackMsg{} }
}
