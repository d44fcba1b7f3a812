package router

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const wildcard = "**"

type PathMatch int

const (
	// PathMatchPrefix lets a redirect consume a leading part of the location
	// and carry the remainder over to the target.
	PathMatchPrefix PathMatch = iota
	PathMatchFull
)

// View is a routed screen mounted into the outlet.
type View interface {
	Scope() string
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Unmounter is implemented by views that release state when replaced.
type Unmounter interface {
	Unmount()
}

type ViewFactory func(s Snapshot) View

type Route struct {
	Path       string
	Title      string
	RedirectTo string
	PathMatch  PathMatch
	View       ViewFactory
}

// Snapshot describes the route state a view is mounted for.
type Snapshot struct {
	URL    string
	Route  Route
	Params map[string]string
	// Routes is the full route table, for views that list destinations.
	Routes []Route
	// Suggestion is set for wildcard matches when a declared location is close
	// to URL.
	Suggestion string
}

func (s Snapshot) Param(name string) string {
	return s.Params[name]
}

// Link returns the location a route without parameters is reachable at, and
// false for wildcard, redirect or parameterised routes.
func (r Route) Link() (string, bool) {
	if r.View == nil || r.Path == wildcard || strings.Contains(r.Path, ":") {
		return "", false
	}
	return "/" + r.Path, true
}

func validate(routes []Route) ([][]string, error) {
	parsed := make([][]string, len(routes))
	seen := make(map[string]bool, len(routes))
	for i, r := range routes {
		if strings.HasPrefix(r.Path, "/") {
			return nil, invalidRoute(r.Path, "path cannot start with a slash")
		}
		if r.View == nil && r.RedirectTo == "" {
			return nil, invalidRoute(r.Path, "one of View or RedirectTo is required")
		}
		if r.View != nil && r.RedirectTo != "" {
			return nil, invalidRoute(r.Path, "View and RedirectTo are mutually exclusive")
		}
		if r.Path == "" && r.RedirectTo != "" && r.PathMatch != PathMatchFull {
			return nil, invalidRoute(r.Path, "an empty-path redirect needs PathMatchFull")
		}
		if r.Path == wildcard && i != len(routes)-1 {
			return nil, invalidRoute(r.Path, "wildcard route must be declared last")
		}
		var segs []string
		if r.Path != "" {
			segs = strings.Split(r.Path, "/")
		}
		params := map[string]bool{}
		shape := make([]string, len(segs))
		for j, seg := range segs {
			shape[j] = seg
			if seg == "" {
				return nil, invalidRoute(r.Path, "empty segment")
			}
			if seg == ":" {
				return nil, invalidRoute(r.Path, "parameter without a name")
			}
			if seg == wildcard && r.Path != wildcard {
				return nil, invalidRoute(r.Path, "wildcard must be the whole path")
			}
			if name, ok := strings.CutPrefix(seg, ":"); ok {
				if params[name] {
					return nil, invalidRoute(r.Path, "parameter %q declared twice", name)
				}
				params[name] = true
				shape[j] = ":"
			}
		}
		for _, seg := range strings.Split(r.RedirectTo, "/") {
			if name, ok := strings.CutPrefix(seg, ":"); ok && !params[name] {
				return nil, invalidRoute(r.Path, "redirect target uses parameter %q the path does not capture", name)
			}
		}
		// Parameter names do not take part in matching, so p/:id and p/:name
		// are the same pattern.
		key := strings.Join(shape, "/")
		if seen[key] {
			return nil, invalidRoute(r.Path, "duplicate path")
		}
		seen[key] = true
		parsed[i] = segs
	}
	return parsed, nil
}

// normalize turns a user supplied location into its canonical form: a single
// leading slash, no empty segments, no trailing slash, query and fragment
// dropped.
func normalize(url string) string {
	url = strings.TrimSpace(url)
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	return "/" + strings.Join(splitPath(url), "/")
}

func splitPath(p string) []string {
	parts := strings.Split(p, "/")
	out := parts[:0]
	for _, s := range parts {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
