package views

import (
	"github.com/camunda-angular/client/core"
	"github.com/camunda-angular/client/router"
)

// DefaultRoutes is the route table the client ships with.
func DefaultRoutes(info Info, keys *core.KeyRegistry) []router.Route {
	return []router.Route{
		{Path: "", RedirectTo: "/home", PathMatch: router.PathMatchFull},
		{Path: "home", Title: "Home", View: func(s router.Snapshot) router.View {
			return NewHome(keys, s.Routes)
		}},
		{Path: "about", Title: "About", View: func(router.Snapshot) router.View {
			return NewAbout(info)
		}},
		{Path: "**", Title: "Not found", View: func(s router.Snapshot) router.View {
			return NewNotFound(s.URL, s.Suggestion)
		}},
	}
}
