package router

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the declared location closest to url by edit distance, or
// "" when nothing is within a third of url's length in runes (and at least 2 edits).
func (r *Router) Suggest(url string) string {
	url = normalize(url)
	limit := max(2, utf8.RuneCountInString(url)/3)
	best, bestDist := "", limit+1
	for _, route := range r.routes {
		link, ok := route.Link()
		if !ok || link == url {
			continue
		}
		if d := levenshtein.ComputeDistance(url, link); d < bestDist {
			best, bestDist = link, d
		}
	}
	return best
}
