package gopages

import (
	"strconv"
	"strings"
)

// RoutePlaceholder is replaced by the page number in PatternRouter patterns.
const RoutePlaceholder = "{n}"

// Router maps a page number to the output path of that page. It must be
// deterministic: within one pass the same number must always produce the
// same path.
type Router func(n int) string

// PatternRouter builds a Router from a path template, replacing every
// RoutePlaceholder with the decimal page number.
//
// Example:
//
//	PatternRouter("notes/{n}/index.html")(2) == "notes/2/index.html"
func PatternRouter(pattern string) Router {
	return func(n int) string {
		return strings.ReplaceAll(pattern, RoutePlaceholder, strconv.Itoa(n))
	}
}

// routeCache memoizes a Router for the duration of one pass. It is not safe
// for concurrent use and must not outlive the pass that created it.
type routeCache struct {
	router Router
	paths  map[int]string
}

func newRouteCache(router Router) *routeCache {
	return &routeCache{
		router: router,
		paths:  make(map[int]string),
	}
}

// resolve returns the path of page n, routing it on first use only.
func (c *routeCache) resolve(n int) string {
	if path, ok := c.paths[n]; ok {
		return path
	}

	path := c.router(n)
	c.paths[n] = path

	return path
}

// link returns the (number, path) tuple of page n.
func (c *routeCache) link(n int) Link {
	return Link{
		Number: n,
		Path:   c.resolve(n),
	}
}
