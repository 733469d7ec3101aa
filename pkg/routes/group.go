package routes

import "net/http"

// Group organizes routes under a common prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		group.walk("", func(pattern string, route Route) {
			mux.HandleFunc(pattern, route.Handler)
		})
	}
}

// Patterns returns the full "METHOD /path" pattern of every route in the
// group and its children, in declaration order.
func (g Group) Patterns() []string {
	var out []string
	g.walk("", func(pattern string, _ Route) {
		out = append(out, pattern)
	})
	return out
}

func (g Group) walk(parentPrefix string, fn func(pattern string, route Route)) {
	prefix := parentPrefix + g.Prefix
	for _, route := range g.Routes {
		fn(route.Method+" "+prefix+route.Pattern, route)
	}
	for _, child := range g.Children {
		child.walk(prefix, fn)
	}
}
