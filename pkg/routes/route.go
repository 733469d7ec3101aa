// Package routes declares HTTP routes as data so domain handlers can
// publish their endpoints without owning a mux.
package routes

import "net/http"

// Route binds an HTTP method and pattern to a handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
