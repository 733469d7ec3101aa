// Package middleware provides composable HTTP middleware: an ordered
// stack, request identification, request logging, and CORS.
package middleware

import "net/http"

// Func is a single HTTP middleware.
type Func = func(http.Handler) http.Handler

// System manages an ordered stack of HTTP middleware. The first middleware
// added is the outermost wrapper.
type System interface {
	Use(mw Func)
	Apply(handler http.Handler) http.Handler
}

type stack struct {
	funcs []Func
}

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

func (s *stack) Use(fn Func) {
	s.funcs = append(s.funcs, fn)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.funcs) - 1; i >= 0; i-- {
		handler = s.funcs[i](handler)
	}
	return handler
}
