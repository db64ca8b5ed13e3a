package middleware

import (
	"net/http"
	"slices"
)

// Middleware wraps a handler with cross-cutting behaviour.
type Middleware func(http.Handler) http.Handler

// Chain composes mws into one Middleware. The first element is outermost
// and sees the request first.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for _, mw := range slices.Backward(mws) {
			h = mw(h)
		}
		return h
	}
}

// When returns mw if enabled and a pass-through otherwise.
func When(enabled bool, mw Middleware) Middleware {
	if enabled {
		return mw
	}
	return func(h http.Handler) http.Handler { return h }
}
