package middleware

import (
	"tm-intent-classifier/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares used by the server.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{
		l: l,
	}
}
