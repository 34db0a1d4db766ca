package middleware

import (
	"golang.org/x/time/rate"

	pkgLog "document-chatbot/pkg/log"
)

// Middleware bundles the HTTP middleware used by the server.
type Middleware struct {
	l       pkgLog.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. ratePerSecond limits inbound chat
// traffic; burst allows short spikes.
func New(l pkgLog.Logger, ratePerSecond float64, burst int) Middleware {
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), burst),
	}
}
