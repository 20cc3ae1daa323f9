package restapi

import (
	"net/http"
	"time"

	"ledcalc/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter *RateLimitMiddleware
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler returns the API routes wrapped in the full middleware chain.
func (api *RestAPI) Handler() http.Handler {
	return api.WithMiddleware(api.Routes())
}

// WithMiddleware applies compression, request logging and security headers to handler.
func (api *RestAPI) WithMiddleware(handler http.Handler) http.Handler {
	handler = CompressionMiddleware(handler)
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return api.WithSecurityHeaders(handler)
}

// Close stops background work owned by the API.
func (api *RestAPI) Close() {
	if api.rateLimiter != nil {
		api.rateLimiter.Stop()
	}
}
