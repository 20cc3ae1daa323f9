package app

import (
	"net/http"
	"slices"
)

// apiKeyParam is the query parameter every /api/ request authenticates with.
const apiKeyParam = "key"

// RequestHasInvalidAPIKey reports whether r carries no configured API key.
func (app *Application) RequestHasInvalidAPIKey(r *http.Request) bool {
	return app.IsInvalidAPIKey(r.URL.Query().Get(apiKeyParam))
}

// IsInvalidAPIKey reports whether key is blank or not among the configured keys.
func (app *Application) IsInvalidAPIKey(key string) bool {
	return key == "" || !slices.Contains(app.Config.ApiKeys, key)
}
