package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

// validateAPIKey rejects requests without a configured key, then applies
// the per-key rate limit.
func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	var next http.Handler = http.HandlerFunc(finalHandler)
	if api.rateLimiter != nil {
		next = api.rateLimiter.Handler(next)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/led/resistor.json", validateAPIKey(api, api.resistorHandler))
	router.Handler(http.MethodGet, "/api/led/forward-voltage.json", validateAPIKey(api, api.forwardVoltageHandler))
	router.Handler(http.MethodGet, "/api/led/standard-values/:series", validateAPIKey(api, api.standardValuesHandler))
	router.NotFound = http.HandlerFunc(api.sendNotFound)
}

// Routes returns a router with every API route registered.
func (api *RestAPI) Routes() *httprouter.Router {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}
