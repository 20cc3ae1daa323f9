package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ledcalc/internal/logging"
	"ledcalc/internal/models"
)

type errorResponse struct {
	Code        int    `json:"code"`
	CurrentTime int64  `json:"currentTime"`
	Text        string `json:"text"`
	Version     int    `json:"version"`
}

// errorVersion matches models.NewResponse so success and error envelopes
// share one version and clients branch on code alone.
const errorVersion = 2

func (api *RestAPI) writeError(w http.ResponseWriter, status int, text string) {
	response := errorResponse{
		Code:        status,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        text,
		Version:     errorVersion,
	}

	setJSONResponseType(&w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode error response", err,
			slog.Int("status", status))
	}
}

// invalidAPIKeyResponse sends a 401 Unauthorized response.
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, r *http.Request) {
	api.writeError(w, http.StatusUnauthorized, "permission denied")
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(api.Logger, "internal server error", err,
		slog.String("path", r.URL.Path),
		slog.String("component", "rest_api"))
	api.writeError(w, http.StatusInternalServerError, "internal server error")
}

// domainErrorResponse sends a 400 whose text names the domain error.
// No numeric result is included.
func (api *RestAPI) domainErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.writeError(w, http.StatusBadRequest, err.Error())
}

// validationErrorResponse sends a 400 Bad Request response with field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}

	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadRequest)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logging.LogError(api.Logger, "failed to encode validation error response", err)
	}
}
