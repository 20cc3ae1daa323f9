package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"ledcalc/internal/logging"
	"ledcalc/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response models.ResponseModel) {
	api.sendEnvelope(w, r, http.StatusOK, response)
}

func (api *RestAPI) sendNotFound(w http.ResponseWriter, r *http.Request) {
	api.sendEnvelope(w, r, http.StatusNotFound,
		models.NewResponse(http.StatusNotFound, nil, "resource not found"))
}

// sendEnvelope marshals before touching the writer, so a value JSON cannot
// represent still turns into a clean 500 rather than a truncated 200.
func (api *RestAPI) sendEnvelope(w http.ResponseWriter, r *http.Request, status int, response models.ResponseModel) {
	body, err := json.Marshal(response)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	setJSONResponseType(&w)
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logging.LogError(logging.FromContext(r.Context()), "failed to write response", err,
			slog.String("path", r.URL.Path),
			slog.Int("status", status))
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
