package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"ledcalc/internal/app"
	"ledcalc/internal/appconf"
	"ledcalc/internal/logging"
	"ledcalc/internal/models"
)

// createTestApi creates a RestAPI accepting the key TEST, logging nowhere.
func createTestApi(t *testing.T) *RestAPI {
	application := &app.Application{
		Config: appconf.Config{
			Env:       appconf.EnvFlagToEnvironment("test"),
			ApiKeys:   []string{"TEST"},
			RateLimit: 100,
		},
		Logger: logging.NewStructuredLogger(io.Discard, slog.LevelError),
	}

	api := NewRestAPI(application)
	t.Cleanup(api.Close)

	return api
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	resp, body := serveApiAndRetrieveBody(t, api, endpoint)

	var response models.ResponseModel
	err := json.Unmarshal(body, &response)
	require.NoError(t, err)

	return resp, response
}

func serveApiAndRetrieveBody(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	server := httptest.NewServer(api.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

// entryFromModel digs data.entry out of a decoded envelope.
func entryFromModel(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "data should be an object")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "data.entry should be an object")
	return entry
}

func fieldErrorsFromBody(t *testing.T, body []byte) map[string][]string {
	var response struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(body, &response))
	return response.FieldErrors
}
