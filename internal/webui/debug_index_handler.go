package webui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/davecgh/go-spew/spew"
	"ledcalc/internal/led"
	"ledcalc/internal/logging"
	"ledcalc/internal/utils"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

type debugData struct {
	Title string
	Pre   string
}

// WebUI serves human-readable debug pages next to the JSON API.
type WebUI struct {
	Logger *slog.Logger
}

func (webUI *WebUI) writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title: title,
		Pre:   spew.Sdump(data),
	})
	if err != nil {
		logging.LogError(webUI.Logger, "failed to render debug page", err,
			slog.String("component", "webui"))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// debugIndexHandler dumps the full led.Result, or the error, for the
// same query parameters the resistor endpoint takes.
func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	if queryParams.Get("supplyVoltage") == "" {
		webUI.writeDebugData(w, "Choose inputs", map[string]string{
			"usage": "/debug/?supplyVoltage=5&forwardVoltage=2&current=20&ledConstant=0.07",
		})
		return
	}

	supply, fieldErrors := utils.ParseRequiredFloatParam(queryParams, "supplyVoltage", nil)
	vf, _ := utils.ParseRequiredFloatParam(queryParams, "forwardVoltage", fieldErrors)
	current, _ := utils.ParseRequiredFloatParam(queryParams, "current", fieldErrors)
	ledConstant, _ := utils.ParseRequiredFloatParam(queryParams, "ledConstant", fieldErrors)
	if len(fieldErrors) > 0 {
		webUI.writeDebugData(w, "Invalid inputs", fieldErrors)
		return
	}

	result, err := led.Calculate(led.Input{
		SupplyVoltage:           supply,
		ReferenceForwardVoltage: vf,
		DesiredCurrentMA:        current,
		LEDConstant:             ledConstant,
	})
	if err != nil {
		webUI.writeDebugData(w, "Calculation failed", err)
		return
	}

	webUI.writeDebugData(w, "LED resistor calculation", result)
}
