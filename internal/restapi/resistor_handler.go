package restapi

import (
	"log/slog"
	"net/http"

	"ledcalc/internal/led"
	"ledcalc/internal/logging"
	"ledcalc/internal/models"
	"ledcalc/internal/utils"
)

// resistorHandler runs the full calculation:
// GET /api/led/resistor.json?supplyVoltage=5&forwardVoltage=2&current=20&ledConstant=0.07[&series=E12]
func (api *RestAPI) resistorHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	supply, fieldErrors := utils.ParseRequiredFloatParam(queryParams, "supplyVoltage", nil)
	vf, _ := utils.ParseRequiredFloatParam(queryParams, "forwardVoltage", fieldErrors)
	current, _ := utils.ParseRequiredFloatParam(queryParams, "current", fieldErrors)
	ledConstant, _ := utils.ParseRequiredFloatParam(queryParams, "ledConstant", fieldErrors)
	utils.ValidateFiniteParams(map[string]float64{
		"supplyVoltage":  supply,
		"forwardVoltage": vf,
		"current":        current,
		"ledConstant":    ledConstant,
	}, fieldErrors)

	var series led.Series
	if name := queryParams.Get("series"); name != "" {
		s, err := led.ParseSeries(name)
		if err != nil {
			fieldErrors["series"] = append(fieldErrors["series"], err.Error())
		}
		series = s
	}

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	logger := logging.FromContext(r.Context())
	in := led.Input{
		SupplyVoltage:           supply,
		ReferenceForwardVoltage: vf,
		DesiredCurrentMA:        current,
		LEDConstant:             ledConstant,
	}

	result, err := led.Calculate(in)
	if err != nil {
		if led.IsDomainError(err) {
			logging.LogOperation(logger, "resistor_calculation_rejected",
				slog.String("reason", err.Error()),
				slog.String("component", "rest_api"))
			api.domainErrorResponse(w, r, err)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	entry := models.NewResistorCalculation(result)
	if series != "" {
		standard, err := led.NextStandardValue(result.ResistanceOhms, series)
		if err != nil {
			api.serverErrorResponse(w, r, err)
			return
		}
		entry = entry.WithStandardValue(series, standard)
	}

	logging.LogOperation(logger, "resistor_calculated",
		slog.Float64("resistance_ohms", result.ResistanceOhms),
		slog.Float64("forward_voltage", result.AdjustedForwardVoltage),
		slog.String("component", "rest_api"))

	api.sendResponse(w, r, models.NewEntryResponse(entry))
}
