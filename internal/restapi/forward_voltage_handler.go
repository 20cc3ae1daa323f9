package restapi

import (
	"net/http"

	"ledcalc/internal/led"
	"ledcalc/internal/models"
	"ledcalc/internal/utils"
)

func (api *RestAPI) forwardVoltageHandler(w http.ResponseWriter, r *http.Request) {
	queryParams := r.URL.Query()

	vf, fieldErrors := utils.ParseRequiredFloatParam(queryParams, "forwardVoltage", nil)
	current, _ := utils.ParseRequiredFloatParam(queryParams, "current", fieldErrors)
	ledConstant, _ := utils.ParseRequiredFloatParam(queryParams, "ledConstant", fieldErrors)
	utils.ValidateFiniteParams(map[string]float64{
		"forwardVoltage": vf,
		"current":        current,
		"ledConstant":    ledConstant,
	}, fieldErrors)

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	adjusted, err := led.AdjustForwardVoltage(vf, current, ledConstant)
	if err != nil {
		api.domainErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(models.NewForwardVoltage(vf, current, ledConstant, adjusted)))
}
