package restapi

import (
	"net/http"

	"ledcalc/internal/led"
	"ledcalc/internal/models"
	"ledcalc/internal/utils"
)

func (api *RestAPI) standardValuesHandler(w http.ResponseWriter, r *http.Request) {
	id := utils.ExtractIDFromParams(r, "series")

	if err := utils.ValidateID(id); err != nil {
		fieldErrors := map[string][]string{
			"series": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	series, err := led.ParseSeries(id)
	if err != nil {
		api.sendNotFound(w, r)
		return
	}

	values, err := led.SeriesValues(series)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendResponse(w, r, models.NewListResponse(models.NewStandardValues(series, values)))
}
