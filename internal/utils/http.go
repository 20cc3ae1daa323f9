package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

const jsonSuffix = ".json"

// ExtractIDFromParams returns the named route parameter. A trailing ".json"
// in any case is dropped, so "E12" and "E12.json" name the same resource.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	value := httprouter.ParamsFromContext(r.Context()).ByName(paramName)
	if n := len(value) - len(jsonSuffix); n >= 0 && strings.EqualFold(value[n:], jsonSuffix) {
		return value[:n]
	}
	return value
}
