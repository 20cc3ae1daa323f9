package utils

import (
	"errors"
	"math"
	"regexp"
)

// Series names and other path IDs: alphanumerics, underscore, hyphen, dot.
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateFinite rejects NaN and infinities, which strconv.ParseFloat accepts.
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("value must be a finite number")
	}
	return nil
}

// ValidateFiniteParams checks every named value with ValidateFinite and
// adds failures to fieldErrors.
func ValidateFiniteParams(values map[string]float64, fieldErrors map[string][]string) map[string][]string {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	for key, v := range values {
		if err := ValidateFinite(v); err != nil {
			fieldErrors[key] = append(fieldErrors[key], err.Error())
		}
	}

	return fieldErrors
}
