package utils

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
		errMsg  string
	}{
		{name: "series name", id: "E12"},
		{name: "lower case series", id: "e96"},
		{name: "empty ID", id: "", wantErr: true, errMsg: "id cannot be empty"},
		{name: "ID too long", id: strings.Repeat("a", 101), wantErr: true, errMsg: "id too long (max 100 characters)"},
		{name: "ID with script tag", id: "E12<script>", wantErr: true, errMsg: "id contains invalid characters"},
		{name: "ID with path traversal", id: "../../../etc/passwd", wantErr: true, errMsg: "id contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateID(tt.id)
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFiniteParams(t *testing.T) {
	fieldErrors := ValidateFiniteParams(map[string]float64{
		"supplyVoltage":  math.NaN(),
		"forwardVoltage": 2.0,
		"current":        math.Inf(-1),
	}, nil)

	assert.Len(t, fieldErrors, 2)
	assert.Equal(t, []string{"value must be a finite number"}, fieldErrors["supplyVoltage"])
	assert.Contains(t, fieldErrors, "current")
	assert.NotContains(t, fieldErrors, "forwardVoltage")
}
