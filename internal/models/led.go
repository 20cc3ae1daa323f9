package models

import "ledcalc/internal/led"

// ResistorCalculation is the entry returned by the resistor endpoint.
// Formatted fields carry the precision the console driver prints.
type ResistorCalculation struct {
	SupplyVoltage           float64 `json:"supplyVoltage"`
	ReferenceForwardVoltage float64 `json:"referenceForwardVoltage"`
	DesiredCurrentMA        float64 `json:"desiredCurrentMa"`
	LEDConstant             float64 `json:"ledConstant"`
	AdjustedForwardVoltage  float64 `json:"adjustedForwardVoltage"`
	ResistanceOhms          float64 `json:"resistanceOhms"`
	PowerWatts              float64 `json:"powerWatts"`
	FormattedForwardVoltage string  `json:"formattedForwardVoltage"`
	FormattedResistance     string  `json:"formattedResistance"`
	Series                  string  `json:"series,omitempty"`
	StandardResistanceOhms  float64 `json:"standardResistanceOhms,omitempty"`
}

func NewResistorCalculation(result led.Result) ResistorCalculation {
	return ResistorCalculation{
		SupplyVoltage:           result.Input.SupplyVoltage,
		ReferenceForwardVoltage: result.Input.ReferenceForwardVoltage,
		DesiredCurrentMA:        result.Input.DesiredCurrentMA,
		LEDConstant:             result.Input.LEDConstant,
		AdjustedForwardVoltage:  result.AdjustedForwardVoltage,
		ResistanceOhms:          result.ResistanceOhms,
		PowerWatts:              result.PowerW,
		FormattedForwardVoltage: led.FormatVolts(result.AdjustedForwardVoltage),
		FormattedResistance:     led.FormatOhms(result.ResistanceOhms),
	}
}

// WithStandardValue records the E-series value chosen for the resistor.
func (c ResistorCalculation) WithStandardValue(series led.Series, ohms float64) ResistorCalculation {
	c.Series = string(series)
	c.StandardResistanceOhms = ohms
	return c
}

// ForwardVoltage is the entry returned by the forward voltage endpoint.
type ForwardVoltage struct {
	ReferenceForwardVoltage float64 `json:"referenceForwardVoltage"`
	DesiredCurrentMA        float64 `json:"desiredCurrentMa"`
	LEDConstant             float64 `json:"ledConstant"`
	AdjustedForwardVoltage  float64 `json:"adjustedForwardVoltage"`
	FormattedForwardVoltage string  `json:"formattedForwardVoltage"`
}

func NewForwardVoltage(referenceVf, currentMA, ledConstant, adjusted float64) ForwardVoltage {
	return ForwardVoltage{
		ReferenceForwardVoltage: referenceVf,
		DesiredCurrentMA:        currentMA,
		LEDConstant:             ledConstant,
		AdjustedForwardVoltage:  adjusted,
		FormattedForwardVoltage: led.FormatVolts(adjusted),
	}
}

// StandardValue is one entry of an E-series decade listing.
type StandardValue struct {
	Series string  `json:"series"`
	Index  int     `json:"index"`
	Value  float64 `json:"value"`
}

func NewStandardValues(series led.Series, values []float64) []StandardValue {
	list := make([]StandardValue, 0, len(values))
	for i, v := range values {
		list = append(list, StandardValue{Series: string(series), Index: i, Value: v})
	}
	return list
}
