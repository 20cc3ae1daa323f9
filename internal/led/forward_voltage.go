// Package led sizes the series resistor for an LED.
//
// The forward voltage of an LED is specified at a reference current of
// 20 mA and rises roughly logarithmically with drive current, so
// AdjustForwardVoltage first moves the datasheet value to the desired
// current and CalculateResistor then sizes the resistor for whatever
// voltage is left over.
package led

import "math"

// ReferenceCurrentMA is the datasheet current at which forward voltage is specified.
const ReferenceCurrentMA = 20.0

// AdjustForwardVoltage extrapolates the forward voltage measured at
// ReferenceCurrentMA to desiredCurrentMA:
//
//	vf = referenceVf + ledConstant * ln(desiredCurrentMA / 20)
//
// ledConstant is accepted as given; typical values lie between 0.05 and 0.1 V.
func AdjustForwardVoltage(referenceVf, desiredCurrentMA, ledConstant float64) (float64, error) {
	const op = "adjust_forward_voltage"

	if !finite(referenceVf, desiredCurrentMA, ledConstant) {
		return 0, domainError(op, ErrNonFiniteInput)
	}
	if desiredCurrentMA <= 0 {
		return 0, domainError(op, ErrNonPositiveCurrent)
	}

	ratio := desiredCurrentMA / ReferenceCurrentMA
	vf := referenceVf + ledConstant*math.Log(ratio)
	if !finite(vf) {
		return 0, domainError(op, ErrResultOutOfRange)
	}
	return vf, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
