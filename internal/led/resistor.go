package led

// CalculateResistor returns the series resistance in ohms that drops
// supplyVoltage-forwardVoltage at desiredCurrentMA. A voltage drop of
// exactly zero is rejected along with negative ones.
func CalculateResistor(supplyVoltage, forwardVoltage, desiredCurrentMA float64) (float64, error) {
	const op = "calculate_resistor"

	if !finite(supplyVoltage, forwardVoltage, desiredCurrentMA) {
		return 0, domainError(op, ErrNonFiniteInput)
	}
	if desiredCurrentMA <= 0 {
		return 0, domainError(op, ErrNonPositiveCurrent)
	}

	currentA := desiredCurrentMA / 1000.0
	vDrop := supplyVoltage - forwardVoltage
	if vDrop <= 0 {
		return 0, domainError(op, ErrSupplyTooLow)
	}

	// A tiny current or an overflowing drop can still push the quotient
	// to +Inf or to 0.
	ohms := vDrop / currentA
	if !finite(ohms) || ohms <= 0 {
		return 0, domainError(op, ErrResultOutOfRange)
	}
	return ohms, nil
}

// PowerDissipation returns the power in watts burned in the resistor.
// Inputs are expected to have passed CalculateResistor already.
func PowerDissipation(supplyVoltage, forwardVoltage, desiredCurrentMA float64) (float64, error) {
	power := (supplyVoltage - forwardVoltage) * desiredCurrentMA / 1000.0
	if !finite(power) {
		return 0, domainError("power_dissipation", ErrResultOutOfRange)
	}
	return power, nil
}
