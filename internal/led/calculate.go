package led

import "fmt"

// Input holds the four values a calculation starts from.
type Input struct {
	SupplyVoltage           float64
	ReferenceForwardVoltage float64
	DesiredCurrentMA        float64
	LEDConstant             float64
}

// Result is the outcome of a successful Calculate.
type Result struct {
	Input                  Input
	AdjustedForwardVoltage float64
	ResistanceOhms         float64
	PowerW                 float64
}

// Calculate adjusts the forward voltage for the desired current and
// sizes the resistor for it. On error the returned Result is zero.
func Calculate(in Input) (Result, error) {
	vf, err := AdjustForwardVoltage(in.ReferenceForwardVoltage, in.DesiredCurrentMA, in.LEDConstant)
	if err != nil {
		return Result{}, err
	}

	ohms, err := CalculateResistor(in.SupplyVoltage, vf, in.DesiredCurrentMA)
	if err != nil {
		return Result{}, err
	}

	power, err := PowerDissipation(in.SupplyVoltage, vf, in.DesiredCurrentMA)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Input:                  in,
		AdjustedForwardVoltage: vf,
		ResistanceOhms:         ohms,
		PowerW:                 power,
	}, nil
}

// FormatVolts renders a voltage with three decimals.
func FormatVolts(v float64) string {
	return fmt.Sprintf("%.3f", v)
}

// FormatOhms renders a resistance with two decimals.
func FormatOhms(ohms float64) string {
	return fmt.Sprintf("%.2f", ohms)
}

// FormatWatts renders a power with three decimals.
func FormatWatts(w float64) string {
	return fmt.Sprintf("%.3f", w)
}
