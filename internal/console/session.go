// Package console implements the interactive prompt driver for the
// calculator: four prompts in, two report lines out.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"ledcalc/internal/led"
	"ledcalc/internal/logging"
)

// Prompts, in the order the values are read.
const (
	PromptSupplyVoltage  = "Enter supply voltage (V): "
	PromptForwardVoltage = "Enter forward voltage at 20 mA (V): "
	PromptCurrent        = "Enter desired current (mA): "
	PromptLEDConstant    = "Enter LED constant factor (typical: 0.05-0.1 V): "
)

// InputError reports a line that could not be read as a number.
type InputError struct {
	Field string
	Value string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid number for %s: %q", e.Field, e.Value)
}

// Session reads inputs from In and writes prompts and the report to Out.
type Session struct {
	In     io.Reader
	Out    io.Writer
	Logger *slog.Logger

	// Series, when set, adds the next standard resistor value to the report.
	Series led.Series
}

// ReadInput prompts for the four values in order.
func (s *Session) ReadInput(ctx context.Context) (led.Input, error) {
	scanner := bufio.NewScanner(s.In)

	prompts := []struct{ prompt, name string }{
		{PromptSupplyVoltage, "supply voltage"},
		{PromptForwardVoltage, "forward voltage"},
		{PromptCurrent, "desired current"},
		{PromptLEDConstant, "LED constant"},
	}

	var values [4]float64
	for i, p := range prompts {
		if err := ctx.Err(); err != nil {
			return led.Input{}, err
		}

		if _, err := io.WriteString(s.Out, p.prompt); err != nil {
			return led.Input{}, err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return led.Input{}, fmt.Errorf("reading %s: %w", p.name, err)
			}
			return led.Input{}, fmt.Errorf("reading %s: %w", p.name, io.ErrUnexpectedEOF)
		}

		raw := strings.TrimSpace(scanner.Text())
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return led.Input{}, &InputError{Field: p.name, Value: raw}
		}
		values[i] = v
	}

	return led.Input{
		SupplyVoltage:           values[0],
		ReferenceForwardVoltage: values[1],
		DesiredCurrentMA:        values[2],
		LEDConstant:             values[3],
	}, nil
}

// Run prompts for the inputs and reports the result, returning the inputs
// it read. Input and domain errors are printed as "Error: ..." and also
// returned; write failures are returned only.
func (s *Session) Run(ctx context.Context) (led.Input, error) {
	in, err := s.ReadInput(ctx)
	if err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			fmt.Fprintf(s.Out, "Error: %v\n", err)
		}
		logging.LogError(s.Logger, "failed to read calculator input", err,
			slog.String("component", "console"))
		return led.Input{}, err
	}

	return in, s.Report(in)
}

// Report runs the calculation for in and writes the report lines.
func (s *Session) Report(in led.Input) (err error) {
	w := bufio.NewWriter(s.Out)
	defer logging.HandleDeferredError(&err, w.Flush, s.Logger, "flush_report")

	vf, err := led.AdjustForwardVoltage(in.ReferenceForwardVoltage, in.DesiredCurrentMA, in.LEDConstant)
	if err != nil {
		return s.reportError(w, err)
	}
	fmt.Fprintf(w, "Adjusted forward voltage: %s V\n", led.FormatVolts(vf))

	ohms, err := led.CalculateResistor(in.SupplyVoltage, vf, in.DesiredCurrentMA)
	if err != nil {
		return s.reportError(w, err)
	}
	fmt.Fprintf(w, "Required resistor value: %s ohms\n", led.FormatOhms(ohms))

	power, err := led.PowerDissipation(in.SupplyVoltage, vf, in.DesiredCurrentMA)
	if err != nil {
		return s.reportError(w, err)
	}
	fmt.Fprintf(w, "Resistor power dissipation: %s W\n", led.FormatWatts(power))

	if s.Series != "" {
		standard, stdErr := led.NextStandardValue(ohms, s.Series)
		if stdErr != nil {
			return s.reportError(w, stdErr)
		}
		fmt.Fprintf(w, "Nearest %s value (rounded up): %s ohms\n", s.Series, led.FormatOhms(standard))
	}

	logging.LogOperation(s.Logger, "resistor_calculated",
		slog.Float64("forward_voltage", vf),
		slog.Float64("resistance_ohms", ohms),
		slog.String("component", "console"))

	return nil
}

func (s *Session) reportError(w io.Writer, err error) error {
	fmt.Fprintf(w, "Error: %v\n", err)
	logging.LogOperation(s.Logger, "resistor_calculation_rejected",
		slog.String("reason", err.Error()),
		slog.String("component", "console"))
	return err
}
