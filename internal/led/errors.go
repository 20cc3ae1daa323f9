package led

import "errors"

var (
	// ErrNonPositiveCurrent is returned when the desired current is zero or negative.
	ErrNonPositiveCurrent = errors.New("desired current must be greater than 0 mA")

	// ErrSupplyTooLow is returned when nothing is left across the resistor.
	ErrSupplyTooLow = errors.New("supply voltage is too low to drive the LED with the desired current")

	// ErrNonFiniteInput is returned for NaN or infinite inputs.
	ErrNonFiniteInput = errors.New("input values must be finite numbers")

	// ErrResultOutOfRange is returned when finite inputs overflow or underflow
	// the calculation.
	ErrResultOutOfRange = errors.New("inputs are outside the range that can be calculated")
)

// DomainError reports inputs for which no physical answer exists.
// It always wraps one of the Err* sentinels above.
type DomainError struct {
	Op  string
	Err error
}

func (e *DomainError) Error() string {
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func domainError(op string, err error) *DomainError {
	return &DomainError{Op: op, Err: err}
}

// IsDomainError reports whether err carries a DomainError anywhere in its chain.
func IsDomainError(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}
