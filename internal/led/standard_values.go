package led

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Series identifies an IEC 60063 preferred number series.
type Series string

const (
	E6  Series = "E6"
	E12 Series = "E12"
	E24 Series = "E24"
	E48 Series = "E48"
	E96 Series = "E96"
)

var ErrUnknownSeries = errors.New("unknown resistor series")

// Significant figures per decade. E6 to E24 use two digits, E48 and E96 three.
var seriesCodes = map[Series][]int{
	E6:  {10, 15, 22, 33, 47, 68},
	E12: {10, 12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82},
	E24: {10, 11, 12, 13, 15, 16, 18, 20, 22, 24, 27, 30, 33, 36, 39, 43, 47, 51, 56, 62, 68, 75, 82, 91},
	E48: {
		100, 105, 110, 115, 121, 127, 133, 140, 147, 154, 162, 169, 178, 187, 196, 205,
		215, 226, 237, 249, 261, 274, 287, 301, 316, 332, 348, 365, 383, 402, 422, 442,
		464, 487, 511, 536, 562, 590, 619, 649, 681, 715, 750, 787, 825, 866, 909, 953,
	},
	E96: {
		100, 102, 105, 107, 110, 113, 115, 118, 121, 124, 127, 130, 133, 137, 140, 143,
		147, 150, 154, 158, 162, 165, 169, 174, 178, 182, 187, 191, 196, 200, 205, 210,
		215, 221, 226, 232, 237, 243, 249, 255, 261, 267, 274, 280, 287, 294, 301, 309,
		316, 324, 332, 340, 348, 357, 365, 374, 383, 392, 402, 412, 422, 432, 442, 453,
		464, 475, 487, 499, 511, 523, 536, 549, 562, 576, 590, 604, 619, 634, 649, 665,
		681, 698, 715, 732, 750, 768, 787, 806, 825, 845, 866, 887, 909, 931, 953, 976,
	},
}

// ParseSeries accepts a series name in any case, e.g. "e12".
func ParseSeries(name string) (Series, error) {
	s := Series(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := seriesCodes[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}
	return s, nil
}

// SeriesValues returns the series values for the 1 Ω to 10 Ω decade.
func SeriesValues(s Series) ([]float64, error) {
	codes, ok := seriesCodes[s]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, s)
	}

	divisor := divisorFor(codes)
	values := make([]float64, len(codes))
	for i, code := range codes {
		values[i] = float64(code) / divisor
	}
	return values, nil
}

// NextStandardValue returns the smallest value of series s that is not
// below ohms. Rounding up keeps the real LED current at or under target.
func NextStandardValue(ohms float64, s Series) (float64, error) {
	codes, ok := seriesCodes[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSeries, s)
	}
	if math.IsNaN(ohms) || math.IsInf(ohms, 0) || ohms <= 0 {
		return 0, fmt.Errorf("resistance must be a positive finite value, got %v", ohms)
	}

	decade := math.Pow(10, math.Floor(math.Log10(ohms)))
	// Log10 can land one ulp off on exact powers of ten.
	if ohms/decade >= 10 {
		decade *= 10
	} else if ohms/decade < 1 {
		decade /= 10
	}

	divisor := divisorFor(codes)
	threshold := ohms * (1 - 1e-9)
	for _, code := range codes {
		candidate := float64(code) * decade / divisor
		if candidate >= threshold {
			return candidate, nil
		}
	}

	return float64(codes[0]) * decade * 10 / divisor, nil
}

func divisorFor(codes []int) float64 {
	if codes[0] >= 100 {
		return 100
	}
	return 10
}
