package colour

import "fmt"

// ValidationError reports a channel value outside its documented bounds.
// It is the only error kind the package produces: conversions are total over
// valid inputs, so failures can only happen at construction or Clone time.
type ValidationError struct {
	Field string
	Value float64
	Range string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %v not in range %s", e.Field, e.Value, e.Range)
}

// fraction validates a percentage-or-fraction channel and stores it as a
// unit fraction. Values above 1 are read as percentages and divided by 100,
// so fraction("saturation", 50) and fraction("saturation", 0.5) agree.
// An explicit zero is validated and kept like any other value.
func fraction(field string, v float64) (float64, error) {
	if v < 0 || v > 100 {
		return 0, &ValidationError{Field: field, Value: v, Range: "[0, 100] or [0.0, 1.0]"}
	}

	if v > 1 {
		v /= 100
	}

	return v, nil
}
