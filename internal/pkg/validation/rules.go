package validation

import "fmt"

// Review score bounds, inclusive.
const (
	ScoreMin = 1
	ScoreMax = 5
)

// NumericValidation checks an integer against an inclusive range.
type NumericValidation struct {
	Field string
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a new numeric validation for the named field
func NewNumericValidation(field string, value int) *NumericValidation {
	return &NumericValidation{Field: field, Value: value, Min: ScoreMin, Max: ScoreMax}
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	return v.Value >= v.Min && v.Value <= v.Max
}

// Message is the user-facing text reported when Validate fails.
func (v *NumericValidation) Message() string {
	return fmt.Sprintf("%s must be between %d and %d", v.Field, v.Min, v.Max)
}

// CollectRangeErrors runs every validation and returns one message per failure, in order.
func CollectRangeErrors(checks ...*NumericValidation) []string {
	var errs []string
	for _, c := range checks {
		if !c.Validate() {
			errs = append(errs, c.Message())
		}
	}
	return errs
}
