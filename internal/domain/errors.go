package domain

import "fmt"

// Returned when a location cannot be resolved to coordinates.
// Fatal for planning: a trip with an unknown stop is not plannable.
type UnresolvableLocationError struct {
	Name string
	Err  error
}

func (e *UnresolvableLocationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("location %q could not be resolved: %v", e.Name, e.Err)
	}
	return fmt.Sprintf("location %q could not be resolved", e.Name)
}

func (e *UnresolvableLocationError) Unwrap() error { return e.Err }

// Returned when trip constraints are not usable (bad clock values,
// end time not after start time).
type InvalidConstraintsError struct {
	Reason string
}

func (e *InvalidConstraintsError) Error() string {
	return "invalid trip constraints: " + e.Reason
}
