package domain

import "fmt"

// ValidationError reports malformed or out-of-range trip and vehicle input.
// It is surfaced to the caller before any computation runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// InvalidRouteError reports a route that violates structural invariants
// (empty segment list, non-adjacent segments).
type InvalidRouteError struct {
	Reason string
}

func (e *InvalidRouteError) Error() string {
	return "invalid route: " + e.Reason
}

// InsufficientRangeError reports a segment whose fuel requirement cannot be
// satisfied even from a full tank. The plan is impossible without re-routing,
// so the planner fails loudly instead of under-provisioning.
type InsufficientRangeError struct {
	SegmentIndex   int
	RequiredLiters float64
	TankCapacityL  float64
}

func (e *InsufficientRangeError) Error() string {
	return fmt.Sprintf(
		"segment %d requires %.1fL of fuel but the tank holds %.1fL",
		e.SegmentIndex, e.RequiredLiters, e.TankCapacityL,
	)
}
