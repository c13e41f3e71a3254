package domain

// StopType classifies an inserted waypoint along the route.
type StopType string

const (
	StopRefueling StopType = "refueling"
	StopRest      StopType = "rest"
	StopOvernight StopType = "overnight"
)

// Stop is an inserted waypoint. Refueling stops carry fuel bookkeeping;
// rest and overnight stops carry a required rest duration instead.
// Stops are computed once per planning request and never mutated.
type Stop struct {
	Type                    StopType
	Location                Location
	DistanceFromStartMeters float64
	EstimatedArrivalMinutes float64
	DurationMinutes         float64
	FuelLevelBeforeL        *float64
	FuelNeededL             *float64
	RestTimeMinutesNeeded   *float64
	Facilities              []string
}
