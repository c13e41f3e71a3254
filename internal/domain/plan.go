package domain

import "time"

// WeatherReport holds current conditions at one location. It is optional
// enrichment supplied by an external provider and passed through unmodified.
type WeatherReport struct {
	TemperatureC  float64
	WindSpeedKmh  float64
	HumidityPct   float64
	ObservedAt    string
}

// WeatherSummary pairs origin and destination conditions with simple textual
// recommendations.
type WeatherSummary struct {
	Origin          WeatherReport
	Destination     WeatherReport
	Recommendations []string
}

// TripPlan is the complete, immutable result of one planning request. It is
// owned by the caller; nothing in it is shared back into the input route.
type TripPlan struct {
	ID          string
	CreatedAt   time.Time
	Origin      Location
	Destination Location
	Transport   TransportType
	Passengers  int
	Route       *Route
	Stops       []Stop
	Costs       CostBreakdown
	Health      HealthBreakdown
	Weather     *WeatherSummary
}
