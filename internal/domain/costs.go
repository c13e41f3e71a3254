package domain

// CostCategory is a known trip cost bucket.
type CostCategory string

const (
	CostFuel          CostCategory = "fuel"
	CostMaintenance   CostCategory = "maintenance"
	CostTickets       CostCategory = "tickets"
	CostFood          CostCategory = "food"
	CostWater         CostCategory = "water"
	CostAccommodation CostCategory = "accommodation"
	CostTolls         CostCategory = "tolls"
	CostParking       CostCategory = "parking"
	CostRestStops     CostCategory = "rest_stops"
	CostOther         CostCategory = "other"
)

// CategoryAmount pairs a category with its amount for ordered display.
type CategoryAmount struct {
	Category CostCategory
	Amount   float64
}

// CostBreakdown is the categorized cost result for one trip. TotalCost may
// exceed the category sum when an authoritative upstream total was supplied;
// in that case the gap is surfaced as an explicit "other" entry rather than
// silently dropped.
type CostBreakdown struct {
	ByCategory map[CostCategory]float64
	Sorted     []CategoryAmount
	Currency   string
	TotalCost  float64

	// Informational figures attached for reporting, never folded into
	// TotalCost.
	FuelLiters     float64
	RefuelingStops int
	TotalMassKg    float64
	Passengers     int
}

// HealthBreakdown is the calorie estimate for one trip, bucketed by activity.
type HealthBreakdown struct {
	TotalCalories float64
	ByActivity    map[string]float64
}
