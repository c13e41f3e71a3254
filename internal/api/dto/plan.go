package dto

import (
	"time"

	"trip-planner-service/internal/domain"
)

type BudgetRange struct {
	MinAmount float64 `json:"min_amount"`
	MaxAmount float64 `json:"max_amount"`
	Currency  string  `json:"currency"`
}

type OvernightStay struct {
	Required                   bool     `json:"required"`
	PreferredAccommodationType *string  `json:"preferred_accommodation_type,omitempty"`
	MaxPricePerNight           *float64 `json:"max_price_per_night,omitempty"`
}

type CarSpecifications struct {
	Model           *string  `json:"model,omitempty"`
	EngineVolume    *float64 `json:"engine_volume,omitempty"`
	FuelConsumption *float64 `json:"fuel_consumption,omitempty"`
	FuelType        *string  `json:"fuel_type,omitempty"`
	TankCapacity    *float64 `json:"tank_capacity,omitempty"`
	InitialFuel     *float64 `json:"initial_fuel,omitempty"`
	BaseMass        *float64 `json:"base_mass,omitempty"`
	PassengerMass   *float64 `json:"passenger_mass,omitempty"`
}

type MotorcycleSpecifications struct {
	EngineCC      *int     `json:"engine_cc,omitempty"`
	FuelEconomy   *float64 `json:"fuel_economy,omitempty"`
	FuelType      *string  `json:"fuel_type,omitempty"`
	TankCapacity  *float64 `json:"tank_capacity,omitempty"`
	InitialFuel   *float64 `json:"initial_fuel,omitempty"`
	BaseMass      *float64 `json:"base_mass,omitempty"`
	PassengerMass *float64 `json:"passenger_mass,omitempty"`
}

type TravelRequest struct {
	Origin                   string                    `json:"origin"`
	Destination              string                    `json:"destination"`
	TransportationType       string                    `json:"transportation_type"`
	Passengers               int                       `json:"passengers"`
	Budget                   *BudgetRange              `json:"budget,omitempty"`
	OvernightStay            *OvernightStay            `json:"overnight_stay,omitempty"`
	CarSpecifications        *CarSpecifications        `json:"car_specifications,omitempty"`
	MotorcycleSpecifications *MotorcycleSpecifications `json:"motorcycle_specifications,omitempty"`
}

func (c *CarSpecifications) ToDomain() *domain.CarSpec {
	if c == nil {
		return nil
	}
	return &domain.CarSpec{
		Model:                    c.Model,
		EngineVolumeL:            c.EngineVolume,
		FuelConsumptionLPer100Km: c.FuelConsumption,
		FuelType:                 c.FuelType,
		TankCapacityL:            c.TankCapacity,
		InitialFuelL:             c.InitialFuel,
		BaseMassKg:               c.BaseMass,
		PassengerMassKg:          c.PassengerMass,
	}
}

func (m *MotorcycleSpecifications) ToDomain() *domain.MotorcycleSpec {
	if m == nil {
		return nil
	}
	return &domain.MotorcycleSpec{
		EngineCC:          m.EngineCC,
		FuelEconomyKmPerL: m.FuelEconomy,
		FuelType:          m.FuelType,
		TankCapacityL:     m.TankCapacity,
		InitialFuelL:      m.InitialFuel,
		BaseMassKg:        m.BaseMass,
		PassengerMassKg:   m.PassengerMass,
	}
}

type LocationResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

type SegmentResponse struct {
	StartLocation LocationResponse `json:"start_location"`
	EndLocation   LocationResponse `json:"end_location"`
	Distance      float64          `json:"distance"`
	Duration      float64          `json:"duration"`
	Instructions  []string         `json:"instructions"`
}

type RouteResponse struct {
	Segments      []SegmentResponse `json:"segments"`
	TotalDistance float64           `json:"total_distance"`
	TotalDuration float64           `json:"total_duration"`
	PathPoints    [][]float64       `json:"path_points"`
}

type StopResponse struct {
	Type                    string           `json:"type"`
	Location                LocationResponse `json:"location"`
	DistanceFromStartMeters float64          `json:"distance_from_start_meters"`
	EstimatedArrivalMinutes float64          `json:"estimated_arrival_minutes"`
	Duration                float64          `json:"duration"`
	FuelLevelBefore         *float64         `json:"fuel_level_before,omitempty"`
	FuelNeeded              *float64         `json:"fuel_needed,omitempty"`
	RestTimeMinutes         *float64         `json:"rest_time_minutes,omitempty"`
	Facilities              []string         `json:"facilities"`
}

type CostsResponse struct {
	FuelCost          float64            `json:"fuel_cost,omitempty"`
	MaintenanceCost   float64            `json:"maintenance_cost,omitempty"`
	TicketCost        float64            `json:"ticket_cost,omitempty"`
	FoodCost          float64            `json:"food_cost,omitempty"`
	WaterCost         float64            `json:"water_cost,omitempty"`
	AccommodationCost float64            `json:"accommodation_cost,omitempty"`
	ByCategory        map[string]float64 `json:"by_category"`
	RefuelingStops    int                `json:"refueling_stops"`
	FuelConsumption   float64            `json:"fuel_consumption"`
	TotalMass         float64            `json:"total_mass,omitempty"`
	TotalCost         float64            `json:"total_cost"`
	Currency          string             `json:"currency"`
}

type HealthResponse struct {
	TotalCalories     float64            `json:"total_calories"`
	ActivityBreakdown map[string]float64 `json:"activity_breakdown"`
}

type WeatherReportResponse struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"wind_speed"`
	Humidity    float64 `json:"humidity"`
	ObservedAt  string  `json:"observed_at,omitempty"`
}

type WeatherResponse struct {
	Origin          WeatherReportResponse `json:"origin"`
	Destination     WeatherReportResponse `json:"destination"`
	Recommendations []string              `json:"recommendations"`
}

type TravelResponse struct {
	PlanID    string           `json:"plan_id"`
	CreatedAt time.Time        `json:"created_at"`
	Route     RouteResponse    `json:"route"`
	Stops     []StopResponse   `json:"stops"`
	Costs     CostsResponse    `json:"costs"`
	Health    HealthResponse   `json:"health"`
	Weather   *WeatherResponse `json:"weather,omitempty"`
	ShareURL  string           `json:"share_url"`
}

type ShareResponse struct {
	ShareURL string `json:"share_url"`
}

func toLocation(l domain.Location) LocationResponse {
	return LocationResponse{Latitude: l.Latitude, Longitude: l.Longitude, Address: l.Address}
}

func toWeatherReport(r domain.WeatherReport) WeatherReportResponse {
	return WeatherReportResponse{
		Temperature: r.TemperatureC,
		WindSpeed:   r.WindSpeedKmh,
		Humidity:    r.HumidityPct,
		ObservedAt:  r.ObservedAt,
	}
}

// NewTravelResponse flattens a domain plan into the wire shape.
// Path points are emitted as [lat, lng] pairs.
func NewTravelResponse(plan *domain.TripPlan, shareURL string) TravelResponse {
	route := RouteResponse{
		Segments:      make([]SegmentResponse, 0, len(plan.Route.Segments)),
		TotalDistance: plan.Route.TotalDistanceMeters(),
		TotalDuration: plan.Route.TotalDurationMinutes(),
		PathPoints:    make([][]float64, 0, len(plan.Route.PathPoints)),
	}
	for _, s := range plan.Route.Segments {
		instructions := s.Instructions
		if instructions == nil {
			instructions = []string{}
		}
		route.Segments = append(route.Segments, SegmentResponse{
			StartLocation: toLocation(s.Start),
			EndLocation:   toLocation(s.End),
			Distance:      s.DistanceMeters,
			Duration:      s.DurationMinutes,
			Instructions:  instructions,
		})
	}
	for _, p := range plan.Route.PathPoints {
		route.PathPoints = append(route.PathPoints, []float64{p[1], p[0]})
	}

	stops := make([]StopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		facilities := s.Facilities
		if facilities == nil {
			facilities = []string{}
		}
		stops = append(stops, StopResponse{
			Type:                    string(s.Type),
			Location:                toLocation(s.Location),
			DistanceFromStartMeters: s.DistanceFromStartMeters,
			EstimatedArrivalMinutes: s.EstimatedArrivalMinutes,
			Duration:                s.DurationMinutes,
			FuelLevelBefore:         s.FuelLevelBeforeL,
			FuelNeeded:              s.FuelNeededL,
			RestTimeMinutes:         s.RestTimeMinutesNeeded,
			Facilities:              facilities,
		})
	}

	by := make(map[string]float64, len(plan.Costs.ByCategory))
	for cat, amount := range plan.Costs.ByCategory {
		by[string(cat)] = amount
	}

	costs := CostsResponse{
		FuelCost:          plan.Costs.ByCategory[domain.CostFuel],
		MaintenanceCost:   plan.Costs.ByCategory[domain.CostMaintenance],
		TicketCost:        plan.Costs.ByCategory[domain.CostTickets],
		FoodCost:          plan.Costs.ByCategory[domain.CostFood],
		WaterCost:         plan.Costs.ByCategory[domain.CostWater],
		AccommodationCost: plan.Costs.ByCategory[domain.CostAccommodation],
		ByCategory:        by,
		RefuelingStops:    plan.Costs.RefuelingStops,
		FuelConsumption:   plan.Costs.FuelLiters,
		TotalMass:         plan.Costs.TotalMassKg,
		TotalCost:         plan.Costs.TotalCost,
		Currency:          plan.Costs.Currency,
	}

	health := HealthResponse{
		TotalCalories:     plan.Health.TotalCalories,
		ActivityBreakdown: map[string]float64{},
	}
	for activity, kcal := range plan.Health.ByActivity {
		health.ActivityBreakdown[activity] = kcal
	}

	res := TravelResponse{
		PlanID:    plan.ID,
		CreatedAt: plan.CreatedAt,
		Route:     route,
		Stops:     stops,
		Costs:     costs,
		Health:    health,
		ShareURL:  shareURL,
	}

	if plan.Weather != nil {
		res.Weather = &WeatherResponse{
			Origin:          toWeatherReport(plan.Weather.Origin),
			Destination:     toWeatherReport(plan.Weather.Destination),
			Recommendations: plan.Weather.Recommendations,
		}
	}

	return res
}
