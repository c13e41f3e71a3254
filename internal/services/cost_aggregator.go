package services

import (
	"math"
	"slices"

	"trip-planner-service/internal/domain"
)

// PricingConfig carries the rate table for cost estimation. Values are
// configuration, not market data; the engine never fetches prices itself.
type PricingConfig struct {
	Currency                string
	FuelPricePerLiter       float64
	TicketRatesPerKm        map[domain.TransportType]float64
	DefaultTicketRatePerKm  float64
	BicycleMaintenancePerKm float64
	FoodPerPersonPerDay     float64
	WaterPerPersonPerDay    float64
	AccommodationPerNight   float64
	RestStopCost            float64
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		Currency:          "USD",
		FuelPricePerLiter: 1.50,
		TicketRatesPerKm: map[domain.TransportType]float64{
			domain.TransportBus:   0.2,
			domain.TransportTrain: 0.3,
		},
		DefaultTicketRatePerKm:  0.5,
		BicycleMaintenancePerKm: 0.1,
		FoodPerPersonPerDay:     30.0,
		WaterPerPersonPerDay:    5.0,
		AccommodationPerNight:   80.0,
	}
}

func (c PricingConfig) ticketRate(t domain.TransportType) float64 {
	if rate, ok := c.TicketRatesPerKm[t]; ok {
		return rate
	}
	return c.DefaultTicketRatePerKm
}

// AggregateCosts merges raw category amounts into one breakdown.
//
// Only non-zero known categories are included. The total comes from the
// authoritative upstream figure when one is supplied, otherwise from the
// category sum. An authoritative total exceeding the category sum surfaces
// the gap as an explicit "other" entry; it is never silently dropped.
// Amounts are rounded to cents here and nowhere earlier in the pipeline.
func AggregateCosts(amounts map[domain.CostCategory]float64, authoritativeTotal *float64, currency string) domain.CostBreakdown {
	byCategory := make(map[domain.CostCategory]float64, len(amounts))
	var sum float64
	for cat, v := range amounts {
		v = roundCents(v)
		if v == 0 {
			continue
		}
		byCategory[cat] = v
		sum += v
	}
	sum = roundCents(sum)

	total := sum
	if authoritativeTotal != nil {
		total = roundCents(*authoritativeTotal)
		if gap := roundCents(total - sum); gap > 0 {
			byCategory[domain.CostOther] += gap
		}
	}

	sorted := make([]domain.CategoryAmount, 0, len(byCategory))
	for cat, v := range byCategory {
		sorted = append(sorted, domain.CategoryAmount{Category: cat, Amount: v})
	}
	// Descending by amount; downstream consumers rely on this order.
	slices.SortFunc(sorted, func(a, b domain.CategoryAmount) int {
		if a.Amount > b.Amount {
			return -1
		}
		if a.Amount < b.Amount {
			return 1
		}
		if a.Category < b.Category {
			return -1
		}
		if a.Category > b.Category {
			return 1
		}
		return 0
	})

	return domain.CostBreakdown{
		ByCategory: byCategory,
		Sorted:     sorted,
		Currency:   currency,
		TotalCost:  total,
	}
}

// EstimateTripCosts derives the per-category amounts for a planned route and
// aggregates them, attaching the informational fuel and mass figures.
func EstimateTripCosts(
	route *domain.Route,
	stops []domain.Stop,
	profile domain.VehicleProfile,
	passengers int,
	cfg PricingConfig,
) domain.CostBreakdown {
	km := route.TotalDistanceMeters() / 1000
	days := int(math.Ceil(route.TotalDurationMinutes() / (24 * 60)))
	if days < 1 {
		days = 1
	}

	amounts := map[domain.CostCategory]float64{}

	var liters float64
	var refuelStops int
	switch profile.Transport {
	case domain.TransportCar, domain.TransportMotorcycle:
		liters = TotalLitersNeeded(route, profile)
		refuelStops = RefuelingStopsNeeded(liters, profile.InitialFuelL, profile.TankCapacityL)
		amounts[domain.CostFuel] = liters * cfg.FuelPricePerLiter
	case domain.TransportBicycle:
		amounts[domain.CostMaintenance] = km * cfg.BicycleMaintenancePerKm
	case domain.TransportWalking:
		// free
	default:
		amounts[domain.CostTickets] = km * cfg.ticketRate(profile.Transport) * float64(passengers)
	}

	amounts[domain.CostFood] = cfg.FoodPerPersonPerDay * float64(passengers) * float64(days)
	amounts[domain.CostWater] = cfg.WaterPerPersonPerDay * float64(passengers) * float64(days)

	var nights, restStops int
	for _, s := range stops {
		switch s.Type {
		case domain.StopOvernight:
			nights++
		case domain.StopRest:
			restStops++
		}
	}
	amounts[domain.CostAccommodation] = float64(nights) * cfg.AccommodationPerNight
	amounts[domain.CostRestStops] = float64(restStops) * cfg.RestStopCost

	breakdown := AggregateCosts(amounts, nil, cfg.Currency)
	breakdown.FuelLiters = liters
	breakdown.RefuelingStops = refuelStops
	breakdown.Passengers = passengers
	if profile.Transport.Fueled() {
		breakdown.TotalMassKg = profile.TotalMassKg(passengers)
	}

	return breakdown
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
