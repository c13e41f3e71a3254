package services

import (
	"slices"

	"trip-planner-service/internal/domain"
)

// Minutes budgeted for an overnight stay.
const overnightStopMinutes = 8 * 60.0

type restRule struct {
	MaxContinuousMinutes float64
	RestMinutes          float64
	MaxDailyMinutes      float64
}

// Per-mode rest rules. Modes without an entry (bus, train, plane, sea) get
// no rest stops: the traveler is a passenger.
var restRules = map[domain.TransportType]restRule{
	domain.TransportCar:        {MaxContinuousMinutes: 4 * 60, RestMinutes: 30, MaxDailyMinutes: 8 * 60},
	domain.TransportMotorcycle: {MaxContinuousMinutes: 3 * 60, RestMinutes: 45, MaxDailyMinutes: 6 * 60},
	domain.TransportBicycle:    {MaxContinuousMinutes: 2 * 60, RestMinutes: 15, MaxDailyMinutes: 6 * 60},
	domain.TransportWalking:    {MaxContinuousMinutes: 2 * 60, RestMinutes: 20, MaxDailyMinutes: 6 * 60},
}

// PlanRestStops inserts rest stops whenever continuous travel time exceeds
// the mode's allowance, and a single overnight stop once the route passes the
// daily allowance when the request asks for overnight stays. Stops land on
// segment boundaries; fuel bookkeeping is untouched.
func PlanRestStops(route *domain.Route, transport domain.TransportType, overnight bool) []domain.Stop {
	rule, ok := restRules[transport]
	if !ok {
		return nil
	}

	var stops []domain.Stop
	continuousMinutes := 0.0
	cumulativeMeters := 0.0
	cumulativeMinutes := 0.0
	overnightPlaced := false

	for _, seg := range route.Segments {
		continuousMinutes += seg.DurationMinutes
		cumulativeMeters += seg.DistanceMeters
		cumulativeMinutes += seg.DurationMinutes

		if overnight && !overnightPlaced && cumulativeMinutes >= rule.MaxDailyMinutes {
			rest := overnightStopMinutes
			stops = append(stops, domain.Stop{
				Type:                    domain.StopOvernight,
				Location:                seg.End,
				DistanceFromStartMeters: cumulativeMeters,
				EstimatedArrivalMinutes: cumulativeMinutes,
				DurationMinutes:         overnightStopMinutes,
				RestTimeMinutesNeeded:   &rest,
				Facilities:              []string{"accommodation"},
			})
			overnightPlaced = true
			continuousMinutes = 0
			continue
		}

		if continuousMinutes >= rule.MaxContinuousMinutes {
			rest := rule.RestMinutes
			stops = append(stops, domain.Stop{
				Type:                    domain.StopRest,
				Location:                seg.End,
				DistanceFromStartMeters: cumulativeMeters,
				EstimatedArrivalMinutes: cumulativeMinutes,
				DurationMinutes:         rule.RestMinutes,
				RestTimeMinutesNeeded:   &rest,
				Facilities:              []string{"rest"},
			})
			continuousMinutes = 0
		}
	}

	return stops
}

// MergeStops combines refueling and rest stops into a single list ordered by
// distance from the route start. Refueling wins ties so fuel bookkeeping
// reads in travel order.
func MergeStops(groups ...[]domain.Stop) []domain.Stop {
	merged := []domain.Stop{}
	for _, g := range groups {
		merged = append(merged, g...)
	}

	slices.SortStableFunc(merged, func(a, b domain.Stop) int {
		if a.DistanceFromStartMeters < b.DistanceFromStartMeters {
			return -1
		}
		if a.DistanceFromStartMeters > b.DistanceFromStartMeters {
			return 1
		}
		if a.Type == domain.StopRefueling && b.Type != domain.StopRefueling {
			return -1
		}
		if b.Type == domain.StopRefueling && a.Type != domain.StopRefueling {
			return 1
		}
		return 0
	})

	return merged
}
