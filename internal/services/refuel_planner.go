package services

import (
	"math"

	"trip-planner-service/internal/domain"
)

// Minutes budgeted for a refueling stop.
const refuelStopMinutes = 15.0

// PlanRefuelingStops walks the route left to right in a single greedy pass,
// consuming fuel per segment and inserting a refueling stop at the start of
// any segment the remaining fuel cannot cover. The vehicle never runs below
// zero fuel between stops and never exceeds tank capacity after a refuel.
//
// Planner state is {fuelLevel, position}; transitions are consume(segment)
// and refuel(amount). Fuel reaching exactly zero at a segment end is
// permitted and inserts no stop. A segment that needs more than a full tank
// fails with InsufficientRangeError.
func PlanRefuelingStops(route *domain.Route, profile domain.VehicleProfile) ([]domain.Stop, error) {
	if !profile.Transport.Fueled() {
		return nil, nil
	}

	fuelLevel := profile.InitialFuelL
	cumulativeMeters := 0.0
	cumulativeMinutes := 0.0

	var stops []domain.Stop
	for i, seg := range route.Segments {
		needed := LitersNeeded(seg, profile)

		if needed > profile.TankCapacityL {
			return nil, &domain.InsufficientRangeError{
				SegmentIndex:   i,
				RequiredLiters: needed,
				TankCapacityL:  profile.TankCapacityL,
			}
		}

		if fuelLevel < needed {
			before := fuelLevel
			topUp := profile.TankCapacityL - fuelLevel

			stops = append(stops, domain.Stop{
				Type:                    domain.StopRefueling,
				Location:                seg.Start,
				DistanceFromStartMeters: cumulativeMeters,
				EstimatedArrivalMinutes: cumulativeMinutes,
				DurationMinutes:         refuelStopMinutes,
				FuelLevelBeforeL:        &before,
				FuelNeededL:             &topUp,
				Facilities:              []string{"fuel"},
			})

			fuelLevel = profile.TankCapacityL
		}

		fuelLevel -= needed
		cumulativeMeters += seg.DistanceMeters
		cumulativeMinutes += seg.DurationMinutes
	}

	return stops, nil
}

// RefuelingStopsNeeded is the aggregate pre-trip estimate used in cost
// summaries when only the total distance is known:
//
//	max(0, ceil((totalFuelNeeded - initialFuel) / tankCapacity))
//
// A negative deficit clamps to zero, so an initial fuel load covering the
// whole route always yields exactly zero stops, matching the per-segment
// planner on that boundary.
func RefuelingStopsNeeded(totalFuelNeededL, initialFuelL, tankCapacityL float64) int {
	if tankCapacityL <= 0 {
		return 0
	}

	deficit := totalFuelNeededL - initialFuelL
	if deficit <= 0 {
		return 0
	}

	return int(math.Ceil(deficit / tankCapacityL))
}
