package services

import "trip-planner-service/internal/domain"

// LitersNeeded converts one segment's distance into liters of fuel consumed.
//
// Cars consume proportionally to distance at their L/100km rating; motorcycles
// at their km/L economy. Non-fueled modes consume nothing. Electric profiles
// pass through undistinguished, with liters acting as an energy-unit proxy.
// Vehicle mass is a reporting-only figure and does not scale the formula.
func LitersNeeded(seg domain.Segment, profile domain.VehicleProfile) float64 {
	return LitersForDistance(seg.DistanceMeters, profile)
}

// LitersForDistance is the distance-only form used both per segment and for
// whole-route aggregate estimates.
//
// Divisors are validated strictly positive at profile resolution time, so no
// zero guard is needed here.
func LitersForDistance(distanceMeters float64, profile domain.VehicleProfile) float64 {
	km := distanceMeters / 1000
	switch profile.Transport {
	case domain.TransportCar:
		return km / 100 * profile.FuelConsumptionLPer100Km
	case domain.TransportMotorcycle:
		return km / profile.FuelEconomyKmPerL
	default:
		return 0
	}
}

// TotalLitersNeeded sums per-segment consumption over the whole route.
func TotalLitersNeeded(route *domain.Route, profile domain.VehicleProfile) float64 {
	var total float64
	for _, seg := range route.Segments {
		total += LitersNeeded(seg, profile)
	}
	return total
}
