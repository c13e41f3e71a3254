package domain

import "github.com/paulmach/orb"

// Immutable geographic location. Address is optional and carried for display.
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// Point returns the location in orb's (lon, lat) convention.
func (l Location) Point() orb.Point { return orb.Point{l.Longitude, l.Latitude} }

func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}
