package domain

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Maximum gap in meters tolerated between one segment's end and the next
// segment's start before the route is considered broken.
const segmentAdjacencyToleranceMeters = 250.0

// Segment is one contiguous leg of a route between two waypoints.
type Segment struct {
	Start           Location
	End             Location
	DistanceMeters  float64
	DurationMinutes float64
	Transport       TransportType
	Instructions    []string
}

func (s Segment) DistanceKm() float64 { return s.DistanceMeters / 1000 }

// Route is an ordered, non-empty sequence of segments plus the geometry
// of the traveled path.
type Route struct {
	Segments   []Segment
	PathPoints []orb.Point
}

func (r *Route) TotalDistanceMeters() float64 {
	var total float64
	for _, s := range r.Segments {
		total += s.DistanceMeters
	}
	return total
}

func (r *Route) TotalDurationMinutes() float64 {
	var total float64
	for _, s := range r.Segments {
		total += s.DurationMinutes
	}
	return total
}

func (r *Route) Origin() Location      { return r.Segments[0].Start }
func (r *Route) Destination() Location { return r.Segments[len(r.Segments)-1].End }

// Validate checks the structural invariants: at least one segment,
// non-negative metrics, and geographic adjacency of consecutive segments.
func (r *Route) Validate() error {
	if r == nil || len(r.Segments) == 0 {
		return &InvalidRouteError{Reason: "route has no segments"}
	}

	for i, s := range r.Segments {
		if s.DistanceMeters < 0 || s.DurationMinutes < 0 {
			return &InvalidRouteError{
				Reason: fmt.Sprintf("segment %d has negative distance or duration", i),
			}
		}

		if i == 0 {
			continue
		}

		prev := r.Segments[i-1]
		gap := geo.Distance(prev.End.Point(), s.Start.Point())
		if gap > segmentAdjacencyToleranceMeters {
			return &InvalidRouteError{
				Reason: fmt.Sprintf(
					"segments %d and %d are not adjacent (gap %.0fm)",
					i-1, i, gap,
				),
			}
		}
	}

	return nil
}
