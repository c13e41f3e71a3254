package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Geocoder resolves a free-form address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (domain.Location, error)
}

// RouteProvider retrieves segment geometry, distance and duration between two
// resolved locations for a transport mode. Providers own geocoding caches and
// external API concerns; the planning core never calls the network itself.
type RouteProvider interface {
	GetRoute(ctx context.Context, origin, destination domain.Location, transport domain.TransportType) (*domain.Route, error)
}
