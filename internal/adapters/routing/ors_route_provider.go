package routing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// ORS routing profiles per transport mode. Modes OpenRouteService cannot
// route (bus, train, plane, sea) fall back to the driving profile; their
// durations are treated as road-bound approximations.
var orsProfiles = map[domain.TransportType]string{
	domain.TransportCar:        "driving-car",
	domain.TransportMotorcycle: "driving-car",
	domain.TransportBicycle:    "cycling-regular",
	domain.TransportWalking:    "foot-walking",
}

// ORSRouteProvider implements Geocoder and RouteProvider using
// OpenRouteService.
//
// It coordinates:
//   - Address normalization
//   - Persistent geocode caching
//   - Persistent route caching
//   - External API calls with retry/backoff
//
// The provider is safe for concurrent use.
type ORSRouteProvider struct {
	session      *http.Client
	apiKey       string
	baseURL      string
	geocodeCache *cache.SqliteGeocodeCache
	routeCache   *cache.SqliteRouteCache
}

func NewORSRouteProvider(
	apiKey string,
	geocodeCache *cache.SqliteGeocodeCache,
	routeCache *cache.SqliteRouteCache,
) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	return &ORSRouteProvider{
		session:      &http.Client{Timeout: 15 * time.Second},
		apiKey:       apiKey,
		baseURL:      "https://api.openrouteservice.org",
		geocodeCache: geocodeCache,
		routeCache:   routeCache,
	}, nil
}

// normalize ensures consistent cache keys by collapsing whitespace.
func (o *ORSRouteProvider) normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (o *ORSRouteProvider) profileFor(t domain.TransportType) string {
	if p, ok := orsProfiles[t]; ok {
		return p
	}
	return "driving-car"
}

// Geocode resolves an address via the persistent cache, falling back to the
// ORS geocoding endpoint on a miss.
func (o *ORSRouteProvider) Geocode(ctx context.Context, address string) (_ domain.Location, err error) {
	defer obs.Time(ctx, "ors.Geocode")(&err)

	norm := o.normalize(address)
	if norm == "" {
		return domain.Location{}, errors.New("geocode: address must be non-empty")
	}

	if o.geocodeCache != nil {
		loc, ok, err := o.geocodeCache.Get(ctx, norm)
		if err != nil {
			return domain.Location{}, fmt.Errorf("geocode cache read: %w", err)
		}
		if ok {
			return loc, nil
		}
	}

	loc, err := o.fetchGeocode(ctx, norm)
	if err != nil {
		return domain.Location{}, fmt.Errorf("geocode %q: %w", norm, err)
	}

	if o.geocodeCache != nil {
		if err := o.geocodeCache.Put(ctx, norm, loc); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return loc, nil
}

// GetRoute returns segment geometry, distance and duration between two
// resolved locations, consulting the persistent route cache first.
func (o *ORSRouteProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Location,
	transport domain.TransportType,
) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "ors.GetRoute")(&err)

	profile := o.profileFor(transport)

	if o.routeCache != nil {
		route, ok, err := o.routeCache.Get(ctx, origin, destination, profile)
		if err != nil {
			return nil, fmt.Errorf("route cache read: %w", err)
		}
		if ok {
			relabelSegments(route, transport)
			return route, nil
		}
	}

	route, err := o.fetchDirections(ctx, origin, destination, profile)
	if err != nil {
		return nil, fmt.Errorf("fetch directions: %w", err)
	}
	relabelSegments(route, transport)

	if o.routeCache != nil {
		if err := o.routeCache.Put(ctx, origin, destination, profile, route); err != nil {
			log.Printf("route cache write failed: %v", err)
		}
	}

	return route, nil
}

// Cached routes are stored per ORS profile; the requested transport type is
// reapplied so shared profiles (car/motorcycle) keep their own labels.
func relabelSegments(route *domain.Route, transport domain.TransportType) {
	for i := range route.Segments {
		route.Segments[i].Transport = transport
	}
}
