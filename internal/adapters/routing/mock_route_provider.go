package routing

import (
	"context"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"trip-planner-service/internal/domain"
)

// Average speeds used to synthesize durations, km/h.
var mockSpeeds = map[domain.TransportType]float64{
	domain.TransportCar:        80,
	domain.TransportMotorcycle: 70,
	domain.TransportBicycle:    18,
	domain.TransportWalking:    5,
	domain.TransportBus:        60,
	domain.TransportTrain:      120,
	domain.TransportPlane:      700,
	domain.TransportSea:        35,
}

// MockProvider is an in-memory Geocoder and RouteProvider for tests and
// offline runs. Routes are great-circle lines split into equal segments with
// durations derived from fixed per-mode speeds.
type MockProvider struct {
	Locations map[string]domain.Location
	Segments  int
}

func NewMockProvider(locations map[string]domain.Location) *MockProvider {
	return &MockProvider{Locations: locations, Segments: 4}
}

func (m *MockProvider) Geocode(ctx context.Context, address string) (domain.Location, error) {
	loc, ok := m.Locations[address]
	if !ok {
		return domain.Location{}, fmt.Errorf("mock geocoder: unknown address %q", address)
	}
	return loc, nil
}

func (m *MockProvider) GetRoute(
	ctx context.Context,
	origin, destination domain.Location,
	transport domain.TransportType,
) (*domain.Route, error) {
	n := m.Segments
	if n < 1 {
		n = 1
	}

	speed := mockSpeeds[transport]
	if speed <= 0 {
		speed = mockSpeeds[domain.TransportCar]
	}

	totalMeters := geo.Distance(origin.Point(), destination.Point())
	totalMinutes := totalMeters / 1000 / speed * 60

	points := make([]orb.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		f := float64(i) / float64(n)
		points = append(points, orb.Point{
			origin.Longitude + (destination.Longitude-origin.Longitude)*f,
			origin.Latitude + (destination.Latitude-origin.Latitude)*f,
		})
	}

	segments := make([]domain.Segment, 0, n)
	for i := 0; i < n; i++ {
		start := domain.Location{Latitude: points[i][1], Longitude: points[i][0]}
		end := domain.Location{Latitude: points[i+1][1], Longitude: points[i+1][0]}
		if i == 0 {
			start.Address = origin.Address
		}
		if i == n-1 {
			end.Address = destination.Address
		}

		segments = append(segments, domain.Segment{
			Start:           start,
			End:             end,
			DistanceMeters:  totalMeters / float64(n),
			DurationMinutes: totalMinutes / float64(n),
			Transport:       transport,
			Instructions: []string{
				fmt.Sprintf("Continue for %.0f km", math.Round(totalMeters/float64(n)/1000)),
			},
		})
	}

	return &domain.Route{Segments: segments, PathPoints: points}, nil
}
