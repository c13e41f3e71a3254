package services

import (
	"math"
	"testing"

	"trip-planner-service/internal/domain"
)

func carProfile(t *testing.T, spec *domain.CarSpec) domain.VehicleProfile {
	t.Helper()
	p, err := domain.ResolveVehicleProfile(domain.TransportCar, spec, nil)
	if err != nil {
		t.Fatalf("resolve car profile: %v", err)
	}
	return p
}

func motoProfile(t *testing.T, spec *domain.MotorcycleSpec) domain.VehicleProfile {
	t.Helper()
	p, err := domain.ResolveVehicleProfile(domain.TransportMotorcycle, nil, spec)
	if err != nil {
		t.Fatalf("resolve motorcycle profile: %v", err)
	}
	return p
}

// evenRoute builds a route of n equal segments covering totalKm in totalMin.
func evenRoute(n int, totalKm, totalMin float64, transport domain.TransportType) *domain.Route {
	segs := make([]domain.Segment, 0, n)
	for i := 0; i < n; i++ {
		segs = append(segs, domain.Segment{
			DistanceMeters:  totalKm * 1000 / float64(n),
			DurationMinutes: totalMin / float64(n),
			Transport:       transport,
		})
	}
	return &domain.Route{Segments: segs}
}

func TestLitersNeededCar(t *testing.T) {
	p := carProfile(t, nil) // 11 L/100km
	seg := domain.Segment{DistanceMeters: 250000}

	got := LitersNeeded(seg, p)
	if math.Abs(got-27.5) > 1e-9 {
		t.Fatalf("liters = %v, want 27.5", got)
	}
}

func TestLitersNeededMotorcycle(t *testing.T) {
	p := motoProfile(t, nil) // 45 km/L
	seg := domain.Segment{DistanceMeters: 90000}

	got := LitersNeeded(seg, p)
	if math.Abs(got-2.0) > 1e-9 {
		t.Fatalf("liters = %v, want 2.0", got)
	}
}

func TestLitersNeededNonFueled(t *testing.T) {
	for _, tr := range []domain.TransportType{
		domain.TransportBicycle, domain.TransportWalking,
		domain.TransportBus, domain.TransportTrain,
		domain.TransportPlane, domain.TransportSea,
	} {
		p, err := domain.ResolveVehicleProfile(tr, nil, nil)
		if err != nil {
			t.Fatalf("resolve %s profile: %v", tr, err)
		}
		if got := LitersNeeded(domain.Segment{DistanceMeters: 100000}, p); got != 0 {
			t.Errorf("%s liters = %v, want 0", tr, got)
		}
	}
}

func TestTotalLitersNeeded(t *testing.T) {
	p := carProfile(t, nil)
	route := evenRoute(5, 500, 300, domain.TransportCar)

	got := TotalLitersNeeded(route, p)
	if math.Abs(got-55.0) > 1e-9 {
		t.Fatalf("total liters = %v, want 55.0", got)
	}
}
