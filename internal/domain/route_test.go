package domain

import (
	"errors"
	"testing"
)

func TestRouteValidateEmpty(t *testing.T) {
	r := &Route{}
	err := r.Validate()

	var rerr *InvalidRouteError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected InvalidRouteError, got %v", err)
	}
}

func TestRouteValidateAdjacent(t *testing.T) {
	a := Location{Latitude: 52.5200, Longitude: 13.4050}
	b := Location{Latitude: 52.3906, Longitude: 13.0645}
	c := Location{Latitude: 52.1205, Longitude: 11.6276}

	r := &Route{Segments: []Segment{
		{Start: a, End: b, DistanceMeters: 35000, DurationMinutes: 30, Transport: TransportCar},
		{Start: b, End: c, DistanceMeters: 110000, DurationMinutes: 70, Transport: TransportCar},
	}}

	if err := r.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := r.TotalDistanceMeters(); got != 145000 {
		t.Errorf("total distance = %v, want 145000", got)
	}
	if got := r.TotalDurationMinutes(); got != 100 {
		t.Errorf("total duration = %v, want 100", got)
	}
}

func TestRouteValidateNonAdjacent(t *testing.T) {
	a := Location{Latitude: 52.5200, Longitude: 13.4050}
	b := Location{Latitude: 52.3906, Longitude: 13.0645}
	far := Location{Latitude: 48.8566, Longitude: 2.3522}

	r := &Route{Segments: []Segment{
		{Start: a, End: b, DistanceMeters: 35000, DurationMinutes: 30, Transport: TransportCar},
		{Start: far, End: a, DistanceMeters: 1000, DurationMinutes: 2, Transport: TransportCar},
	}}

	var rerr *InvalidRouteError
	if err := r.Validate(); !errors.As(err, &rerr) {
		t.Fatalf("expected InvalidRouteError for non-adjacent segments, got %v", err)
	}
}
