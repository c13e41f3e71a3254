package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenMeteoCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/forecast" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("latitude") != "52.52" || q.Get("longitude") != "13.405" {
			t.Fatalf("unexpected coordinates: %v", q)
		}
		if q.Get("wind_speed_unit") != "kmh" {
			t.Fatalf("expected kmh wind unit; got %q", q.Get("wind_speed_unit"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"current": {
				"time": "2026-08-29T10:00",
				"temperature_2m": 18.3,
				"relative_humidity_2m": 61,
				"wind_speed_10m": 12.4
			}
		}`))
	}))
	defer srv.Close()

	p := NewOpenMeteoProviderWithBase(srv.URL)

	report, err := p.Current(context.Background(), 52.52, 13.405)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	if report.TemperatureC != 18.3 {
		t.Fatalf("temperature: got %v", report.TemperatureC)
	}
	if report.WindSpeedKmh != 12.4 {
		t.Fatalf("wind: got %v", report.WindSpeedKmh)
	}
	if report.HumidityPct != 61 {
		t.Fatalf("humidity: got %v", report.HumidityPct)
	}
	if report.ObservedAt != "2026-08-29T10:00" {
		t.Fatalf("observed at: got %q", report.ObservedAt)
	}
}

func TestOpenMeteoCurrentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "over quota", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewOpenMeteoProviderWithBase(srv.URL)

	if _, err := p.Current(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}
