// Package weather provides a WeatherProvider backed by the Open-Meteo
// forecast API. Open-Meteo requires no API key, so the adapter only needs a
// base URL and timeout.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

const defaultBaseURL = "https://api.open-meteo.com"

type OpenMeteoProvider struct {
	session *http.Client
	baseURL string
}

func NewOpenMeteoProvider() *OpenMeteoProvider {
	return &OpenMeteoProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
	}
}

// NewOpenMeteoProviderWithBase is used by tests to point at a local server.
func NewOpenMeteoProviderWithBase(baseURL string) *OpenMeteoProvider {
	p := NewOpenMeteoProvider()
	p.baseURL = strings.TrimRight(baseURL, "/")
	return p
}

type forecastResponse struct {
	Current struct {
		Time             string  `json:"time"`
		Temperature2m    float64 `json:"temperature_2m"`
		RelativeHumidity float64 `json:"relative_humidity_2m"`
		WindSpeed10m     float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// Current fetches present conditions at a coordinate from /v1/forecast.
func (p *OpenMeteoProvider) Current(ctx context.Context, lat, lon float64) (_ domain.WeatherReport, err error) {
	defer obs.Time(ctx, "openmeteo.Current")(&err)

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m")
	q.Set("wind_speed_unit", "kmh")

	endpoint := p.baseURL + "/v1/forecast?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.WeatherReport{}, fmt.Errorf("create forecast request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.session.Do(req)
	if err != nil {
		return domain.WeatherReport{}, fmt.Errorf("execute forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return domain.WeatherReport{}, fmt.Errorf(
			"forecast status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.WeatherReport{}, fmt.Errorf("decode forecast response: %w", err)
	}

	return domain.WeatherReport{
		TemperatureC: decoded.Current.Temperature2m,
		WindSpeedKmh: decoded.Current.WindSpeed10m,
		HumidityPct:  decoded.Current.RelativeHumidity,
		ObservedAt:   decoded.Current.Time,
	}, nil
}
