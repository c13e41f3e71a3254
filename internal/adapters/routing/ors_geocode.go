package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"trip-planner-service/internal/domain"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// fetchGeocode resolves a single address using OpenRouteService
// (/geocode/search). Calls may be retried via doWithRetry.
func (o *ORSRouteProvider) fetchGeocode(
	ctx context.Context,
	address string,
) (domain.Location, error) {
	endpoint := o.baseURL + "/geocode/search"

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := o.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", address)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Location{}, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Location{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Features) == 0 {
		return domain.Location{}, &domain.InvalidRouteError{
			Reason: fmt.Sprintf("no geocode results for %q", address),
		}
	}

	feat := decoded.Features[0]
	coords := feat.Geometry.Coordinates

	if len(coords) != 2 {
		return domain.Location{}, fmt.Errorf("invalid coordinate format for %q", address)
	}

	label := feat.Properties.Label
	if label == "" {
		label = address
	}

	return domain.Location{
		Latitude:  coords[1],
		Longitude: coords[0],
		Address:   label,
	}, nil
}
