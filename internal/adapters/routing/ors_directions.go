package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/paulmach/orb"

	"trip-planner-service/internal/domain"
)

type directionsRequest struct {
	Coordinates  [][]float64 `json:"coordinates"`
	Instructions bool        `json:"instructions"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Segments []struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
				Steps    []struct {
					Distance    float64 `json:"distance"`
					Duration    float64 `json:"duration"`
					Instruction string  `json:"instruction"`
					WayPoints   []int   `json:"way_points"`
				} `json:"steps"`
			} `json:"segments"`
		} `json:"properties"`
	} `json:"features"`
}

// fetchDirections retrieves route geometry and turn-by-turn steps from the
// OpenRouteService directions endpoint. Each ORS step becomes one domain
// segment so downstream planners can place stops at step boundaries.
func (o *ORSRouteProvider) fetchDirections(
	ctx context.Context,
	origin, destination domain.Location,
	profile string,
) (*domain.Route, error) {
	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", o.baseURL, profile)

	bodyObj := directionsRequest{
		Coordinates: [][]float64{
			{origin.Longitude, origin.Latitude},
			{destination.Longitude, destination.Latitude},
		},
		Instructions: true,
	}

	payload, err := json.Marshal(bodyObj)
	if err != nil {
		return nil, fmt.Errorf("marshal directions request: %w", err)
	}

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		body := bytes.NewReader(payload)
		return o.newRequest(ctx, http.MethodPost, endpoint, body)
	})
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return nil, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Features) == 0 {
		return nil, &domain.InvalidRouteError{
			Reason: fmt.Sprintf(
				"no route between (%f, %f) and (%f, %f)",
				origin.Latitude, origin.Longitude,
				destination.Latitude, destination.Longitude,
			),
		}
	}

	feat := dr.Features[0]

	path := make([]orb.Point, 0, len(feat.Geometry.Coordinates))
	for _, c := range feat.Geometry.Coordinates {
		if len(c) != 2 {
			return nil, fmt.Errorf("invalid geometry coordinate: %v", c)
		}
		path = append(path, orb.Point{c[0], c[1]})
	}
	if len(path) < 2 {
		return nil, fmt.Errorf("geometry has %d points; expected at least 2", len(path))
	}

	locationAt := func(idx int) (domain.Location, error) {
		if idx < 0 || idx >= len(path) {
			return domain.Location{}, fmt.Errorf("way point index %d outside geometry of %d points", idx, len(path))
		}
		return domain.Location{
			Latitude:  path[idx][1],
			Longitude: path[idx][0],
		}, nil
	}

	var segments []domain.Segment
	for _, orsSeg := range feat.Properties.Segments {
		for _, step := range orsSeg.Steps {
			if len(step.WayPoints) != 2 {
				return nil, fmt.Errorf("step has %d way points; expected 2", len(step.WayPoints))
			}
			// ORS emits zero-length arrival steps; they carry no travel.
			if step.WayPoints[0] == step.WayPoints[1] && step.Distance == 0 {
				continue
			}

			start, err := locationAt(step.WayPoints[0])
			if err != nil {
				return nil, err
			}
			end, err := locationAt(step.WayPoints[1])
			if err != nil {
				return nil, err
			}

			var instructions []string
			if step.Instruction != "" {
				instructions = []string{step.Instruction}
			}

			segments = append(segments, domain.Segment{
				Start:           start,
				End:             end,
				DistanceMeters:  step.Distance,
				DurationMinutes: step.Duration / 60.0,
				Instructions:    instructions,
			})
		}
	}

	if len(segments) == 0 {
		return nil, &domain.InvalidRouteError{Reason: "route has no traversable segments"}
	}

	// Pin segment endpoints to the requested locations so the route's
	// origin/destination match what callers asked for, address included.
	segments[0].Start = origin
	segments[len(segments)-1].End = destination

	return &domain.Route{
		Segments:   segments,
		PathPoints: path,
	}, nil
}
