package services

import (
	"strconv"
	"strings"

	"trip-planner-service/internal/domain"
)

const shareLinkBase = "https://www.google.com/maps/dir/?api=1"

// External travel modes supported by the mapping deep link. Unmapped
// transport types fall back to driving.
var travelModes = map[domain.TransportType]string{
	domain.TransportCar:     "driving",
	domain.TransportWalking: "walking",
	domain.TransportBicycle: "bicycling",
	domain.TransportBus:     "transit",
	domain.TransportTrain:   "transit",
}

// TravelMode maps a transport type to the external deep-link mode.
func TravelMode(t domain.TransportType) string {
	if mode, ok := travelModes[t]; ok {
		return mode
	}
	return "driving"
}

// BuildShareLink serializes origin, inserted stops (in route order) and
// destination into a mapping deep link.
//
// The link format requires literal "lat,lon" pairs separated by "|"; query
// encoding would escape both separators, so the URL is assembled directly.
func BuildShareLink(origin, destination domain.Location, stops []domain.Stop, transport domain.TransportType) string {
	var b strings.Builder
	b.WriteString(shareLinkBase)
	b.WriteString("&origin=")
	b.WriteString(formatCoord(origin))
	b.WriteString("&destination=")
	b.WriteString(formatCoord(destination))

	if len(stops) > 0 {
		waypoints := make([]string, 0, len(stops))
		for _, s := range stops {
			waypoints = append(waypoints, formatCoord(s.Location))
		}
		b.WriteString("&waypoints=")
		b.WriteString(strings.Join(waypoints, "|"))
	}

	b.WriteString("&travelmode=")
	b.WriteString(TravelMode(transport))

	return b.String()
}

func formatCoord(l domain.Location) string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64) +
		"," +
		strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}
