package domain

import "fmt"

// TransportType identifies the mode of travel for a trip or segment.
type TransportType string

const (
	TransportCar        TransportType = "car"
	TransportMotorcycle TransportType = "motorcycle"
	TransportBicycle    TransportType = "bicycle"
	TransportWalking    TransportType = "walking"
	TransportBus        TransportType = "bus"
	TransportTrain      TransportType = "train"
	TransportPlane      TransportType = "plane"
	TransportSea        TransportType = "sea"
)

// ParseTransportType validates a raw transport type string.
func ParseTransportType(s string) (TransportType, error) {
	t := TransportType(s)
	switch t {
	case TransportCar, TransportMotorcycle, TransportBicycle, TransportWalking,
		TransportBus, TransportTrain, TransportPlane, TransportSea:
		return t, nil
	}
	return "", &ValidationError{
		Field:   "transportation_type",
		Message: fmt.Sprintf("unsupported transportation type %q", s),
	}
}

// Fueled reports whether the mode consumes fuel from an onboard tank.
func (t TransportType) Fueled() bool {
	return t == TransportCar || t == TransportMotorcycle
}

// Activity returns the calorie-tracking bucket for the mode.
func (t TransportType) Activity() string {
	switch t {
	case TransportWalking:
		return "walking"
	case TransportBicycle:
		return "cycling"
	case TransportCar, TransportMotorcycle:
		return "driving"
	default:
		return "sitting"
	}
}
