package domain

import (
	"fmt"
	"math"
)

// Documented defaults for fueled vehicle profiles. Every absent field of a
// raw specification resolves to these values.
const (
	DefaultCarModel            = "Standard 1.6L"
	DefaultCarEngineVolumeL    = 1.6
	DefaultCarConsumptionL100  = 11.0
	DefaultCarFuelType         = "gasoline"
	DefaultCarTankCapacityL    = 50.0
	DefaultCarInitialFuelL     = 25.0
	DefaultCarBaseMassKg       = 1200.0
	DefaultPassengerMassKg     = 75.0
	DefaultMotoEngineCC        = 125
	DefaultMotoEconomyKmPerL   = 45.0
	DefaultMotoTankCapacityL   = 10.0
	DefaultMotoInitialFuelL    = 5.0
	DefaultMotoFuelType        = "92"
	DefaultMotoBaseMassKg      = 150.0
)

// CarSpec is a raw, partially-specified car profile as received at the
// boundary. Nil fields take their documented default during resolution.
type CarSpec struct {
	Model                    *string
	EngineVolumeL            *float64
	FuelConsumptionLPer100Km *float64
	FuelType                 *string
	TankCapacityL            *float64
	InitialFuelL             *float64
	BaseMassKg               *float64
	PassengerMassKg          *float64
}

// MotorcycleSpec is a raw, partially-specified motorcycle profile.
type MotorcycleSpec struct {
	EngineCC          *int
	FuelEconomyKmPerL *float64
	FuelType          *string
	TankCapacityL     *float64
	InitialFuelL      *float64
	BaseMassKg        *float64
	PassengerMassKg   *float64
}

// VehicleProfile is the resolved, fully-defaulted set of physical and fuel
// parameters for a transport mode. Non-fueled modes carry zero fuel fields.
type VehicleProfile struct {
	Transport                TransportType
	Model                    string
	EngineVolumeL            float64
	EngineCC                 int
	FuelConsumptionLPer100Km float64
	FuelEconomyKmPerL        float64
	FuelType                 string
	TankCapacityL            float64
	InitialFuelL             float64
	BaseMassKg               float64
	PassengerMassKg          float64
}

// TotalMassKg is an informational figure reported alongside costs. It does
// not feed the consumption formula.
func (p VehicleProfile) TotalMassKg(passengers int) float64 {
	return p.BaseMassKg + float64(passengers)*p.PassengerMassKg
}

// FuelLevelPercentage reports the initial fuel level relative to capacity.
func (p VehicleProfile) FuelLevelPercentage() float64 {
	if p.TankCapacityL <= 0 {
		return 0
	}
	return p.InitialFuelL / p.TankCapacityL * 100
}

// ResolveVehicleProfile fills every absent field of the raw specification
// with its documented default and validates the result. Specs for modes that
// do not match the transport type are ignored.
func ResolveVehicleProfile(t TransportType, car *CarSpec, moto *MotorcycleSpec) (VehicleProfile, error) {
	switch t {
	case TransportCar:
		return resolveCar(car)
	case TransportMotorcycle:
		return resolveMotorcycle(moto)
	default:
		return VehicleProfile{Transport: t}, nil
	}
}

func resolveCar(spec *CarSpec) (VehicleProfile, error) {
	if spec == nil {
		spec = &CarSpec{}
	}

	p := VehicleProfile{
		Transport:                TransportCar,
		Model:                    stringOr(spec.Model, DefaultCarModel),
		EngineVolumeL:            floatOr(spec.EngineVolumeL, DefaultCarEngineVolumeL),
		FuelConsumptionLPer100Km: floatOr(spec.FuelConsumptionLPer100Km, DefaultCarConsumptionL100),
		FuelType:                 stringOr(spec.FuelType, DefaultCarFuelType),
		TankCapacityL:            floatOr(spec.TankCapacityL, DefaultCarTankCapacityL),
		InitialFuelL:             floatOr(spec.InitialFuelL, DefaultCarInitialFuelL),
		BaseMassKg:               floatOr(spec.BaseMassKg, DefaultCarBaseMassKg),
		PassengerMassKg:          floatOr(spec.PassengerMassKg, DefaultPassengerMassKg),
	}

	fields := map[string]float64{
		"engine_volume":    p.EngineVolumeL,
		"fuel_consumption": p.FuelConsumptionLPer100Km,
		"tank_capacity":    p.TankCapacityL,
		"initial_fuel":     p.InitialFuelL,
		"base_mass":        p.BaseMassKg,
		"passenger_mass":   p.PassengerMassKg,
	}
	if err := validateProfileFields(fields); err != nil {
		return VehicleProfile{}, err
	}

	// Consumption is a divisor downstream; zero must be rejected here.
	if p.FuelConsumptionLPer100Km <= 0 {
		return VehicleProfile{}, &ValidationError{Field: "fuel_consumption", Message: "must be greater than zero"}
	}
	if p.TankCapacityL <= 0 {
		return VehicleProfile{}, &ValidationError{Field: "tank_capacity", Message: "must be greater than zero"}
	}

	return p, nil
}

func resolveMotorcycle(spec *MotorcycleSpec) (VehicleProfile, error) {
	if spec == nil {
		spec = &MotorcycleSpec{}
	}

	engineCC := DefaultMotoEngineCC
	if spec.EngineCC != nil {
		engineCC = *spec.EngineCC
	}

	p := VehicleProfile{
		Transport:         TransportMotorcycle,
		EngineCC:          engineCC,
		FuelEconomyKmPerL: floatOr(spec.FuelEconomyKmPerL, DefaultMotoEconomyKmPerL),
		FuelType:          stringOr(spec.FuelType, DefaultMotoFuelType),
		TankCapacityL:     floatOr(spec.TankCapacityL, DefaultMotoTankCapacityL),
		InitialFuelL:      floatOr(spec.InitialFuelL, DefaultMotoInitialFuelL),
		BaseMassKg:        floatOr(spec.BaseMassKg, DefaultMotoBaseMassKg),
		PassengerMassKg:   floatOr(spec.PassengerMassKg, DefaultPassengerMassKg),
	}

	if engineCC < 0 {
		return VehicleProfile{}, &ValidationError{Field: "engine_cc", Message: "must not be negative"}
	}

	fields := map[string]float64{
		"fuel_economy":   p.FuelEconomyKmPerL,
		"tank_capacity":  p.TankCapacityL,
		"initial_fuel":   p.InitialFuelL,
		"base_mass":      p.BaseMassKg,
		"passenger_mass": p.PassengerMassKg,
	}
	if err := validateProfileFields(fields); err != nil {
		return VehicleProfile{}, err
	}

	if p.FuelEconomyKmPerL <= 0 {
		return VehicleProfile{}, &ValidationError{Field: "fuel_economy", Message: "must be greater than zero"}
	}
	if p.TankCapacityL <= 0 {
		return VehicleProfile{}, &ValidationError{Field: "tank_capacity", Message: "must be greater than zero"}
	}

	return p, nil
}

func validateProfileFields(fields map[string]float64) error {
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Field: name, Message: fmt.Sprintf("must be finite, got %v", v)}
		}
		if v < 0 {
			return &ValidationError{Field: name, Message: fmt.Sprintf("must not be negative, got %v", v)}
		}
	}
	return nil
}

func stringOr(v *string, fallback string) string {
	if v != nil && *v != "" {
		return *v
	}
	return fallback
}

func floatOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}
