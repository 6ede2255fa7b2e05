package domain

// Travel mode of the vehicle profile.
type TravelMode string

const (
	ModeCar             TravelMode = "car"
	ModeBike            TravelMode = "bike"
	ModeWalking         TravelMode = "walking"
	ModePublicTransport TravelMode = "public_transport"
)

// Vehicle profile supplied by the caller. Only the mode code and the
// fallback speed participate in planning; the rest is descriptive.
type Vehicle struct {
	Mode                 TravelMode
	AverageSpeedKmh      float64
	FuelEfficiencyKmPerL float64
	Capacity             int
}

// ModeCode maps the vehicle mode to the travel-mode code the distance
// provider understands.
func (v Vehicle) ModeCode() string {
	switch v.Mode {
	case ModeBike:
		return "cycling"
	case ModeWalking:
		return "walking"
	case ModePublicTransport:
		return "transit"
	default:
		return "driving"
	}
}

// SpeedKmh returns the vehicle's average speed, falling back to a
// mode-specific default when the caller did not provide one.
func (v Vehicle) SpeedKmh() float64 {
	if v.AverageSpeedKmh > 0 {
		return v.AverageSpeedKmh
	}
	switch v.Mode {
	case ModeBike:
		return 15
	case ModeWalking:
		return 5
	case ModePublicTransport:
		return 25
	default:
		return 40
	}
}
