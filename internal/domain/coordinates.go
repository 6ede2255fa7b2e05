package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Render coordinates as "lat,lng" for external API compatibility.
func (c Coordinates) LatLngString() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}
