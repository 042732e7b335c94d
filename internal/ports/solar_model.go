package ports

import (
	"flight-sun-service/internal/domain"
	"time"
)

// Contract for computing where the sun is in the sky.
type SolarModel interface {
	// Name identifies the model in results and logs.
	Name() string
	// Return compass azimuth in [0, 360) and elevation in [-90, 90], in degrees.
	Position(point domain.GeoPoint, t time.Time) (azimuth float64, elevation float64)
}

// Contract for sunrise/sunset lookups at a location.
type DaylightProvider interface {
	// Return sunrise and sunset for the calendar date of t. Both are zero
	// when the sun does not rise or set that day.
	Daylight(point domain.GeoPoint, t time.Time) (sunrise time.Time, sunset time.Time)
}
