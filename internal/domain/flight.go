package domain

import "time"

// Derived description of a single flight. Duration comes from the
// great-circle distance at an assumed constant cruising speed.
type FlightProfile struct {
	Departure       Airport
	Arrival         Airport
	DepartureTime   time.Time
	DistanceKm      float64
	HeadingDegrees  float64
	DurationMinutes int
}

// Arrival time estimated from the profile duration.
func (f FlightProfile) ArrivalTime() time.Time {
	return f.DepartureTime.Add(time.Duration(f.DurationMinutes) * time.Minute)
}

// Outcome of a sun exposure calculation. It is immutable once returned.
type ExposureResult struct {
	Profile            FlightProfile
	Samples            []SunSample
	RecommendedSide    Side
	ExposurePercentage float64
	LeftPercentage     float64
	RightPercentage    float64
	SolarModel         string
}

// Sunrise and sunset at one airport on the departure date.
// Both are zero during polar day or night.
type DaylightWindow struct {
	AirportCode string
	Sunrise     time.Time
	Sunset      time.Time
}

// FlightPlan is an ExposureResult enriched with airport daylight windows.
type FlightPlan struct {
	Exposure          *ExposureResult
	DepartureDaylight DaylightWindow
	ArrivalDaylight   DaylightWindow
}
