package dto

import (
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/platform/apperrors"
	"fmt"
	"strings"
	"time"
)

type CalculateRequest struct {
	DepartureAirport string `json:"departure_airport" binding:"required"`
	ArrivalAirport   string `json:"arrival_airport" binding:"required"`
	DepartureTime    string `json:"departure_time" binding:"required"`
}

type SunPositionResponse struct {
	Azimuth   float64   `json:"azimuth"`
	Elevation float64   `json:"elevation"`
	Time      time.Time `json:"time"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Progress  float64   `json:"progress"`
}

// DaylightResponse has null sunrise and sunset during polar day or night.
type DaylightResponse struct {
	Airport string     `json:"airport"`
	Sunrise *time.Time `json:"sunrise"`
	Sunset  *time.Time `json:"sunset"`
}

type CalculateResponse struct {
	DepartureAirport        string                `json:"departure_airport"`
	ArrivalAirport          string                `json:"arrival_airport"`
	DepartureTime           time.Time             `json:"departure_time"`
	ArrivalTime             time.Time             `json:"arrival_time"`
	FlightDurationMinutes   int                   `json:"flight_duration_minutes"`
	DistanceKm              float64               `json:"distance_km"`
	HeadingDegrees          float64               `json:"heading_degrees"`
	SunPositions            []SunPositionResponse `json:"sun_positions"`
	RecommendedSeatSide     string                `json:"recommended_seat_side"`
	SunExposurePercentage   float64               `json:"sun_exposure_percentage"`
	LeftExposurePercentage  float64               `json:"left_exposure_percentage"`
	RightExposurePercentage float64               `json:"right_exposure_percentage"`
	SolarModel              string                `json:"solar_model"`
	Daylight                []DaylightResponse    `json:"daylight,omitempty"`
}

// Layouts accepted for departure times, tried in order. Times without an
// offset are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseTime parses an ISO-8601 departure time.
func ParseTime(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, apperrors.Wrap(apperrors.CodeInvalidInput,
		fmt.Sprintf("departure_time %q is not an ISO-8601 date-time", raw), nil)
}

func FromFlightPlan(plan *domain.FlightPlan) CalculateResponse {
	r := plan.Exposure
	p := r.Profile

	positions := make([]SunPositionResponse, 0, len(r.Samples))
	for _, s := range r.Samples {
		positions = append(positions, SunPositionResponse{
			Azimuth:   s.Azimuth,
			Elevation: s.Elevation,
			Time:      s.Time,
			Latitude:  s.Position.Latitude,
			Longitude: s.Position.Longitude,
			Progress:  s.Progress,
		})
	}

	res := CalculateResponse{
		DepartureAirport:        p.Departure.Code,
		ArrivalAirport:          p.Arrival.Code,
		DepartureTime:           p.DepartureTime,
		ArrivalTime:             p.ArrivalTime(),
		FlightDurationMinutes:   p.DurationMinutes,
		DistanceKm:              p.DistanceKm,
		HeadingDegrees:          p.HeadingDegrees,
		SunPositions:            positions,
		RecommendedSeatSide:     string(r.RecommendedSide),
		SunExposurePercentage:   r.ExposurePercentage,
		LeftExposurePercentage:  r.LeftPercentage,
		RightExposurePercentage: r.RightPercentage,
		SolarModel:              r.SolarModel,
	}

	for _, w := range []domain.DaylightWindow{plan.DepartureDaylight, plan.ArrivalDaylight} {
		if w.AirportCode == "" {
			continue
		}
		res.Daylight = append(res.Daylight, DaylightResponse{
			Airport: w.AirportCode,
			Sunrise: optionalTime(w.Sunrise),
			Sunset:  optionalTime(w.Sunset),
		})
	}

	return res
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
