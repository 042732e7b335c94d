package services

import (
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/ports"
	"fmt"
	"math"
	"time"
)

const (
	// Assumed average cruising speed of a commercial flight.
	CruiseSpeedKmh = 800.0
	// Cadence at which the sun is sampled along the flight.
	SampleStepMinutes = 15
)

// Engine computes sun exposure for a single flight.
//
// It holds no mutable state: one Engine is shared by all requests and each
// Calculate call builds fresh values.
type Engine struct {
	model ports.SolarModel
}

// NewEngine returns an engine using model, or the simplified model when nil.
func NewEngine(model ports.SolarModel) *Engine {
	if model == nil {
		model = SimplifiedSolarModel{}
	}
	return &Engine{model: model}
}

func (e *Engine) ModelName() string {
	return e.model.Name()
}

// EstimateDurationMinutes converts a distance to whole minutes of flight, rounding down.
func EstimateDurationMinutes(distanceKm float64) int {
	return int(math.Floor(distanceKm / CruiseSpeedKmh * 60))
}

// Profile derives distance, heading and duration for a flight.
func (e *Engine) Profile(departure, arrival domain.Airport, departAt time.Time) (domain.FlightProfile, error) {
	if err := departure.Location.Validate(); err != nil {
		return domain.FlightProfile{}, fmt.Errorf("flight profile: departure %s: %w", departure.Code, err)
	}
	if err := arrival.Location.Validate(); err != nil {
		return domain.FlightProfile{}, fmt.Errorf("flight profile: arrival %s: %w", arrival.Code, err)
	}

	distance := DistanceKm(departure.Location, arrival.Location)

	return domain.FlightProfile{
		Departure:       departure,
		Arrival:         arrival,
		DepartureTime:   departAt,
		DistanceKm:      distance,
		HeadingDegrees:  HeadingDegrees(departure.Location, arrival.Location),
		DurationMinutes: EstimateDurationMinutes(distance),
	}, nil
}

// Sample evaluates the solar model every SampleStepMinutes from departure
// while the offset does not exceed the flight duration. The last sample lands
// on the final whole step, so the arrival instant itself is only sampled when
// the duration is a multiple of the step. A zero-duration flight yields a
// single sample at the departure point.
func (e *Engine) Sample(profile domain.FlightProfile) []domain.SunSample {
	dep := profile.Departure.Location
	arr := profile.Arrival.Location

	if profile.DurationMinutes <= 0 {
		return []domain.SunSample{e.sampleAt(dep, profile.DepartureTime, 0)}
	}

	samples := make([]domain.SunSample, 0, profile.DurationMinutes/SampleStepMinutes+1)
	for i := 0; i <= profile.DurationMinutes; i += SampleStepMinutes {
		progress := float64(i) / float64(profile.DurationMinutes)
		at := profile.DepartureTime.Add(time.Duration(i) * time.Minute)
		samples = append(samples, e.sampleAt(Interpolate(dep, arr, progress), at, progress))
	}

	return samples
}

func (e *Engine) sampleAt(point domain.GeoPoint, at time.Time, progress float64) domain.SunSample {
	azimuth, elevation := e.model.Position(point, at)
	return domain.SunSample{
		Azimuth:   azimuth,
		Elevation: elevation,
		Time:      at,
		Position:  point,
		Progress:  progress,
	}
}

// Calculate runs the full pipeline for one flight: profile, sampling and
// seat side selection. It only fails on invalid coordinates.
func (e *Engine) Calculate(departure, arrival domain.Airport, departAt time.Time) (*domain.ExposureResult, error) {
	profile, err := e.Profile(departure, arrival, departAt)
	if err != nil {
		return nil, fmt.Errorf("calculate: %w", err)
	}

	samples := e.Sample(profile)
	sel := SelectSide(samples, profile.HeadingDegrees)

	return &domain.ExposureResult{
		Profile:            profile,
		Samples:            samples,
		RecommendedSide:    sel.Side,
		ExposurePercentage: sel.Percentage,
		LeftPercentage:     sel.LeftPercentage,
		RightPercentage:    sel.RightPercentage,
		SolarModel:         e.model.Name(),
	}, nil
}
