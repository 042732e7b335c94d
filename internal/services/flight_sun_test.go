package services

import (
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/platform/apperrors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	heathrow = domain.Airport{Code: "LHR", Name: "Heathrow", City: "London", Country: "UK", Location: lhr}
	barajas  = domain.Airport{Code: "MAD", Name: "Barajas", City: "Madrid", Country: "Spain", Location: mad}
)

// recordingModel returns fixed values and records every call.
type recordingModel struct {
	azimuth, elevation float64
	points             []domain.GeoPoint
	times              []time.Time
}

func (m *recordingModel) Name() string { return "recording" }

func (m *recordingModel) Position(p domain.GeoPoint, t time.Time) (float64, float64) {
	m.points = append(m.points, p)
	m.times = append(m.times, t)
	return m.azimuth, m.elevation
}

func TestEstimateDurationMinutes(t *testing.T) {
	require.Equal(t, 0, EstimateDurationMinutes(0))
	require.Equal(t, 0, EstimateDurationMinutes(13.3))
	require.Equal(t, 60, EstimateDurationMinutes(800))
	require.Equal(t, 93, EstimateDurationMinutes(1243.18))
}

func TestCalculateLondonMadridSolsticeNoon(t *testing.T) {
	depart := time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
	require.Equal(t, 172, depart.YearDay())

	res, err := NewEngine(nil).Calculate(heathrow, barajas, depart)
	require.NoError(t, err)

	require.Equal(t, 93, res.Profile.DurationMinutes)
	require.InDelta(t, 1243.18, res.Profile.DistanceKm, 0.01)
	require.InDelta(t, 192.298, res.Profile.HeadingDegrees, 0.001)
	require.Equal(t, "simplified", res.SolarModel)

	// Offsets 0..90 every 15 minutes; 93 is never reached.
	require.Len(t, res.Samples, 7)
	for i, s := range res.Samples {
		require.Equal(t, depart.Add(time.Duration(i*15)*time.Minute), s.Time)
		require.InDelta(t, float64(i*15)/93, s.Progress, 1e-12)
		require.GreaterOrEqual(t, s.Azimuth, 0.0)
		require.Less(t, s.Azimuth, 360.0)
		require.GreaterOrEqual(t, s.Elevation, -90.0)
		require.LessOrEqual(t, s.Elevation, 90.0)
	}
	require.Equal(t, lhr, res.Samples[0].Position)

	// Southbound around noon the sun stays right of track the whole way.
	require.Equal(t, domain.SideLeft, res.RecommendedSide)
	require.Equal(t, 0.0, res.ExposurePercentage)
	require.Equal(t, 100.0, res.RightPercentage)
	require.GreaterOrEqual(t, res.ExposurePercentage, 0.0)
	require.LessOrEqual(t, res.ExposurePercentage, 100.0)
}

func TestCalculateSameAirportIsSingleSample(t *testing.T) {
	depart := time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)

	res, err := NewEngine(nil).Calculate(heathrow, heathrow, depart)
	require.NoError(t, err)

	require.Equal(t, 0, res.Profile.DurationMinutes)
	require.Equal(t, 0.0, res.Profile.DistanceKm)
	require.Len(t, res.Samples, 1)
	require.Equal(t, 0.0, res.Samples[0].Progress)
	require.Equal(t, depart, res.Samples[0].Time)
	require.False(t, math.IsNaN(res.ExposurePercentage))
	require.Equal(t, domain.SideRight, res.RecommendedSide)
}

func TestCalculateNightFlightRecommendsRightWithZeroExposure(t *testing.T) {
	depart := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	res, err := NewEngine(nil).Calculate(heathrow, barajas, depart)
	require.NoError(t, err)

	require.NotEmpty(t, res.Samples)
	for _, s := range res.Samples {
		require.Less(t, s.Elevation, 0.0)
	}
	require.Equal(t, domain.SideRight, res.RecommendedSide)
	require.Equal(t, 0.0, res.ExposurePercentage)
	require.Equal(t, 0.0, res.LeftPercentage)
	require.Equal(t, 0.0, res.RightPercentage)
}

func TestCalculateMorningFlightNorthbound(t *testing.T) {
	res, err := NewEngine(nil).Calculate(barajas, heathrow, time.Date(2025, 6, 21, 17, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.Equal(t, domain.SideLeft, res.RecommendedSide)
	require.InDelta(t, 100.0/7, res.ExposurePercentage, 1e-9)
	require.InDelta(t, 600.0/7, res.RightPercentage, 1e-9)
}

func TestCalculatePassesInterpolatedPointsToModel(t *testing.T) {
	model := &recordingModel{azimuth: 90, elevation: 10}
	depart := time.Date(2025, 6, 21, 8, 0, 0, 0, time.UTC)

	res, err := NewEngine(model).Calculate(heathrow, barajas, depart)
	require.NoError(t, err)

	require.Len(t, model.points, len(res.Samples))
	require.Equal(t, lhr, model.points[0])
	require.Equal(t, Interpolate(lhr, mad, 45.0/93), model.points[3])
	require.Equal(t, depart.Add(90*time.Minute), model.times[6])
	require.Equal(t, "recording", res.SolarModel)
}

func TestCalculateRejectsInvalidCoordinates(t *testing.T) {
	bad := domain.Airport{Code: "XXX", Location: domain.GeoPoint{Latitude: math.NaN()}}

	_, err := NewEngine(nil).Calculate(bad, barajas, time.Now())
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = NewEngine(nil).Calculate(heathrow, domain.Airport{Location: domain.GeoPoint{Longitude: 200}}, time.Now())
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
