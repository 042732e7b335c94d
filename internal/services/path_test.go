package services

import (
	"flight-sun-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpolateEndpointsAreExact(t *testing.T) {
	// Values chosen so a+(b-a)*1 does not round-trip to b in float64.
	a := domain.GeoPoint{Latitude: 0.1, Longitude: -33.3}
	b := domain.GeoPoint{Latitude: 0.7, Longitude: 12.34567}

	require.Equal(t, a, Interpolate(a, b, 0))
	require.Equal(t, b, Interpolate(a, b, 1))
	require.Equal(t, lhr, Interpolate(lhr, mad, 0))
	require.Equal(t, mad, Interpolate(lhr, mad, 1))
}

func TestInterpolateMidpoint(t *testing.T) {
	got := Interpolate(lhr, mad, 0.5)
	require.InDelta(t, (51.47+40.4983)/2, got.Latitude, 1e-12)
	require.InDelta(t, (-0.4543-3.5676)/2, got.Longitude, 1e-12)
}

func TestInterpolateDoesNotWrapAntimeridian(t *testing.T) {
	// Known limitation: the midpoint of a short hop across 180° lands on the
	// prime meridian instead of near the date line.
	west := domain.GeoPoint{Latitude: 0, Longitude: 179}
	east := domain.GeoPoint{Latitude: 0, Longitude: -179}

	require.InDelta(t, 0, Interpolate(west, east, 0.5).Longitude, 1e-12)
}
