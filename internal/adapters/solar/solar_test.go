package solar

import (
	"flight-sun-service/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var heathrow = domain.GeoPoint{Latitude: 51.47, Longitude: -0.4543}

func TestEphemerisNoonAtHeathrowOnSolstice(t *testing.T) {
	az, el := EphemerisSolarModel{}.Position(heathrow, time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC))

	// Local apparent noon falls a few minutes after 12:00 UTC.
	require.InDelta(t, 180, az, 5)
	require.InDelta(t, 62, el, 1)
}

func TestEphemerisMorningAndEvening(t *testing.T) {
	m := EphemerisSolarModel{}

	amAz, amEl := m.Position(heathrow, time.Date(2025, 6, 21, 8, 0, 0, 0, time.UTC))
	pmAz, pmEl := m.Position(heathrow, time.Date(2025, 6, 21, 16, 0, 0, 0, time.UTC))

	require.Greater(t, amEl, 0.0)
	require.Greater(t, pmEl, 0.0)
	require.Less(t, amAz, 180.0)
	require.Greater(t, pmAz, 180.0)
}

func TestEphemerisMidnightIsBelowHorizon(t *testing.T) {
	az, el := EphemerisSolarModel{}.Position(heathrow, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC))

	require.Less(t, el, 0.0)
	require.GreaterOrEqual(t, az, 0.0)
	require.Less(t, az, 360.0)
}

func TestEphemerisHonoursTimeZone(t *testing.T) {
	m := EphemerisSolarModel{}
	cest := time.FixedZone("CEST", 2*3600)

	utcAz, utcEl := m.Position(heathrow, time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC))
	zAz, zEl := m.Position(heathrow, time.Date(2025, 6, 21, 14, 0, 0, 0, cest))

	require.InDelta(t, utcAz, zAz, 1e-9)
	require.InDelta(t, utcEl, zEl, 1e-9)
}

func TestEphemerisEquinoxAtEquator(t *testing.T) {
	_, el := EphemerisSolarModel{}.Position(domain.GeoPoint{}, time.Date(2025, 3, 20, 12, 7, 0, 0, time.UTC))
	require.Greater(t, el, 85.0)
}

func TestSunriseDaylightAtHeathrow(t *testing.T) {
	rise, set := SunriseDaylight{}.Daylight(heathrow, time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC))

	require.Equal(t, 3, rise.Hour())
	require.Equal(t, 20, set.Hour())
	require.Equal(t, time.UTC, rise.Location())
	require.True(t, set.After(rise))
}

func TestSunriseDaylightPolarDay(t *testing.T) {
	svalbard := domain.GeoPoint{Latitude: 78.2, Longitude: 15.6}
	rise, set := SunriseDaylight{}.Daylight(svalbard, time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC))

	require.True(t, rise.IsZero())
	require.True(t, set.IsZero())
}
