package services

import (
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/ports"
	"math"
	"time"
)

const (
	// Axial tilt used for the seasonal declination swing, in degrees.
	axialTiltDeg = 23.45
	// Day of year where the declination sine crosses zero (near the March equinox).
	equinoxDay = 80
	// Below this the azimuth denominator is treated as zero (zenith sun or pole).
	azimuthEpsilon = 1e-12
)

// SimplifiedSolarModel is a low-order seasonal approximation of the sun's
// position. The clock time of t is used as local solar time as-is: there is
// no timezone, longitude or equation-of-time correction, and no refraction.
type SimplifiedSolarModel struct{}

var _ ports.SolarModel = SimplifiedSolarModel{}

func (SimplifiedSolarModel) Name() string { return "simplified" }

// Declination returns the solar declination in degrees for a day of year.
func Declination(dayOfYear int) float64 {
	return axialTiltDeg * math.Sin(deg2rad(360.0/365.0*float64(dayOfYear-equinoxDay)))
}

// HourAngle returns degrees from solar noon, negative in the morning.
func HourAngle(t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60.0
	return (hour - 12) * 15
}

func (SimplifiedSolarModel) Position(point domain.GeoPoint, t time.Time) (float64, float64) {
	hourAngle := HourAngle(t)

	lat := deg2rad(point.Latitude)
	decl := deg2rad(Declination(t.YearDay()))
	ha := deg2rad(hourAngle)

	sinElevation := math.Sin(lat)*math.Sin(decl) + math.Cos(lat)*math.Cos(decl)*math.Cos(ha)
	elevation := math.Asin(clamp(sinElevation, -1, 1))

	// Azimuth is undefined with the sun at the zenith or the observer at a
	// pole; fall back to north.
	rawAzimuth := 0.0
	// Elevation stays in radians; cos of its degree value would skew the azimuth.
	if denom := math.Cos(elevation) * math.Cos(lat); math.Abs(denom) > azimuthEpsilon {
		cosAzimuth := (math.Sin(decl) - sinElevation*math.Sin(lat)) / denom
		rawAzimuth = rad2deg(math.Acos(clamp(cosAzimuth, -1, 1)))
	}

	// acos cannot tell morning from afternoon; mirror around solar noon.
	azimuth := rawAzimuth
	if hourAngle > 0 {
		azimuth = 360 - rawAzimuth
	}

	return normalizeAngle(azimuth), rad2deg(elevation)
}
