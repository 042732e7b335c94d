package services

import (
	"flight-sun-service/internal/domain"
	"math"
)

// Mean Earth radius used by all distance calculations.
const EarthRadiusKm = 6371.0

func deg2rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func rad2deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

// normalizeAngle maps any angle in degrees onto [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	// -1e-15 + 360 rounds to 360.
	if deg >= 360.0 {
		deg = 0
	}
	return deg
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// DistanceKm returns the Haversine great-circle distance between a and b.
func DistanceKm(a, b domain.GeoPoint) float64 {
	lat1, lon1 := deg2rad(a.Latitude), deg2rad(a.Longitude)
	lat2, lon2 := deg2rad(b.Latitude), deg2rad(b.Longitude)

	dlat := lat2 - lat1
	dlon := lon2 - lon1

	h := math.Pow(math.Sin(dlat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Min(1, math.Sqrt(h)))

	return EarthRadiusKm * c
}

// HeadingDegrees returns the initial great-circle bearing from a to b in [0, 360).
// Identical points yield 0.
func HeadingDegrees(a, b domain.GeoPoint) float64 {
	lat1, lon1 := deg2rad(a.Latitude), deg2rad(a.Longitude)
	lat2, lon2 := deg2rad(b.Latitude), deg2rad(b.Longitude)

	dlon := lon2 - lon1

	y := math.Sin(dlon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon)

	return normalizeAngle(rad2deg(math.Atan2(y, x)))
}
