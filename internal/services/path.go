package services

import "flight-sun-service/internal/domain"

// Interpolate returns the point at progress along a straight line in
// lat/lon space. It is not a geodesic: long-haul and high-latitude routes
// drift from the real track, and routes crossing the antimeridian are
// interpolated the long way round.
func Interpolate(a, b domain.GeoPoint, progress float64) domain.GeoPoint {
	// Endpoints are returned as-is so progress 0 and 1 are exact.
	switch progress {
	case 0:
		return a
	case 1:
		return b
	}

	return domain.GeoPoint{
		Latitude:  a.Latitude + (b.Latitude-a.Latitude)*progress,
		Longitude: a.Longitude + (b.Longitude-a.Longitude)*progress,
	}
}
