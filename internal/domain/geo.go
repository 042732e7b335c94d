package domain

import (
	"fmt"
	"math"

	"flight-sun-service/internal/platform/apperrors"
)

// Immutable geographic point in decimal degrees.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// NewGeoPoint validates that both coordinates are finite and in range.
func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{Latitude: lat, Longitude: lon}
	if err := p.Validate(); err != nil {
		return GeoPoint{}, err
	}
	return p, nil
}

func (p GeoPoint) Validate() error {
	if math.IsNaN(p.Latitude) || math.IsInf(p.Latitude, 0) ||
		math.IsNaN(p.Longitude) || math.IsInf(p.Longitude, 0) {
		return apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("coordinates must be finite (lat=%v, lon=%v)", p.Latitude, p.Longitude), nil)
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("latitude %v outside [-90, 90]", p.Latitude), nil)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("longitude %v outside [-180, 180]", p.Longitude), nil)
	}
	return nil
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.Latitude, p.Longitude)
}
