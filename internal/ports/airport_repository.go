package ports

import (
	"context"
	"flight-sun-service/internal/domain"
)

// Port: a boundary for resolving airport codes to locations.
type AirportRepository interface {
	// Return the airport for a normalized code, or an airport_not_found error.
	GetAirport(ctx context.Context, code string) (*domain.Airport, error)
	// Return every known airport ordered by code.
	ListAirports(ctx context.Context) ([]*domain.Airport, error)
}
