package repositories

import (
	"context"
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/platform/apperrors"
	"flight-sun-service/internal/ports"
	"fmt"
	"slices"
	"strings"
)

// In-memory implementation of the AirportRepository port.
// It is read-only after construction and safe for concurrent use.
type MemoryAirportRepository struct {
	byCode map[string]domain.Airport
	codes  []string
}

var _ ports.AirportRepository = (*MemoryAirportRepository)(nil)

// NewMemoryAirportRepository indexes airports by normalized code. Later
// duplicates replace earlier ones.
func NewMemoryAirportRepository(airports []domain.Airport) (*MemoryAirportRepository, error) {
	r := &MemoryAirportRepository{byCode: make(map[string]domain.Airport, len(airports))}

	for i, a := range airports {
		a.Code = domain.NormalizeCode(a.Code)
		if a.Code == "" {
			return nil, fmt.Errorf("memory airport repository: empty code at index %d", i)
		}
		if err := a.Location.Validate(); err != nil {
			return nil, fmt.Errorf("memory airport repository: airport %s: %w", a.Code, err)
		}

		if _, ok := r.byCode[a.Code]; !ok {
			r.codes = append(r.codes, a.Code)
		}
		r.byCode[a.Code] = a
	}

	slices.Sort(r.codes)
	return r, nil
}

func (r *MemoryAirportRepository) GetAirport(ctx context.Context, code string) (*domain.Airport, error) {
	a, ok := r.byCode[domain.NormalizeCode(code)]
	if !ok {
		return nil, notFound(code)
	}
	return &a, nil
}

func (r *MemoryAirportRepository) ListAirports(ctx context.Context) ([]*domain.Airport, error) {
	out := make([]*domain.Airport, 0, len(r.codes))
	for _, c := range r.codes {
		a := r.byCode[c]
		out = append(out, &a)
	}
	return out, nil
}

func notFound(code string) error {
	return apperrors.Wrap(apperrors.CodeAirportNotFound,
		fmt.Sprintf("airport %q not found", strings.TrimSpace(code)), nil)
}
