package repositories

import (
	"context"
	"database/sql"
	"errors"
	"flight-sun-service/internal/domain"
	"flight-sun-service/internal/platform/obs"
	"flight-sun-service/internal/ports"
	"fmt"
	"log/slog"
)

// SQL-backed implementation of the AirportRepository port, used with both
// SQLite (modernc.org/sqlite) and Postgres (pgx stdlib).
type SQLAirportRepository struct {
	DB      *sql.DB
	Dialect Dialect
	Logger  *slog.Logger
}

var _ ports.AirportRepository = (*SQLAirportRepository)(nil)

func NewSqliteAirportRepository(db *sql.DB, logger *slog.Logger) *SQLAirportRepository {
	return &SQLAirportRepository{DB: db, Dialect: DialectSQLite, Logger: logger}
}

func NewPostgresAirportRepository(db *sql.DB, logger *slog.Logger) *SQLAirportRepository {
	return &SQLAirportRepository{DB: db, Dialect: DialectPostgres, Logger: logger}
}

// Return one airport by normalized code.
func (s *SQLAirportRepository) GetAirport(ctx context.Context, code string) (_ *domain.Airport, err error) {
	defer obs.Time(ctx, s.Logger, "airports.sql.GetAirport")(&err)

	if s.DB == nil {
		return nil, errors.New("sql airport repository: DB is nil")
	}

	norm := domain.NormalizeCode(code)
	if norm == "" {
		return nil, notFound(code)
	}

	query := fmt.Sprintf(`
	SELECT code, name, city, country, lat, lon
	FROM airports
	WHERE code = %s;
	`, s.Dialect.placeholder(1))

	a, err := scanAirport(s.DB.QueryRowContext(ctx, query, norm))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(code)
	}
	if err != nil {
		return nil, fmt.Errorf("get airport %s: %w", norm, err)
	}

	return a, nil
}

// Return all airports stored in the database.
func (s *SQLAirportRepository) ListAirports(ctx context.Context) (_ []*domain.Airport, err error) {
	defer obs.Time(ctx, s.Logger, "airports.sql.ListAirports")(&err)

	if s.DB == nil {
		return nil, errors.New("sql airport repository: DB is nil")
	}

	query := `
	SELECT code, name, city, country, lat, lon
	FROM airports
	ORDER BY code;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list airports: query airports table: %w", err)
	}
	defer rows.Close()

	airports := make([]*domain.Airport, 0, 64)
	for rows.Next() {
		a, err := scanAirport(rows)
		if err != nil {
			return nil, fmt.Errorf("list airports: scan row: %w", err)
		}
		airports = append(airports, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list airports: row iteration: %w", err)
	}

	return airports, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAirport(row rowScanner) (*domain.Airport, error) {
	var a domain.Airport
	if err := row.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Location.Latitude, &a.Location.Longitude); err != nil {
		return nil, err
	}
	return &a, nil
}
