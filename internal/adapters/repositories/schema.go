package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"flight-sun-service/internal/domain"
	"fmt"
	"os"
	"strings"
)

// Dialect selects placeholder syntax for the supported SQL backends.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

func (d Dialect) String() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Initialize the airport registry schema. The DDL is valid for both SQLite and Postgres.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAirportsQuery := `
	CREATE TABLE IF NOT EXISTS airports (
		code TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL,
		country TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_airports_country
	ON airports(country);
	`

	statements := []string{
		createAirportsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type AirportSeed struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Read and validate airport seed data from a JSON array file.
func LoadSeedJSON(jsonPath string) ([]domain.Airport, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load airport seed: read %q: %w", jsonPath, err)
	}

	var data []AirportSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load airport seed: parse json: %w", err)
	}

	airports := make([]domain.Airport, 0, len(data))
	for i, item := range data {
		code := domain.NormalizeCode(item.Code)
		if code == "" {
			return nil, fmt.Errorf("load airport seed: item at index %d: code cannot be empty", i)
		}

		loc, err := domain.NewGeoPoint(item.Latitude, item.Longitude)
		if err != nil {
			return nil, fmt.Errorf("load airport seed: airport %s: %w", code, err)
		}

		airports = append(airports, domain.Airport{
			Code:     code,
			Name:     strings.TrimSpace(item.Name),
			City:     strings.TrimSpace(item.City),
			Country:  strings.TrimSpace(item.Country),
			Location: loc,
		})
	}

	return airports, nil
}

// Upsert airports into the registry table in a single transaction.
func SeedAirports(ctx context.Context, db *sql.DB, dialect Dialect, airports []domain.Airport) error {
	if db == nil {
		return errors.New("seed airports: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed airports: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO airports (code, name, city, country, lat, lon)
	VALUES (%s, %s, %s, %s, %s, %s)
	ON CONFLICT (code) DO UPDATE
	SET name = EXCLUDED.name,
		city = EXCLUDED.city,
		country = EXCLUDED.country,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
	`,
		dialect.placeholder(1), dialect.placeholder(2), dialect.placeholder(3),
		dialect.placeholder(4), dialect.placeholder(5), dialect.placeholder(6),
	)

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed airports: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range airports {
		code := domain.NormalizeCode(a.Code)
		if code == "" {
			return errors.New("seed airports: empty airport code")
		}
		if err := a.Location.Validate(); err != nil {
			return fmt.Errorf("seed airports: airport %s: %w", code, err)
		}

		if _, err := stmt.ExecContext(ctx, code, a.Name, a.City, a.Country, a.Location.Latitude, a.Location.Longitude); err != nil {
			return fmt.Errorf("seed airports: insert code=%s: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed airports: commit tx: %w", err)
	}

	return nil
}

// SeedOrBuiltin loads the JSON seed at path, or returns the built-in
// registry when path is empty.
func SeedOrBuiltin(path string) ([]domain.Airport, error) {
	if strings.TrimSpace(path) == "" {
		return BuiltinAirports(), nil
	}
	return LoadSeedJSON(path)
}

// InitAndSeed creates the schema and upserts the airports chosen by
// SeedOrBuiltin. It returns the number of airports written.
func InitAndSeed(ctx context.Context, db *sql.DB, dialect Dialect, seedPath string) (int, error) {
	if err := InitSchema(ctx, db); err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}

	seed, err := SeedOrBuiltin(seedPath)
	if err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}

	if err := SeedAirports(ctx, db, dialect, seed); err != nil {
		return 0, fmt.Errorf("init and seed: %w", err)
	}

	return len(seed), nil
}
