package main

import (
	"context"
	"flight-sun-service/internal/adapters/repositories"
	"flight-sun-service/internal/adapters/solar"
	"flight-sun-service/internal/config"
	"flight-sun-service/internal/platform/db"
	"flight-sun-service/internal/ports"
	"flight-sun-service/internal/services"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// app holds the adapters shared by every subcommand.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	airports ports.AirportRepository
	planner  *services.FlightPlanner
	close    func() error
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	airports, closeFn, err := openAirports(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	engine := services.NewEngine(solarModel(cfg.Solar.Model))

	return &app{
		cfg:      cfg,
		logger:   logger,
		airports: airports,
		planner: &services.FlightPlanner{
			Airports: airports,
			Engine:   engine,
			Daylight: solar.SunriseDaylight{},
			Logger:   logger.With("component", "flight.planner"),
		},
		close: closeFn,
	}, nil
}

func solarModel(name string) ports.SolarModel {
	if name == config.ModelEphemeris {
		return solar.EphemerisSolarModel{}
	}
	return services.SimplifiedSolarModel{}
}

// openAirports builds the configured registry. A SQLite registry is created
// and seeded on startup; a Postgres registry is expected to be seeded by dbtool.
func openAirports(ctx context.Context, cfg *config.Config, logger *slog.Logger) (ports.AirportRepository, func() error, error) {
	noop := func() error { return nil }
	repoLogger := logger.With("component", "airports."+cfg.Airports.Store)

	switch cfg.Airports.Store {
	case config.StoreSQLite:
		if dir := filepath.Dir(cfg.Airports.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("open airports: create %q: %w", dir, err)
			}
		}

		conn, err := db.OpenSQLite(cfg.Airports.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open airports: %w", err)
		}
		if _, err := repositories.InitAndSeed(ctx, conn, repositories.DialectSQLite, cfg.Airports.SeedPath); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("open airports: %w", err)
		}
		return repositories.NewSqliteAirportRepository(conn, repoLogger), conn.Close, nil

	case config.StorePostgres:
		conn, err := db.Open(cfg.Airports.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open airports: %w", err)
		}
		return repositories.NewPostgresAirportRepository(conn, repoLogger), conn.Close, nil

	default:
		seed, err := repositories.SeedOrBuiltin(cfg.Airports.SeedPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open airports: %w", err)
		}
		repo, err := repositories.NewMemoryAirportRepository(seed)
		if err != nil {
			return nil, nil, fmt.Errorf("open airports: %w", err)
		}
		return repo, noop, nil
	}
}
