package main

import (
	"context"
	"database/sql"
	"errors"
	"flight-sun-service/internal/adapters/repositories"
	"flight-sun-service/internal/config"
	"flight-sun-service/internal/platform/db"
	"flight-sun-service/internal/platform/logger"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	// Loaded before flags so .env and YAML values feed the flag defaults.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var store string

	rootCmd := &cobra.Command{
		Use:           "dbtool",
		Short:         "Manage the SQL airport registry",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&store, "store", defaultStore(cfg), "registry backend (sqlite, postgres)")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create the airports schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), cfg, store, func(ctx context.Context, conn *sql.DB, _ repositories.Dialect, log *slog.Logger) error {
				if err := repositories.InitSchema(ctx, conn); err != nil {
					return fmt.Errorf("schema initialization failed: %w", err)
				}
				log.Info("schema ready")
				return nil
			})
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed [seed.json]",
		Short: "Create the schema and upsert airports",
		Long:  "Upserts airports from a JSON seed file, the configured seed path, or the built-in registry.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seedPath := seedPathFor(cfg, args)

			return withDB(cmd.Context(), cfg, store, func(ctx context.Context, conn *sql.DB, dialect repositories.Dialect, log *slog.Logger) error {
				log.Info("seeding airports", "source", seedSource(seedPath))
				n, err := repositories.InitAndSeed(ctx, conn, dialect, seedPath)
				if err != nil {
					return fmt.Errorf("seeding failed: %w", err)
				}
				log.Info("seeding complete", "count", n)
				return nil
			})
		},
	}

	rootCmd.AddCommand(initCmd, seedCmd)
	return rootCmd
}

// defaultStore is the configured SQL store. A memory store has nothing to
// manage, so it falls back to postgres.
func defaultStore(cfg *config.Config) string {
	if cfg.Airports.Store == config.StoreMemory {
		return config.StorePostgres
	}
	return cfg.Airports.Store
}

// seedPathFor prefers a positional seed file over the configured seed path.
func seedPathFor(cfg *config.Config, args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return cfg.Airports.SeedPath
}

// withDB opens the selected database and runs fn.
func withDB(ctx context.Context, cfg *config.Config, store string, fn func(context.Context, *sql.DB, repositories.Dialect, *slog.Logger) error) error {
	log := logger.New(cfg.LogLevel).With("component", "dbtool")

	var (
		conn    *sql.DB
		dialect repositories.Dialect
		err     error
	)

	switch strings.ToLower(strings.TrimSpace(store)) {
	case config.StorePostgres:
		if strings.TrimSpace(cfg.Airports.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required")
		}
		conn, err = db.Open(cfg.Airports.DatabaseURL)
		dialect = repositories.DialectPostgres
	case config.StoreSQLite:
		conn, err = db.OpenSQLite(cfg.Airports.SQLitePath)
		dialect = repositories.DialectSQLite
	default:
		return fmt.Errorf("dbtool: store %q is not one of sqlite, postgres", store)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Info("connected", "dialect", dialect.String())
	return fn(ctx, conn, dialect, log)
}

func seedSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
