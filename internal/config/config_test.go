package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, StoreMemory, cfg.Airports.Store)
	require.Equal(t, ModelSimplified, cfg.Solar.Model)
	require.True(t, cfg.HTTP.Gzip)
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	raw := []byte(`
http:
  address: ":9000"
  readTimeout: 3s
  writeTimeout: 4s
airports:
  store: sqlite
  sqlitePath: /tmp/airports.db
solar:
  model: ephemeris
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDRESS", ":9100")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9100", cfg.HTTP.Address)
	require.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, StoreSQLite, cfg.Airports.Store)
	require.Equal(t, "/tmp/airports.db", cfg.Airports.SQLitePath)
	require.Equal(t, ModelEphemeris, cfg.Solar.Model)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestValidateRejectsPostgresWithoutURL(t *testing.T) {
	cfg := defaultConfig()
	cfg.Airports.Store = StorePostgres

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "databaseUrl")
}

func TestValidateRejectsUnknownModel(t *testing.T) {
	cfg := defaultConfig()
	cfg.Solar.Model = "nasa"

	require.Error(t, cfg.Validate())
}

func TestGetFallback(t *testing.T) {
	t.Setenv("FLIGHT_SUN_TEST_KEY", "")
	require.Equal(t, "fallback", Get("FLIGHT_SUN_TEST_KEY", "fallback"))

	t.Setenv("FLIGHT_SUN_TEST_KEY", "set")
	require.Equal(t, "set", Get("FLIGHT_SUN_TEST_KEY", "fallback"))
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir on newer toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
