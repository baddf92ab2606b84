package models

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Weeks:           56,
		Beta:            1.0,
		Peaks:           12,
		Today:           time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC),
		Seed:            69,
		OutputPath:      ".",
		OutputFormat:    "csv",
		CatalogSource:   "file",
		MenuFile:        "data/menu_items.csv",
		IngredientsFile: "data/ingredients.csv",
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 56, cfg.Weeks)
	assert.Equal(t, 1.0, cfg.Beta)
	assert.Equal(t, 12, cfg.Peaks)
	assert.Equal(t, int64(69), cfg.Seed)
	assert.Equal(t, time.Date(2025, 9, 24, 0, 0, 0, 0, time.UTC), cfg.Today)
	assert.Equal(t, ".", cfg.OutputPath)
	assert.Equal(t, "data", cfg.OutputFolder)
	assert.Equal(t, "docs", cfg.DocsFolder)
	assert.Equal(t, "csv", cfg.OutputFormat)
	assert.Equal(t, "file", cfg.CatalogSource)
	assert.False(t, cfg.Database.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "cafe_orders", cfg.Kafka.OrdersTopic)
	assert.Equal(t, time.Date(2024, 8, 28, 0, 0, 0, 0, time.UTC), cfg.StartDate())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
weeks: 2
beta: 2.5
today: 2025-01-31
output_format: parquet
database:
  enabled: true
  host: localhost
  dbname: cafe
cloud_storage:
  provider: s3
  region: us-east-1
  bucket_name: cafe-seed
`), 0o644))

	cfg, err := LoadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Weeks)
	assert.Equal(t, 2.5, cfg.Beta)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), cfg.Today)
	assert.Equal(t, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), cfg.StartDate())
	assert.Equal(t, "parquet", cfg.OutputFormat)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "host=localhost port=5432 user= password= dbname=cafe sslmode=disable", cfg.Database.ConnString())
	assert.Equal(t, "cafe-seed", cfg.CloudStorage.BucketName)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("CAFEDATASIM_PEAKS", "3")
	t.Setenv("CAFEDATASIM_TODAY", "2025-03-01T15:04:05Z")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Peaks)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), cfg.Today)
}

func TestLoadConfigNestedEnvironment(t *testing.T) {
	t.Setenv("CAFEDATASIM_DATABASE_HOST", "db.internal")
	t.Setenv("CAFEDATASIM_DATABASE_DBNAME", "pos")
	t.Setenv("CAFEDATASIM_KAFKA_PRODUCER_TIMEOUT_MS", "2500")

	cfg, err := LoadConfig(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "pos", cfg.Database.DBName)
	assert.Equal(t, 2500, cfg.Kafka.ProducerTimeoutMs)
}

func TestLoadConfigMalformedDate(t *testing.T) {
	v := viper.New()
	v.Set("today", "24/09/2025")

	_, err := LoadConfig(v, "")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsOversizedBeta(t *testing.T) {
	t.Setenv("CAFEDATASIM_BETA", "1e17")

	_, err := LoadConfig(viper.New(), "")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"zero weeks", func(c *Config) { c.Weeks = 0 }, true},
		{"zero peaks", func(c *Config) { c.Peaks = 0 }, true},
		{"negative weeks", func(c *Config) { c.Weeks = -1 }, false},
		{"zero beta", func(c *Config) { c.Beta = 0 }, false},
		{"nan beta", func(c *Config) { c.Beta = math.NaN() }, false},
		{"infinite beta", func(c *Config) { c.Beta = math.Inf(1) }, false},
		{"huge beta", func(c *Config) { c.Beta = 1e17 }, false},
		{"max beta", func(c *Config) { c.Beta = MaxBeta }, true},
		{"negative peaks", func(c *Config) { c.Peaks = -2 }, false},
		{"no today", func(c *Config) { c.Today = time.Time{} }, false},
		{"no output path", func(c *Config) { c.OutputPath = "" }, false},
		{"json", func(c *Config) { c.OutputFormat = "json" }, true},
		{"xml", func(c *Config) { c.OutputFormat = "xml" }, false},
		{"no menu path", func(c *Config) { c.MenuFile = "" }, false},
		{"postgres catalog without host", func(c *Config) { c.CatalogSource = "postgres" }, false},
		{"postgres catalog", func(c *Config) {
			c.CatalogSource = "postgres"
			c.Database.Host, c.Database.DBName = "db", "cafe"
		}, true},
		{"unknown catalog", func(c *Config) { c.CatalogSource = "http" }, false},
		{"database output without host", func(c *Config) { c.Database.Enabled = true }, false},
		{"kafka without brokers", func(c *Config) { c.Kafka.Enabled = true }, false},
		{"s3 without bucket", func(c *Config) { c.CloudStorage.Provider = "s3" }, false},
		{"gcs", func(c *Config) {
			c.CloudStorage.Provider = "gcs"
			c.CloudStorage.BucketName = "b"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestTax(t *testing.T) {
	assert.Equal(t, int64(0), Tax(0))
	assert.Equal(t, int64(31), Tax(500))
	assert.Equal(t, int64(62), Tax(1000))
	// 8 * 0.0625 = 0.5, rounds to even
	assert.Equal(t, int64(0), Tax(8))
	// 24 * 0.0625 = 1.5
	assert.Equal(t, int64(2), Tax(24))
	assert.Equal(t, int64(188), Tax(3000))
}
