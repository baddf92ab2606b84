package models

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// DateLayout is the calendar date format used by run parameters and reports.
const DateLayout = "2006-01-02"

// MaxBeta keeps the busiest possible day (peak and semester) well inside an
// int32 order count.
const MaxBeta = 1e6

// ErrInvalidConfig marks every error caused by bad run parameters or inputs.
var ErrInvalidConfig = errors.New("invalid configuration")

type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ConnString renders the settings as a libpq keyword/value connection string.
func (d DatabaseConfig) ConnString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

type KafkaConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	BrokerList        string `mapstructure:"broker_list"`
	OrdersTopic       string `mapstructure:"orders_topic"`
	InventoryTopic    string `mapstructure:"inventory_topic"`
	ProducerTimeoutMs int    `mapstructure:"producer_timeout_ms"`
}

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
	Prefix     string `mapstructure:"prefix"`
}

type Config struct {
	Weeks int       `mapstructure:"weeks"`
	Beta  float64   `mapstructure:"beta"`
	Peaks int       `mapstructure:"peaks"`
	Today time.Time `mapstructure:"today"`
	Seed  int64     `mapstructure:"seed"`

	OutputPath   string `mapstructure:"out"`
	OutputFolder string `mapstructure:"output_folder"`
	DocsFolder   string `mapstructure:"docs_folder"`
	OutputFormat string `mapstructure:"output_format"`

	CatalogSource   string `mapstructure:"catalog_source"`
	MenuFile        string `mapstructure:"menu"`
	IngredientsFile string `mapstructure:"ingredients"`

	LogLevel string `mapstructure:"log_level"`
	Progress bool   `mapstructure:"progress"`

	Database     DatabaseConfig     `mapstructure:"database"`
	Kafka        KafkaConfig        `mapstructure:"kafka"`
	CloudStorage CloudStorageConfig `mapstructure:"cloud_storage"`
}

// SetDefaults registers the default run parameters on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("weeks", 56)
	v.SetDefault("beta", 1.0)
	v.SetDefault("peaks", 12)
	v.SetDefault("today", "2025-09-24")
	v.SetDefault("seed", 69)
	v.SetDefault("out", ".")
	v.SetDefault("output_folder", "data")
	v.SetDefault("docs_folder", "docs")
	v.SetDefault("output_format", "csv")
	v.SetDefault("catalog_source", "file")
	v.SetDefault("menu", "data/menu_items.csv")
	v.SetDefault("ingredients", "data/ingredients.csv")
	v.SetDefault("log_level", "INFO")
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.broker_list", "localhost:9092")
	v.SetDefault("kafka.orders_topic", "cafe_orders")
	v.SetDefault("kafka.inventory_topic", "cafe_inventory")
	v.SetDefault("kafka.producer_timeout_ms", 0)
	v.SetDefault("cloud_storage.provider", "")
	v.SetDefault("cloud_storage.region", "")
	v.SetDefault("cloud_storage.bucket_name", "")
	v.SetDefault("cloud_storage.prefix", "")
}

// LoadConfig reads the optional config file, CAFEDATASIM_* environment
// variables and any flags already bound to v, and decodes them into a Config.
func LoadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("cafedatasim")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			stringToDateHookFunc(),
		)
	})
	if err := v.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("%w: unable to decode into struct: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// stringToDateHookFunc accepts both plain dates and RFC 3339 timestamps and
// truncates the result to midnight UTC.
func stringToDateHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Time{}) {
			return data, nil
		}
		s := strings.TrimSpace(data.(string))
		if d, err := time.Parse(DateLayout, s); err == nil {
			return d, nil
		}
		ts, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("malformed date %q, expected YYYY-MM-DD", s)
		}
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
	}
}

// Validate reports the first configuration error found in cfg.
func (cfg *Config) Validate() error {
	switch {
	case cfg.Weeks < 0:
		return fmt.Errorf("%w: weeks must not be negative, got %d", ErrInvalidConfig, cfg.Weeks)
	case math.IsNaN(cfg.Beta) || math.IsInf(cfg.Beta, 0) || cfg.Beta <= 0:
		return fmt.Errorf("%w: beta must be a positive number, got %g", ErrInvalidConfig, cfg.Beta)
	case cfg.Beta > MaxBeta:
		return fmt.Errorf("%w: beta must be at most %g, got %g", ErrInvalidConfig, MaxBeta, cfg.Beta)
	case cfg.Peaks < 0:
		return fmt.Errorf("%w: peaks must not be negative, got %d", ErrInvalidConfig, cfg.Peaks)
	case cfg.Today.IsZero():
		return fmt.Errorf("%w: today is required", ErrInvalidConfig)
	case cfg.OutputPath == "":
		return fmt.Errorf("%w: output path is required", ErrInvalidConfig)
	}

	switch cfg.OutputFormat {
	case "csv", "json", "parquet":
	default:
		return fmt.Errorf("%w: unsupported output format %q", ErrInvalidConfig, cfg.OutputFormat)
	}

	switch cfg.CatalogSource {
	case "file":
		if cfg.MenuFile == "" || cfg.IngredientsFile == "" {
			return fmt.Errorf("%w: menu and ingredients catalog paths are required", ErrInvalidConfig)
		}
	case "postgres":
		if cfg.Database.Host == "" || cfg.Database.DBName == "" {
			return fmt.Errorf("%w: postgres catalog source needs database.host and database.dbname", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported catalog source %q", ErrInvalidConfig, cfg.CatalogSource)
	}

	if cfg.Database.Enabled && (cfg.Database.Host == "" || cfg.Database.DBName == "") {
		return fmt.Errorf("%w: database output needs database.host and database.dbname", ErrInvalidConfig)
	}
	if cfg.Kafka.Enabled && cfg.Kafka.BrokerList == "" {
		return fmt.Errorf("%w: kafka output needs kafka.broker_list", ErrInvalidConfig)
	}
	switch cfg.CloudStorage.Provider {
	case "":
	case "s3":
		if cfg.CloudStorage.BucketName == "" {
			return fmt.Errorf("%w: cloud storage needs a bucket name", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unsupported cloud storage provider: %s", ErrInvalidConfig, cfg.CloudStorage.Provider)
	}
	return nil
}

// StartDate is the first day of the generated history: Today minus Weeks.
func (cfg *Config) StartDate() time.Time {
	return cfg.Today.AddDate(0, 0, -7*cfg.Weeks)
}
