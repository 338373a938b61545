package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/vidinfra/erpdesk/internal/types"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Sequence   SequenceConfig   `validate:"required"`
	KVStore    KVStoreConfig    `mapstructure:"kvstore" validate:"required"`
	Postgres   PostgresConfig
	Blob       BlobConfig `validate:"required"`
	S3         S3Config
	Pricing    PricingConfig
	Events     EventsConfig
	Seed       SeedConfig
	Sentry     SentryConfig
	Pyroscope  PyroscopeConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required,oneof=local api"`
}

type ServerConfig struct {
	Address   string          `validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	// AllowedOrigins lists the CORS origins; "*" allows any
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RateLimitConfig caps request throughput per process. Zero RPS disables the limiter.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" validate:"gte=0"`
	Burst int     `mapstructure:"burst" validate:"gte=0"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required,oneof=debug info warn error"`
}

// SequenceConfig describes the invoice number format and the two durable keys
// holding its state.
type SequenceConfig struct {
	Prefix  string `validate:"required"`
	Width   int    `validate:"required,min=1,max=12"`
	YearKey string `mapstructure:"year_key" validate:"required"`
	SeqKey  string `mapstructure:"seq_key" validate:"required"`
}

type KVStoreConfig struct {
	Backend        types.KVBackend `validate:"required,oneof=memory sqlite postgres"`
	SQLite         SQLiteConfig
	ConnectRetries uint64 `mapstructure:"connect_retries"`
}

type SQLiteConfig struct {
	Path string
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type BlobConfig struct {
	Backend       types.BlobBackend `validate:"required,oneof=memory s3"`
	PublicBaseURL string            `mapstructure:"public_base_url"`
}

type S3Config struct {
	Bucket    string
	Region    string
	KeyPrefix string `mapstructure:"key_prefix"`
	Endpoint  string
}

type PricingConfig struct {
	VATRate string `mapstructure:"vat_rate"`
}

type SeedConfig struct {
	Enabled bool
}

type SentryConfig struct {
	Enabled     bool
	DSN         string  `mapstructure:"dsn"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

type PyroscopeConfig struct {
	Enabled         bool
	ServerAddress   string   `mapstructure:"server_address"`
	ApplicationName string   `mapstructure:"application_name"`
	BasicAuthUser   string   `mapstructure:"basic_auth_user"`
	BasicAuthPass   string   `mapstructure:"basic_auth_pass"`
	SampleRate      uint32   `mapstructure:"sample_rate"`
	DisableGCRuns   bool     `mapstructure:"disable_gc_runs"`
	ProfileTypes    []string `mapstructure:"profile_types"`
}

func NewConfig() (*Configuration, error) {
	// .env is optional and only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/erpdesk")

	v.SetEnvPrefix("ERPDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
		fmt.Printf("No config file found, using defaults and environment\n")
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	defaults := GetDefaultConfig()
	v.SetDefault("deployment.mode", defaults.Deployment.Mode)
	v.SetDefault("server.address", defaults.Server.Address)
	v.SetDefault("server.rate_limit.rps", defaults.Server.RateLimit.RPS)
	v.SetDefault("server.rate_limit.burst", defaults.Server.RateLimit.Burst)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("sequence.prefix", defaults.Sequence.Prefix)
	v.SetDefault("sequence.width", defaults.Sequence.Width)
	v.SetDefault("sequence.year_key", defaults.Sequence.YearKey)
	v.SetDefault("sequence.seq_key", defaults.Sequence.SeqKey)
	v.SetDefault("kvstore.backend", defaults.KVStore.Backend)
	v.SetDefault("kvstore.sqlite.path", defaults.KVStore.SQLite.Path)
	v.SetDefault("kvstore.connect_retries", defaults.KVStore.ConnectRetries)
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("blob.backend", defaults.Blob.Backend)
	v.SetDefault("blob.public_base_url", defaults.Blob.PublicBaseURL)
	v.SetDefault("pricing.vat_rate", defaults.Pricing.VATRate)
	v.SetDefault("events.output_buffer", defaults.Events.OutputBuffer)
	v.SetDefault("events.max_retries", defaults.Events.MaxRetries)
	v.SetDefault("events.initial_interval", defaults.Events.InitialInterval)
	v.SetDefault("events.max_interval", defaults.Events.MaxInterval)
	v.SetDefault("events.multiplier", defaults.Events.Multiplier)
	v.SetDefault("events.max_elapsed_time", defaults.Events.MaxElapsedTime)
	v.SetDefault("seed.enabled", defaults.Seed.Enabled)
	v.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.environment", defaults.Sentry.Environment)
	v.SetDefault("sentry.sample_rate", defaults.Sentry.SampleRate)
	v.SetDefault("pyroscope.enabled", false)
	v.SetDefault("pyroscope.application_name", defaults.Pyroscope.ApplicationName)
	v.SetDefault("pyroscope.sample_rate", defaults.Pyroscope.SampleRate)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Pricing.VATRate != "" {
		if _, err := decimal.NewFromString(c.Pricing.VATRate); err != nil {
			return fmt.Errorf("pricing.vat_rate: %w", err)
		}
	}
	if c.Blob.Backend == types.BlobBackendS3 && c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required when blob.backend is s3")
	}
	if c.Sentry.Enabled && c.Sentry.DSN == "" {
		return fmt.Errorf("sentry.dsn is required when sentry is enabled")
	}
	if c.Pyroscope.Enabled && c.Pyroscope.ServerAddress == "" {
		return fmt.Errorf("pyroscope.server_address is required when pyroscope is enabled")
	}
	return nil
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for tests, scripts and other non-web entry points.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server: ServerConfig{
			Address:        ":8080",
			RateLimit:      RateLimitConfig{RPS: 50, Burst: 100},
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Sequence: SequenceConfig{
			Prefix:  "INV",
			Width:   4,
			YearKey: "invoice_year",
			SeqKey:  "invoice_seq",
		},
		KVStore: KVStoreConfig{
			Backend:        types.KVBackendMemory,
			SQLite:         SQLiteConfig{Path: "erpdesk.db"},
			ConnectRetries: 5,
		},
		Blob:    BlobConfig{Backend: types.BlobBackendMemory, PublicBaseURL: "/files"},
		Pricing: PricingConfig{VATRate: "0.05"},
		Events: EventsConfig{
			OutputBuffer:    100,
			MaxRetries:      3,
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2,
			MaxElapsedTime:  10 * time.Second,
		},
		Seed:      SeedConfig{Enabled: true},
		Sentry:    SentryConfig{Environment: "local", SampleRate: 1.0},
		Pyroscope: PyroscopeConfig{ApplicationName: "erpdesk", SampleRate: 100},
	}
}

// GetVATRate returns the configured flat VAT rate, defaulting to 5%.
func (c PricingConfig) GetVATRate() decimal.Decimal {
	rate, err := decimal.NewFromString(c.VATRate)
	if err != nil {
		return decimal.NewFromFloat(0.05)
	}
	return rate
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
