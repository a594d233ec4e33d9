package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/utafrali/mangomarket/pkg/config"
)

// State backends.
const (
	BackendRedis = "redis"
	BackendFile  = "file"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"STOREFRONT_HTTP_PORT" envDefault:"8080"`

	// Per-device state: "redis" or "file"
	StateBackend string `env:"STATE_BACKEND" envDefault:"redis"`
	StateDir     string `env:"STATE_DIR" envDefault:"./data"`

	// Redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Checkout draft and cart TTL in hours (default: 7 days)
	StateTTL int `env:"STATE_TTL_HOURS" envDefault:"168"`

	// Draft sweeper schedule for the file backend (cron spec)
	DraftSweepSchedule string `env:"DRAFT_SWEEP_SCHEDULE" envDefault:"@hourly"`

	// Simulated payment processing
	OrderProcessingDelayMs int     `env:"ORDER_PROCESSING_DELAY_MS" envDefault:"2000"`
	OrderFailureRate       float64 `env:"ORDER_FAILURE_RATE" envDefault:"0"`

	// Kafka
	KafkaEnabled bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" envSeparator:","`

	// CORS
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// OpenTelemetry
	OTELEnabled    bool    `env:"OTEL_ENABLED" envDefault:"false"`
	OTELEndpoint   string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	OTELSampleRate float64 `env:"OTEL_SAMPLE_RATE" envDefault:"1.0"`

	// Pprof debug endpoints (IP allowlist in CIDR notation)
	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envDefault:"10.0.0.0/8,172.16.0.0/12,192.168.0.0/16,127.0.0.0/8,::1/128" envSeparator:","`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	switch c.StateBackend {
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis state backend")
		}
	case BackendFile:
		if c.StateDir == "" {
			return fmt.Errorf("STATE_DIR is required for the file state backend")
		}
	default:
		return fmt.Errorf("STATE_BACKEND must be %q or %q, got %q", BackendRedis, BackendFile, c.StateBackend)
	}
	if c.StateTTL < 1 {
		return fmt.Errorf("STATE_TTL_HOURS must be positive, got %d", c.StateTTL)
	}
	if c.OrderProcessingDelayMs < 0 {
		return fmt.Errorf("ORDER_PROCESSING_DELAY_MS must not be negative, got %d", c.OrderProcessingDelayMs)
	}
	if c.OrderFailureRate < 0 || c.OrderFailureRate > 1.0 {
		return fmt.Errorf("ORDER_FAILURE_RATE must be between 0.0 and 1.0, got %f", c.OrderFailureRate)
	}
	if c.KafkaEnabled && len(c.KafkaBrokers) == 0 {
		return fmt.Errorf("KAFKA_BROKERS is required")
	}
	if c.OTELSampleRate < 0 || c.OTELSampleRate > 1.0 {
		return fmt.Errorf("OTEL_SAMPLE_RATE must be between 0.0 and 1.0, got %f", c.OTELSampleRate)
	}
	return nil
}

// StateTTLDuration returns StateTTL as a duration.
func (c *Config) StateTTLDuration() time.Duration {
	return time.Duration(c.StateTTL) * time.Hour
}

// OrderProcessingDelay returns OrderProcessingDelayMs as a duration.
func (c *Config) OrderProcessingDelay() time.Duration {
	return time.Duration(c.OrderProcessingDelayMs) * time.Millisecond
}
