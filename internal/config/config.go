// Package config loads the chainsentry settings from the environment.
//
// Variables are read with the CHAINSENTRY_ prefix (for example
// CHAINSENTRY_RPC_URL). A .env file, when present, is loaded first and never
// overrides variables already set in the environment.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/gabapcia/chainsentry/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name.
const Prefix = "chainsentry"

// DefaultEnvFile is the dotenv file loaded when Load is given no file.
const DefaultEnvFile = ".env"

// Config holds every setting needed to run the detection pipeline.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"chainsentry" validate:"required"`

	// Node
	RPCURL       string        `envconfig:"RPC_URL" validate:"omitempty,url"`
	ChainID      int64         `envconfig:"CHAIN_ID" default:"56" validate:"gt=0"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"3s" validate:"gt=0"`

	// Explorer, signature and label APIs
	ExplorerURL     string        `envconfig:"EXPLORER_URL" validate:"omitempty,url"`
	ExplorerAPIKeys []string      `envconfig:"EXPLORER_API_KEYS"`
	ExplorerRPS     float64       `envconfig:"EXPLORER_RPS" default:"5" validate:"gt=0"`
	SignatureURL    string        `envconfig:"SIGNATURE_URL" validate:"omitempty,url"`
	LabelURL        string        `envconfig:"LABEL_URL" validate:"omitempty,url"`
	HTTPTimeout     time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s" validate:"gt=0"`

	// Fetch policy
	FetchAttempts  uint          `envconfig:"FETCH_ATTEMPTS" default:"3" validate:"gte=1"`
	FetchDelay     time.Duration `envconfig:"FETCH_DELAY" default:"1s"`
	ErrorCapacity  int           `envconfig:"ERROR_CAPACITY" default:"1000" validate:"gte=1"`
	HistoryOffset  int           `envconfig:"HISTORY_OFFSET" default:"1000" validate:"gte=1"`
	FanOutLimit    int           `envconfig:"FAN_OUT_LIMIT" default:"5" validate:"gte=1"`
	ThresholdsFile string        `envconfig:"THRESHOLDS_FILE"`
	MinVictims     int           `envconfig:"MIN_VICTIMS" default:"3" validate:"gte=2"`

	// Redis; state is kept in memory when RedisAddr is empty.
	RedisAddr     string `envconfig:"REDIS_ADDR" validate:"omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	// Observability
	MetricsAddr       string `envconfig:"METRICS_ADDR" default:":9090"`
	TelemetryEnabled  bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	TelemetryEndpoint string `envconfig:"TELEMETRY_ENDPOINT" validate:"omitempty,hostname_port"`
	TelemetryInsecure bool   `envconfig:"TELEMETRY_INSECURE" default:"false"`
}

// Load reads the given dotenv files (DefaultEnvFile when none is given), then
// the environment, and validates the result. Missing dotenv files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
