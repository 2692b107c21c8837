package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	AppEnv    string
	LogLevel  string
	LogFormat string

	// ProcessingDelay is the whole duration of the "processing" animation.
	ProcessingDelay time.Duration
	Color           bool

	InstantTransferBalance decimal.Decimal
	CreditLineLimit        decimal.Decimal
}

var (
	DefaultInstantTransferBalance = decimal.RequireFromString("30.00")
	DefaultCreditLineLimit        = decimal.RequireFromString("1000.00")
)

// Load reads an optional .env file and then the process environment.
func Load() Config {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	_, noColor := os.LookupEnv("NO_COLOR")

	return Config{
		AppEnv:                 getEnv("APP_ENV", "dev"),
		LogLevel:               getEnv("LOG_LEVEL", "warn"),
		LogFormat:              getEnv("LOG_FORMAT", "json"),
		ProcessingDelay:        getEnvDuration("PROCESSING_DELAY", 1200*time.Millisecond),
		Color:                  !noColor,
		InstantTransferBalance: getEnvDecimal("INSTANT_TRANSFER_BALANCE", DefaultInstantTransferBalance),
		CreditLineLimit:        getEnvDecimal("CREDIT_LINE_LIMIT", DefaultCreditLineLimit),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}

	return d
}

func getEnvDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return def
	}

	return d
}
