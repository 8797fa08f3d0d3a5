package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config is the process configuration, read once from the environment at
// startup. A .env file is loaded first by godotenv/autoload in main.
type Config struct {
	Port        int
	StoreDriver string

	DatabaseURL string

	JWTSecret  string
	JWTJWKSURL string
	JWTIssuer  string
	AdminRole  string

	PaymentGatewayDelay   time.Duration
	PaymentGatewayTimeout time.Duration

	RegistryCacheSize int
	RegistryCacheTTL  time.Duration
}

// Load reads the environment. Unset variables take their defaults; a set but
// malformed value is an error.
func Load() (Config, error) {
	cfg := Config{
		StoreDriver: strings.ToLower(getenvDefault("STORE_DRIVER", StoreDynamoDB)),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTJWKSURL:  os.Getenv("JWT_JWKS_URL"),
		JWTIssuer:   os.Getenv("JWT_ISSUER"),
		AdminRole:   getenvDefault("ADMIN_ROLE", "admin"),
	}

	var err error
	if cfg.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.PaymentGatewayDelay, err = getenvDuration("PAYMENT_GATEWAY_DELAY", 2*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PaymentGatewayTimeout, err = getenvDuration("PAYMENT_GATEWAY_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.RegistryCacheSize, err = getenvInt("REGISTRY_CACHE_SIZE", 256); err != nil {
		return Config{}, err
	}
	if cfg.RegistryCacheTTL, err = getenvDuration("REGISTRY_CACHE_TTL", 5*time.Minute); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case StoreDynamoDB, StoreMemory:
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL is required when STORE_DRIVER=%s", StorePostgres)
		}
	default:
		return fmt.Errorf("config: unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.JWTSecret == "" && c.JWTJWKSURL == "" {
		return fmt.Errorf("config: JWT_SECRET or JWT_JWKS_URL must be set")
	}
	if c.PaymentGatewayTimeout <= c.PaymentGatewayDelay {
		return fmt.Errorf("config: PAYMENT_GATEWAY_TIMEOUT (%s) must exceed PAYMENT_GATEWAY_DELAY (%s)", c.PaymentGatewayTimeout, c.PaymentGatewayDelay)
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("config: %s must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("config: %s must be a duration like 2s, got %q", key, v)
	}
	return d, nil
}
