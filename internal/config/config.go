package config // package config loads application configuration from environment variables

import (
	"errors"  // errors joins missing-variable failures
	"fmt"     // fmt formats configuration errors
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/joho/godotenv" // godotenv loads an optional .env file

	"github.com/logi101/eventflow-seating/internal/logging"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Optional concerns (cache, rate limiting, Redis,
// queue, seating defaults) have their own loaders with defaults.
type Config struct {
	Env       string // application environment (e.g. "dev", "prod")
	Port      string // HTTP port to listen on
	DBUser    string // database username
	DBPass    string // database password (optional)
	DBHost    string // database host address
	DBPort    string // database port number
	DBName    string // database name
	JWTSecret string // secret used to verify JWTs
	Migrate   bool   // create missing tables on start
	LogLevel  string // zerolog level name
	LogFormat string // json or console
}

// Load reads an optional .env file, then configuration values from the
// environment.  Missing or malformed required variables are fatal.
func Load() Config {
	_ = godotenv.Load() // a missing .env is fine; real env vars win either way
	cfg, err := Parse()
	if err != nil {
		logging.For("config").Fatal().Err(err).Msg("invalid configuration")
	}
	return cfg
}

// Parse builds a Config from the current environment.  Every missing
// required variable is reported, not just the first.
func Parse() (Config, error) {
	var errs []error
	required := func(key string) string {
		v, err := must(key)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}
	cfg := Config{
		Env:       required("APP_ENV"),          // environment (dev/test/prod)
		Port:      required("APP_PORT"),         // port to bind the HTTP server
		DBUser:    required("DB_USER"),          // database user
		DBPass:    os.Getenv("DB_PASS"),         // database password (empty allowed)
		DBHost:    required("DB_HOST"),          // database host
		DBPort:    required("DB_PORT"),          // database port
		DBName:    required("DB_NAME"),          // database name
		JWTSecret: required("JWT_SECRET"),       // secret used for verifying JWTs
		LogLevel:  envStr("LOG_LEVEL", "info"),  // log level
		LogFormat: envStr("LOG_FORMAT", "json"), // log format
		Migrate:   envBool("DB_AUTO_MIGRATE", false),
	}
	if cfg.Port != "" {
		if _, err := mustInt("APP_PORT"); err != nil {
			errs = append(errs, err)
		}
	}
	return cfg, errors.Join(errs...)
}

// must retrieves the value of a required environment variable.
func must(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required env var: %s", key)
	}
	return v, nil
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) (int, error) {
	s, err := must(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid int for %s: %q", key, s)
	}
	return n, nil
}
