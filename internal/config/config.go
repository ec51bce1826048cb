package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingDBSettings is returned by RequireDB when connection settings are absent.
var ErrMissingDBSettings = errors.New("missing database settings")

const (
	defaultServerAddr     = ":8080"
	defaultExecuteTimeout = 10 * time.Second
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetDBUrl() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBExecuteTimeout() time.Duration
	GetServerAddr() string
	RequireDB() error
}

// Config holds all configuration for the application.
type Config struct {
	DBUrl            string
	DBNs             string
	DBDb             string
	DBUser           string
	DBPass           string
	DBExecuteTimeout time.Duration
	ServerAddr       string
}

var _ Provider = (*Config)(nil)

// New loads configuration from the environment, reading a .env file first
// when one is present.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	cfg := &Config{
		DBUrl:            os.Getenv("SURREAL_URL"),
		DBUser:           os.Getenv("SURREAL_USER"),
		DBPass:           os.Getenv("SURREAL_PASS"),
		DBNs:             os.Getenv("SURREAL_NS"),
		DBDb:             os.Getenv("SURREAL_DB"),
		DBExecuteTimeout: defaultExecuteTimeout,
		ServerAddr:       os.Getenv("SERVER_ADDR"),
	}

	if cfg.ServerAddr == "" {
		cfg.ServerAddr = defaultServerAddr
	}

	if raw := os.Getenv("DB_EXECUTE_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			log.Printf("Ignoring invalid DB_EXECUTE_TIMEOUT %q, using %s", raw, defaultExecuteTimeout)
		} else {
			cfg.DBExecuteTimeout = d
		}
	}

	return cfg
}

// RequireDB reports which SurrealDB settings are missing, if any.
func (c *Config) RequireDB() error {
	var missing []string
	if c.DBUrl == "" {
		missing = append(missing, "SURREAL_URL")
	}
	if c.DBNs == "" {
		missing = append(missing, "SURREAL_NS")
	}
	if c.DBDb == "" {
		missing = append(missing, "SURREAL_DB")
	}
	if len(missing) > 0 {
		return &missingError{vars: missing}
	}
	return nil
}

type missingError struct {
	vars []string
}

func (e *missingError) Error() string {
	return "required environment variables not set: " + strings.Join(e.vars, ", ")
}

func (e *missingError) Unwrap() error {
	return ErrMissingDBSettings
}

func (c *Config) GetDBUrl() string                   { return c.DBUrl }
func (c *Config) GetDBNs() string                    { return c.DBNs }
func (c *Config) GetDBDb() string                    { return c.DBDb }
func (c *Config) GetDBUser() string                  { return c.DBUser }
func (c *Config) GetDBPass() string                  { return c.DBPass }
func (c *Config) GetDBExecuteTimeout() time.Duration { return c.DBExecuteTimeout }
func (c *Config) GetServerAddr() string              { return c.ServerAddr }
