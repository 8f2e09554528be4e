// Package config carries the process-wide configuration. It is built once
// at startup and passed explicitly to every component; nothing reads the
// environment after Load returns.
package config

import (
	"os"
	"strconv"

	"accredparser/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const DefaultDataURL = "https://islod.obrnadzor.gov.ru/accredreestr/opendata/"

type Config struct {
	DataURL   string `validate:"required,url"`
	CacheDir  string `validate:"required"`
	StateFile string `validate:"required"`
	DBFile    string `validate:"required"`
	BatchSize int    `validate:"required,gt=0"`
	Mode      string `validate:"required,oneof=full higher"`
}

// Load reads configuration from the environment, falling back to a local
// .env file in development. Every value has a default, so an empty
// environment yields a working config.
func Load() *Config {
	if os.Getenv("GO_ENV") != "production" {
		// Missing .env is fine, env vars alone are enough.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Warnf("Failed to load .env: %v", err)
		}
	}

	cfg := &Config{
		DataURL:   envOr("ACCRED_DATA_URL", DefaultDataURL),
		CacheDir:  envOr("ACCRED_CACHE_DIR", "cache"),
		StateFile: envOr("ACCRED_STATE_FILE", "state.json"),
		DBFile:    envOr("ACCRED_DB_FILE", "education.db"),
		BatchSize: envIntOr("ACCRED_BATCH_SIZE", 100),
		Mode:      envOr("ACCRED_MODE", "full"),
	}
	utils.Sanitize(&cfg.DataURL, &cfg.CacheDir, &cfg.StateFile, &cfg.DBFile, &cfg.Mode)
	return cfg
}

func (c *Config) Validate(validate *validator.Validate) error {
	return validate.Struct(c)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("Invalid %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}
