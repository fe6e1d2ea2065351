// internal/config/config.go
//
// Environment-backed configuration. A .env file is loaded first when present
// (development convenience), then the struct is unmarshaled from the process
// environment. Every field has a usable default so the binary runs bare.

package config

import (
	"fmt"
	"os"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	DailySalt   string `env:"DAILY_SALT,default=local_dev_salt"`
	AnswersFile string `env:"WORDS_ANSWERS_FILE"`

	// NoColor follows the presence-based no-color convention: NO_COLOR set
	// to any value, including empty, disables color. Filled by Load.
	NoColor bool
}

// Load reads configuration from .env (if any) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	if _, err := env.UnmarshalFromEnviron(&c); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	_, c.NoColor = os.LookupEnv("NO_COLOR")
	return c, nil
}
