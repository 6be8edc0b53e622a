package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordgrid/internal/game"
)

// Config is the server configuration, read from the environment.
//
// JOURNAL_ENABLED is the only switch for the SQLite journal. An empty DB_PATH
// falls back to its default rather than disabling anything.
type Config struct {
	Port           string         `env:"PORT" envDefault:"5175"`
	LogLevel       string         `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin   string         `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	JournalEnabled bool           `env:"JOURNAL_ENABLED" envDefault:"true"`
	DBPath         string         `env:"DB_PATH" envDefault:"./data/wordgrid.db"`
	Adjacency      game.Adjacency `env:"ADJACENCY" envDefault:"offset"`
	RequestTimeout time.Duration  `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// Load reads .env files (if present) and then parses the environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
