package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config holds the server settings, all read from the environment
type Config struct {
	ListeningIP string `env:"LISTENINGIP" envDefault:"0.0.0.0"`
	HTTPPort    string `env:"HTTPPORT" envDefault:"8080"`

	MongoURI     string `env:"MONGOCONNECTIONSTRING" envDefault:"mongodb://localhost:27017"`
	DatabaseName string `env:"DATABASENAME" envDefault:"catalog"`
	// mongo or memory
	StoreBackend string `env:"STORE_BACKEND" envDefault:"mongo"`
	// YAML fixture loaded into an empty store at startup
	SeedFile string `env:"SEED_FILE"`

	// empty means stdout only
	LogFile string `env:"LOG_FILE"`

	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the given .env files (missing ones are fine) and then parses the environment.
// Variables already set in the environment win over the .env values.
func Load(envFiles ...string) (*Config, error) {
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendMongo, BackendMemory:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q, expected %q or %q", c.StoreBackend, BackendMongo, BackendMemory)
	}

	if c.HTTPPort == "" {
		return fmt.Errorf("HTTPPORT must not be empty")
	}
	if c.HousekeepingInterval <= 0 {
		return fmt.Errorf("HOUSEKEEPING_INTERVAL must be positive, got %s", c.HousekeepingInterval)
	}
	return nil
}

// Addr returns the host:port the HTTP server listens on
func (c *Config) Addr() string {
	return c.ListeningIP + ":" + c.HTTPPort
}
