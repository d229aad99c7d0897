package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings of both the status server and the login client.
type Config struct {
	AppHost         string        `env:"APP_HOST" envDefault:"localhost"`
	AppPort         string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"APP_LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	MongoEnabled        bool          `env:"MONGO_ENABLED" envDefault:"true"`
	MongoURI            string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/test"`
	MongoDB             string        `env:"MONGO_DB"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`

	LoginBaseURL string        `env:"LOGIN_BASE_URL" envDefault:"http://localhost:8080"`
	LoginTimeout time.Duration `env:"LOGIN_TIMEOUT" envDefault:"15s"`
}

// Load reads optional KEY=VALUE pairs from path into the environment and
// parses the environment into a Config. Variables already set in the
// environment win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Addr is the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}
