package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel  int      `env:"LOG_LEVEL" envDefault:"0"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"text"`
	HTTP      HTTP     `envPrefix:"HTTP_"`
	Database  Database `envPrefix:"DATABASE_"`
	KDF       KDF      `envPrefix:"KDF_"`
	JWT       JWT      `envPrefix:"JWT_"`
	Cookie    Cookie   `envPrefix:"COOKIE_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Address            string        `env:"ADDRESS" envDefault:":3333"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	AllowedOrigins     []string      `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Database contains database connection parameters. DSN wins over URL.
type Database struct {
	DSN string `env:"DSN"`
	URL string `env:"URL"`
}

// KDF contains argon2id parameters for password hashing.
type KDF struct {
	Time   uint32 `env:"TIME" envDefault:"1"`
	MemKiB uint32 `env:"MEM" envDefault:"65536"`
	Par    uint8  `env:"PAR" envDefault:"4"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret    string        `env:"SECRET,required,notEmpty"`
	AccessTTL time.Duration `env:"ACCESS_TTL" envDefault:"15m"`
}

// Cookie contains access token cookie parameters.
type Cookie struct {
	Secure bool `env:"SECURE" envDefault:"true"`
}

// ErrMissingDSN is returned when neither DATABASE_DSN nor DATABASE_URL is set.
var ErrMissingDSN = errors.New("DATABASE_DSN or DATABASE_URL is required")

// NewConfig loads configuration from an optional .env file and environment variables.
func NewConfig() (*Config, error) {
	// a missing .env is fine, real environment variables always win
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DSN returns the database connection string.
func (c *Config) DSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}
	return c.Database.URL
}

func (c *Config) validate() error {
	if c.DSN() == "" {
		return ErrMissingDSN
	}
	if c.JWT.AccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be positive, got %s", c.JWT.AccessTTL)
	}
	if c.KDF.Time == 0 || c.KDF.MemKiB == 0 || c.KDF.Par == 0 {
		return fmt.Errorf("KDF parameters must be positive")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
