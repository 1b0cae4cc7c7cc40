package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/lifeboard/internal/logging"
	"github.com/terraincognita07/lifeboard/internal/security"
)

const (
	minSecretKeyLength       = 32
	generatedSecretKeyLength = 48
	secretKeyAlphabet        = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var placeholderSecretKeys = []string{
	"change_me_in_production",
	"replace_with_at_least_32_random_characters",
	"your-secret-key-here",
}

type Config struct {
	Port             int           `env:"PORT" envDefault:"8080"`
	DBPath           string        `env:"DB_PATH" envDefault:"data/lifeboard.db"`
	SecretKey        string        `env:"SECRET_KEY"`
	Timezone         string        `env:"TZ" envDefault:"UTC"`
	CookieSecure     bool          `env:"COOKIE_SECURE" envDefault:"false"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFile          string        `env:"LOG_FILE"`
	CORSOrigins      []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
	MetricsEnabled   bool          `env:"METRICS_ENABLED" envDefault:"true"`
	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginWindow      time.Duration `env:"LOGIN_WINDOW" envDefault:"15m"`

	// SecretKeyGenerated is set when SECRET_KEY was empty and a per-process
	// key was drawn instead. Sessions then end with the process.
	SecretKeyGenerated bool
}

// Load reads envFile when it exists, then decodes the environment. Values
// already present in the environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if strings.TrimSpace(cfg.SecretKey) == "" {
		secret, err := security.RandomString(generatedSecretKeyLength, secretKeyAlphabet)
		if err != nil {
			return Config{}, fmt.Errorf("generate secret key: %w", err)
		}
		cfg.SecretKey = secret
		cfg.SecretKeyGenerated = true
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (cfg Config) Validate() error {
	var problems []error

	if cfg.Port < 1 || cfg.Port > 65535 {
		problems = append(problems, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port))
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		problems = append(problems, errors.New("DB_PATH must not be empty"))
	}
	if err := validateSecretKey(cfg.SecretKey); err != nil {
		problems = append(problems, err)
	}
	if cfg.SessionTTL <= 0 {
		problems = append(problems, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL))
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	if cfg.LoginMaxAttempts < 1 {
		problems = append(problems, fmt.Errorf("LOGIN_MAX_ATTEMPTS must be at least 1, got %d", cfg.LoginMaxAttempts))
	}
	if cfg.LoginWindow <= 0 {
		problems = append(problems, fmt.Errorf("LOGIN_WINDOW must be positive, got %s", cfg.LoginWindow))
	}

	return errors.Join(problems...)
}

func validateSecretKey(secret string) error {
	trimmed := strings.TrimSpace(secret)
	for _, placeholder := range placeholderSecretKeys {
		if strings.EqualFold(trimmed, placeholder) {
			return errors.New("SECRET_KEY uses an insecure placeholder value")
		}
	}
	if len(trimmed) < minSecretKeyLength {
		return fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return nil
}

// Location resolves TZ. An unknown zone falls back to UTC with ok false.
func (cfg Config) Location() (*time.Location, bool) {
	location, err := time.LoadLocation(strings.TrimSpace(cfg.Timezone))
	if err != nil {
		return time.UTC, false
	}
	return location, true
}

func (cfg Config) ListenAddress() string {
	return fmt.Sprintf(":%d", cfg.Port)
}

func (cfg Config) Logging() logging.Config {
	return logging.Config{Level: cfg.LogLevel, File: cfg.LogFile}
}
