// Package config provides configuration management for the aquarealty service.
// Values come from an optional YAML file overlaid by environment variables
// (a `.env` file is loaded into the environment by main before this runs).
// Required variables, defaults and parse failures are all collected so that a
// misconfigured deployment reports every problem at once.
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/aquarealty/apperror"
)

// DatabaseConfig holds the PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int
}

// URL renders the configuration as a postgres:// connection string.
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// AuthConfig holds credential hashing and token settings.
type AuthConfig struct {
	JWTSecret     string        // Secret key for signing tokens; rotating it invalidates all issued tokens
	TokenDuration time.Duration // Lifetime of a login token
	Issuer        string        // `iss` claim
	BcryptCost    int           // Work factor for password digests
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// LogConfig controls the slog handler built at startup.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *DatabaseConfig
	Auth   *AuthConfig
	Server *ServerConfig
	Log    *LogConfig
}

// source wraps the koanf instance with the collect-errors getters.
type source struct {
	k      *koanf.Koanf
	errors []string
}

func (s *source) required(key string) string {
	if !s.k.Exists(key) || s.k.String(key) == "" {
		s.errors = append(s.errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return s.k.String(key)
}

func (s *source) optional(key, defaultValue string) string {
	if s.k.Exists(key) {
		return s.k.String(key)
	}
	return defaultValue
}

func (s *source) optionalInt(key string, defaultValue int) int {
	if !s.k.Exists(key) {
		return defaultValue
	}
	valueStr := s.k.String(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		s.errors = append(s.errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return value
}

func (s *source) optionalDuration(key string, defaultValue time.Duration) time.Duration {
	if !s.k.Exists(key) {
		return defaultValue
	}
	valueStr := s.k.String(key)
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		s.errors = append(s.errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return value
}

// LoadConfig builds an AppConfig. configFile may be empty; when set, its
// YAML keys (the same names as the environment variables) are loaded first
// and the environment overrides them.
func LoadConfig(configFile string) (*AppConfig, error) {
	k := koanf.New(".")

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, apperror.NewConfigError(fmt.Sprintf("failed to load config file %s", configFile), err)
		}
	}

	// Keys are kept verbatim (DB_HOST stays DB_HOST) so the file and the
	// environment share one namespace.
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, apperror.NewConfigError("failed to load environment", err)
	}

	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*AppConfig, error) {
	s := &source{k: k}

	db := &DatabaseConfig{
		User:     s.required("DB_USER"),
		Password: s.required("DB_PASSWORD"),
		DBName:   s.required("DB_NAME"),
		Host:     s.optional("DB_HOST", "localhost"),
		Port:     s.optionalInt("DB_PORT", 5432),
		SSLMode:  s.optional("DB_SSLMODE", "disable"),
		MaxConns: s.optionalInt("DB_MAX_CONNS", 10),
	}
	if db.MaxConns < 1 {
		s.errors = append(s.errors, fmt.Sprintf("DB_MAX_CONNS must be at least 1, got %d", db.MaxConns))
	}

	auth := &AuthConfig{
		JWTSecret:     s.required("JWT_SECRET"),
		TokenDuration: s.optionalDuration("JWT_TOKEN_DURATION", 24*time.Hour),
		Issuer:        s.optional("JWT_ISSUER", "aquarealty"),
		BcryptCost:    s.optionalInt("BCRYPT_SALT_ROUNDS", 10),
	}
	if auth.BcryptCost < bcrypt.MinCost || auth.BcryptCost > bcrypt.MaxCost {
		s.errors = append(s.errors, fmt.Sprintf("BCRYPT_SALT_ROUNDS must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, auth.BcryptCost))
	}

	server := &ServerConfig{Port: s.optional("PORT", "8080")}

	logCfg := &LogConfig{
		Level:  strings.ToLower(s.optional("LOG_LEVEL", "info")),
		Format: strings.ToLower(s.optional("LOG_FORMAT", "text")),
	}

	if len(s.errors) > 0 {
		return nil, apperror.NewConfigError("configuration errors:\n- "+strings.Join(s.errors, "\n- "), nil)
	}

	return &AppConfig{
		DB:     db,
		Auth:   auth,
		Server: server,
		Log:    logCfg,
	}, nil
}
