package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Database configuration
	Database DatabaseConfig `mapstructure:"database"`

	// JWT configuration
	JWT JWTConfig `mapstructure:"jwt"`

	// Password hashing configuration
	Password PasswordConfig `mapstructure:"password"`

	// CORS configuration
	CORS CORSConfig `mapstructure:"cors"`

	// Logging configuration
	Log LogConfig `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds database-related configuration.
// URL selects the engine: sqlite:///path for the file-based store,
// postgres:// or postgresql:// for a pooled server.
type DatabaseConfig struct {
	URL         string        `mapstructure:"url"`
	MaxConns    int32         `mapstructure:"max_conns"`
	MinConns    int32         `mapstructure:"min_conns"`
	MaxLifetime time.Duration `mapstructure:"max_lifetime"`
	ConnTimeout time.Duration `mapstructure:"conn_timeout"`
	Debug       bool          `mapstructure:"debug"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret         string        `mapstructure:"secret"`
	Issuer         string        `mapstructure:"issuer"`
	AccessTokenTTL time.Duration `mapstructure:"access_ttl"`
}

// PasswordConfig holds the bcrypt work factor
type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// MinSecretLength is the shortest signing secret that does not trigger a startup warning.
const MinSecretLength = 32

// envBindings maps config keys to the environment variables that feed them.
// The first variable found wins.
var envBindings = map[string][]string{
	"server.port":             {"SERVER_PORT"},
	"server.read_timeout":     {"SERVER_READ_TIMEOUT"},
	"server.write_timeout":    {"SERVER_WRITE_TIMEOUT"},
	"server.idle_timeout":     {"SERVER_IDLE_TIMEOUT"},
	"server.shutdown_timeout": {"SERVER_SHUTDOWN_TIMEOUT"},
	"database.url":            {"DATABASE_URL", "POSTGRES_URL"},
	"database.max_conns":      {"DB_MAX_CONNS"},
	"database.min_conns":      {"DB_MIN_CONNS"},
	"database.max_lifetime":   {"DB_MAX_LIFETIME"},
	"database.conn_timeout":   {"DB_CONN_TIMEOUT"},
	"database.debug":          {"DB_DEBUG"},
	"jwt.secret":              {"JWT_SECRET"},
	"jwt.issuer":              {"JWT_ISSUER"},
	"jwt.access_ttl":          {"JWT_ACCESS_TTL"},
	"password.bcrypt_cost":    {"BCRYPT_COST"},
	"cors.allowed_origins":    {"CORS_ALLOWED_ORIGINS"},
	"cors.allowed_methods":    {"CORS_ALLOWED_METHODS"},
	"cors.allowed_headers":    {"CORS_ALLOWED_HEADERS"},
	"cors.allow_credentials":  {"CORS_ALLOW_CREDENTIALS"},
	"log.level":               {"LOG_LEVEL"},
	"log.format":              {"LOG_FORMAT"},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("database.url", "sqlite:///./database.db")
	v.SetDefault("database.max_conns", 5)
	v.SetDefault("database.min_conns", 0)
	v.SetDefault("database.max_lifetime", time.Hour)
	v.SetDefault("database.conn_timeout", 10*time.Second)
	v.SetDefault("database.debug", false)

	v.SetDefault("jwt.issuer", "docshelf")
	v.SetDefault("jwt.access_ttl", 30*time.Minute)

	v.SetDefault("password.bcrypt_cost", 10)

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://localhost:3001,http://localhost:5173")
	v.SetDefault("cors.allowed_methods", "GET,POST,PUT,DELETE,OPTIONS")
	v.SetDefault("cors.allowed_headers", "*")
	v.SetDefault("cors.allow_credentials", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load loads configuration from .env, an optional config.yml and environment variables
func Load() (*Config, error) {
	// Load .env file; a missing file is fine, the environment may already be set
	if err := godotenv.Load("../.env"); err != nil {
		_ = godotenv.Load(".env")
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// env values arrive as one comma separated string
	cfg.CORS.AllowedOrigins = stringList(v, "cors.allowed_origins")
	cfg.CORS.AllowedMethods = stringList(v, "cors.allowed_methods")
	cfg.CORS.AllowedHeaders = stringList(v, "cors.allowed_headers")

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.JWT.AccessTokenTTL <= 0 {
		return errors.New("JWT_ACCESS_TTL must be positive")
	}
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

// WeakSecret reports whether the signing secret is shorter than MinSecretLength.
func (c *Config) WeakSecret() bool {
	return len(c.JWT.Secret) < MinSecretLength
}

func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	var parts []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
