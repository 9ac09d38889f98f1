package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite:///./database.db", cfg.Database.URL)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, "docshelf", cfg.JWT.Issuer)
	assert.Equal(t, 10, cfg.Password.BcryptCost)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedHeaders)
	assert.True(t, cfg.CORS.AllowCredentials)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.WeakSecret())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("POSTGRES_URL", "postgres://docs:docs@db:5432/docs")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_MAX_CONNS", "12")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenTTL)
	assert.Equal(t, "postgres://docs:docs@db:5432/docs", cfg.Database.URL)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, int32(12), cfg.Database.MaxConns)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.WeakSecret())
}

func TestDatabaseURLPrecedence(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "sqlite:///./primary.db")
	t.Setenv("POSTGRES_URL", "postgres://ignored")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite:///./primary.db", cfg.Database.URL)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{URL: "sqlite:///x.db"},
		JWT:      JWTConfig{Secret: "s", AccessTokenTTL: time.Minute},
	}
	require.NoError(t, cfg.Validate())

	cfg.JWT.AccessTokenTTL = 0
	assert.Error(t, cfg.Validate())
}
