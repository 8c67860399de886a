package app

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reliefmap/reliefmap/internal/auth"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join("testdata")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, "debug", cfg.Server.LogLevel)

	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, "db.example.com", cfg.Database.Postgres.Host)
	require.Equal(t, 5433, cfg.Database.Postgres.Port)

	require.Equal(t, "file-secret", cfg.Auth.JWT.Secret)
	require.Equal(t, "reliefmap-staging", cfg.Auth.JWT.Issuer)
	require.Equal(t, 30*time.Minute, cfg.Auth.JWT.TTL)
	require.Equal(t, 168*time.Hour, cfg.Auth.Session.RefreshTTL)
	require.Equal(t, 64, cfg.Auth.Session.RefreshLength)

	require.Equal(t, "chief", cfg.Admin.Username)
	require.Equal(t, 30, cfg.Maintenance.AuditRetentionDays)
	require.Equal(t, "@every 30m", cfg.Maintenance.SessionSchedule)
	// Defaults fill anything the file leaves out.
	require.Equal(t, "@daily", cfg.Maintenance.AuditSchedule)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "info", cfg.Server.LogLevel)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, 15*time.Minute, cfg.Auth.JWT.TTL)
	require.Equal(t, 720*time.Hour, cfg.Auth.Session.RefreshTTL)
	require.Equal(t, "admin", cfg.Admin.Username)
	require.Equal(t, 90, cfg.Maintenance.AuditRetentionDays)
}

func TestAuthConfigConversions(t *testing.T) {
	cfg := AuthConfig{}

	jwtCfg := cfg.JWTServiceConfig()
	require.Equal(t, auth.DefaultAccessTokenTTL, jwtCfg.AccessTokenTTL)

	sessionCfg := cfg.SessionServiceConfig()
	require.Equal(t, auth.DefaultRefreshTokenTTL, sessionCfg.RefreshTokenTTL)
	require.Equal(t, 48, sessionCfg.RefreshLength)

	cfg.JWT.TTL = time.Hour
	cfg.Session.RefreshTTL = 24 * time.Hour
	cfg.Session.RefreshLength = 64
	require.Equal(t, time.Hour, cfg.JWTServiceConfig().AccessTokenTTL)
	require.Equal(t, 24*time.Hour, cfg.SessionServiceConfig().RefreshTokenTTL)
	require.Equal(t, 64, cfg.SessionServiceConfig().RefreshLength)
}
