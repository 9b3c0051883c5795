package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8081, cfg.Server.Port)
	require.Equal(t, 587, cfg.SMTP.Port)
	require.Equal(t, "Eksejabula <noreply@eksejabula.com>", cfg.SMTP.From)
	require.Equal(t, "smtp", cfg.Email.Provider)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	require.Contains(t, cfg.CORS.AllowedHeaders, "authorization")
	require.Contains(t, cfg.CORS.AllowedHeaders, "x-client-info")
	require.Contains(t, cfg.CORS.AllowedHeaders, "apikey")
	require.Equal(t, 3, cfg.ContactRateLimit.MaxPerHour)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("EKSEMAIL_SMTP_HOST", "smtp.sendgrid.net")
	t.Setenv("EKSEMAIL_SMTP_PORT", "2525")
	t.Setenv("EKSEMAIL_SMTP_USERNAME", "apikey")
	t.Setenv("EKSEMAIL_SMTP_PASSWORD", "s3cret")
	t.Setenv("EKSEMAIL_SMTP_FROM", "Shop <orders@example.com>")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "smtp.sendgrid.net", cfg.SMTP.Host)
	require.Equal(t, 2525, cfg.SMTP.Port)
	require.Equal(t, "apikey", cfg.SMTP.Username)
	require.Equal(t, "s3cret", cfg.SMTP.Password)
	require.Equal(t, "Shop <orders@example.com>", cfg.SMTP.From)
}

func TestLoadAPIKeysFromEnv(t *testing.T) {
	t.Setenv("EKSEMAIL_AUTH_API_KEYS", "key-one, key-two")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
}
