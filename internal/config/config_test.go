package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gayoung/portfolio/internal/theme"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GIN_MODE", "DB_PATH", "SITE_CONFIG", "LOG_LEVEL", "ALERT_TTL",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL", "ADMIN_USERNAME", "ADMIN_PASSWORD"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "portfolio.db", cfg.DBPath)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, "587", cfg.SMTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.AlertTTL)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ALERT_TTL", "5m")
	t.Setenv("ADMIN_USERNAME", "owner")

	cfg := FromEnv()
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 5*time.Minute, cfg.AlertTTL)
	assert.Equal(t, "owner", cfg.Admin.Username)
}

func TestFromEnv_BadTTL(t *testing.T) {
	t.Setenv("ALERT_TTL", "soon")
	assert.Equal(t, 30*time.Minute, FromEnv().AlertTTL)
}

func TestAddr_HostPort(t *testing.T) {
	assert.Equal(t, "127.0.0.1:8080", Config{Port: "127.0.0.1:8080"}.Addr())
}

func TestDefaultSite(t *testing.T) {
	s := DefaultSite()
	require.NoError(t, s.Validate())
	assert.Len(t, s.Projects, 5)
	assert.Len(t, s.Skills, 6)
	assert.Equal(t, "GaYoung_CV.pdf", s.Owner.CVName)
}

func TestLoadSite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[owner]
name = "Someone"
email = "someone@example.com"

[theme]
primary_main = "#112233"
`), 0o644))

	s, err := LoadSite(path)
	require.NoError(t, err)
	assert.Equal(t, "Someone", s.Owner.Name)
	assert.Len(t, s.Skills, 6, "unset tables keep their defaults")

	th := s.ApplyTheme(theme.Default())
	assert.Equal(t, "#112233", th.Colors.Primary.Main)
	assert.Equal(t, "#73a7fb", th.Colors.Primary.Light)
}

func TestLoadSite_Errors(t *testing.T) {
	dir := t.TempDir()

	s, err := LoadSite(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Equal(t, DefaultSite(), s)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[owner\n"), 0o644))
	_, err = LoadSite(bad)
	assert.ErrorContains(t, err, "parse site config")

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte(`
[theme]
primary_main = "blue"

[[skills]]
title_key = "X"
value = 120
`), 0o644))
	_, err = LoadSite(invalid)
	assert.ErrorContains(t, err, "primary_main")
	assert.ErrorContains(t, err, "out of range")
}
