package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthConfig_Sanitize(t *testing.T) {
	cfg := AuthConfig{
		CookieName:        "  ",
		SessionTTL:        -time.Hour,
		RoleClaimPaths:    []string{" ", "role", ""},
		SubjectClaimPaths: []string{"sub "},
	}
	cfg.Sanitize()

	assert.Equal(t, "crm_session", cfg.CookieName)
	assert.Equal(t, 8*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"role"}, cfg.RoleClaimPaths)
	assert.Equal(t, []string{"sub"}, cfg.SubjectClaimPaths)
}

func TestUpstreamConfig_Sanitize(t *testing.T) {
	cfg := UpstreamConfig{BaseURL: " https://crm.example.com/ ", Timeout: 0}
	cfg.Sanitize()

	assert.Equal(t, "https://crm.example.com", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "  ", Prefix: ""}
	cfg.Sanitize()

	assert.False(t, cfg.IsEnabled())
	assert.Equal(t, "crmconsole", cfg.Prefix)

	cfg = ObservabilityMetricsConfig{Enabled: true, StatsdAddress: "127.0.0.1:8125", Prefix: "x"}
	cfg.Sanitize()
	assert.True(t, cfg.IsEnabled())
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	cfg := AppConfig{}
	cfg.Sanitize()
	assert.True(t, cfg.IsDev)

	t.Setenv("APP_ENV", "production")
	cfg = AppConfig{}
	cfg.Sanitize()
	assert.False(t, cfg.IsDev)
}
