package config

import (
	"strings"
	"time"
)

// UpstreamConfig contains CRM backend configuration.
// All variables carry the UPSTREAM_ prefix.
type UpstreamConfig struct {
	// BaseURL is the root of the CRM REST API, e.g. "https://crm.example.com".
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:5000"`

	// Timeout bounds every backend request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	u.BaseURL = strings.TrimRight(strings.TrimSpace(u.BaseURL), "/")
	if u.Timeout <= 0 {
		u.Timeout = 30 * time.Second
	}
}
