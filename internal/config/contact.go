package config

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultToEmail receives submissions when TO_EMAIL is unset.
	DefaultToEmail = "crossdockW@gmail.com"

	// DefaultFromEmail is the sender identity when FROM_EMAIL is unset.
	DefaultFromEmail = "Akron Crossdock <onboarding@resend.dev>"
)

// ContactConfig holds the settings the intake endpoint needs for one request.
type ContactConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	ToEmail      string `koanf:"to_email"`
	FromEmail    string `koanf:"from_email"`
}

// HasAPIKey reports whether a provider key is available.
func (c ContactConfig) HasAPIKey() bool {
	return c.ResendAPIKey != ""
}

// ContactResolver yields the contact settings in effect right now.
type ContactResolver func() ContactConfig

var contactKeys = map[string]string{
	"RESEND_API_KEY": "resend_api_key",
	"TO_EMAIL":       "to_email",
	"FROM_EMAIL":     "from_email",
}

// LoadContactConfig reads RESEND_API_KEY, TO_EMAIL and FROM_EMAIL from the
// environment. It is called per request so a rotated secret is picked up
// without a restart. Empty values fall back to the defaults; the API key has
// no default and stays empty when unset.
func LoadContactConfig() ContactConfig {
	cfg := ContactConfig{
		ToEmail:   DefaultToEmail,
		FromEmail: DefaultFromEmail,
	}

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		key, ok := contactKeys[s]
		if !ok {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return cfg
	}

	if v := strings.TrimSpace(k.String("resend_api_key")); v != "" {
		cfg.ResendAPIKey = v
	}
	if v := strings.TrimSpace(k.String("to_email")); v != "" {
		cfg.ToEmail = v
	}
	if v := strings.TrimSpace(k.String("from_email")); v != "" {
		cfg.FromEmail = v
	}

	return cfg
}

// StaticContact returns a resolver that always yields cfg.
func StaticContact(cfg ContactConfig) ContactResolver {
	return func() ContactConfig { return cfg }
}
