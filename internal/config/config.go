// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file
// when present), loads them into structured Go types, and validates
// that required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad config.
//   - Provide sane defaults for every block, so an empty environment
//     still boots a working server.
//
// The contact settings (RESEND_API_KEY, TO_EMAIL, FROM_EMAIL) are not
// part of Config: they are resolved on every request by
// LoadContactConfig, see contact.go.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads `.env` into the process environment
	// before any env var is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	koanf reads the environment and unmarshals it into Config.

	- Only env vars with the CROSSDOCK_ prefix are read.
	- The prefix is removed and the rest is lowercased.
	- A double underscore marks nesting:
	  CROSSDOCK_SERVER__PORT -> server.port -> Config.Server.Port
	  CROSSDOCK_OBSERVABILITY__LOGGING__LEVEL -> observability.logging.level
*/

// EnvPrefix is the prefix of every process-level environment variable.
const EnvPrefix = "CROSSDOCK_"

// ServiceName is the fixed name reported in logs and traces.
const ServiceName = "akron-crossdock-contact"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator
// after unmarshalling.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Resend        ResendConfig         `koanf:"resend" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout int    `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"required,min=1"`

	// BodyLimit caps the request body, in echo's size notation ("1M", "512K").
	BodyLimit string `koanf:"body_limit" validate:"required"`

	// AllowOrigin is the value of Access-Control-Allow-Origin: "*" or a single domain.
	AllowOrigin string `koanf:"allow_origin" validate:"required"`

	// ContactPath is where the intake endpoint is mounted.
	ContactPath string `koanf:"contact_path" validate:"required,startswith=/"`
}

// ResendConfig holds the non-secret settings of the email provider client.
type ResendConfig struct {
	BaseURL string        `koanf:"base_url" validate:"required,url"`
	Timeout time.Duration `koanf:"timeout" validate:"min=1s"`
}

// DefaultConfig returns a Config populated with the values used when the
// environment is silent.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 30,
			IdleTimeout:  60,
			BodyLimit:    "1M",
			AllowOrigin:  "*",
			ContactPath:  "/contact",
		},
		Resend: ResendConfig{
			BaseURL: "https://api.resend.com/",
			Timeout: 10 * time.Second,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// envKey maps CROSSDOCK_SERVER__PORT to server.port.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

// LoadConfig loads configuration from environment variables, unmarshals it
// over DefaultConfig, validates it and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix CROSSDOCK_
//   - Unmarshals into a Config pre-filled with defaults
//   - Validates struct tags
//   - Forces the observability service name and environment
//   - Validates observability config as well
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Keys absent from the environment keep their default values.
	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name is not configurable; environment follows primary.env.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}
