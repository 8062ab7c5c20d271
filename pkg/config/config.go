package config

import (
	"fmt"
	"strings"
)

var DefaultConfig = []byte(`
application: "merchant-settlement"

logger:
  level: "info"

is_prod_mode: false

server:
  port: "8080"

acme:
  base_url: "https://api-engine-dev.clerq.io/tech_assessment"
  timeout_seconds: 30
  retries: 3
`)

type Config struct {
	Application string `koanf:"application"`
	Logger      Logger `koanf:"logger"`
	IsProdMode  bool   `koanf:"is_prod_mode"`
	Server      Server `koanf:"server"`
	Acme        Acme   `koanf:"acme"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Server struct {
	Port string `koanf:"port"`
}

// Acme configures the upstream ACME Payments API client. The values are
// threaded through constructors; nothing reads the environment past startup.
type Acme struct {
	BaseURL        string `koanf:"base_url"`
	TimeoutSeconds int    `koanf:"timeout_seconds"`
	Retries        int    `koanf:"retries"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var bad []string

	if c.Application == "" {
		bad = append(bad, "application cannot be empty")
	}
	if c.Logger.Level == "" {
		bad = append(bad, "logger.level cannot be empty")
	}
	if c.Server.Port == "" {
		bad = append(bad, "server.port cannot be empty")
	}
	if c.Acme.BaseURL == "" {
		bad = append(bad, "acme.base_url cannot be empty")
	}
	if c.Acme.TimeoutSeconds <= 0 {
		bad = append(bad, "acme.timeout_seconds must be positive")
	}
	if c.Acme.Retries <= 0 {
		bad = append(bad, "acme.retries must be positive")
	}

	if len(bad) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(bad, "; "))
	}
	return nil
}
