// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	ServerAddr   string `env:"SERVER_ADDR" envDefault:":5000"`
	DataPath     string `env:"DATA_PATH" envDefault:"data"`
	StaticPath   string `env:"STATIC_PATH" envDefault:"static"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	ClientOrigin string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:3000"`

	SMTP    SMTPConfig
	Contact ContactConfig
}

// SMTPConfig holds outbound mail settings. NotifyTo defaults to the
// authenticated user so a minimal setup only needs EMAIL_USER and EMAIL_PASS.
type SMTPConfig struct {
	Host     string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port     int           `env:"SMTP_PORT" envDefault:"587"`
	User     string        `env:"EMAIL_USER"`
	Pass     string        `env:"EMAIL_PASS"`
	NotifyTo string        `env:"NOTIFY_EMAIL"`
	Timeout  time.Duration `env:"MAIL_TIMEOUT" envDefault:"15s"`
}

// ContactConfig holds the public contact metadata, with literal fallbacks
// for every field.
type ContactConfig struct {
	Email    string `env:"CONTACT_EMAIL" envDefault:"contact@softwarehouse.com"`
	Phone    string `env:"CONTACT_PHONE" envDefault:"+1 (555) 123-4567"`
	Address  string `env:"CONTACT_ADDRESS" envDefault:"123 Tech Street, Silicon Valley, CA 94000"`
	LinkedIn string `env:"LINKEDIN_URL" envDefault:"https://linkedin.com/company/softwarehouse"`
	Twitter  string `env:"TWITTER_URL" envDefault:"https://twitter.com/softwarehouse"`
	GitHub   string `env:"GITHUB_URL" envDefault:"https://github.com/softwarehouse"`
}

// Load parses configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SMTP.NotifyTo == "" {
		cfg.SMTP.NotifyTo = cfg.SMTP.User
	}
	return &cfg, nil
}
