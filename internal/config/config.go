package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	HTTPAddr       string `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseURL    string `env:"DATABASE_URL" envDefault:"postgres://localhost:5432/groupbook?sslmode=disable"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	DefaultLocale  string `env:"DEFAULT_LOCALE" envDefault:"en"`
	PublicBaseURL  string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:3000"`
	DiscordToken   string `env:"DISCORD_TOKEN"`
	DiscordGuildID string `env:"DISCORD_GUILD_ID"`
}

// Load reads the configuration from the environment (and an optional .env
// file) and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DiscordEnabled reports whether the Discord adapter should start.
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != ""
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("config: HTTP_ADDR ne peut pas être vide")
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		return fmt.Errorf("config: MIGRATIONS_PATH ne peut pas être vide")
	}

	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("config: DEFAULT_LOCALE invalide (%q): %w", c.DefaultLocale, err)
	}

	base, err := url.Parse(c.PublicBaseURL)
	if err != nil {
		return fmt.Errorf("config: PUBLIC_BASE_URL invalide (%q): %w", c.PublicBaseURL, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return fmt.Errorf("config: PUBLIC_BASE_URL doit être une URL absolue (%q)", c.PublicBaseURL)
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")

	if c.DiscordGuildID != "" {
		for _, r := range c.DiscordGuildID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: DISCORD_GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)")
			}
		}
	}

	return nil
}
