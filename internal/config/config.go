package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

type Config struct {
	Token               string        `env:"DISCORD_TOKEN"`
	DatabaseURL         string        `env:"DATABASE_URL"          envDefault:"postgres://localhost:5432/rpbot?sslmode=disable"`
	GuildID             string        `env:"GUILD_ID"`
	DefaultLocale       string        `env:"DEFAULT_LOCALE"        envDefault:"en-US"`
	LocalesOverrideDir  string        `env:"LOCALES_OVERRIDE_DIR"`
	LimitsFile          string        `env:"LIMITS_FILE"`
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"`
	SetupConfirmTimeout time.Duration `env:"SETUP_CONFIRM_TIMEOUT" envDefault:"60s"`
	SelectTimeout       time.Duration `env:"SELECT_TIMEOUT"        envDefault:"120s"`
}

// Load charge le fichier .env s'il existe, lit les variables d'environnement et valide le résultat.
func Load() (*Config, error) {
	// .env est optionnel lorsque les variables sont fournies par l'environnement (Docker, CI, etc.).
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config: lecture de l'environnement: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate applique toutes les règles métier sur la configuration chargée.
func (c *Config) validate() error {
	var errs []error

	if strings.TrimSpace(c.Token) == "" {
		errs = append(errs, errors.New("config: DISCORD_TOKEN est requis et ne peut pas être vide"))
	}

	if c.GuildID != "" && !isSnowflake(c.GuildID) {
		errs = append(errs, errors.New("config: GUILD_ID doit être un ID de serveur Discord (chiffres uniquement)"))
	}

	parsed, err := url.Parse(c.DatabaseURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("config: DATABASE_URL invalide (%q): %w", c.DatabaseURL, err))
	case parsed.Scheme == "" || parsed.Host == "":
		errs = append(errs, fmt.Errorf("config: DATABASE_URL invalide (%q): scheme ou host manquant", c.DatabaseURL))
	}

	if _, err := language.Parse(c.DefaultLocale); err != nil {
		errs = append(errs, fmt.Errorf("config: DEFAULT_LOCALE invalide (%q): %w", c.DefaultLocale, err))
	}

	if c.SetupConfirmTimeout <= 0 {
		errs = append(errs, errors.New("config: SETUP_CONFIRM_TIMEOUT doit être positif"))
	}
	if c.SelectTimeout <= 0 {
		errs = append(errs, errors.New("config: SELECT_TIMEOUT doit être positif"))
	}

	return errors.Join(errs...)
}

func isSnowflake(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
