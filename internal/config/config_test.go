package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpbot/internal/domain/entities"
)

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("GUILD_ID", "123456789")
	t.Setenv("SETUP_CONFIRM_TIMEOUT", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "token", cfg.Token)
	assert.Equal(t, "123456789", cfg.GuildID)
	assert.Equal(t, "postgres://localhost:5432/rpbot?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "en-US", cfg.DefaultLocale)
	assert.Equal(t, 30*time.Second, cfg.SetupConfirmTimeout)
	assert.Equal(t, 120*time.Second, cfg.SelectTimeout)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DISCORD_TOKEN=from-file\nLOG_LEVEL=debug\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("DISCORD_TOKEN", "")
	os.Unsetenv("DISCORD_TOKEN")
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Token)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Token:               "t",
			DatabaseURL:         "postgres://db:5432/rpbot",
			DefaultLocale:       "fr",
			SetupConfirmTimeout: time.Minute,
			SelectTimeout:       time.Minute,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing token", func(c *Config) { c.Token = " " }, "DISCORD_TOKEN"},
		{"guild not numeric", func(c *Config) { c.GuildID = "abc" }, "GUILD_ID"},
		{"database without host", func(c *Config) { c.DatabaseURL = "rpbot" }, "DATABASE_URL"},
		{"bad locale", func(c *Config) { c.DefaultLocale = "not a locale" }, "DEFAULT_LOCALE"},
		{"zero timeout", func(c *Config) { c.SelectTimeout = 0 }, "SELECT_TIMEOUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.ErrorContains(t, c.validate(), tt.want)
		})
	}

	c := valid()
	assert.NoError(t, c.validate())
}

func TestLimits(t *testing.T) {
	l, err := LoadLimits("")
	require.NoError(t, err)
	assert.Equal(t, entities.TierLimits{Universes: 2, ServersPerUniverse: 2}, l.For("free"))
	assert.Equal(t, l.For("free"), l.For("unknown"))

	l, err = ParseLimits([]byte(`
[tiers.premium]
universes = 10
servers_per_universe = 5
places_per_universe = 50
roads_per_universe = 100
`))
	require.NoError(t, err)
	assert.Equal(t, entities.TierLimits{Universes: 10, ServersPerUniverse: 5, PlacesPerUniverse: 50, RoadsPerUniverse: 100}, l.For("premium"))
	assert.Equal(t, 2, l.For("free").Universes, "free tier is filled in")

	_, err = ParseLimits([]byte("[tiers.free]\nuniverses = -1\n"))
	assert.ErrorContains(t, err, "négative")

	_, err = ParseLimits([]byte("tiers = 3"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "limits.toml")
	require.NoError(t, os.WriteFile(path, []byte("[tiers.free]\nuniverses = 1\n"), 0o600))
	l, err = LoadLimits(path)
	require.NoError(t, err)
	assert.Equal(t, 1, l.For("free").Universes)

	_, err = LoadLimits(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
