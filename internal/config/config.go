package config

import (
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-long-rest/internal/domain/rest"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	Discord  DiscordConfig
	Redis    RedisConfig
	DND5E    DND5EConfig
	LongRest LongRestConfig
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string `env:"DISCORD_TOKEN"`
	AppID   string `env:"DISCORD_APP_ID"`
	GuildID string `env:"DISCORD_GUILD_ID"` // Optional: for guild-specific commands
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is a redis:// URL; empty keeps everything in memory
	URL string `env:"REDIS_URL"`
}

// DND5EConfig holds D&D 5e API configuration
type DND5EConfig struct {
	BaseURL string        `env:"DND5E_API_URL"     envDefault:"https://www.dnd5eapi.co/api/"`
	Timeout time.Duration `env:"DND5E_API_TIMEOUT" envDefault:"10s"`
}

// LongRestConfig holds the world defaults for long rest recovery. Values
// stored through /restsettings take precedence.
type LongRestConfig struct {
	HitPoints      string        `env:"LONG_REST_HP_FRACTION"          envDefault:"none"`
	HitDice        string        `env:"LONG_REST_HD_FRACTION"          envDefault:"half"`
	HitDiceBefore  bool          `env:"LONG_REST_HD_BEFORE_ROLL"       envDefault:"false"`
	Rounding       string        `env:"LONG_REST_HD_ROUNDING"          envDefault:"down"`
	Resources      string        `env:"LONG_REST_RESOURCES_FRACTION"   envDefault:"full"`
	Spells         string        `env:"LONG_REST_SPELLS_FRACTION"      envDefault:"full"`
	OtherUses      string        `env:"LONG_REST_USES_OTHERS_FRACTION" envDefault:"full"`
	FeatUses       string        `env:"LONG_REST_USES_FEATS_FRACTION"  envDefault:"full"`
	DailyUses      string        `env:"LONG_REST_DAILY_FRACTION"       envDefault:"full"`
	Variant        string        `env:"LONG_REST_VARIANT"              envDefault:"normal"`
	ModuleEnabled  bool          `env:"LONG_REST_MODULE_ENABLED"       envDefault:"true"`
	ConfirmTimeout time.Duration `env:"LONG_REST_CONFIRM_TIMEOUT"      envDefault:"5m"`
}

// Settings converts the defaults into a validated rest.Settings
func (c LongRestConfig) Settings() (rest.Settings, error) {
	settings := rest.Settings{
		HitPoints:                rest.Fraction(strings.ToLower(c.HitPoints)),
		HitDice:                  rest.Fraction(strings.ToLower(c.HitDice)),
		RecoverHitDiceBeforeRoll: c.HitDiceBefore,
		HitDiceRounding:          rest.Rounding(strings.ToLower(c.Rounding)),
		Resources:                rest.Fraction(strings.ToLower(c.Resources)),
		Spells:                   rest.Fraction(strings.ToLower(c.Spells)),
		OtherUses:                rest.Fraction(strings.ToLower(c.OtherUses)),
		FeatUses:                 rest.Fraction(strings.ToLower(c.FeatUses)),
		DailyUses:                rest.Fraction(strings.ToLower(c.DailyUses)),
	}

	if err := settings.Validate(); err != nil {
		return rest.Settings{}, err
	}
	return settings, nil
}

// RestVariant returns the configured rest length rule
func (c LongRestConfig) RestVariant() (rest.Variant, error) {
	switch v := rest.Variant(strings.ToLower(c.Variant)); v {
	case rest.VariantNormal, rest.VariantGritty, rest.VariantEpic:
		return v, nil
	}
	return "", dnderr.InvalidConfigurationf("unknown rest variant %q", c.Variant).
		WithMeta("env", "LONG_REST_VARIANT")
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidConfiguration, "failed to parse environment")
	}

	if _, err := cfg.LongRest.Settings(); err != nil {
		return nil, err
	}
	if _, err := cfg.LongRest.RestVariant(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// RequireDiscord checks the settings only the bot needs
func (c *Config) RequireDiscord() error {
	if c.Discord.Token == "" {
		return dnderr.InvalidConfigurationf("DISCORD_TOKEN is required")
	}
	if c.Discord.AppID == "" {
		return dnderr.InvalidConfigurationf("DISCORD_APP_ID is required")
	}
	return nil
}
