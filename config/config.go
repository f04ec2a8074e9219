// Package config is the process-wide settings object (C9, SPEC_FULL.md
// §4.7): listen address, lexicon path, and the per-process thresholds
// spec §6 names, loaded from environment variables with an optional YAML
// file merged in at lower priority. Grounded on the teacher's
// turnplayer.GameOptions.SetDefaults idiom (defaulting a settings struct
// against a loaded config source) and on spf13/viper already being a
// teacher dependency.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "LEXIGRID"

// Config is populated once at startup and treated as immutable afterward,
// matching the lexicon/GADDAG's own one-time-load lifecycle (spec §3).
type Config struct {
	ListenAddr            string
	AllowedOrigins        []string
	LexiconPath           string
	MinBagSizeForExchange int
	DisconnectGracePeriod time.Duration
	MaxPlayersPerGame     int
	MaxRackTiles          int
	LogLevel              string
}

// SetDefaults fills in every field the loader left zero-valued, the way
// turnplayer.GameOptions.SetDefaults fills in a lexicon/board layout/
// variant when the caller didn't specify one.
func (c *Config) SetDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":8080"
	}
	if c.LexiconPath == "" {
		c.LexiconPath = "lexicon.txt"
	}
	if c.MinBagSizeForExchange == 0 {
		c.MinBagSizeForExchange = 7
	}
	if c.DisconnectGracePeriod == 0 {
		c.DisconnectGracePeriod = 20 * time.Minute
	}
	if c.MaxPlayersPerGame == 0 {
		c.MaxPlayersPerGame = 4
	}
	if c.MaxRackTiles == 0 {
		c.MaxRackTiles = 7
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Load reads settings from environment variables named
// LEXIGRID_LISTEN_ADDR, LEXIGRID_LEXICON_PATH, LEXIGRID_MIN_BAG_EXCHANGE,
// LEXIGRID_GRACE_PERIOD, LEXIGRID_MAX_PLAYERS, LEXIGRID_MAX_RACK_TILES,
// LEXIGRID_ALLOWED_ORIGINS, and LEXIGRID_LOG_LEVEL (spec §6/SPEC_FULL.md
// §4.7), with yamlPath — if non-empty — merged in at lower priority than
// the environment. Unset fields receive SetDefaults's values.
func Load(yamlPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if yamlPath != "" {
		v.SetConfigFile(yamlPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	bindEnv(v, "listen_addr")
	bindEnv(v, "lexicon_path")
	bindEnv(v, "min_bag_exchange")
	bindEnv(v, "grace_period")
	bindEnv(v, "max_players")
	bindEnv(v, "max_rack_tiles")
	bindEnv(v, "allowed_origins")
	bindEnv(v, "log_level")

	cfg := &Config{
		ListenAddr:            v.GetString("listen_addr"),
		AllowedOrigins:        v.GetStringSlice("allowed_origins"),
		LexiconPath:           v.GetString("lexicon_path"),
		MinBagSizeForExchange: v.GetInt("min_bag_exchange"),
		DisconnectGracePeriod: v.GetDuration("grace_period"),
		MaxPlayersPerGame:     v.GetInt("max_players"),
		MaxRackTiles:          v.GetInt("max_rack_tiles"),
		LogLevel:              v.GetString("log_level"),
	}
	cfg.SetDefaults()
	return cfg, nil
}

func bindEnv(v *viper.Viper, key string) {
	// BindEnv's error is only non-nil for a malformed call (empty key
	// list), never a missing environment variable, so it's safe to
	// ignore here the same way the teacher's config loading does.
	_ = v.BindEnv(key)
}
