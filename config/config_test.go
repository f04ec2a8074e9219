package config_test

import (
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/config"
)

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	is := is.New(t)
	cfg, err := config.Load("")
	is.NoErr(err)
	is.Equal(cfg.ListenAddr, ":8080")
	is.Equal(cfg.LexiconPath, "lexicon.txt")
	is.Equal(cfg.MinBagSizeForExchange, 7)
	is.Equal(cfg.DisconnectGracePeriod, 20*time.Minute)
	is.Equal(cfg.MaxPlayersPerGame, 4)
	is.Equal(cfg.MaxRackTiles, 7)
	is.Equal(cfg.LogLevel, "info")
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	is := is.New(t)
	t.Setenv("LEXIGRID_LISTEN_ADDR", ":9999")
	t.Setenv("LEXIGRID_LEXICON_PATH", "/tmp/csw.txt")
	t.Setenv("LEXIGRID_MAX_RACK_TILES", "9")
	t.Setenv("LEXIGRID_LOG_LEVEL", "debug")

	cfg, err := config.Load("")
	is.NoErr(err)
	is.Equal(cfg.ListenAddr, ":9999")
	is.Equal(cfg.LexiconPath, "/tmp/csw.txt")
	is.Equal(cfg.MaxRackTiles, 9)
	is.Equal(cfg.LogLevel, "debug")
}
