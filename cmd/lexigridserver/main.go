// Command lexigridserver wires the core's ambient stack (config, lexicon
// load, event dispatcher) together into a runnable process, loading the
// lexicon once, building the game store, and serving server.Hub behind a
// minimal synchronous HTTP gateway. The full real-time transport (a
// persistent per-client session, room membership, rate limiting) is spec
// §1/§6's explicit external-collaborator boundary and is not this
// gateway's job.
package main

import (
	"flag"
	"io"
	"net/http"
	"os"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/config"
	"github.com/wordforge/lexigrid/game"
	"github.com/wordforge/lexigrid/lexicon"
	"github.com/wordforge/lexigrid/server"
)

func main() {
	yamlPath := flag.String("config", "", "optional YAML config file, merged in below environment variables")
	flag.Parse()

	cfg, err := config.Load(*yamlPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if level, perr := zerolog.ParseLevel(cfg.LogLevel); perr == nil {
		zerolog.SetGlobalLevel(level)
	}

	alph := alphabet.EnglishAlphabet()
	lex, err := lexicon.Load(cfg.LexiconPath, alph, func() (io.ReadCloser, error) {
		return os.Open(cfg.LexiconPath)
	})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LexiconPath).Msg("failed to load lexicon")
	}

	rules, err := game.NewRules(lex, board.CrosswordGameLayout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build game rules")
	}
	log.Info().Str("board_layout", rules.BoardLayoutName()).Str("variant", string(rules.Variant())).
		Msg("game rules validated; ready to seat games against this ruleset")

	store := game.NewStore()

	var broadcaster server.Broadcaster
	if nc, err := nats.Connect(nats.DefaultURL); err != nil {
		log.Warn().Err(err).Msg("no NATS connection available; broadcasts are dropped")
	} else {
		defer nc.Close()
		broadcaster = server.NewNatsBroadcaster(nc, "lexigrid")
	}

	hub := server.NewHub(store, cfg, broadcaster)
	gw := server.NewHTTPGateway(hub)

	mux := http.NewServeMux()
	mux.Handle("/event", gw.Handler())

	log.Info().
		Str("listen_addr", cfg.ListenAddr).
		Int("words", lex.NumWords()).
		Msg("lexigrid core ready")

	// Matches the teacher's own top-level main.go (net/http.ListenAndServe
	// with a handler registered on a mux). A full real-time transport
	// (persistent per-client sessions, room membership, rate limiting) is
	// spec §1/§6's explicit external-collaborator boundary; HTTPGateway is
	// only a synchronous request/response facade over Hub, not that
	// transport.
	if err := http.ListenAndServe(cfg.ListenAddr, mux); err != nil {
		log.Fatal().Err(err).Msg("http server stopped")
	}
}
