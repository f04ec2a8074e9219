package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/wordforge/lexigrid/gameerr"
)

// eventEnvelope is the synchronous request body an HTTPGateway accepts:
// one inbound wire event (spec §6), addressed to one game and sender.
type eventEnvelope struct {
	GameID   string          `json:"gameId"`
	PlayerID string          `json:"playerId"`
	Event    string          `json:"event"`
	Payload  json.RawMessage `json:"payload"`
}

type errorBody struct {
	Kind    gameerr.Kind `json:"kind"`
	Message string       `json:"message"`
}

// HTTPGateway is the thinnest possible request/response facade over Hub,
// grounded on the teacher's own top-level main.go (net/http.ListenAndServe
// plus a single registered handler, before it grew into a gorilla/rpc
// JSON-RPC service). It is NOT the real-time transport spec §1/§6 place
// out of scope: there is no persistent per-client session here, and
// broadcasts still flow through a Broadcaster (e.g. NatsBroadcaster),
// never through this handler's response body. It exists so a process
// built from this module is reachable by something simpler than a
// websocket client — a health-checking script, an admin tool, or a test
// harness — without requiring a full transport collaborator to exist.
type HTTPGateway struct {
	hub *Hub
}

// NewHTTPGateway wraps an already-constructed Hub.
func NewHTTPGateway(hub *Hub) *HTTPGateway {
	return &HTTPGateway{hub: hub}
}

// Handler returns the http.Handler to register against a mux, matching
// the teacher's http.HandleFunc registration style.
func (g *HTTPGateway) Handler() http.Handler {
	return http.HandlerFunc(g.handleEvent)
}

func (g *HTTPGateway) handleEvent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var env eventEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		writeError(w, gameerr.New(gameerr.InvalidPayload, "malformed request envelope"))
		return
	}

	resp, broadcasts, err := g.hub.HandleEvent(env.GameID, env.PlayerID, env.Event, env.Payload)
	if err != nil {
		ge, ok := err.(*gameerr.Error)
		if !ok {
			ge = gameerr.New(gameerr.InvalidPayload, err.Error())
		}
		writeError(w, ge)
		return
	}

	if g.hub.broadcaster != nil {
		for _, b := range broadcasts {
			if pubErr := g.hub.broadcaster.Broadcast(env.GameID, b); pubErr != nil {
				log.Warn().Err(pubErr).Str("game_id", env.GameID).Str("broadcast", b.Name).Msg("broadcast publish failed")
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp.Data)
}

func writeError(w http.ResponseWriter, ge *gameerr.Error) {
	status := http.StatusBadRequest
	switch ge.Kind {
	case gameerr.NotInGame, gameerr.NotYourTurn:
		status = http.StatusConflict
	case gameerr.RateLimited:
		status = http.StatusTooManyRequests
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Kind: ge.Kind, Message: ge.Message})
}
