package server

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/config"
	"github.com/wordforge/lexigrid/game"
	"github.com/wordforge/lexigrid/gameerr"
	"github.com/wordforge/lexigrid/schema"
)

// SuccessResponse is the bare `{success}` shape most inbound events return
// on success (spec §6).
type SuccessResponse struct {
	Success bool `json:"success"`
}

// RemoveTileResponse is the `remove-tile` success response.
type RemoveTileResponse struct {
	Success      bool    `json:"success"`
	RemovedTile  *uint32 `json:"removedTile,omitempty"`
}

// MoveResult carries the words formed and score earned by a committed
// move (spec §6's `commit-move` response).
type MoveResult struct {
	Words []string `json:"words"`
	Score int      `json:"score"`
}

// CommitResponse is the `commit-move` success response.
type CommitResponse struct {
	Success    bool       `json:"success"`
	MoveResult MoveResult `json:"moveResult"`
}

// GetGameStateResponse is the `get-game-state` response.
type GetGameStateResponse struct {
	GameState    *GameStateView      `json:"gameState"`
	PendingTiles []game.StagedTile   `json:"pendingTiles"`
}

type commitCacheEntry struct {
	committedAtTurn int
	resp            Response
}

// Hub is the event dispatcher (C12): it owns no game state itself (that's
// game.Store's job, per design note §9's "no singletons") but routes each
// inbound event (spec §6) to one game.State call and shapes the result.
// It implements §5's "single event-loop/actor per game" only at the level
// of not holding a lock across a call into game.State — callers are
// expected to serialize concurrent HandleEvent calls for the same gameID
// themselves (e.g. one goroutine per game reading from a channel), which
// is exactly the shape spec §5 recommends and this package doesn't
// prescribe a transport for.
type Hub struct {
	store       *game.Store
	cfg         *config.Config
	broadcaster Broadcaster

	mu        sync.Mutex
	committed map[string]commitCacheEntry
}

// NewHub builds a dispatcher over an already-populated game.Store.
func NewHub(store *game.Store, cfg *config.Config, b Broadcaster) *Hub {
	return &Hub{store: store, cfg: cfg, broadcaster: b, committed: make(map[string]commitCacheEntry)}
}

// HandleEvent routes one inbound wire event (spec §6) to the matching
// game.State operation and returns the success response plus the
// broadcasts the caller should fan out through a Broadcaster. A non-nil
// error is always a *gameerr.Error; HandleEvent never panics on bad input
// (spec §7: "all validation errors are recovered locally").
func (h *Hub) HandleEvent(gameID, playerID, name string, payload []byte) (Response, []Broadcast, error) {
	st, ok := h.store.Get(gameID)
	if !ok {
		return Response{}, nil, gameerr.New(gameerr.NotInGame, "no such game")
	}

	switch name {
	case EventPlaceTile:
		return h.handlePlaceTile(st, gameID, playerID, payload)
	case EventRemoveTile:
		return h.handleRemoveTile(st, gameID, playerID, payload)
	case EventClearPendingMove:
		return h.handleClearPendingMove(st, gameID, playerID)
	case EventCommitMove:
		return h.handleCommitMove(st, gameID, playerID)
	case EventExchangeTiles:
		return h.handleExchangeTiles(st, gameID, playerID, payload)
	case EventPassTurn:
		return h.handlePassTurn(st, gameID, playerID)
	case EventEndGame:
		return h.handleEndGame(st, gameID, playerID)
	case EventGetGameState:
		return h.handleGetGameState(st, playerID)
	default:
		return Response{}, nil, gameerr.New(gameerr.InvalidPayload, fmt.Sprintf("unknown event %q", name))
	}
}

func (h *Hub) handlePlaceTile(st *game.State, gameID, playerID string, payload []byte) (Response, []Broadcast, error) {
	p, perr := schema.Decode[schema.PlaceTilePayload](payload)
	if perr != nil {
		return Response{}, nil, perr
	}
	if perr := schema.ValidatePlaceTile(p, st.Board.Dim); perr != nil {
		return Response{}, nil, perr
	}
	var chosen alphabet.MachineLetter
	if p.Letter != "" {
		ml, err := st.Rules.Lexicon().Alphabet().Val([]rune(p.Letter)[0])
		if err != nil {
			return Response{}, nil, gameerr.New(gameerr.InvalidPayload, "chosen letter is not in the alphabet")
		}
		chosen = ml
	}
	if gerr := st.Stage(playerID, alphabet.TileID(p.TileID), p.Row, p.Col, chosen); gerr != nil {
		return Response{}, nil, gerr
	}
	return Response{Name: EventPlaceTile, Data: SuccessResponse{Success: true}},
		[]Broadcast{{Name: BroadcastGameStateUpdated, Data: NewGameStateView(st)}}, nil
}

func (h *Hub) handleRemoveTile(st *game.State, gameID, playerID string, payload []byte) (Response, []Broadcast, error) {
	p, perr := schema.Decode[schema.RemoveTilePayload](payload)
	if perr != nil {
		return Response{}, nil, perr
	}
	if perr := schema.ValidateRemoveTile(p, st.Board.Dim); perr != nil {
		return Response{}, nil, perr
	}
	tile, found := st.StagedAt(p.Row, p.Col)
	resp := RemoveTileResponse{Success: true}
	if found {
		st.Unstage(tile.TileID)
		id := uint32(tile.TileID)
		resp.RemovedTile = &id
	}
	return Response{Name: EventRemoveTile, Data: resp},
		[]Broadcast{{Name: BroadcastGameStateUpdated, Data: NewGameStateView(st)}}, nil
}

func (h *Hub) handleClearPendingMove(st *game.State, gameID, playerID string) (Response, []Broadcast, error) {
	st.ClearPending()
	return Response{Name: EventClearPendingMove, Data: SuccessResponse{Success: true}},
		[]Broadcast{{Name: BroadcastGameStateUpdated, Data: NewGameStateView(st)}}, nil
}

// handleCommitMove wraps game.State.Commit with the duplicate-commit cache
// spec §5's "a disconnect does not cancel an in-flight commit" calls for.
// commit-move carries no payload to correlate a retry against, so the
// cache keys on (gameID, playerID) and the turn counter the player's own
// commit advanced past: a second call arriving after the turn has moved on
// exactly one step, from a sender who is no longer the current player, is
// the retry this cache exists for — anything else (a genuinely new commit
// on that player's next turn, or not_your_turn on a turn that moved on for
// any other reason) falls through to a fresh State.Commit call.
func (h *Hub) handleCommitMove(st *game.State, gameID, playerID string) (Response, []Broadcast, error) {
	key := fmt.Sprintf("%s:%s", gameID, playerID)

	h.mu.Lock()
	cached, ok := h.committed[key]
	h.mu.Unlock()
	if ok && st.Turn == cached.committedAtTurn+1 {
		if cp := st.CurrentPlayer(); cp == nil || cp.ID != playerID {
			log.Debug().Str("game_id", gameID).Str("player", playerID).Msg("duplicate commit-move suppressed")
			return cached.resp, nil, nil
		}
	}

	committedAtTurn := st.Turn
	m, gerr := st.Commit(playerID)
	if gerr != nil {
		return Response{}, nil, gerr
	}
	words := historyWordsFor(st, playerID)
	resp := Response{Name: EventCommitMove, Data: CommitResponse{
		Success: true, MoveResult: MoveResult{Words: words, Score: m.Score()},
	}}

	h.mu.Lock()
	h.committed[key] = commitCacheEntry{committedAtTurn: committedAtTurn, resp: resp}
	h.mu.Unlock()

	return resp, []Broadcast{
		{Name: BroadcastMoveCommitted, Data: resp.Data},
		{Name: BroadcastGameStateUpdated, Data: NewGameStateView(st)},
	}, nil
}

func historyWordsFor(st *game.State, playerID string) []string {
	for i := len(st.History) - 1; i >= 0; i-- {
		e := st.History[i]
		if e.PlayerID == playerID && e.Kind == game.MoveKindWord {
			return e.Words
		}
	}
	return nil
}

func (h *Hub) handleExchangeTiles(st *game.State, gameID, playerID string, payload []byte) (Response, []Broadcast, error) {
	p, perr := schema.Decode[schema.ExchangeTilesPayload](payload)
	if perr != nil {
		return Response{}, nil, perr
	}
	maxRack := 7
	if h.cfg != nil {
		maxRack = h.cfg.MaxRackTiles
	}
	if perr := schema.ValidateExchangeTiles(p, maxRack); perr != nil {
		return Response{}, nil, perr
	}
	ids := make([]alphabet.TileID, len(p.TileIDs))
	for i, id := range p.TileIDs {
		ids[i] = alphabet.TileID(id)
	}
	minBag := 7
	if h.cfg != nil {
		minBag = h.cfg.MinBagSizeForExchange
	}
	if gerr := st.Exchange(playerID, ids, minBag); gerr != nil {
		return Response{}, nil, gerr
	}
	return Response{Name: EventExchangeTiles, Data: SuccessResponse{Success: true}},
		[]Broadcast{{Name: BroadcastTilesExchanged, Data: NewGameStateView(st)}}, nil
}

func (h *Hub) handlePassTurn(st *game.State, gameID, playerID string) (Response, []Broadcast, error) {
	if gerr := st.Pass(playerID); gerr != nil {
		return Response{}, nil, gerr
	}
	return Response{Name: EventPassTurn, Data: SuccessResponse{Success: true}},
		[]Broadcast{{Name: BroadcastTurnPassed, Data: NewGameStateView(st)}}, nil
}

func (h *Hub) handleEndGame(st *game.State, gameID, playerID string) (Response, []Broadcast, error) {
	if gerr := st.DeclareEndGame(playerID); gerr != nil {
		return Response{}, nil, gerr
	}
	return Response{Name: EventEndGame, Data: SuccessResponse{Success: true}},
		[]Broadcast{{Name: BroadcastPlayerEndedGame, Data: NewGameStateView(st)}}, nil
}

func (h *Hub) handleGetGameState(st *game.State, playerID string) (Response, []Broadcast, error) {
	var pending []game.StagedTile
	if st.Pending != nil && st.Pending.PlayerID == playerID {
		pending = st.Pending.Tiles
	}
	return Response{Name: EventGetGameState, Data: GetGameStateResponse{
		GameState: NewGameStateView(st), PendingTiles: pending,
	}}, nil, nil
}
