// Package server implements the event dispatcher (C12, SPEC_FULL.md
// §4.10): it maps every inbound wire event spec §6 names to one game
// package call, translating the result into the documented
// success/broadcast shape, without implementing the transport (no
// websocket framing) itself. It also carries the AI move-query endpoint
// (C13, analyze.go) that gives spec §2's "AI driver queries the
// generator, funnels the winner back through commit" shape a concrete
// home.
package server

// Inbound event names, spec §6.
const (
	EventPlaceTile        = "place-tile"
	EventRemoveTile       = "remove-tile"
	EventClearPendingMove = "clear-pending-move"
	EventCommitMove       = "commit-move"
	EventExchangeTiles    = "exchange-tiles"
	EventPassTurn         = "pass-turn"
	EventEndGame          = "end-game"
	EventGetGameState     = "get-game-state"
)

// Outbound broadcast event names, spec §6.
const (
	BroadcastGameStateUpdated = "game-state-updated"
	BroadcastMoveCommitted    = "move-committed"
	BroadcastTilesExchanged   = "tiles-exchanged"
	BroadcastTurnPassed       = "turn-passed"
	BroadcastPlayerEndedGame  = "player-ended-game"
)

// Response is what HandleEvent returns to the caller that sent the
// inbound event (the "success response" column of spec §6's table).
type Response struct {
	Name string
	Data any
}

// Broadcast is one outbound event HandleEvent asks the transport
// collaborator to fan out to every other client in the game.
type Broadcast struct {
	Name string
	Data any
}

// Broadcaster is the transport collaborator interface outbound broadcasts
// are emitted through (spec §6, design note §9's external-collaborator
// boundary). The dispatcher never touches a socket directly.
type Broadcaster interface {
	Broadcast(gameID string, b Broadcast) error
}
