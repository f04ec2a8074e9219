package server

import (
	"github.com/samber/lo"

	"github.com/wordforge/lexigrid/game"
)

// PlayerView is the wire-safe projection of game.Player the
// `get-game-state` response and every broadcast carry — only the rack
// size, never the rack's tile ids or letters. The `get-game-state`
// response adds the requesting player's own pending tiles in a separate
// pendingTiles field; no response carries rack contents.
type PlayerView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RackSize        int    `json:"rackSize"`
	EndGameDeclared bool   `json:"endGameDeclared"`
	Connected       bool   `json:"connected"`
}

// GameStateView is the JSON-serializable snapshot of game.State spec §6's
// `get-game-state` response and the `game-state-updated` broadcast carry.
type GameStateView struct {
	ID               string              `json:"id"`
	Phase            string              `json:"phase"`
	Turn             int                 `json:"turn"`
	CurrentPlayerID  string              `json:"currentPlayerId"`
	Players          []PlayerView        `json:"players"`
	BagCount         int                 `json:"bagCount"`
	History          []game.HistoryEntry `json:"history"`
}

// NewGameStateView projects a game.State into its wire view, using
// samber/lo's Map the way the teacher's wider codebase reaches for lo
// over a hand-rolled loop when collating one slice into another.
func NewGameStateView(s *game.State) *GameStateView {
	players := lo.Map(s.Players, func(p *game.Player, _ int) PlayerView {
		return PlayerView{
			ID:              p.ID,
			Name:            p.Name,
			RackSize:        p.Rack.NumTiles(),
			EndGameDeclared: p.EndGameDeclared,
			Connected:       p.Connected,
		}
	})
	var currentPlayerID string
	if cp := s.CurrentPlayer(); cp != nil {
		currentPlayerID = cp.ID
	}
	return &GameStateView{
		ID:              s.ID,
		Phase:           s.Phase.String(),
		Turn:            s.Turn,
		CurrentPlayerID: currentPlayerID,
		Players:         players,
		BagCount:        s.Bag.Count(),
		History:         s.History,
	}
}
