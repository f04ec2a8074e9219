// Package powerup is the optional, isolated extension layer spec §9 Open
// Question (ii) calls for: three novelty effects layered on top of the
// commit pipeline through exactly two hook points (game.PowerUpHooks),
// never as branches inside the core pipeline itself. A game.State with no
// Set attached takes neither hook, matching SPEC_FULL.md §4.12's "disabled
// by default."
package powerup

import (
	"sync"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/game"
)

// Kind names one of the three power-ups this layer implements.
type Kind string

const (
	KindTileTheft       Kind = "tile_theft"
	KindMultiplierTheft Kind = "multiplier_theft"
	KindBoardFreeze     Kind = "board_freeze"
)

type theftEffect struct {
	tileID  alphabet.TileID
	ownerID string
}

type multiplierEffect struct {
	fromPlayerID string
	toPlayerID   string
	amount       int
}

// Set is a per-game bundle of active power-up effects. The zero value
// (via NewSet) has none armed and behaves as a no-op hook implementation.
// It implements game.PowerUpHooks.
type Set struct {
	mu         sync.Mutex
	theft      []theftEffect
	multiplier []multiplierEffect
}

// NewSet builds an empty power-up bundle. Attach it to a game.State at
// creation (State.PowerUps = powerup.NewSet()) to enable the layer for
// that game; leave State.PowerUps nil to keep the commit pipeline's two
// hook points unused, per spec §9 Open Question (ii).
func NewSet() *Set {
	return &Set{}
}

var _ game.PowerUpHooks = (*Set)(nil)
