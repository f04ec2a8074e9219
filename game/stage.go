package game

import (
	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/gameerr"
)

// Stage adds one tile to the current player's pending placement. This is
// deliberately light — it only prevents structurally nonsensical state
// (duplicate cells, already-committed cells); full legality (linearity,
// contiguity, connectivity, ownership, lexicon) is re-checked in full by
// Commit (spec §4.6). A rejected commit leaves the pending placement as it
// is; it is cleared by a successful commit, ClearPending, an exchange, a
// pass, or an end-game declaration.
func (s *State) Stage(playerID string, tileID alphabet.TileID, row, col int, chosen alphabet.MachineLetter) *gameerr.Error {
	if s.Phase != PhasePlaying {
		return gameerr.New(gameerr.NotInGame, "game is not in the playing phase")
	}
	cp := s.CurrentPlayer()
	if cp == nil || cp.ID != playerID {
		return gameerr.New(gameerr.NotYourTurn, "it is not this player's turn")
	}
	cell := s.Board.Get(row, col)
	if cell == nil {
		return gameerr.New(gameerr.InvalidPosition, "position is out of range")
	}
	if cell.Tile != nil {
		return gameerr.New(gameerr.InvalidPosition, "cell is already occupied")
	}
	if s.Board.IsFrozen(row, col, s.Turn) {
		return gameerr.New(gameerr.InvalidPosition, "cell is frozen by an active power-up effect")
	}
	rackTile, ok := lookupRackTile(cp.Rack, tileID)
	if !ok {
		return gameerr.New(gameerr.TileNotOwned, "tile is not on the current player's rack")
	}
	if rackTile.IsBlank && chosen == alphabet.BlankMachineLetter {
		return gameerr.New(gameerr.InvalidPayload, "a placed blank must name the letter it stands in for")
	}
	if s.Pending == nil {
		s.Pending = &PendingPlacement{PlayerID: playerID}
	}
	for _, t := range s.Pending.Tiles {
		if t.Row == row && t.Col == col {
			return gameerr.New(gameerr.InvalidPosition, "cell is already staged")
		}
		if t.TileID == tileID {
			return gameerr.New(gameerr.TileNotOwned, "tile is already staged elsewhere")
		}
	}
	s.Pending.Tiles = append(s.Pending.Tiles, StagedTile{TileID: tileID, Row: row, Col: col, Chosen: chosen})
	return nil
}

func lookupRackTile(r *alphabet.Rack, id alphabet.TileID) (alphabet.Tile, bool) {
	for _, t := range r.Tiles() {
		if t.ID == id {
			return t, true
		}
	}
	return alphabet.Tile{}, false
}

// StagedAt looks up the staged tile occupying (row, col), if any — used by
// the `remove-tile` event handler (server.Hub), which addresses a staged
// tile by board position rather than by tile id.
func (s *State) StagedAt(row, col int) (StagedTile, bool) {
	if s.Pending == nil {
		return StagedTile{}, false
	}
	for _, t := range s.Pending.Tiles {
		if t.Row == row && t.Col == col {
			return t, true
		}
	}
	return StagedTile{}, false
}

// Unstage removes one tile from the pending placement by id.
func (s *State) Unstage(tileID alphabet.TileID) {
	if s.Pending == nil {
		return
	}
	for i, t := range s.Pending.Tiles {
		if t.TileID == tileID {
			s.Pending.Tiles = append(s.Pending.Tiles[:i], s.Pending.Tiles[i+1:]...)
			return
		}
	}
}
