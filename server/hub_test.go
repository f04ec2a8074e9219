package server_test

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/game"
	"github.com/wordforge/lexigrid/server"
)

// setRack wipes a player's rack and replaces it with fresh tiles spelling
// word, each carrying a distinct id above idBase so tests get a
// deterministic hand regardless of what the bag happened to deal.
func setRack(t *testing.T, st *game.State, alph *alphabet.Alphabet, playerID, word string, idBase alphabet.TileID) []alphabet.TileID {
	t.Helper()
	is := is.New(t)
	p := st.PlayerByID(playerID)
	is.True(p != nil)
	for _, tile := range p.Rack.Tiles() {
		p.Rack.Remove(tile.ID)
	}
	var ids []alphabet.TileID
	for i, r := range word {
		ml, err := alph.Val(r)
		is.NoErr(err)
		id := idBase + alphabet.TileID(i)
		p.Rack.Add(alphabet.Tile{ID: id, Letter: ml, Value: 1})
		ids = append(ids, id)
	}
	return ids
}

func newHubWithGame(t *testing.T) (*server.Hub, *game.State, string) {
	t.Helper()
	is := is.New(t)
	st := newTestGame(t)
	store := game.NewStore()
	store.Put(st)
	hub := server.NewHub(store, nil, nil)
	is.True(hub != nil)
	return hub, st, st.ID
}

func TestHub_PlaceTileThenCommitMove(t *testing.T) {
	is := is.New(t)
	hub, st, gameID := newHubWithGame(t)
	alph := alphabet.EnglishAlphabet()
	cp := st.CurrentPlayer()
	ids := setRack(t, st, alph, cp.ID, "CAT", 100)

	row := st.Board.CenterR
	startCol := st.Board.CenterC - 1
	for i, id := range ids {
		payload, err := json.Marshal(map[string]any{"tile": uint32(id), "row": row, "col": startCol + i})
		is.NoErr(err)
		_, _, err = hub.HandleEvent(gameID, cp.ID, server.EventPlaceTile, payload)
		is.NoErr(err)
	}

	resp, broadcasts, err := hub.HandleEvent(gameID, cp.ID, server.EventCommitMove, nil)
	is.NoErr(err)
	cr := resp.Data.(server.CommitResponse)
	is.True(cr.Success)
	is.True(cr.MoveResult.Score > 0)
	is.Equal(cr.MoveResult.Words[0], "CAT")
	is.True(len(broadcasts) == 2)
}

func TestHub_CommitMoveIsIdempotentOnRetry(t *testing.T) {
	is := is.New(t)
	hub, st, gameID := newHubWithGame(t)
	alph := alphabet.EnglishAlphabet()
	cp := st.CurrentPlayer()
	ids := setRack(t, st, alph, cp.ID, "CAT", 100)

	row := st.Board.CenterR
	startCol := st.Board.CenterC - 1
	for i, id := range ids {
		payload, err := json.Marshal(map[string]any{"tile": uint32(id), "row": row, "col": startCol + i})
		is.NoErr(err)
		_, _, err = hub.HandleEvent(gameID, cp.ID, server.EventPlaceTile, payload)
		is.NoErr(err)
	}

	resp1, _, err := hub.HandleEvent(gameID, cp.ID, server.EventCommitMove, nil)
	is.NoErr(err)
	resp2, broadcasts2, err := hub.HandleEvent(gameID, cp.ID, server.EventCommitMove, nil)
	is.NoErr(err)
	is.Equal(resp1.Data.(server.CommitResponse).MoveResult.Score, resp2.Data.(server.CommitResponse).MoveResult.Score)
	is.Equal(len(broadcasts2), 0)
}

func TestHub_UnknownEventReturnsInvalidPayload(t *testing.T) {
	is := is.New(t)
	hub, _, gameID := newHubWithGame(t)
	_, _, err := hub.HandleEvent(gameID, "p1", "not-a-real-event", nil)
	is.True(err != nil)
}

func TestHub_UnknownGameReturnsNotInGame(t *testing.T) {
	is := is.New(t)
	store := game.NewStore()
	hub := server.NewHub(store, nil, nil)
	_, _, err := hub.HandleEvent("missing", "p1", server.EventPassTurn, nil)
	is.True(err != nil)
}

func TestHub_RemoveTileUnstagesByPosition(t *testing.T) {
	is := is.New(t)
	hub, st, gameID := newHubWithGame(t)
	alph := alphabet.EnglishAlphabet()
	cp := st.CurrentPlayer()
	ids := setRack(t, st, alph, cp.ID, "CAT", 100)

	row := st.Board.CenterR
	startCol := st.Board.CenterC - 1
	payload, err := json.Marshal(map[string]any{"tile": uint32(ids[0]), "row": row, "col": startCol})
	is.NoErr(err)
	_, _, err = hub.HandleEvent(gameID, cp.ID, server.EventPlaceTile, payload)
	is.NoErr(err)

	removePayload, err := json.Marshal(map[string]any{"row": row, "col": startCol})
	is.NoErr(err)
	resp, _, err := hub.HandleEvent(gameID, cp.ID, server.EventRemoveTile, removePayload)
	is.NoErr(err)
	rr := resp.Data.(server.RemoveTileResponse)
	is.True(rr.Success)
	is.True(rr.RemovedTile != nil)
	is.Equal(*rr.RemovedTile, uint32(ids[0]))
}
