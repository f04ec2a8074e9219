package game_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/game"
	"github.com/wordforge/lexigrid/lexicon"
)

// testWords mirrors the scenario lexicon L from spec §8, kept tiny and
// closed so test racks can be pinned down by hand.
var testWords = []string{"CAT", "CATS", "AT", "TO", "SO", "CAR", "CARS", "CAB", "HAT", "HATS"}

func newTestGame(t *testing.T) (*game.State, *alphabet.Alphabet) {
	t.Helper()
	is := is.New(t)
	alph := alphabet.EnglishAlphabet()
	lex, err := lexicon.FromWords("test", alph, testWords)
	is.NoErr(err)
	rules, err := game.NewRules(lex, "")
	is.NoErr(err)
	st, err := game.NewGame(rules, []string{"p1", "p2"}, map[string]string{"p1": "Alice", "p2": "Bob"})
	is.NoErr(err)
	is.NoErr(st.StartGame())
	return st, alph
}

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

func TestCommit_OpeningMoveMustCoverCenter(t *testing.T) {
	is := is.New(t)
	st, alph := newTestGame(t)
	cp := st.CurrentPlayer()
	ids := setRack(t, st, alph, cp.ID, "CAT", 100)

	row, col := st.Board.CenterR+3, st.Board.CenterC
	for i, id := range ids {
		if serr := st.Stage(cp.ID, id, row, col+i, 0); serr != nil {
			t.Fatalf("stage: %v", serr)
		}
	}

	_, err := st.Commit(cp.ID)
	is.True(err != nil)
	is.Equal(string(err.Kind), "placement_disconnected")
}

func TestCommit_PlaysOpeningWordOverCenter(t *testing.T) {
	is := is.New(t)
	st, alph := newTestGame(t)
	cp := st.CurrentPlayer()
	otherID := st.Players[1].ID
	if cp.ID == st.Players[1].ID {
		otherID = st.Players[0].ID
	}
	ids := setRack(t, st, alph, cp.ID, "CAT", 100)

	row := st.Board.CenterR
	startCol := st.Board.CenterC - 1
	for i, id := range ids {
		if serr := st.Stage(cp.ID, id, row, startCol+i, 0); serr != nil {
			t.Fatalf("stage: %v", serr)
		}
	}

	m, err := st.Commit(cp.ID)
	is.True(err == nil)
	is.True(m != nil)
	is.True(m.Score() > 0)
	is.Equal(st.Board.Get(row, startCol+1).Tile.EffectiveLetter(), mustVal(t, alph, 'A'))
	is.True(st.CurrentPlayer().ID == otherID)
	is.Equal(len(st.History), 1)
	is.Equal(st.History[0].Words[0], "CAT")
}

func TestCommit_RejectsWordNotInLexicon(t *testing.T) {
	is := is.New(t)
	st, alph := newTestGame(t)
	cp := st.CurrentPlayer()
	ids := setRack(t, st, alph, cp.ID, "ZZZ", 200)

	row := st.Board.CenterR
	startCol := st.Board.CenterC - 1
	for i, id := range ids {
		if serr := st.Stage(cp.ID, id, row, startCol+i, 0); serr != nil {
			t.Fatalf("stage: %v", serr)
		}
	}

	_, err := st.Commit(cp.ID)
	is.True(err != nil)
	is.Equal(string(err.Kind), "invalid_word")
}

func TestCommit_RejectsWhenNotPlayersTurn(t *testing.T) {
	is := is.New(t)
	st, alph := newTestGame(t)
	cp := st.CurrentPlayer()
	other := st.Players[0]
	if other.ID == cp.ID {
		other = st.Players[1]
	}
	ids := setRack(t, st, alph, other.ID, "CAT", 300)

	err := st.Stage(other.ID, ids[0], st.Board.CenterR, st.Board.CenterC, 0)
	is.True(err != nil)
	is.Equal(string(err.Kind), "not_your_turn")

	_, cerr := st.Commit(other.ID)
	is.True(cerr != nil)
	is.Equal(string(cerr.Kind), "not_your_turn")
}

func TestPass_SixConsecutivePassesEndsGame(t *testing.T) {
	is := is.New(t)
	st, _ := newTestGame(t)
	for i := 0; i < 6; i++ {
		cp := st.CurrentPlayer()
		err := st.Pass(cp.ID)
		is.True(err == nil)
	}
	is.Equal(st.Phase, game.PhaseFinished)
}

func TestExchange_RejectsWhenBagTooSmall(t *testing.T) {
	is := is.New(t)
	st, alph := newTestGame(t)
	cp := st.CurrentPlayer()
	ids := setRack(t, st, alph, cp.ID, "CAT", 400)

	st.Bag.DrawAtMost(st.Bag.Count())

	err := st.Exchange(cp.ID, ids, 7)
	is.True(err != nil)
	is.Equal(string(err.Kind), "bag_too_small")
}

func mustVal(t *testing.T, alph *alphabet.Alphabet, r rune) alphabet.MachineLetter {
	t.Helper()
	ml, err := alph.Val(r)
	is.New(t).NoErr(err)
	return ml
}
