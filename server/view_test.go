package server_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/game"
	"github.com/wordforge/lexigrid/lexicon"
	"github.com/wordforge/lexigrid/server"
)

func newTestGame(t *testing.T) *game.State {
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
	return st
}

func TestNewGameStateView_ProjectsPlayersAndPhase(t *testing.T) {
	is := is.New(t)
	st := newTestGame(t)

	view := server.NewGameStateView(st)
	is.Equal(view.ID, st.ID)
	is.Equal(view.Phase, "playing")
	is.Equal(len(view.Players), 2)
	is.Equal(view.Players[0].ID, "p1")
	is.Equal(view.Players[0].Name, "Alice")
	is.Equal(view.Players[0].RackSize, st.Players[0].Rack.NumTiles())
	is.Equal(view.CurrentPlayerID, st.CurrentPlayer().ID)
}
