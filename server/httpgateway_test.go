package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/game"
	"github.com/wordforge/lexigrid/server"
)

func TestHTTPGateway_PassTurnRoundTrip(t *testing.T) {
	is := is.New(t)
	st := newTestGame(t)
	store := game.NewStore()
	store.Put(st)
	hub := server.NewHub(store, nil, nil)
	gw := server.NewHTTPGateway(hub)

	body, err := json.Marshal(map[string]any{
		"gameId":   st.ID,
		"playerId": st.CurrentPlayer().ID,
		"event":    server.EventPassTurn,
	})
	is.NoErr(err)

	req := httptest.NewRequest(http.MethodPost, "/event", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	gw.Handler().ServeHTTP(rec, req)

	is.Equal(rec.Code, http.StatusOK)
	var resp server.SuccessResponse
	is.NoErr(json.Unmarshal(rec.Body.Bytes(), &resp))
	is.True(resp.Success)
}

func TestHTTPGateway_RejectsNonPost(t *testing.T) {
	is := is.New(t)
	store := game.NewStore()
	hub := server.NewHub(store, nil, nil)
	gw := server.NewHTTPGateway(hub)

	req := httptest.NewRequest(http.MethodGet, "/event", nil)
	rec := httptest.NewRecorder()
	gw.Handler().ServeHTTP(rec, req)
	is.Equal(rec.Code, http.StatusMethodNotAllowed)
}

func TestHTTPGateway_UnknownGameReturnsConflictStatus(t *testing.T) {
	is := is.New(t)
	store := game.NewStore()
	hub := server.NewHub(store, nil, nil)
	gw := server.NewHTTPGateway(hub)

	body, err := json.Marshal(map[string]any{"gameId": "missing", "playerId": "p1", "event": server.EventPassTurn})
	is.NoErr(err)
	req := httptest.NewRequest(http.MethodPost, "/event", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	gw.Handler().ServeHTTP(rec, req)
	is.Equal(rec.Code, http.StatusConflict)
}
