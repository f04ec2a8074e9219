package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/movegen"
	"github.com/wordforge/lexigrid/zobrist"
)

// Phase is a game's position in its state machine (spec §4.6: "setup →
// playing → finished", no transition back).
type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// MoveKind classifies a history entry (spec §3).
type MoveKind string

const (
	MoveKindWord     MoveKind = "word"
	MoveKindExchange MoveKind = "exchange"
	MoveKindPass     MoveKind = "pass"
)

// HistoryEntry records one completed turn.
type HistoryEntry struct {
	Turn      int
	PlayerID  string
	Kind      MoveKind
	Words     []string
	RowStart  int
	ColStart  int
	Vertical  bool
	Score     int
	Timestamp time.Time
}

// Player is one participant in a game.
type Player struct {
	ID              string
	Name            string
	Rack            *alphabet.Rack
	EndGameDeclared bool
	Connected       bool
}

// StagedTile is one tile the current player has placed on the board but not
// yet committed.
type StagedTile struct {
	TileID alphabet.TileID
	Row    int
	Col    int
	// Chosen is the letter a blank tile stands in for. Ignored for
	// non-blank tiles; required by the schema boundary (C12) for blanks.
	Chosen alphabet.MachineLetter
}

// PendingPlacement is the per-game scratchpad of staged-but-uncommitted
// tiles (spec §3). It is destroyed on commit, on explicit clear, or when
// the turn ends.
type PendingPlacement struct {
	PlayerID string
	Tiles    []StagedTile
}

// State is one game's full mutable state (spec §3 "Game state").
type State struct {
	ID                string
	Rules             *Rules
	Board             *board.Board
	Players           []*Player
	CurrentPlayerIdx  int
	Bag               *alphabet.Bag
	Phase             Phase
	Turn              int
	ConsecutivePasses int
	History           []HistoryEntry
	Pending           *PendingPlacement
	Cross             *movegen.CrossCheckTable
	tileIDSeq         alphabet.TileID
	zob               *zobrist.Table

	// PowerUps is nil unless a PowerUpSet was attached at creation (spec §9
	// Open Question ii). See PowerUpHooks for why this is a game-local
	// interface rather than a concrete powerup.Set.
	PowerUps PowerUpHooks
}

// NewGame builds a fresh game in PhaseSetup: an empty board, a full shuffled
// bag, and one rack of up to 7 tiles per named player (spec §3/§4.6).
func NewGame(rules *Rules, playerIDs []string, playerNames map[string]string) (*State, error) {
	b := rules.NewBoard()
	bag := rules.LetterDistribution().MakeBag(rules.Lexicon().Alphabet())

	players := make([]*Player, 0, len(playerIDs))
	var tileIDSeq alphabet.TileID
	for _, pid := range playerIDs {
		rack := alphabet.NewRack()
		drawn := bag.DrawAtMost(7)
		for _, ml := range drawn {
			t := alphabet.Tile{ID: tileIDSeq, Letter: ml, Value: rules.LetterDistribution().Value(ml)}
			if ml == alphabet.BlankMachineLetter {
				t.IsBlank = true
				t.Value = 0
			}
			tileIDSeq++
			rack.Add(t)
		}
		players = append(players, &Player{ID: pid, Name: playerNames[pid], Rack: rack, Connected: true})
	}

	cross := movegen.NewCrossCheckTable(b.Dim)
	cross.Recompute(b, rules.Lexicon())

	return &State{
		ID:        uuid.NewString(),
		Rules:     rules,
		Board:     b,
		Players:   players,
		Bag:       bag,
		Phase:     PhaseSetup,
		Cross:     cross,
		tileIDSeq: tileIDSeq,
		zob:       zobrist.New(b.Dim, len(players)),
	}, nil
}

// PositionHash fingerprints the current board, the current player's rack,
// and whose turn it is (package zobrist). Exposed for any caller that
// needs to recognize two State snapshots as the same position — e.g. a
// reconnecting client comparing its last-known board against the
// authoritative one before deciding whether to replay pending actions.
func (s *State) PositionHash() uint64 {
	cp := s.CurrentPlayer()
	if cp == nil {
		return 0
	}
	return s.zob.Hash(s.Board, cp.Rack.Counts(), s.CurrentPlayerIdx)
}

// CurrentPlayer returns the player whose turn it is.
func (s *State) CurrentPlayer() *Player {
	if len(s.Players) == 0 {
		return nil
	}
	return s.Players[s.CurrentPlayerIdx]
}

// PlayerByID finds a player by id.
func (s *State) PlayerByID(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// StartGame transitions setup -> playing once at least two players are
// present (spec §4.6 state machine).
func (s *State) StartGame() error {
	if s.Phase != PhaseSetup {
		return nil
	}
	if len(s.Players) < 2 {
		return errNotEnoughPlayers
	}
	s.Phase = PhasePlaying
	return nil
}

var errNotEnoughPlayers = stateErr("game: at least two players are required to start")

type stateErr string

func (e stateErr) Error() string { return string(e) }

// ClearPending discards the current player's staged-but-uncommitted tiles.
func (s *State) ClearPending() {
	s.Pending = nil
}

// AdvanceTurn moves current_player_index to the next player who has not
// declared end-of-game (spec §4.6: "advance current_player_index modulo the
// number of players not marked end-of-game").
func (s *State) AdvanceTurn() {
	n := len(s.Players)
	if n == 0 {
		return
	}
	for i := 1; i <= n; i++ {
		idx := (s.CurrentPlayerIdx + i) % n
		if !s.Players[idx].EndGameDeclared {
			s.CurrentPlayerIdx = idx
			return
		}
	}
}

// RefreshCrossChecks recomputes the cross-check table from the current
// board (spec §4.4: "refreshed after each committed move").
func (s *State) RefreshCrossChecks() {
	s.Cross.Recompute(s.Board, s.Rules.Lexicon())
}

// AllEnded reports whether every player has declared end-of-game.
func (s *State) AllEnded() bool {
	for _, p := range s.Players {
		if !p.EndGameDeclared {
			return false
		}
	}
	return true
}

// FinalizeScores applies spec §4.6's end-game scoring adjustment: each
// non-ending player loses the sum of their remaining tile values; the
// player who ended with an empty rack gains the sum of everyone else's
// remaining tile values. Returns a map of playerID -> score delta.
func (s *State) FinalizeScores() map[string]int {
	deltas := make(map[string]int, len(s.Players))
	var emptyRackPlayer *Player
	total := 0
	for _, p := range s.Players {
		v := p.Rack.ScoreOn(s.Rules.LetterDistribution())
		deltas[p.ID] = -v
		total += v
		if p.Rack.NumTiles() == 0 {
			emptyRackPlayer = p
		}
	}
	if emptyRackPlayer != nil {
		// Their own remaining-tile sum is 0 (hence deltas[...] == 0 already);
		// they gain everyone else's remaining-tile total.
		deltas[emptyRackPlayer.ID] = total
	}
	return deltas
}
