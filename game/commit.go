// Package game implements the commit pipeline (C7, spec §4.6): the
// authoritative routine that validates a staged placement, scores it,
// mutates game state, refills racks, and advances the turn. Grounded on the
// teacher's mechanics.go PlayMove/UpdateTurnHistory shape, generalized into
// spec §4.6's full ordered precondition list and typed error taxonomy
// (gameerr), neither of which the teacher's panic-based version carries.
package game

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/gameerr"
	"github.com/wordforge/lexigrid/move"
	"github.com/wordforge/lexigrid/movegen"
)

// requireCurrentPlayer implements commit pipeline step 1 shared by every
// move kind: sender must be the current player in a playing-phase game.
func (s *State) requireCurrentPlayer(playerID string) *gameerr.Error {
	if s.Phase != PhasePlaying {
		return gameerr.New(gameerr.NotInGame, "game is not in the playing phase")
	}
	cp := s.CurrentPlayer()
	if cp == nil || cp.ID != playerID {
		return gameerr.New(gameerr.NotYourTurn, "it is not this player's turn")
	}
	return nil
}

// Commit validates and applies the current player's pending placement
// (spec §4.6 steps 1-8). On success the pending placement is cleared,
// consumed tiles leave the rack, the rack is refilled, history records the
// turn, the turn advances, and cross-checks are refreshed, all within this
// call.
func (s *State) Commit(playerID string) (*move.Move, *gameerr.Error) {
	if err := s.requireCurrentPlayer(playerID); err != nil {
		return nil, err
	}
	if s.Pending == nil || len(s.Pending.Tiles) == 0 {
		return nil, gameerr.New(gameerr.PlacementNotContiguous, "no tiles are staged")
	}
	tiles := s.Pending.Tiles
	cp := s.CurrentPlayer()

	vertical, aerr := s.inferAxis(tiles)
	if aerr != nil {
		return nil, aerr
	}
	if err := s.checkContiguity(tiles, vertical); err != nil {
		return nil, err
	}
	if err := s.checkConnectivity(tiles); err != nil {
		return nil, err
	}

	owned, owners, oerr := s.checkOwnership(cp, tiles)
	if oerr != nil {
		return nil, oerr
	}

	cand, words, werr := s.enumerateWords(tiles, vertical, owned)
	if werr != nil {
		return nil, werr
	}
	var bad []string
	for _, w := range words {
		if !s.Rules.Lexicon().HasWord(w) {
			bad = append(bad, w)
		}
	}
	if len(bad) > 0 {
		return nil, gameerr.NewInvalidWord(bad)
	}

	score := move.ScoreWithBonus(s.Board, s.Rules.LetterDistribution(), cand, s.Rules.Variant().GetBingoBonus())

	for _, nt := range cand.NewTiles {
		t := owned[nt.TileID]
		if t.IsBlank {
			t.ChosenLetter = nt.Chosen
		}
		if err := s.Board.Place(nt.Row, nt.Col, &t); err != nil {
			return nil, gameerr.New(gameerr.InvalidPosition, "cell is already occupied")
		}
		owners[nt.TileID].Rack.Remove(nt.TileID)
	}

	s.refillRack(cp)

	recorded := score
	if s.PowerUps != nil {
		var sidePayments map[string]int
		recorded, sidePayments = s.PowerUps.AdjustScore(playerID, words, score)
		for toPlayerID, amt := range sidePayments {
			s.History = append(s.History, HistoryEntry{
				Turn: s.Turn, PlayerID: toPlayerID, Kind: MoveKindWord,
				Score: amt, Timestamp: now(),
			})
		}
	}

	m := move.NewScoringMove(recorded, cand.Word, rackLeave(cp), cand.Vertical, len(cand.NewTiles), s.Rules.Lexicon().Alphabet(), cand.Row, cand.Col)

	s.History = append(s.History, HistoryEntry{
		Turn: s.Turn, PlayerID: playerID, Kind: MoveKindWord, Words: words,
		RowStart: cand.Row, ColStart: cand.Col, Vertical: cand.Vertical,
		Score: recorded, Timestamp: now(),
	})
	s.ConsecutivePasses = 0
	s.Turn++
	s.Pending = nil
	s.RefreshCrossChecks()
	s.AdvanceTurn()

	log.Info().Str("game_id", s.ID).Int("turn", s.Turn).Str("player", playerID).
		Str("action", "play").Int("score", recorded).Strs("words", words).Msg("move committed")

	return m, nil
}

// Exchange implements spec §4.6's exchange move kind: requires the bag to
// hold at least minBagSize tiles, returns the named tiles, shuffles, and
// draws the same count back.
func (s *State) Exchange(playerID string, tileIDs []alphabet.TileID, minBagSize int) *gameerr.Error {
	if err := s.requireCurrentPlayer(playerID); err != nil {
		return err
	}
	if s.Bag.Count() < minBagSize {
		return gameerr.New(gameerr.BagTooSmall, "not enough tiles remain in the bag to exchange")
	}
	cp := s.CurrentPlayer()

	for _, id := range tileIDs {
		if _, ok := lookupRackTile(cp.Rack, id); !ok {
			return gameerr.New(gameerr.TileNotOwned, "exchanged tile is not on the player's rack")
		}
	}
	var toReturn []alphabet.MachineLetter
	for _, id := range tileIDs {
		t, _ := cp.Rack.Remove(id)
		toReturn = append(toReturn, t.Letter)
	}
	drawn := s.Bag.Exchange(toReturn)
	for _, ml := range drawn {
		t := alphabet.Tile{ID: s.nextTileID(), Letter: ml, Value: s.Rules.LetterDistribution().Value(ml)}
		if ml == alphabet.BlankMachineLetter {
			t.IsBlank = true
		}
		cp.Rack.Add(t)
	}

	s.History = append(s.History, HistoryEntry{Turn: s.Turn, PlayerID: playerID, Kind: MoveKindExchange, Timestamp: now()})
	s.ConsecutivePasses = 0
	s.Turn++
	s.Pending = nil
	s.AdvanceTurn()

	log.Info().Str("game_id", s.ID).Int("turn", s.Turn).Str("player", playerID).Str("action", "exchange").Msg("tiles exchanged")
	return nil
}

// Pass implements spec §4.6's pass move kind. Six consecutive passes end
// the game.
func (s *State) Pass(playerID string) *gameerr.Error {
	if err := s.requireCurrentPlayer(playerID); err != nil {
		return err
	}
	s.History = append(s.History, HistoryEntry{Turn: s.Turn, PlayerID: playerID, Kind: MoveKindPass, Timestamp: now()})
	s.ConsecutivePasses++
	s.Turn++
	s.Pending = nil
	if s.ConsecutivePasses >= 6 {
		s.Phase = PhaseFinished
		log.Info().Str("game_id", s.ID).Msg("game ended: six consecutive passes")
		return nil
	}
	s.AdvanceTurn()
	log.Info().Str("game_id", s.ID).Int("turn", s.Turn).Str("player", playerID).Str("action", "pass").Msg("turn passed")
	return nil
}

// DeclareEndGame marks a player as having declared end-of-game; when every
// player has, the game transitions to finished. Final scoring is not
// applied here: FinalizeScores is not called and no score changes.
func (s *State) DeclareEndGame(playerID string) *gameerr.Error {
	if err := s.requireCurrentPlayer(playerID); err != nil {
		return err
	}
	cp := s.CurrentPlayer()
	cp.EndGameDeclared = true
	s.Pending = nil
	if s.AllEnded() {
		s.Phase = PhaseFinished
		log.Info().Str("game_id", s.ID).Msg("game ended: all players declared end-of-game")
		return nil
	}
	s.AdvanceTurn()
	return nil
}

func (s *State) refillRack(p *Player) {
	need := 7 - p.Rack.NumTiles()
	if need <= 0 {
		return
	}
	drawn := s.Bag.DrawAtMost(need)
	for _, ml := range drawn {
		t := alphabet.Tile{ID: s.nextTileID(), Letter: ml, Value: s.Rules.LetterDistribution().Value(ml)}
		if ml == alphabet.BlankMachineLetter {
			t.IsBlank = true
		}
		p.Rack.Add(t)
	}
}

func rackLeave(p *Player) alphabet.MachineWord {
	leave := make(alphabet.MachineWord, 0, p.Rack.NumTiles())
	for _, t := range p.Rack.Tiles() {
		leave = append(leave, t.EffectiveLetter())
	}
	return leave
}

var nowFn = time.Now

func now() time.Time { return nowFn() }

func (s *State) nextTileID() alphabet.TileID {
	id := s.tileIDSeq
	s.tileIDSeq++
	return id
}

// checkOwnership implements commit pipeline step 6: every staged tile id
// must belong to a rack the sender is entitled to play from — ordinarily
// the sender's own rack, except when an active tile-theft power-up effect
// (spec §9 Open Question ii, BeforeValidate hook point) claims the tile
// for a different player's rack for this one commit. It returns both the
// Tile values (for scoring/placement) and which player's rack each came
// from, so the later placement loop removes it from the same rack it was
// validated against.
func (s *State) checkOwnership(p *Player, tiles []StagedTile) (map[alphabet.TileID]alphabet.Tile, map[alphabet.TileID]*Player, *gameerr.Error) {
	owned := make(map[alphabet.TileID]alphabet.Tile, len(tiles))
	owners := make(map[alphabet.TileID]*Player, len(tiles))
	for _, st := range tiles {
		owner := p
		if s.PowerUps != nil {
			if ownerID, ok := s.PowerUps.OwnerOverride(st.TileID); ok {
				if o := s.PlayerByID(ownerID); o != nil {
					owner = o
				}
			}
		}
		t, ok := lookupRackTile(owner.Rack, st.TileID)
		if !ok {
			return nil, nil, gameerr.New(gameerr.TileNotOwned, "a staged tile is not on the current player's rack")
		}
		owned[st.TileID] = t
		owners[st.TileID] = owner
	}
	return owned, owners, nil
}

// inferAxis implements commit pipeline step 3: every staged tile must lie
// on a single row or a single column. A single staged tile has no axis of
// its own; it inherits whichever axis has an adjacent occupied board cell
// (by the time axis resolution matters, step 5's connectivity check
// guarantees one exists, except for a lone tile on an empty board, which
// forms a one-letter word and is rejected at the lexicon step regardless
// of which axis is picked).
func (s *State) inferAxis(tiles []StagedTile) (vertical bool, err *gameerr.Error) {
	minR, maxR, minC, maxC := tiles[0].Row, tiles[0].Row, tiles[0].Col, tiles[0].Col
	for _, t := range tiles[1:] {
		if t.Row < minR {
			minR = t.Row
		}
		if t.Row > maxR {
			maxR = t.Row
		}
		if t.Col < minC {
			minC = t.Col
		}
		if t.Col > maxC {
			maxC = t.Col
		}
	}
	if minR == maxR && minC == maxC {
		r, c := minR, minC
		if occupied(s.Board.Get(r, c-1)) || occupied(s.Board.Get(r, c+1)) {
			return false, nil
		}
		if occupied(s.Board.Get(r-1, c)) || occupied(s.Board.Get(r+1, c)) {
			return true, nil
		}
		return false, nil
	}
	if minR == maxR {
		return false, nil
	}
	if minC == maxC {
		return true, nil
	}
	return false, gameerr.New(gameerr.PlacementNotLinear, "staged tiles are not all on one row or one column")
}

func occupied(c *board.Cell) bool { return c != nil && c.Tile != nil }

// checkContiguity implements commit pipeline step 4: between the minimum
// and maximum staged position along the main axis, every cell must already
// be filled, either by a staged tile or a previously committed one.
func (s *State) checkContiguity(tiles []StagedTile, vertical bool) *gameerr.Error {
	staged := make(map[int]bool, len(tiles))
	lo, hi := axisPos(tiles[0], vertical), axisPos(tiles[0], vertical)
	for _, t := range tiles {
		p := axisPos(t, vertical)
		staged[p] = true
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	cross := crossPos(tiles[0], vertical)
	for p := lo; p <= hi; p++ {
		if staged[p] {
			continue
		}
		r, c := coordAt(p, cross, vertical)
		cell := s.Board.Get(r, c)
		if cell == nil || cell.Tile == nil {
			return gameerr.New(gameerr.PlacementNotContiguous, "staged tiles leave a gap in the main word")
		}
	}
	return nil
}

// checkConnectivity implements commit pipeline step 5: the move is legal
// only if the board was empty and the placement covers the center square,
// or at least one new tile is orthogonally adjacent to an already
// committed tile.
func (s *State) checkConnectivity(tiles []StagedTile) *gameerr.Error {
	if s.Board.IsEmpty() {
		for _, t := range tiles {
			if t.Row == s.Board.CenterR && t.Col == s.Board.CenterC {
				return nil
			}
		}
		return gameerr.New(gameerr.PlacementDisconnected, "the opening move must cover the center square")
	}
	for _, t := range tiles {
		if s.Board.HasAdjacentTile(t.Row, t.Col) {
			return nil
		}
	}
	return gameerr.New(gameerr.PlacementDisconnected, "placement does not connect to any existing tile")
}

func axisPos(t StagedTile, vertical bool) int {
	if vertical {
		return t.Row
	}
	return t.Col
}

func crossPos(t StagedTile, vertical bool) int {
	if vertical {
		return t.Col
	}
	return t.Row
}

func coordAt(axisP, crossP int, vertical bool) (row, col int) {
	if vertical {
		return axisP, crossP
	}
	return crossP, axisP
}

// enumerateWords implements commit pipeline step 7's word collection: it
// extends the staged run outward through already-committed tiles to find
// the full main word, and walks the perpendicular axis from each new tile
// to collect any cross-words formed. It also assembles the movegen
// Candidate used for scoring (spec §4.5).
func (s *State) enumerateWords(tiles []StagedTile, vertical bool, owned map[alphabet.TileID]alphabet.Tile) (movegen.Candidate, []string, *gameerr.Error) {
	alph := s.Rules.Lexicon().Alphabet()
	cross := crossPos(tiles[0], vertical)

	lo, hi := axisPos(tiles[0], vertical), axisPos(tiles[0], vertical)
	stagedByAxis := make(map[int]StagedTile, len(tiles))
	for _, t := range tiles {
		p := axisPos(t, vertical)
		stagedByAxis[p] = t
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	for {
		r, c := coordAt(lo-1, cross, vertical)
		cell := s.Board.Get(r, c)
		if cell == nil || cell.Tile == nil {
			break
		}
		lo--
	}
	for {
		r, c := coordAt(hi+1, cross, vertical)
		cell := s.Board.Get(r, c)
		if cell == nil || cell.Tile == nil {
			break
		}
		hi++
	}

	word := make(alphabet.MachineWord, 0, hi-lo+1)
	newTiles := make([]movegen.PlacedLetter, 0, len(tiles))
	for p := lo; p <= hi; p++ {
		r, c := coordAt(p, cross, vertical)
		if st, ok := stagedByAxis[p]; ok {
			t := owned[st.TileID]
			letter := t.Letter
			if t.IsBlank {
				letter = st.Chosen
			}
			word = append(word, letter)
			newTiles = append(newTiles, movegen.PlacedLetter{
				Row: r, Col: c, TileID: st.TileID, Letter: t.Letter, IsBlank: t.IsBlank, Chosen: st.Chosen,
			})
			continue
		}
		cell := s.Board.Get(r, c)
		word = append(word, cell.Tile.EffectiveLetter())
	}

	startR, startC := coordAt(lo, cross, vertical)
	cand := movegen.Candidate{Row: startR, Col: startC, Vertical: vertical, Word: word, NewTiles: newTiles}

	if len(newTiles) == 0 {
		return cand, nil, gameerr.New(gameerr.PlacementNotContiguous, "no tiles are staged")
	}
	words := make([]string, 0, 1+len(tiles))
	if len(word) >= 2 {
		words = append(words, word.UserVisible(alph))
	}

	for _, st := range tiles {
		t := owned[st.TileID]
		letter := t.Letter
		if t.IsBlank {
			letter = st.Chosen
		}
		cwLo, cwHi := crossPos(st, vertical), crossPos(st, vertical)
		for {
			r, c := crossCoordAt(st, vertical, cwLo-1)
			cell := s.Board.Get(r, c)
			if cell == nil || cell.Tile == nil {
				break
			}
			cwLo--
		}
		for {
			r, c := crossCoordAt(st, vertical, cwHi+1)
			cell := s.Board.Get(r, c)
			if cell == nil || cell.Tile == nil {
				break
			}
			cwHi++
		}
		if cwLo == cwHi {
			continue
		}
		cw := make(alphabet.MachineWord, 0, cwHi-cwLo+1)
		for p := cwLo; p <= cwHi; p++ {
			if p == crossPos(st, vertical) {
				cw = append(cw, letter)
				continue
			}
			r, c := crossCoordAt(st, vertical, p)
			cell := s.Board.Get(r, c)
			cw = append(cw, cell.Tile.EffectiveLetter())
		}
		words = append(words, cw.UserVisible(alph))
	}

	if len(words) == 0 {
		return cand, nil, gameerr.New(gameerr.InvalidWord, "placement does not form any word of length two or more")
	}

	return cand, words, nil
}

// crossCoordAt returns the board coordinate obtained by moving the staged
// tile st along the axis perpendicular to vertical by p steps from that
// axis's origin.
func crossCoordAt(st StagedTile, vertical bool, p int) (row, col int) {
	if vertical {
		return st.Row, p
	}
	return p, st.Col
}
