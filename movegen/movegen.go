package movegen

import (
	"sort"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/gaddag"
)

// PlacedLetter is one newly placed tile within a Candidate move.
type PlacedLetter struct {
	Row, Col int
	TileID   alphabet.TileID
	Letter   alphabet.MachineLetter // face value drawn from the rack
	IsBlank  bool
	Chosen   alphabet.MachineLetter // effective letter if IsBlank
}

// Candidate is one fully-formed legal placement emitted by the generator.
type Candidate struct {
	Row, Col int // top-left (row-major) start of the main word
	Vertical bool
	Word     alphabet.MachineWord
	NewTiles []PlacedLetter
}

// Generator produces every legal placement for a rack on a board, per
// Gordon's algorithm (spec §4.4).
type Generator struct {
	Board  *board.Board
	Gaddag *gaddag.Gaddag
	Cross  *CrossCheckTable
}

func New(b *board.Board, gd *gaddag.Gaddag, cross *CrossCheckTable) *Generator {
	return &Generator{Board: b, Gaddag: gd, Cross: cross}
}

// rackState is the mutable 27-entry histogram (index 0 = blank, 1..26 =
// A..Z) the traversal consumes and restores in place, per design note §9
// ("Rack as histogram"). ids lets us reconcile a candidate back to actual
// owned Tile ids once a full placement is recorded.
type rackState struct {
	counts [27]int
	ids    [27][]alphabet.TileID
}

func newRackState(tiles []alphabet.Tile) *rackState {
	rs := &rackState{}
	for _, t := range tiles {
		idx := 0
		if !t.IsBlank {
			idx = int(t.Letter)
		}
		rs.counts[idx]++
		rs.ids[idx] = append(rs.ids[idx], t.ID)
	}
	return rs
}

func (rs *rackState) take(idx int) alphabet.TileID {
	rs.counts[idx]--
	id := rs.ids[idx][len(rs.ids[idx])-1]
	rs.ids[idx] = rs.ids[idx][:len(rs.ids[idx])-1]
	return id
}

func (rs *rackState) give(idx int, id alphabet.TileID) {
	rs.counts[idx]++
	rs.ids[idx] = append(rs.ids[idx], id)
}

// traversal carries the state of one Gen/GoOn walk from a single anchor
// along a single axis.
type traversal struct {
	gen        *Generator
	anchorR    int
	anchorC    int
	axis       Axis
	leftLimit  int
	rack       *rackState
	out        []Candidate
	placed     map[int]PlacedLetter // keyed by offset from anchor
	anyNewTile bool
}

func coord(anchorR, anchorC int, axis Axis, offset int) (int, int) {
	if axis == Horizontal {
		return anchorR, anchorC + offset
	}
	return anchorR + offset, anchorC
}

// GenerateMoves returns every legal placement for the given rack tiles.
func (g *Generator) GenerateMoves(rackTiles []alphabet.Tile) []Candidate {
	var all []Candidate
	anchors := g.findAnchors()
	rackSize := len(rackTiles)

	for _, an := range anchors {
		for _, axis := range []Axis{Horizontal, Vertical} {
			leftLimit := g.leftLimit(an[0], an[1], axis, rackSize)
			t := &traversal{
				gen:       g,
				anchorR:   an[0],
				anchorC:   an[1],
				axis:      axis,
				leftLimit: leftLimit,
				rack:      newRackState(rackTiles),
				placed:    map[int]PlacedLetter{},
			}
			t.gen(0, t.gen.Gaddag.GetRootNodeIndex())
			all = append(all, t.out...)
		}
	}
	return dedupe(all)
}

// findAnchors returns every anchor cell on the board (spec §4.4: empty,
// adjacent to an occupied cell, or the center cell on an empty board).
func (g *Generator) findAnchors() [][2]int {
	dim := g.Board.Dim
	if g.Board.IsEmpty() {
		return [][2]int{{g.Board.CenterR, g.Board.CenterC}}
	}
	var anchors [][2]int
	for r := 0; r < dim; r++ {
		for c := 0; c < dim; c++ {
			if g.Board.IsAnchor(r, c) {
				anchors = append(anchors, [2]int{r, c})
			}
		}
	}
	return anchors
}

// leftLimit is the number of consecutive empty cells immediately preceding
// the anchor along axis, capped by rack size (spec §4.4 "Left limit").
func (g *Generator) leftLimit(anchorR, anchorC int, axis Axis, rackSize int) int {
	limit := 0
	for limit < rackSize {
		r, c := coord(anchorR, anchorC, axis, -(limit + 1))
		cell := g.Board.Get(r, c)
		if cell == nil || cell.Tile != nil {
			break
		}
		limit++
	}
	return limit
}

// gen implements Gen(pos): try every admissible letter at the cell `pos`
// squares from the anchor, then hand each to step for the terminal check
// and recursion.
func (t *traversal) gen(pos int, node uint32) {
	r, c := coord(t.anchorR, t.anchorC, t.axis, pos)
	cell := t.gen.Board.Get(r, c)
	if cell == nil {
		return
	}

	if cell.Tile != nil {
		t.step(pos, node, cell.Tile.EffectiveLetter(), false, 0, false)
		return
	}

	cross := t.gen.Cross.Get(t.axis, r, c)

	for ml := alphabet.MachineLetter(1); ml <= 26; ml++ {
		if t.rack.counts[ml] == 0 || !cross.Has(ml) {
			continue
		}
		id := t.rack.take(int(ml))
		t.step(pos, node, ml, true, id, false)
		t.rack.give(int(ml), id)
	}

	if t.rack.counts[0] > 0 {
		for ml := alphabet.MachineLetter(1); ml <= 26; ml++ {
			if !cross.Has(ml) {
				continue
			}
			id := t.rack.take(0)
			t.step(pos, node, ml, true, id, true)
			t.rack.give(0, id)
		}
	}
}

// step tries placing `letter` at `pos` while standing at `node`. The
// terminal check (does this complete a legal word right here) and the
// continuation check (is there a further GADDAG arc for this letter) are
// independent: a letter can complete a word with no further arc (a word
// with no longer superstring in the lexicon), or have an arc with no
// terminal flag (a valid prefix that isn't itself a word), or both.
func (t *traversal) step(pos int, node uint32, letter alphabet.MachineLetter, placed bool, tileID alphabet.TileID, isBlank bool) {
	isTerminal := t.gen.Gaddag.InLetterSet(letter, node)
	hasArc := t.gen.Gaddag.HasTransition(node, letter)
	if !isTerminal && !hasArc {
		return
	}

	r, c := coord(t.anchorR, t.anchorC, t.axis, pos)
	t.placed[pos] = PlacedLetter{Row: r, Col: c, TileID: tileID, Letter: letter, IsBlank: isBlank, Chosen: letter}
	wasNew := t.anyNewTile
	if placed {
		t.anyNewTile = true
	}
	defer func() {
		delete(t.placed, pos)
		t.anyNewTile = wasNew
	}()

	if pos <= 0 {
		leftR, leftC := coord(t.anchorR, t.anchorC, t.axis, pos-1)
		leftCell := t.gen.Board.Get(leftR, leftC)
		leftOpen := leftCell == nil || leftCell.Tile == nil
		afterR, afterC := coord(t.anchorR, t.anchorC, t.axis, 1)
		afterCell := t.gen.Board.Get(afterR, afterC)
		afterOpen := afterCell == nil || afterCell.Tile == nil
		if isTerminal && leftOpen && afterOpen && t.anyNewTile {
			t.record()
		}
		if hasArc {
			child := t.gen.Gaddag.NextNodeIdx(node, letter)
			if pos > -t.leftLimit || !leftOpen {
				t.gen(pos-1, child)
			}
			if leftOpen && t.gen.Gaddag.HasTransition(child, alphabet.SeparationMachineLetter) {
				sepNode := t.gen.Gaddag.NextNodeIdx(child, alphabet.SeparationMachineLetter)
				t.gen(1, sepNode)
			}
		}
		return
	}

	rightR, rightC := coord(t.anchorR, t.anchorC, t.axis, pos+1)
	rightCell := t.gen.Board.Get(rightR, rightC)
	rightOpen := rightCell == nil || rightCell.Tile == nil
	if isTerminal && rightOpen && t.anyNewTile {
		t.record()
	}
	if hasArc {
		child := t.gen.Gaddag.NextNodeIdx(node, letter)
		t.gen(pos+1, child)
	}
}

func minMaxPos(placed map[int]PlacedLetter) (lo, hi int) {
	first := true
	for p := range placed {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		if p < lo {
			lo = p
		}
		if p > hi {
			hi = p
		}
	}
	return lo, hi
}

// record materializes the currently-placed letters into a Candidate.
func (t *traversal) record() {
	lo, hi := minMaxPos(t.placed)

	word := make(alphabet.MachineWord, 0, hi-lo+1)
	var newTiles []PlacedLetter
	startR, startC := coord(t.anchorR, t.anchorC, t.axis, lo)

	for p := lo; p <= hi; p++ {
		pl, ok := t.placed[p]
		if !ok {
			r, c := coord(t.anchorR, t.anchorC, t.axis, p)
			cell := t.gen.Board.Get(r, c)
			if cell == nil || cell.Tile == nil {
				return
			}
			word = append(word, cell.Tile.EffectiveLetter())
			continue
		}
		if pl.IsBlank {
			word = append(word, pl.Chosen|alphabet.BlankMask)
		} else {
			word = append(word, pl.Chosen)
		}
		r, c := coord(t.anchorR, t.anchorC, t.axis, p)
		if t.gen.Board.Get(r, c).Tile == nil {
			newTiles = append(newTiles, pl)
		}
	}
	if len(newTiles) == 0 || len(word) < 2 {
		return
	}
	t.out = append(t.out, Candidate{
		Row:      startR,
		Col:      startC,
		Vertical: t.axis == Vertical,
		Word:     word,
		NewTiles: newTiles,
	})
}

// dedupe removes duplicate candidates: the same legal word can be found
// from more than one anchor when several anchors sit along the same run,
// since each anchor's walk independently re-derives any placement whose
// span happens to cover it.
func dedupe(cands []Candidate) []Candidate {
	type key struct {
		r, c int
		v    bool
		w    string
	}
	seen := make(map[key]bool, len(cands))
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		k := key{c.Row, c.Col, c.Vertical, machineWordKey(c.Word)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		if out[i].Col != out[j].Col {
			return out[i].Col < out[j].Col
		}
		return !out[i].Vertical && out[j].Vertical
	})
	return out
}

func machineWordKey(mw alphabet.MachineWord) string {
	b := make([]byte, len(mw))
	for i, ml := range mw {
		b[i] = byte(ml)
	}
	return string(b)
}
