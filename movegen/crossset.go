// Package movegen implements the anchor-based move generator (C5, spec
// §4.4): Gordon's algorithm walking the GADDAG from every anchor, bounded
// by rack tiles and validated against precomputed cross-check sets.
//
// macondo's own movegen.go was not present in the retrieval pack (only
// gaddag/interface.go and gaddagmaker/make_gaddag.go were); this package is
// written directly from spec §4.4's pseudocode, using the GADDAG arc model
// those two files establish, cross-checked against GoSkrafl's movegen.go
// for the anchor/axis/cross-check vocabulary (see DESIGN.md).
package movegen

import (
	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/lexicon"
)

// Axis identifies a main direction of play.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) Perpendicular() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// CrossCheckTable holds, for every empty cell and for each axis a player
// might place a tile along, the set of letters that would form a legal
// perpendicular word (spec §4.4 "Cross-check set"; bitmap rep per design
// note §9). crossSets[Horizontal][r][c] is the set usable when playing a
// tile at (r, c) as part of a HORIZONTAL word — i.e. it checks the
// VERTICAL cross-word through that cell, and vice versa.
type CrossCheckTable struct {
	dim       int
	crossSets [2][][]alphabet.LetterSet
}

// NewCrossCheckTable allocates (but does not populate) a table for a board
// of the given dimension.
func NewCrossCheckTable(dim int) *CrossCheckTable {
	t := &CrossCheckTable{dim: dim}
	for axis := 0; axis < 2; axis++ {
		t.crossSets[axis] = make([][]alphabet.LetterSet, dim)
		for r := range t.crossSets[axis] {
			t.crossSets[axis][r] = make([]alphabet.LetterSet, dim)
		}
	}
	return t
}

func (t *CrossCheckTable) Get(axis Axis, r, c int) alphabet.LetterSet {
	return t.crossSets[axis][r][c]
}

// Recompute rebuilds the entire table from the current board contents
// (spec §4.4: "refreshed after each committed move"). A full rebuild is
// simple and correct; nothing in spec §8 requires incremental update, and
// a 15x15 board makes this cheap (<1ms) relative to the generator's own
// budget.
func (t *CrossCheckTable) Recompute(b *board.Board, lex *lexicon.Lexicon) {
	for r := 0; r < b.Dim; r++ {
		for c := 0; c < b.Dim; c++ {
			if b.Get(r, c).Tile != nil {
				// Occupied cells never get placed on again; leave as zero.
				t.crossSets[Horizontal][r][c] = 0
				t.crossSets[Vertical][r][c] = 0
				continue
			}
			t.crossSets[Horizontal][r][c] = crossSetFor(b, lex, r, c, Horizontal)
			t.crossSets[Vertical][r][c] = crossSetFor(b, lex, r, c, Vertical)
		}
	}
}

// crossSetFor computes the cross-check set for playing a tile at (r, c) as
// part of a word running along `axis`. The perpendicular run through (r,
// c) — using the OTHER axis — must, letter by letter, remain a legal word
// (or not exist at all, in which case every letter is allowed).
func crossSetFor(b *board.Board, lex *lexicon.Lexicon, r, c int, axis Axis) alphabet.LetterSet {
	perp := axis.Perpendicular()
	dr, dc := 0, 0
	if perp == Vertical {
		dr = 1
	} else {
		dc = 1
	}

	prefix, suffix := adjacentRun(b, r, c, -dr, -dc), adjacentRun(b, r, c, dr, dc)
	if len(prefix) == 0 && len(suffix) == 0 {
		return alphabet.FullLetterSet
	}

	var set alphabet.LetterSet
	alph := lex.Alphabet()
	for ml := alphabet.MachineLetter(1); ml <= 26; ml++ {
		word := make([]rune, 0, len(prefix)+1+len(suffix))
		for _, t := range prefix {
			word = append(word, alph.Letter(t.EffectiveLetter()))
		}
		word = append(word, alph.Letter(ml))
		for _, t := range suffix {
			word = append(word, alph.Letter(t.EffectiveLetter()))
		}
		if lex.HasWord(string(word)) {
			set = set.With(ml)
		}
	}
	return set
}

// adjacentRun walks from (r, c) in direction (dr, dc) (not including (r,
// c) itself) while cells are occupied, and returns the tiles found, in
// board order away-from-(r,c) reversed back to reading order.
func adjacentRun(b *board.Board, r, c, dr, dc int) []*alphabet.Tile {
	var tiles []*alphabet.Tile
	rr, cc := r+dr, c+dc
	for {
		cell := b.Get(rr, cc)
		if cell == nil || cell.Tile == nil {
			break
		}
		tiles = append(tiles, cell.Tile)
		rr, cc = rr+dr, cc+dc
	}
	// tiles were collected moving away from (r, c); if dr/dc point toward
	// increasing index (right/down, the suffix direction) that's already
	// reading order. If they point toward decreasing index (left/up, the
	// prefix direction) reverse so the result reads left-to-right/top-to-
	// bottom.
	if dr < 0 || dc < 0 {
		for i, j := 0, len(tiles)-1; i < j; i, j = i+1, j-1 {
			tiles[i], tiles[j] = tiles[j], tiles[i]
		}
	}
	return tiles
}
