// Package board implements the 15x15 (or super, 21x21) premium-square grid
// described in spec §3/§4.2: a dumb grid of cells plus neighbor queries.
// Cross-check sets are NOT computed here — they're a move-generator
// concern (spec §4.4) that reads this board as a data source, mirroring
// the teacher's separation between board.GameBoard and a cross_set.Generator
// (game/rules.go).
package board

import (
	"errors"
	"strings"

	"github.com/wordforge/lexigrid/alphabet"
)

// Premium identifies a premium-square multiplier. Multipliers are consumed
// (cease to apply) once a tile covers the square (spec §3).
type Premium uint8

const (
	NoPremium Premium = iota
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
	Center // acts as DoubleWord for the opening move only
)

// Cell is one board square.
type Cell struct {
	Tile    *alphabet.Tile
	Premium Premium
	covered bool // true once a tile has ever occupied this cell

	// frozenUntilTurn is non-zero while the optional power-up extension
	// layer (package powerup, spec §9 Open Question ii) has an active
	// board-tile-freeze effect on this cell; zero means never frozen.
	frozenUntilTurn int
}

func (c *Cell) WordMultiplier() int {
	if c.covered {
		return 1
	}
	switch c.Premium {
	case DoubleWord, Center:
		return 2
	case TripleWord:
		return 3
	}
	return 1
}

func (c *Cell) LetterMultiplier() int {
	if c.covered {
		return 1
	}
	switch c.Premium {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	}
	return 1
}

// Board is a fixed-size grid of Cells.
type Board struct {
	Dim     int
	cells   [][]Cell
	CenterR int
	CenterC int
}

var ErrOccupied = errors.New("board: cell is already occupied")

// New builds a board of the given dimension with no premium squares set.
func New(dim int) *Board {
	b := &Board{Dim: dim, CenterR: dim / 2, CenterC: dim / 2}
	b.cells = make([][]Cell, dim)
	for r := range b.cells {
		b.cells[r] = make([]Cell, dim)
	}
	return b
}

// NewFromLayout decodes a premium-square template (spec §6, the same
// character convention as the teacher's board/layouts.go: '=' triple word,
// '-' double word, '"' triple letter, '\'' double letter) into a Board.
// The super board's '~' and '^' squares are not decoded and carry no
// premium.
func NewFromLayout(layout []string) *Board {
	dim := len(layout)
	b := New(dim)
	for r, row := range layout {
		for c, ch := range row {
			switch ch {
			case '=':
				b.cells[r][c].Premium = TripleWord
			case '-':
				b.cells[r][c].Premium = DoubleWord
			case '"':
				b.cells[r][c].Premium = TripleLetter
			case '\'':
				b.cells[r][c].Premium = DoubleLetter
			}
		}
	}
	b.cells[b.CenterR][b.CenterC].Premium = Center
	return b
}

func (b *Board) inBounds(r, c int) bool {
	return r >= 0 && r < b.Dim && c >= 0 && c < b.Dim
}

// Get returns the cell at (r, c).
func (b *Board) Get(r, c int) *Cell {
	if !b.inBounds(r, c) {
		return nil
	}
	return &b.cells[r][c]
}

// Place puts a tile on (r, c). Fails if the cell is already occupied.
func (b *Board) Place(r, c int, t *alphabet.Tile) error {
	cell := b.Get(r, c)
	if cell == nil {
		return errors.New("board: out of range")
	}
	if cell.Tile != nil {
		return ErrOccupied
	}
	cell.Tile = t
	cell.covered = true
	return nil
}

// Neighbors returns the up/down/left/right in-bounds neighbor coordinates
// of (r, c).
func (b *Board) Neighbors(r, c int) [][2]int {
	candidates := [][2]int{{r - 1, c}, {r + 1, c}, {r, c - 1}, {r, c + 1}}
	out := make([][2]int, 0, 4)
	for _, cd := range candidates {
		if b.inBounds(cd[0], cd[1]) {
			out = append(out, cd)
		}
	}
	return out
}

// IsEmpty reports whether the board has no tiles placed anywhere.
func (b *Board) IsEmpty() bool {
	for r := 0; r < b.Dim; r++ {
		for c := 0; c < b.Dim; c++ {
			if b.cells[r][c].Tile != nil {
				return false
			}
		}
	}
	return true
}

// HasAdjacentTile reports whether any orthogonal neighbor of (r, c) is
// occupied — the connectivity condition of spec §4.6 step 5.
func (b *Board) HasAdjacentTile(r, c int) bool {
	for _, n := range b.Neighbors(r, c) {
		if b.cells[n[0]][n[1]].Tile != nil {
			return true
		}
	}
	return false
}

// Freeze arms a board-tile-freeze power-up effect on (r, c): every
// placement attempt against this cell is rejected until the game's turn
// counter exceeds untilTurn. A no-op on out-of-range coordinates.
func (b *Board) Freeze(r, c, untilTurn int) {
	if cell := b.Get(r, c); cell != nil {
		cell.frozenUntilTurn = untilTurn
	}
}

// IsFrozen reports whether (r, c) is still under an active freeze effect
// as of currentTurn.
func (b *Board) IsFrozen(r, c, currentTurn int) bool {
	cell := b.Get(r, c)
	return cell != nil && cell.frozenUntilTurn != 0 && currentTurn <= cell.frozenUntilTurn
}

// IsAnchor reports whether (r, c) is a legal move-generation anchor (spec
// §4.4): empty, and adjacent to an occupied cell, or the center cell on an
// empty board.
func (b *Board) IsAnchor(r, c int) bool {
	cell := b.Get(r, c)
	if cell == nil || cell.Tile != nil {
		return false
	}
	if b.IsEmpty() {
		return r == b.CenterR && c == b.CenterC
	}
	return b.HasAdjacentTile(r, c)
}

// ToDisplayText renders the board for debugging/logging.
func (b *Board) ToDisplayText(a *alphabet.Alphabet) string {
	var sb strings.Builder
	for r := 0; r < b.Dim; r++ {
		for c := 0; c < b.Dim; c++ {
			cell := b.cells[r][c]
			if cell.Tile != nil {
				sb.WriteRune(a.Letter(cell.Tile.EffectiveLetter()))
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Copy deep-copies the board (grounded on the teacher's
// board.Copy()/CopyFrom() used by mechanics.go's simulation backup stack;
// the game store keeps no backups and does not call it).
func (b *Board) Copy() *Board {
	nb := &Board{Dim: b.Dim, CenterR: b.CenterR, CenterC: b.CenterC}
	nb.cells = make([][]Cell, b.Dim)
	for r := range b.cells {
		nb.cells[r] = make([]Cell, b.Dim)
		copy(nb.cells[r], b.cells[r])
	}
	return nb
}

func (b *Board) CopyFrom(other *Board) {
	b.Dim = other.Dim
	b.CenterR = other.CenterR
	b.CenterC = other.CenterC
	b.cells = make([][]Cell, other.Dim)
	for r := range other.cells {
		b.cells[r] = make([]Cell, other.Dim)
		copy(b.cells[r], other.cells[r])
	}
}
