// Package move implements the scored turn type and the scorer that turns a
// movegen.Candidate into a fully-scored Move (C6, spec §4.5), adapted from
// the teacher's move/move.go (coordinate formatting, bingo detection,
// MoveType enum) and variant/variant.go (bingo bonus value).
package move

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/wordforge/lexigrid/alphabet"
)

// MoveType identifies the kind of turn a player took.
type MoveType uint8

const (
	MoveTypePlay MoveType = iota
	MoveTypeExchange
	MoveTypePass
	MoveTypePhonyTilesReturned
)

// BingoBonus is the points awarded for using all seven rack tiles in a
// single play (spec §4.5), used by Score. The commit pipeline calls
// ScoreWithBonus with the game variant's GetBingoBonus instead, which is
// also 50 for every variant.
const BingoBonus = 50

// Move is a fully-formed, scored turn.
type Move struct {
	action      MoveType
	score       int
	word        alphabet.MachineWord // full word, PlayedThroughMarker for pre-existing squares
	leave       alphabet.MachineWord
	rowStart    int
	colStart    int
	vertical    bool
	bingo       bool
	tilesPlayed int
	alph        *alphabet.Alphabet
}

var reVertical, reHorizontal *regexp.Regexp

func init() {
	reVertical = regexp.MustCompile(`^(?P<col>[A-Z])(?P<row>[0-9]+)$`)
	reHorizontal = regexp.MustCompile(`^(?P<row>[0-9]+)(?P<col>[A-Z])$`)
}

func (m *Move) String() string {
	switch m.action {
	case MoveTypePlay:
		return fmt.Sprintf("<play %v %v score:%d bingo:%v leave:%v>",
			m.BoardCoords(), m.word.UserVisible(m.alph), m.score, m.bingo, m.leave.UserVisible(m.alph))
	case MoveTypePass:
		return "<pass>"
	case MoveTypeExchange:
		return fmt.Sprintf("<exchange %v>", m.word.UserVisible(m.alph))
	case MoveTypePhonyTilesReturned:
		return "<phony tiles returned>"
	}
	return "<unhandled move>"
}

func (m *Move) Action() MoveType          { return m.action }
func (m *Move) Score() int                { return m.score }
func (m *Move) Word() alphabet.MachineWord { return m.word }
func (m *Move) Leave() alphabet.MachineWord { return m.leave }
func (m *Move) TilesPlayed() int          { return m.tilesPlayed }
func (m *Move) Bingo() bool               { return m.bingo }
func (m *Move) Alphabet() *alphabet.Alphabet { return m.alph }
func (m *Move) CoordsAndVertical() (int, int, bool) { return m.rowStart, m.colStart, m.vertical }

// NewScoringMove creates a scoring play (spec §4.5/§4.6).
func NewScoringMove(score int, word alphabet.MachineWord, leave alphabet.MachineWord,
	vertical bool, tilesPlayed int, alph *alphabet.Alphabet, rowStart, colStart int) *Move {
	return &Move{
		action: MoveTypePlay, score: score, word: word, leave: leave, vertical: vertical,
		bingo: tilesPlayed == 7, tilesPlayed: tilesPlayed, alph: alph,
		rowStart: rowStart, colStart: colStart,
	}
}

// NewExchangeMove creates an exchange turn (spec §4.3).
func NewExchangeMove(tiles, leave alphabet.MachineWord, alph *alphabet.Alphabet) *Move {
	return &Move{action: MoveTypeExchange, word: tiles, leave: leave, tilesPlayed: len(tiles), alph: alph}
}

// NewPassMove creates a pass turn.
func NewPassMove(leave alphabet.MachineWord, alph *alphabet.Alphabet) *Move {
	return &Move{action: MoveTypePass, leave: leave, alph: alph}
}

// BoardCoords renders the move's anchor in board-game notation (e.g. "8H"
// horizontal, "H8" vertical), matching the teacher's ToBoardGameCoords.
func (m *Move) BoardCoords() string {
	return ToBoardGameCoords(m.rowStart, m.colStart, m.vertical)
}

func ToBoardGameCoords(row, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(row + 1)
	if vertical {
		return colCoords + rowCoords
	}
	return rowCoords + colCoords
}

// FromBoardGameCoords does the inverse of ToBoardGameCoords, used to decode
// a client-submitted anchor (spec §6 wire schema).
func FromBoardGameCoords(c string) (row, col int, vertical bool, ok bool) {
	if vMatches := reVertical.FindStringSubmatch(c); len(vMatches) == 3 {
		row, _ = strconv.Atoi(vMatches[2])
		col = int(vMatches[1][0] - 'A')
		return row - 1, col, true, true
	}
	if hMatches := reHorizontal.FindStringSubmatch(c); len(hMatches) == 3 {
		row, _ = strconv.Atoi(hMatches[1])
		col = int(hMatches[2][0] - 'A')
		return row - 1, col, false, true
	}
	return 0, 0, false, false
}
