package move_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/move"
	"github.com/wordforge/lexigrid/movegen"
)

func TestScore_OpeningWordOnCenterDoubleWord(t *testing.T) {
	is := is.New(t)
	alph := alphabet.EnglishAlphabet()
	dist := alphabet.EnglishLetterDistribution(alph)
	b := board.NewFromLayout(board.CrosswordGameBoard)

	// CAT placed horizontally through the center: C(3) A(1) T(1) = 5,
	// doubled by the center square = 10. No cross words, no bingo.
	mkLetter := func(r rune) alphabet.MachineLetter {
		ml, err := alph.Val(r)
		is.NoErr(err)
		return ml
	}
	word := alphabet.MachineWord{mkLetter('C'), mkLetter('A'), mkLetter('T')}
	cand := movegen.Candidate{
		Row: b.CenterR, Col: b.CenterC - 1, Vertical: false,
		Word: word,
		NewTiles: []movegen.PlacedLetter{
			{Row: b.CenterR, Col: b.CenterC - 1, Letter: mkLetter('C'), Chosen: mkLetter('C')},
			{Row: b.CenterR, Col: b.CenterC, Letter: mkLetter('A'), Chosen: mkLetter('A')},
			{Row: b.CenterR, Col: b.CenterC + 1, Letter: mkLetter('T'), Chosen: mkLetter('T')},
		},
	}
	score := move.Score(b, dist, cand)
	is.Equal(score, 10)
}

func TestScore_BlankScoresZero(t *testing.T) {
	is := is.New(t)
	alph := alphabet.EnglishAlphabet()
	dist := alphabet.EnglishLetterDistribution(alph)
	b := board.NewFromLayout(board.CrosswordGameBoard)

	mkLetter := func(r rune) alphabet.MachineLetter {
		ml, err := alph.Val(r)
		is.NoErr(err)
		return ml
	}
	// Blank standing in for A contributes 0.
	word := alphabet.MachineWord{mkLetter('A'), mkLetter('T')}
	cand := movegen.Candidate{
		Row: b.CenterR, Col: b.CenterC, Vertical: false,
		Word: word,
		NewTiles: []movegen.PlacedLetter{
			{Row: b.CenterR, Col: b.CenterC, Letter: alphabet.BlankMachineLetter, Chosen: mkLetter('A'), IsBlank: true},
			{Row: b.CenterR, Col: b.CenterC + 1, Letter: mkLetter('T'), Chosen: mkLetter('T')},
		},
	}
	// T=1, doubled by center = 2; blank A = 0.
	score := move.Score(b, dist, cand)
	is.Equal(score, 2)
}

func TestBingoBonusConstant(t *testing.T) {
	is := is.New(t)
	is.Equal(move.BingoBonus, 50)
}
