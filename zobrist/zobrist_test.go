package zobrist_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/zobrist"
)

func TestHash_IdenticalPositionsMatch(t *testing.T) {
	is := is.New(t)
	tbl := zobrist.New(15, 2)

	alph := alphabet.EnglishAlphabet()
	c, err := alph.Val('C')
	is.NoErr(err)

	b1 := board.New(15)
	is.NoErr(b1.Place(7, 7, &alphabet.Tile{Letter: c, Value: 3}))
	b2 := board.New(15)
	is.NoErr(b2.Place(7, 7, &alphabet.Tile{Letter: c, Value: 3}))

	var rackCounts [27]int
	rackCounts[1] = 2

	h1 := tbl.Hash(b1, rackCounts, 0)
	h2 := tbl.Hash(b2, rackCounts, 0)
	is.Equal(h1, h2)
}

func TestHash_DifferentPositionsDiffer(t *testing.T) {
	is := is.New(t)
	tbl := zobrist.New(15, 2)

	alph := alphabet.EnglishAlphabet()
	c, err := alph.Val('C')
	is.NoErr(err)
	d, err := alph.Val('D')
	is.NoErr(err)

	b1 := board.New(15)
	is.NoErr(b1.Place(7, 7, &alphabet.Tile{Letter: c, Value: 3}))
	b2 := board.New(15)
	is.NoErr(b2.Place(7, 7, &alphabet.Tile{Letter: d, Value: 2}))

	var rackCounts [27]int
	is.True(tbl.Hash(b1, rackCounts, 0) != tbl.Hash(b2, rackCounts, 0))
}

func TestHash_DifferentPlayerToMoveDiffers(t *testing.T) {
	is := is.New(t)
	tbl := zobrist.New(15, 2)
	b := board.New(15)
	var rackCounts [27]int
	is.True(tbl.Hash(b, rackCounts, 0) != tbl.Hash(b, rackCounts, 1))
}

func TestHash_BlankDiffersFromNaturalLetter(t *testing.T) {
	is := is.New(t)
	tbl := zobrist.New(15, 2)

	alph := alphabet.EnglishAlphabet()
	s, err := alph.Val('S')
	is.NoErr(err)

	bNatural := board.New(15)
	is.NoErr(bNatural.Place(7, 7, &alphabet.Tile{Letter: s, Value: 1}))

	bBlank := board.New(15)
	is.NoErr(bBlank.Place(7, 7, &alphabet.Tile{Letter: s, IsBlank: true, ChosenLetter: s}))

	var rackCounts [27]int
	is.True(tbl.Hash(bNatural, rackCounts, 0) != tbl.Hash(bBlank, rackCounts, 0))
}
