package alphabet

import (
	"testing"

	"github.com/matryer/is"
)

func TestBagTileConservation(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	ld := EnglishLetterDistribution(alph)
	bag := ld.MakeBag(alph)

	is.Equal(bag.Count(), 100)

	tileMap := make(map[MachineLetter]int)
	drawn := 0
	for bag.Count() > 0 {
		tiles, err := bag.Draw(1)
		is.NoErr(err)
		drawn++
		tileMap[tiles[0]]++
	}
	is.Equal(drawn, 100)

	for r, ct := range englishCounts {
		ml, err := alph.Val(r)
		is.NoErr(err)
		is.Equal(tileMap[ml], int(ct))
	}

	_, err := bag.Draw(1)
	is.True(err != nil)
}

func TestBagDraw(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	ld := EnglishLetterDistribution(alph)
	bag := ld.MakeBag(alph)

	letters, err := bag.Draw(7)
	is.NoErr(err)
	is.Equal(len(letters), 7)
	is.Equal(bag.Count(), 93)
}

func TestBagDrawAtMostNeverErrors(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	ld := EnglishLetterDistribution(alph)
	bag := ld.MakeBag(alph)

	for bag.Count() > 0 {
		bag.DrawAtMost(7)
	}
	// Bag is empty; DrawAtMost still succeeds, just returns nothing.
	tiles := bag.DrawAtMost(7)
	is.Equal(len(tiles), 0)
}

func TestBagExchangePreservesCount(t *testing.T) {
	is := is.New(t)
	alph := EnglishAlphabet()
	ld := EnglishLetterDistribution(alph)
	bag := ld.MakeBag(alph)

	// Drain to exactly 10 tiles left in the bag.
	bag.DrawAtMost(90)
	is.Equal(bag.Count(), 10)

	tiles, err := bag.Draw(3)
	is.NoErr(err)
	is.Equal(bag.Count(), 7)

	drew := bag.Exchange(tiles)
	is.Equal(len(drew), 3)
	is.Equal(bag.Count(), 7)
}

func TestBagShuffleIsNotIdentity(t *testing.T) {
	// Not a strict statistical test; just confirms the bag doesn't hand
	// tiles back out in distribution-table order every time.
	is := is.New(t)
	alph := EnglishAlphabet()
	ld := EnglishLetterDistribution(alph)

	same := true
	var first []MachineLetter
	for i := 0; i < 5; i++ {
		bag := ld.MakeBag(alph)
		all := bag.DrawAtMost(100)
		if i == 0 {
			first = all
			continue
		}
		if !equalSlices(first, all) {
			same = false
		}
	}
	is.True(!same)
}

func equalSlices(a, b []MachineLetter) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
