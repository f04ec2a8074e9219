package alphabet

// LetterDistribution holds the count and point value of every letter (plus
// the two blanks) in the standard English tile set (spec §6: "Tile
// distribution (English, 100 tiles)").
type LetterDistribution struct {
	alph    *Alphabet
	counts  map[MachineLetter]uint8
	values  map[MachineLetter]uint8
	numTotal int
}

// englishCounts and englishValues mirror the standard Scrabble distribution
// exactly, per spec §6.
var englishCounts = map[rune]uint8{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12, 'F': 2, 'G': 3, 'H': 2, 'I': 9,
	'J': 1, 'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8, 'P': 2, 'Q': 1, 'R': 6,
	'S': 4, 'T': 6, 'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2, 'Z': 1, '?': 2,
}

var englishValues = map[rune]uint8{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2, 'H': 4, 'I': 1,
	'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1, 'P': 3, 'Q': 10, 'R': 1,
	'S': 1, 'T': 1, 'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10, '?': 0,
}

// EnglishLetterDistribution builds the default 100-tile English distribution.
func EnglishLetterDistribution(alph *Alphabet) *LetterDistribution {
	ld := &LetterDistribution{
		alph:   alph,
		counts: make(map[MachineLetter]uint8),
		values: make(map[MachineLetter]uint8),
	}
	for r, ct := range englishCounts {
		ml, err := alph.Val(r)
		if err != nil {
			panic(err)
		}
		ld.counts[ml] = ct
		ld.values[ml] = englishValues[r]
		ld.numTotal += int(ct)
	}
	return ld
}

func (ld *LetterDistribution) Value(ml MachineLetter) int {
	if ml.IsBlanked() {
		return 0
	}
	return int(ld.values[ml])
}

func (ld *LetterDistribution) NumTotal() int {
	return ld.numTotal
}

// MakeBag creates a new, freshly shuffled Bag containing the full tile set.
func (ld *LetterDistribution) MakeBag(alph *Alphabet) *Bag {
	tiles := make([]MachineLetter, 0, ld.numTotal)
	for ml, ct := range ld.counts {
		for i := uint8(0); i < ct; i++ {
			tiles = append(tiles, ml)
		}
	}
	b := &Bag{
		alph:          alph,
		dist:          ld,
		tiles:         tiles,
		initialTiles:  len(tiles),
	}
	b.shuffle()
	return b
}
