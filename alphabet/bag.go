package alphabet

import (
	"errors"

	"lukechampine.com/frand"
)

// ErrEmptyBag is returned by Draw when the bag has fewer tiles than asked
// for. Per spec §4.3, drawing from an empty bag is not itself an error —
// only Draw (the exact-count variant) treats running short as a failure;
// DrawAtMost never errors.
var ErrEmptyBag = errors.New("alphabet: not enough tiles in bag")

// Bag is the uniformly-random remainder of the tile distribution (spec §3).
// Shuffling uses lukechampine.com/frand, a CSPRNG, satisfying the
// "unpredictable seeding" requirement without any manual seed plumbing.
type Bag struct {
	alph         *Alphabet
	dist         *LetterDistribution
	tiles        []MachineLetter
	initialTiles int
}

func (b *Bag) shuffle() {
	frand.Shuffle(len(b.tiles), func(i, j int) {
		b.tiles[i], b.tiles[j] = b.tiles[j], b.tiles[i]
	})
}

// Count returns the number of tiles remaining in the bag.
func (b *Bag) Count() int {
	return len(b.tiles)
}

// Draw removes exactly n tiles, or returns ErrEmptyBag if fewer remain.
func (b *Bag) Draw(n int) ([]MachineLetter, error) {
	if n > len(b.tiles) {
		return nil, ErrEmptyBag
	}
	return b.DrawAtMost(n), nil
}

// DrawAtMost removes up to n tiles, returning fewer if the bag runs out.
// Per spec §4.3 this is never an error.
func (b *Bag) DrawAtMost(n int) []MachineLetter {
	if n > len(b.tiles) {
		n = len(b.tiles)
	}
	drawn := make([]MachineLetter, n)
	copy(drawn, b.tiles[len(b.tiles)-n:])
	b.tiles = b.tiles[:len(b.tiles)-n]
	return drawn
}

// PutBack returns tiles to the bag and reshuffles (used by tile exchange).
func (b *Bag) PutBack(tiles []MachineLetter) {
	if len(tiles) == 0 {
		return
	}
	b.tiles = append(b.tiles, tiles...)
	b.shuffle()
}

// Exchange returns the given tiles to the bag, shuffles, and draws back the
// same count (spec §4.6 "Exchange"). Requires the bag to already have at
// least len(tiles) tiles in it before the exchange (checked by the caller
// against MinBagSizeForExchange).
func (b *Bag) Exchange(tiles []MachineLetter) []MachineLetter {
	b.PutBack(tiles)
	return b.DrawAtMost(len(tiles))
}

// Redraw puts the given tiles back and draws an equal number fresh — used
// when resetting a rack wholesale (simulations, AI analysis positions).
func (b *Bag) Redraw(tiles []MachineLetter) []MachineLetter {
	return b.Exchange(tiles)
}

// RemoveTiles removes specific tiles from the bag (used when seeding a
// pre-set rack for analysis). Returns an error if any tile isn't present.
func (b *Bag) RemoveTiles(tiles []MachineLetter) error {
	remaining := make([]MachineLetter, len(b.tiles))
	copy(remaining, b.tiles)
	for _, want := range tiles {
		found := -1
		for i, t := range remaining {
			if t == want {
				found = i
				break
			}
		}
		if found == -1 {
			return errors.New("alphabet: tile not in bag")
		}
		remaining = append(remaining[:found], remaining[found+1:]...)
	}
	b.tiles = remaining
	return nil
}

// Copy returns a deep copy of the bag.
func (b *Bag) Copy() *Bag {
	nb := &Bag{
		alph:         b.alph,
		dist:         b.dist,
		tiles:        make([]MachineLetter, len(b.tiles)),
		initialTiles: b.initialTiles,
	}
	copy(nb.tiles, b.tiles)
	return nb
}

// CopyFrom overwrites this bag's contents from another (kept for parity
// with the teacher's backup/restore idiom; the commit pipeline is
// forward-only and does not call it).
func (b *Bag) CopyFrom(other *Bag) {
	b.tiles = make([]MachineLetter, len(other.tiles))
	copy(b.tiles, other.tiles)
	b.dist = other.dist
	b.alph = other.alph
	b.initialTiles = other.initialTiles
}

// Distribution returns the letter distribution this bag was built from.
func (b *Bag) Distribution() *LetterDistribution {
	return b.dist
}

// TileValues returns the letters currently in the bag (for tile-conservation
// property tests, spec §8 invariant 1).
func (b *Bag) TileValues() []MachineLetter {
	out := make([]MachineLetter, len(b.tiles))
	copy(out, b.tiles)
	return out
}
