package alphabet

// TileID uniquely identifies one physical tile for the lifetime of a game
// (spec §3: "every tile in the game has a unique id; the same letter may
// appear on distinct tiles").
type TileID uint32

// Tile is an atomic physical piece: a letter, a point value, a stable
// identity, and a blank flag. A blank tile carries value 0 always; once
// placed it records a ChosenLetter that participates in lexicon checks
// but never in scoring (spec §3, §9 Open Question i).
type Tile struct {
	ID           TileID
	Letter       MachineLetter // the face value; BlankMachineLetter if blank
	Value        int
	IsBlank      bool
	ChosenLetter MachineLetter // set once placed, only meaningful if IsBlank
}

// EffectiveLetter returns the letter this tile contributes to a word: the
// chosen letter for a placed blank, otherwise its own letter.
func (t Tile) EffectiveLetter() MachineLetter {
	if t.IsBlank {
		return t.ChosenLetter
	}
	return t.Letter
}

// Rack is an ordered multiset of up to seven tiles owned by exactly one
// player (spec §3). Internally it also keeps a 27-entry histogram
// (A-Z + blank) for fast traversal during move generation, per design
// note §9 ("Rack as histogram"); the id-bearing slice is reconciled only
// when staging a candidate move.
type Rack struct {
	tiles  []Tile
	counts [27]int // index 0 = blank, 1..26 = A..Z
}

func NewRack() *Rack {
	return &Rack{}
}

func (r *Rack) Add(t Tile) {
	r.tiles = append(r.tiles, t)
	r.bump(t, 1)
}

func (r *Rack) bump(t Tile, delta int) {
	if t.IsBlank {
		r.counts[0] += delta
	} else {
		r.counts[t.Letter] += delta
	}
}

// Remove removes and returns the tile with the given id, or false if absent.
func (r *Rack) Remove(id TileID) (Tile, bool) {
	for i, t := range r.tiles {
		if t.ID == id {
			r.tiles = append(r.tiles[:i], r.tiles[i+1:]...)
			r.bump(t, -1)
			return t, true
		}
	}
	return Tile{}, false
}

// Tiles returns the tiles currently on the rack.
func (r *Rack) Tiles() []Tile {
	out := make([]Tile, len(r.tiles))
	copy(out, r.tiles)
	return out
}

// NumTiles returns how many tiles are on the rack.
func (r *Rack) NumTiles() int {
	return len(r.tiles)
}

// Counts returns the 27-entry letter histogram (index 0 = blank).
func (r *Rack) Counts() [27]int {
	return r.counts
}

// ContainsMultiset reports whether the rack currently holds at least the
// given multiset of machine letters (blanks in the query match any letter
// count bucket only if requested explicitly as BlankMachineLetter).
func (r *Rack) ContainsMultiset(letters []MachineLetter) bool {
	need := map[MachineLetter]int{}
	for _, l := range letters {
		need[l]++
	}
	have := r.counts
	for l, ct := range need {
		idx := l
		if idx > 26 {
			return false
		}
		if have[idx] < ct {
			return false
		}
	}
	return true
}

// Copy deep-copies the rack.
func (r *Rack) Copy() *Rack {
	nr := &Rack{counts: r.counts}
	nr.tiles = make([]Tile, len(r.tiles))
	copy(nr.tiles, r.tiles)
	return nr
}

// CopyFrom overwrites this rack's contents from another.
func (r *Rack) CopyFrom(other *Rack) {
	r.counts = other.counts
	r.tiles = make([]Tile, len(other.tiles))
	copy(r.tiles, other.tiles)
}

// String renders the rack's letters, blanks as '?'.
func (r *Rack) String(a *Alphabet) string {
	mw := make(MachineWord, 0, len(r.tiles))
	for _, t := range r.tiles {
		if t.IsBlank {
			mw = append(mw, BlankMachineLetter)
			continue
		}
		mw = append(mw, t.Letter)
	}
	out := make([]rune, 0, len(mw))
	for _, ml := range mw {
		if ml == BlankMachineLetter {
			out = append(out, '?')
			continue
		}
		out = append(out, a.Letter(ml))
	}
	return string(out)
}

// ScoreOn returns the sum of point values of every tile still on the rack,
// used for final scoring when a game ends (spec §4.6).
func (r *Rack) ScoreOn(dist *LetterDistribution) int {
	total := 0
	for _, t := range r.tiles {
		total += dist.Value(t.Letter)
	}
	return total
}
