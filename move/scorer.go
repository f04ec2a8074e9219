package move

import (
	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/board"
	"github.com/wordforge/lexigrid/movegen"
)

// Score computes the point value of a candidate placement (spec §4.5): the
// main word's score plus every newly-formed perpendicular cross word's
// score, with letter/word multipliers applying only to squares newly
// covered by this play, plus BingoBonus if all seven rack tiles were used.
// Blanks always contribute 0 regardless of the letter they stand in for
// (spec §9 Open Question i).
func Score(b *board.Board, dist *alphabet.LetterDistribution, cand movegen.Candidate) int {
	return ScoreWithBonus(b, dist, cand, BingoBonus)
}

// ScoreWithBonus is Score parameterized by the bingo bonus value, so a
// ruleset variant (variant.Variant.GetBingoBonus) other than classic can
// supply its own bonus without duplicating the word-scoring logic.
func ScoreWithBonus(b *board.Board, dist *alphabet.LetterDistribution, cand movegen.Candidate, bonus int) int {
	total := mainWordScore(b, dist, cand)
	newByPos := make(map[[2]int]movegen.PlacedLetter, len(cand.NewTiles))
	for _, nt := range cand.NewTiles {
		newByPos[[2]int{nt.Row, nt.Col}] = nt
	}
	for _, nt := range cand.NewTiles {
		if cs := crossWordScore(b, dist, nt, !cand.Vertical, newByPos); cs >= 0 {
			total += cs
		}
	}
	if len(cand.NewTiles) == 7 {
		total += bonus
	}
	return total
}

// letterValue looks up a placed letter's point value. A blank tile's
// contribution is always 0 regardless of its chosen letter (spec §9 Open
// Question i), which LetterDistribution.Value already encodes for any
// letter carrying the blank mask; isBlank covers placements where the
// mask wasn't set on the letter itself (board tiles track blank status
// separately via Tile.IsBlank).
func letterValue(dist *alphabet.LetterDistribution, ml alphabet.MachineLetter, isBlank bool) int {
	if isBlank {
		return 0
	}
	return dist.Value(ml)
}

// mainWordScore scores the full word of the candidate's own axis.
func mainWordScore(b *board.Board, dist *alphabet.LetterDistribution, cand movegen.Candidate) int {
	newByPos := make(map[[2]int]movegen.PlacedLetter, len(cand.NewTiles))
	for _, nt := range cand.NewTiles {
		newByPos[[2]int{nt.Row, nt.Col}] = nt
	}

	r, c := cand.Row, cand.Col
	dr, dc := 0, 1
	if cand.Vertical {
		dr, dc = 1, 0
	}

	wordScore := 0
	wordMult := 1
	for i := 0; i < len(cand.Word); i++ {
		pr, pc := r+dr*i, c+dc*i
		ml := cand.Word[i]
		if nt, isNew := newByPos[[2]int{pr, pc}]; isNew {
			cell := b.Get(pr, pc)
			wordScore += letterValue(dist, ml, nt.IsBlank) * cell.LetterMultiplier()
			wordMult *= cell.WordMultiplier()
			continue
		}
		existing := b.Get(pr, pc).Tile
		wordScore += letterValue(dist, ml, existing != nil && existing.IsBlank)
	}
	return wordScore * wordMult
}

// crossWordScore scores the perpendicular word newly formed through the
// single new tile nt, if any (a run of length >= 2 along the perpendicular
// axis). Returns -1 if no perpendicular word was formed (a lone tile with
// no neighbors on that axis doesn't count as a word per spec §4.5).
func crossWordScore(b *board.Board, dist *alphabet.LetterDistribution, nt movegen.PlacedLetter, vertical bool, newByPos map[[2]int]movegen.PlacedLetter) int {
	dr, dc := 0, 1
	if vertical {
		dr, dc = 1, 0
	}

	// Walk to the start of the run.
	sr, sc := nt.Row, nt.Col
	for {
		pr, pc := sr-dr, sc-dc
		cell := b.Get(pr, pc)
		if cell == nil || cell.Tile == nil {
			break
		}
		sr, sc = pr, pc
	}
	// Walk to the end.
	er, ec := nt.Row, nt.Col
	for {
		pr, pc := er+dr, ec+dc
		cell := b.Get(pr, pc)
		if cell == nil || cell.Tile == nil {
			break
		}
		er, ec = pr, pc
	}
	if sr == er && sc == ec {
		return -1 // no perpendicular neighbors; not a word
	}

	wordScore := 0
	wordMult := 1
	r, c := sr, sc
	for {
		if r == nt.Row && c == nt.Col {
			cell := b.Get(r, c)
			wordScore += letterValue(dist, nt.Letter, nt.IsBlank) * cell.LetterMultiplier()
			wordMult *= cell.WordMultiplier()
		} else {
			t := b.Get(r, c).Tile
			wordScore += letterValue(dist, t.EffectiveLetter(), t.IsBlank)
		}
		if r == er && c == ec {
			break
		}
		r, c = r+dr, c+dc
	}
	return wordScore * wordMult
}
